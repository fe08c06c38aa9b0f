package project

// Relation classifies why a cross-reference exists (spec.md §3).
type Relation int

const (
	RelCall Relation = iota
	RelJump
	RelBranch
	RelLoadStore
	RelIndirect
	RelSplitEntry
)

func (r Relation) String() string {
	switch r {
	case RelCall:
		return "call"
	case RelJump:
		return "jump"
	case RelBranch:
		return "branch"
	case RelLoadStore:
		return "load/store"
	case RelIndirect:
		return "indirect"
	case RelSplitEntry:
		return "split-table entry"
	default:
		return "unknown"
	}
}

// Xref is one referrer -> relation entry in the index rooted at a target
// address.
type Xref struct {
	Referrer Address
	Relation Relation
}

// XrefIndex is the cross-reference index of spec.md §3: target address ->
// ordered list of referrers. It is rebuilt wholesale by the analyzer after
// every command; nothing hand-edits it.
type XrefIndex struct {
	byTarget map[Address][]Xref
}

// NewXrefIndex builds an index from raw (target, xref) pairs, de-duplicating
// identical (referrer, relation) pairs per target (invariant #4). Each
// target's list keeps the order it was given in; it is not re-sorted here
// (the analyzer sorts by referrer address before calling).
func NewXrefIndex(pairs map[Address][]Xref) *XrefIndex {
	idx := &XrefIndex{byTarget: make(map[Address][]Xref, len(pairs))}
	for target, xs := range pairs {
		seen := make(map[Xref]bool, len(xs))
		var dedup []Xref
		for _, x := range xs {
			if seen[x] {
				continue
			}
			seen[x] = true
			dedup = append(dedup, x)
		}
		idx.byTarget[target] = dedup
	}
	return idx
}

// Of returns the referrers of target, in the order the analyzer recorded
// them.
func (x *XrefIndex) Of(target Address) []Xref {
	if x == nil {
		return nil
	}
	return x.byTarget[target]
}

// Targets returns every address that has at least one referrer.
func (x *XrefIndex) Targets() []Address {
	if x == nil {
		return nil
	}
	out := make([]Address, 0, len(x.byTarget))
	for a := range x.byTarget {
		out = append(out, a)
	}
	return out
}
