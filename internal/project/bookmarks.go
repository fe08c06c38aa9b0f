package project

// BookmarkSet is a pure navigation aid: a set of addresses with no effect
// on disassembly.
type BookmarkSet struct {
	set map[Address]bool
}

func newBookmarkSet() *BookmarkSet {
	return &BookmarkSet{set: make(map[Address]bool)}
}

func (b *BookmarkSet) clone() *BookmarkSet {
	out := newBookmarkSet()
	for a := range b.set {
		out.set[a] = true
	}
	return out
}

func (b *BookmarkSet) Has(a Address) bool { return b.set[a] }

// Toggle flips the bookmark at a, returning whether it is now present.
func (b *BookmarkSet) Toggle(a Address) bool {
	if b.set[a] {
		delete(b.set, a)
		return false
	}
	b.set[a] = true
	return true
}

// All returns every bookmarked address, unordered.
func (b *BookmarkSet) All() []Address {
	out := make([]Address, 0, len(b.set))
	for a := range b.set {
		out = append(out, a)
	}
	return out
}
