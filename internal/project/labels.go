package project

import "fmt"

// Kind distinguishes the three label provenances of spec.md §3.
type Kind int

const (
	User Kind = iota
	Auto
	External
)

func (k Kind) String() string {
	switch k {
	case User:
		return "User"
	case Auto:
		return "Auto"
	case External:
		return "External"
	default:
		return "Unknown"
	}
}

// LabelCollision is returned when a name is already used by a distinct
// address within the same kind.
type LabelCollision struct {
	Name       string
	Kind       Kind
	ExistingAt Address
}

func (e *LabelCollision) Error() string {
	return fmt.Sprintf("project: label %q already assigned to %#04x (%s)", e.Name, e.ExistingAt, e.Kind)
}

// LabelNameInvalid is returned for empty names or names rejected by the
// active formatter dialect.
type LabelNameInvalid struct {
	Name   string
	Reason string
}

func (e *LabelNameInvalid) Error() string {
	return fmt.Sprintf("project: label name %q invalid: %s", e.Name, e.Reason)
}

// LabelTable holds the three label layers and enforces per-kind name
// uniqueness.
type LabelTable struct {
	byKind [3]map[Address]string
	names  [3]map[string]Address
}

func newLabelTable() *LabelTable {
	lt := &LabelTable{}
	for i := range lt.byKind {
		lt.byKind[i] = make(map[Address]string)
		lt.names[i] = make(map[string]Address)
	}
	return lt
}

func (lt *LabelTable) clone() *LabelTable {
	out := newLabelTable()
	for k := 0; k < 3; k++ {
		for a, n := range lt.byKind[k] {
			out.byKind[k][a] = n
		}
		for n, a := range lt.names[k] {
			out.names[k][n] = a
		}
	}
	return out
}

// At returns the name at (address, kind), if any.
func (lt *LabelTable) At(a Address, k Kind) (string, bool) {
	n, ok := lt.byKind[k][a]
	return n, ok
}

// Resolve returns the label that should be shown for a, preferring User,
// then External, then Auto (External labels "always resolve" per spec.md
// §4.4, but a User label at the same address always wins).
func (lt *LabelTable) Resolve(a Address) (name string, kind Kind, ok bool) {
	if n, ok := lt.byKind[User][a]; ok {
		return n, User, true
	}
	if n, ok := lt.byKind[External][a]; ok {
		return n, External, true
	}
	if n, ok := lt.byKind[Auto][a]; ok {
		return n, Auto, true
	}
	return "", 0, false
}

// SetUser assigns or clears the User label at a, returning the previous
// value for the command layer's undo snapshot. name == "" clears it.
func (lt *LabelTable) SetUser(a Address, name string) (prev string, hadPrev bool, err error) {
	prev, hadPrev = lt.byKind[User][a]
	if name == "" {
		delete(lt.byKind[User], a)
		if hadPrev {
			delete(lt.names[User], prev)
		}
		return prev, hadPrev, nil
	}
	if existing, ok := lt.names[User][name]; ok && existing != a {
		return prev, hadPrev, &LabelCollision{Name: name, Kind: User, ExistingAt: existing}
	}
	if hadPrev {
		delete(lt.names[User], prev)
	}
	lt.byKind[User][a] = name
	lt.names[User][name] = a
	return prev, hadPrev, nil
}

// setExternal seeds a platform label at project creation; never exposed as
// a mutating command.
func (lt *LabelTable) setExternal(a Address, name string) {
	lt.byKind[External][a] = name
	lt.names[External][name] = a
}

// ReplaceAuto clears every Auto label and installs a fresh set computed by
// the analyzer. It never overwrites an address that currently holds a User
// label, and it skips any name that collides with an existing User label
// (DESIGN.md Open Question 2: silent shadowing, not LabelCollision).
func (lt *LabelTable) ReplaceAuto(fresh map[Address]string) {
	lt.byKind[Auto] = make(map[Address]string, len(fresh))
	lt.names[Auto] = make(map[string]Address, len(fresh))
	for a, name := range fresh {
		if _, hasUser := lt.byKind[User][a]; hasUser {
			continue
		}
		if _, collidesWithUser := lt.names[User][name]; collidesWithUser {
			continue
		}
		lt.byKind[Auto][a] = name
		lt.names[Auto][name] = a
	}
}

// AllUser returns every User label, for snapshotting/export.
func (lt *LabelTable) AllUser() map[Address]string {
	out := make(map[Address]string, len(lt.byKind[User]))
	for a, n := range lt.byKind[User] {
		out[a] = n
	}
	return out
}

// AllAuto returns every Auto label, for rendering.
func (lt *LabelTable) AllAuto() map[Address]string {
	out := make(map[Address]string, len(lt.byKind[Auto]))
	for a, n := range lt.byKind[Auto] {
		out[a] = n
	}
	return out
}

// AllExternal returns every External label (platform KERNAL/BASIC/I-O
// addresses, almost always outside [Origin, End())), for symbol listing.
func (lt *LabelTable) AllExternal() map[Address]string {
	out := make(map[Address]string, len(lt.byKind[External]))
	for a, n := range lt.byKind[External] {
		out[a] = n
	}
	return out
}
