// Package symbols answers the read-only symbol queries of spec.md §6:
// label-by-address, label-by-name, list-all-labels, cross-refs-of-address.
// It is a thin view over internal/project state, never a mutator.
package symbols

import (
	"sort"

	"github.com/dpeek64/retrodisasm/internal/project"
)

// Address is re-exported so callers rarely need to import project directly.
type Address = project.Address

// Entry describes one resolved label, in the priority order
// project.LabelTable.Resolve uses (User > External > Auto).
type Entry struct {
	Address Address
	Name    string
	Kind    project.Kind
}

// ByAddress resolves the label shown for a, if any.
func ByAddress(p *project.Project, a Address) (Entry, bool) {
	name, kind, ok := p.Labels.Resolve(a)
	if !ok {
		return Entry{}, false
	}
	return Entry{Address: a, Name: name, Kind: kind}, true
}

// ByName searches every label kind for name, User first (the common case:
// a user typing a label they just defined), then External, then Auto.
func ByName(p *project.Project, name string) (Entry, bool) {
	for _, k := range [...]project.Kind{project.User, project.External, project.Auto} {
		for a, n := range allOfKind(p, k) {
			if n == name {
				return Entry{Address: a, Name: n, Kind: k}, true
			}
		}
	}
	return Entry{}, false
}

// All returns every label across all three kinds, sorted by address then by
// Kind's declared order (User, Auto, External) for a stable, diff-friendly
// listing.
func All(p *project.Project) []Entry {
	var out []Entry
	for _, k := range [...]project.Kind{project.User, project.External, project.Auto} {
		for a, n := range allOfKind(p, k) {
			out = append(out, Entry{Address: a, Name: n, Kind: k})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Address != out[j].Address {
			return out[i].Address < out[j].Address
		}
		return out[i].Kind < out[j].Kind
	})
	return out
}

func allOfKind(p *project.Project, k project.Kind) map[Address]string {
	switch k {
	case project.User:
		return p.Labels.AllUser()
	case project.Auto:
		return p.Labels.AllAuto()
	default:
		// External labels describe well-known platform addresses outside
		// the binary range (spec.md), so they can't be found by walking
		// [Origin, End()) — AllExternal is the bulk accessor for them.
		return p.Labels.AllExternal()
	}
}

// CrossRefsOf returns every recorded cross-reference targeting a, or nil if
// the analyzer has not run yet or nothing targets it.
func CrossRefsOf(p *project.Project, a Address) []project.Xref {
	if p.Xrefs == nil {
		return nil
	}
	return p.Xrefs.Of(a)
}
