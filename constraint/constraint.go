// Package constraint holds the set of blocked locations a search must not expand.
//
// A Set is an immutable snapshot: every constructor and every "mutating"
// method copies, so a Set handed to a search can never change under it.
// The zero Set is empty and ready to use.
package constraint

import (
	"sort"

	"github.com/katalvlaran/addisroute/roadmap"
)

// Set is an immutable set of blocked location names.
type Set struct {
	m map[string]struct{}
}

// New returns a Set holding names. Duplicates collapse; the empty name is ignored.
func New(names ...string) Set {
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		if n == "" {
			continue
		}
		m[n] = struct{}{}
	}

	return Set{m: m}
}

// Contains reports whether id is blocked. Matching is exact.
func (s Set) Contains(id string) bool {
	_, ok := s.m[id]
	return ok
}

// Len returns the number of blocked names.
func (s Set) Len() int { return len(s.m) }

// Names returns the blocked names sorted ascending. Never nil.
func (s Set) Names() []string {
	out := make([]string, 0, len(s.m))
	for n := range s.m {
		out = append(out, n)
	}
	sort.Strings(out)

	return out
}

// With returns a new Set holding s plus names.
func (s Set) With(names ...string) Set {
	return New(append(s.Names(), names...)...)
}

// Without returns a new Set holding s minus names.
func (s Set) Without(names ...string) Set {
	drop := New(names...)
	keep := make([]string, 0, len(s.m))
	for n := range s.m {
		if !drop.Contains(n) {
			keep = append(keep, n)
		}
	}

	return New(keep...)
}

// Toggle returns a new Set with name added if absent, removed if present.
func (s Set) Toggle(name string) Set {
	if s.Contains(name) {
		return s.Without(name)
	}

	return s.With(name)
}

// Canonical returns a new Set in which every name that resolves in g
// (case-insensitively) is replaced by its canonical key. Names that do not
// resolve are returned separately and dropped: they cannot block anything.
func (s Set) Canonical(g *roadmap.Graph) (Set, []string) {
	keep := make([]string, 0, len(s.m))
	var unknown []string
	for _, n := range s.Names() {
		if id, ok := g.Resolve(n); ok {
			keep = append(keep, id)
			continue
		}
		unknown = append(unknown, n)
	}

	return New(keep...), unknown
}
