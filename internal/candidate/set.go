// Package candidate holds the candidate-class set and the heuristic
// validator that decides which extracted tokens plausibly name utility
// classes.
package candidate

import "sort"

// Set is an unordered, duplicate-free collection of candidate class
// tokens. Membership is the only guaranteed property; no frequency or
// provenance is tracked.
type Set struct {
	members map[string]struct{}
}

// NewSet creates an empty candidate set.
func NewSet() *Set {
	return &Set{members: make(map[string]struct{})}
}

// Add inserts a token into the set. Empty tokens are ignored.
func (s *Set) Add(token string) {
	if token == "" {
		return
	}

	s.members[token] = struct{}{}
}

// Has reports whether the token is a member of the set.
func (s *Set) Has(token string) bool {
	_, ok := s.members[token]

	return ok
}

// Len returns the number of members.
func (s *Set) Len() int {
	return len(s.members)
}

// Sorted returns the members in lexicographic order. The candidate set
// itself is unordered; sorting exists so downstream consumers (the
// compiler build step, CLI output, tests) see a deterministic sequence.
func (s *Set) Sorted() []string {
	out := make([]string, 0, len(s.members))
	for token := range s.members {
		out = append(out, token)
	}

	sort.Strings(out)

	return out
}

// Equal reports whether two sets have identical membership.
func (s *Set) Equal(other *Set) bool {
	if s.Len() != other.Len() {
		return false
	}

	for token := range s.members {
		if !other.Has(token) {
			return false
		}
	}

	return true
}
