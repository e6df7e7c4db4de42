package labels

import (
	"maps"
	"slices"
)

// Set is an unordered collection of distinct label names
type Set map[string]struct{}

// NewSet creates a set holding the given labels
func NewSet(labels ...string) Set {
	s := make(Set, len(labels))
	for _, label := range labels {
		s[label] = struct{}{}
	}
	return s
}

// Has reports whether label is in the set
func (s Set) Has(label string) bool {
	_, ok := s[label]
	return ok
}

// Len returns the number of labels in the set
func (s Set) Len() int {
	return len(s)
}

// Sorted returns the labels in lexical order. A nil or empty set yields an empty slice.
func (s Set) Sorted() []string {
	if len(s) == 0 {
		return []string{}
	}
	return slices.Sorted(maps.Keys(s))
}

// Equal reports whether both sets hold the same labels
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for label := range s {
		if !other.Has(label) {
			return false
		}
	}
	return true
}

// Union flattens label lists into one deduplicated set
func Union(lists ...[]string) Set {
	out := make(Set)
	for _, list := range lists {
		for _, label := range list {
			out[label] = struct{}{}
		}
	}
	return out
}

// Intersect returns the labels present in both a and b
func Intersect(a, b Set) Set {
	// iterate the smaller side
	if len(b) < len(a) {
		a, b = b, a
	}

	out := make(Set)
	for label := range a {
		if b.Has(label) {
			out[label] = struct{}{}
		}
	}
	return out
}

// Difference returns the labels of a that are not in b
func Difference(a, b Set) Set {
	out := make(Set)
	for label := range a {
		if !b.Has(label) {
			out[label] = struct{}{}
		}
	}
	return out
}
