package category

import "strings"

// Set is an unordered set of categories.
// The zero Set is empty.
type Set uint16

// Of returns the set containing cs and everything they subsume,
// following the subsumption table to a fixed point.
func Of(cs ...Category) Set {
	var s Set
	for _, c := range cs {
		s |= Set(c)
	}
	return s.Closure()
}

// Closure returns s extended with every category its members subsume.
// A set holding Reference never holds Scalar: a reference reaches Number
// through its row, but a range is not a single value.
func (s Set) Closure() Set {
	for {
		next := s
		for _, c := range All {
			if s.Has(c) {
				next |= implies[c]
			}
		}
		if next == s {
			break
		}
		s = next
	}
	if s.Has(Reference) {
		s &^= Set(Scalar)
	}
	return s
}

// With returns s plus cs, without closing over the subsumption table.
// Composite nodes use it for structural categories (an array of numbers is
// a Number-typed array, not a Scalar).
func (s Set) With(cs ...Category) Set {
	for _, c := range cs {
		s |= Set(c)
	}
	return s
}

// Has reports whether s contains c.
func (s Set) Has(c Category) bool {
	return c != 0 && s&Set(c) == Set(c)
}

// Union returns the categories in s or o.
func (s Set) Union(o Set) Set {
	return s | o
}

// Intersect returns the categories in both s and o.
func (s Set) Intersect(o Set) Set {
	return s & o
}

// IsEmpty reports whether s has no categories.
func (s Set) IsEmpty() bool {
	return s == 0
}

// Categories returns the members of s in declaration order.
func (s Set) Categories() []Category {
	out := make([]Category, 0, len(All))
	for _, c := range All {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// String renders s as "{Number, Logical}" in declaration order.
func (s Set) String() string {
	cs := s.Categories()
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
