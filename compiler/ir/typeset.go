package ir

// TypeSet is a sorted set of types without duplicates.
type TypeSet []Type

// NewTypeSet returns the set of the given types.
func NewTypeSet(ts ...Type) TypeSet {
	var s TypeSet
	for _, t := range ts {
		s = s.Add(t)
	}
	return s
}

// Add returns the set with t inserted.
func (s TypeSet) Add(t Type) TypeSet {
	i, found := s.search(t)
	if found {
		return s
	}
	s = append(s, nil)
	copy(s[i+1:], s[i:])
	s[i] = t
	return s
}

// Contains reports if t is in the set.
func (s TypeSet) Contains(t Type) bool {
	_, found := s.search(t)
	return found
}

func (s TypeSet) search(t Type) (int, bool) {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if Compare(s[mid], t) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo, lo < len(s) && Compare(s[lo], t) == 0
}

// Strings returns the display forms of the set members.
func (s TypeSet) Strings() []string {
	out := make([]string, len(s))
	for i, t := range s {
		out[i] = t.String()
	}
	return out
}

// Key returns a string uniquely identifying t, usable as a map key.
func Key(t Type) string {
	return display(t)
}
