package pixel

// Set is a deduplicating collection of drawn pixel coordinates.
// It remembers insertion order so that iterating the accumulated pixels is
// reproducible run to run. The zero value is not usable; call NewSet.
//
// Set is not safe for concurrent use; it is owned by a single session.
type Set struct {
	members map[Coord]struct{}
	order   []Coord
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{members: make(map[Coord]struct{})}
}

// Contains reports whether c has been inserted.
// Complexity: O(1) amortized.
func (s *Set) Contains(c Coord) bool {
	_, ok := s.members[c]
	return ok
}

// InsertNew adds every coordinate in batch that is not already present and
// returns exactly that subset, in the caller-supplied order. Duplicates
// within the batch itself are also collapsed: the first occurrence wins.
// Complexity: O(len(batch)) amortized.
func (s *Set) InsertNew(batch []Coord) []Coord {
	fresh := make([]Coord, 0, len(batch))
	for _, c := range batch {
		if _, ok := s.members[c]; ok {
			continue
		}
		s.members[c] = struct{}{}
		s.order = append(s.order, c)
		fresh = append(fresh, c)
	}
	return fresh
}

// Len returns the number of distinct coordinates inserted so far.
func (s *Set) Len() int {
	return len(s.members)
}

// Clear removes every coordinate, restoring the empty initial state.
// Complexity: O(1) plus garbage collection of the old storage.
func (s *Set) Clear() {
	s.members = make(map[Coord]struct{})
	s.order = nil
}

// Coords returns the inserted coordinates in insertion order.
// The returned slice is shared; callers must not mutate it.
func (s *Set) Coords() []Coord {
	return s.order
}
