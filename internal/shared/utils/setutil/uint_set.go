// Package setutil provides generic set utilities for common ID collection patterns.
package setutil

// UintSet is a set of uint values backed by map[uint]struct{}.
type UintSet struct {
	items map[uint]struct{}
}

// NewUintSet creates a new empty UintSet.
func NewUintSet() *UintSet {
	return &UintSet{items: make(map[uint]struct{})}
}

// NewUintSetFrom creates a UintSet holding every id in ids.
func NewUintSetFrom(ids []uint) *UintSet {
	s := &UintSet{items: make(map[uint]struct{}, len(ids))}
	s.AddAll(ids)
	return s
}

// Add adds an id to the set.
func (s *UintSet) Add(id uint) {
	s.items[id] = struct{}{}
}

// AddAll adds all ids to the set.
func (s *UintSet) AddAll(ids []uint) {
	for _, id := range ids {
		s.items[id] = struct{}{}
	}
}

// Has returns true if the id exists in the set.
func (s *UintSet) Has(id uint) bool {
	_, ok := s.items[id]
	return ok
}

// Len returns the number of ids in the set.
func (s *UintSet) Len() int {
	return len(s.items)
}

// ToSlice returns all ids as a slice. The order is not guaranteed.
func (s *UintSet) ToSlice() []uint {
	result := make([]uint, 0, len(s.items))
	for id := range s.items {
		result = append(result, id)
	}
	return result
}

// ContainsAny reports whether any id in ids is present in the set.
func (s *UintSet) ContainsAny(ids []uint) bool {
	for _, id := range ids {
		if s.Has(id) {
			return true
		}
	}
	return false
}
