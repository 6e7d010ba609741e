package ecs

// EntitySet is a fixed-capacity unordered set of entity IDs backed by a dense
// array, with O(1) insert, remove and membership test.
type EntitySet struct {
	members List[EntityID]
	slots   Map[int]
}

// NewEntitySet creates an empty set for at most capacity entities.
func NewEntitySet(capacity int) EntitySet {
	return EntitySet{
		members: NewList[EntityID](capacity),
		slots:   NewMap[int](capacity),
	}
}

// Insert adds e. Inserting a member again does nothing.
func (s *EntitySet) Insert(e EntityID) {
	if s.slots.Contains(uint64(e)) {
		return
	}
	s.slots.Add(uint64(e), s.members.Len())
	s.members.Push(e)
}

// Remove deletes e. Removing a non-member does nothing.
func (s *EntitySet) Remove(e EntityID) {
	slot, ok := s.slots.Lookup(uint64(e))
	if !ok {
		return
	}
	last := s.members.Len() - 1
	moved := s.members.At(last)

	s.members.SwapRemove(slot)
	if moved != e {
		s.slots.Set(uint64(moved), slot)
	}
	s.slots.Remove(uint64(e))
}

// Contains reports whether e is a member.
func (s *EntitySet) Contains(e EntityID) bool {
	return s.slots.Contains(uint64(e))
}

// Slice returns the members as a read-only view. Any mutation of the set,
// including one caused by destroying an entity, invalidates it.
func (s *EntitySet) Slice() []EntityID {
	return s.members.Slice()
}

// AppendTo appends the members to dst and returns the result. Use it to get a
// stable copy before iterating code that may mutate the set.
func (s *EntitySet) AppendTo(dst []EntityID) []EntityID {
	return append(dst, s.members.Slice()...)
}

// Clear removes every member.
func (s *EntitySet) Clear() {
	s.members.Clear()
	s.slots.Clear()
}

func (s *EntitySet) Len() int { return s.members.Len() }
