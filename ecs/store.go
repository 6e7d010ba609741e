package ecs

// anyStore is the type-erased view of a Store the World needs to fan out
// entity destruction.
type anyStore interface {
	entityDestroyed(e EntityID)
	Has(e EntityID) bool
	Len() int
}

// Store owns every value of one component type. Values are packed in a dense
// array with their own slot numbering, unrelated to the EntityRegistry's.
type Store[T any] struct {
	kind   ComponentType
	values List[T]
	owners List[EntityID]
	slots  Map[int]
}

// NewStore creates a store for at most capacity values of kind.
func NewStore[T any](kind ComponentType, capacity int) *Store[T] {
	return &Store[T]{
		kind:   kind,
		values: NewList[T](capacity),
		owners: NewList[EntityID](capacity),
		slots:  NewMap[int](capacity),
	}
}

// Kind returns the component type this store holds.
func (s *Store[T]) Kind() ComponentType {
	return s.kind
}

// Insert stores v for e. Inserting twice for the same entity is a contract
// violation.
func (s *Store[T]) Insert(e EntityID, v T) {
	if s.slots.Contains(uint64(e)) {
		Violate("Store.Insert", "entity %s already has component %d", e, s.kind)
	}
	slot := s.values.Len()
	s.values.Push(v)
	s.owners.Push(e)
	s.slots.Add(uint64(e), slot)
}

// Remove deletes e's value by swapping the last value into its slot.
func (s *Store[T]) Remove(e EntityID) {
	slot, ok := s.slots.Lookup(uint64(e))
	if !ok {
		Violate("Store.Remove", "entity %s has no component %d", e, s.kind)
	}
	s.removeAt(e, slot)
}

func (s *Store[T]) removeAt(e EntityID, slot int) {
	last := s.values.Len() - 1
	moved := s.owners.At(last)

	s.values.SwapRemove(slot)
	s.owners.SwapRemove(slot)
	if moved != e {
		s.slots.Set(uint64(moved), slot)
	}
	s.slots.Remove(uint64(e))
}

// Get returns a pointer to e's value. The pointer is invalidated by the next
// removal from this store.
func (s *Store[T]) Get(e EntityID) *T {
	slot, ok := s.slots.Lookup(uint64(e))
	if !ok {
		Violate("Store.Get", "entity %s has no component %d", e, s.kind)
	}
	return s.values.Ref(slot)
}

// Lookup returns a pointer to e's value and whether it exists.
func (s *Store[T]) Lookup(e EntityID) (*T, bool) {
	slot, ok := s.slots.Lookup(uint64(e))
	if !ok {
		return nil, false
	}
	return s.values.Ref(slot), true
}

// Has reports whether e holds a value in this store.
func (s *Store[T]) Has(e EntityID) bool {
	return s.slots.Contains(uint64(e))
}

// entityDestroyed removes e's value if it has one.
func (s *Store[T]) entityDestroyed(e EntityID) {
	if slot, ok := s.slots.Lookup(uint64(e)); ok {
		s.removeAt(e, slot)
	}
}

// Each calls fn for every stored value in slot order. fn must not add or
// remove values of this store.
func (s *Store[T]) Each(fn func(e EntityID, v *T)) {
	owners := s.owners.Slice()
	for i, e := range owners {
		fn(e, s.values.Ref(i))
	}
}

// Entities returns the owners of the stored values in slot order, as a
// read-only view.
func (s *Store[T]) Entities() []EntityID {
	return s.owners.Slice()
}

func (s *Store[T]) Len() int { return s.values.Len() }
