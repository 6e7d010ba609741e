package ecs

// EntityRegistry issues entity IDs and owns one Signature per live entity.
//
// Signatures live in a dense array. slots maps an entity to its position in
// that array and owners maps a position back to its entity; both are repaired
// together whenever a destroy swaps the last signature into a freed slot.
type EntityRegistry struct {
	src        IDSource
	signatures List[Signature]
	owners     List[EntityID]
	slots      Map[int]
}

// NewEntityRegistry creates a registry for at most capacity live entities.
func NewEntityRegistry(capacity int, src IDSource) *EntityRegistry {
	if src == nil {
		src = DefaultIDSource
	}
	return &EntityRegistry{
		src:        src,
		signatures: NewList[Signature](capacity),
		owners:     NewList[EntityID](capacity),
		slots:      NewMap[int](capacity),
	}
}

// Create allocates a new entity with an empty signature. It returns
// NullEntity when the registry is full.
func (r *EntityRegistry) Create() EntityID {
	if r.signatures.Full() {
		return NullEntity
	}

	// A 64-bit collision with a live entity is astronomically unlikely, but
	// resampling keeps IDs unique rather than merely probably unique.
	id := generateEntityID(r.src)
	for r.slots.Contains(uint64(id)) {
		id = generateEntityID(r.src)
	}

	slot := r.signatures.Len()
	r.signatures.Push(Signature{})
	r.owners.Push(id)
	r.slots.Add(uint64(id), slot)
	return id
}

// Destroy frees the entity's slot. Destroying NullEntity or an unknown ID is
// a no-op and reports false.
func (r *EntityRegistry) Destroy(id EntityID) bool {
	if id == NullEntity {
		return false
	}
	slot, ok := r.slots.Lookup(uint64(id))
	if !ok {
		return false
	}

	last := r.signatures.Len() - 1
	moved := r.owners.At(last)

	r.signatures.SwapRemove(slot)
	r.owners.SwapRemove(slot)
	if moved != id {
		r.slots.Set(uint64(moved), slot)
	}
	r.slots.Remove(uint64(id))
	return true
}

// Signature returns the entity's current signature.
func (r *EntityRegistry) Signature(id EntityID) Signature {
	return r.signatures.At(r.slotOf("EntityRegistry.Signature", id))
}

// SetSignature replaces the entity's signature.
func (r *EntityRegistry) SetSignature(id EntityID, sig Signature) {
	r.signatures.Set(r.slotOf("EntityRegistry.SetSignature", id), sig)
}

// Contains reports whether id is a live entity.
func (r *EntityRegistry) Contains(id EntityID) bool {
	return id != NullEntity && r.slots.Contains(uint64(id))
}

// Entities returns the live entity IDs in slot order. The slice is a view and
// is invalidated by the next Create or Destroy.
func (r *EntityRegistry) Entities() []EntityID {
	return r.owners.Slice()
}

func (r *EntityRegistry) Len() int   { return r.signatures.Len() }
func (r *EntityRegistry) Cap() int   { return r.signatures.Cap() }
func (r *EntityRegistry) Full() bool { return r.signatures.Full() }

func (r *EntityRegistry) slotOf(op string, id EntityID) int {
	slot, ok := r.slots.Lookup(uint64(id))
	if !ok || id == NullEntity {
		Violate(op, "unknown entity %s", id)
	}
	return slot
}
