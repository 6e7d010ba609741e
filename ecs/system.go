package ecs

// System is per-frame logic run by World.Update over the entities matching
// the signature it was added with.
type System interface {
	// Update is called once per frame. entities is a stable copy of the
	// system's membership taken before the call, so the system may destroy
	// entities or change their components while iterating.
	Update(w *World, f Frame, entities []EntityID)
}

// SystemFunc adapts a plain function to System.
type SystemFunc func(w *World, f Frame, entities []EntityID)

// Update calls fn.
func (fn SystemFunc) Update(w *World, f Frame, entities []EntityID) {
	fn(w, f, entities)
}

// SystemHandle identifies a registered system.
type SystemHandle int

type systemRecord struct {
	name     string
	required Signature
	members  EntitySet
	runner   System
	scratch  []EntityID
}

// SystemRegistry keeps, per system, the required signature and the set of
// live entities whose signature contains it. Sets are updated eagerly on
// every signature change.
type SystemRegistry struct {
	systems  []systemRecord
	capacity int // entities per system
}

// NewSystemRegistry creates a registry for at most maxSystems systems, each
// tracking at most maxEntities entities.
func NewSystemRegistry(maxSystems, maxEntities int) *SystemRegistry {
	return &SystemRegistry{
		systems:  make([]systemRecord, 0, maxSystems),
		capacity: maxEntities,
	}
}

// Register adds a system with an empty entity set.
func (r *SystemRegistry) Register(name string, required Signature) SystemHandle {
	if len(r.systems) == cap(r.systems) {
		Violate("SystemRegistry.Register", "system capacity %d reached registering %q", cap(r.systems), name)
	}
	r.systems = append(r.systems, systemRecord{
		name:     name,
		required: required,
		members:  NewEntitySet(r.capacity),
	})
	return SystemHandle(len(r.systems) - 1)
}

// SignatureChanged re-evaluates e against every system.
func (r *SystemRegistry) SignatureChanged(e EntityID, sig Signature) {
	for i := range r.systems {
		rec := &r.systems[i]
		if sig.Contains(rec.required) {
			rec.members.Insert(e)
		} else {
			rec.members.Remove(e)
		}
	}
}

// EntityDestroyed removes e from every system.
func (r *SystemRegistry) EntityDestroyed(e EntityID) {
	for i := range r.systems {
		r.systems[i].members.Remove(e)
	}
}

// Entities returns a read-only view of the system's members.
func (r *SystemRegistry) Entities(h SystemHandle) []EntityID {
	return r.record("SystemRegistry.Entities", h).members.Slice()
}

// Contains reports whether e is a member of the system.
func (r *SystemRegistry) Contains(h SystemHandle, e EntityID) bool {
	return r.record("SystemRegistry.Contains", h).members.Contains(e)
}

// Required returns the system's required signature.
func (r *SystemRegistry) Required(h SystemHandle) Signature {
	return r.record("SystemRegistry.Required", h).required
}

// Name returns the name the system was registered with.
func (r *SystemRegistry) Name(h SystemHandle) string {
	return r.record("SystemRegistry.Name", h).name
}

// Len returns the number of registered systems.
func (r *SystemRegistry) Len() int {
	return len(r.systems)
}

func (r *SystemRegistry) record(op string, h SystemHandle) *systemRecord {
	if h < 0 || int(h) >= len(r.systems) {
		Violate(op, "unknown system handle %d", h)
	}
	return &r.systems[h]
}
