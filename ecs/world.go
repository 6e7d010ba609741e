package ecs

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Default capacities used when Options leaves them zero.
const (
	DefaultMaxEntities = 256
	DefaultMaxSystems  = 32
)

// Options configures a World. Capacities are fixed for the World's lifetime.
type Options struct {
	MaxEntities int
	MaxSystems  int
	IDSource    IDSource
	Logger      *logrus.Entry
}

// World ties the entity registry, the component stores and the system
// registry together. It is the only type client code mutates entities
// through, and it is constructed and owned by the frame driver.
type World struct {
	entities *EntityRegistry
	systems  *SystemRegistry
	events   *EventManager
	log      *logrus.Entry

	stores [MaxComponentTypes]anyStore
	names  [MaxComponentTypes]string
	kinds  int
}

// NewWorld creates an empty world. All storage is allocated here.
func NewWorld(opts Options) *World {
	if opts.MaxEntities == 0 {
		opts.MaxEntities = DefaultMaxEntities
	}
	if opts.MaxSystems == 0 {
		opts.MaxSystems = DefaultMaxSystems
	}
	if opts.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		opts.Logger = logrus.NewEntry(l)
	}

	return &World{
		entities: NewEntityRegistry(opts.MaxEntities, opts.IDSource),
		systems:  NewSystemRegistry(opts.MaxSystems, opts.MaxEntities),
		events:   NewEventManager(),
		log:      opts.Logger,
	}
}

// CreateEntity creates an entity with no components. It returns NullEntity
// when the world is full.
func (w *World) CreateEntity() EntityID {
	e := w.entities.Create()
	if e == NullEntity {
		w.log.WithField("capacity", w.entities.Cap()).Warn("entity capacity reached")
		return NullEntity
	}

	// An entity with an empty signature still satisfies systems that
	// require nothing.
	w.systems.SignatureChanged(e, Signature{})

	if w.debugEnabled() {
		w.log.WithField("entity", e).Debug("entity created")
	}
	if w.events.HasSubscribers(EventEntityCreated) {
		w.events.Emit(EntityEvent{Kind: EventEntityCreated, Entity: e})
	}
	return e
}

// DestroyEntity removes e, every component it holds and its system
// memberships. Destroying NullEntity or an unknown entity is a no-op and
// reports false.
func (w *World) DestroyEntity(e EntityID) bool {
	if !w.entities.Destroy(e) {
		return false
	}
	for k := 0; k < w.kinds; k++ {
		w.stores[k].entityDestroyed(e)
	}
	w.systems.EntityDestroyed(e)

	if w.debugEnabled() {
		w.log.WithField("entity", e).Debug("entity destroyed")
	}
	if w.events.HasSubscribers(EventEntityDestroyed) {
		w.events.Emit(EntityEvent{Kind: EventEntityDestroyed, Entity: e})
	}
	return true
}

// Alive reports whether e is a live entity.
func (w *World) Alive(e EntityID) bool {
	return w.entities.Contains(e)
}

// Signature returns e's signature; e must be live.
func (w *World) Signature(e EntityID) Signature {
	return w.entities.Signature(e)
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	return w.entities.Len()
}

// Capacity returns the maximum number of live entities.
func (w *World) Capacity() int {
	return w.entities.Cap()
}

// AllEntities returns every live entity as a read-only view, invalidated by
// the next create or destroy.
func (w *World) AllEntities() []EntityID {
	return w.entities.Entities()
}

// RegisterSystem registers a membership-only system. Its set starts with
// every live entity already matching required.
func (w *World) RegisterSystem(name string, required Signature) SystemHandle {
	h := w.systems.Register(name, required)
	rec := &w.systems.systems[h]
	for _, e := range w.entities.Entities() {
		if w.entities.Signature(e).Contains(required) {
			rec.members.Insert(e)
		}
	}

	if w.debugEnabled() {
		w.log.WithFields(logrus.Fields{
			"system":   name,
			"required": required.String(),
			"members":  rec.members.Len(),
		}).Debug("system registered")
	}
	return h
}

// AddSystem registers s like RegisterSystem and schedules it to run on
// every Update, in registration order.
func (w *World) AddSystem(name string, required Signature, s System) SystemHandle {
	h := w.RegisterSystem(name, required)
	rec := &w.systems.systems[h]
	rec.runner = s
	rec.scratch = make([]EntityID, 0, w.entities.Cap())
	return h
}

// Update runs every scheduled system once. Each system iterates a copy of
// its membership taken just before it runs.
func (w *World) Update(f Frame) {
	for i := 0; i < len(w.systems.systems); i++ {
		rec := &w.systems.systems[i]
		if rec.runner == nil {
			continue
		}
		rec.scratch = rec.members.AppendTo(rec.scratch[:0])
		rec.runner.Update(w, f, rec.scratch)
	}
}

// Entities returns the live members of a system as a read-only view.
// Copy it (see Snapshot) before destroying entities while iterating.
func (w *World) Entities(h SystemHandle) []EntityID {
	return w.systems.Entities(h)
}

// Snapshot appends the members of a system to dst.
func (w *World) Snapshot(h SystemHandle, dst []EntityID) []EntityID {
	return w.systems.record("World.Snapshot", h).members.AppendTo(dst)
}

// InSystem reports whether e is currently a member of the system.
func (w *World) InSystem(h SystemHandle, e EntityID) bool {
	return w.systems.Contains(h, e)
}

// Query appends to dst every live entity whose signature contains required.
// It scans all entities; prefer a registered system for per-frame work.
func (w *World) Query(required Signature, dst []EntityID) []EntityID {
	for _, e := range w.entities.Entities() {
		if w.entities.Signature(e).Contains(required) {
			dst = append(dst, e)
		}
	}
	return dst
}

// Systems returns the system registry for inspection.
func (w *World) Systems() *SystemRegistry {
	return w.systems
}

// ComponentName returns the name t was registered under.
func (w *World) ComponentName(t ComponentType) string {
	if int(t) >= w.kinds {
		Violate("World.ComponentName", "unregistered component type %d", t)
	}
	return w.names[t]
}

// ComponentCount returns the number of registered component types.
func (w *World) ComponentCount() int {
	return w.kinds
}

// Events returns the world's event manager
func (w *World) Events() *EventManager {
	return w.events
}

// Logger returns the world's log entry
func (w *World) Logger() *logrus.Entry {
	return w.log
}

func (w *World) debugEnabled() bool {
	return w.log.Logger.IsLevelEnabled(logrus.DebugLevel)
}
