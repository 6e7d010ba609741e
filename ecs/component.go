package ecs

// Component is the typed handle for one registered component kind. It is
// the only way to attach, detach or read values of type T, and every
// mutation keeps the entity's Signature and system membership in step.
type Component[T any] struct {
	world *World
	kind  ComponentType
	name  string
	store *Store[T]
}

// RegisterComponent assigns the next free ComponentType to T and creates its
// store. Register each Go type once per World; registering past
// MaxComponentTypes is a contract violation.
func RegisterComponent[T any](w *World, name string) *Component[T] {
	if w.kinds == MaxComponentTypes {
		Violate("RegisterComponent", "maximum of %d component types reached registering %q", MaxComponentTypes, name)
	}
	kind := ComponentType(w.kinds)
	store := NewStore[T](kind, w.entities.Cap())

	w.stores[kind] = store
	w.names[kind] = name
	w.kinds++

	if w.debugEnabled() {
		w.log.WithField("component", name).WithField("type", kind).Debug("component registered")
	}

	return &Component[T]{world: w, kind: kind, name: name, store: store}
}

// Add attaches v to e, sets the type's bit in e's signature and re-evaluates
// system membership. e must be live and must not already hold this type.
func (c *Component[T]) Add(e EntityID, v T) {
	w := c.world
	if !w.entities.Contains(e) {
		Violate("Component.Add", "unknown entity %s adding %s", e, c.name)
	}
	// Checked here as well as in the store so nothing is applied on failure.
	if c.store.Has(e) {
		Violate("Component.Add", "entity %s already has %s", e, c.name)
	}

	c.store.Insert(e, v)
	sig := w.entities.Signature(e).With(c.kind)
	w.entities.SetSignature(e, sig)
	w.systems.SignatureChanged(e, sig)

	if w.events.HasSubscribers(EventComponentAdded) {
		w.events.Emit(ComponentEvent{Kind: EventComponentAdded, Entity: e, Component: c.kind, Signature: sig})
	}
}

// Remove detaches e's value, clears the bit and re-evaluates membership.
func (c *Component[T]) Remove(e EntityID) {
	w := c.world
	if !w.entities.Contains(e) {
		Violate("Component.Remove", "unknown entity %s removing %s", e, c.name)
	}
	if !c.store.Has(e) {
		Violate("Component.Remove", "entity %s has no %s", e, c.name)
	}

	c.store.Remove(e)
	sig := w.entities.Signature(e).Without(c.kind)
	w.entities.SetSignature(e, sig)
	w.systems.SignatureChanged(e, sig)

	if w.events.HasSubscribers(EventComponentRemoved) {
		w.events.Emit(ComponentEvent{Kind: EventComponentRemoved, Entity: e, Component: c.kind, Signature: sig})
	}
}

// Get returns a pointer to e's value; e must hold the component. The pointer
// is invalidated by the next removal of this component from any entity.
func (c *Component[T]) Get(e EntityID) *T {
	return c.store.Get(e)
}

// Lookup returns a pointer to e's value, or false when e has none.
func (c *Component[T]) Lookup(e EntityID) (*T, bool) {
	return c.store.Lookup(e)
}

// Has reports whether e holds the component.
func (c *Component[T]) Has(e EntityID) bool {
	return c.store.Has(e)
}

// ID returns the registration-time tag.
func (c *Component[T]) ID() ComponentType {
	return c.kind
}

// Name returns the registered name.
func (c *Component[T]) Name() string {
	return c.name
}

// Store exposes the underlying dense store for read-only iteration.
func (c *Component[T]) Store() *Store[T] {
	return c.store
}
