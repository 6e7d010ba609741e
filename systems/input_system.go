package systems

import (
	"math"

	"ebiten-pathsim/components"
	"ebiten-pathsim/ecs"
	"ebiten-pathsim/vmath"
)

// Spawner creates an entity at a position. It returns NullEntity when the
// world is full.
type Spawner interface {
	SpawnAt(pos vmath.Vec2) ecs.EntityID
}

// InputSystem turns the frame's input snapshot into selection, path drawing
// and the discrete actions. It is added with the pickable signature, so the
// entities it receives are the candidates for selection.
type InputSystem struct {
	components *components.Registry
	spawner    Spawner
	tileSize   float64

	selected  ecs.EntityID
	drawing   bool
	lastTileX int
	lastTileY int
}

// NewInputSystem creates an input system snapping path points to tiles of
// tileSize pixels. spawner may be nil, which disables ActionSpawn.
func NewInputSystem(reg *components.Registry, spawner Spawner, tileSize int) *InputSystem {
	return &InputSystem{
		components: reg,
		spawner:    spawner,
		tileSize:   float64(tileSize),
		selected:   ecs.NullEntity,
		lastTileX:  -1,
		lastTileY:  -1,
	}
}

// Selected returns the selected entity, or NullEntity
func (s *InputSystem) Selected() ecs.EntityID {
	return s.selected
}

// Drawing reports whether pointer movement is currently extending a path
func (s *InputSystem) Drawing() bool {
	return s.drawing
}

// Update handles this frame's input
func (s *InputSystem) Update(w *ecs.World, f ecs.Frame, entities []ecs.EntityID) {
	in := f.Input

	// The selection may have been destroyed elsewhere since last frame
	if s.selected != ecs.NullEntity && !w.Alive(s.selected) {
		s.deselect()
	}

	if in.Actions.Has(ActionClearPaths) {
		s.clearPaths()
	}
	if in.Actions.Has(ActionDestroySelected) && s.selected != ecs.NullEntity {
		w.DestroyEntity(s.selected)
		s.deselect()
	}
	if in.Actions.Has(ActionSpawn) && s.spawner != nil {
		s.spawner.SpawnAt(in.Pointer)
	}

	if in.Pressed {
		s.selectAt(w, entities, in.Pointer)
	}
	if s.drawing && (in.Held || in.Pressed) {
		s.placePathPoint(in.Pointer)
	}
	if in.Released {
		s.drawing = false
	}
}

// selectAt selects the entity under the pointer and starts a new path for it
func (s *InputSystem) selectAt(w *ecs.World, entities []ecs.EntityID, pointer vmath.Vec2) {
	e := EntityAtPosition(s.components.Transform, entities, pointer)
	if e == ecs.NullEntity || !w.Alive(e) {
		s.deselect()
		return
	}

	s.selected = e
	if p, ok := s.components.Path.Lookup(e); ok {
		p.Clear()
	} else {
		s.components.Path.Add(e, components.Path{})
	}

	s.drawing = true
	s.lastTileX, s.lastTileY = -1, -1

	w.Logger().WithField("entity", e).Debug("entity selected")
}

// placePathPoint appends the centre of the tile under the pointer to the
// selected entity's path, once per tile entered
func (s *InputSystem) placePathPoint(pointer vmath.Vec2) {
	p, ok := s.components.Path.Lookup(s.selected)
	if !ok || p.Full() {
		return
	}

	tileX := int(math.Floor(pointer.X / s.tileSize))
	tileY := int(math.Floor(pointer.Y / s.tileSize))
	if tileX == s.lastTileX && tileY == s.lastTileY {
		return
	}

	p.Push(vmath.V(
		float64(tileX)*s.tileSize+s.tileSize/2,
		float64(tileY)*s.tileSize+s.tileSize/2,
	))
	s.lastTileX, s.lastTileY = tileX, tileY
}

// clearPaths empties every path in the world
func (s *InputSystem) clearPaths() {
	s.components.Path.Store().Each(func(_ ecs.EntityID, p *components.Path) {
		p.Clear()
	})
	s.drawing = false
}

func (s *InputSystem) deselect() {
	s.selected = ecs.NullEntity
	s.drawing = false
}
