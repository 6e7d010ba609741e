package systems

import (
	"math"

	"ebiten-pathsim/components"
	"ebiten-pathsim/ecs"
	"ebiten-pathsim/vmath"
)

// MovementSystem integrates velocity and keeps entities inside the arena,
// bouncing them off its edges
type MovementSystem struct {
	components *components.Registry
	arena      vmath.Rect
}

// NewMovementSystem creates a movement system for an arena of the given size
func NewMovementSystem(reg *components.Registry, width, height float64) *MovementSystem {
	return &MovementSystem{
		components: reg,
		arena:      vmath.Rect{Size: vmath.V(width, height)},
	}
}

// Update moves every entity with Transform and Motion
func (s *MovementSystem) Update(w *ecs.World, f ecs.Frame, entities []ecs.EntityID) {
	for _, e := range entities {
		t := s.components.Transform.Get(e)
		m := s.components.Motion.Get(e)

		t.Position = t.Position.Add(m.Velocity.Scale(f.Delta))
		s.bounce(t, m)
	}
}

// bounce reflects the velocity away from any edge the box touches and pulls
// the box back inside, so it cannot get stuck flipping direction every frame
func (s *MovementSystem) bounce(t *components.Transform, m *components.Motion) {
	half := t.Size.Scale(0.5)
	lo := s.arena.Min.Add(half)
	hi := s.arena.Max().Sub(half)

	if t.Position.X <= lo.X {
		t.Position.X = lo.X
		m.Velocity.X = math.Abs(m.Velocity.X)
	} else if t.Position.X >= hi.X {
		t.Position.X = hi.X
		m.Velocity.X = -math.Abs(m.Velocity.X)
	}

	if t.Position.Y <= lo.Y {
		t.Position.Y = lo.Y
		m.Velocity.Y = math.Abs(m.Velocity.Y)
	} else if t.Position.Y >= hi.Y {
		t.Position.Y = hi.Y
		m.Velocity.Y = -math.Abs(m.Velocity.Y)
	}
}
