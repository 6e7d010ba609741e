package systems

import (
	"ebiten-pathsim/components"
	"ebiten-pathsim/ecs"
	"ebiten-pathsim/vmath"
)

// PathFollowSystem steers entities along their Path by setting their
// velocity; MovementSystem does the actual moving
type PathFollowSystem struct {
	components *components.Registry
	speed      float64
	radius     float64
}

// NewPathFollowSystem creates a path follower travelling at speed pixels per
// second that treats a point as reached within radius pixels
func NewPathFollowSystem(reg *components.Registry, speed, radius float64) *PathFollowSystem {
	return &PathFollowSystem{
		components: reg,
		speed:      speed,
		radius:     radius,
	}
}

// Update steers every entity with Transform, Motion and Path
func (s *PathFollowSystem) Update(w *ecs.World, f ecs.Frame, entities []ecs.EntityID) {
	for _, e := range entities {
		p := s.components.Path.Get(e)

		// An empty path leaves the entity's own motion alone
		if p.Len() == 0 {
			continue
		}

		t := s.components.Transform.Get(e)
		m := s.components.Motion.Get(e)

		target, ok := p.Next()
		for ok && t.Position.Distance(target) <= s.radius {
			p.Advance()
			target, ok = p.Next()
		}

		if !ok {
			// Arrived at the last point
			m.Velocity = vmath.Vec2{}
			p.Clear()
			continue
		}

		offset := target.Sub(t.Position)
		dist := offset.Length()

		// Never step past the point in a single frame
		speed := s.speed
		if f.Delta > 0 && dist/f.Delta < speed {
			speed = dist / f.Delta
		}

		m.Velocity = offset.Normalized().Scale(speed)
		t.Rotation = offset.Angle()
	}
}
