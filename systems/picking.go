package systems

import (
	"ebiten-pathsim/components"
	"ebiten-pathsim/ecs"
	"ebiten-pathsim/vmath"
)

// EntityAtPosition returns the first of entities whose box contains point,
// or NullEntity when none does. Entities without a Transform are skipped.
func EntityAtPosition(transforms *ecs.Component[components.Transform], entities []ecs.EntityID, point vmath.Vec2) ecs.EntityID {
	for _, e := range entities {
		t, ok := transforms.Lookup(e)
		if !ok {
			continue
		}
		if t.Bounds().ContainsPoint(point) {
			return e
		}
	}
	return ecs.NullEntity
}
