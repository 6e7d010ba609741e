package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ebiten-pathsim/components"
	"ebiten-pathsim/ecs"
	"ebiten-pathsim/vmath"
)

func TestMovementIntegratesVelocity(t *testing.T) {
	w, reg := newWorld(t)
	w.AddSystem("movement", components.MovingSignature, NewMovementSystem(reg, 1280, 720))

	e := spawnBox(w, reg, vmath.V(100, 100), 10)
	reg.Motion.Add(e, components.Motion{Velocity: vmath.V(60, -30)})

	w.Update(ecs.Frame{Delta: 0.5})

	assert.Equal(t, vmath.V(130, 85), reg.Transform.Get(e).Position)
}

func TestMovementBouncesOffEdges(t *testing.T) {
	w, reg := newWorld(t)
	w.AddSystem("movement", components.MovingSignature, NewMovementSystem(reg, 100, 100))

	e := spawnBox(w, reg, vmath.V(92, 50), 10)
	reg.Motion.Add(e, components.Motion{Velocity: vmath.V(10, 0)})

	w.Update(ecs.Frame{Delta: 1})

	tr := reg.Transform.Get(e)
	assert.Equal(t, 95.0, tr.Position.X, "box is pulled back inside the arena")
	assert.Equal(t, -10.0, reg.Motion.Get(e).Velocity.X)

	// Next frame moves away from the wall instead of flipping again
	w.Update(ecs.Frame{Delta: 1})
	assert.Equal(t, 85.0, reg.Transform.Get(e).Position.X)
	assert.Equal(t, -10.0, reg.Motion.Get(e).Velocity.X)
}

func TestMovementIgnoresEntitiesWithoutMotion(t *testing.T) {
	w, reg := newWorld(t)
	w.AddSystem("movement", components.MovingSignature, NewMovementSystem(reg, 100, 100))

	e := spawnBox(w, reg, vmath.V(50, 50), 10)
	w.Update(ecs.Frame{Delta: 1})

	assert.Equal(t, vmath.V(50, 50), reg.Transform.Get(e).Position)
}
