package ecs

import "ebiten-pathsim/vmath"

// Action is a single bit in an ActionSet.
type Action uint32

// ActionSet holds the discrete commands triggered during one frame. Frame
// drivers translate their own keys into these bits.
type ActionSet uint32

// Has reports whether a is set.
func (s ActionSet) Has(a Action) bool {
	return s&ActionSet(a) != 0
}

// With returns s with a set.
func (s ActionSet) With(a Action) ActionSet {
	return s | ActionSet(a)
}

// Input is a read-only snapshot of pointer and command state for one frame,
// in screen space.
type Input struct {
	Pointer  vmath.Vec2
	Pressed  bool // primary button went down this frame
	Released bool // primary button went up this frame
	Held     bool
	Actions  ActionSet
}

// Frame is what a frame driver hands the simulation each tick.
type Frame struct {
	Delta float64 // seconds since the previous frame
	Input Input
}
