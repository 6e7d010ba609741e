package components

import (
	"ebiten-pathsim/ecs"
)

// Component IDs, in the order Register assigns them
const (
	TransformID ecs.ComponentType = iota
	MotionID
	ColorID
	SpriteID
	PathID
	NameID
)

// Signatures used by the built-in systems
var (
	MovingSignature     = ecs.NewSignature(TransformID, MotionID)
	PathFollowSignature = ecs.NewSignature(TransformID, MotionID, PathID)
	RenderSignature     = ecs.NewSignature(TransformID, ColorID)
	PickSignature       = ecs.NewSignature(TransformID)
	PathDebugSignature  = ecs.NewSignature(PathID)
)
