package systems

import "ebiten-pathsim/ecs"

// Discrete commands a frame driver can trigger. Drivers map their own keys
// onto these bits.
const (
	ActionSpawn ecs.Action = 1 << iota
	ActionDestroySelected
	ActionToggleDebug
	ActionPause
	ActionClearPaths
)
