package config

// Build-time capacities. Exceeding any of them is a fatal contract violation,
// never a reason to grow.
const (
	MaxEntities   = 256
	MaxSystems    = 32
	MaxPathPoints = 512
)
