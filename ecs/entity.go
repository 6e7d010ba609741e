package ecs

import (
	"math/rand/v2"
	"strconv"
)

// EntityID is a unique identifier for a live entity. Zero is reserved as
// NullEntity, meaning "no entity".
type EntityID uint64

// NullEntity is the zero EntityID.
const NullEntity EntityID = 0

// IsNull reports whether e is NullEntity.
func (e EntityID) IsNull() bool {
	return e == NullEntity
}

func (e EntityID) String() string {
	return "0x" + strconv.FormatUint(uint64(e), 16)
}

// IDSource supplies uniformly distributed 64-bit values. *rand.Rand from
// math/rand/v2 satisfies it.
type IDSource interface {
	Uint64() uint64
}

type globalSource struct{}

func (globalSource) Uint64() uint64 { return rand.Uint64() }

// DefaultIDSource draws from the runtime-seeded math/rand/v2 generator.
var DefaultIDSource IDSource = globalSource{}

// NewSeededIDSource returns a deterministic source, useful for tests and
// reproducible runs.
func NewSeededIDSource(seed uint64) IDSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// generateEntityID rejection-samples src until it yields a non-zero value.
func generateEntityID(src IDSource) EntityID {
	for {
		if id := EntityID(src.Uint64()); id != NullEntity {
			return id
		}
	}
}
