package ecs

import (
	"math/bits"
	"strings"
)

const (
	bitsPerWord    = 64
	signatureWords = 1

	// MaxComponentTypes is the number of distinct component types a World can
	// register. It is the width of a Signature.
	MaxComponentTypes = signatureWords * bitsPerWord
)

// ComponentType is the registration-time tag of a component kind. It is the
// bit index into a Signature and the index into the World's store table.
type ComponentType uint8

// Signature records which component types an entity holds, or which ones a
// system requires.
type Signature [signatureWords]uint64

// NewSignature builds a signature with the given types set.
func NewSignature(types ...ComponentType) Signature {
	var s Signature
	for _, t := range types {
		s = s.With(t)
	}
	return s
}

// With returns s with t set.
func (s Signature) With(t ComponentType) Signature {
	checkType("Signature.With", t)
	s[t/bitsPerWord] |= 1 << (t % bitsPerWord)
	return s
}

// Without returns s with t cleared.
func (s Signature) Without(t ComponentType) Signature {
	checkType("Signature.Without", t)
	s[t/bitsPerWord] &^= 1 << (t % bitsPerWord)
	return s
}

// Has reports whether t is set.
func (s Signature) Has(t ComponentType) bool {
	if int(t) >= MaxComponentTypes {
		return false
	}
	return s[t/bitsPerWord]&(1<<(t%bitsPerWord)) != 0
}

// Contains reports whether every bit of required is also set in s, i.e.
// (s & required) == required.
func (s Signature) Contains(required Signature) bool {
	for i := range s {
		if s[i]&required[i] != required[i] {
			return false
		}
	}
	return true
}

// IsZero reports whether no bit is set.
func (s Signature) IsZero() bool {
	return s == Signature{}
}

// Count returns the number of set bits.
func (s Signature) Count() int {
	n := 0
	for _, w := range s {
		n += bits.OnesCount64(w)
	}
	return n
}

// Each calls fn for every set bit in ascending order.
func (s Signature) Each(fn func(t ComponentType)) {
	for wi, w := range s {
		for w != 0 {
			b := bits.TrailingZeros64(w)
			fn(ComponentType(wi*bitsPerWord + b))
			w &^= 1 << b
		}
	}
}

// String renders the set bits as a binary string, lowest type on the right.
func (s Signature) String() string {
	var sb strings.Builder
	for i := len(s) - 1; i >= 0; i-- {
		for b := bitsPerWord - 1; b >= 0; b-- {
			if s[i]&(1<<b) != 0 {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
	}
	out := strings.TrimLeft(sb.String(), "0")
	if out == "" {
		return "0"
	}
	return out
}

func checkType(op string, t ComponentType) {
	if int(t) >= MaxComponentTypes {
		Violate(op, "component type %d exceeds maximum %d", t, MaxComponentTypes)
	}
}
