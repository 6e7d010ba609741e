package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignatureBits(t *testing.T) {
	s := NewSignature(0, 3, 63)

	assert.True(t, s.Has(0))
	assert.True(t, s.Has(3))
	assert.True(t, s.Has(63))
	assert.False(t, s.Has(1))
	assert.Equal(t, 3, s.Count())

	s = s.Without(3)
	assert.False(t, s.Has(3))
	assert.Equal(t, 2, s.Count())
}

func TestSignatureContains(t *testing.T) {
	entity := NewSignature(0, 1, 2)

	assert.True(t, entity.Contains(NewSignature(0, 2)))
	assert.True(t, entity.Contains(Signature{}), "every signature satisfies the empty requirement")
	assert.False(t, entity.Contains(NewSignature(0, 5)))
	assert.False(t, Signature{}.Contains(NewSignature(0)))
}

func TestSignatureEachAndString(t *testing.T) {
	s := NewSignature(1, 4)

	var seen []ComponentType
	s.Each(func(c ComponentType) { seen = append(seen, c) })

	assert.Equal(t, []ComponentType{1, 4}, seen)
	assert.Equal(t, "10010", s.String())
	assert.Equal(t, "0", Signature{}.String())
	assert.True(t, Signature{}.IsZero())
}

func TestSignatureOutOfRange(t *testing.T) {
	requireViolation(t, "Signature.With", func() { NewSignature(MaxComponentTypes) })
	requireViolation(t, "Signature.Without", func() { Signature{}.Without(200) })
	assert.False(t, Signature{}.Has(200))
}
