package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPosition struct {
	X, Y float64
}

func TestStoreInsertGetRemove(t *testing.T) {
	s := NewStore[testPosition](3, 4)
	assert.Equal(t, ComponentType(3), s.Kind())

	s.Insert(10, testPosition{1, 2})
	s.Insert(20, testPosition{3, 4})

	assert.Equal(t, testPosition{1, 2}, *s.Get(10))
	assert.True(t, s.Has(20))

	s.Get(20).X = 30
	assert.Equal(t, 30.0, s.Get(20).X)

	s.Remove(10)
	assert.False(t, s.Has(10))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, testPosition{30, 4}, *s.Get(20))
}

func TestStoreContractViolations(t *testing.T) {
	s := NewStore[int](0, 2)
	s.Insert(1, 1)

	requireViolation(t, "Store.Insert", func() { s.Insert(1, 2) })
	requireViolation(t, "Store.Remove", func() { s.Remove(2) })
	requireViolation(t, "Store.Get", func() { s.Get(2) })

	_, ok := s.Lookup(2)
	assert.False(t, ok)
}

func TestStoreSwapRemoveKeepsOthersIntact(t *testing.T) {
	s := NewStore[int](0, 8)
	for e := EntityID(1); e <= 5; e++ {
		s.Insert(e, int(e)*100)
	}

	// Entity 5 sits in the last slot and is moved into entity 2's
	s.Remove(2)

	require.Equal(t, 4, s.Len())
	for _, e := range []EntityID{1, 3, 4, 5} {
		assert.Equal(t, int(e)*100, *s.Get(e))
	}
	assert.Equal(t, EntityID(5), s.Entities()[1])
}

func TestStoreEntityDestroyedIsSilent(t *testing.T) {
	s := NewStore[int](0, 2)
	s.Insert(1, 1)

	s.entityDestroyed(99)
	assert.Equal(t, 1, s.Len())

	s.entityDestroyed(1)
	assert.Equal(t, 0, s.Len())
}

func TestStoreEach(t *testing.T) {
	s := NewStore[int](0, 4)
	s.Insert(1, 1)
	s.Insert(2, 2)

	s.Each(func(_ EntityID, v *int) { *v *= 10 })

	assert.Equal(t, 10, *s.Get(1))
	assert.Equal(t, 20, *s.Get(2))
}
