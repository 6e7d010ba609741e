package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-pathsim/config"
	"ebiten-pathsim/ecs"
	"ebiten-pathsim/vmath"
)

func TestPathCursor(t *testing.T) {
	var p Path
	_, ok := p.Next()
	assert.False(t, ok)
	assert.True(t, p.Done())

	p.Push(vmath.V(1, 1))
	p.Push(vmath.V(2, 2))

	next, ok := p.Next()
	require.True(t, ok)
	assert.Equal(t, vmath.V(1, 1), next)
	assert.Equal(t, 2, p.Remaining())

	p.Advance()
	next, _ = p.Next()
	assert.Equal(t, vmath.V(2, 2), next)

	p.Advance()
	p.Advance()
	assert.True(t, p.Done())
	assert.Equal(t, 0, p.Remaining())
	assert.Equal(t, []vmath.Vec2{{X: 1, Y: 1}, {X: 2, Y: 2}}, p.Points())

	p.Clear()
	assert.Equal(t, 0, p.Len())
	assert.True(t, p.Done())
}

func TestPathCapacity(t *testing.T) {
	var p Path
	for i := 0; i < config.MaxPathPoints; i++ {
		p.Push(vmath.V(float64(i), 0))
	}
	require.True(t, p.Full())

	var recovered any
	func() {
		defer func() { recovered = recover() }()
		p.Push(vmath.V(0, 0))
	}()
	cv, ok := ecs.AsContractViolation(recovered)
	require.True(t, ok)
	assert.Equal(t, "Path.Push", cv.Op)
	assert.Equal(t, config.MaxPathPoints, p.Len())
}

func TestPathIsCopiedByValue(t *testing.T) {
	var a Path
	a.Push(vmath.V(1, 0))

	b := a
	b.Push(vmath.V(2, 0))

	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 2, b.Len())
}
