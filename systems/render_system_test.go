package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-pathsim/components"
	"ebiten-pathsim/ecs"
	"ebiten-pathsim/vmath"
)

func TestRenderDrawsColoredEntities(t *testing.T) {
	w, reg := newWorld(t)
	rs := NewRenderSystem(w, reg)

	plain := spawnBox(w, reg, vmath.V(10, 10), 4)
	reg.Color.Add(plain, components.Blue)

	textured := spawnBox(w, reg, vmath.V(20, 20), 4)
	reg.Color.Add(textured, components.White)
	reg.Sprite.Add(textured, components.Sprite{Texture: 3})

	spawnBox(w, reg, vmath.V(30, 30), 4) // no color, not drawn

	r := &recordingRenderer{}
	rs.Draw(w, r, ecs.NullEntity)

	require.Len(t, r.quads, 2)
	byColor := map[components.Color]quadCall{}
	for _, q := range r.quads {
		byColor[q.Color] = q
	}
	assert.Equal(t, components.NoTexture, byColor[components.Blue].Texture)
	assert.Equal(t, vmath.V(10, 10), byColor[components.Blue].Transform.Position)
	assert.Equal(t, components.TextureHandle(3), byColor[components.White].Texture)
	assert.Empty(t, r.lines)
}

func TestRenderOutlinesSelection(t *testing.T) {
	w, reg := newWorld(t)
	rs := NewRenderSystem(w, reg)

	e := spawnBox(w, reg, vmath.V(10, 10), 4)
	reg.Color.Add(e, components.Red)

	r := &recordingRenderer{}
	rs.Draw(w, r, e)

	require.Len(t, r.lines, 4)
	assert.Equal(t, lineCall{vmath.V(8, 8), vmath.V(12, 8), components.Gold}, r.lines[0])

	// A selection that isn't drawable gets no outline
	r = &recordingRenderer{}
	rs.Draw(w, r, spawnBox(w, reg, vmath.V(50, 50), 4))
	assert.Empty(t, r.lines)
}

func TestRenderDoesNotExposeStorage(t *testing.T) {
	w, reg := newWorld(t)
	rs := NewRenderSystem(w, reg)
	e := spawnBox(w, reg, vmath.V(10, 10), 4)
	reg.Color.Add(e, components.Red)

	r := &recordingRenderer{}
	rs.Draw(w, r, ecs.NullEntity)
	r.quads[0].Transform.Position = vmath.V(999, 999)

	assert.Equal(t, vmath.V(10, 10), reg.Transform.Get(e).Position)
}

func TestPathDebugDrawsSegmentsAndMarkers(t *testing.T) {
	w, reg := newWorld(t)
	pd := NewPathDebugSystem(w, reg, 16)

	e := w.CreateEntity()
	reg.Path.Add(e, components.Path{})
	p := reg.Path.Get(e)
	p.Push(vmath.V(0, 0))
	p.Push(vmath.V(16, 0))
	p.Push(vmath.V(16, 16))

	single := w.CreateEntity()
	reg.Path.Add(single, components.Path{})
	reg.Path.Get(single).Push(vmath.V(5, 5))

	r := &recordingRenderer{}
	pd.Draw(w, r)

	require.Len(t, r.lines, 2)
	assert.Equal(t, lineCall{vmath.V(0, 0), vmath.V(16, 0), components.Red}, r.lines[0])
	assert.Equal(t, []vmath.Vec2{vmath.V(0, 0), vmath.V(16, 0), vmath.V(16, 16)}, r.rects)
}
