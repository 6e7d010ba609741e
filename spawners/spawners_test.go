package spawners

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-pathsim/components"
	"ebiten-pathsim/data"
	"ebiten-pathsim/ecs"
	"ebiten-pathsim/vmath"
)

type stubLoader struct {
	handles map[string]components.TextureHandle
}

func (l stubLoader) Load(path string) (components.TextureHandle, error) {
	if h, ok := l.handles[path]; ok {
		return h, nil
	}
	return components.NoTexture, errors.New("missing")
}

func newTemplates(t *testing.T, raw ...string) *data.EntityTemplateManager {
	t.Helper()
	m := data.NewEntityTemplateManager()
	for _, r := range raw {
		require.NoError(t, m.LoadTemplate([]byte(r)))
	}
	return m
}

func newSpawner(t *testing.T, maxEntities int, m *data.EntityTemplateManager, opts Options) (*ecs.World, *components.Registry, *EntitySpawner) {
	t.Helper()
	w := ecs.NewWorld(ecs.Options{MaxEntities: maxEntities, IDSource: ecs.NewSeededIDSource(1)})
	reg := components.Register(w)
	if opts.Seed == 0 {
		opts.Seed = 42
	}
	return w, reg, NewEntitySpawner(w, reg, m, opts)
}

func TestSpawnAttachesListedComponents(t *testing.T) {
	m := newTemplates(t,
		`{"id":"full","name":"Full","size":{"x":10,"y":20},"color":"#FF0000","rotation":90,
		  "velocity":{"x":3,"y":4},"texture":"img.png","components":["Motion","Color","Sprite","Path","Name"]}`,
		`{"id":"bare","size":{"x":1,"y":1}}`,
	)
	w, reg, s := newSpawner(t, 8, m, Options{Textures: stubLoader{map[string]components.TextureHandle{"img.png": 7}}})

	e, err := s.Spawn("full", vmath.V(50, 60))
	require.NoError(t, err)
	require.NotEqual(t, ecs.NullEntity, e)

	tr := reg.Transform.Get(e)
	assert.Equal(t, vmath.V(50, 60), tr.Position)
	assert.Equal(t, vmath.V(10, 20), tr.Size)
	assert.InDelta(t, 1.5707963, tr.Rotation, 1e-6)
	assert.Equal(t, vmath.V(3, 4), reg.Motion.Get(e).Velocity)
	assert.Equal(t, components.Color{R: 255, A: 255}, *reg.Color.Get(e))
	assert.Equal(t, components.TextureHandle(7), reg.Sprite.Get(e).Texture)
	assert.Zero(t, reg.Path.Get(e).Len())
	assert.Equal(t, "Full", reg.Name.Get(e).Name)

	bare, err := s.Spawn("bare", vmath.V(1, 1))
	require.NoError(t, err)
	assert.Equal(t, ecs.NewSignature(components.TransformID), w.Signature(bare))
}

func TestSpawnMissingTextureFallsBack(t *testing.T) {
	m := newTemplates(t, `{"id":"a","size":{"x":1,"y":1},"texture":"gone.png","components":["Sprite"]}`)
	_, reg, s := newSpawner(t, 4, m, Options{Textures: stubLoader{}})

	e, err := s.Spawn("a", vmath.Vec2{})
	require.NoError(t, err)
	assert.Equal(t, components.NoTexture, reg.Sprite.Get(e).Texture)
}

func TestSpawnUnknownTemplate(t *testing.T) {
	w, _, s := newSpawner(t, 4, newTemplates(t), Options{})

	e, err := s.Spawn("ghost", vmath.Vec2{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghost")
	assert.Equal(t, ecs.NullEntity, e)
	assert.Zero(t, w.EntityCount())
}

func TestSpawnIntoFullWorld(t *testing.T) {
	m := newTemplates(t, `{"id":"a","size":{"x":1,"y":1},"spawnWeight":1}`)
	w, _, s := newSpawner(t, 2, m, Options{Arena: vmath.V(100, 100)})

	assert.Equal(t, 2, s.SpawnRandom(5))
	assert.Equal(t, 2, w.EntityCount())

	e, err := s.Spawn("a", vmath.Vec2{})
	require.NoError(t, err)
	assert.Equal(t, ecs.NullEntity, e)
	assert.Equal(t, ecs.NullEntity, s.SpawnAt(vmath.Vec2{}))
}

func TestSpawnRandomStaysInArena(t *testing.T) {
	m := newTemplates(t, `{"id":"a","size":{"x":1,"y":1},"speed":50,"components":["Motion"],"spawnWeight":1}`)
	_, reg, s := newSpawner(t, 32, m, Options{Arena: vmath.V(200, 100)})

	require.Equal(t, 20, s.SpawnRandom(20))
	arena := vmath.Rect{Size: vmath.V(200, 100)}
	reg.Transform.Store().Each(func(e ecs.EntityID, tr *components.Transform) {
		assert.True(t, arena.ContainsPoint(tr.Position))
		assert.InDelta(t, 50, reg.Motion.Get(e).Velocity.Length(), 1e-9)
	})
}

func TestSpawnAtWithoutWeights(t *testing.T) {
	m := newTemplates(t, `{"id":"a","size":{"x":1,"y":1}}`)
	w, _, s := newSpawner(t, 4, m, Options{})

	assert.Equal(t, ecs.NullEntity, s.SpawnAt(vmath.Vec2{}))
	assert.Zero(t, s.SpawnRandom(3))
	assert.Zero(t, w.EntityCount())
}

func TestSeededSpawnsAreReproducible(t *testing.T) {
	m := data.NewEntityTemplateManager()
	require.NoError(t, m.LoadDefaults())

	positions := func() []vmath.Vec2 {
		_, reg, s := newSpawner(t, 16, m, Options{Seed: 99, Arena: vmath.V(640, 480)})
		s.SpawnRandom(10)
		var out []vmath.Vec2
		for _, e := range reg.Transform.Store().Entities() {
			out = append(out, reg.Transform.Get(e).Position)
		}
		return out
	}

	assert.Equal(t, positions(), positions())
}

func TestSpawnTablePick(t *testing.T) {
	table := NewSpawnTable([]SpawnTableEntry{
		{TemplateID: "common", Weight: 9},
		{TemplateID: "rare", Weight: 1},
		{TemplateID: "never", Weight: 0},
	})
	require.Equal(t, 2, table.Len())

	rng := rand.New(rand.NewPCG(1, 2))
	counts := map[string]int{}
	for i := 0; i < 10000; i++ {
		id, ok := table.Pick(rng)
		require.True(t, ok)
		counts[id]++
	}

	assert.Zero(t, counts["never"])
	assert.InDelta(t, 9000, counts["common"], 300)
	assert.InDelta(t, 1000, counts["rare"], 300)

	_, ok := NewSpawnTable(nil).Pick(rng)
	assert.False(t, ok)
}
