package systems

import (
	"testing"

	"ebiten-pathsim/components"
	"ebiten-pathsim/ecs"
	"ebiten-pathsim/vmath"
)

type quadCall struct {
	Transform components.Transform
	Texture   components.TextureHandle
	Color     components.Color
}

type lineCall struct {
	A, B  vmath.Vec2
	Color components.Color
}

// recordingRenderer captures draw calls instead of drawing
type recordingRenderer struct {
	quads []quadCall
	lines []lineCall
	rects []vmath.Vec2
	texts []string
}

func (r *recordingRenderer) DrawQuad(t components.Transform, tex components.TextureHandle, c components.Color) {
	r.quads = append(r.quads, quadCall{t, tex, c})
}

func (r *recordingRenderer) DrawLine(a, b vmath.Vec2, c components.Color) {
	r.lines = append(r.lines, lineCall{a, b, c})
}

func (r *recordingRenderer) DrawRect(center, size vmath.Vec2, c components.Color) {
	r.rects = append(r.rects, center)
}

func (r *recordingRenderer) DrawText(x, y int, s string) {
	r.texts = append(r.texts, s)
}

func newWorld(t *testing.T) (*ecs.World, *components.Registry) {
	t.Helper()
	w := ecs.NewWorld(ecs.Options{MaxEntities: 16, IDSource: ecs.NewSeededIDSource(5)})
	return w, components.Register(w)
}

// spawnBox creates an entity with a transform of the given centre and size
func spawnBox(w *ecs.World, reg *components.Registry, center vmath.Vec2, size float64) ecs.EntityID {
	e := w.CreateEntity()
	reg.Transform.Add(e, components.Transform{Position: center, Size: vmath.V(size, size)})
	return e
}
