package systems

import (
	"ebiten-pathsim/components"
	"ebiten-pathsim/ecs"
	"ebiten-pathsim/render"
	"ebiten-pathsim/vmath"
)

// RenderSystem draws every entity with a Transform and a Color. It only
// tracks membership; drawing happens when the frontend asks for a frame,
// not during World.Update.
type RenderSystem struct {
	components *components.Registry
	handle     ecs.SystemHandle
	outline    components.Color
}

// NewRenderSystem registers the render system with w
func NewRenderSystem(w *ecs.World, reg *components.Registry) *RenderSystem {
	return &RenderSystem{
		components: reg,
		handle:     w.RegisterSystem("render", components.RenderSignature),
		outline:    components.Gold,
	}
}

// Handle returns the system's handle in w
func (s *RenderSystem) Handle() ecs.SystemHandle {
	return s.handle
}

// Draw hands each entity's transform, texture and color to r by value, then
// outlines selected if it is drawable
func (s *RenderSystem) Draw(w *ecs.World, r render.Renderer, selected ecs.EntityID) {
	for _, e := range w.Entities(s.handle) {
		tex := components.NoTexture
		if sprite, ok := s.components.Sprite.Lookup(e); ok {
			tex = sprite.Texture
		}
		r.DrawQuad(*s.components.Transform.Get(e), tex, *s.components.Color.Get(e))
	}

	if selected == ecs.NullEntity || !w.InSystem(s.handle, selected) {
		return
	}
	s.drawOutline(r, s.components.Transform.Get(selected).Bounds())
}

func (s *RenderSystem) drawOutline(r render.Renderer, b vmath.Rect) {
	tl := b.Min
	br := b.Max()
	tr := vmath.V(br.X, tl.Y)
	bl := vmath.V(tl.X, br.Y)

	r.DrawLine(tl, tr, s.outline)
	r.DrawLine(tr, br, s.outline)
	r.DrawLine(br, bl, s.outline)
	r.DrawLine(bl, tl, s.outline)
}
