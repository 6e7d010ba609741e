// Package render draws component data. Renderers receive values, never
// pointers into component storage, so they cannot write back.
package render

import (
	"ebiten-pathsim/components"
	"ebiten-pathsim/vmath"
)

// Renderer is the batched 2D drawing surface the render systems talk to.
type Renderer interface {
	// DrawQuad draws a box described by t, textured when tex is not
	// NoTexture, tinted by c.
	DrawQuad(t components.Transform, tex components.TextureHandle, c components.Color)
	// DrawLine draws a thin line from a to b.
	DrawLine(a, b vmath.Vec2, c components.Color)
	// DrawRect fills an axis-aligned box centred on center.
	DrawRect(center, size vmath.Vec2, c components.Color)
	// DrawText prints debug text with its top-left corner at (x, y) pixels.
	DrawText(x, y int, s string)
}
