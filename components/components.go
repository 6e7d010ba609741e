package components

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"ebiten-pathsim/vmath"
)

// Transform places an entity: Position is the centre of its box
type Transform struct {
	Position vmath.Vec2
	Size     vmath.Vec2
	Rotation float64 // radians
}

// Bounds returns the axis-aligned box of the transform, ignoring rotation
func (t Transform) Bounds() vmath.Rect {
	return vmath.RectFromCenter(t.Position, t.Size)
}

// Motion stores an entity's velocity in pixels per second
type Motion struct {
	Velocity vmath.Vec2
}

// Color is an 8-bit RGBA tint
type Color struct {
	R, G, B, A uint8
}

// Common colors
var (
	White = Color{255, 255, 255, 255}
	Red   = Color{255, 64, 64, 255}
	Blue  = Color{0, 0, 255, 255}
	Gold  = Color{255, 215, 0, 255}
)

// RGBA converts to the image/color type renderers consume
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA"
func ParseHexColor(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("invalid color %q: want #RRGGBB or #RRGGBBAA", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// TextureHandle is an opaque reference to a texture owned by the renderer.
// Zero means no texture.
type TextureHandle uint32

// NoTexture is the zero TextureHandle
const NoTexture TextureHandle = 0

// Sprite draws the entity's box with a texture instead of a flat fill
type Sprite struct {
	Texture TextureHandle
}

// Name stores the display name for entities
type Name struct {
	Name string
}
