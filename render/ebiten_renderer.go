package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-pathsim/components"
	"ebiten-pathsim/vmath"
)

// EbitenRenderer draws onto an ebiten image. Call Begin with the frame's
// screen before drawing.
type EbitenRenderer struct {
	target   *ebiten.Image
	textures *Textures
	white    *ebiten.Image
	op       ebiten.DrawImageOptions
}

// NewEbitenRenderer creates a renderer resolving texture handles through textures
func NewEbitenRenderer(textures *Textures) *EbitenRenderer {
	return &EbitenRenderer{textures: textures}
}

// Begin sets the draw target for this frame
func (r *EbitenRenderer) Begin(screen *ebiten.Image) {
	r.target = screen
	if r.white == nil {
		r.white = ebiten.NewImage(1, 1)
		r.white.Fill(color.White)
	}
}

// DrawQuad implements Renderer
func (r *EbitenRenderer) DrawQuad(t components.Transform, tex components.TextureHandle, c components.Color) {
	src := r.white
	if img := r.textures.Image(tex); img != nil {
		src = img
	}

	b := src.Bounds()
	r.op.GeoM.Reset()
	r.op.ColorScale.Reset()

	// Scale the source to the box, rotate around the centre, then place it
	r.op.GeoM.Scale(t.Size.X/float64(b.Dx()), t.Size.Y/float64(b.Dy()))
	r.op.GeoM.Translate(-t.Size.X/2, -t.Size.Y/2)
	r.op.GeoM.Rotate(t.Rotation)
	r.op.GeoM.Translate(t.Position.X, t.Position.Y)
	r.op.ColorScale.ScaleWithColor(c.RGBA())

	r.target.DrawImage(src, &r.op)
}

// DrawLine implements Renderer
func (r *EbitenRenderer) DrawLine(a, b vmath.Vec2, c components.Color) {
	vector.StrokeLine(r.target, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, c.RGBA(), false)
}

// DrawRect implements Renderer
func (r *EbitenRenderer) DrawRect(center, size vmath.Vec2, c components.Color) {
	box := vmath.RectFromCenter(center, size)
	vector.DrawFilledRect(r.target, float32(box.Min.X), float32(box.Min.Y), float32(size.X), float32(size.Y), c.RGBA(), false)
}

// DrawText implements Renderer
func (r *EbitenRenderer) DrawText(x, y int, s string) {
	ebitenutil.DebugPrintAt(r.target, s, x, y)
}
