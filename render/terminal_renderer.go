package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"ebiten-pathsim/components"
	"ebiten-pathsim/vmath"
)

// Glyphs used by the terminal renderer
const (
	glyphSolid    = '█'
	glyphTextured = '▓'
	glyphLine     = '·'
	glyphPoint    = '▪'
)

// TerminalRenderer draws onto a tcell screen. World pixels are mapped to
// cells of cellW x cellH pixels; everything outside the screen is clipped.
type TerminalRenderer struct {
	screen       tcell.Screen
	cellW, cellH float64
	textStyle    tcell.Style
}

// NewTerminalRenderer creates a renderer for screen
func NewTerminalRenderer(screen tcell.Screen, cellW, cellH int) *TerminalRenderer {
	return &TerminalRenderer{
		screen:    screen,
		cellW:     float64(cellW),
		cellH:     float64(cellH),
		textStyle: tcell.StyleDefault.Foreground(tcell.ColorWhite),
	}
}

// CellToWorld converts a cell coordinate to the world position of its centre
func (r *TerminalRenderer) CellToWorld(x, y int) vmath.Vec2 {
	return vmath.Vec2{X: (float64(x) + 0.5) * r.cellW, Y: (float64(y) + 0.5) * r.cellH}
}

func (r *TerminalRenderer) toCell(p vmath.Vec2) (int, int) {
	return int(math.Floor(p.X / r.cellW)), int(math.Floor(p.Y / r.cellH))
}

func styleFor(c components.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

func (r *TerminalRenderer) fill(box vmath.Rect, glyph rune, style tcell.Style) {
	w, h := r.screen.Size()
	x0, y0 := r.toCell(box.Min)
	x1, y1 := r.toCell(box.Max())
	for y := max(y0, 0); y <= min(y1, h-1); y++ {
		for x := max(x0, 0); x <= min(x1, w-1); x++ {
			r.screen.SetContent(x, y, glyph, nil, style)
		}
	}
}

// DrawQuad implements Renderer. Rotation is ignored at cell resolution.
func (r *TerminalRenderer) DrawQuad(t components.Transform, tex components.TextureHandle, c components.Color) {
	glyph := glyphSolid
	if tex != components.NoTexture {
		glyph = glyphTextured
	}
	r.fill(t.Bounds(), glyph, styleFor(c))
}

// DrawLine implements Renderer
func (r *TerminalRenderer) DrawLine(a, b vmath.Vec2, c components.Color) {
	x0, y0 := r.toCell(a)
	x1, y1 := r.toCell(b)
	style := styleFor(c)
	w, h := r.screen.Size()

	// Bresenham over cells
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	e := dx + dy
	for {
		if x0 >= 0 && x0 < w && y0 >= 0 && y0 < h {
			r.screen.SetContent(x0, y0, glyphLine, nil, style)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// DrawRect implements Renderer
func (r *TerminalRenderer) DrawRect(center, size vmath.Vec2, c components.Color) {
	x, y := r.toCell(center)
	w, h := r.screen.Size()
	if x >= 0 && x < w && y >= 0 && y < h {
		r.screen.SetContent(x, y, glyphPoint, nil, styleFor(c))
	}
}

// DrawText implements Renderer
func (r *TerminalRenderer) DrawText(x, y int, s string) {
	cx, cy := r.toCell(vmath.Vec2{X: float64(x), Y: float64(y)})
	w, h := r.screen.Size()
	if cy < 0 || cy >= h {
		return
	}
	for _, ch := range s {
		if ch == '\n' {
			cy++
			cx, _ = r.toCell(vmath.Vec2{X: float64(x)})
			if cy >= h {
				return
			}
			continue
		}
		if cx >= 0 && cx < w {
			r.screen.SetContent(cx, cy, ch, nil, r.textStyle)
		}
		cx++
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
