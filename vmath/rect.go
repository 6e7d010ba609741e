package vmath

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	Min  Vec2
	Size Vec2
}

// RectFromCenter builds the rectangle of the given size centred on c.
func RectFromCenter(c, size Vec2) Rect {
	return Rect{Min: Vec2{c.X - size.X/2, c.Y - size.Y/2}, Size: size}
}

// Max returns the bottom-right corner.
func (r Rect) Max() Vec2 {
	return r.Min.Add(r.Size)
}

// ContainsPoint reports whether p lies inside r, edges included.
func (r Rect) ContainsPoint(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Min.X+r.Size.X &&
		p.Y >= r.Min.Y && p.Y <= r.Min.Y+r.Size.Y
}

// Overlaps reports whether r and o touch or intersect.
func (r Rect) Overlaps(o Rect) bool {
	return r.Min.X+r.Size.X >= o.Min.X && r.Min.X <= o.Min.X+o.Size.X &&
		r.Min.Y+r.Size.Y >= o.Min.Y && r.Min.Y <= o.Min.Y+o.Size.Y
}
