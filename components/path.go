package components

import (
	"ebiten-pathsim/config"
	"ebiten-pathsim/ecs"
	"ebiten-pathsim/vmath"
)

// Path is a bounded list of waypoints plus a cursor at the next one to visit.
// It is a plain value: the points live inline, so a Path stored in a
// component store owns its points outright.
type Path struct {
	points [config.MaxPathPoints]vmath.Vec2
	n      int
	next   int
}

// Push appends a waypoint. Pushing onto a full path is a contract violation;
// check Full first.
func (p *Path) Push(pt vmath.Vec2) {
	if p.n == len(p.points) {
		ecs.Violate("Path.Push", "path is at capacity %d", len(p.points))
	}
	p.points[p.n] = pt
	p.n++
}

// At returns waypoint i.
func (p *Path) At(i int) vmath.Vec2 {
	if i < 0 || i >= p.n {
		ecs.Violate("Path.At", "index %d out of range [0, %d)", i, p.n)
	}
	return p.points[i]
}

// Points returns the waypoints as a read-only view.
func (p *Path) Points() []vmath.Vec2 {
	return p.points[:p.n:p.n]
}

// Next returns the waypoint the entity is heading to, if any.
func (p *Path) Next() (vmath.Vec2, bool) {
	if p.next >= p.n {
		return vmath.Vec2{}, false
	}
	return p.points[p.next], true
}

// Advance moves the cursor past the current waypoint.
func (p *Path) Advance() {
	if p.next < p.n {
		p.next++
	}
}

// Done reports whether every waypoint has been visited.
func (p *Path) Done() bool {
	return p.next >= p.n
}

// Clear drops all waypoints and rewinds the cursor.
func (p *Path) Clear() {
	p.n = 0
	p.next = 0
}

func (p *Path) Len() int   { return p.n }
func (p *Path) Full() bool { return p.n == len(p.points) }

// Remaining returns how many waypoints are still ahead.
func (p *Path) Remaining() int {
	return p.n - p.next
}
