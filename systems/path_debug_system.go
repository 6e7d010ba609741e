package systems

import (
	"ebiten-pathsim/components"
	"ebiten-pathsim/ecs"
	"ebiten-pathsim/render"
	"ebiten-pathsim/vmath"
)

// PathDebugSystem draws each path as connected segments with a marker on
// every point
type PathDebugSystem struct {
	components *components.Registry
	handle     ecs.SystemHandle
	markerSize vmath.Vec2
}

// NewPathDebugSystem registers the path overlay with w. Markers are a
// quarter of a tile wide.
func NewPathDebugSystem(w *ecs.World, reg *components.Registry, tileSize int) *PathDebugSystem {
	m := float64(tileSize) / 4
	return &PathDebugSystem{
		components: reg,
		handle:     w.RegisterSystem("path_debug", components.PathDebugSignature),
		markerSize: vmath.V(m, m),
	}
}

// Handle returns the system's handle in w
func (s *PathDebugSystem) Handle() ecs.SystemHandle {
	return s.handle
}

// Draw renders every path with at least two points
func (s *PathDebugSystem) Draw(w *ecs.World, r render.Renderer) {
	for _, e := range w.Entities(s.handle) {
		points := s.components.Path.Get(e).Points()
		if len(points) < 2 {
			continue
		}

		for i := 0; i < len(points)-1; i++ {
			r.DrawLine(points[i], points[i+1], components.Red)
		}
		for _, pt := range points {
			r.DrawRect(pt, s.markerSize, components.White)
		}
	}
}
