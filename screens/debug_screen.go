package screens

import (
	"fmt"
	"strings"

	"ebiten-pathsim/ecs"
	"ebiten-pathsim/render"
	"ebiten-pathsim/sim"
)

// debugMessages is how many recent log lines the overlay shows
const debugMessages = 8

// DebugScreen overlays world statistics and recent lifecycle messages
type DebugScreen struct {
	*BaseScreen
	sim  *sim.Simulation
	x, y int
	text strings.Builder
}

// NewDebugScreen creates a new debug overlay
func NewDebugScreen(s *sim.Simulation) *DebugScreen {
	return &DebugScreen{
		BaseScreen: NewBaseScreen(),
		sim:        s,
		x:          8,
		y:          40,
	}
}

// Draw renders the overlay text
func (s *DebugScreen) Draw(r render.Renderer) {
	r.DrawText(s.x, s.y, s.Text())
}

// Text builds the overlay contents
func (s *DebugScreen) Text() string {
	st := s.sim.Stats()
	b := &s.text
	b.Reset()

	fmt.Fprintf(b, "entities %d/%d  frame %d  t=%.1fs\n", st.Entities, st.Capacity, st.Frames, st.Elapsed)
	if st.Selected != ecs.NullEntity {
		fmt.Fprintf(b, "selected %s  drawing=%t\n", st.Selected, st.Drawing)
	}
	for _, sys := range st.Systems {
		fmt.Fprintf(b, "  %-12s %d\n", sys.Name, sys.Members)
	}

	for _, msg := range s.sim.Messages.RecentMessages(debugMessages) {
		b.WriteString(msg)
		b.WriteByte('\n')
	}
	return b.String()
}
