package screens

import (
	"ebiten-pathsim/ecs"
	"ebiten-pathsim/render"
	"ebiten-pathsim/sim"
	"ebiten-pathsim/systems"
)

// SimScreen runs the simulation and hosts its overlays
type SimScreen struct {
	*BaseScreen
	sim     *sim.Simulation
	overlay *ScreenStack
	paused  bool
}

// NewSimScreen creates the main simulation screen
func NewSimScreen(s *sim.Simulation) *SimScreen {
	return &SimScreen{
		BaseScreen: NewBaseScreen(),
		sim:        s,
		overlay:    NewScreenStack(),
	}
}

// Update handles screen-level actions, then steps the simulation unless
// paused
func (s *SimScreen) Update(f ecs.Frame) error {
	actions := f.Input.Actions

	// Toggle the debug overlay
	if actions.Has(systems.ActionToggleDebug) {
		if s.overlay.Peek() != nil {
			s.overlay.Pop()
		} else {
			s.overlay.Push(NewDebugScreen(s.sim))
		}
	}

	if actions.Has(systems.ActionPause) {
		s.paused = !s.paused
		s.sim.World.Logger().WithField("paused", s.paused).Info("pause toggled")
	}

	// Overlays don't block the simulation
	if err := s.overlay.Update(f); err != nil {
		return err
	}

	if !s.paused {
		s.sim.Step(f)
	}
	return nil
}

// Draw draws the simulation with any overlay on top
func (s *SimScreen) Draw(r render.Renderer) {
	s.sim.Draw(r)
	s.overlay.Draw(r)

	if s.paused {
		r.DrawText(8, 8, "PAUSED")
	}
}

// Paused reports whether the simulation is paused
func (s *SimScreen) Paused() bool {
	return s.paused
}

// DebugVisible reports whether the debug overlay is showing
func (s *SimScreen) DebugVisible() bool {
	return s.overlay.Len() > 0
}
