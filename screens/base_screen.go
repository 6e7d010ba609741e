package screens

import (
	"ebiten-pathsim/ecs"
	"ebiten-pathsim/render"
)

// BaseScreen provides common functionality for all screens
type BaseScreen struct{}

// NewBaseScreen creates a new base screen
func NewBaseScreen() *BaseScreen {
	return &BaseScreen{}
}

// Update implements the Screen interface
func (s *BaseScreen) Update(f ecs.Frame) error {
	return nil
}

// Draw implements the Screen interface
func (s *BaseScreen) Draw(r render.Renderer) {
	// Base screen does nothing by default
}
