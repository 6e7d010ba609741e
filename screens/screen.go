package screens

import (
	"errors"

	"ebiten-pathsim/ecs"
	"ebiten-pathsim/render"
)

// ErrCloseScreen is returned from Update when the screen should be popped
var ErrCloseScreen = errors.New("close screen")

// Screen represents a view that can be pushed onto the screen stack. Screens
// are frontend-neutral: they read a Frame and draw through a Renderer.
type Screen interface {
	// Update updates the screen state
	Update(f ecs.Frame) error
	// Draw draws the screen
	Draw(r render.Renderer)
}

// ScreenStack manages a stack of screens
type ScreenStack struct {
	screens []Screen
}

// NewScreenStack creates a new screen stack
func NewScreenStack() *ScreenStack {
	return &ScreenStack{
		screens: make([]Screen, 0),
	}
}

// Push adds a new screen to the top of the stack
func (s *ScreenStack) Push(screen Screen) {
	s.screens = append(s.screens, screen)
}

// Pop removes the top screen from the stack
func (s *ScreenStack) Pop() Screen {
	if len(s.screens) == 0 {
		return nil
	}
	top := s.screens[len(s.screens)-1]
	s.screens = s.screens[:len(s.screens)-1]
	return top
}

// Peek returns the top screen without removing it
func (s *ScreenStack) Peek() Screen {
	if len(s.screens) == 0 {
		return nil
	}
	return s.screens[len(s.screens)-1]
}

// Len returns the number of screens on the stack
func (s *ScreenStack) Len() int {
	return len(s.screens)
}

// Update updates the top screen, popping it when it asks to close
func (s *ScreenStack) Update(f ecs.Frame) error {
	top := s.Peek()
	if top == nil {
		return nil
	}

	err := top.Update(f)
	if errors.Is(err, ErrCloseScreen) {
		s.Pop()
		return nil
	}
	return err
}

// Draw draws all screens from bottom to top
func (s *ScreenStack) Draw(r render.Renderer) {
	for _, scr := range s.screens {
		scr.Draw(r)
	}
}
