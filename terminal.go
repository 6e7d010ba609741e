package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"ebiten-pathsim/config"
	"ebiten-pathsim/ecs"
	"ebiten-pathsim/render"
	"ebiten-pathsim/screens"
	"ebiten-pathsim/systems"
)

const (
	terminalFrameInterval = time.Second / 60
	// maxFrameDelta caps the step after a stall so entities don't tunnel
	maxFrameDelta = 0.1
)

// TerminalGame drives the screen stack from a tcell screen at a fixed tick
type TerminalGame struct {
	screen     tcell.Screen
	screens    *screens.ScreenStack
	renderer   *render.TerminalRenderer
	actionKeys map[rune]ecs.Action
	log        *logrus.Entry

	// Input accumulated between ticks
	input      ecs.Input
	buttonDown bool
}

// NewTerminalGame wraps an initialised tcell screen
func NewTerminalGame(screen tcell.Screen, root screens.Screen, log *logrus.Entry) *TerminalGame {
	g := &TerminalGame{
		screen:     screen,
		screens:    screens.NewScreenStack(),
		renderer:   render.NewTerminalRenderer(screen, config.CellWidth, config.CellHeight),
		actionKeys: make(map[rune]ecs.Action),
		log:        log,
	}
	g.screens.Push(root)

	g.actionKeys['s'] = systems.ActionSpawn
	g.actionKeys['x'] = systems.ActionDestroySelected
	g.actionKeys['d'] = systems.ActionToggleDebug
	g.actionKeys[' '] = systems.ActionPause
	g.actionKeys['p'] = systems.ActionPause
	g.actionKeys['c'] = systems.ActionClearPaths

	return g
}

// handleEvent folds one terminal event into the pending input. It returns
// false when the user asked to quit.
func (g *TerminalGame) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyF1:
			g.input.Actions = g.input.Actions.With(systems.ActionToggleDebug)
		case tcell.KeyDelete, tcell.KeyBackspace, tcell.KeyBackspace2:
			g.input.Actions = g.input.Actions.With(systems.ActionDestroySelected)
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				return false
			}
			if action, ok := g.actionKeys[ev.Rune()]; ok {
				g.input.Actions = g.input.Actions.With(action)
			}
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		g.input.Pointer = g.renderer.CellToWorld(x, y)

		down := ev.Buttons()&tcell.Button1 != 0
		if down && !g.buttonDown {
			g.input.Pressed = true
		} else if !down && g.buttonDown {
			g.input.Released = true
		}
		g.buttonDown = down

		if ev.Buttons()&tcell.Button2 != 0 {
			g.input.Actions = g.input.Actions.With(systems.ActionSpawn)
		}

	case *tcell.EventResize:
		g.screen.Sync()
	}

	return true
}

// takeInput returns the pending input and resets the edge-triggered parts
func (g *TerminalGame) takeInput() ecs.Input {
	in := g.input
	in.Held = g.buttonDown

	g.input.Pressed = false
	g.input.Released = false
	g.input.Actions = 0
	return in
}

// tick steps the screens once and redraws
func (g *TerminalGame) tick(delta float64) error {
	if err := g.screens.Update(ecs.Frame{Delta: delta, Input: g.takeInput()}); err != nil {
		return err
	}

	g.screen.Clear()
	g.screens.Draw(g.renderer)
	g.screen.Show()
	return nil
}

// run owns the frame loop. Terminal events are read on their own goroutine
// and only forwarded over a channel.
func (g *TerminalGame) run() error {
	ticker := time.NewTicker(terminalFrameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !g.handleEvent(ev) {
				g.log.Info("quit requested")
				return nil
			}

		case now := <-ticker.C:
			delta := min(now.Sub(last).Seconds(), maxFrameDelta)
			last = now
			if err := g.tick(delta); err != nil {
				return err
			}
		}
	}
}

// runTerminal runs the terminal frontend until the user quits. A panic
// restores the terminal before the process exits non-zero.
func runTerminal(root screens.Screen, log *logrus.Entry) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialise terminal screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			if cv, ok := ecs.AsContractViolation(r); ok {
				log.WithField("op", cv.Op).Error(cv.Msg)
			}
			fmt.Fprintf(os.Stderr, "fatal: %+v\n", r)
			os.Exit(1)
		}
	}()

	err = NewTerminalGame(screen, root, log).run()
	screen.Fini()
	return err
}
