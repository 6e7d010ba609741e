package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"ebiten-pathsim/config"
	"ebiten-pathsim/ecs"
	"ebiten-pathsim/render"
	"ebiten-pathsim/screens"
	"ebiten-pathsim/systems"
	"ebiten-pathsim/vmath"
)

// Game implements ebiten.Game interface.
type Game struct {
	screens    *screens.ScreenStack
	renderer   *render.EbitenRenderer
	actionKeys map[ebiten.Key]ecs.Action
	background color.Color
	log        *logrus.Entry
}

// NewGame creates the window frontend around the given root screen
func NewGame(root screens.Screen, textures *render.Textures, log *logrus.Entry) *Game {
	game := &Game{
		screens:    screens.NewScreenStack(),
		renderer:   render.NewEbitenRenderer(textures),
		actionKeys: make(map[ebiten.Key]ecs.Action),
		background: color.RGBA{16, 16, 24, 255},
		log:        log,
	}
	game.screens.Push(root)

	// Set up default key bindings
	game.actionKeys[ebiten.KeyS] = systems.ActionSpawn
	game.actionKeys[ebiten.KeyDelete] = systems.ActionDestroySelected
	game.actionKeys[ebiten.KeyBackspace] = systems.ActionDestroySelected
	game.actionKeys[ebiten.KeyF1] = systems.ActionToggleDebug
	game.actionKeys[ebiten.KeySpace] = systems.ActionPause
	game.actionKeys[ebiten.KeyP] = systems.ActionPause
	game.actionKeys[ebiten.KeyC] = systems.ActionClearPaths

	return game
}

// Update updates the game state.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.log.Info("quit requested")
		return ebiten.Termination
	}

	frame := ecs.Frame{
		Delta: 1.0 / float64(ebiten.TPS()),
		Input: g.readInput(),
	}
	return g.screens.Update(frame)
}

// readInput snapshots pointer and key state for this tick
func (g *Game) readInput() ecs.Input {
	x, y := ebiten.CursorPosition()
	in := ecs.Input{
		Pointer:  vmath.V(float64(x), float64(y)),
		Pressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Released: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		Held:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}

	for key, action := range g.actionKeys {
		if inpututil.IsKeyJustPressed(key) {
			in.Actions = in.Actions.With(action)
		}
	}

	// Right click spawns under the cursor
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		in.Actions = in.Actions.With(systems.ActionSpawn)
	}

	return in
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	g.renderer.Begin(screen)
	g.screens.Draw(g.renderer)
}

// Layout takes the outside size (e.g., the window size) and returns the (logical) screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GetScreenDimensions()
}

// runWindow runs the ebiten frontend until the window is closed
func runWindow(game *Game, fullscreen bool) error {
	windowWidth, windowHeight := config.GetWindowSize()
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetFullscreen(fullscreen)
	ebiten.SetWindowTitle("Path Sim")

	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}
