// Package sim assembles the world, its components and systems into a
// runnable path-drawing simulation that any frontend can drive.
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"ebiten-pathsim/components"
	"ebiten-pathsim/config"
	"ebiten-pathsim/data"
	"ebiten-pathsim/ecs"
	"ebiten-pathsim/render"
	"ebiten-pathsim/spawners"
	"ebiten-pathsim/systems"
	"ebiten-pathsim/vmath"
)

// messageLogSize is how many lifecycle messages the debug overlay can show
const messageLogSize = 100

// Options configures a Simulation
type Options struct {
	// Templates to spawn from; nil loads the built-in templates
	Templates *data.EntityTemplateManager
	// Textures resolves template textures; nil leaves everything untextured
	Textures render.TextureLoader
	// Seed drives entity IDs and spawning; 0 means random
	Seed   uint64
	Logger *logrus.Entry
}

// Simulation owns one World and every system that runs in it
type Simulation struct {
	World      *ecs.World
	Components *components.Registry
	Spawner    *spawners.EntitySpawner
	Messages   *systems.MessageLog

	input     *systems.InputSystem
	render    *systems.RenderSystem
	pathDebug *systems.PathDebugSystem

	frames  uint64
	elapsed float64
}

// SystemStats describes one registered system
type SystemStats struct {
	Name    string
	Members int
}

// Stats is a snapshot of the simulation for overlays and logs
type Stats struct {
	Frames   uint64
	Elapsed  float64
	Entities int
	Capacity int
	Selected ecs.EntityID
	Drawing  bool
	Systems  []SystemStats
}

// New builds a simulation with an empty world
func New(opts Options) (*Simulation, error) {
	if opts.Templates == nil {
		opts.Templates = data.NewEntityTemplateManager()
		if err := opts.Templates.LoadDefaults(); err != nil {
			return nil, fmt.Errorf("failed to load built-in templates: %w", err)
		}
	}

	var ids ecs.IDSource
	if opts.Seed != 0 {
		ids = ecs.NewSeededIDSource(opts.Seed)
	}

	world := ecs.NewWorld(ecs.Options{
		MaxEntities: config.MaxEntities,
		MaxSystems:  config.MaxSystems,
		IDSource:    ids,
		Logger:      opts.Logger,
	})
	reg := components.Register(world)

	messages := systems.NewMessageLog(messageLogSize)
	messages.Attach(world)

	spawner := spawners.NewEntitySpawner(world, reg, opts.Templates, spawners.Options{
		Textures: opts.Textures,
		Seed:     opts.Seed,
		Arena:    vmath.V(config.ScreenWidth, config.ScreenHeight),
	})

	s := &Simulation{
		World:      world,
		Components: reg,
		Spawner:    spawner,
		Messages:   messages,
		input:      systems.NewInputSystem(reg, spawner, config.TileSize),
	}

	// Input picks and edits paths, path following sets velocity, movement
	// integrates it
	world.AddSystem("input", components.PickSignature, s.input)
	world.AddSystem("path_follow", components.PathFollowSignature,
		systems.NewPathFollowSystem(reg, config.PathSpeed, config.PathArrivalRadius))
	world.AddSystem("movement", components.MovingSignature,
		systems.NewMovementSystem(reg, config.ScreenWidth, config.ScreenHeight))

	s.render = systems.NewRenderSystem(world, reg)
	s.pathDebug = systems.NewPathDebugSystem(world, reg, config.TileSize)

	return s, nil
}

// Populate spawns up to n entities at random positions and returns how many
// were created
func (s *Simulation) Populate(n int) int {
	spawned := s.Spawner.SpawnRandom(n)
	s.World.Logger().WithFields(logrus.Fields{
		"requested": n,
		"spawned":   spawned,
	}).Info("initial population spawned")
	return spawned
}

// Step advances the simulation by one frame
func (s *Simulation) Step(f ecs.Frame) {
	s.World.Update(f)
	s.frames++
	s.elapsed += f.Delta
}

// Draw renders entities, the selection outline and path overlays
func (s *Simulation) Draw(r render.Renderer) {
	s.render.Draw(s.World, r, s.input.Selected())
	s.pathDebug.Draw(s.World, r)
}

// Selected returns the entity whose path is being edited, or NullEntity
func (s *Simulation) Selected() ecs.EntityID {
	if !s.World.Alive(s.input.Selected()) {
		return ecs.NullEntity
	}
	return s.input.Selected()
}

// Stats returns a snapshot of frame counters, population and system sizes
func (s *Simulation) Stats() Stats {
	reg := s.World.Systems()
	st := Stats{
		Frames:   s.frames,
		Elapsed:  s.elapsed,
		Entities: s.World.EntityCount(),
		Capacity: s.World.Capacity(),
		Selected: s.Selected(),
		Drawing:  s.input.Drawing(),
		Systems:  make([]SystemStats, 0, reg.Len()),
	}
	for h := 0; h < reg.Len(); h++ {
		st.Systems = append(st.Systems, SystemStats{
			Name:    reg.Name(ecs.SystemHandle(h)),
			Members: len(reg.Entities(ecs.SystemHandle(h))),
		})
	}
	return st
}
