package spawners

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/sirupsen/logrus"

	"ebiten-pathsim/components"
	"ebiten-pathsim/data"
	"ebiten-pathsim/ecs"
	"ebiten-pathsim/render"
	"ebiten-pathsim/vmath"
)

// EntitySpawner manages the creation of entities from templates
type EntitySpawner struct {
	world      *ecs.World
	components *components.Registry
	templates  *data.EntityTemplateManager
	table      *SpawnTable
	textures   render.TextureLoader
	rng        *rand.Rand
	log        *logrus.Entry
	arena      vmath.Vec2
}

// Options configures an EntitySpawner
type Options struct {
	// Textures resolves template texture paths; nil means render.NopLoader
	Textures render.TextureLoader
	// Seed for placement and template rolls; 0 picks a random seed
	Seed uint64
	// Arena is the area SpawnRandom scatters entities over
	Arena vmath.Vec2
	// Logger defaults to the world's logger
	Logger *logrus.Entry
}

// NewEntitySpawner creates a new entity spawner
func NewEntitySpawner(world *ecs.World, reg *components.Registry, templates *data.EntityTemplateManager, opts Options) *EntitySpawner {
	if opts.Textures == nil {
		opts.Textures = render.NopLoader{}
	}
	if opts.Seed == 0 {
		opts.Seed = rand.Uint64()
	}
	if opts.Logger == nil {
		opts.Logger = world.Logger()
	}

	return &EntitySpawner{
		world:      world,
		components: reg,
		templates:  templates,
		table:      NewSpawnTableFromTemplates(templates),
		textures:   opts.Textures,
		rng:        rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15)),
		log:        opts.Logger.WithField("component", "spawner"),
		arena:      opts.Arena,
	}
}

// Spawn creates an entity from the template with the given ID, centred on
// pos. It attaches Transform plus exactly the components the template
// lists. When the world is full it logs and returns NullEntity without an
// error.
func (s *EntitySpawner) Spawn(templateID string, pos vmath.Vec2) (ecs.EntityID, error) {
	template, exists := s.templates.GetTemplate(templateID)
	if !exists {
		return ecs.NullEntity, fmt.Errorf("no template found for entity type '%s'", templateID)
	}

	e := s.world.CreateEntity()
	if e == ecs.NullEntity {
		s.log.WithField("template", templateID).Warn("world full, spawn skipped")
		return ecs.NullEntity, nil
	}

	c := s.components
	c.Transform.Add(e, components.Transform{
		Position: pos,
		Size:     vmath.V(template.Size.X, template.Size.Y),
		Rotation: template.Rotation * math.Pi / 180,
	})

	if template.Has(components.MotionID) {
		c.Motion.Add(e, components.Motion{Velocity: s.initialVelocity(template)})
	}
	if template.Has(components.ColorID) {
		c.Color.Add(e, template.Tint())
	}
	if template.Has(components.SpriteID) {
		c.Sprite.Add(e, components.Sprite{Texture: s.loadTexture(template)})
	}
	if template.Has(components.PathID) {
		c.Path.Add(e, components.Path{})
	}
	if template.Has(components.NameID) {
		c.Name.Add(e, components.Name{Name: template.Name})
	}

	return e, nil
}

// SpawnAt creates an entity from a randomly rolled template at pos. It
// returns NullEntity when the world is full or no template can be rolled.
func (s *EntitySpawner) SpawnAt(pos vmath.Vec2) ecs.EntityID {
	id, ok := s.table.Pick(s.rng)
	if !ok {
		s.log.Warn("no spawnable templates loaded")
		return ecs.NullEntity
	}

	e, err := s.Spawn(id, pos)
	if err != nil {
		s.log.WithError(err).Error("spawn failed")
		return ecs.NullEntity
	}
	return e
}

// SpawnRandom scatters up to n entities over the arena and returns how many
// were created. It stops early once the world is full.
func (s *EntitySpawner) SpawnRandom(n int) int {
	spawned := 0
	for i := 0; i < n; i++ {
		if s.world.EntityCount() == s.world.Capacity() {
			s.log.WithFields(logrus.Fields{
				"requested": n,
				"spawned":   spawned,
			}).Warn("world full, stopping initial spawn")
			break
		}

		pos := vmath.V(s.rng.Float64()*s.arena.X, s.rng.Float64()*s.arena.Y)
		if s.SpawnAt(pos) == ecs.NullEntity {
			break
		}
		spawned++
	}
	return spawned
}

// initialVelocity uses the template's fixed velocity, or a random heading at
// the template's speed when none is given
func (s *EntitySpawner) initialVelocity(t *data.EntityTemplate) vmath.Vec2 {
	if t.Velocity.X != 0 || t.Velocity.Y != 0 {
		return vmath.V(t.Velocity.X, t.Velocity.Y)
	}
	if t.Speed <= 0 {
		return vmath.Vec2{}
	}

	heading := s.rng.Float64() * 2 * math.Pi
	return vmath.V(math.Cos(heading), math.Sin(heading)).Scale(t.Speed)
}

// loadTexture resolves the template's texture, falling back to an
// untextured quad when it cannot be loaded
func (s *EntitySpawner) loadTexture(t *data.EntityTemplate) components.TextureHandle {
	if t.Texture == "" {
		return components.NoTexture
	}

	h, err := s.textures.Load(t.Texture)
	if err != nil {
		s.log.WithError(err).WithField("template", t.ID).Warn("texture unavailable")
		return components.NoTexture
	}
	return h
}
