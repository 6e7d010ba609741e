package sim

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-pathsim/config"
	"ebiten-pathsim/ecs"
	"ebiten-pathsim/vmath"
)

func newSim(t *testing.T) (*Simulation, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	s, err := New(Options{Seed: 7, Logger: logrus.NewEntry(logger)})
	require.NoError(t, err)
	return s, hook
}

func TestNewRegistersSystemsInOrder(t *testing.T) {
	s, _ := newSim(t)

	st := s.Stats()
	var names []string
	for _, sys := range st.Systems {
		names = append(names, sys.Name)
	}
	assert.Equal(t, []string{"input", "path_follow", "movement", "render", "path_debug"}, names)
	assert.Equal(t, config.MaxEntities, st.Capacity)
	assert.Zero(t, st.Entities)
	assert.Equal(t, ecs.NullEntity, st.Selected)
}

func TestPopulate(t *testing.T) {
	s, hook := newSim(t)

	assert.Equal(t, 10, s.Populate(10))

	st := s.Stats()
	assert.Equal(t, 10, st.Entities)
	members := map[string]int{}
	for _, sys := range st.Systems {
		members[sys.Name] = sys.Members
	}
	assert.Equal(t, 10, members["input"])
	assert.Equal(t, 10, members["movement"])
	assert.Equal(t, 10, members["render"])
	assert.Zero(t, members["path_follow"])

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "initial population spawned", hook.LastEntry().Message)
	assert.Equal(t, 10, hook.LastEntry().Data["spawned"])

	// Creation and component messages reach the log
	assert.NotEmpty(t, s.Messages.RecentMessages(1))
}

func TestPopulateStopsAtCapacity(t *testing.T) {
	s, _ := newSim(t)
	assert.Equal(t, config.MaxEntities, s.Populate(config.MaxEntities+20))
	assert.Equal(t, config.MaxEntities, s.World.EntityCount())
}

func TestDrawnPathIsFollowed(t *testing.T) {
	s, _ := newSim(t)
	e, err := s.Spawner.Spawn("beacon", vmath.V(200, 200))
	require.NoError(t, err)

	const dt = 1.0 / 60
	s.Step(ecs.Frame{Delta: dt, Input: ecs.Input{Pointer: vmath.V(200, 200), Pressed: true, Held: true}})
	assert.Equal(t, e, s.Selected())

	s.Step(ecs.Frame{Delta: dt, Input: ecs.Input{Pointer: vmath.V(264, 200), Held: true}})
	s.Step(ecs.Frame{Delta: dt, Input: ecs.Input{Pointer: vmath.V(264, 200), Released: true}})
	assert.False(t, s.Stats().Drawing)

	for i := 0; i < 60; i++ {
		s.Step(ecs.Frame{Delta: dt})
	}

	tr := s.Components.Transform.Get(e)
	assert.InDelta(t, 264, tr.Position.X, config.PathArrivalRadius+0.5)
	assert.InDelta(t, 200, tr.Position.Y, 0.5)
	assert.Zero(t, s.Components.Path.Get(e).Len(), "finished paths are cleared")
	assert.Equal(t, vmath.Vec2{}, s.Components.Motion.Get(e).Velocity)

	st := s.Stats()
	assert.Equal(t, uint64(63), st.Frames)
	assert.InDelta(t, 63*dt, st.Elapsed, 1e-9)
}

func TestSelectedForgetsDestroyedEntity(t *testing.T) {
	s, _ := newSim(t)
	e, err := s.Spawner.Spawn("beacon", vmath.V(100, 100))
	require.NoError(t, err)

	s.Step(ecs.Frame{Input: ecs.Input{Pointer: vmath.V(100, 100), Pressed: true, Held: true}})
	require.Equal(t, e, s.Selected())

	s.World.DestroyEntity(e)
	assert.Equal(t, ecs.NullEntity, s.Selected())
}
