package session

import (
	"testing"

	"github.com/milk9111/gravitylegacy/ecs"
	"github.com/milk9111/gravitylegacy/ecs/component"
	"github.com/milk9111/gravitylegacy/ecs/entity"
	"github.com/milk9111/gravitylegacy/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedInput struct {
	held    map[component.Action]bool
	pressed map[component.Action]bool
}

func newScriptedInput() *scriptedInput {
	return &scriptedInput{
		held:    map[component.Action]bool{},
		pressed: map[component.Action]bool{},
	}
}

func (s *scriptedInput) Held(a component.Action) bool        { return s.held[a] }
func (s *scriptedInput) JustPressed(a component.Action) bool { return s.pressed[a] }

// press reports a for exactly one update.
func (s *scriptedInput) press(t *testing.T, sess *Session, a component.Action) {
	t.Helper()
	s.pressed[a] = true
	require.NoError(t, sess.Update())
	delete(s.pressed, a)
}

func newSession(t *testing.T, level string) (*Session, *scriptedInput) {
	t.Helper()
	spec, err := prefabs.LoadGameSpec()
	require.NoError(t, err)
	in := newScriptedInput()
	sess, err := New(spec, in, level)
	require.NoError(t, err)
	return sess, in
}

func playerTransform(t *testing.T, w *ecs.World) *component.Transform {
	t.Helper()
	players := w.Query(component.PlayerTagComponent.Kind())
	require.Len(t, players, 1)
	tr, ok := ecs.Get(w, players[0], component.TransformComponent.Kind())
	require.True(t, ok)
	return tr
}

func TestNewLoadsFirstLevel(t *testing.T) {
	sess, _ := newSession(t, "")
	assert.Equal(t, sess.Spec().FirstLevel, sess.LevelName())

	level, ok := entity.CurrentLevel(sess.World())
	require.True(t, ok)
	assert.Equal(t, sess.LevelName(), level.Name)

	cam, ok := sess.World().First(component.CameraComponent.Kind())
	require.True(t, ok)
	camT, ok := ecs.Get(sess.World(), cam, component.TransformComponent.Kind())
	require.True(t, ok)
	pt := playerTransform(t, sess.World())
	assert.Equal(t, pt.X, camT.X)
	assert.Equal(t, pt.Y, camT.Y)
}

func TestNewErrors(t *testing.T) {
	_, err := New(nil, nil, "")
	assert.Error(t, err)

	spec, err := prefabs.LoadGameSpec()
	require.NoError(t, err)
	_, err = New(spec, nil, "no_such_level")
	assert.Error(t, err)
}

func TestSkipLoadsNextLevel(t *testing.T) {
	sess, in := newSession(t, "level_0")

	in.press(t, sess, component.ActionSkipLevel)

	assert.Equal(t, "level_1", sess.LevelName())
	assert.Empty(t, sess.World().Query(component.LevelChangeRequestComponent.Kind()))
	assert.Len(t, sess.World().Query(component.LevelComponent.Kind()), 1)
	assert.Len(t, sess.World().Query(component.CameraComponent.Kind()), 1)
	playerTransform(t, sess.World())
}

func TestSkipOnLastLevelStays(t *testing.T) {
	sess, in := newSession(t, "level_1")

	in.press(t, sess, component.ActionSkipLevel)

	assert.Equal(t, "level_1", sess.LevelName())
	assert.Empty(t, sess.World().Query(component.LevelChangeRequestComponent.Kind()))
}

func TestLevelChangeResetsOrientation(t *testing.T) {
	sess, in := newSession(t, "level_0")

	in.press(t, sess, component.ActionRotateClockwise)
	require.Equal(t, 1, sess.Orientation().Step())
	assert.Equal(t, sess.Orientation().Gravity(), sess.Physics().Gravity())

	in.press(t, sess, component.ActionSkipLevel)

	assert.True(t, sess.Orientation().IsInitial())
	assert.Equal(t, sess.Orientation().Gravity(), sess.Physics().Gravity())
	cam, ok := sess.World().First(component.CameraComponent.Kind())
	require.True(t, ok)
	camComp, ok := ecs.Get(sess.World(), cam, component.CameraComponent.Kind())
	require.True(t, ok)
	assert.Zero(t, camComp.Rotation)
	assert.Zero(t, camComp.TargetRotation)
}

func TestReloadReturnsPlayerToSpawn(t *testing.T) {
	sess, in := newSession(t, "level_0")
	start := *playerTransform(t, sess.World())

	in.held[component.ActionMoveRight] = true
	for i := 0; i < 60; i++ {
		require.NoError(t, sess.Update())
	}
	delete(in.held, component.ActionMoveRight)
	assert.NotEqual(t, start.X, playerTransform(t, sess.World()).X)

	require.NoError(t, sess.Reload())
	assert.Equal(t, "level_0", sess.LevelName())
	pt := playerTransform(t, sess.World())
	assert.Equal(t, start.X, pt.X)
	assert.Equal(t, start.Y, pt.Y)
	assert.Equal(t, uint64(60), sess.Ticks())
}

func TestSetSpecUpdatesGravity(t *testing.T) {
	sess, _ := newSession(t, "level_0")
	spec := *sess.Spec()
	spec.Gravity = 500

	sess.SetSpec(&spec)

	assert.Equal(t, 500.0, sess.Orientation().Magnitude())
	assert.InDelta(t, -500, sess.Physics().Gravity().Y, 1e-9)
	sess.SetSpec(nil)
	assert.Equal(t, &spec, sess.Spec())
}
