package system

import (
	"testing"

	"github.com/milk9111/gravitylegacy/ecs"
	"github.com/milk9111/gravitylegacy/ecs/component"
	"github.com/stretchr/testify/assert"
)

func TestCameraFollowsPlayer(t *testing.T) {
	w := ecs.NewWorld()
	player := newSlime(t, w, 100, 60, false)
	cam := newCamera(t, w, 0)
	mustGet(t, w, cam, component.CameraComponent.Kind()).Smoothness = 0.5

	sys := NewCameraSystem()
	sys.Update(w)
	ct := mustGet(t, w, cam, component.TransformComponent.Kind())
	assert.InDelta(t, 50, ct.X, 1e-9)
	assert.InDelta(t, 30, ct.Y, 1e-9)

	pt := mustGet(t, w, player, component.TransformComponent.Kind())
	pt.X = 0
	sys.Snap(w)
	assert.Zero(t, ct.X)
	assert.InDelta(t, 60, ct.Y, 1e-9)
}

func TestCameraFindsReplacedPlayer(t *testing.T) {
	w := ecs.NewWorld()
	first := newSlime(t, w, 10, 10, false)
	cam := newCamera(t, w, 0)
	sys := NewCameraSystem()
	sys.Update(w)

	w.DestroyEntity(first)
	newSlime(t, w, 80, 90, false)
	sys.Update(w)

	ct := mustGet(t, w, cam, component.TransformComponent.Kind())
	assert.Equal(t, 80.0, ct.X)
	assert.Equal(t, 90.0, ct.Y)
}
