package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/gravitylegacy/ecs"
	"github.com/milk9111/gravitylegacy/ecs/component"
	"github.com/milk9111/gravitylegacy/geom"
	"github.com/stretchr/testify/require"
)

const (
	testSlimeW = 22.0
	testSlimeH = 23.0
	testScale  = 0.7
)

func addComponent[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T], v *T) {
	t.Helper()
	require.NoError(t, ecs.Add(w, e, kind, v))
}

// newSlime creates a player entity shaped like the real prefab. The physics body is
// left for the physics system to create unless withBody is set.
func newSlime(t *testing.T, w *ecs.World, x, y float64, withBody bool) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	addComponent(t, w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	addComponent(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	addComponent(t, w, e, component.InputComponent.Kind(), &component.Input{})
	addComponent(t, w, e, component.SurfaceContactComponent.Kind(), &component.SurfaceContact{})
	addComponent(t, w, e, component.SpawnPointComponent.Kind(), &component.SpawnPoint{X: x, Y: y})
	addComponent(t, w, e, component.SlimeComponent.Kind(), &component.Slime{
		MoveSpeed:        200,
		SecurityDistance: 10,
		AirborneFrames:   6,
	})
	addComponent(t, w, e, component.SpriteComponent.Kind(), &component.Sprite{Sheet: "slime_idle", Width: testSlimeW, Height: testSlimeH, Scale: testScale})
	addComponent(t, w, e, component.AnimationComponent.Kind(), &component.Animation{
		Defs: map[string]component.AnimationDef{
			AnimIdle: {Name: AnimIdle, Sheet: "slime_idle", FrameCount: 8, FrameW: 22, FrameH: 23, FrameSeconds: 0.15, Loop: true},
			AnimWalk: {Name: AnimWalk, Sheet: "slime_walk", FrameCount: 10, FrameW: 23, FrameH: 24, FrameSeconds: 0.15, Loop: true},
		},
		Current: AnimIdle,
		Playing: true,
	})

	body := &component.PhysicsBody{
		Width:         testSlimeW * testScale,
		Height:        testSlimeH * testScale,
		Mass:          1,
		FixedRotation: true,
	}
	if withBody {
		body.Body = cp.NewBody(1, cp.INFINITY)
		body.Body.SetPosition(cp.Vector{X: x, Y: y})
	}
	addComponent(t, w, e, component.PhysicsBodyComponent.Kind(), body)
	return e
}

func newWall(t *testing.T, w *ecs.World, box geom.Box) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	addComponent(t, w, e, component.SolidTagComponent.Kind(), &component.SolidTag{})
	addComponent(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: box.X, Y: box.Y, ScaleX: 1, ScaleY: 1})
	addComponent(t, w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Width: box.Width, Height: box.Height, Static: true})
	return e
}

func newCamera(t *testing.T, w *ecs.World, frames int) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	addComponent(t, w, e, component.CameraTagComponent.Kind(), &component.CameraTag{})
	addComponent(t, w, e, component.TransformComponent.Kind(), &component.Transform{ScaleX: 1, ScaleY: 1})
	addComponent(t, w, e, component.CameraComponent.Kind(), &component.Camera{Zoom: 1, Smoothness: 1, RotationFrames: frames})
	return e
}

func pushCollision(w *ecs.World, evt ecs.CollisionEvent) {
	w.Events().Push(ecs.Event{Type: ecs.EventCollision, Data: evt})
}

func mustGet[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T]) *T {
	t.Helper()
	v, ok := ecs.Get(w, e, kind)
	require.True(t, ok)
	return v
}

type recordingGravity struct {
	last  cp.Vector
	calls int
}

func (g *recordingGravity) SetGravity(v cp.Vector) {
	g.last = v
	g.calls++
}
