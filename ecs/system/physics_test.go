package system

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/gravitylegacy/ecs"
	"github.com/milk9111/gravitylegacy/ecs/component"
	"github.com/milk9111/gravitylegacy/geom"
	"github.com/milk9111/gravitylegacy/gravity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhysicsEmitsBeginWithPlayerFirst(t *testing.T) {
	w := ecs.NewWorld()
	player := newSlime(t, w, 0, 20, false)
	floor := newWall(t, w, geom.Box{X: 0, Y: -10, Width: 200, Height: 20})
	ps := NewPhysicsSystem(cp.Vector{X: 0, Y: -2000})

	var begin *ecs.CollisionEvent
	for i := 0; i < 60 && begin == nil; i++ {
		ps.Update(w)
		for _, evt := range w.Events().Drain() {
			c, ok := evt.Data.(ecs.CollisionEvent)
			if ok && c.Kind == ecs.CollisionBegin {
				begin = &c
			}
		}
	}
	require.NotNil(t, begin, "slime never landed")
	assert.Equal(t, player, begin.A)
	assert.Equal(t, floor, begin.B)
	assert.Less(t, begin.NormalY, -0.5, "normal points from the player to the floor")
	assert.InDelta(t, 200, begin.BBox.Width, 1e-6)
	assert.Equal(t, 2, ps.BodyCount())
}

func TestPhysicsRemovesDestroyedBodies(t *testing.T) {
	w := ecs.NewWorld()
	newSlime(t, w, 0, 20, false)
	floor := newWall(t, w, geom.Box{X: 0, Y: -10, Width: 200, Height: 20})
	ps := NewPhysicsSystem(cp.Vector{X: 0, Y: -2000})
	ps.Update(w)
	require.Equal(t, 2, ps.BodyCount())

	w.DestroyEntity(floor)
	ps.Update(w)
	assert.Equal(t, 1, ps.BodyCount())
}

func TestPhysicsWorldBounds(t *testing.T) {
	w := ecs.NewWorld()
	bounds := w.CreateEntity()
	addComponent(t, w, bounds, component.LevelBoundsComponent.Kind(), &component.LevelBounds{Width: 320, Height: 240})
	addComponent(t, w, bounds, component.SolidTagComponent.Kind(), &component.SolidTag{})
	player := newSlime(t, w, 160, 30, false)
	ps := NewPhysicsSystem(cp.Vector{X: 0, Y: -2000})

	for i := 0; i < 60; i++ {
		ps.Update(w)
		w.Events().Drain()
	}
	tr := mustGet(t, w, player, component.TransformComponent.Kind())
	assert.Greater(t, tr.Y, 0.0, "bottom segment holds the slime")
	assert.Less(t, tr.Y, 20.0)
}

// TestSlimeFollowsRotatedGravity runs the core pipeline: land on the floor, turn the
// world clockwise, fall onto the right wall and re-base onto it.
func TestSlimeFollowsRotatedGravity(t *testing.T) {
	w := ecs.NewWorld()
	player := newSlime(t, w, 20, 20, false)
	newWall(t, w, geom.Box{X: 0, Y: -10, Width: 200, Height: 20})
	newWall(t, w, geom.Box{X: 60, Y: 50, Width: 20, Height: 100})

	o := gravity.New(2000)
	ps := NewPhysicsSystem(o.Gravity())
	sched := ecs.NewScheduler(
		NewSlimeMovementSystem(o),
		ps,
		NewSideTrackingSystem(),
		NewSlimeRebaseSystem(),
	)

	contact := mustGet(t, w, player, component.SurfaceContactComponent.Kind())
	for i := 0; i < 120 && contact.Count == 0; i++ {
		sched.Update(w)
	}
	slime := mustGet(t, w, player, component.SlimeComponent.Kind())
	require.Positive(t, contact.Count, "slime never landed")
	require.Equal(t, geom.SideBottom, slime.CurrentSide)

	o.Rotate(gravity.Clockwise)
	ps.SetGravity(o.Gravity())

	for i := 0; i < 120 && slime.CurrentSide != geom.SideRight; i++ {
		sched.Update(w)
	}
	require.Equal(t, geom.SideRight, slime.CurrentSide)
	assert.Equal(t, geom.SideRight, slime.PreviousSide)

	sched.Update(w)
	tr := mustGet(t, w, player, component.TransformComponent.Kind())
	assert.InDelta(t, math.Pi/2, tr.Rotation, 1e-9)
	assert.Less(t, tr.X, 50.0, "slime stays left of the wall face")
}
