package system

import (
	"math"
	"testing"

	"github.com/milk9111/gravitylegacy/ecs"
	"github.com/milk9111/gravitylegacy/ecs/component"
	"github.com/milk9111/gravitylegacy/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRebaseTable(t *testing.T) {
	// width 10, height 20, depth 1, security 10 gives extent 6 and margin 5.
	const (
		extent = 6.0
		margin = 5.0
	)
	back := -math.Pi / 2
	fwd := math.Pi / 2

	tests := []struct {
		name  string
		old   geom.Side
		next  geom.Side
		angle float64
		dx    float64
		dy    float64
	}{
		{"left_to_top", geom.SideLeft, geom.SideTop, back, margin, -extent},
		{"left_to_bottom", geom.SideLeft, geom.SideBottom, fwd, margin, extent},
		{"right_to_bottom", geom.SideRight, geom.SideBottom, back, -margin, extent},
		{"right_to_top", geom.SideRight, geom.SideTop, fwd, -margin, -extent},
		{"top_to_right", geom.SideTop, geom.SideRight, back, -extent, -margin},
		{"top_to_left", geom.SideTop, geom.SideLeft, fwd, extent, -margin},
		{"bottom_to_left", geom.SideBottom, geom.SideLeft, back, extent, margin},
		{"bottom_to_right", geom.SideBottom, geom.SideRight, fwd, -extent, margin},
		{"opposite_uses_forward", geom.SideBottom, geom.SideTop, fwd, -extent, margin},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			angle, dx, dy := Rebase(tc.old, tc.next, 10, 20, 1, 10)
			assert.InDelta(t, tc.angle, angle, 1e-12)
			assert.InDelta(t, tc.dx, dx, 1e-12)
			assert.InDelta(t, tc.dy, dy, 1e-12)
		})
	}
}

func TestSlimeRebaseIdempotentWhenSideUnchanged(t *testing.T) {
	w := ecs.NewWorld()
	e := newSlime(t, w, 40, 50, true)
	slime := mustGet(t, w, e, component.SlimeComponent.Kind())
	slime.CurrentSide = geom.SideRight
	slime.PreviousSide = geom.SideRight

	NewSlimeRebaseSystem().Update(w)

	tr := mustGet(t, w, e, component.TransformComponent.Kind())
	assert.Equal(t, 40.0, tr.X)
	assert.Equal(t, 50.0, tr.Y)
	assert.Equal(t, 0.0, tr.Rotation)
	assert.Equal(t, geom.SideRight, slime.PreviousSide)
}

func TestSlimeRebaseMovesTransformAndBody(t *testing.T) {
	w := ecs.NewWorld()
	e := newSlime(t, w, 40, 50, true)
	slime := mustGet(t, w, e, component.SlimeComponent.Kind())
	slime.CurrentSide = geom.SideRight
	slime.PenetrationDepth = 0.5

	NewSlimeRebaseSystem().Update(w)

	angle, dx, dy := Rebase(geom.SideBottom, geom.SideRight, testSlimeW*testScale, testSlimeH*testScale, 0.5, 10)
	tr := mustGet(t, w, e, component.TransformComponent.Kind())
	assert.InDelta(t, 40+dx, tr.X, 1e-9)
	assert.InDelta(t, 50+dy, tr.Y, 1e-9)
	assert.InDelta(t, angle, tr.Rotation, 1e-12)

	body := mustGet(t, w, e, component.PhysicsBodyComponent.Kind())
	require.NotNil(t, body.Body)
	assert.InDelta(t, tr.X, body.Body.Position().X, 1e-9)
	assert.InDelta(t, tr.Y, body.Body.Position().Y, 1e-9)
	assert.InDelta(t, angle, body.Body.Angle(), 1e-12)

	assert.Equal(t, geom.SideRight, slime.PreviousSide)

	// a second pass is a no-op
	NewSlimeRebaseSystem().Update(w)
	assert.InDelta(t, 40+dx, tr.X, 1e-9)
}
