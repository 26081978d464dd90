package gravity

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func legalDown(v cp.Vector) bool {
	for _, d := range downAxes {
		if d == v {
			return true
		}
	}
	return false
}

func TestOrientationInitial(t *testing.T) {
	o := New(2000)
	assert.True(t, o.IsInitial())
	assert.Equal(t, cp.Vector{X: 0, Y: -1}, o.Down())
	assert.Equal(t, cp.Vector{X: 0, Y: -2000}, o.Gravity())
	assert.Equal(t, cp.Vector{X: 1, Y: 0}, o.Tangent())
	assert.Equal(t, 0.0, o.ViewAngle())
}

func TestOrientationClockwiseCycle(t *testing.T) {
	o := New(2000)
	want := []cp.Vector{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 0, Y: -1}}
	for i, w := range want {
		o.Rotate(Clockwise)
		require.Equal(t, w, o.Down(), "after %d clockwise turns", i+1)
		require.True(t, legalDown(o.Down()))
	}
	assert.True(t, o.IsInitial())
}

func TestOrientationInverseCommands(t *testing.T) {
	tests := []struct {
		name  string
		first Direction
		then  Direction
	}{
		{"cw_then_ccw", Clockwise, CounterClockwise},
		{"ccw_then_cw", CounterClockwise, Clockwise},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o := New(2000)
			o.Rotate(Clockwise)
			before := o.Down()
			o.Rotate(tc.first)
			o.Rotate(tc.then)
			assert.Equal(t, before, o.Down())
		})
	}
}

func TestOrientationGravityFollowsDown(t *testing.T) {
	o := New(1500)
	for i := 0; i < 8; i++ {
		o.Rotate(CounterClockwise)
		g := o.Gravity()
		assert.InDelta(t, 1500, math.Hypot(g.X, g.Y), 1e-9)
		assert.Equal(t, o.Down().Mult(1500), g)
	}
}

func TestOrientationTangentReadsRightOnScreen(t *testing.T) {
	o := New(2000)
	for i := 0; i < 4; i++ {
		// rotating the world by the view angle must map down to screen-down and the
		// tangent to screen-right.
		a := o.ViewAngle()
		rot := func(v cp.Vector) cp.Vector {
			return cp.Vector{X: v.X*math.Cos(a) - v.Y*math.Sin(a), Y: v.X*math.Sin(a) + v.Y*math.Cos(a)}
		}
		d := rot(o.Down())
		tg := rot(o.Tangent())
		assert.InDelta(t, 0, d.X, 1e-9)
		assert.InDelta(t, -1, d.Y, 1e-9)
		assert.InDelta(t, 1, tg.X, 1e-9)
		assert.InDelta(t, 0, tg.Y, 1e-9)
		o.Rotate(Clockwise)
	}
}

func TestOrientationReset(t *testing.T) {
	o := New(2000)
	o.Rotate(Clockwise)
	o.Rotate(Clockwise)
	o.Rotate(CounterClockwise)
	require.False(t, o.IsInitial())
	o.Reset()
	assert.True(t, o.IsInitial())
	assert.Equal(t, New(2000).Gravity(), o.Gravity())
}

func TestTurnAngle(t *testing.T) {
	assert.Equal(t, -math.Pi/2, TurnAngle(Clockwise))
	assert.Equal(t, math.Pi/2, TurnAngle(CounterClockwise))
}
