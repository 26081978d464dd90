package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(x, y, size float64) Box {
	return Box{X: x, Y: y, Width: size, Height: size}
}

var classifyCases = []struct {
	name    string
	a       Box
	b       Box
	side    Side
	overlap float64
	depth   float64
}{
	{"resting_on_floor", square(0, 0, 10), square(0, -9, 10), SideBottom, 10, 1},
	{"wall_on_right", square(0, 0, 10), square(9, 0, 10), SideRight, 10, 1},
	{"wall_on_left", square(0, 0, 10), square(-9, 0, 10), SideLeft, 10, 1},
	{"ceiling", square(0, 0, 10), square(0, 9, 10), SideTop, 10, 1},
	{"corner_shallow_y", square(0, 0, 10), square(8, -9, 10), SideBottom, 2, 1},
	{"corner_shallow_x", square(0, 0, 10), square(9, -7, 10), SideRight, 3, 1},
	{"corner_tie_prefers_x", square(0, 0, 10), square(9, -9, 10), SideRight, 1, 1},
	{"contained", square(0, 0, 4), square(0, 0, 20), SideInside, 4, 4},
	{"wide_mover_on_narrow_floor", Box{X: 0, Y: 0, Width: 30, Height: 10}, square(0, -9, 10), SideBottom, 10, 1},
}

func TestClassify(t *testing.T) {
	for _, tc := range classifyCases {
		t.Run(tc.name, func(t *testing.T) {
			out, ok := Classify(tc.a, tc.b)
			require.True(t, ok)
			assert.Equal(t, tc.side, out.Side)
			assert.InDelta(t, tc.overlap, out.OverlapLength, 1e-9)
			assert.InDelta(t, tc.depth, out.PenetrationDepth, 1e-9)
		})
	}
}

func TestClassifySwappedMirrorsSide(t *testing.T) {
	for _, tc := range classifyCases {
		t.Run(tc.name, func(t *testing.T) {
			out, ok := Classify(tc.b, tc.a)
			require.True(t, ok)
			assert.Equal(t, tc.side.Mirror(), out.Side)
			assert.InDelta(t, tc.depth, out.PenetrationDepth, 1e-9)
		})
	}
}

func TestClassifyNoOverlap(t *testing.T) {
	tests := []struct {
		name string
		b    Box
	}{
		{"touching_below", square(0, -10, 10)},
		{"touching_right", square(10, 0, 10)},
		{"far_away", square(100, 100, 10)},
		{"diagonal_gap", square(11, 11, 10)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := Classify(square(0, 0, 10), tc.b)
			assert.False(t, ok)
		})
	}
}

func TestSideCycle(t *testing.T) {
	for _, s := range []Side{SideBottom, SideRight, SideTop, SideLeft} {
		assert.Equal(t, s, s.Next().Prev(), s.String())
		assert.Equal(t, s, s.Next().Next().Next().Next(), s.String())
		assert.True(t, s.Directional())
	}
	assert.Equal(t, SideLeft, SideBottom.Prev())
	assert.Equal(t, SideBottom, SideLeft.Next())
	assert.Equal(t, SideInside, SideInside.Next())
	assert.False(t, SideInside.Directional())
	assert.Equal(t, 4, SideInside.Ordinal())
}

func TestSideFromNormal(t *testing.T) {
	tests := []struct {
		nx, ny float64
		want   Side
	}{
		{0, -1, SideBottom},
		{0, 1, SideTop},
		{1, 0, SideRight},
		{-1, 0, SideLeft},
		{0.7, 0.7, SideTop},
		{0.3, 0.3, SideInside},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, SideFromNormal(tc.nx, tc.ny), "normal (%v, %v)", tc.nx, tc.ny)
	}
}

func TestBoxFromBounds(t *testing.T) {
	b := BoxFromBounds(0, 0, 48, 32)
	assert.Equal(t, Box{X: 24, Y: 16, Width: 48, Height: 32}, b)
	g := b.Grow(1)
	assert.Equal(t, 50.0, g.Width)
	assert.Equal(t, 34.0, g.Height)
	assert.Equal(t, b.X, g.X)
}
