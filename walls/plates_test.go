package walls

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gridFromRows(t *testing.T, rows ...string) *Grid {
	t.Helper()
	height := len(rows)
	width := 0
	if height > 0 {
		width = len(rows[0])
	}
	g, err := NewGrid(width, height, nil)
	require.NoError(t, err)
	// rows are written top first, the grid is bottom first.
	for i, row := range rows {
		y := height - 1 - i
		for x, c := range row {
			if c == '#' {
				require.NoError(t, g.Set(x, y, true))
			}
		}
	}
	return g
}

func requireExactCover(t *testing.T, g *Grid, rects []Rect) {
	t.Helper()
	counts := make(map[Cell]int)
	for _, r := range rects {
		require.LessOrEqual(t, r.Left, r.Right)
		require.LessOrEqual(t, r.Bottom, r.Top)
		for y := r.Bottom; y <= r.Top; y++ {
			for x := r.Left; x <= r.Right; x++ {
				require.True(t, g.Occupied(x, y), "rect %+v covers empty cell (%d, %d)", r, x, y)
				counts[Cell{X: x, Y: y}]++
			}
		}
	}
	for _, c := range g.Cells() {
		require.Equal(t, 1, counts[c], "cell %+v covered %d times", c, counts[c])
	}
	require.Len(t, counts, len(g.Cells()))
}

func TestCompactExamples(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want []Rect
	}{
		{
			name: "empty",
			rows: []string{"...", "..."},
			want: nil,
		},
		{
			name: "single_cell",
			rows: []string{"...", ".#.", "..."},
			want: []Rect{{Left: 1, Right: 1, Bottom: 1, Top: 1}},
		},
		{
			name: "block_3x2",
			rows: []string{"###", "###"},
			want: []Rect{{Left: 0, Right: 2, Bottom: 0, Top: 1}},
		},
		{
			name: "l_shape",
			rows: []string{
				"#..",
				"#..",
				"###",
			},
			want: []Rect{
				{Left: 0, Right: 2, Bottom: 0, Top: 0},
				{Left: 0, Right: 0, Bottom: 1, Top: 2},
			},
		},
		{
			name: "two_columns_touching_right_edge",
			rows: []string{
				"#.#",
				"#.#",
			},
			want: []Rect{
				{Left: 0, Right: 0, Bottom: 0, Top: 1},
				{Left: 2, Right: 2, Bottom: 0, Top: 1},
			},
		},
		{
			name: "plate_reappears_after_gap",
			rows: []string{
				"##",
				"..",
				"##",
			},
			want: []Rect{
				{Left: 0, Right: 1, Bottom: 0, Top: 0},
				{Left: 0, Right: 1, Bottom: 2, Top: 2},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := gridFromRows(t, tc.rows...)
			got := Compact(g)
			assert.Equal(t, tc.want, got)
			requireExactCover(t, g, got)
		})
	}
}

func TestCompactBlockCollider(t *testing.T) {
	g := gridFromRows(t, "###", "###")
	rects := Compact(g)
	require.Len(t, rects, 1)

	c := rects[0].Collider(16, 0, 0)
	assert.Equal(t, Collider{CenterX: 24, CenterY: 16, HalfWidth: 24, HalfHeight: 16}, c)
	assert.Equal(t, 48.0, c.Width())
	assert.Equal(t, 32.0, c.Height())
}

func TestColliderOrigin(t *testing.T) {
	r := Rect{Left: 2, Right: 2, Bottom: 1, Top: 3}
	c := r.Collider(8, -100, 50)
	assert.Equal(t, Collider{CenterX: -100 + 20, CenterY: 50 + 20, HalfWidth: 4, HalfHeight: 12}, c)
}

func TestCompactRandomGridsCoverExactly(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		w := 1 + rng.Intn(12)
		h := 1 + rng.Intn(12)
		density := rng.Float64()
		g, err := NewGrid(w, h, nil)
		require.NoError(t, err)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if rng.Float64() < density {
					require.NoError(t, g.Set(x, y, true))
				}
			}
		}
		requireExactCover(t, g, Compact(g))
	}
}

func TestScanPlatesClosesAtRightEdge(t *testing.T) {
	g := gridFromRows(t, ".##.###")
	rows := ScanPlates(g)
	require.Len(t, rows, 1)
	assert.Equal(t, []Plate{{Row: 0, Left: 1, Right: 2}, {Row: 0, Left: 4, Right: 6}}, rows[0])
}

func TestMergePlatesStacksOnlyIdenticalPlates(t *testing.T) {
	rows := [][]Plate{
		{{Row: 0, Left: 0, Right: 3}},
		{{Row: 1, Left: 0, Right: 3}},
		{{Row: 2, Left: 0, Right: 2}},
	}
	got := MergePlates(rows)
	assert.Equal(t, []Rect{
		{Left: 0, Right: 3, Bottom: 0, Top: 1},
		{Left: 0, Right: 2, Bottom: 2, Top: 2},
	}, got)
}

func TestNewGridRejectsOutOfRange(t *testing.T) {
	_, err := NewGrid(2, 2, []Cell{{X: 2, Y: 0}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCellOutOfRange))

	_, err = NewGrid(-1, 2, nil)
	assert.Error(t, err)
}
