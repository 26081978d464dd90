// Package walls turns a tile occupancy grid into axis-aligned collision rectangles.
//
// Rows are scanned into plates (maximal horizontal runs) and vertically adjacent
// plates with identical extents are stacked into rectangles. The result covers every
// occupied cell exactly once; it is a fast greedy cover, not a minimum one.
package walls

import (
	"errors"
	"fmt"
	"sort"
)

var ErrCellOutOfRange = errors.New("walls: cell out of range")

// Cell is a grid coordinate. Y grows upward: row 0 is the bottom row.
type Cell struct {
	X int
	Y int
}

// Grid is a dense occupancy grid.
type Grid struct {
	width    int
	height   int
	occupied []bool
}

// NewGrid builds a grid of the given size with cells marked occupied.
func NewGrid(width, height int, cells []Cell) (*Grid, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("walls: invalid grid size %dx%d", width, height)
	}
	g := &Grid{width: width, height: height, occupied: make([]bool, width*height)}
	for _, c := range cells {
		if err := g.Set(c.X, c.Y, true); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Set marks a cell.
func (g *Grid) Set(x, y int, occupied bool) error {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return fmt.Errorf("%w: (%d, %d) in %dx%d", ErrCellOutOfRange, x, y, g.width, g.height)
	}
	g.occupied[y*g.width+x] = occupied
	return nil
}

// Occupied reports whether a cell is set. Out of range cells are empty.
func (g *Grid) Occupied(x, y int) bool {
	if g == nil || x < 0 || y < 0 || x >= g.width || y >= g.height {
		return false
	}
	return g.occupied[y*g.width+x]
}

// Cells returns every occupied cell, row by row from the bottom.
func (g *Grid) Cells() []Cell {
	var out []Cell
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.Occupied(x, y) {
				out = append(out, Cell{X: x, Y: y})
			}
		}
	}
	return out
}

// Plate is a maximal run of occupied cells in one row, inclusive on both ends.
type Plate struct {
	Row   int
	Left  int
	Right int
}

// Rect is a stack of identical plates, inclusive on every edge, in cell units.
type Rect struct {
	Left   int
	Right  int
	Bottom int
	Top    int
}

func (r Rect) Width() int  { return r.Right - r.Left + 1 }
func (r Rect) Height() int { return r.Top - r.Bottom + 1 }
func (r Rect) Area() int   { return r.Width() * r.Height() }

// Contains reports whether the cell lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left && x <= r.Right && y >= r.Bottom && y <= r.Top
}

// ScanPlates returns the plates of every row, bottom row first.
func ScanPlates(g *Grid) [][]Plate {
	if g == nil {
		return nil
	}
	rows := make([][]Plate, g.height)
	for y := 0; y < g.height; y++ {
		start := -1
		// x == width is a sentinel column that closes runs touching the right edge.
		for x := 0; x <= g.width; x++ {
			if g.Occupied(x, y) {
				if start < 0 {
					start = x
				}
				continue
			}
			if start >= 0 {
				rows[y] = append(rows[y], Plate{Row: y, Left: start, Right: x - 1})
				start = -1
			}
		}
	}
	return rows
}

type span struct {
	left  int
	right int
}

// MergePlates stacks plates row by row. rows[i] holds the plates of row i.
func MergePlates(rows [][]Plate) []Rect {
	var out []Rect
	open := make(map[span]Rect)

	// One extra empty row closes whatever is still open.
	for y := 0; y <= len(rows); y++ {
		var plates []Plate
		if y < len(rows) {
			plates = rows[y]
		}

		next := make(map[span]Rect, len(plates))
		for _, p := range plates {
			key := span{left: p.Left, right: p.Right}
			if r, ok := open[key]; ok {
				r.Top = y
				next[key] = r
				delete(open, key)
				continue
			}
			next[key] = Rect{Left: p.Left, Right: p.Right, Bottom: y, Top: y}
		}

		out = append(out, sortedRects(open)...)
		open = next
	}
	return out
}

// Compact returns the rectangles covering every occupied cell of g.
func Compact(g *Grid) []Rect {
	return MergePlates(ScanPlates(g))
}

func sortedRects(m map[span]Rect) []Rect {
	if len(m) == 0 {
		return nil
	}
	out := make([]Rect, 0, len(m))
	for _, r := range m {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Left < out[j].Left })
	return out
}
