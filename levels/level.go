// Package levels loads level files: a solid int grid plus placed entities.
package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/milk9111/gravitylegacy/common"
	"github.com/milk9111/gravitylegacy/walls"
)

//go:embed *.json
var LevelsFS embed.FS

// WallsLayer is the int grid layer whose non-zero cells are solid.
const WallsLayer = "walls"

var (
	ErrMissingLayer   = errors.New("levels: missing layer")
	ErrMalformedLayer = errors.New("levels: malformed layer")
	ErrNoPlayer       = errors.New("levels: no player entity")
)

type Level struct {
	Name     string   `json:"name"`
	Width    int      `json:"width"`
	Height   int      `json:"height"`
	CellSize float64  `json:"cell_size,omitempty"`
	Layers   []Layer  `json:"layers"`
	Entities []Entity `json:"entities,omitempty"`
	Next     string   `json:"next,omitempty"`
}

// Layer is an int grid stored row-major with the top row first.
type Layer struct {
	Name    string `json:"name"`
	Physics bool   `json:"physics"`
	IntGrid []int  `json:"int_grid"`
}

// Entity is a placed object. X and Y are pixels from the top-left corner of the
// level, matching the editor's layout.
type Entity struct {
	Type  string         `json:"type"`
	X     float64        `json:"x"`
	Y     float64        `json:"y"`
	Props map[string]any `json:"props,omitempty"`
}

// Load reads a level by name, preferring the file on disk so edits show up without
// a rebuild.
func Load(name string) (*Level, error) {
	clean := cleanLevelPath(name)
	data, err := os.ReadFile(diskLevelPath(clean))
	if err != nil {
		data, err = fs.ReadFile(LevelsFS, clean)
		if err != nil {
			return nil, fmt.Errorf("read level %q: %w", clean, err)
		}
	}
	lvl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", clean, err)
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(clean, ".json")
	}
	return lvl, nil
}

// Parse decodes and validates a level.
func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if lvl.CellSize <= 0 {
		lvl.CellSize = common.DefaultCellSize
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("%w: level size %dx%d", ErrMalformedLayer, l.Width, l.Height)
	}
	layer, ok := l.Layer(WallsLayer)
	if !ok {
		return fmt.Errorf("%w: %q", ErrMissingLayer, WallsLayer)
	}
	for _, layer := range l.Layers {
		if len(layer.IntGrid) != l.Width*l.Height {
			return fmt.Errorf("%w: %q has %d cells, want %d", ErrMalformedLayer, layer.Name, len(layer.IntGrid), l.Width*l.Height)
		}
		for i, v := range layer.IntGrid {
			if v < 0 {
				return fmt.Errorf("%w: %q cell %d is %d", ErrMalformedLayer, layer.Name, i, v)
			}
		}
	}
	if !layer.Physics {
		return fmt.Errorf("%w: %q must have physics enabled", ErrMalformedLayer, WallsLayer)
	}
	if _, ok := l.Player(); !ok {
		return ErrNoPlayer
	}
	return nil
}

func (l *Level) Layer(name string) (*Layer, bool) {
	for i := range l.Layers {
		if l.Layers[i].Name == name {
			return &l.Layers[i], true
		}
	}
	return nil, false
}

// Player returns the first player entity.
func (l *Level) Player() (Entity, bool) {
	for _, e := range l.Entities {
		if strings.EqualFold(e.Type, "player") {
			return e, true
		}
	}
	return Entity{}, false
}

// PixelWidth and PixelHeight give the level size in world units.
func (l *Level) PixelWidth() float64  { return float64(l.Width) * l.CellSize }
func (l *Level) PixelHeight() float64 { return float64(l.Height) * l.CellSize }

// SolidGrid builds the occupancy grid of every physics layer. Rows are flipped so
// that row 0 is the bottom of the level.
func (l *Level) SolidGrid() (*walls.Grid, error) {
	g, err := walls.NewGrid(l.Width, l.Height, nil)
	if err != nil {
		return nil, err
	}
	for _, layer := range l.Layers {
		if !layer.Physics {
			continue
		}
		if len(layer.IntGrid) != l.Width*l.Height {
			return nil, fmt.Errorf("%w: %q", ErrMalformedLayer, layer.Name)
		}
		for i, v := range layer.IntGrid {
			if v <= 0 {
				continue
			}
			x := i % l.Width
			y := l.Height - 1 - i/l.Width
			if err := g.Set(x, y, true); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// WorldPosition converts an entity's editor position into y-up world coordinates.
func (l *Level) WorldPosition(e Entity) (float64, float64) {
	return e.X, l.PixelHeight() - e.Y
}

// Names lists the embedded levels in order.
func Names() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".json"))
	}
	sort.Strings(names)
	return names
}

func ModTime(name string) (time.Time, bool) {
	info, err := os.Stat(diskLevelPath(cleanLevelPath(name)))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func cleanLevelPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	s = strings.TrimPrefix(s, "levels/")
	if filepath.Ext(s) == "" {
		s += ".json"
	}
	return s
}

func diskLevelPath(clean string) string {
	return filepath.Join("levels", filepath.FromSlash(clean))
}
