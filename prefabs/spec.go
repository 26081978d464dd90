package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/gravitylegacy/common"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// GameSpec holds the tunables shared by every level.
type GameSpec struct {
	FirstLevel       string     `yaml:"first_level"`
	Gravity          float64    `yaml:"gravity"`
	MoveSpeed        float64    `yaml:"move_speed"`
	SecurityDistance float64    `yaml:"security_distance"`
	AirborneFrames   uint8      `yaml:"airborne_frames"`
	RotationFrames   int        `yaml:"rotation_frames"`
	WallFriction     float64    `yaml:"wall_friction"`
	CellSize         float64    `yaml:"cell_size"`
	ScreenWidth      int        `yaml:"screen_width"`
	ScreenHeight     int        `yaml:"screen_height"`
	Background       *YAMLColor `yaml:"background"`
}

func LoadGameSpec() (*GameSpec, error) {
	spec, err := LoadSpec[GameSpec]("game.yaml")
	if err != nil {
		return nil, err
	}
	spec.applyDefaults()
	return &spec, nil
}

func (s *GameSpec) applyDefaults() {
	if s.FirstLevel == "" {
		s.FirstLevel = "level_0"
	}
	if s.Gravity <= 0 {
		s.Gravity = common.GravityMagnitude
	}
	if s.MoveSpeed <= 0 {
		s.MoveSpeed = common.BaseSpeed
	}
	if s.SecurityDistance <= 0 {
		s.SecurityDistance = common.SecurityDistance
	}
	if s.CellSize <= 0 {
		s.CellSize = common.DefaultCellSize
	}
	if s.ScreenWidth <= 0 {
		s.ScreenWidth = 500
	}
	if s.ScreenHeight <= 0 {
		s.ScreenHeight = 300
	}
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
