package prefabs

import "gopkg.in/yaml.v3"

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

type SpriteComponentSpec struct {
	Sheet  string     `yaml:"sheet"`
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
	Scale  float64    `yaml:"scale"`
	Color  *YAMLColor `yaml:"color"`
}

type RenderLayerComponentSpec struct {
	Index int `yaml:"index"`
}

type CameraComponentSpec struct {
	Zoom           float64 `yaml:"zoom"`
	Smoothness     float64 `yaml:"smoothness"`
	RotationFrames int     `yaml:"rotation_frames"`
}

type AnimationDefComponentSpec struct {
	Sheet        string  `yaml:"sheet"`
	FrameCount   int     `yaml:"frame_count"`
	FrameW       float64 `yaml:"frame_w"`
	FrameH       float64 `yaml:"frame_h"`
	FrameSeconds float64 `yaml:"frame_seconds"`
	Loop         bool    `yaml:"loop"`
}

type AnimationComponentSpec struct {
	Defs    map[string]AnimationDefComponentSpec `yaml:"defs"`
	Current string                               `yaml:"current"`
	Playing *bool                                `yaml:"playing"`
}

type PhysicsBodyComponentSpec struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Mass          float64 `yaml:"mass"`
	Friction      float64 `yaml:"friction"`
	Elasticity    float64 `yaml:"elasticity"`
	Static        bool    `yaml:"static"`
	Sensor        bool    `yaml:"sensor"`
	FixedRotation bool    `yaml:"fixed_rotation"`
	// ScaleWithSprite sizes the collider from the sprite's scaled frame.
	ScaleWithSprite bool `yaml:"scale_with_sprite"`
}

type CollisionLayerComponentSpec struct {
	Category uint32 `yaml:"category"`
	Mask     uint32 `yaml:"mask"`
}

type SlimeComponentSpec struct {
	MoveSpeed        float64 `yaml:"move_speed"`
	SecurityDistance float64 `yaml:"security_distance"`
	AirborneFrames   uint8   `yaml:"airborne_frames"`
}

type HazardComponentSpec struct {
	Kind string `yaml:"kind"`
}

type GoalComponentSpec struct {
	Next string `yaml:"next"`
}
