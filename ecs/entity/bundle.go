package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/milk9111/gravitylegacy/ecs"
	"github.com/milk9111/gravitylegacy/ecs/component"
	"github.com/milk9111/gravitylegacy/prefabs"
)

var ErrUnknownArchetype = errors.New("entity: unknown archetype")

// Bundle is the component set of one archetype. Nil members are not inserted.
type Bundle struct {
	Name string

	PlayerTag *component.PlayerTag
	CameraTag *component.CameraTag
	PotTag    *component.PotTag
	KeyTag    *component.KeyTag
	SolidTag  *component.SolidTag

	Input          *component.Input
	SurfaceContact *component.SurfaceContact
	Transform      *component.Transform
	Sprite         *component.Sprite
	RenderLayer    *component.RenderLayer
	Animation      *component.Animation
	Camera         *component.Camera
	Slime          *component.Slime
	SpawnPoint     *component.SpawnPoint
	CollisionLayer *component.CollisionLayer
	PhysicsBody    *component.PhysicsBody
	Hazard         *component.Hazard
	Goal           *component.Goal
	LevelMember    *component.LevelMember
}

// archetypes maps level identifiers to prefab files.
var archetypes = map[string]string{
	"player": "slime.yaml",
	"slime":  "slime.yaml",
	"camera": "camera.yaml",
	"pot":    "pot.yaml",
	"key":    "key.yaml",
	"spike":  "spike.yaml",
	"exit":   "exit.yaml",
}

// BuildBundle assembles the components for a level identifier placed at x, y.
// props carries per-placement overrides from the level file.
func BuildBundle(identifier string, x, y float64, props map[string]any, game *prefabs.GameSpec) (Bundle, error) {
	id := strings.ToLower(strings.TrimSpace(identifier))
	prefab, ok := archetypes[id]
	if !ok {
		return Bundle{}, fmt.Errorf("%w: %q", ErrUnknownArchetype, identifier)
	}

	b, err := LoadBundle(prefab, game)
	if err != nil {
		return Bundle{}, err
	}

	if b.Transform == nil {
		b.Transform = &component.Transform{ScaleX: 1, ScaleY: 1}
	}
	b.Transform.X = x
	b.Transform.Y = y

	switch id {
	case "player", "slime":
		b.SpawnPoint = &component.SpawnPoint{X: x, Y: y}
	case "spike":
		if kind, ok := props["kind"].(string); ok && kind != "" && b.Hazard != nil {
			b.Hazard.Kind = kind
		}
	case "exit":
		if next, ok := props["next"].(string); ok && b.Goal != nil {
			b.Goal.Next = next
		}
	}

	return b, nil
}

// Spawn creates an entity holding every non-nil member of b.
func Spawn(w *ecs.World, b Bundle) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("spawn %s: world is nil", b.Name)
	}
	e := ecs.CreateEntity(w)
	if err := b.Insert(w, e); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("spawn %s: %w", b.Name, err)
	}
	return e, nil
}

// Insert adds the bundle's components to an existing entity.
func (b Bundle) Insert(w *ecs.World, e ecs.Entity) error {
	steps := []func() error{
		func() error { return addIf(w, e, component.PlayerTagComponent, b.PlayerTag) },
		func() error { return addIf(w, e, component.CameraTagComponent, b.CameraTag) },
		func() error { return addIf(w, e, component.PotTagComponent, b.PotTag) },
		func() error { return addIf(w, e, component.KeyTagComponent, b.KeyTag) },
		func() error { return addIf(w, e, component.SolidTagComponent, b.SolidTag) },
		func() error { return addIf(w, e, component.InputComponent, b.Input) },
		func() error { return addIf(w, e, component.SurfaceContactComponent, b.SurfaceContact) },
		func() error { return addIf(w, e, component.TransformComponent, b.Transform) },
		func() error { return addIf(w, e, component.SpriteComponent, b.Sprite) },
		func() error { return addIf(w, e, component.RenderLayerComponent, b.RenderLayer) },
		func() error { return addIf(w, e, component.AnimationComponent, b.Animation) },
		func() error { return addIf(w, e, component.CameraComponent, b.Camera) },
		func() error { return addIf(w, e, component.SlimeComponent, b.Slime) },
		func() error { return addIf(w, e, component.SpawnPointComponent, b.SpawnPoint) },
		func() error { return addIf(w, e, component.CollisionLayerComponent, b.CollisionLayer) },
		func() error { return addIf(w, e, component.PhysicsBodyComponent, b.PhysicsBody) },
		func() error { return addIf(w, e, component.HazardComponent, b.Hazard) },
		func() error { return addIf(w, e, component.GoalComponent, b.Goal) },
		func() error { return addIf(w, e, component.LevelMemberComponent, b.LevelMember) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

func addIf[T any](w *ecs.World, e ecs.Entity, handle component.ComponentHandle[T], v *T) error {
	if v == nil {
		return nil
	}
	return ecs.Add(w, e, handle.Kind(), v)
}
