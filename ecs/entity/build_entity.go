package entity

import (
	"fmt"
	"sort"

	"github.com/milk9111/gravitylegacy/common"
	"github.com/milk9111/gravitylegacy/ecs"
	"github.com/milk9111/gravitylegacy/ecs/component"
	"github.com/milk9111/gravitylegacy/geom"
	"github.com/milk9111/gravitylegacy/prefabs"
)

type buildContext struct {
	PrefabPath string
	Game       *prefabs.GameSpec
}

type componentBuildFn func(b *Bundle, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":      addPlayerTag,
	"camera_tag":      addCameraTag,
	"pot_tag":         addPotTag,
	"key_tag":         addKeyTag,
	"solid_tag":       addSolidTag,
	"input":           addInput,
	"surface_contact": addSurfaceContact,
	"transform":       addTransform,
	"sprite":          addSprite,
	"render_layer":    addRenderLayer,
	"animation":       addAnimation,
	"camera":          addCamera,
	"slime":           addSlime,
	"collision_layer": addCollisionLayer,
	"physics_body":    addPhysicsBody,
	"hazard":          addHazard,
	"goal":            addGoal,
}

// Later builders read what earlier ones produced: the slime and the physics body
// are sized from the sprite.
var componentBuildOrder = []string{
	"player_tag",
	"camera_tag",
	"pot_tag",
	"key_tag",
	"solid_tag",
	"input",
	"surface_contact",
	"transform",
	"sprite",
	"render_layer",
	"animation",
	"camera",
	"slime",
	"collision_layer",
	"physics_body",
	"hazard",
	"goal",
}

// LoadBundle decodes a prefab into a Bundle. game supplies the shared tunables;
// nil falls back to the built-in defaults.
func LoadBundle(prefabPath string, game *prefabs.GameSpec) (Bundle, error) {
	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return Bundle{}, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return Bundle{}, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	b := Bundle{Name: spec.Name}
	if b.Name == "" {
		b.Name = prefabPath
	}
	ctx := &buildContext{PrefabPath: prefabPath, Game: game}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](&b, raw, ctx); err != nil {
			return Bundle{}, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		return Bundle{}, fmt.Errorf("build entity: %q: no builder for components %v", prefabPath, names)
	}

	return b, nil
}

func BuildEntity(w *ecs.World, prefabPath string, game *prefabs.GameSpec) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}
	b, err := LoadBundle(prefabPath, game)
	if err != nil {
		return 0, err
	}
	return Spawn(w, b)
}

func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y, rotation float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{ScaleX: 1, ScaleY: 1}
	}
	t.X = x
	t.Y = y
	t.Rotation = rotation
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addPlayerTag(b *Bundle, _ any, _ *buildContext) error {
	b.PlayerTag = &component.PlayerTag{}
	return nil
}

func addCameraTag(b *Bundle, _ any, _ *buildContext) error {
	b.CameraTag = &component.CameraTag{}
	return nil
}

func addPotTag(b *Bundle, _ any, _ *buildContext) error {
	b.PotTag = &component.PotTag{}
	return nil
}

func addKeyTag(b *Bundle, _ any, _ *buildContext) error {
	b.KeyTag = &component.KeyTag{}
	return nil
}

func addSolidTag(b *Bundle, _ any, _ *buildContext) error {
	b.SolidTag = &component.SolidTag{}
	return nil
}

func addInput(b *Bundle, _ any, _ *buildContext) error {
	b.Input = &component.Input{}
	return nil
}

func addSurfaceContact(b *Bundle, _ any, _ *buildContext) error {
	b.SurfaceContact = &component.SurfaceContact{}
	return nil
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(b *Bundle, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	if spec.ScaleX == 0 {
		spec.ScaleX = 1
	}
	if spec.ScaleY == 0 {
		spec.ScaleY = 1
	}
	b.Transform = &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		ScaleX:   spec.ScaleX,
		ScaleY:   spec.ScaleY,
		Rotation: spec.Rotation,
	}
	return nil
}

type spriteSpec = prefabs.SpriteComponentSpec

func addSprite(b *Bundle, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spriteSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}
	if spec.Scale == 0 {
		spec.Scale = 1
	}
	sprite := &component.Sprite{
		Sheet:  spec.Sheet,
		Width:  spec.Width,
		Height: spec.Height,
		Scale:  spec.Scale,
	}
	if spec.Color != nil {
		sprite.Color = spec.Color.Color
	}
	b.Sprite = sprite
	return nil
}

type renderLayerSpec = prefabs.RenderLayerComponentSpec

func addRenderLayer(b *Bundle, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[renderLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode render layer spec: %w", err)
	}
	b.RenderLayer = &component.RenderLayer{Index: spec.Index}
	return nil
}

type animationSpec = prefabs.AnimationComponentSpec

func addAnimation(b *Bundle, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[animationSpec](raw)
	if err != nil {
		return fmt.Errorf("decode animation spec: %w", err)
	}
	if len(spec.Defs) == 0 {
		return fmt.Errorf("animation has no defs")
	}

	defs := make(map[string]component.AnimationDef, len(spec.Defs))
	for name, def := range spec.Defs {
		if def.FrameCount <= 0 {
			return fmt.Errorf("animation %q: frame_count must be positive", name)
		}
		defs[name] = component.AnimationDef{
			Name:         name,
			Sheet:        def.Sheet,
			FrameCount:   def.FrameCount,
			FrameW:       def.FrameW,
			FrameH:       def.FrameH,
			FrameSeconds: def.FrameSeconds,
			Loop:         def.Loop,
		}
	}
	if _, ok := defs[spec.Current]; !ok {
		return fmt.Errorf("animation: unknown current clip %q", spec.Current)
	}

	playing := true
	if spec.Playing != nil {
		playing = *spec.Playing
	}

	b.Animation = &component.Animation{
		Defs:    defs,
		Current: spec.Current,
		Playing: playing,
	}
	return nil
}

type cameraSpec = prefabs.CameraComponentSpec

func addCamera(b *Bundle, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[cameraSpec](raw)
	if err != nil {
		return fmt.Errorf("decode camera spec: %w", err)
	}
	if spec.Zoom <= 0 {
		spec.Zoom = 1
	}
	if spec.Smoothness <= 0 {
		spec.Smoothness = 0.15
	}
	if spec.RotationFrames <= 0 && ctx.Game != nil {
		spec.RotationFrames = ctx.Game.RotationFrames
	}
	b.Camera = &component.Camera{
		Zoom:           spec.Zoom,
		Smoothness:     spec.Smoothness,
		RotationFrames: spec.RotationFrames,
	}
	return nil
}

type slimeSpec = prefabs.SlimeComponentSpec

func addSlime(b *Bundle, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[slimeSpec](raw)
	if err != nil {
		return fmt.Errorf("decode slime spec: %w", err)
	}

	speed, security := common.BaseSpeed, common.SecurityDistance
	var airborne uint8
	if ctx.Game != nil {
		speed = ctx.Game.MoveSpeed
		security = ctx.Game.SecurityDistance
		airborne = ctx.Game.AirborneFrames
	}
	if spec.MoveSpeed > 0 {
		speed = spec.MoveSpeed
	}
	if spec.SecurityDistance > 0 {
		security = spec.SecurityDistance
	}
	if spec.AirborneFrames > 0 {
		airborne = spec.AirborneFrames
	}

	extent := 0.0
	if b.Sprite != nil {
		extent = b.Sprite.Width * b.Sprite.Scale
	}

	b.Slime = &component.Slime{
		CurrentSide:      geom.SideBottom,
		PreviousSide:     geom.SideBottom,
		TangentialExtent: extent,
		MoveSpeed:        speed,
		SecurityDistance: security,
		AirborneFrames:   airborne,
	}
	return nil
}

type collisionLayerSpec = prefabs.CollisionLayerComponentSpec

func addCollisionLayer(b *Bundle, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[collisionLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode collision layer spec: %w", err)
	}
	cat := spec.Category
	mask := spec.Mask
	if cat == 0 {
		cat = component.CategoryWorld
	}
	if mask == 0 {
		mask = ^uint32(0)
	}
	b.CollisionLayer = &component.CollisionLayer{Category: cat, Mask: mask}
	return nil
}

type physicsBodySpec = prefabs.PhysicsBodyComponentSpec

func addPhysicsBody(b *Bundle, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[physicsBodySpec](raw)
	if err != nil {
		return fmt.Errorf("decode physics body spec: %w", err)
	}

	width := spec.Width
	height := spec.Height
	if spec.ScaleWithSprite {
		if b.Sprite == nil {
			return fmt.Errorf("scale_with_sprite requires a sprite")
		}
		width = b.Sprite.Width * b.Sprite.Scale
		height = b.Sprite.Height * b.Sprite.Scale
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("physics body needs a positive size, got %vx%v", width, height)
	}
	if !spec.Static && spec.Mass == 0 {
		spec.Mass = 1
	}

	b.PhysicsBody = &component.PhysicsBody{
		Width:         width,
		Height:        height,
		Mass:          spec.Mass,
		Friction:      spec.Friction,
		Elasticity:    spec.Elasticity,
		Static:        spec.Static,
		Sensor:        spec.Sensor,
		FixedRotation: spec.FixedRotation,
	}
	return nil
}

type hazardSpec = prefabs.HazardComponentSpec

func addHazard(b *Bundle, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[hazardSpec](raw)
	if err != nil {
		return fmt.Errorf("decode hazard spec: %w", err)
	}
	if spec.Kind == "" {
		spec.Kind = "hazard"
	}
	b.Hazard = &component.Hazard{Kind: spec.Kind}
	return nil
}

type goalSpec = prefabs.GoalComponentSpec

func addGoal(b *Bundle, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[goalSpec](raw)
	if err != nil {
		return fmt.Errorf("decode goal spec: %w", err)
	}
	b.Goal = &component.Goal{Next: spec.Next}
	return nil
}
