package system

import (
	"math"

	"github.com/milk9111/gravitylegacy/ecs"
	"github.com/milk9111/gravitylegacy/ecs/component"
)

const (
	AnimIdle = "idle"
	AnimWalk = "walk"
)

// flipSpeed is the tangential speed needed before the facing changes.
const flipSpeed = 1.0

// SlimeSpriteSystem swaps between the idle and walk sheets when the movement
// controller asks for it and faces the sprite along its motion.
type SlimeSpriteSystem struct{}

func NewSlimeSpriteSystem() *SlimeSpriteSystem { return &SlimeSpriteSystem{} }

func (s *SlimeSpriteSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w, component.SlimeComponent.Kind(), component.SpriteComponent.Kind(), component.AnimationComponent.Kind(), func(e ecs.Entity, slime *component.Slime, sprite *component.Sprite, anim *component.Animation) {
		if slime.NeedsResprite {
			name := AnimIdle
			if slime.IsWalking {
				name = AnimWalk
			}
			if anim.Play(name) {
				def := anim.Defs[name]
				sprite.Sheet = def.Sheet
				sprite.Width = def.FrameW
				sprite.Height = def.FrameH
				sprite.Frame = 0
			}
			slime.NeedsResprite = false
		}

		if !slime.IsWalking {
			return
		}
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			return
		}
		body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if !ok || body.Body == nil {
			return
		}
		// the sprite's own +X axis after re-basing
		vel := body.Body.Velocity()
		along := vel.X*math.Cos(t.Rotation) + vel.Y*math.Sin(t.Rotation)
		switch {
		case along > flipSpeed:
			sprite.FlipX = false
		case along < -flipSpeed:
			sprite.FlipX = true
		}
	})
}
