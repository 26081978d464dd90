package system

import (
	"github.com/milk9111/gravitylegacy/common"
	"github.com/milk9111/gravitylegacy/ecs"
	"github.com/milk9111/gravitylegacy/ecs/component"
)

type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.AnimationComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, anim *component.Animation, sprite *component.Sprite) {
		if !anim.Playing {
			return
		}

		def, ok := anim.Defs[anim.Current]
		if !ok || def.FrameCount <= 0 {
			return
		}

		if def.FrameSeconds > 0 {
			anim.Timer += common.StepSeconds
			for anim.Timer >= def.FrameSeconds {
				anim.Timer -= def.FrameSeconds
				anim.Frame++
				if anim.Frame >= def.FrameCount {
					if def.Loop {
						anim.Frame = 0
					} else {
						anim.Frame = def.FrameCount - 1
						anim.Playing = false
						break
					}
				}
			}
		}

		sprite.Sheet = def.Sheet
		sprite.Frame = anim.Frame
	})
}
