package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/gravitylegacy/common"
	"github.com/milk9111/gravitylegacy/ecs"
	"github.com/milk9111/gravitylegacy/ecs/component"
	"github.com/milk9111/gravitylegacy/geom"
	"github.com/milk9111/gravitylegacy/logger"
	"github.com/sirupsen/logrus"
)

// SlimeRebaseSystem turns and shifts the slime once its contact side changed, so the
// sprite's feet sit on the new side.
type SlimeRebaseSystem struct{}

func NewSlimeRebaseSystem() *SlimeRebaseSystem { return &SlimeRebaseSystem{} }

func (s *SlimeRebaseSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.SlimeComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, slime *component.Slime, t *component.Transform) {
		if slime.CurrentSide == slime.PreviousSide {
			return
		}
		if !slime.CurrentSide.Directional() || !slime.PreviousSide.Directional() {
			slime.PreviousSide = slime.CurrentSide
			return
		}

		width, height := spriteSize(w, e)
		angle, dx, dy := Rebase(slime.PreviousSide, slime.CurrentSide, width, height, slime.PenetrationDepth, slime.SecurityDistance)

		t.X += dx
		t.Y += dy
		t.Rotation += angle

		if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && body.Body != nil {
			pos := body.Body.Position()
			body.Body.SetPosition(cp.Vector{X: pos.X + dx, Y: pos.Y + dy})
			body.Body.SetAngle(t.Rotation)
		}

		logger.Log.WithFields(logrus.Fields{
			"from":  slime.PreviousSide.String(),
			"to":    slime.CurrentSide.String(),
			"angle": angle,
			"dx":    dx,
			"dy":    dy,
		}).Debug("slime re-based")

		slime.PreviousSide = slime.CurrentSide
	})
}

func spriteSize(w *ecs.World, e ecs.Entity) (float64, float64) {
	sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
	if !ok {
		return 0, 0
	}
	scale := sprite.Scale
	if scale == 0 {
		scale = 1
	}
	return sprite.Width * scale, sprite.Height * scale
}

// Rebase returns the rotation and translation for a side change from old to next.
// Stepping back one ordinal turns -90°; every other change, opposite sides
// included, turns +90°.
func Rebase(old, next geom.Side, width, height, depth, security float64) (angle, dx, dy float64) {
	extent := (height-width)/2 + depth
	margin := (width-height)/2 + security

	backward := next == old.Prev()
	if backward {
		angle = -common.QuarterTurn
	} else {
		angle = common.QuarterTurn
	}

	switch old {
	case geom.SideLeft:
		dx = margin
		if backward {
			dy = -extent
		} else {
			dy = extent
		}
	case geom.SideRight:
		dx = -margin
		if backward {
			dy = extent
		} else {
			dy = -extent
		}
	case geom.SideTop:
		dy = -margin
		if backward {
			dx = -extent
		} else {
			dx = extent
		}
	case geom.SideBottom:
		dy = margin
		if backward {
			dx = extent
		} else {
			dx = -extent
		}
	}
	return angle, dx, dy
}
