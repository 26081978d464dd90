package system

import (
	"github.com/milk9111/gravitylegacy/common"
	"github.com/milk9111/gravitylegacy/ecs"
	"github.com/milk9111/gravitylegacy/ecs/component"
)

type CameraSystem struct {
	camEntity    ecs.Entity
	targetEntity ecs.Entity
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

// Update eases the camera toward the player and turns it toward its target angle.
func (cs *CameraSystem) Update(w *ecs.World) {
	if !w.IsAlive(cs.camEntity) {
		cs.camEntity, _ = w.First(component.CameraComponent.Kind())
	}
	if !w.IsAlive(cs.targetEntity) {
		cs.targetEntity, _ = w.First(component.PlayerTagComponent.Kind())
	}

	camComp, ok := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}
	if camComp.RotationFrames > 0 {
		step := common.QuarterTurn / float64(camComp.RotationFrames)
		camComp.Rotation = common.Approach(camComp.Rotation, camComp.TargetRotation, step)
	} else {
		camComp.Rotation = camComp.TargetRotation
	}

	camTransform, ok := ecs.Get(w, cs.camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}
	targetTransform, ok := ecs.Get(w, cs.targetEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}

	smooth := camComp.Smoothness
	if smooth <= 0 || smooth > 1 {
		smooth = 1
	}
	camTransform.X = common.Lerp(camTransform.X, targetTransform.X, smooth)
	camTransform.Y = common.Lerp(camTransform.Y, targetTransform.Y, smooth)
}

// Snap puts the camera on the player immediately.
func (cs *CameraSystem) Snap(w *ecs.World) {
	cam, ok := w.First(component.CameraComponent.Kind())
	if !ok {
		return
	}
	player, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	ct, okC := ecs.Get(w, cam, component.TransformComponent.Kind())
	pt, okP := ecs.Get(w, player, component.TransformComponent.Kind())
	if okC && okP {
		ct.X = pt.X
		ct.Y = pt.Y
	}
	cs.camEntity = cam
	cs.targetEntity = player
}
