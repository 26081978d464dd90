package system

import (
	"github.com/milk9111/gravitylegacy/ecs"
	"github.com/milk9111/gravitylegacy/ecs/component"
	"github.com/milk9111/gravitylegacy/gravity"
	"github.com/milk9111/gravitylegacy/logger"
	"github.com/sirupsen/logrus"
)

// GravityRotationSystem turns the world a quarter turn per rotate command and
// starts the matching camera turn. Commands are dropped while a turn is still
// animating.
type GravityRotationSystem struct {
	orientation *gravity.Orientation
	gravity     GravityWriter
}

func NewGravityRotationSystem(o *gravity.Orientation, gw GravityWriter) *GravityRotationSystem {
	return &GravityRotationSystem{orientation: o, gravity: gw}
}

func (s *GravityRotationSystem) Update(w *ecs.World) {
	if w == nil || s.orientation == nil {
		return
	}

	player, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	input, ok := ecs.Get(w, player, component.InputComponent.Kind())
	if !ok {
		return
	}

	var dir gravity.Direction
	switch {
	case input.RotateCW:
		dir = gravity.Clockwise
	case input.RotateCCW:
		dir = gravity.CounterClockwise
	default:
		return
	}

	cam := activeCamera(w)
	if cam.Turning() {
		logger.Log.Debug("rotation ignored while camera is turning")
		return
	}

	s.orientation.Rotate(dir)
	if cam != nil {
		cam.TargetRotation += gravity.TurnAngle(dir)
	}
	if s.gravity != nil {
		s.gravity.SetGravity(s.orientation.Gravity())
	}

	logger.Log.WithFields(logrus.Fields{
		"direction": dir.String(),
		"step":      s.orientation.Step(),
		"gravity":   s.orientation.Gravity(),
	}).Info("world rotated")
}

func activeCamera(w *ecs.World) *component.Camera {
	e, ok := w.First(component.CameraComponent.Kind())
	if !ok {
		return nil
	}
	cam, _ := ecs.Get(w, e, component.CameraComponent.Kind())
	return cam
}

// ResetOrientation restores initial gravity and snaps the camera back upright.
func ResetOrientation(w *ecs.World, o *gravity.Orientation, gw GravityWriter) {
	if o != nil {
		o.Reset()
		if gw != nil {
			gw.SetGravity(o.Gravity())
		}
	}
	if w == nil {
		return
	}
	if cam := activeCamera(w); cam != nil {
		cam.Rotation = 0
		cam.TargetRotation = 0
	}
}
