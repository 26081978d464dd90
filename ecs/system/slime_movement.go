package system

import (
	"github.com/milk9111/gravitylegacy/ecs"
	"github.com/milk9111/gravitylegacy/ecs/component"
	"github.com/milk9111/gravitylegacy/gravity"
)

// settleSpeed is the speed below which a walking slime counts as stopped.
const settleSpeed = 1e-3

// SlimeMovementSystem drives the slime along the axis that reads as horizontal on
// screen. The velocity component along gravity is left to the physics step.
type SlimeMovementSystem struct {
	orientation *gravity.Orientation
}

func NewSlimeMovementSystem(o *gravity.Orientation) *SlimeMovementSystem {
	return &SlimeMovementSystem{orientation: o}
}

func (s *SlimeMovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	entities := w.Query(
		component.SlimeComponent.Kind(),
		component.InputComponent.Kind(),
		component.PhysicsBodyComponent.Kind(),
	)
	for _, e := range entities {
		slime, ok := ecs.Get(w, e, component.SlimeComponent.Kind())
		if !ok {
			continue
		}
		input, ok := ecs.Get(w, e, component.InputComponent.Kind())
		if !ok {
			continue
		}
		bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if !ok || bodyComp.Body == nil {
			continue
		}
		if slime.IsJumping {
			continue
		}

		down := s.orientation.Down()
		tangent := s.orientation.Tangent()

		vel := bodyComp.Body.Velocity()
		fall := down.Mult(vel.Dot(down))
		vel = fall.Add(tangent.Mult(input.Axis() * slime.MoveSpeed))
		bodyComp.Body.SetVelocityVector(vel)

		pressing := input.Left || input.Right
		switch {
		case pressing && !slime.IsWalking:
			slime.IsWalking = true
			slime.NeedsResprite = true
		case slime.IsWalking && vel.Length() < settleSpeed:
			slime.IsWalking = false
			slime.NeedsResprite = true
		}
	}
}
