package system

import (
	"github.com/milk9111/gravitylegacy/ecs"
	"github.com/milk9111/gravitylegacy/ecs/component"
)

// InputSource exposes device state per logical action.
type InputSource interface {
	Held(a component.Action) bool
	JustPressed(a component.Action) bool
}

type InputSystem struct {
	source InputSource
}

func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil || i.source == nil {
		return
	}

	left := i.source.Held(component.ActionMoveLeft)
	right := i.source.Held(component.ActionMoveRight)
	cw := i.source.JustPressed(component.ActionRotateClockwise)
	ccw := i.source.JustPressed(component.ActionRotateCounterClockwise)
	skip := i.source.JustPressed(component.ActionSkipLevel)

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		input.Left = left
		input.Right = right
		input.RotateCW = cw
		input.RotateCCW = ccw
		input.SkipLevel = skip
	})
}
