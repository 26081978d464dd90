// Package input maps keyboard and gamepad state to logical actions.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/gravitylegacy/ecs/component"
)

const stickDeadzone = 0.3

// Binding lists the keys and standard gamepad buttons that trigger an action.
type Binding struct {
	Keys    []ebiten.Key
	Buttons []ebiten.StandardGamepadButton
}

// DefaultBindings moves with arrows or A/D and turns the world with E (clockwise)
// or Q (counter-clockwise). L skips to the next level.
func DefaultBindings() map[component.Action]Binding {
	return map[component.Action]Binding{
		component.ActionMoveLeft: {
			Keys:    []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
			Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
		},
		component.ActionMoveRight: {
			Keys:    []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
			Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
		},
		component.ActionRotateClockwise: {
			Keys:    []ebiten.Key{ebiten.KeyE, ebiten.KeyArrowUp},
			Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopRight},
		},
		component.ActionRotateCounterClockwise: {
			Keys:    []ebiten.Key{ebiten.KeyQ, ebiten.KeyArrowDown},
			Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopLeft},
		},
		component.ActionSkipLevel: {
			Keys: []ebiten.Key{ebiten.KeyL},
		},
	}
}

// Ebiten reads device state from ebiten. It satisfies system.InputSource.
type Ebiten struct {
	bindings map[component.Action]Binding
}

func NewEbiten(bindings map[component.Action]Binding) *Ebiten {
	if bindings == nil {
		bindings = DefaultBindings()
	}
	return &Ebiten{bindings: bindings}
}

func (in *Ebiten) Held(a component.Action) bool {
	b := in.bindings[a]
	for _, k := range b.Keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, btn := range b.Buttons {
			if ebiten.IsStandardGamepadButtonPressed(id, btn) {
				return true
			}
		}
		if stickHeld(id, a) {
			return true
		}
	}
	return false
}

func (in *Ebiten) JustPressed(a component.Action) bool {
	b := in.bindings[a]
	for _, k := range b.Keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, btn := range b.Buttons {
			if inpututil.IsStandardGamepadButtonJustPressed(id, btn) {
				return true
			}
		}
	}
	return false
}

func stickHeld(id ebiten.GamepadID, a component.Action) bool {
	x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	switch a {
	case component.ActionMoveLeft:
		return x < -stickDeadzone
	case component.ActionMoveRight:
		return x > stickDeadzone
	}
	return false
}
