package input

import (
	"testing"

	"github.com/milk9111/gravitylegacy/ecs/component"
	"github.com/stretchr/testify/assert"
)

func TestDefaultBindingsCoverEveryAction(t *testing.T) {
	bindings := DefaultBindings()
	for _, a := range []component.Action{
		component.ActionMoveLeft,
		component.ActionMoveRight,
		component.ActionRotateClockwise,
		component.ActionRotateCounterClockwise,
		component.ActionSkipLevel,
	} {
		b, ok := bindings[a]
		if assert.True(t, ok, "action %d", a) {
			assert.NotEmpty(t, b.Keys, "action %d", a)
		}
	}
}

func TestDefaultBindingsDoNotOverlap(t *testing.T) {
	seen := map[string]component.Action{}
	for a, b := range DefaultBindings() {
		for _, k := range b.Keys {
			name := k.String()
			prev, dup := seen[name]
			assert.False(t, dup, "key %s bound to %d and %d", name, prev, a)
			seen[name] = a
		}
	}
}

func TestNewEbitenDefaults(t *testing.T) {
	in := NewEbiten(nil)
	assert.Len(t, in.bindings, len(DefaultBindings()))
}
