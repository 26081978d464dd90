package entity

import (
	"github.com/milk9111/gravitylegacy/ecs"
	"github.com/milk9111/gravitylegacy/prefabs"
)

// NewPlayerAt spawns the slime with its spawn point at x, y.
func NewPlayerAt(w *ecs.World, x, y float64, game *prefabs.GameSpec) (ecs.Entity, error) {
	b, err := BuildBundle("player", x, y, nil, game)
	if err != nil {
		return 0, err
	}
	return Spawn(w, b)
}
