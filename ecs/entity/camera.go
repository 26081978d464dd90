package entity

import (
	"fmt"

	"github.com/milk9111/gravitylegacy/ecs"
	"github.com/milk9111/gravitylegacy/prefabs"
)

// NewCamera spawns the camera. It is not a level member and survives level changes.
func NewCamera(w *ecs.World, game *prefabs.GameSpec) (ecs.Entity, error) {
	b, err := BuildBundle("camera", 0, 0, nil, game)
	if err != nil {
		return 0, fmt.Errorf("camera: %w", err)
	}
	return Spawn(w, b)
}

func NewCameraAt(w *ecs.World, x, y float64, game *prefabs.GameSpec) (ecs.Entity, error) {
	camera, err := NewCamera(w, game)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, camera, x, y, 0); err != nil {
		return 0, fmt.Errorf("camera: override transform: %w", err)
	}
	return camera, nil
}
