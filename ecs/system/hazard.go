package system

import (
	"github.com/milk9111/gravitylegacy/ecs"
	"github.com/milk9111/gravitylegacy/ecs/component"
	"github.com/milk9111/gravitylegacy/logger"
	"github.com/sirupsen/logrus"
)

// HazardSystem turns player contacts with hazards into respawn requests.
type HazardSystem struct{}

func NewHazardSystem() *HazardSystem { return &HazardSystem{} }

func (s *HazardSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for _, evt := range w.Events().Collisions() {
		if evt.Kind != ecs.CollisionBegin {
			continue
		}
		if !ecs.Has(w, evt.A, component.PlayerTagComponent.Kind()) {
			continue
		}
		hazard, ok := ecs.Get(w, evt.B, component.HazardComponent.Kind())
		if !ok {
			continue
		}
		if ecs.Has(w, evt.A, component.RespawnRequestComponent.Kind()) {
			continue
		}
		if err := ecs.Add(w, evt.A, component.RespawnRequestComponent.Kind(), &component.RespawnRequest{Reason: hazard.Kind}); err != nil {
			panic("hazard system: add respawn request: " + err.Error())
		}
		logger.Log.WithFields(logrus.Fields{
			"player": evt.A.String(),
			"hazard": hazard.Kind,
		}).Info("player hit hazard")
	}
}
