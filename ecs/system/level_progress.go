package system

import (
	"github.com/milk9111/gravitylegacy/ecs"
	"github.com/milk9111/gravitylegacy/ecs/component"
	"github.com/milk9111/gravitylegacy/logger"
	"github.com/sirupsen/logrus"
)

// LevelProgressSystem requests the next level when the player reaches a goal or
// presses the skip key. The Game loop performs the load.
type LevelProgressSystem struct{}

func NewLevelProgressSystem() *LevelProgressSystem { return &LevelProgressSystem{} }

func (s *LevelProgressSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	if _, pending := w.First(component.LevelChangeRequestComponent.Kind()); pending {
		return
	}

	next := ""
	if e, ok := w.First(component.LevelComponent.Kind()); ok {
		if level, ok := ecs.Get(w, e, component.LevelComponent.Kind()); ok {
			next = level.Next
		}
	}

	for _, evt := range w.Events().Collisions() {
		if evt.Kind != ecs.CollisionBegin || !ecs.Has(w, evt.A, component.PlayerTagComponent.Kind()) {
			continue
		}
		goal, ok := ecs.Get(w, evt.B, component.GoalComponent.Kind())
		if !ok {
			continue
		}
		target := goal.Next
		if target == "" {
			target = next
		}
		requestLevel(w, target, "goal")
		return
	}

	if player, ok := w.First(component.PlayerTagComponent.Kind()); ok {
		if input, ok := ecs.Get(w, player, component.InputComponent.Kind()); ok && input.SkipLevel {
			requestLevel(w, next, "skip")
		}
	}
}

func requestLevel(w *ecs.World, target, reason string) {
	if target == "" {
		logger.Log.WithField("reason", reason).Warn("no next level to load")
		return
	}
	reqEnt := w.CreateEntity()
	if err := ecs.Add(w, reqEnt, component.LevelChangeRequestComponent.Kind(), &component.LevelChangeRequest{TargetLevel: target, Reason: reason}); err != nil {
		panic("level progress system: add level change request: " + err.Error())
	}
	logger.Log.WithFields(logrus.Fields{
		"target": target,
		"reason": reason,
	}).Info("level change requested")
}
