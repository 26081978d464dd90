package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/gravitylegacy/ecs"
	"github.com/milk9111/gravitylegacy/ecs/component"
	"github.com/milk9111/gravitylegacy/geom"
	"github.com/milk9111/gravitylegacy/gravity"
	"github.com/milk9111/gravitylegacy/logger"
)

type RespawnSystem struct {
	orientation *gravity.Orientation
	gravity     GravityWriter
}

func NewRespawnSystem(o *gravity.Orientation, gw GravityWriter) *RespawnSystem {
	return &RespawnSystem{orientation: o, gravity: gw}
}

// Update performs pending respawn requests for players: the player returns to its
// spawn point in the initial pose and the world orientation is reset. It runs after
// the PhysicsSystem so the teleport is not undone by this tick's step.
func (s *RespawnSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.RespawnRequestComponent.Kind(), func(e ecs.Entity, req *component.RespawnRequest) {
		defer ecs.Remove(w, e, component.RespawnRequestComponent.Kind())

		if !ecs.Has(w, e, component.PlayerTagComponent.Kind()) {
			return
		}

		if spawn, ok := ecs.Get(w, e, component.SpawnPointComponent.Kind()); ok {
			PlacePlayer(w, e, spawn.X, spawn.Y)
		}
		ResetOrientation(w, s.orientation, s.gravity)

		logger.Log.WithField("reason", req.Reason).Info("player respawned")
	})
}

// PlacePlayer moves the player to (x, y) upright and at rest, with fresh side state.
func PlacePlayer(w *ecs.World, e ecs.Entity, x, y float64) {
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		t.X = x
		t.Y = y
		t.Rotation = 0
	}
	if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && body.Body != nil {
		body.Body.SetPosition(cp.Vector{X: x, Y: y})
		body.Body.SetAngle(0)
		body.Body.SetVelocityVector(cp.Vector{})
		body.Body.SetAngularVelocity(0)
	}
	if slime, ok := ecs.Get(w, e, component.SlimeComponent.Kind()); ok {
		wasWalking := slime.IsWalking
		slime.CurrentSide = geom.SideBottom
		slime.PreviousSide = geom.SideBottom
		slime.PenetrationDepth = 0
		slime.IsJumping = false
		slime.IsWalking = false
		slime.StallFrames = 0
		if wasWalking {
			slime.NeedsResprite = true
		}
	}
}
