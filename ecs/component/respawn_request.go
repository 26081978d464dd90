package component

// RespawnRequest marks a player that should be returned to its spawn point. The
// respawn system runs after physics and clears it.
type RespawnRequest struct {
	Reason string
}

var RespawnRequestComponent = NewComponent[RespawnRequest]()

// SpawnPoint is where the player starts the level and returns after dying.
type SpawnPoint struct {
	X float64
	Y float64
}

var SpawnPointComponent = NewComponent[SpawnPoint]()
