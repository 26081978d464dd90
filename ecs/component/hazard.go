package component

// Hazard kills the player on contact.
type Hazard struct {
	Kind string
}

var HazardComponent = NewComponent[Hazard]()

// Goal finishes the level on contact. An empty Next falls back to the level's own
// successor.
type Goal struct {
	Next string
}

var GoalComponent = NewComponent[Goal]()
