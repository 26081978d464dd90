package component

// LevelBounds stores the world-space size of the current level. The bottom-left
// corner is the world origin.
type LevelBounds struct {
	Width  float64
	Height float64
}

var LevelBoundsComponent = NewComponent[LevelBounds]()

// Level describes the loaded level. Exactly one entity carries it.
type Level struct {
	Name     string
	Next     string
	CellSize float64
}

var LevelComponent = NewComponent[Level]()

// LevelMember ties an entity to the level entity that spawned it, so unloading the
// level can find everything it owns.
type LevelMember struct {
	Level uint64
}

var LevelMemberComponent = NewComponent[LevelMember]()
