package component

// LevelChangeRequest is a one-shot request emitted by gameplay systems to ask the
// outer game loop to load a different level. Systems only emit data; the Game loop
// owns IO and world reinitialization.
type LevelChangeRequest struct {
	TargetLevel string
	Reason      string
}

var LevelChangeRequestComponent = NewComponent[LevelChangeRequest]()
