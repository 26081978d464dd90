package component

// Action is a logical input independent of the device that produced it.
type Action int

const (
	ActionMoveLeft Action = iota
	ActionMoveRight
	ActionRotateClockwise
	ActionRotateCounterClockwise
	ActionSkipLevel
)

// Input stores per-frame input state for an entity. Movement flags read as held;
// rotation and skip are edge triggered.
type Input struct {
	Left      bool
	Right     bool
	RotateCW  bool
	RotateCCW bool
	SkipLevel bool
}

// Axis returns +1, -1 or 0 for the held movement keys.
func (in *Input) Axis() float64 {
	if in == nil {
		return 0
	}
	axis := 0.0
	if in.Right {
		axis++
	}
	if in.Left {
		axis--
	}
	return axis
}

var InputComponent = NewComponent[Input]()
