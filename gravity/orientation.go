package gravity

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/gravitylegacy/common"
)

// Direction is a quarter-turn command as seen on screen.
type Direction int

const (
	Clockwise Direction = iota
	CounterClockwise
)

func (d Direction) String() string {
	if d == Clockwise {
		return "clockwise"
	}
	return "counter-clockwise"
}

// downAxes lists the legal down axes in clockwise order: turning the world clockwise
// brings the right wall to the bottom of the screen.
var downAxes = [4]cp.Vector{
	{X: 0, Y: -1},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
}

// Orientation is the world's gravity state. The zero value is not usable; use New.
type Orientation struct {
	step      int
	magnitude float64
}

// New returns an orientation with gravity pulling down the -Y axis.
func New(magnitude float64) *Orientation {
	if magnitude <= 0 {
		magnitude = common.GravityMagnitude
	}
	return &Orientation{magnitude: magnitude}
}

// Rotate advances the state one quarter turn.
func (o *Orientation) Rotate(dir Direction) {
	if o == nil {
		return
	}
	if dir == Clockwise {
		o.step = common.Mod(o.step+1, len(downAxes))
	} else {
		o.step = common.Mod(o.step-1, len(downAxes))
	}
}

// Reset restores the initial downward gravity.
func (o *Orientation) Reset() {
	if o == nil {
		return
	}
	o.step = 0
}

// IsInitial reports whether gravity points down the -Y axis.
func (o *Orientation) IsInitial() bool {
	return o == nil || o.step == 0
}

// Step returns the number of clockwise quarter turns from the initial state (0..3).
func (o *Orientation) Step() int {
	if o == nil {
		return 0
	}
	return o.step
}

func (o *Orientation) Magnitude() float64 {
	if o == nil {
		return common.GravityMagnitude
	}
	return o.magnitude
}

// SetMagnitude changes the gravity strength without touching the direction.
func (o *Orientation) SetMagnitude(m float64) {
	if o == nil || m <= 0 {
		return
	}
	o.magnitude = m
}

// Down returns the unit down axis.
func (o *Orientation) Down() cp.Vector {
	return downAxes[o.Step()]
}

// Tangent returns the unit axis that reads as "right" on screen: down turned +90°.
func (o *Orientation) Tangent() cp.Vector {
	d := o.Down()
	return cp.Vector{X: -d.Y, Y: d.X}
}

// Gravity returns the world gravity vector.
func (o *Orientation) Gravity() cp.Vector {
	return o.Down().Mult(o.Magnitude())
}

// ViewAngle returns the camera angle in radians that makes Down point down on screen.
func (o *Orientation) ViewAngle() float64 {
	return -float64(o.Step()) * common.QuarterTurn
}

// TurnAngle is the camera rotation applied for one command in dir.
func TurnAngle(dir Direction) float64 {
	if dir == Clockwise {
		return -common.QuarterTurn
	}
	return common.QuarterTurn
}
