package component

import "math"

// Camera follows the player and turns with gravity. Rotation eases toward
// TargetRotation by a fixed step each frame; RotationFrames is the length of one
// quarter turn.
type Camera struct {
	Zoom           float64
	Smoothness     float64
	Rotation       float64
	TargetRotation float64
	RotationFrames int
}

const rotationEpsilon = 1e-9

// Turning reports whether a rotation is still being animated.
func (c *Camera) Turning() bool {
	return c != nil && math.Abs(c.TargetRotation-c.Rotation) > rotationEpsilon
}

var CameraComponent = NewComponent[Camera]()
