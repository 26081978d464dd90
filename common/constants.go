package common

import "math"

const (
	// TPS is the fixed simulation rate.
	TPS = 60
	// StepSeconds is the duration of one simulation tick.
	StepSeconds = 1.0 / TPS

	DefaultCellSize = 16.0
	// GravityMagnitude is the length of the world gravity vector in units/s².
	GravityMagnitude = 2000.0
	BaseSpeed        = 200.0
	SecurityDistance = 10.0

	QuarterTurn = math.Pi / 2
)
