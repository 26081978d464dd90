package component

import "github.com/milk9111/gravitylegacy/geom"

// Slime is the side-relative movement state of the player.
//
// CurrentSide is the side of the body touching the ground as of the last grounding
// contact; PreviousSide is the side the transform is currently based on. They
// differ only between a side change and the re-base that follows it.
type Slime struct {
	CurrentSide      geom.Side
	PreviousSide     geom.Side
	TangentialExtent float64
	PenetrationDepth float64
	IsJumping        bool
	IsWalking        bool
	NeedsResprite    bool
	// StallFrames counts consecutive ticks without a surface contact, saturating.
	StallFrames uint8

	MoveSpeed        float64
	SecurityDistance float64
	// AirborneFrames is how many contact-free ticks are tolerated before the slime
	// counts as jumping.
	AirborneFrames uint8
}

var SlimeComponent = NewComponent[Slime]()

// SurfaceContact counts the solids currently touching an entity.
type SurfaceContact struct {
	Count int
}

var SurfaceContactComponent = NewComponent[SurfaceContact]()
