package geom

import "github.com/milk9111/gravitylegacy/common"

// Side is a face of an axis-aligned box. Inside marks containment on an axis, where
// no face can be named.
type Side int

// Ordinals are used for circular arithmetic between sides, so the order matters.
const (
	SideBottom Side = iota
	SideRight
	SideTop
	SideLeft
	SideInside
)

const directionalSides = 4

func (s Side) Ordinal() int {
	return int(s)
}

// Directional reports whether s is one of the four faces.
func (s Side) Directional() bool {
	return s >= SideBottom && s < SideInside
}

// Next returns the side one ordinal step forward, wrapping Left to Bottom.
func (s Side) Next() Side {
	if !s.Directional() {
		return s
	}
	return Side(common.Mod(int(s)+1, directionalSides))
}

// Prev returns the side one ordinal step backward, wrapping Bottom to Left.
func (s Side) Prev() Side {
	if !s.Directional() {
		return s
	}
	return Side(common.Mod(int(s)-1, directionalSides))
}

// Mirror swaps Left/Right and Top/Bottom.
func (s Side) Mirror() Side {
	switch s {
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	case SideTop:
		return SideBottom
	case SideBottom:
		return SideTop
	default:
		return s
	}
}

func (s Side) String() string {
	switch s {
	case SideBottom:
		return "bottom"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideLeft:
		return "left"
	case SideInside:
		return "inside"
	default:
		return "unknown"
	}
}

// SideFromNormal maps a contact normal pointing from A toward B to the side of A
// that is touching. Returns SideInside when the normal is not clearly axis aligned.
func SideFromNormal(nx, ny float64) Side {
	switch {
	case ny < -0.5:
		return SideBottom
	case ny > 0.5:
		return SideTop
	case nx > 0.5:
		return SideRight
	case nx < -0.5:
		return SideLeft
	default:
		return SideInside
	}
}
