package geom

import "math"

// Box is an axis-aligned box described by its center and full size.
type Box struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func (b Box) MinX() float64 { return b.X - b.Width/2 }
func (b Box) MaxX() float64 { return b.X + b.Width/2 }
func (b Box) MinY() float64 { return b.Y - b.Height/2 }
func (b Box) MaxY() float64 { return b.Y + b.Height/2 }

// Grow returns b expanded by margin on every face.
func (b Box) Grow(margin float64) Box {
	b.Width += 2 * margin
	b.Height += 2 * margin
	return b
}

// BoxFromBounds builds a Box from edge coordinates.
func BoxFromBounds(left, bottom, right, top float64) Box {
	return Box{
		X:      (left + right) / 2,
		Y:      (bottom + top) / 2,
		Width:  right - left,
		Height: top - bottom,
	}
}

// Overlaps reports whether a and b intersect with positive area.
func Overlaps(a, b Box) bool {
	return a.MinX() < b.MaxX() && a.MaxX() > b.MinX() && a.MinY() < b.MaxY() && a.MaxY() > b.MinY()
}

// Outcome describes which side of A was hit by B and how deeply.
type Outcome struct {
	Side             Side
	OverlapLength    float64
	PenetrationDepth float64
}

// Classify tests moving box a against obstacle b. The reported side is the side of a
// that touches b, picked on the axis with the shallower penetration. Ties go to the
// X axis.
func Classify(a, b Box) (Outcome, bool) {
	if !Overlaps(a, b) {
		return Outcome{}, false
	}

	xSide, xDepth, xFinal := classifyAxis(a.MinX(), a.MaxX(), b.MinX(), b.MaxX(), a.Width, b.Width, SideRight, SideLeft)
	ySide, yDepth, yFinal := classifyAxis(a.MinY(), a.MaxY(), b.MinY(), b.MaxY(), a.Height, b.Height, SideTop, SideBottom)

	if math.Abs(yDepth) < math.Abs(xDepth) {
		return Outcome{Side: ySide, OverlapLength: xFinal, PenetrationDepth: yFinal}, true
	}
	return Outcome{Side: xSide, OverlapLength: yFinal, PenetrationDepth: xFinal}, true
}

// classifyAxis returns the side, the signed depth used for axis selection, and the
// reported magnitude. Containment yields -Inf so the axis never wins the comparison.
func classifyAxis(aMin, aMax, bMin, bMax, aSize, bSize float64, positive, negative Side) (Side, float64, float64) {
	switch {
	case aMin < bMin && aMax > bMin && aMax < bMax:
		d := bMin - aMax
		return positive, d, math.Abs(d)
	case aMin > bMin && aMin < bMax && aMax > bMax:
		d := aMin - bMax
		return negative, d, math.Abs(d)
	case aSize < bSize:
		return SideInside, math.Inf(-1), math.Abs(aSize)
	default:
		return SideInside, math.Inf(-1), math.Abs(bSize)
	}
}
