package walls

// Collider is the world-space box for one Rect.
type Collider struct {
	CenterX    float64
	CenterY    float64
	HalfWidth  float64
	HalfHeight float64
}

func (c Collider) Width() float64  { return c.HalfWidth * 2 }
func (c Collider) Height() float64 { return c.HalfHeight * 2 }

// Collider converts r to world units. originX/originY is the world position of the
// bottom-left corner of cell (0, 0).
func (r Rect) Collider(cellSize, originX, originY float64) Collider {
	w := float64(r.Width()) * cellSize
	h := float64(r.Height()) * cellSize
	return Collider{
		CenterX:    originX + float64(r.Left)*cellSize + w/2,
		CenterY:    originY + float64(r.Bottom)*cellSize + h/2,
		HalfWidth:  w / 2,
		HalfHeight: h / 2,
	}
}
