package component

import "image/color"

// Sprite names a sheet region to draw at the entity's transform. Sheet is an asset
// key resolved by the renderer; Frame selects a column of the sheet. Color tints
// the placeholder drawn when the sheet has no image.
type Sprite struct {
	Sheet  string
	Width  float64
	Height float64
	Frame  int
	Scale  float64
	FlipX  bool
	Color  color.Color
}

var SpriteComponent = NewComponent[Sprite]()
