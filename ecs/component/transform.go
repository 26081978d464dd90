package component

// Transform is an entity's pose in world units. The world is y-up and X/Y name the
// center of the entity.
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
