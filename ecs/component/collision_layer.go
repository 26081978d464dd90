package component

const (
	CategoryWorld uint32 = 1 << iota
	CategoryPlayer
	CategoryProp
	CategoryTrigger
)

// CollisionLayer declares a collision category and mask so the physics system can
// keep triggers from touching props and similar.
type CollisionLayer struct {
	// Category is a bitmask of this entity's collision category. Zero means
	// CategoryWorld.
	Category uint32 `yaml:"category,omitempty"`
	// Mask is a bitmask of categories this entity collides with. Zero means all.
	Mask uint32 `yaml:"mask,omitempty"`
}

var CollisionLayerComponent = NewComponent[CollisionLayer]()
