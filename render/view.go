package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/gravitylegacy/ecs"
	"github.com/milk9111/gravitylegacy/ecs/component"
)

// View maps y-up world coordinates onto the screen. The world is turned by
// Rotation around the camera before the y axis is flipped.
type View struct {
	CamX     float64
	CamY     float64
	Zoom     float64
	Rotation float64
	ScreenW  float64
	ScreenH  float64
}

// ViewFor reads the active camera. Without one the view is centered on the origin.
func ViewFor(w *ecs.World, screenW, screenH float64) View {
	v := View{Zoom: 1, ScreenW: screenW, ScreenH: screenH}
	camEntity, ok := w.First(component.CameraComponent.Kind())
	if !ok {
		return v
	}
	if t, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind()); ok {
		v.CamX = t.X
		v.CamY = t.Y
	}
	if c, ok := ecs.Get(w, camEntity, component.CameraComponent.Kind()); ok {
		if c.Zoom > 0 {
			v.Zoom = c.Zoom
		}
		v.Rotation = c.Rotation
	}
	return v
}

// Apply appends the world-to-screen transform for a point at x, y to g.
func (v View) Apply(g *ebiten.GeoM, x, y float64) {
	g.Translate(x-v.CamX, -(y - v.CamY))
	g.Rotate(-v.Rotation)
	g.Scale(v.Zoom, v.Zoom)
	g.Translate(v.ScreenW/2, v.ScreenH/2)
}

// ToScreen transforms a single world point.
func (v View) ToScreen(x, y float64) (float64, float64) {
	var g ebiten.GeoM
	v.Apply(&g, x, y)
	return g.Apply(0, 0)
}
