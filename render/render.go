// Package render draws the world with ebiten through a camera that turns with
// gravity.
package render

import (
	"fmt"
	"image"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/gravitylegacy/ecs"
	"github.com/milk9111/gravitylegacy/ecs/component"
)

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	b := screen.Bounds()
	view := ViewFor(w, float64(b.Dx()), float64(b.Dy()))

	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		li := 0
		if layer, ok := ecs.Get(w, entities[i], component.RenderLayerComponent.Kind()); ok {
			li = layer.Index
		}
		lj := 0
		if layer, ok := ecs.Get(w, entities[j], component.RenderLayerComponent.Kind()); ok {
			lj = layer.Index
		}
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		s, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
		if !ok || s.Width <= 0 || s.Height <= 0 {
			continue
		}
		drawSprite(screen, view, t, s)
	}
}

func drawSprite(screen *ebiten.Image, view View, t *component.Transform, s *component.Sprite) {
	scale := s.Scale
	if scale == 0 {
		scale = 1
	}
	sx := scale
	if t.ScaleX != 0 {
		sx *= t.ScaleX
	}
	sy := scale
	if t.ScaleY != 0 {
		sy *= t.ScaleY
	}

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest

	img := sheetImage(s.Sheet)
	if img != nil {
		fw, fh := int(s.Width), int(s.Height)
		frames := img.Bounds().Dx() / max(fw, 1)
		frame := s.Frame
		if frames > 0 {
			frame %= frames
		}
		sub, ok := img.SubImage(image.Rect(frame*fw, 0, (frame+1)*fw, fh)).(*ebiten.Image)
		if !ok {
			return
		}
		img = sub
	} else {
		img = whitePixel()
		sx *= s.Width
		sy *= s.Height
		op.ColorScale.ScaleWithColor(tintOf(s.Color))
	}

	iw := float64(img.Bounds().Dx())
	ih := float64(img.Bounds().Dy())
	op.GeoM.Translate(-iw/2, -ih/2)
	if s.FlipX {
		sx = -sx
	}
	op.GeoM.Scale(sx, sy)
	op.GeoM.Rotate(-t.Rotation)
	view.Apply(&op.GeoM, t.X, t.Y)

	screen.DrawImage(img, op)
}

// DrawDebugInfo prints the player's movement state in the top-left corner.
func DrawDebugInfo(w *ecs.World, screen *ebiten.Image, step int) {
	if w == nil || screen == nil {
		return
	}
	text := fmt.Sprintf("TPS: %.0f  FPS: %.0f\nGravity step: %d", ebiten.ActualTPS(), ebiten.ActualFPS(), step)
	if lvlEntity, ok := w.First(component.LevelComponent.Kind()); ok {
		if lvl, ok := ecs.Get(w, lvlEntity, component.LevelComponent.Kind()); ok {
			text += "\nLevel: " + lvl.Name
		}
	}
	if player, ok := w.First(component.PlayerTagComponent.Kind()); ok {
		if slime, ok := ecs.Get(w, player, component.SlimeComponent.Kind()); ok {
			text += fmt.Sprintf("\nSide: %s  Jumping: %v  Walking: %v", slime.CurrentSide, slime.IsJumping, slime.IsWalking)
		}
		if contact, ok := ecs.Get(w, player, component.SurfaceContactComponent.Kind()); ok {
			text += fmt.Sprintf("\nContacts: %d", contact.Count)
		}
	}
	ebitenutil.DebugPrintAt(screen, text, 10, 10)
}
