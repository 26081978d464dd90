package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/gravitylegacy/assets"
	"github.com/milk9111/gravitylegacy/logger"
	"golang.org/x/image/colornames"
)

var images = map[string]*ebiten.Image{}

// RegisterImage stores an image by key.
func RegisterImage(key string, img *ebiten.Image) {
	if key == "" || img == nil {
		return
	}
	images[key] = img
}

// GetImage returns a cached image by key.
func GetImage(key string) *ebiten.Image {
	if key == "" {
		return nil
	}
	return images[key]
}

// ResetImages drops the cache so sheets are read again after a reload.
func ResetImages() {
	for k, img := range images {
		img.Deallocate()
		delete(images, k)
	}
	for k := range missingSheets {
		delete(missingSheets, k)
	}
}

var missingSheets = map[string]bool{}

// sheetImage returns the sheet for key, loading it from assets on first use. Keys
// without an asset return nil and are drawn as tinted placeholders.
func sheetImage(key string) *ebiten.Image {
	if img := GetImage(key); img != nil {
		return img
	}
	if key == "" || missingSheets[key] {
		return nil
	}
	src, err := assets.DecodeImage(assets.SheetPath(key))
	if err != nil {
		if assets.Exists(assets.SheetPath(key)) {
			logger.Log.WithError(err).WithField("sheet", key).Warn("sheet decode failed")
		}
		missingSheets[key] = true
		return nil
	}
	img := ebiten.NewImageFromImage(src)
	RegisterImage(key, img)
	return img
}

var pixel *ebiten.Image

func whitePixel() *ebiten.Image {
	if pixel == nil {
		pixel = ebiten.NewImage(1, 1)
		pixel.Fill(color.White)
	}
	return pixel
}

func tintOf(c color.Color) color.Color {
	if c == nil {
		return colornames.Magenta
	}
	return c
}
