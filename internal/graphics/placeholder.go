package graphics

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	placeholderFill   = color.RGBA{128, 0, 128, 255} // Magenta-ish for missing textures
	placeholderAccent = color.RGBA{20, 20, 20, 255}
	placeholders      = make(map[int]*ebiten.Image)
)

// Placeholder returns a checkered square used where a material could not be
// loaded. Images are cached per size.
func Placeholder(size int) *ebiten.Image {
	if size < 2 {
		size = 2
	}
	if img, ok := placeholders[size]; ok {
		return img
	}

	img := ebiten.NewImage(size, size)
	img.Fill(placeholderFill)
	half := size / 2
	quarter := ebiten.NewImage(half, half)
	quarter.Fill(placeholderAccent)

	op := &ebiten.DrawImageOptions{}
	img.DrawImage(quarter, op)
	op.GeoM.Translate(float64(half), float64(half))
	img.DrawImage(quarter, op)

	placeholders[size] = img
	return img
}
