package graphics

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// TextureKey identifies one frame of one record in a texture archive.
type TextureKey struct {
	Archive int
	Record  int
	Frame   int
}

func (k TextureKey) String() string {
	return fmt.Sprintf("%d_%d-%d", k.Archive, k.Record, k.Frame)
}

// Material is a loaded surface material ready to be assigned to a renderer.
type Material struct {
	Key    TextureKey
	Source string
	Image  *ebiten.Image
}

// Name returns a short label for the material.
func (m *Material) Name() string {
	if m == nil {
		return "<missing>"
	}
	return "TEXTURE." + m.Key.String()
}

// imageExtensions lists the texture file formats tried in order
var imageExtensions = []string{".png", ".bmp", ".webp"}

// decodeImageFile reads and decodes a texture file. The format is sniffed
// from the file contents.
func decodeImageFile(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %s: %w", path, err)
	}
	return img, nil
}

// loadMaterial tries each candidate base path with every known extension
// and returns the first texture that decodes.
func loadMaterial(key TextureKey, bases []string) (*Material, error) {
	var lastErr error
	for _, base := range bases {
		for _, ext := range imageExtensions {
			path := base + ext
			if _, err := os.Stat(path); err != nil {
				continue
			}
			img, err := decodeImageFile(path)
			if err != nil {
				lastErr = err
				continue
			}
			return &Material{
				Key:    key,
				Source: path,
				Image:  ebiten.NewImageFromImage(img),
			}, nil
		}
	}
	return nil, lastErr
}
