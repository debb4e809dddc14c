package render

import (
	"climatematerials/internal/graphics"

	"github.com/hajimehoshi/ebiten/v2"
)

// MeshRenderer is the render target for an object's surface materials.
type MeshRenderer struct {
	Name        string
	materials   []*graphics.Material
	assignments int
}

func NewMeshRenderer(name string, initial ...*graphics.Material) *MeshRenderer {
	return &MeshRenderer{Name: name, materials: initial}
}

// SetMaterials replaces the material array verbatim, nil entries included.
func (r *MeshRenderer) SetMaterials(materials []*graphics.Material) {
	r.materials = append([]*graphics.Material(nil), materials...)
	r.assignments++
}

// Materials returns a copy of the current material array.
func (r *MeshRenderer) Materials() []*graphics.Material {
	return append([]*graphics.Material(nil), r.materials...)
}

// Assignments returns how many times SetMaterials has been called.
func (r *MeshRenderer) Assignments() int {
	return r.assignments
}

// Draw lays the materials out as a row of square swatches starting at x, y.
// Missing materials are drawn as the placeholder texture and zero-size
// images are skipped. It returns the number of swatches drawn.
func (r *MeshRenderer) Draw(screen *ebiten.Image, x, y, swatch, gap int) int {
	drawn := 0
	for i, m := range r.materials {
		img := graphics.Placeholder(swatch)
		if m != nil && m.Image != nil {
			img = m.Image
		}
		b := img.Bounds()
		if b.Dx() == 0 || b.Dy() == 0 {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(swatch)/float64(b.Dx()), float64(swatch)/float64(b.Dy()))
		op.GeoM.Translate(float64(x+i*(swatch+gap)), float64(y))
		screen.DrawImage(img, op)
		drawn++
	}
	return drawn
}
