package layer

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/ourjourney/iconforge/pkg/errors"
)

// Layer is one named visual element on a fixed-size canvas.
type Layer struct {
	Name string
	img  *image.NRGBA
}

// New returns a fully transparent layer of the given size.
func New(name string, w, h int) *Layer {
	return &Layer{Name: name, img: image.NewNRGBA(image.Rect(0, 0, w, h))}
}

// Fill returns a layer of the given size filled with a single color.
func Fill(name string, w, h int, c color.NRGBA) *Layer {
	return &Layer{Name: name, img: imaging.New(w, h, c)}
}

// FromImage wraps a copy of img as a layer. The copy is rebased so the
// layer's bounds start at the origin.
func FromImage(name string, img image.Image) *Layer {
	return &Layer{Name: name, img: imaging.Clone(img)}
}

// Wrap adopts img as the layer's buffer without copying. The caller must not
// use img afterwards.
func Wrap(name string, img *image.NRGBA) *Layer {
	return &Layer{Name: name, img: img}
}

// Image returns the layer's pixel buffer.
func (l *Layer) Image() *image.NRGBA { return l.img }

// Bounds returns the layer's pixel bounds.
func (l *Layer) Bounds() image.Rectangle { return l.img.Bounds() }

// Size returns the layer's width and height.
func (l *Layer) Size() (w, h int) {
	b := l.img.Bounds()
	return b.Dx(), b.Dy()
}

// At returns the straight-alpha color at (x, y).
func (l *Layer) At(x, y int) color.NRGBA { return l.img.NRGBAAt(x, y) }

// SameSize reports an INVALID_DIMENSIONS error if a and b differ in size.
func SameSize(a, b image.Rectangle) error {
	if a.Dx() != b.Dx() || a.Dy() != b.Dy() {
		return errors.Mismatch(a.Dx(), a.Dy(), b.Dx(), b.Dy())
	}
	return nil
}
