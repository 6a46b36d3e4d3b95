package layer

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"

	"github.com/ourjourney/iconforge/pkg/errors"
)

// Compositor folds layers into a single accumulator with the "over" operator.
// It is not safe for concurrent use.
type Compositor struct {
	acc    *image.NRGBA
	stack  []string
	closed bool
}

// NewCompositor starts an accumulator from base. The compositor takes
// ownership of base's buffer.
func NewCompositor(base *Layer) *Compositor {
	acc := base.img
	base.img = nil
	return &Compositor{acc: acc, stack: []string{base.Name}}
}

// NewTransparentCompositor starts a fully transparent accumulator.
func NewTransparentCompositor(w, h int) *Compositor {
	return &Compositor{acc: image.NewNRGBA(image.Rect(0, 0, w, h))}
}

// Add composites l over the accumulator. l must match the accumulator size;
// it is consumed and must not be reused.
func (c *Compositor) Add(l *Layer) error {
	if c.closed {
		return errors.New(errors.ErrCodeInternal, "compositor already produced its result")
	}
	if err := SameSize(c.acc.Bounds(), l.Bounds()); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidDimensions, err, "add layer %q", l.Name)
	}
	overImage(c.acc, l.img)
	c.stack = append(c.stack, l.Name)
	l.img = nil
	return nil
}

// Stack returns the names of the layers added so far, bottom first.
func (c *Compositor) Stack() []string {
	out := make([]string, len(c.stack))
	copy(out, c.stack)
	return out
}

// Result hands the accumulator to the caller. The compositor cannot be used
// afterwards.
func (c *Compositor) Result() *image.NRGBA {
	c.closed = true
	img := c.acc
	c.acc = nil
	return img
}

// Flatten composites img over an opaque background color and returns an
// opaque image of the same size.
func Flatten(img *image.NRGBA, bg color.NRGBA) *image.NRGBA {
	b := img.Bounds()
	base := imaging.New(b.Dx(), b.Dy(), color.NRGBA{R: bg.R, G: bg.G, B: bg.B, A: 255})
	return imaging.Overlay(base, img, image.Point{}, 1.0)
}

// overImage composites src over dst in place. Both must share bounds
// starting at the origin.
func overImage(dst, src *image.NRGBA) {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	for y := 0; y < h; y++ {
		d := dst.Pix[y*dst.Stride : y*dst.Stride+w*4]
		s := src.Pix[y*src.Stride : y*src.Stride+w*4]
		for i := 0; i < len(d); i += 4 {
			sa := s[i+3]
			if sa == 0 {
				continue
			}
			if sa == 255 {
				copy(d[i:i+4], s[i:i+4])
				continue
			}
			d[i], d[i+1], d[i+2], d[i+3] = over(
				s[i], s[i+1], s[i+2], sa,
				d[i], d[i+1], d[i+2], d[i+3])
		}
	}
}

// over blends one straight-alpha source pixel onto a destination pixel.
func over(sr, sg, sb, sa, dr, dg, db, da uint8) (r, g, b, a uint8) {
	as := float64(sa) / 255
	ad := float64(da) / 255 * (1 - as)
	ao := as + ad
	if ao == 0 {
		return 0, 0, 0, 0
	}
	mix := func(s, d uint8) uint8 {
		return clamp8((float64(s)*as + float64(d)*ad) / ao)
	}
	return mix(sr, dr), mix(sg, dg), mix(sb, db), clamp8(ao * 255)
}

func clamp8(v float64) uint8 {
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
