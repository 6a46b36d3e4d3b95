package gradient

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ourjourney/iconforge/pkg/errors"
)

// RGB is an opaque 8-bit color.
type RGB struct {
	R, G, B uint8
}

// NRGBA returns the color with the given straight (non-premultiplied) alpha.
func (c RGB) NRGBA(a uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
}

// Interpolate returns A·(1−t) + B·t per channel, rounded to the nearest
// integer and clamped to [0, 255]. t is clamped to [0, 1].
func Interpolate(a, b RGB, t float64) RGB {
	switch {
	case t <= 0:
		return a
	case t >= 1:
		return b
	}
	return RGB{
		R: lerp(a.R, b.R, t),
		G: lerp(a.G, b.G, t),
		B: lerp(a.B, b.B, t),
	}
}

func lerp(a, b uint8, t float64) uint8 {
	v := math.Round(float64(a)*(1-t) + float64(b)*t)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Gradient is a piecewise-linear color ramp over evenly spaced anchors.
type Gradient struct {
	anchors []RGB
}

// New creates a gradient from two or more anchors.
func New(anchors ...RGB) (Gradient, error) {
	if len(anchors) < 2 {
		return Gradient{}, errors.New(errors.ErrCodeInvalidColor,
			"gradient needs at least 2 anchor colors, got %d", len(anchors))
	}
	a := make([]RGB, len(anchors))
	copy(a, anchors)
	return Gradient{anchors: a}, nil
}

// Must is like New but panics on error. It is intended for fixed anchors in
// tests and examples.
func Must(anchors ...RGB) Gradient {
	g, err := New(anchors...)
	if err != nil {
		panic(err)
	}
	return g
}

// Anchors returns a copy of the gradient's anchor colors.
func (g Gradient) Anchors() []RGB {
	out := make([]RGB, len(g.anchors))
	copy(out, g.anchors)
	return out
}

// At evaluates the gradient at ratio t in [0, 1].
func (g Gradient) At(t float64) RGB {
	n := len(g.anchors)
	if n == 0 {
		return RGB{}
	}
	if n == 1 || t <= 0 {
		return g.anchors[0]
	}
	if t >= 1 {
		return g.anchors[n-1]
	}

	segments := float64(n - 1)
	i := int(t * segments)
	if i >= n-1 {
		i = n - 2
	}
	local := (t - float64(i)/segments) * segments
	return Interpolate(g.anchors[i], g.anchors[i+1], local)
}

// ParseHex parses a "#rrggbb" (or "#rgb") color.
func ParseHex(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "parse color %q", s)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// ParseAll parses a list of hex anchors and builds a gradient from them.
func ParseAll(hex []string) (Gradient, error) {
	anchors := make([]RGB, 0, len(hex))
	for _, s := range hex {
		c, err := ParseHex(s)
		if err != nil {
			return Gradient{}, err
		}
		anchors = append(anchors, c)
	}
	return New(anchors...)
}
