package layer

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/ourjourney/iconforge/pkg/gradient"
)

// VerticalGradient returns an opaque layer whose row y is colored with
// g.At(y/h).
func VerticalGradient(name string, w, h int, g gradient.Gradient) *Layer {
	l := New(name, w, h)
	img := l.img
	for y := 0; y < h; y++ {
		c := g.At(float64(y) / float64(h)).NRGBA(255)
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := 0; x < w; x++ {
			row[x*4+0] = c.R
			row[x*4+1] = c.G
			row[x*4+2] = c.B
			row[x*4+3] = c.A
		}
	}
	return l
}

// Polygon returns a layer with pts filled in c using the non-zero winding
// rule. Edges are anti-aliased.
func Polygon(name string, w, h int, pts []image.Point, c color.NRGBA) *Layer {
	return rasterize(name, w, h, func(dc *gg.Context) {
		if len(pts) < 3 {
			return
		}
		dc.MoveTo(float64(pts[0].X), float64(pts[0].Y))
		for _, p := range pts[1:] {
			dc.LineTo(float64(p.X), float64(p.Y))
		}
		dc.ClosePath()
		dc.SetColor(c)
		dc.Fill()
	})
}

// Glow describes concentric rings of a single color centered on a point.
// Rings have radii Step, 2·Step, … up to MaxRadius. A pixel takes the alpha
// of the smallest ring containing it; the alpha of a ring of radius r is
// InnerAlpha + (OuterAlpha − InnerAlpha)·r/MaxRadius, truncated.
type Glow struct {
	Center     image.Point
	MaxRadius  int
	Step       int
	InnerAlpha float64
	OuterAlpha float64
	Color      gradient.RGB
}

// RingAlpha returns the alpha of the ring with radius r.
func (g Glow) RingAlpha(r int) uint8 {
	v := g.InnerAlpha + (g.OuterAlpha-g.InnerAlpha)*float64(r)/float64(g.MaxRadius)
	v = math.Floor(v + 1e-9)
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// RadialGlow returns a layer with the glow rings drawn. Rings replace rather
// than blend, so the inner rings set the final alpha near the center.
func RadialGlow(name string, w, h int, g Glow) *Layer {
	l := New(name, w, h)
	if g.MaxRadius <= 0 || g.Step <= 0 {
		return l
	}
	img := l.img
	maxR2 := float64(g.MaxRadius) * float64(g.MaxRadius)
	for y := 0; y < h; y++ {
		dy := float64(y - g.Center.Y)
		for x := 0; x < w; x++ {
			dx := float64(x - g.Center.X)
			d2 := dx*dx + dy*dy
			if d2 > maxR2 {
				continue
			}
			ring := int(math.Ceil(math.Sqrt(d2) / float64(g.Step)))
			if ring < 1 {
				ring = 1
			}
			r := ring * g.Step
			if r > g.MaxRadius {
				r = g.MaxRadius
			}
			a := g.RingAlpha(r)
			if a == 0 {
				continue
			}
			i := img.PixOffset(x, y)
			img.Pix[i+0] = g.Color.R
			img.Pix[i+1] = g.Color.G
			img.Pix[i+2] = g.Color.B
			img.Pix[i+3] = a
		}
	}
	return l
}

// Span is a run of text placed with its top-left corner at Pos.
type Span struct {
	Text  string
	Face  font.Face
	Pos   image.Point
	Color color.NRGBA
}

// Text returns a layer with every span drawn. Spans without a face are
// skipped.
func Text(name string, w, h int, spans []Span) *Layer {
	return rasterize(name, w, h, func(dc *gg.Context) {
		for _, s := range spans {
			if s.Face == nil || s.Text == "" {
				continue
			}
			dc.SetFontFace(s.Face)
			dc.SetColor(s.Color)
			dc.DrawStringAnchored(s.Text, float64(s.Pos.X), float64(s.Pos.Y), 0, 1)
		}
	})
}

// rasterize runs draw on a fresh transparent context and converts the result
// to a straight-alpha layer.
func rasterize(name string, w, h int, draw func(dc *gg.Context)) *Layer {
	dc := gg.NewContext(w, h)
	draw(dc)
	return &Layer{Name: name, img: imaging.Clone(dc.Image())}
}
