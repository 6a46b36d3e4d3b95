package curve

import (
	"image"
	"iter"
	"math"
)

// Samples is the number of vertices produced per curve (one per degree).
const Samples = 360

// unit is the divisor applied to the width and height scales.
const unit = 35.0

// Heart describes a heart silhouette by its center and scale.
type Heart struct {
	Center image.Point
	Width  float64
	Height float64
}

// At evaluates the heart at angle deg (in degrees) and returns the rounded
// pixel coordinate.
func (h Heart) At(deg int) image.Point {
	x, y := unitHeart(float64(deg) * math.Pi / 180)
	return image.Point{
		X: int(math.Round(float64(h.Center.X) + x*h.Width/unit)),
		Y: int(math.Round(float64(h.Center.Y) + y*h.Height/unit)),
	}
}

// Points returns the curve's vertices in angular order. The sequence is lazy
// and can be ranged over any number of times.
func (h Heart) Points() iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		for deg := 0; deg < Samples; deg++ {
			if !yield(h.At(deg)) {
				return
			}
		}
	}
}

// Polygon collects Points into a slice.
func (h Heart) Polygon() []image.Point {
	pts := make([]image.Point, 0, Samples)
	for p := range h.Points() {
		pts = append(pts, p)
	}
	return pts
}

// unitHeart returns the unscaled heart coordinates at angle t (radians).
func unitHeart(t float64) (x, y float64) {
	s := math.Sin(t)
	x = 16 * s * s * s
	y = -(13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t))
	return x, y
}

// Offset returns a copy of pts translated by (dx, dy).
func Offset(pts []image.Point, dx, dy int) []image.Point {
	d := image.Pt(dx, dy)
	out := make([]image.Point, len(pts))
	for i, p := range pts {
		out[i] = p.Add(d)
	}
	return out
}

// Bounds returns the smallest rectangle containing every point. The
// rectangle is inclusive of the maximum point, so it has Max = max+1.
func Bounds(pts []image.Point) image.Rectangle {
	if len(pts) == 0 {
		return image.Rectangle{}
	}
	r := image.Rectangle{Min: pts[0], Max: pts[0].Add(image.Pt(1, 1))}
	for _, p := range pts[1:] {
		r = r.Union(image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))})
	}
	return r
}
