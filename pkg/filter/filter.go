package filter

import (
	"image"
	"math"

	"github.com/disintegration/imaging"

	"github.com/ourjourney/iconforge/pkg/errors"
	"github.com/ourjourney/iconforge/pkg/layer"
)

// Sharpen holds unsharp-mask parameters.
type Sharpen struct {
	Radius    float64 // blur radius of the mask, in pixels
	Percent   float64 // strength; 100 adds the full difference once
	Threshold int     // minimum per-channel difference that is sharpened
}

// ValidateRadius rejects non-positive and non-finite radii.
func ValidateRadius(r float64) error {
	if r <= 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		return errors.New(errors.ErrCodeInvalidRadius, "radius must be positive, got %v", r)
	}
	return nil
}

// Validate checks the sharpen parameters.
func (s Sharpen) Validate() error {
	if err := ValidateRadius(s.Radius); err != nil {
		return err
	}
	if s.Percent < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "sharpen percent must not be negative, got %v", s.Percent)
	}
	if s.Threshold < 0 || s.Threshold > 255 {
		return errors.New(errors.ErrCodeInvalidInput, "sharpen threshold must be in [0, 255], got %d", s.Threshold)
	}
	return nil
}

// GaussianBlur returns a blurred copy of l. The radius is used as the
// Gaussian's standard deviation.
func GaussianBlur(l *layer.Layer, radius float64) (*layer.Layer, error) {
	if err := ValidateRadius(radius); err != nil {
		return nil, err
	}
	return layer.Wrap(l.Name, imaging.Blur(l.Image(), radius)), nil
}

// UnsharpMask sharpens img: every channel whose difference from a blurred
// copy is at least Threshold is pushed away from the blurred value by
// Percent/100 of that difference. Alpha is left unchanged.
func UnsharpMask(img image.Image, s Sharpen) (*image.NRGBA, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	src := imaging.Clone(img)
	blurred := imaging.Blur(src, s.Radius)
	out := imaging.Clone(src)

	amount := s.Percent / 100
	for i := 0; i < len(out.Pix); i += 4 {
		for c := 0; c < 3; c++ {
			orig := int(src.Pix[i+c])
			diff := orig - int(blurred.Pix[i+c])
			if abs(diff) < s.Threshold {
				continue
			}
			out.Pix[i+c] = clamp(float64(orig) + float64(diff)*amount)
		}
	}
	return out, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clamp(v float64) uint8 {
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
