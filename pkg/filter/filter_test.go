package filter

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/ourjourney/iconforge/pkg/errors"
	"github.com/ourjourney/iconforge/pkg/layer"
)

func TestValidateRadius(t *testing.T) {
	tests := []struct {
		r       float64
		wantErr bool
	}{
		{1, false},
		{12, false},
		{0.5, false},
		{0, true},
		{-4, true},
		{math.NaN(), true},
		{math.Inf(1), true},
	}
	for _, tt := range tests {
		err := ValidateRadius(tt.r)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateRadius(%v) error = %v, wantErr %v", tt.r, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidRadius) {
			t.Errorf("ValidateRadius(%v) code = %v, want %v", tt.r, errors.GetCode(err), errors.ErrCodeInvalidRadius)
		}
	}
}

func TestGaussianBlurRejectsRadius(t *testing.T) {
	l := layer.New("shadow", 4, 4)
	for _, r := range []float64{0, -1} {
		if _, err := GaussianBlur(l, r); !errors.Is(err, errors.ErrCodeInvalidRadius) {
			t.Errorf("GaussianBlur(r=%v) error = %v, want INVALID_RADIUS", r, err)
		}
	}
}

func TestGaussianBlurSoftensEdge(t *testing.T) {
	// A hard-edged square of alpha 200 in the middle of a transparent layer.
	src := image.NewNRGBA(image.Rect(0, 0, 40, 40))
	for y := 10; y < 30; y++ {
		for x := 10; x < 30; x++ {
			src.SetNRGBA(x, y, color.NRGBA{A: 200})
		}
	}
	l := layer.Wrap("shadow", src)

	out, err := GaussianBlur(l, 4)
	if err != nil {
		t.Fatalf("GaussianBlur() error = %v", err)
	}
	if w, h := out.Size(); w != 40 || h != 40 {
		t.Fatalf("Size() = %dx%d, want 40x40", w, h)
	}
	if out.Name != "shadow" {
		t.Errorf("Name = %q, want %q", out.Name, "shadow")
	}

	// Just outside the square picks up some alpha, just inside loses some.
	if a := out.At(8, 20).A; a == 0 || a >= 200 {
		t.Errorf("alpha outside edge = %d, want in (0, 200)", a)
	}
	if a := out.At(11, 20).A; a == 0 || a >= 200 {
		t.Errorf("alpha inside edge = %d, want in (0, 200)", a)
	}
	// The input is untouched.
	if a := l.At(8, 20).A; a != 0 {
		t.Errorf("input modified: alpha at (8,20) = %d", a)
	}
}

func TestGaussianBlurDeterministic(t *testing.T) {
	mk := func() *layer.Layer {
		l := layer.Fill("x", 16, 16, color.NRGBA{})
		l.Image().SetNRGBA(8, 8, color.NRGBA{R: 255, A: 255})
		return l
	}
	a, _ := GaussianBlur(mk(), 2)
	b, _ := GaussianBlur(mk(), 2)
	for i := range a.Image().Pix {
		if a.Image().Pix[i] != b.Image().Pix[i] {
			t.Fatalf("blur output differs at byte %d", i)
		}
	}
}

func TestSharpenValidate(t *testing.T) {
	tests := []struct {
		name    string
		s       Sharpen
		wantErr bool
	}{
		{"default", Sharpen{Radius: 1, Percent: 120, Threshold: 3}, false},
		{"zero percent", Sharpen{Radius: 1, Percent: 0, Threshold: 0}, false},
		{"zero radius", Sharpen{Radius: 0, Percent: 120, Threshold: 3}, true},
		{"negative percent", Sharpen{Radius: 1, Percent: -1, Threshold: 3}, true},
		{"threshold too big", Sharpen{Radius: 1, Percent: 120, Threshold: 256}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.s.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func stepImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 20, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 20; x++ {
			v := uint8(100)
			if x >= 10 {
				v = 150
			}
			img.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img
}

func TestUnsharpMaskIncreasesEdgeContrast(t *testing.T) {
	src := stepImage()
	out, err := UnsharpMask(src, Sharpen{Radius: 1, Percent: 120, Threshold: 3})
	if err != nil {
		t.Fatalf("UnsharpMask() error = %v", err)
	}

	if got := out.NRGBAAt(9, 1).R; got >= 100 {
		t.Errorf("dark side of edge = %d, want < 100", got)
	}
	if got := out.NRGBAAt(10, 1).R; got <= 150 {
		t.Errorf("light side of edge = %d, want > 150", got)
	}
	if got := out.NRGBAAt(0, 1); got != src.NRGBAAt(0, 1) {
		t.Errorf("flat region changed: %v, want %v", got, src.NRGBAAt(0, 1))
	}
	if got := out.NRGBAAt(10, 1).A; got != 255 {
		t.Errorf("alpha = %d, want 255", got)
	}
	if src.NRGBAAt(9, 1).R != 100 {
		t.Error("UnsharpMask() modified its input")
	}
}

func TestUnsharpMaskThreshold(t *testing.T) {
	src := stepImage()
	out, err := UnsharpMask(src, Sharpen{Radius: 1, Percent: 120, Threshold: 255})
	if err != nil {
		t.Fatalf("UnsharpMask() error = %v", err)
	}
	for i := range src.Pix {
		if out.Pix[i] != src.Pix[i] {
			t.Fatalf("byte %d changed from %d to %d under a 255 threshold", i, src.Pix[i], out.Pix[i])
		}
	}
}

func TestUnsharpMaskRejectsRadius(t *testing.T) {
	if _, err := UnsharpMask(stepImage(), Sharpen{Radius: -1, Percent: 120, Threshold: 3}); !errors.Is(err, errors.ErrCodeInvalidRadius) {
		t.Errorf("UnsharpMask(r=-1) error = %v, want INVALID_RADIUS", err)
	}
}
