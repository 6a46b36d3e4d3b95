package pipeline

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/ourjourney/iconforge/pkg/errors"
	"github.com/ourjourney/iconforge/pkg/export"
	"github.com/ourjourney/iconforge/pkg/gradient"
	"github.com/ourjourney/iconforge/pkg/observability"
)

// testConfig shrinks the icon variants to 128px so tests stay fast.
func testConfig() Config {
	cfg := DefaultConfig()
	for name, v := range cfg.Variants {
		v.Size = 128
		v.Heart = HeartSpec{X: 64, Y: 60, Width: 52, Height: 48}
		v.Glow.MaxRadius = 48
		v.Glow.Step = 4
		if v.Shadow != nil {
			s := *v.Shadow
			if s.Blur > 0 {
				s.Blur = 2
			}
			v.Shadow = &s
		}
		cfg.Variants[name] = v
	}
	cfg.Icons = export.Manifest{
		Canonical: export.Entry{Name: "app-icon", File: "app-icon-128.png", Encoding: export.PNG},
		Derivatives: []export.Entry{
			{Name: "favicon", Size: 16, File: "favicon.ico", Encoding: export.ICO},
			{Name: "icon-16", Size: 16, File: "icon-16.png", Encoding: export.PNG},
			{Name: "icon-32", Size: 32, File: "icon-32.png", Encoding: export.PNG},
			{Name: "icon-64", Size: 64, File: "icon-64.png", Encoding: export.PNG},
		},
	}
	return cfg
}

type stageRecorder struct {
	observability.NoopPipelineHooks
	mu     sync.Mutex
	stages []string
}

func (s *stageRecorder) OnStageStart(_ context.Context, _, stage string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stages = append(s.stages, stage)
}

func TestRenderIconStageOrder(t *testing.T) {
	tests := []struct {
		variant string
		want    []string
	}{
		{VariantBasic, []string{StageBackground, StageGlow, StageShadow, StageSilhouette, StageFlatten}},
		{VariantPremium, []string{StageBackground, StageGlow, StageShadow, StageSilhouette, StageInnerShadow, StageFlatten, StageSharpen}},
	}

	for _, tt := range tests {
		t.Run(tt.variant, func(t *testing.T) {
			observability.Reset()
			defer observability.Reset()
			rec := &stageRecorder{}
			observability.SetPipelineHooks(rec)

			if _, err := NewRunner(testConfig(), nil).RenderIcon(context.Background(), tt.variant); err != nil {
				t.Fatalf("RenderIcon() error: %v", err)
			}
			if diff := cmp.Diff(tt.want, rec.stages); diff != "" {
				t.Errorf("stage order mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRenderIconPixels(t *testing.T) {
	img, err := NewRunner(testConfig(), nil).RenderIcon(context.Background(), VariantBasic)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 128 || b.Dy() != 128 {
		t.Fatalf("bounds = %v, want 128x128", b)
	}

	rose, _ := gradient.ParseHex("#f43f5e")
	if got, want := img.NRGBAAt(0, 0), rose.NRGBA(255); got != want {
		t.Errorf("corner pixel = %v, want gradient start %v", got, want)
	}

	center := img.NRGBAAt(64, 60)
	if center.R != 255 || center.G != 255 || center.B != 255 || center.A != 255 {
		t.Errorf("heart center = %v, want opaque white", center)
	}

	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 255 {
			t.Fatalf("pixel %d has alpha %d, want flattened output", i/4, img.Pix[i])
		}
	}
}

func TestRenderIconPremiumHeart(t *testing.T) {
	img, err := NewRunner(testConfig(), nil).RenderIcon(context.Background(), VariantPremium)
	if err != nil {
		t.Fatal(err)
	}
	c := img.NRGBAAt(64, 60)
	if c.R < 200 || c.G < 200 || c.B < 200 {
		t.Errorf("heart center = %v, want near white", c)
	}
}

func TestRenderIconDeterministic(t *testing.T) {
	r := NewRunner(testConfig(), nil)
	a, err := r.RenderIcon(context.Background(), VariantPremium)
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.RenderIcon(context.Background(), VariantPremium)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("two renders of the same variant differ")
	}
}

func TestRenderIconUnknownVariant(t *testing.T) {
	_, err := NewRunner(testConfig(), nil).RenderIcon(context.Background(), "deluxe")
	if !errors.Is(err, errors.ErrCodeInvalidVariant) {
		t.Errorf("RenderIcon(deluxe) error = %v, want INVALID_VARIANT", err)
	}
}

func TestRenderSocial(t *testing.T) {
	cfg := DefaultConfig()
	img, err := NewRunner(cfg, nil).RenderSocial(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 1200 || b.Dy() != 630 {
		t.Fatalf("bounds = %v, want 1200x630", b)
	}

	g, _ := gradient.ParseAll(cfg.Social.Gradient)
	row := g.At(315.0 / 630.0).NRGBA(255)
	got := img.NRGBAAt(280, 315)
	if got == row {
		t.Errorf("pixel (280,315) = %v, want it to differ from the background %v", got, row)
	}
	if got != (gradient.RGB{R: 255, G: 255, B: 255}).NRGBA(255) {
		t.Errorf("pixel (280,315) = %v, want white heart", got)
	}
	if got := img.NRGBAAt(1199, 0); got != g.At(0).NRGBA(255) {
		t.Errorf("top-right pixel = %v, want untouched background", got)
	}
}

func TestGenerateIcons(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "public")
	res, err := NewRunner(testConfig(), nil).GenerateIcons(context.Background(), VariantBasic, dir)
	if err != nil {
		t.Fatalf("GenerateIcons() error: %v", err)
	}
	if res.Variant != VariantBasic {
		t.Errorf("Variant = %q, want %q", res.Variant, VariantBasic)
	}

	var names []string
	for _, f := range res.Files {
		names = append(names, filepath.Base(f.Path))
		if _, err := os.Stat(f.Path); err != nil {
			t.Errorf("stat %s: %v", f.Path, err)
		}
	}
	want := []string{"app-icon-128.png", "favicon.ico", "icon-16.png", "icon-32.png", "icon-64.png"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("files mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateIconsIdempotent(t *testing.T) {
	r := NewRunner(testConfig(), nil)
	dirA, dirB := t.TempDir(), t.TempDir()
	if _, err := r.GenerateIcons(context.Background(), VariantPremium, dirA); err != nil {
		t.Fatal(err)
	}
	if _, err := r.GenerateIcons(context.Background(), VariantPremium, dirB); err != nil {
		t.Fatal(err)
	}
	for _, e := range r.Config.Icons.Derivatives {
		a, _ := os.ReadFile(filepath.Join(dirA, e.File))
		b, _ := os.ReadFile(filepath.Join(dirB, e.File))
		if len(a) == 0 || !bytes.Equal(a, b) {
			t.Errorf("%s is empty or differs between runs", e.File)
		}
	}
}

func TestGenerateSocial(t *testing.T) {
	dir := t.TempDir()
	res, err := NewRunner(testConfig(), nil).GenerateSocial(context.Background(), dir)
	if err != nil {
		t.Fatalf("GenerateSocial() error: %v", err)
	}
	if len(res.Files) != 1 {
		t.Fatalf("GenerateSocial() wrote %d files, want 1", len(res.Files))
	}

	data, err := os.ReadFile(filepath.Join(dir, "og-image.png"))
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 1200 || cfg.Height != 630 {
		t.Errorf("og-image.png is %dx%d, want 1200x630", cfg.Width, cfg.Height)
	}
}

func TestGenerateRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	v := cfg.Variants[VariantPremium]
	v.Gradient = []string{"#f43f5e"}
	cfg.Variants[VariantPremium] = v

	dir := filepath.Join(t.TempDir(), "out")
	_, err := NewRunner(cfg, nil).GenerateIcons(context.Background(), VariantBasic, dir)
	if !errors.Is(err, errors.ErrCodeInvalidColor) {
		t.Fatalf("GenerateIcons() error = %v, want INVALID_COLOR", err)
	}
	if _, statErr := os.Stat(dir); !os.IsNotExist(statErr) {
		t.Error("output directory created despite invalid config")
	}
}

func TestGenerateUsesConfiguredOutDir(t *testing.T) {
	r := NewRunner(testConfig(), nil)
	if got := r.dir(""); got != "public" {
		t.Errorf("dir(\"\") = %q, want %q", got, "public")
	}
	if got := r.dir("elsewhere"); got != "elsewhere" {
		t.Errorf("dir(elsewhere) = %q, want %q", got, "elsewhere")
	}
}

func TestRunnerDuration(t *testing.T) {
	res, err := NewRunner(testConfig(), nil).GenerateIcons(context.Background(), VariantBasic, t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if res.Duration <= 0 || res.Duration > time.Minute {
		t.Errorf("Duration = %v, want a positive elapsed time", res.Duration)
	}
}
