package pipeline

import (
	_ "embed"
	"image"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/ourjourney/iconforge/pkg/errors"
	"github.com/ourjourney/iconforge/pkg/export"
	"github.com/ourjourney/iconforge/pkg/filter"
	"github.com/ourjourney/iconforge/pkg/gradient"
)

//go:embed defaults.toml
var defaultsTOML string

// Variant names shipped in the built-in configuration.
const (
	VariantBasic   = "basic"
	VariantPremium = "premium"
)

// =============================================================================
// Config - Render Parameters
// =============================================================================

// Config gathers every render parameter: icon variants, the social preview,
// the export manifests and the output directory.
type Config struct {
	OutDir   string             `toml:"out_dir"`
	Variants map[string]Variant `toml:"variants"`
	Icons    export.Manifest    `toml:"icons"`
	Social   Social             `toml:"social"`
}

// Variant describes one icon rendering. Optional stages are nil when
// the variant skips them.
type Variant struct {
	Size        int             `toml:"size"`
	Gradient    []string        `toml:"gradient"`
	HeartColor  string          `toml:"heart_color"`
	Background  string          `toml:"background"` // flatten color; empty keeps transparency
	Glow        GlowSpec        `toml:"glow"`
	Heart       HeartSpec       `toml:"heart"`
	Shadow      *ShadowSpec     `toml:"shadow"`
	InnerShadow *ShadowSpec     `toml:"inner_shadow"`
	Sharpen     *filter.Sharpen `toml:"sharpen"`
}

// GlowSpec places concentric glow rings at the canvas center.
type GlowSpec struct {
	Color      string  `toml:"color"`
	MaxRadius  int     `toml:"max_radius"`
	Step       int     `toml:"step"`
	InnerAlpha float64 `toml:"inner_alpha"`
	OuterAlpha float64 `toml:"outer_alpha"`
}

// HeartSpec positions the heart silhouette.
type HeartSpec struct {
	X      int     `toml:"x"`
	Y      int     `toml:"y"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// Center returns the heart's center point.
func (h HeartSpec) Center() image.Point { return image.Pt(h.X, h.Y) }

// ShadowSpec is a black copy of the silhouette, offset and optionally
// blurred. A zero Blur leaves the edge hard.
type ShadowSpec struct {
	OffsetX int     `toml:"offset_x"`
	OffsetY int     `toml:"offset_y"`
	Alpha   int     `toml:"alpha"`
	Blur    float64 `toml:"blur"`
}

// Social describes the social preview image.
type Social struct {
	Width      int             `toml:"width"`
	Height     int             `toml:"height"`
	Gradient   []string        `toml:"gradient"`
	HeartColor string          `toml:"heart_color"`
	TextColor  string          `toml:"text_color"`
	Fonts      []string        `toml:"fonts"`
	Heart      HeartSpec       `toml:"heart"`
	Title      TextSpec        `toml:"title"`
	Subtitle   TextSpec        `toml:"subtitle"`
	Features   FeatureSpec     `toml:"features"`
	Output     export.Manifest `toml:"output"`
}

// TextSpec is one line of text with its top-left corner at (X, Y).
type TextSpec struct {
	Text   string  `toml:"text"`
	Points float64 `toml:"points"`
	X      int     `toml:"x"`
	Y      int     `toml:"y"`
	Alpha  int     `toml:"alpha"`
}

// FeatureSpec is a list of lines stacked Step pixels apart.
type FeatureSpec struct {
	Lines  []string `toml:"lines"`
	Points float64  `toml:"points"`
	X      int      `toml:"x"`
	Y      int      `toml:"y"`
	Step   int      `toml:"step"`
	Alpha  int      `toml:"alpha"`
}

// Spans expands the feature list into one TextSpec per line.
func (f FeatureSpec) Spans() []TextSpec {
	out := make([]TextSpec, len(f.Lines))
	for i, line := range f.Lines {
		out[i] = TextSpec{Text: line, Points: f.Points, X: f.X, Y: f.Y + i*f.Step, Alpha: f.Alpha}
	}
	return out
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	cfg, err := ParseConfig(defaultsTOML)
	if err != nil {
		panic("pipeline: invalid built-in defaults: " + err.Error())
	}
	return cfg
}

// ParseConfig decodes a TOML document into a Config. It does not validate.
func ParseConfig(doc string) (Config, error) {
	var cfg Config
	md, err := toml.Decode(doc, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidInput, "unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}

// VariantNames returns the configured variant names in sorted order.
func (c Config) VariantNames() []string {
	names := make([]string, 0, len(c.Variants))
	for name := range c.Variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Variant looks up a variant by name.
func (c Config) Variant(name string) (Variant, error) {
	v, ok := c.Variants[name]
	if !ok {
		return Variant{}, errors.New(errors.ErrCodeInvalidVariant,
			"unknown variant %q (available: %v)", name, c.VariantNames())
	}
	return v, nil
}

// =============================================================================
// Validation
// =============================================================================

// Validate checks every variant, the social preview and both manifests.
// It runs before any drawing starts.
func (c Config) Validate() error {
	if err := errors.ValidateDirName(c.OutDir); err != nil {
		return err
	}
	if len(c.Variants) == 0 {
		return errors.New(errors.ErrCodeInvalidVariant, "no icon variants configured")
	}
	for _, name := range c.VariantNames() {
		v := c.Variants[name]
		if err := v.Validate(); err != nil {
			return errors.Wrap(errors.GetCode(err), err, "variant %q", name)
		}
		if err := c.Icons.Validate(v.Size, v.Size); err != nil {
			return errors.Wrap(errors.GetCode(err), err, "icon manifest for variant %q", name)
		}
	}
	if err := c.Social.Validate(); err != nil {
		return errors.Wrap(errors.GetCode(err), err, "social preview")
	}
	return nil
}

// Validate checks a single variant.
func (v Variant) Validate() error {
	if err := errors.ValidateSize("icon", v.Size, v.Size); err != nil {
		return err
	}
	if _, err := gradient.ParseAll(v.Gradient); err != nil {
		return err
	}
	if _, err := gradient.ParseHex(v.HeartColor); err != nil {
		return err
	}
	if v.Background != "" {
		if _, err := gradient.ParseHex(v.Background); err != nil {
			return err
		}
	}
	if err := v.Glow.Validate(); err != nil {
		return err
	}
	if err := v.Heart.Validate(); err != nil {
		return err
	}
	if v.Shadow != nil {
		if err := v.Shadow.Validate(); err != nil {
			return errors.Wrap(errors.GetCode(err), err, "shadow")
		}
	}
	if v.InnerShadow != nil {
		if err := v.InnerShadow.Validate(); err != nil {
			return errors.Wrap(errors.GetCode(err), err, "inner shadow")
		}
	}
	if v.Sharpen != nil {
		if err := v.Sharpen.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the glow parameters.
func (g GlowSpec) Validate() error {
	if _, err := gradient.ParseHex(g.Color); err != nil {
		return err
	}
	if g.MaxRadius <= 0 || g.Step <= 0 {
		return errors.New(errors.ErrCodeInvalidRadius,
			"glow radius and step must be positive, got %d and %d", g.MaxRadius, g.Step)
	}
	if err := validateAlpha("glow inner alpha", int(g.InnerAlpha)); err != nil {
		return err
	}
	return validateAlpha("glow outer alpha", int(g.OuterAlpha))
}

// Validate checks the heart size.
func (h HeartSpec) Validate() error {
	if h.Width <= 0 || h.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidDimensions,
			"heart must have positive size, got %vx%v", h.Width, h.Height)
	}
	return nil
}

// Validate checks the shadow parameters. A zero blur is allowed and means
// the shadow is not blurred.
func (s ShadowSpec) Validate() error {
	if err := validateAlpha("shadow alpha", s.Alpha); err != nil {
		return err
	}
	if s.Blur != 0 {
		return filter.ValidateRadius(s.Blur)
	}
	return nil
}

// Validate checks the social preview parameters and its manifest.
func (s Social) Validate() error {
	if err := errors.ValidateSize("social preview", s.Width, s.Height); err != nil {
		return err
	}
	if _, err := gradient.ParseAll(s.Gradient); err != nil {
		return err
	}
	for _, hex := range []string{s.HeartColor, s.TextColor} {
		if _, err := gradient.ParseHex(hex); err != nil {
			return err
		}
	}
	if err := s.Heart.Validate(); err != nil {
		return err
	}
	for _, t := range append([]TextSpec{s.Title, s.Subtitle}, s.Features.Spans()...) {
		if t.Points <= 0 {
			return errors.New(errors.ErrCodeInvalidInput, "text %q: point size must be positive", t.Text)
		}
		if err := validateAlpha("text alpha", t.Alpha); err != nil {
			return err
		}
	}
	return s.Output.Validate(s.Width, s.Height)
}

func validateAlpha(what string, a int) error {
	if a < 0 || a > 255 {
		return errors.New(errors.ErrCodeInvalidInput, "%s must be in [0, 255], got %d", what, a)
	}
	return nil
}
