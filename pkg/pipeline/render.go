package pipeline

import (
	"context"
	"image"
	"image/color"
	"time"

	"github.com/ourjourney/iconforge/pkg/curve"
	"github.com/ourjourney/iconforge/pkg/filter"
	"github.com/ourjourney/iconforge/pkg/fonts"
	"github.com/ourjourney/iconforge/pkg/gradient"
	"github.com/ourjourney/iconforge/pkg/layer"
	"github.com/ourjourney/iconforge/pkg/observability"
)

// Stage names, in z-order.
const (
	StageBackground  = "background"
	StageGlow        = "glow"
	StageShadow      = "shadow"
	StageSilhouette  = "silhouette"
	StageInnerShadow = "inner-shadow"
	StageText        = "text"
	StageFlatten     = "flatten"
	StageSharpen     = "sharpen"
)

// SocialVariant is the variant label used for social preview events.
const SocialVariant = "social"

// RenderIcon builds the canonical image for the named variant:
// background, glow, shadow, silhouette and inner shadow composited in that
// order, then flattened and sharpened when the variant asks for it.
func (r *Runner) RenderIcon(ctx context.Context, name string) (*image.NRGBA, error) {
	v, err := r.Config.Variant(name)
	if err != nil {
		return nil, err
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	img, err := r.renderIcon(ctx, name, v)
	observability.Pipeline().OnRenderComplete(ctx, name, v.Size, v.Size, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	r.Logger.Info("rendered icon", "variant", name, "size", v.Size, "duration", time.Since(start))
	return img, nil
}

func (r *Runner) renderIcon(ctx context.Context, name string, v Variant) (*image.NRGBA, error) {
	n := v.Size
	g, _ := gradient.ParseAll(v.Gradient)
	heartColor, _ := gradient.ParseHex(v.HeartColor)
	glowColor, _ := gradient.ParseHex(v.Glow.Color)
	heart := curve.Heart{Center: v.Heart.Center(), Width: v.Heart.Width, Height: v.Heart.Height}.Polygon()

	s := r.stager(ctx, name)

	bg, err := s.run(StageBackground, func() (*layer.Layer, error) {
		return layer.VerticalGradient(StageBackground, n, n, g), nil
	})
	if err != nil {
		return nil, err
	}
	comp := layer.NewCompositor(bg)

	layers := []struct {
		stage string
		skip  bool
		draw  func() (*layer.Layer, error)
	}{
		{StageGlow, false, func() (*layer.Layer, error) {
			return layer.RadialGlow(StageGlow, n, n, layer.Glow{
				Center:     image.Pt(n/2, n/2),
				MaxRadius:  v.Glow.MaxRadius,
				Step:       v.Glow.Step,
				InnerAlpha: v.Glow.InnerAlpha,
				OuterAlpha: v.Glow.OuterAlpha,
				Color:      glowColor,
			}), nil
		}},
		{StageShadow, v.Shadow == nil, func() (*layer.Layer, error) {
			return shadowLayer(StageShadow, n, n, heart, *v.Shadow)
		}},
		{StageSilhouette, false, func() (*layer.Layer, error) {
			return layer.Polygon(StageSilhouette, n, n, heart, heartColor.NRGBA(255)), nil
		}},
		{StageInnerShadow, v.InnerShadow == nil, func() (*layer.Layer, error) {
			return shadowLayer(StageInnerShadow, n, n, heart, *v.InnerShadow)
		}},
	}
	for _, ly := range layers {
		if ly.skip {
			continue
		}
		l, err := s.run(ly.stage, ly.draw)
		if err != nil {
			return nil, err
		}
		if err := comp.Add(l); err != nil {
			return nil, err
		}
	}
	img := comp.Result()

	if v.Background != "" {
		bgColor, _ := gradient.ParseHex(v.Background)
		flat, err := s.run(StageFlatten, func() (*layer.Layer, error) {
			return layer.Wrap(StageFlatten, layer.Flatten(img, bgColor.NRGBA(255))), nil
		})
		if err != nil {
			return nil, err
		}
		img = flat.Image()
	}

	if v.Sharpen != nil {
		sharp, err := s.run(StageSharpen, func() (*layer.Layer, error) {
			out, err := filter.UnsharpMask(img, *v.Sharpen)
			if err != nil {
				return nil, err
			}
			return layer.Wrap(StageSharpen, out), nil
		})
		if err != nil {
			return nil, err
		}
		img = sharp.Image()
	}
	return img, nil
}

// shadowLayer draws a black copy of pts shifted by the shadow offset,
// blurred when sh.Blur is set.
func shadowLayer(name string, w, h int, pts []image.Point, sh ShadowSpec) (*layer.Layer, error) {
	shifted := curve.Offset(pts, sh.OffsetX, sh.OffsetY)
	l := layer.Polygon(name, w, h, shifted, color.NRGBA{A: uint8(sh.Alpha)})
	if sh.Blur == 0 {
		return l, nil
	}
	return filter.GaussianBlur(l, sh.Blur)
}

// RenderSocial builds the social preview: gradient background, heart and
// text. Missing fonts fall back to the built-in bitmap face.
func (r *Runner) RenderSocial(ctx context.Context) (*image.NRGBA, error) {
	cfg := r.Config.Social
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	img, err := r.renderSocial(ctx, cfg)
	observability.Pipeline().OnRenderComplete(ctx, SocialVariant, cfg.Width, cfg.Height, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	r.Logger.Info("rendered social preview", "width", cfg.Width, "height", cfg.Height, "duration", time.Since(start))
	return img, nil
}

func (r *Runner) renderSocial(ctx context.Context, cfg Social) (*image.NRGBA, error) {
	w, h := cfg.Width, cfg.Height
	g, _ := gradient.ParseAll(cfg.Gradient)
	heartColor, _ := gradient.ParseHex(cfg.HeartColor)
	textColor, _ := gradient.ParseHex(cfg.TextColor)

	s := r.stager(ctx, SocialVariant)

	bg, err := s.run(StageBackground, func() (*layer.Layer, error) {
		return layer.VerticalGradient(StageBackground, w, h, g), nil
	})
	if err != nil {
		return nil, err
	}
	comp := layer.NewCompositor(bg)

	heart, err := s.run(StageSilhouette, func() (*layer.Layer, error) {
		pts := curve.Heart{Center: cfg.Heart.Center(), Width: cfg.Heart.Width, Height: cfg.Heart.Height}.Polygon()
		return layer.Polygon(StageSilhouette, w, h, pts, heartColor.NRGBA(255)), nil
	})
	if err != nil {
		return nil, err
	}
	if err := comp.Add(heart); err != nil {
		return nil, err
	}

	text, err := s.run(StageText, func() (*layer.Layer, error) {
		return layer.Text(StageText, w, h, r.spans(cfg, textColor)), nil
	})
	if err != nil {
		return nil, err
	}
	if err := comp.Add(text); err != nil {
		return nil, err
	}
	return comp.Result(), nil
}

// spans resolves a face per distinct point size and lays out the title,
// subtitle and feature lines.
func (r *Runner) spans(cfg Social, c gradient.RGB) []layer.Span {
	faces := map[float64]fonts.Face{}
	face := func(points float64) fonts.Face {
		f, ok := faces[points]
		if !ok {
			f = fonts.Resolve(cfg.Fonts, points)
			faces[points] = f
			if f.Fallback {
				r.Logger.Debug("using fallback font", "points", points)
			} else {
				r.Logger.Debug("resolved font", "path", f.Path, "points", points)
			}
		}
		return f
	}

	texts := append([]TextSpec{cfg.Title, cfg.Subtitle}, cfg.Features.Spans()...)
	out := make([]layer.Span, 0, len(texts))
	for _, t := range texts {
		out = append(out, layer.Span{
			Text:  t.Text,
			Face:  face(t.Points),
			Pos:   image.Pt(t.X, t.Y),
			Color: c.NRGBA(uint8(t.Alpha)),
		})
	}
	return out
}
