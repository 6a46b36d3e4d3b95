package pipeline

import (
	"context"
	"image"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ourjourney/iconforge/pkg/export"
	"github.com/ourjourney/iconforge/pkg/layer"
	"github.com/ourjourney/iconforge/pkg/observability"
)

// Runner renders images from a Config and exports them.
//
// The Runner holds no render state between calls: every Generate call
// builds its images from scratch, so runs are independent and repeatable.
type Runner struct {
	Config Config
	Logger *log.Logger
}

// NewRunner creates a runner for cfg. A nil logger discards all output.
func NewRunner(cfg Config, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{Config: cfg, Logger: logger}
}

// Result describes one completed generator run.
type Result struct {
	Variant  string
	Files    []export.File
	Duration time.Duration
}

// GenerateIcons renders the named variant and writes the icon family into
// dir. An empty dir uses Config.OutDir.
func (r *Runner) GenerateIcons(ctx context.Context, variant, dir string) (*Result, error) {
	if err := r.Config.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()
	img, err := r.RenderIcon(ctx, variant)
	if err != nil {
		return nil, err
	}
	return r.writeFiles(ctx, variant, r.dir(dir), r.Config.Icons, img, start)
}

// GenerateSocial renders the social preview and writes it into dir. An
// empty dir uses Config.OutDir.
func (r *Runner) GenerateSocial(ctx context.Context, dir string) (*Result, error) {
	if err := r.Config.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()
	img, err := r.RenderSocial(ctx)
	if err != nil {
		return nil, err
	}
	return r.writeFiles(ctx, SocialVariant, r.dir(dir), r.Config.Social.Output, img, start)
}

func (r *Runner) writeFiles(ctx context.Context, variant, dir string, m export.Manifest, img image.Image, start time.Time) (*Result, error) {
	exportStart := time.Now()
	files, err := export.New(dir, m).Export(ctx, img)
	if err != nil {
		return nil, err
	}
	r.Logger.Info("exported files",
		"variant", variant,
		"files", len(files),
		"dir", dir,
		"duration", time.Since(exportStart))
	return &Result{Variant: variant, Files: files, Duration: time.Since(start)}, nil
}

func (r *Runner) dir(dir string) string {
	if dir == "" {
		return r.Config.OutDir
	}
	return dir
}

// stager runs drawing stages for one variant, reporting each to the
// pipeline hooks and the debug log.
type stager struct {
	ctx     context.Context
	variant string
	logger  *log.Logger
}

func (r *Runner) stager(ctx context.Context, variant string) stager {
	return stager{ctx: ctx, variant: variant, logger: r.Logger}
}

func (s stager) run(stage string, fn func() (*layer.Layer, error)) (*layer.Layer, error) {
	hooks := observability.Pipeline()
	hooks.OnStageStart(s.ctx, s.variant, stage)
	start := time.Now()
	l, err := fn()
	hooks.OnStageComplete(s.ctx, s.variant, stage, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("stage complete", "variant", s.variant, "stage", stage, "duration", time.Since(start))
	return l, nil
}
