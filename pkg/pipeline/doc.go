// Package pipeline renders the icon family and the social preview.
//
// A [Config] holds every render parameter. [DefaultConfig] decodes the
// built-in TOML defaults; tests and callers may also build one directly.
// Icon variants are descriptors, not code: "basic" and "premium" run the same
// stages with different parameters.
//
// # Stages
//
// Icons are drawn bottom to top:
//
//  1. background: vertical gradient
//  2. glow: concentric rings at the canvas center
//  3. shadow: offset and optionally blurred silhouette (optional)
//  4. silhouette: the heart
//  5. inner-shadow: faint blurred silhouette (optional)
//
// The composite is then flattened onto an opaque color and sharpened when the
// variant asks for it. The social preview draws background, silhouette and
// text.
//
// # Usage
//
//	runner := pipeline.NewRunner(pipeline.DefaultConfig(), logger)
//	res, err := runner.GenerateIcons(ctx, pipeline.VariantPremium, "")
//	if err != nil {
//	    return err
//	}
//	for _, f := range res.Files {
//	    fmt.Println(f.Path)
//	}
package pipeline
