package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ourjourney/iconforge/pkg/pipeline"
)

func (c *CLI) iconCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "icon",
		Short: "Generate the basic app icon, favicons and favicon.ico",
		Long: `Generate the basic app icon family: a 1024x1024 canonical PNG, PNG
derivatives at 16, 32, 180, 192 and 512 pixels, and a 16x16 favicon.ico.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runIcons(cmd.Context(), pipeline.VariantBasic)
		},
	}
}

func (c *CLI) premiumIconCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "premium-icon",
		Short: "Generate the premium app icon, favicons and favicon.ico",
		Long: `Generate the premium app icon family. The premium variant adds a
three-color gradient, a blurred drop shadow, an inner shadow and a final
sharpening pass.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runIcons(cmd.Context(), pipeline.VariantPremium)
		},
	}
}

func (c *CLI) ogImageCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "og-image",
		Short: "Generate the 1200x630 social preview image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runSocial(cmd.Context())
		},
	}
}

func (c *CLI) allCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Generate the premium icon family and the social preview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.runIcons(cmd.Context(), pipeline.VariantPremium); err != nil {
				return err
			}
			return c.runSocial(cmd.Context())
		},
	}
}

func (c *CLI) runIcons(ctx context.Context, variant string) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	logger.Info("generating icons", "variant", variant)

	res, err := c.newRunner().GenerateIcons(ctx, variant, "")
	if err != nil {
		return fmt.Errorf("generate %s icons: %w", variant, err)
	}

	prog.done(fmt.Sprintf("Generated %s icons", variant))
	printResult(c.Out, fmt.Sprintf("Generated %s app icons", variant), c.Config.OutDir, res)
	return nil
}

func (c *CLI) runSocial(ctx context.Context) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	logger.Info("generating social preview")

	res, err := c.newRunner().GenerateSocial(ctx, "")
	if err != nil {
		return fmt.Errorf("generate social preview: %w", err)
	}

	prog.done("Generated social preview")
	printResult(c.Out, "Generated social preview", c.Config.OutDir, res)
	return nil
}
