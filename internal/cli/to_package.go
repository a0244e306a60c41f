package cli

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"dcat-packages/internal/adapters"
	"dcat-packages/internal/app"
)

type toPackageOptions struct {
	Output string
	Format string
}

func newToPackageCommand() *cobra.Command {
	opts := toPackageOptions{}
	cmd := &cobra.Command{
		Use:   "to-package <dataset.json>",
		Short: "Convert a DCAT dataset into a catalog package",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindCommandFlags(cmd, configFlag{key: "output_format", flag: "format"})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToPackage(cmd.Context(), cmd, args[0], opts)
		},
	}
	cmd.Flags().StringVar(&opts.Output, "output", adapters.StdoutPath, "Package output path (- for stdout)")
	cmd.Flags().StringVar(&opts.Format, "format", "json", "Package output format (json|yaml)")
	return cmd
}

func runToPackage(ctx context.Context, cmd *cobra.Command, input string, opts toPackageOptions) error {
	format, err := parseOutputFormat(resolveString(cmd, opts.Format, "output_format", "format"))
	if err != nil {
		return err
	}
	service, err := newAppService()
	if err != nil {
		return err
	}
	result, err := service.ToPackage(ctx, app.ToPackageRequest{
		InputPath:  input,
		OutputPath: opts.Output,
		Format:     format,
	})
	if err != nil {
		return err
	}
	log.Info().
		Str("title", result.Package.Title).
		Int("resources", len(result.Package.Resources)).
		Str("output", result.OutputPath).
		Msg("package written")
	return nil
}
