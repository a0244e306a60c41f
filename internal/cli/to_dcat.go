package cli

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"dcat-packages/internal/adapters"
	"dcat-packages/internal/app"
)

type toDcatOptions struct {
	Output string
}

func newToDcatCommand() *cobra.Command {
	opts := toDcatOptions{}
	cmd := &cobra.Command{
		Use:   "to-dcat <package.json|package.yaml>",
		Short: "Convert a catalog package back into a DCAT dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToDcat(cmd.Context(), args[0], opts)
		},
	}
	cmd.Flags().StringVar(&opts.Output, "output", adapters.StdoutPath, "Dataset output path (- for stdout)")
	return cmd
}

func runToDcat(ctx context.Context, input string, opts toDcatOptions) error {
	service, err := newAppService()
	if err != nil {
		return err
	}
	result, err := service.ToDcat(ctx, app.ToDcatRequest{
		InputPath:  input,
		OutputPath: opts.Output,
	})
	if err != nil {
		return err
	}
	log.Info().
		Str("title", result.Dataset.Title).
		Int("distributions", len(result.Dataset.Distribution)).
		Str("output", result.OutputPath).
		Msg("dataset written")
	return nil
}
