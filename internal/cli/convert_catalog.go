package cli

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"

	"dcat-packages/internal/app"
)

type convertCatalogOptions struct {
	OutputDir string
	Format    string
	Strict    bool
}

func newConvertCatalogCommand() *cobra.Command {
	opts := convertCatalogOptions{}
	cmd := &cobra.Command{
		Use:   "convert-catalog <data.json>",
		Short: "Convert every dataset of a DCAT catalog into package files",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindCommandFlags(cmd,
				configFlag{key: "output", flag: "output"},
				configFlag{key: "output_format", flag: "format"},
				configFlag{key: "strict", flag: "strict"},
			)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvertCatalog(cmd.Context(), cmd, args[0], opts)
		},
	}
	cmd.Flags().StringVar(&opts.OutputDir, "output", "packages", "Output directory")
	cmd.Flags().StringVar(&opts.Format, "format", "json", "Package output format (json|yaml)")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Fail when any dataset could not be converted")
	return cmd
}

func runConvertCatalog(ctx context.Context, cmd *cobra.Command, input string, opts convertCatalogOptions) error {
	format, err := parseOutputFormat(resolveString(cmd, opts.Format, "output_format", "format"))
	if err != nil {
		return err
	}
	service, err := newAppService()
	if err != nil {
		return err
	}
	result, err := service.ConvertCatalog(ctx, app.ConvertCatalogRequest{
		InputPath: input,
		OutputDir: resolveString(cmd, opts.OutputDir, "output", "output"),
		Format:    format,
	})
	if err != nil {
		return err
	}

	fmt.Printf("datasets: %d converted: %d failed: %d\n", result.Total, len(result.Written), len(result.Failures))
	for _, path := range result.Written {
		fmt.Printf("- %s\n", path)
	}
	for _, failure := range result.Failures {
		fmt.Printf("! #%d %s: %s\n", failure.Index, failureName(failure), failure.Message)
	}
	if len(result.Failures) > 0 && resolveBool(cmd, opts.Strict, "strict", "strict") {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("%d of %d datasets could not be converted", len(result.Failures), result.Total))
	}
	return nil
}

func failureName(failure app.DatasetFailure) string {
	switch {
	case failure.Identifier != "":
		return failure.Identifier
	case failure.Title != "":
		return failure.Title
	default:
		return "(untitled)"
	}
}
