package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"dcat-packages/internal/app"
)

type exportOptions struct {
	Output      string
	FromDataset bool
}

func newExportCommand() *cobra.Command {
	opts := exportOptions{}
	cmd := &cobra.Command{
		Use:   "export <package-or-dataset>",
		Short: "Export a package as a Frictionless Data Package descriptor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.Context(), args[0], opts)
		},
	}
	cmd.Flags().StringVar(&opts.Output, "output", "datapackage.json", "Descriptor output path")
	cmd.Flags().BoolVar(&opts.FromDataset, "from-dataset", false, "Treat the input as a DCAT dataset and convert it first")
	return cmd
}

func runExport(ctx context.Context, input string, opts exportOptions) error {
	service, err := newAppService()
	if err != nil {
		return err
	}
	result, err := service.Export(ctx, app.ExportRequest{
		InputPath:   input,
		OutputPath:  opts.Output,
		FromDataset: opts.FromDataset,
	})
	if err != nil {
		return err
	}
	fmt.Printf("wrote data package: %s\n", result.OutputPath)
	fmt.Printf("resources: %s\n", strings.Join(result.Resources, ", "))
	return nil
}
