package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"dcat-packages/internal/app"
)

func newFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats <hint>...",
		Short: "Show how format names, mimetypes or extensions resolve",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runFormats(args)
		},
	}
}

func runFormats(hints []string) error {
	service, err := newAppService()
	if err != nil {
		return err
	}
	result, err := service.Formats(app.FormatsRequest{Hints: hints})
	if err != nil {
		return err
	}
	for _, resolution := range result.Resolutions {
		status := "known"
		if !resolution.Known {
			status = "unknown"
		}
		fmt.Printf("%s -> %s (%s) [%s]\n", resolution.Hint, resolution.Label, resolution.Mimetype, status)
	}
	return nil
}
