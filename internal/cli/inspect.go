package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"dcat-packages/internal/app"
)

func newInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <package.json|package.yaml>",
		Short: "Summarize a converted package",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runInspect(args[0])
		},
	}
}

func runInspect(input string) error {
	service, err := newAppService()
	if err != nil {
		return err
	}
	result, err := service.Inspect(app.InspectRequest{InputPath: input})
	if err != nil {
		return err
	}

	license := result.LicenseID
	if license == "" {
		license = "(none)"
	}
	fmt.Printf("title: %s\n", result.Title)
	fmt.Printf("license: %s\n", license)
	fmt.Printf("tags: %d\n", result.TagCount)
	fmt.Printf("extras: %d\n", result.ExtraCount)
	fmt.Println("resources by type:")
	for _, entry := range result.ResourceTypes {
		fmt.Printf("- %s: %d\n", entry.Name, entry.Count)
	}
	fmt.Println("resources by format:")
	for _, entry := range result.ResourceFormats {
		fmt.Printf("- %s: %d\n", entry.Name, entry.Count)
	}
	return nil
}
