package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"dcat-packages/internal/types"
)

func (s Service) Export(ctx context.Context, req ExportRequest) (ExportResult, error) {
	inputPath := strings.TrimSpace(req.InputPath)
	if inputPath == "" {
		return ExportResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("input path is required")
	}
	outputPath := strings.TrimSpace(req.OutputPath)
	if outputPath == "" {
		return ExportResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output path is required")
	}

	var (
		pkg types.Package
		err error
	)
	if req.FromDataset {
		var converted ToPackageResult
		converted, err = s.ToPackage(ctx, ToPackageRequest{InputPath: inputPath})
		pkg = converted.Package
	} else {
		pkg, err = s.Reader.ReadPackage(inputPath)
	}
	if err != nil {
		return ExportResult{}, err
	}

	names, err := s.Exporter.Export(outputPath, pkg)
	if err != nil {
		return ExportResult{}, err
	}
	return ExportResult{OutputPath: outputPath, Resources: names}, nil
}
