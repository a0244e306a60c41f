package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"dcat-packages/internal/types"
)

// ToPackage converts a single DCAT dataset document. Nothing is written
// unless the whole conversion succeeds.
func (s Service) ToPackage(ctx context.Context, req ToPackageRequest) (ToPackageResult, error) {
	inputPath := strings.TrimSpace(req.InputPath)
	if inputPath == "" {
		return ToPackageResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("dataset path is required")
	}
	record, err := s.Reader.ReadDataset(inputPath)
	if err != nil {
		return ToPackageResult{}, err
	}
	pkg, err := s.Forward.ToPackage(ctx, record)
	if err != nil {
		return ToPackageResult{}, err
	}
	outputPath := strings.TrimSpace(req.OutputPath)
	if outputPath != "" {
		if err := s.Writer.WritePackage(outputPath, pkg, outputFormat(req.Format)); err != nil {
			return ToPackageResult{}, err
		}
	}
	return ToPackageResult{Package: pkg, OutputPath: outputPath}, nil
}

// ToDcat converts a package file back into a DCAT dataset.
func (s Service) ToDcat(ctx context.Context, req ToDcatRequest) (ToDcatResult, error) {
	inputPath := strings.TrimSpace(req.InputPath)
	if inputPath == "" {
		return ToDcatResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package path is required")
	}
	pkg, err := s.Reader.ReadPackage(inputPath)
	if err != nil {
		return ToDcatResult{}, err
	}
	dataset := s.Reverse.ToDcat(ctx, pkg)
	outputPath := strings.TrimSpace(req.OutputPath)
	if outputPath != "" {
		if err := s.Writer.WriteDataset(outputPath, dataset); err != nil {
			return ToDcatResult{}, err
		}
	}
	return ToDcatResult{Dataset: dataset, OutputPath: outputPath}, nil
}

func outputFormat(format types.OutputFormat) types.OutputFormat {
	if format == "" {
		return types.OutputFormatJSON
	}
	return format
}
