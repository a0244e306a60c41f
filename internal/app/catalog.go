package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"dcat-packages/internal/core"
	"dcat-packages/internal/types"
)

// ConvertCatalog converts every dataset of a catalog document. A dataset
// that fails conversion is reported and skipped; the others are still
// written.
func (s Service) ConvertCatalog(ctx context.Context, req ConvertCatalogRequest) (ConvertCatalogResult, error) {
	inputPath := strings.TrimSpace(req.InputPath)
	if inputPath == "" {
		return ConvertCatalogResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("catalog path is required")
	}
	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir == "" {
		return ConvertCatalogResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is required")
	}
	records, err := s.Reader.ReadCatalog(inputPath)
	if err != nil {
		return ConvertCatalogResult{}, err
	}

	result := ConvertCatalogResult{Total: len(records)}
	var pkgs []types.Package
	for index, record := range records {
		pkg, err := s.Forward.ToPackage(ctx, record)
		if err != nil {
			if !core.IsConversionError(err) {
				return ConvertCatalogResult{}, err
			}
			failure := DatasetFailure{
				Index:      index,
				Identifier: recordText(record, "identifier"),
				Title:      recordText(record, "title"),
				Message:    err.Error(),
			}
			log.Ctx(ctx).Warn().
				Int("index", failure.Index).
				Str("identifier", failure.Identifier).
				Str("error", failure.Message).
				Msg("dataset skipped")
			result.Failures = append(result.Failures, failure)
			continue
		}
		pkgs = append(pkgs, pkg)
	}

	written, err := s.Writer.WritePackages(outputDir, pkgs, outputFormat(req.Format))
	if err != nil {
		return ConvertCatalogResult{}, err
	}
	result.Written = written
	return result, nil
}

func recordText(record types.DcatRecord, key string) string {
	text, _ := record[key].(string)
	return text
}
