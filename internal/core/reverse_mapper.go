package core

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"dcat-packages/internal/types"
)

// ReverseMapper rebuilds a DCAT dataset from a catalog package. The
// conversion is lossy: extras that only the forward direction understands
// are dropped.
type ReverseMapper struct {
	formats FormatResolver
}

func NewReverseMapper(formats FormatResolver) ReverseMapper {
	return ReverseMapper{formats: formats}
}

func (m ReverseMapper) ToDcat(ctx context.Context, pkg types.Package) types.DcatDataset {
	dataset := types.DcatDataset{
		Title:        pkg.Title,
		Description:  pkg.Notes,
		LandingPage:  pkg.URL,
		Keyword:      make([]string, 0, len(pkg.Tags)),
		Distribution: make([]types.DcatDistribution, 0, len(pkg.Resources)),
	}
	for _, tag := range pkg.Tags {
		dataset.Keyword = append(dataset.Keyword, tag.Name)
	}

	ignored := 0
	for _, extra := range pkg.Extras {
		switch extra.Key {
		case types.ExtraDataIssued:
			dataset.Issued = extra.Value
		case types.ExtraDataModified:
			dataset.Modified = extra.Value
		case types.ExtraLanguage:
			if extra.Value != nil {
				dataset.Language = strings.Split(*extra.Value, ",")
			}
		case types.ExtraPublisherName:
			dataset.Publisher.Name = derefString(extra.Value)
		case types.ExtraPublisherEmail:
			dataset.Publisher.Mbox = derefString(extra.Value)
		case types.ExtraGUID:
			dataset.Identifier = extra.Value
		case types.ExtraLicenseURL:
			// license_name extras are not written back; only the URL form
			// is a DCAT license.
			dataset.License = extra.Value
		default:
			ignored++
		}
	}

	if dataset.Publisher.Name == "" && pkg.Maintainer != "" {
		dataset.Publisher.Name = pkg.Maintainer
		if pkg.MaintainerEmail != "" {
			dataset.Publisher.Mbox = pkg.MaintainerEmail
		}
	}

	for _, resource := range pkg.Resources {
		dataset.Distribution = append(dataset.Distribution, types.DcatDistribution{
			Title:       resource.Name,
			Description: resource.Description,
			Format:      m.formats.ToMimetype(resource.Format),
			ByteSize:    resource.Size,
			AccessURL:   resource.URL,
		})
	}

	log.Ctx(ctx).Debug().
		Str("title", dataset.Title).
		Int("distributions", len(dataset.Distribution)).
		Int("ignored_extras", ignored).
		Msg("package converted to dataset")
	return dataset
}

func derefString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
