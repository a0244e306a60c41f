package adapters

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/frictionlessdata/datapackage-go/datapackage"
	"github.com/frictionlessdata/datapackage-go/validator"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"dcat-packages/internal/ports"
	"dcat-packages/internal/shared"
	"dcat-packages/internal/types"
)

// Frictionless names are restricted to this alphabet.
var frictionlessName = regexp.MustCompile(`^[-a-z0-9._/]+$`)

// DataPackageExportAdapter writes packages as Frictionless Data Package
// descriptors. Only resources with a remote URL are exported; the data
// itself is never fetched.
type DataPackageExportAdapter struct{}

func NewDataPackageExportAdapter() DataPackageExportAdapter {
	return DataPackageExportAdapter{}
}

func (a DataPackageExportAdapter) Export(path string, pkg types.Package) ([]string, error) {
	resources := exportResources(pkg.Resources)
	if len(resources) == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("package has no resources with a remote URL to export")
	}

	descriptor := map[string]any{
		"name":      packageName(pkg),
		"title":     pkg.Title,
		"profile":   "data-package",
		"resources": resources,
	}
	if pkg.Notes != "" {
		descriptor["description"] = pkg.Notes
	}
	if pkg.URL != "" {
		descriptor["homepage"] = pkg.URL
	}
	if guid, ok := pkg.Extra(types.ExtraGUID); ok && guid != nil && *guid != "" {
		descriptor["id"] = *guid
	}
	if len(pkg.Tags) > 0 {
		keywords := make([]any, 0, len(pkg.Tags))
		for _, tag := range pkg.Tags {
			keywords = append(keywords, tag.Name)
		}
		descriptor["keywords"] = keywords
	}
	if license := exportLicense(pkg); license != nil {
		descriptor["licenses"] = []any{license}
	}
	if contributor := exportContributor(pkg); contributor != nil {
		descriptor["contributors"] = []any{contributor}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}
	dp, err := datapackage.New(descriptor, filepath.Dir(path), validator.InMemoryLoader())
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package is not a valid data package: " + pkg.Title).
			WithCause(err)
	}
	if err := dp.SaveDescriptor(path); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write data package descriptor: " + path).
			WithCause(err)
	}
	log.Debug().Str("path", path).Int("resources", len(resources)).Msg("data package written")
	return dp.ResourceNames(), nil
}

func exportResources(resources []types.Resource) []any {
	used := make(map[string]int)
	var out []any
	for _, resource := range resources {
		if !isRemoteURL(resource.URL) {
			log.Debug().Str("resource", resource.Name).Str("url", resource.URL).Msg("resource skipped in export")
			continue
		}
		name := shared.Slugify(resource.Name)
		if name == "" {
			name = "resource"
		}
		used[name]++
		if n := used[name]; n > 1 {
			name = fmt.Sprintf("%s-%d", name, n)
		}
		descriptor := map[string]any{
			"name": name,
			"path": resource.URL,
		}
		if resource.Name != "" {
			descriptor["title"] = resource.Name
		}
		if resource.Description != "" {
			descriptor["description"] = resource.Description
		}
		if resource.Format != "" {
			descriptor["format"] = strings.ToLower(resource.Format)
			if strings.Contains(resource.Format, "/") {
				descriptor["mediatype"] = resource.Format
			}
		}
		if resource.Size != nil {
			descriptor["bytes"] = *resource.Size
		}
		out = append(out, descriptor)
	}
	return out
}

func isRemoteURL(raw string) bool {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || parsed.Host == "" {
		return false
	}
	switch parsed.Scheme {
	case "http", "https", "ftp", "ftps":
		return true
	}
	return false
}

// packageName derives a stable name from the title, falling back to a
// name-based UUID of the dataset identifier when the title has no usable
// characters.
func packageName(pkg types.Package) string {
	if name := shared.Slugify(pkg.Title); name != "" {
		return name
	}
	seed := pkg.URL + "\x00" + pkg.Title
	if guid, ok := pkg.Extra(types.ExtraGUID); ok && guid != nil && *guid != "" {
		seed = *guid
	}
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(seed)).String()
}

func exportLicense(pkg types.Package) map[string]any {
	license := map[string]any{}
	if id := strings.ToLower(pkg.LicenseID); frictionlessName.MatchString(id) {
		license["name"] = id
	}
	if licenseURL, ok := pkg.Extra(types.ExtraLicenseURL); ok && licenseURL != nil && isRemoteURL(*licenseURL) {
		license["path"] = *licenseURL
	}
	if title, ok := pkg.Extra(types.ExtraLicenseName); ok && title != nil && *title != "" {
		license["title"] = *title
	}
	if license["name"] == nil && license["path"] == nil {
		return nil
	}
	return license
}

func exportContributor(pkg types.Package) map[string]any {
	name, email := pkg.Maintainer, pkg.MaintainerEmail
	if publisher, ok := pkg.Extra(types.ExtraPublisherName); ok && publisher != nil && *publisher != "" {
		name = *publisher
		email = ""
		if mbox, ok := pkg.Extra(types.ExtraPublisherEmail); ok && mbox != nil {
			email = *mbox
		}
	}
	if name == "" {
		return nil
	}
	contributor := map[string]any{
		"title": name,
		"role":  "publisher",
	}
	if email = strings.TrimPrefix(email, "mailto:"); email != "" {
		contributor["email"] = email
	}
	return contributor
}

var _ ports.DataPackageExportPort = DataPackageExportAdapter{}
