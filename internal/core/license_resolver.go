package core

import (
	"strings"

	"dcat-packages/internal/ports"
)

const (
	// Every version of the UK Open Government Licence lives under this
	// prefix and maps to the same register entry.
	oglURIPrefix = "http://www.nationalarchives.gov.uk/doc/open-government-licence/"
	oglLicenseID = "uk-ogl"
)

// LicenseResolver matches license URIs and titles against a read-only
// license registry.
type LicenseResolver struct {
	registry ports.LicenseRegistryPort
}

func NewLicenseResolver(registry ports.LicenseRegistryPort) LicenseResolver {
	return LicenseResolver{registry: registry}
}

// FindByURI returns the id of the registry entry whose URL equals uri.
func (r LicenseResolver) FindByURI(uri string) (string, bool) {
	for _, license := range r.registry.Licenses() {
		if license.URL == uri {
			return license.ID, true
		}
	}
	if strings.HasPrefix(uri, oglURIPrefix) {
		return oglLicenseID, true
	}
	return "", false
}

// FindByTitle returns the id of the registry entry whose title equals
// title, ignoring case.
func (r LicenseResolver) FindByTitle(title string) (string, bool) {
	wanted := strings.ToLower(title)
	for _, license := range r.registry.Licenses() {
		if strings.ToLower(license.Title) == wanted {
			return license.ID, true
		}
	}
	return "", false
}
