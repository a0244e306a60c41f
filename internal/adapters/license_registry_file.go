package adapters

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"dcat-packages/internal/ports"
	"dcat-packages/internal/types"
)

//go:embed defaults/licenses.yaml
var defaultLicenses []byte

// LicenseRegistryAdapter serves a fixed license list loaded once at
// startup.
type LicenseRegistryAdapter struct {
	licenses []types.License
}

// NewLicenseRegistryAdapter returns the built-in license list.
func NewLicenseRegistryAdapter() (LicenseRegistryAdapter, error) {
	licenses, err := parseLicenses(defaultLicenses, "builtin:licenses.yaml", yaml.Unmarshal)
	if err != nil {
		return LicenseRegistryAdapter{}, err
	}
	return LicenseRegistryAdapter{licenses: licenses}, nil
}

// LoadLicenseRegistry reads a registry file that replaces the built-in
// list. The file is YAML or JSON and holds either a bare list of licenses
// or a "licenses" key.
func LoadLicenseRegistry(path string) (LicenseRegistryAdapter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return LicenseRegistryAdapter{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read license registry: " + path).
			WithCause(err)
	}
	unmarshal := yaml.Unmarshal
	if strings.EqualFold(filepath.Ext(path), ".json") {
		unmarshal = json.Unmarshal
	}
	licenses, err := parseLicenses(data, path, unmarshal)
	if err != nil {
		return LicenseRegistryAdapter{}, err
	}
	log.Debug().Str("path", path).Int("licenses", len(licenses)).Msg("license registry loaded")
	return LicenseRegistryAdapter{licenses: licenses}, nil
}

func parseLicenses(data []byte, source string, unmarshal func([]byte, any) error) ([]types.License, error) {
	var licenses []types.License
	trimmed := bytes.TrimSpace(data)
	if bytes.HasPrefix(trimmed, []byte("[")) || bytes.HasPrefix(trimmed, []byte("-")) {
		if err := unmarshal(trimmed, &licenses); err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to parse license registry: " + source).
				WithCause(err)
		}
	} else {
		var file types.LicenseRegistryFile
		if err := unmarshal(trimmed, &file); err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to parse license registry: " + source).
				WithCause(err)
		}
		licenses = file.Licenses
	}

	seen := make(map[string]struct{}, len(licenses))
	for i := range licenses {
		licenses[i].ID = strings.TrimSpace(licenses[i].ID)
		id := licenses[i].ID
		if id == "" {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("license entry has empty id in " + source)
		}
		if _, dup := seen[id]; dup {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg("duplicate license id '" + id + "' in " + source)
		}
		seen[id] = struct{}{}
	}
	return licenses, nil
}

func (a LicenseRegistryAdapter) Licenses() []types.License {
	return slices.Clone(a.licenses)
}

var _ ports.LicenseRegistryPort = LicenseRegistryAdapter{}
