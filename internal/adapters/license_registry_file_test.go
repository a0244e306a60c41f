package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dcat-packages/internal/types"
)

func TestLicenseRegistryDefaults(t *testing.T) {
	registry, err := NewLicenseRegistryAdapter()
	require.NoError(t, err)

	byID := make(map[string]types.License)
	for _, license := range registry.Licenses() {
		byID[license.ID] = license
	}
	require.Contains(t, byID, "uk-ogl")
	require.Contains(t, byID, "cc-by")
	assert.Equal(t, "Other (Public Domain)", byID["other-pd"].Title)
	assert.Equal(t, "http://www.opendefinition.org/licenses/odc-pddl", byID["odc-pddl"].URL)
}

func TestLicenseRegistryReturnsCopy(t *testing.T) {
	registry, err := NewLicenseRegistryAdapter()
	require.NoError(t, err)
	first := registry.Licenses()
	first[0].ID = "changed"
	assert.NotEqual(t, "changed", registry.Licenses()[0].ID)
}

func TestLoadLicenseRegistry(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "licenses.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[
	{"id": "cc-by", "title": "Creative Commons Attribution", "url": "http://example.org/cc-by", "is_okd_compliant": true},
	{"id": "other-pd", "title": "Other (Public Domain)", "url": ""}
]`), 0644))
	yamlPath := filepath.Join(dir, "licenses.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(`
licenses:
  - id: local
    title: Local Terms
    url: http://example.org/local
`), 0644))

	registry, err := LoadLicenseRegistry(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, []types.License{
		{ID: "cc-by", Title: "Creative Commons Attribution", URL: "http://example.org/cc-by"},
		{ID: "other-pd", Title: "Other (Public Domain)"},
	}, registry.Licenses())

	registry, err = LoadLicenseRegistry(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, []types.License{{ID: "local", Title: "Local Terms", URL: "http://example.org/local"}}, registry.Licenses())
}

func TestLoadLicenseRegistryErrors(t *testing.T) {
	dir := t.TempDir()
	duplicate := filepath.Join(dir, "dup.yaml")
	require.NoError(t, os.WriteFile(duplicate, []byte("- id: a\n- id: a\n"), 0644))
	emptyID := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(emptyID, []byte("- title: No id\n"), 0644))

	_, err := LoadLicenseRegistry(duplicate)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeAlreadyExists, errbuilder.CodeOf(err))

	_, err = LoadLicenseRegistry(emptyID)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))

	_, err = LoadLicenseRegistry(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}
