package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dcat-packages/internal/core"
	"dcat-packages/internal/types"
)

const roadsDataset = `{
  "title": "Road casualties",
  "description": "Casualties by year",
  "landingPage": "http://example.org/roads",
  "identifier": "0e2f1b",
  "issued": "2014-01-01",
  "keyword": ["roads", "safety"],
  "license": "http://reference.data.gov.uk/id/open-government-licence",
  "publisher": {"name": "DfT", "mbox": "dft@example.org"},
  "distribution": [
    {"title": "Casualties", "downloadURL": "http://example.org/c.csv", "mediaType": "text/csv", "byteSize": "1024", "temporal": "2010-01-01/2013-12-31"}
  ]
}`

func writeFixture(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func newTestService(t *testing.T) Service {
	t.Helper()
	service, err := NewService(ServiceConfig{})
	require.NoError(t, err)
	return service
}

func TestToPackageApp(t *testing.T) {
	input := writeFixture(t, "dataset.json", roadsDataset)
	output := filepath.Join(t.TempDir(), "out", "package.yaml")

	service := newTestService(t)
	result, err := service.ToPackage(t.Context(), ToPackageRequest{
		InputPath:  input,
		OutputPath: output,
		Format:     types.OutputFormatYAML,
	})
	require.NoError(t, err)

	pkg := result.Package
	assert.Equal(t, "Road casualties", pkg.Title)
	assert.Equal(t, "uk-ogl", pkg.LicenseID)
	assert.Equal(t, []types.Tag{{Name: "roads"}, {Name: "safety"}}, pkg.Tags)
	require.Len(t, pkg.Resources, 2)
	assert.Equal(t, "Casualties (01/01/2010-31/12/2013)", pkg.Resources[0].Name)
	assert.Equal(t, "01/01/2010", pkg.Resources[0].Date)
	assert.Equal(t, "CSV", pkg.Resources[0].Format)
	require.NotNil(t, pkg.Resources[0].Size)
	assert.Equal(t, int64(1024), *pkg.Resources[0].Size)
	assert.Equal(t, "Landing page", pkg.Resources[1].Name)

	written, err := service.Reader.ReadPackage(output)
	require.NoError(t, err)
	if diff := cmp.Diff(pkg, written); diff != "" {
		t.Fatalf("unexpected written package (-want +got):\n%s", diff)
	}
}

func TestToPackageAppConversionError(t *testing.T) {
	input := writeFixture(t, "dataset.json", `{"description": "no title"}`)
	output := filepath.Join(t.TempDir(), "package.json")

	_, err := newTestService(t).ToPackage(t.Context(), ToPackageRequest{InputPath: input, OutputPath: output})
	require.Error(t, err)
	assert.True(t, core.IsConversionError(err))
	assert.EqualError(t, err, "Dataset does not have a title")
	assert.NoFileExists(t, output)
}

func TestToPackageAppRequiresInput(t *testing.T) {
	_, err := newTestService(t).ToPackage(t.Context(), ToPackageRequest{})
	require.Error(t, err)
}

func TestToDcatApp(t *testing.T) {
	input := writeFixture(t, "dataset.json", roadsDataset)
	service := newTestService(t)
	packagePath := filepath.Join(t.TempDir(), "package.json")
	_, err := service.ToPackage(t.Context(), ToPackageRequest{InputPath: input, OutputPath: packagePath})
	require.NoError(t, err)

	output := filepath.Join(t.TempDir(), "dataset.json")
	result, err := service.ToDcat(t.Context(), ToDcatRequest{InputPath: packagePath, OutputPath: output})
	require.NoError(t, err)
	assert.Equal(t, "Road casualties", result.Dataset.Title)
	assert.Equal(t, types.StringPtr("0e2f1b"), result.Dataset.Identifier)
	assert.Equal(t, types.StringPtr("http://reference.data.gov.uk/id/open-government-licence"), result.Dataset.License)
	assert.Equal(t, types.DcatPublisher{Name: "DfT", Mbox: "dft@example.org"}, result.Dataset.Publisher)
	require.Len(t, result.Dataset.Distribution, 2)
	assert.Equal(t, "text/csv", result.Dataset.Distribution[0].Format)
	assert.FileExists(t, output)
}
