package e2e

import (
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dcat-packages/tests/testutil"
)

func runCLI(t *testing.T, args ...string) ([]byte, error) {
	t.Helper()
	cmd := exec.Command("go", append([]string{"run", "./cmd/dcat-packages"}, args...)...)
	cmd.Dir = testutil.RepoRoot(t)
	cmd.Env = append(os.Environ(), "GO111MODULE=on")
	return cmd.CombinedOutput()
}

func TestToPackageCommandE2E(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "package.json")
	out, err := runCLI(t, "to-package", "fixtures/dataset.json", "--output", outPath)
	require.NoError(t, err, string(out))

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var pkg map[string]any
	require.NoError(t, json.Unmarshal(content, &pkg))
	assert.Equal(t, "Air Quality Monitoring", pkg["title"])
	assert.Equal(t, "cc-by", pkg["license_id"])
}

func TestConvertCatalogCommandE2E(t *testing.T) {
	outDir := t.TempDir()
	out, err := runCLI(t, "convert-catalog", "fixtures/data.json", "--output", outDir, "--format", "yaml")
	require.NoError(t, err, string(out))
	assert.Contains(t, string(out), "datasets: 5 converted: 3 failed: 2")
	require.FileExists(t, filepath.Join(outDir, "000-road-safety-data.yaml"))
	require.FileExists(t, filepath.Join(outDir, "001-street-trees.yaml"))
	require.FileExists(t, filepath.Join(outDir, "002-flood-zones.yaml"))

	out, err = runCLI(t, "convert-catalog", "fixtures/data.json", "--output", t.TempDir(), "--strict")
	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr), string(out))
	assert.NotZero(t, exitErr.ExitCode())
	assert.Contains(t, string(out), "2 of 5 datasets could not be converted")
}

func TestExportCommandE2E(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "datapackage.json")
	out, err := runCLI(t, "export", "fixtures/dataset.json", "--from-dataset", "--output", outPath)
	require.NoError(t, err, string(out))
	require.FileExists(t, outPath)
	assert.Contains(t, string(out), "readings-01-2020-12-2020")
}
