package adapters

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"dcat-packages/internal/ports"
	"dcat-packages/internal/shared"
	"dcat-packages/internal/types"
)

// RecordWriterAdapter persists packages and datasets as JSON or YAML
// files.
type RecordWriterAdapter struct{}

func NewRecordWriterAdapter() RecordWriterAdapter {
	return RecordWriterAdapter{}
}

func (a RecordWriterAdapter) WritePackage(path string, pkg types.Package, format types.OutputFormat) error {
	content, err := encodeRecord(pkg, format)
	if err != nil {
		return err
	}
	return writeFile(path, content)
}

// WritePackages writes one file per package into dir and returns the paths
// in input order. File names come from the package title, suffixed with
// the position so that equal titles do not collide.
func (a RecordWriterAdapter) WritePackages(dir string, pkgs []types.Package, format types.OutputFormat) ([]string, error) {
	if dir == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is required")
	}
	paths := make([]string, 0, len(pkgs))
	for i, pkg := range pkgs {
		name := shared.Slugify(pkg.Title)
		if name == "" {
			name = "package"
		}
		path := filepath.Join(dir, fmt.Sprintf("%03d-%s.%s", i, name, extensionFor(format)))
		if err := a.WritePackage(path, pkg, format); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func (a RecordWriterAdapter) WriteDataset(path string, dataset types.DcatDataset) error {
	content, err := encodeRecord(dataset, types.OutputFormatJSON)
	if err != nil {
		return err
	}
	return writeFile(path, content)
}

func encodeRecord(value any, format types.OutputFormat) ([]byte, error) {
	var (
		content []byte
		err     error
	)
	switch format {
	case types.OutputFormatYAML:
		content, err = yaml.Marshal(value)
	case types.OutputFormatJSON, "":
		var buf bytes.Buffer
		encoder := json.NewEncoder(&buf)
		encoder.SetEscapeHTML(false)
		encoder.SetIndent("", "  ")
		err = encoder.Encode(value)
		content = buf.Bytes()
	default:
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unsupported output format: " + string(format))
	}
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode record").
			WithCause(err)
	}
	return content, nil
}

func extensionFor(format types.OutputFormat) string {
	if format == types.OutputFormatYAML {
		return "yaml"
	}
	return "json"
}

// StdoutPath makes a writer print to standard output instead of a file.
const StdoutPath = "-"

func writeFile(path string, content []byte) error {
	if path == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output path is required")
	}
	if path == StdoutPath {
		if _, err := os.Stdout.Write(content); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to write to stdout").
				WithCause(err)
		}
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write " + path).
			WithCause(err)
	}
	return nil
}

var _ ports.RecordWriterPort = RecordWriterAdapter{}
