package adapters

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"dcat-packages/internal/ports"
	"dcat-packages/internal/types"
)

// RecordReaderAdapter loads DCAT JSON documents and catalog packages from
// the local filesystem.
type RecordReaderAdapter struct{}

func NewRecordReaderAdapter() RecordReaderAdapter {
	return RecordReaderAdapter{}
}

// ReadDataset loads a single DCAT dataset object. Numbers are kept as
// json.Number so byte sizes survive without float rounding.
func (a RecordReaderAdapter) ReadDataset(path string) (types.DcatRecord, error) {
	value, err := readJSON(path)
	if err != nil {
		return nil, err
	}
	record, ok := value.(map[string]any)
	if !ok {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("dataset document must be a JSON object: " + path)
	}
	return types.DcatRecord(record), nil
}

// ReadCatalog loads a data.json style catalog. Both {"dataset": [...]}
// and a bare array of datasets are accepted.
func (a RecordReaderAdapter) ReadCatalog(path string) ([]types.DcatRecord, error) {
	value, err := readJSON(path)
	if err != nil {
		return nil, err
	}
	var items []any
	switch doc := value.(type) {
	case []any:
		items = doc
	case map[string]any:
		datasets, ok := doc["dataset"].([]any)
		if !ok {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("catalog has no \"dataset\" array: " + path)
		}
		items = datasets
	default:
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("catalog must be a JSON object or array: " + path)
	}

	records := make([]types.DcatRecord, 0, len(items))
	for i, item := range items {
		record, ok := item.(map[string]any)
		if !ok {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("catalog dataset %d is not an object: %s", i, path))
		}
		records = append(records, types.DcatRecord(record))
	}
	return records, nil
}

// ReadPackage loads a package written by RecordWriterAdapter. The format
// follows the file extension; anything other than .yaml or .yml is JSON.
func (a RecordReaderAdapter) ReadPackage(path string) (types.Package, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Package{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read package: " + path).
			WithCause(err)
	}
	var pkg types.Package
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &pkg)
	default:
		err = json.Unmarshal(data, &pkg)
	}
	if err != nil {
		return types.Package{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse package: " + path).
			WithCause(err)
	}
	if strings.TrimSpace(pkg.Title) == "" {
		return types.Package{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package missing title: " + path)
	}
	return pkg, nil
}

func readJSON(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read " + path).
			WithCause(err)
	}
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse JSON: " + path).
			WithCause(err)
	}
	return value, nil
}

var _ ports.RecordReaderPort = RecordReaderAdapter{}
