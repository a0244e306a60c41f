package adapters

import (
	_ "embed"
	"os"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"dcat-packages/internal/ports"
	"dcat-packages/internal/shared"
	"dcat-packages/internal/types"
)

//go:embed defaults/formats.yaml
var defaultFormats []byte

const defaultFormatsLayer = "builtin:formats.yaml"

// FormatCatalogAdapter implements FormatCatalogPort using layered
// formats.yaml files. The built-in table is always the first layer; each
// call to LoadCatalog merges another file on top, later entries winning
// per lookup key.
type FormatCatalogAdapter struct {
	// labels maps every normalized label, mimetype, extension and alias to
	// its canonical label.
	labels map[string]string

	// mimetypes maps a normalized label to its representative mimetype.
	mimetypes map[string]string

	// layers tracks load order for provenance.
	layers []string
}

// NewFormatCatalogAdapter returns a catalog seeded with the built-in
// format table.
func NewFormatCatalogAdapter() (*FormatCatalogAdapter, error) {
	a := &FormatCatalogAdapter{
		labels:    make(map[string]string),
		mimetypes: make(map[string]string),
	}
	if err := a.merge(defaultFormats, defaultFormatsLayer); err != nil {
		return nil, err
	}
	return a, nil
}

// LoadCatalog reads a formats.yaml file and merges its entries.
func (a *FormatCatalogAdapter) LoadCatalog(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read format catalog: " + path).
			WithCause(err)
	}
	return a.merge(data, path)
}

func (a *FormatCatalogAdapter) merge(data []byte, source string) error {
	var catalog types.FormatCatalogFile
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse format catalog: " + source).
			WithCause(err)
	}
	if catalog.SchemaVersion == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("format catalog missing schema_version: " + source)
	}

	for _, entry := range catalog.Formats {
		label := strings.TrimSpace(entry.Label)
		if label == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("format entry has empty label in " + source)
		}
		keys := []string{label, entry.Mimetype}
		keys = append(keys, entry.Extensions...)
		keys = append(keys, entry.Aliases...)
		for _, key := range keys {
			normalized := shared.NormalizeKey(key)
			if normalized == "" {
				continue
			}
			if previous, exists := a.labels[normalized]; exists && previous != label {
				log.Debug().
					Str("key", normalized).
					Str("previous", previous).
					Str("label", label).
					Str("layer", source).
					Msg("format key overridden")
			}
			a.labels[normalized] = label
		}
		if mimetype := strings.TrimSpace(entry.Mimetype); mimetype != "" {
			a.mimetypes[shared.NormalizeKey(label)] = mimetype
		}
	}

	a.layers = append(a.layers, source)
	log.Debug().
		Str("path", source).
		Int("formats", len(catalog.Formats)).
		Int("keys", len(a.labels)).
		Msg("format catalog layer loaded")
	return nil
}

func (a *FormatCatalogAdapter) Lookup(hint string) (string, bool) {
	label, ok := a.labels[shared.NormalizeKey(hint)]
	return label, ok
}

func (a *FormatCatalogAdapter) Mimetype(label string) (string, bool) {
	mimetype, ok := a.mimetypes[shared.NormalizeKey(label)]
	return mimetype, ok
}

// Entries lists the canonical labels with their mimetypes, sorted by
// label.
func (a *FormatCatalogAdapter) Entries() []types.FormatEntry {
	seen := make(map[string]struct{})
	var entries []types.FormatEntry
	for _, label := range a.labels {
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		mimetype, _ := a.Mimetype(label)
		entries = append(entries, types.FormatEntry{Label: label, Mimetype: mimetype})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Label < entries[j].Label
	})
	return entries
}

// Layers returns the sources merged so far, in load order.
func (a *FormatCatalogAdapter) Layers() []string {
	return append([]string(nil), a.layers...)
}

var _ ports.FormatCatalogPort = (*FormatCatalogAdapter)(nil)
