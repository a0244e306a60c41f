package types

// License is one entry of the license registry.
type License struct {
	ID    string `yaml:"id" json:"id"`
	Title string `yaml:"title" json:"title"`
	URL   string `yaml:"url" json:"url"`
}

// LicenseRegistryFile is the on-disk shape of a license registry.
type LicenseRegistryFile struct {
	Licenses []License `yaml:"licenses" json:"licenses"`
}

// FormatEntry describes one canonical resource format. Mimetype, the
// extensions and the aliases all resolve to Label.
type FormatEntry struct {
	Label      string   `yaml:"label"`
	Mimetype   string   `yaml:"mimetype,omitempty"`
	Extensions []string `yaml:"extensions,omitempty"`
	Aliases    []string `yaml:"aliases,omitempty"`
}

// FormatCatalogFile is the on-disk shape of a format table. Files are
// layered: a later file overrides an earlier one per lookup key.
type FormatCatalogFile struct {
	SchemaVersion string        `yaml:"schema_version"`
	Formats       []FormatEntry `yaml:"formats"`
}
