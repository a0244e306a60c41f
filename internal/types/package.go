package types

// Package is the flat catalog record produced from a DCAT dataset.
type Package struct {
	Title           string     `json:"title" yaml:"title"`
	Notes           string     `json:"notes,omitempty" yaml:"notes,omitempty"`
	URL             string     `json:"url,omitempty" yaml:"url,omitempty"`
	Tags            []Tag      `json:"tags" yaml:"tags"`
	Extras          []Extra    `json:"extras" yaml:"extras"`
	LicenseID       string     `json:"license_id,omitempty" yaml:"license_id,omitempty"`
	Resources       []Resource `json:"resources" yaml:"resources"`
	Maintainer      string     `json:"maintainer,omitempty" yaml:"maintainer,omitempty"`
	MaintainerEmail string     `json:"maintainer_email,omitempty" yaml:"maintainer_email,omitempty"`
}

type Tag struct {
	Name string `json:"name" yaml:"name"`
}

// Extra is a free-form key/value slot. Value is nil when the source field
// was absent but the key is always emitted.
type Extra struct {
	Key   string  `json:"key" yaml:"key"`
	Value *string `json:"value" yaml:"value"`
}

type Resource struct {
	Name         string       `json:"name" yaml:"name"`
	Description  string       `json:"description,omitempty" yaml:"description,omitempty"`
	URL          string       `json:"url" yaml:"url"`
	Format       string       `json:"format,omitempty" yaml:"format,omitempty"`
	Size         *int64       `json:"size,omitempty" yaml:"size,omitempty"`
	Date         string       `json:"date,omitempty" yaml:"date,omitempty"`
	ResourceType ResourceType `json:"resource_type,omitempty" yaml:"resource_type,omitempty"`
}

// Extra returns the value of the first extra with the given key.
func (p Package) Extra(key string) (*string, bool) {
	for _, extra := range p.Extras {
		if extra.Key == key {
			return extra.Value, true
		}
	}
	return nil, false
}

// StringPtr returns a pointer to a copy of value.
func StringPtr(value string) *string {
	return &value
}
