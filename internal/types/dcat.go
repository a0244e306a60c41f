package types

// DcatRecord is an already-parsed data.json dataset object. Values keep the
// loose typing of the source document and are checked field by field when
// the record is converted.
type DcatRecord map[string]any

// PublisherKind tells which shape the source publisher field had.
type PublisherKind string

const (
	PublisherKindNone  PublisherKind = ""
	PublisherKindName  PublisherKind = "name"
	PublisherKindAgent PublisherKind = "agent"
)

// Publisher is the normalized form of the polymorphic DCAT publisher. A
// plain string becomes a Publisher of kind PublisherKindName carrying only
// Name; an object becomes PublisherKindAgent with whichever sub-fields
// were present.
type Publisher struct {
	Kind PublisherKind
	Name string
	URI  string
	Mbox string
}

// Distribution is a typed view of a single distribution entry. ByteSize is
// kept raw because publishers emit it as a number or as a string.
type Distribution struct {
	Title       string
	Description string
	Format      string
	MediaType   string
	DownloadURL string
	AccessURL   string
	Temporal    string
	ByteSize    any
}

// DcatDataset is the DCAT document rebuilt from a package.
type DcatDataset struct {
	Title        string             `json:"title" yaml:"title"`
	Description  string             `json:"description,omitempty" yaml:"description,omitempty"`
	LandingPage  string             `json:"landingPage,omitempty" yaml:"landingPage,omitempty"`
	Keyword      []string           `json:"keyword" yaml:"keyword"`
	Issued       *string            `json:"issued,omitempty" yaml:"issued,omitempty"`
	Modified     *string            `json:"modified,omitempty" yaml:"modified,omitempty"`
	Identifier   *string            `json:"identifier,omitempty" yaml:"identifier,omitempty"`
	License      *string            `json:"license,omitempty" yaml:"license,omitempty"`
	Language     []string           `json:"language,omitempty" yaml:"language,omitempty"`
	Publisher    DcatPublisher      `json:"publisher" yaml:"publisher"`
	Distribution []DcatDistribution `json:"distribution" yaml:"distribution"`
}

type DcatPublisher struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	Mbox string `json:"mbox,omitempty" yaml:"mbox,omitempty"`
}

type DcatDistribution struct {
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Format      string `json:"format,omitempty" yaml:"format,omitempty"`
	ByteSize    *int64 `json:"byteSize,omitempty" yaml:"byteSize,omitempty"`
	AccessURL   string `json:"accessURL,omitempty" yaml:"accessURL,omitempty"`
}
