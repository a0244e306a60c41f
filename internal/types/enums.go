package types

type ResourceType string

const (
	ResourceTypeDistribution  ResourceType = ""
	ResourceTypeFile          ResourceType = "file"
	ResourceTypeAPI           ResourceType = "api"
	ResourceTypeDocumentation ResourceType = "documentation"
)

type OutputFormat string

const (
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)

// Extra keys written by the forward conversion.
const (
	ExtraDataIssued     = "data_issued"
	ExtraDataModified   = "data_modified"
	ExtraGUID           = "guid"
	ExtraMetadataURI    = "metadata_uri"
	ExtraPublisherName  = "dcat_publisher_name"
	ExtraPublisherURI   = "dcat_publisher_uri"
	ExtraPublisherEmail = "dcat_publisher_email"
	ExtraContactEmail   = "contact_email"
	ExtraSubject        = "dcat_subject"
	ExtraLicenseURL     = "license_url"
	ExtraLicenseName    = "license_name"
	ExtraLanguage       = "language"
)
