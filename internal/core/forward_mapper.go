package core

import (
	"context"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"

	"dcat-packages/internal/policies"
	"dcat-packages/internal/types"
)

const (
	referenceTitle  = "Reference"
	defaultDocsType = "HTML"
)

// ForwardMapper builds catalog packages from DCAT dataset records.
type ForwardMapper struct {
	formats  FormatResolver
	licenses LicenseResolver
}

func NewForwardMapper(formats FormatResolver, licenses LicenseResolver) ForwardMapper {
	return ForwardMapper{formats: formats, licenses: licenses}
}

// ToPackage converts one DCAT record. Any error aborts the whole
// conversion; the returned package is only meaningful when err is nil.
func (m ForwardMapper) ToPackage(ctx context.Context, record types.DcatRecord) (types.Package, error) {
	title, err := datasetTitle(record)
	if err != nil {
		return types.Package{}, err
	}
	pkg := types.Package{
		Title:     title,
		Notes:     recordString(record, "description"),
		URL:       firstNonEmpty(recordString(record, "landingPage"), recordString(record, "uri")),
		Tags:      []types.Tag{},
		Extras:    []types.Extra{},
		Resources: []types.Resource{},
	}

	if keywords, ok := record["keyword"]; ok && keywords != nil {
		if err := AssertStringList("keyword", keywords); err != nil {
			return types.Package{}, err
		}
		for _, keyword := range stringItems(keywords) {
			pkg.Tags = append(pkg.Tags, types.Tag{Name: keyword})
		}
	}

	// issued and modified describe the data itself, not the metadata.
	pkg.Extras = append(pkg.Extras,
		types.Extra{Key: types.ExtraDataIssued, Value: recordOptional(record, "issued")},
		types.Extra{Key: types.ExtraDataModified, Value: recordOptional(record, "modified")},
		types.Extra{Key: types.ExtraGUID, Value: recordOptional(record, "identifier")},
		types.Extra{Key: types.ExtraMetadataURI, Value: recordOptional(record, "uri")},
	)
	pkg.Extras = append(pkg.Extras, publisherExtras(parsePublisher(record["publisher"]))...)
	if contact := recordString(record, "contactEmail"); contact != "" {
		pkg.Extras = appendExtra(pkg.Extras, types.ExtraContactEmail, contact)
	}
	subject, err := datasetSubject(record["subject"])
	if err != nil {
		return types.Package{}, err
	}
	if subject != "" {
		pkg.Extras = appendExtra(pkg.Extras, types.ExtraSubject, subject)
	}

	if err := m.applyLicense(ctx, record, &pkg); err != nil {
		return types.Package{}, err
	}

	var languages []string
	if value, ok := record["language"]; ok && value != nil {
		if err := AssertStringList("language", value); err != nil {
			return types.Package{}, err
		}
		languages = stringItems(value)
	}
	pkg.Extras = appendExtra(pkg.Extras, types.ExtraLanguage, strings.Join(languages, ","))

	resources, err := m.distributionResources(ctx, record["distribution"])
	if err != nil {
		return types.Package{}, err
	}
	pkg.Resources = append(pkg.Resources, resources...)
	pkg.Resources = append(pkg.Resources, synthesizedResources(record)...)

	references, err := m.referenceResources(record["references"])
	if err != nil {
		return types.Package{}, err
	}
	pkg.Resources = append(pkg.Resources, references...)
	if landingPage := recordString(record, "landingPage"); landingPage != "" {
		pkg.Resources = append(pkg.Resources, types.Resource{
			Name:         "Landing page",
			URL:          landingPage,
			Format:       defaultDocsType,
			ResourceType: types.ResourceTypeDocumentation,
		})
	}

	assert.NotEmpty(ctx, pkg.Title, "package title must be set")
	log.Ctx(ctx).Debug().
		Str("title", pkg.Title).
		Int("tags", len(pkg.Tags)).
		Int("resources", len(pkg.Resources)).
		Msg("dataset converted to package")
	return pkg, nil
}

func datasetTitle(record types.DcatRecord) (string, error) {
	value, present := record["title"]
	if present && value != nil {
		if _, ok := scalarString(value); !ok {
			return "", conversionErrorf("Dataset title must be a string, not: %s", describeType(value))
		}
	}
	title := recordString(record, "title")
	if title == "" {
		return "", conversionErrorf("Dataset does not have a title")
	}
	return title, nil
}

// datasetSubject joins subject URIs with spaces. A lone string is kept
// as it is.
func datasetSubject(value any) (string, error) {
	if value == nil {
		return "", nil
	}
	if text, ok := value.(string); ok {
		return text, nil
	}
	if err := AssertStringList("subject", value); err != nil {
		return "", err
	}
	return strings.Join(stringItems(value), " "), nil
}

// The dataset's owning organization comes from the harvest source, so the
// DCAT publisher is only kept for reference.
func publisherExtras(publisher types.Publisher) []types.Extra {
	var extras []types.Extra
	switch publisher.Kind {
	case types.PublisherKindName:
		extras = appendExtra(extras, types.ExtraPublisherName, publisher.Name)
	case types.PublisherKindAgent:
		if publisher.Name != "" {
			extras = appendExtra(extras, types.ExtraPublisherName, publisher.Name)
		}
		if publisher.URI != "" {
			extras = appendExtra(extras, types.ExtraPublisherURI, publisher.URI)
		}
		if publisher.Mbox != "" {
			extras = appendExtra(extras, types.ExtraPublisherEmail, publisher.Mbox)
		}
	}
	return extras
}

// applyLicense always stores the source license in an extra and sets the
// license id when the registry knows it.
func (m ForwardMapper) applyLicense(ctx context.Context, record types.DcatRecord, pkg *types.Package) error {
	value, present := record["license"]
	if present && value != nil {
		if _, ok := scalarString(value); !ok {
			return conversionErrorf("Dataset license must be a string, not: %s", describeType(value))
		}
	}
	license := recordString(record, "license")
	var (
		licenseID string
		matched   bool
	)
	switch policies.ClassifyLicense(license) {
	case policies.LicenseFormURI:
		pkg.Extras = appendExtra(pkg.Extras, types.ExtraLicenseURL, license)
		licenseID, matched = m.licenses.FindByURI(license)
	case policies.LicenseFormTitle:
		pkg.Extras = appendExtra(pkg.Extras, types.ExtraLicenseName, license)
		licenseID, matched = m.licenses.FindByTitle(license)
	default:
		if _, legacy := record["licence"]; legacy {
			return conversionErrorf(`Use "license" not "licence"`)
		}
		return nil
	}
	if !matched {
		log.Ctx(ctx).Debug().Str("license", license).Msg("license not in registry")
		return nil
	}
	pkg.LicenseID = licenseID
	return nil
}

func (m ForwardMapper) distributionResources(ctx context.Context, value any) ([]types.Resource, error) {
	if value == nil {
		return nil, nil
	}
	if err := AssertList("distribution", value); err != nil {
		return nil, err
	}
	var resources []types.Resource
	for index, item := range listItems(value) {
		distribution, err := parseDistribution(index, item)
		if err != nil {
			return nil, err
		}
		resource, err := m.distributionResource(ctx, distribution)
		if err != nil {
			return nil, err
		}
		resources = append(resources, resource)
	}
	return resources, nil
}

func (m ForwardMapper) distributionResource(ctx context.Context, distribution types.Distribution) (types.Resource, error) {
	m.formats.FixVendorQuirks(&distribution)
	resource := types.Resource{
		Name:        distribution.Title,
		Description: distribution.Description,
		URL:         firstNonEmpty(distribution.DownloadURL, distribution.AccessURL),
	}
	if hint := firstNonEmpty(distribution.Format, distribution.MediaType); hint != "" {
		resource.Format = m.formats.NormalizeFormat(hint)
	}
	if distribution.Temporal != "" {
		date, label, err := ParseInterval(distribution.Temporal)
		if err != nil {
			return types.Resource{}, err
		}
		resource.Date = date
		if label != "" {
			resource.Name = strings.TrimSpace(resource.Name + " " + label)
		}
	}
	if distribution.ByteSize != nil {
		if size, ok := policies.ParseByteSize(distribution.ByteSize); ok {
			resource.Size = &size
		} else {
			log.Ctx(ctx).Debug().Interface("byte_size", distribution.ByteSize).Msg("byteSize dropped")
		}
	}
	return resource, nil
}

// synthesizedResources turns dataset-level links with no package field of
// their own into resources.
func synthesizedResources(record types.DcatRecord) []types.Resource {
	var resources []types.Resource
	if dump := recordString(record, "dataDump"); dump != "" {
		resources = append(resources, types.Resource{
			Name:         "Data dump",
			URL:          dump,
			Format:       "RDF",
			ResourceType: types.ResourceTypeFile,
		})
	}
	if endpoint := recordString(record, "sparqlEndpoint"); endpoint != "" {
		resources = append(resources, types.Resource{
			Name:         "SPARQL Endpoint",
			URL:          endpoint,
			Format:       "SPARQL",
			ResourceType: types.ResourceTypeAPI,
		})
	}
	if shapefile := recordString(record, "zippedShapefile"); shapefile != "" {
		resources = append(resources, types.Resource{
			Name:         "Data as shapefile (zipped)",
			URL:          shapefile,
			Format:       "SHP",
			ResourceType: types.ResourceTypeFile,
		})
	}
	return resources
}

// referenceResources adds one documentation resource per reference. An
// entry is either a bare URL or an object with title, url and a format
// hint.
func (m ForwardMapper) referenceResources(value any) ([]types.Resource, error) {
	if value == nil {
		return nil, nil
	}
	if err := AssertList("references", value); err != nil {
		return nil, err
	}
	var resources []types.Resource
	for _, item := range listItems(value) {
		resource := types.Resource{ResourceType: types.ResourceTypeDocumentation}
		switch reference := item.(type) {
		case string:
			resource.Name = referenceTitle
			resource.URL = reference
			resource.Format = m.formats.GuessFromURL(reference, defaultDocsType)
		case map[string]any:
			title, _ := scalarString(reference["title"])
			resource.Name = firstNonEmpty(title, referenceTitle)
			resource.URL, _ = scalarString(reference["url"])
			format, _ := scalarString(reference["format"])
			mediaType, _ := scalarString(reference["mediaType"])
			if hint := firstNonEmpty(format, mediaType); hint != "" {
				resource.Format = m.formats.NormalizeFormat(hint)
			}
			if resource.Format == "" {
				resource.Format = m.formats.GuessFromURL(resource.URL, defaultDocsType)
			}
		default:
			return nil, AssertStringList("references", value)
		}
		resources = append(resources, resource)
	}
	return resources, nil
}

func appendExtra(extras []types.Extra, key string, value string) []types.Extra {
	return append(extras, types.Extra{Key: key, Value: types.StringPtr(value)})
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
