package core

import (
	"strings"

	"dcat-packages/internal/types"
)

type testFormatCatalog struct {
	labels    map[string]string
	mimetypes map[string]string
}

func (c testFormatCatalog) Lookup(hint string) (string, bool) {
	label, ok := c.labels[strings.ToLower(strings.TrimSpace(hint))]
	return label, ok
}

func (c testFormatCatalog) Mimetype(label string) (string, bool) {
	mimetype, ok := c.mimetypes[strings.ToLower(label)]
	return mimetype, ok
}

type testLicenseRegistry []types.License

func (r testLicenseRegistry) Licenses() []types.License {
	return r
}

func newTestFormatResolver() FormatResolver {
	return NewFormatResolver(testFormatCatalog{
		labels: map[string]string{
			"csv":                      "CSV",
			"text/csv":                 "CSV",
			"html":                     "HTML",
			"text/html":                "HTML",
			"json":                     "JSON",
			"application/json":         "JSON",
			"shapefile":                "SHP",
			"shp":                      "SHP",
			"wms":                      "WMS",
			"kml":                      "KML",
			"rdf":                      "RDF",
			"zip":                      "ZIP",
			"application/zip":          "ZIP",
			"pdf":                      "PDF",
			"application/pdf":          "PDF",
			"application/vnd.ms-excel": "XLS",
		},
		mimetypes: map[string]string{
			"csv":  "text/csv",
			"html": "text/html",
			"json": "application/json",
			"pdf":  "application/pdf",
			"zip":  "application/zip",
		},
	})
}

func newTestLicenseResolver() LicenseResolver {
	return NewLicenseResolver(testLicenseRegistry{
		{ID: "cc-by", Title: "Creative Commons Attribution", URL: "http://www.opendefinition.org/licenses/cc-by"},
		{ID: "odc-pddl", Title: "Open Data Commons Public Domain Dedication and License (PDDL)", URL: "http://www.opendefinition.org/licenses/odc-pddl"},
		{ID: "other-pd", Title: "Other (Public Domain)", URL: ""},
	})
}

func newTestForwardMapper() ForwardMapper {
	return NewForwardMapper(newTestFormatResolver(), newTestLicenseResolver())
}
