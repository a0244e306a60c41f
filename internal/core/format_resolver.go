package core

import (
	"net/url"
	"path"
	"regexp"
	"strings"
	"unicode"

	"dcat-packages/internal/ports"
	"dcat-packages/internal/types"
)

const (
	socrataDefaultTitle = "Download"
	esriFormatPrefix    = "OGC "
)

// FormatResolver turns format hints into canonical catalog labels and
// repairs known publisher quirks in distribution metadata beforehand.
type FormatResolver struct {
	catalog ports.FormatCatalogPort

	// socrataRows matches export URLs such as
	// https://example.socrata.com/api/views/qcq7-r62w/rows.rdf?accessType=DOWNLOAD
	socrataRows *regexp.Regexp

	// socrataGeo matches geospatial exports such as
	// https://example.socrata.com/api/geospatial/tu26-eg7z?method=export&format=KML
	socrataGeo *regexp.Regexp
}

func NewFormatResolver(catalog ports.FormatCatalogPort) FormatResolver {
	return FormatResolver{
		catalog:     catalog,
		socrataRows: regexp.MustCompile(`^.*/rows\.[^?]+\?.*accessType=(\w+)`),
		socrataGeo:  regexp.MustCompile(`^.*/api/geospatial/[^?/]+.*format=(\w+)`),
	}
}

// NormalizeFormat returns the canonical label for a format name, mimetype
// or file extension. Unknown hints pass through unchanged.
func (r FormatResolver) NormalizeFormat(hint string) string {
	if strings.TrimSpace(hint) == "" {
		return hint
	}
	if label, ok := r.catalog.Lookup(hint); ok {
		return label
	}
	return hint
}

// ToMimetype maps a canonical label back to its representative mimetype,
// or returns the label when the catalog has none.
func (r FormatResolver) ToMimetype(label string) string {
	if strings.TrimSpace(label) == "" {
		return label
	}
	if mimetype, ok := r.catalog.Mimetype(label); ok && mimetype != "" {
		return mimetype
	}
	return label
}

// GuessFromURL resolves the extension of the URL path. It returns def when
// there is no extension or the catalog does not recognize it.
func (r FormatResolver) GuessFromURL(rawURL string, def string) string {
	extension := urlExtension(rawURL)
	if extension == "" {
		return def
	}
	label := r.NormalizeFormat(extension)
	if label == "" || label == extension {
		return def
	}
	return label
}

// FixVendorQuirks rewrites distribution fields for known Socrata and ESRI
// patterns. It must run before the format is resolved.
func (r FormatResolver) FixVendorQuirks(distribution *types.Distribution) {
	r.addSocrataTitle(distribution)
	r.fixSocrataFormats(distribution)
	fixEsriFormats(distribution)
}

// Socrata does not name its distributions, so derive one from the
// export URL.
func (r FormatResolver) addSocrataTitle(distribution *types.Distribution) {
	if distribution.Title != "" || distribution.Description != "" {
		return
	}
	match := r.socrataRows.FindStringSubmatch(distribution.AccessURL)
	if match == nil {
		distribution.Title = socrataDefaultTitle
		return
	}
	distribution.Title = capitalize(match[1])
}

// Socrata geospatial exports carry application/zip for everything. A
// Shapefile export is a Shapefile; an Original export is whatever was
// uploaded, so the format is left for the catalog to detect.
func (r FormatResolver) fixSocrataFormats(distribution *types.Distribution) {
	match := r.socrataGeo.FindStringSubmatch(distribution.DownloadURL)
	if match == nil {
		return
	}
	switch match[1] {
	case "Shapefile":
		distribution.Format = "Shapefile"
	case "Original":
		distribution.Format = ""
		distribution.MediaType = ""
	}
}

// ESRI prefixes OGC service formats, e.g. "OGC WMS" for WMS.
func fixEsriFormats(distribution *types.Distribution) {
	distribution.Format = strings.TrimPrefix(distribution.Format, esriFormatPrefix)
}

func urlExtension(rawURL string) string {
	location := rawURL
	if parsed, err := url.Parse(rawURL); err == nil {
		location = parsed.Path
	} else if cut, _, found := strings.Cut(rawURL, "?"); found {
		location = cut
	}
	base := path.Base(location)
	dot := strings.LastIndex(base, ".")
	if dot < 0 || dot == len(base)-1 {
		return ""
	}
	return base[dot+1:]
}

func capitalize(value string) string {
	runes := []rune(strings.ToLower(value))
	if len(runes) == 0 {
		return value
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
