package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"dcat-packages/internal/types"
)

func TestFormatResolverNormalizeFormat(t *testing.T) {
	resolver := newTestFormatResolver()
	tests := []struct {
		hint string
		want string
	}{
		{"csv", "CSV"},
		{"text/csv", "CSV"},
		{"Shapefile", "SHP"},
		{"application/vnd.ms-excel", "XLS"},
		{"Totally Custom", "Totally Custom"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, resolver.NormalizeFormat(tt.hint), "hint %q", tt.hint)
	}
}

func TestFormatResolverToMimetype(t *testing.T) {
	resolver := newTestFormatResolver()
	assert.Equal(t, "text/csv", resolver.ToMimetype("CSV"))
	assert.Equal(t, "application/pdf", resolver.ToMimetype("PDF"))
	assert.Equal(t, "WMS", resolver.ToMimetype("WMS"))
	assert.Equal(t, "", resolver.ToMimetype(""))
}

func TestFormatResolverGuessFromURL(t *testing.T) {
	resolver := newTestFormatResolver()
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"known extension", "http://x/data.csv", "CSV"},
		{"query string ignored", "http://x/report.pdf?download=true", "PDF"},
		{"unknown extension", "http://x/data.xyz", "HTML"},
		{"no extension", "http://example.org/about", "HTML"},
		{"host dots ignored", "http://example.org", "HTML"},
		{"extension equal to label", "http://x/page.HTML", "HTML"},
		{"trailing dot", "http://x/file.", "HTML"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolver.GuessFromURL(tt.url, "HTML"))
		})
	}
	assert.Equal(t, "", resolver.GuessFromURL("http://x/data.xyz", ""))
}

func TestFormatResolverFixVendorQuirks(t *testing.T) {
	resolver := newTestFormatResolver()
	tests := []struct {
		name string
		in   types.Distribution
		want types.Distribution
	}{
		{
			name: "socrata access type becomes title",
			in: types.Distribution{
				AccessURL: "https://sandbox.demo.socrata.com/api/views/qcq7-r62w/rows.rdf?accessType=DOWNLOAD",
			},
			want: types.Distribution{
				Title:     "Download",
				AccessURL: "https://sandbox.demo.socrata.com/api/views/qcq7-r62w/rows.rdf?accessType=DOWNLOAD",
			},
		},
		{
			name: "socrata other access type",
			in: types.Distribution{
				AccessURL: "https://data.example.org/api/views/abcd-1234/rows.json?accessType=API",
			},
			want: types.Distribution{
				Title:     "Api",
				AccessURL: "https://data.example.org/api/views/abcd-1234/rows.json?accessType=API",
			},
		},
		{
			name: "untitled distribution gets default title",
			in:   types.Distribution{AccessURL: "http://example.org/data"},
			want: types.Distribution{Title: "Download", AccessURL: "http://example.org/data"},
		},
		{
			name: "described distribution keeps empty title",
			in:   types.Distribution{Description: "CSV export"},
			want: types.Distribution{Description: "CSV export"},
		},
		{
			name: "socrata geospatial shapefile",
			in: types.Distribution{
				Title:       "Boundaries",
				DownloadURL: "https://data.bathhacked.org/api/geospatial/t5sn-f4vu?method=export&format=Shapefile",
				MediaType:   "application/zip",
			},
			want: types.Distribution{
				Title:       "Boundaries",
				DownloadURL: "https://data.bathhacked.org/api/geospatial/t5sn-f4vu?method=export&format=Shapefile",
				MediaType:   "application/zip",
				Format:      "Shapefile",
			},
		},
		{
			name: "socrata geospatial original",
			in: types.Distribution{
				Title:       "Boundaries",
				DownloadURL: "https://data.bathhacked.org/api/geospatial/t5sn-f4vu?method=export&format=Original",
				Format:      "zip",
				MediaType:   "application/zip",
			},
			want: types.Distribution{
				Title:       "Boundaries",
				DownloadURL: "https://data.bathhacked.org/api/geospatial/t5sn-f4vu?method=export&format=Original",
			},
		},
		{
			name: "socrata geospatial other format untouched",
			in: types.Distribution{
				Title:       "Boundaries",
				DownloadURL: "https://data.bathhacked.org/api/geospatial/tu26-eg7z?method=export&format=KML",
				MediaType:   "application/vnd.google-earth.kml+xml",
			},
			want: types.Distribution{
				Title:       "Boundaries",
				DownloadURL: "https://data.bathhacked.org/api/geospatial/tu26-eg7z?method=export&format=KML",
				MediaType:   "application/vnd.google-earth.kml+xml",
			},
		},
		{
			name: "esri ogc prefix stripped",
			in:   types.Distribution{Title: "Map", Format: "OGC WMS", MediaType: "application/vnd.ogc.wms_xml"},
			want: types.Distribution{Title: "Map", Format: "WMS", MediaType: "application/vnd.ogc.wms_xml"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in
			resolver.FixVendorQuirks(&got)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("unexpected distribution (-want +got):\n%s", diff)
			}
		})
	}
}
