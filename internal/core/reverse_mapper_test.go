package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dcat-packages/internal/types"
)

func TestReverseMapperToDcat(t *testing.T) {
	mapper := NewReverseMapper(newTestFormatResolver())
	size := int64(512)
	pkg := types.Package{
		Title: "Road casualties",
		Notes: "By year",
		URL:   "http://example.org/roads",
		Tags:  []types.Tag{{Name: "roads"}, {Name: "safety"}},
		Extras: []types.Extra{
			{Key: "data_issued", Value: types.StringPtr("2014-01-01")},
			{Key: "data_modified"},
			{Key: "guid", Value: types.StringPtr("0e2f1b")},
			{Key: "metadata_uri", Value: types.StringPtr("http://example.org/dataset/roads")},
			{Key: "dcat_publisher_name", Value: types.StringPtr("DfT")},
			{Key: "dcat_publisher_email", Value: types.StringPtr("dft@example.org")},
			{Key: "license_url", Value: types.StringPtr("http://example.org/lic")},
			{Key: "language", Value: types.StringPtr("en,cy")},
			{Key: "dcat_subject", Value: types.StringPtr("http://example.org/theme/transport")},
		},
		Resources: []types.Resource{
			{Name: "Casualties", Description: "All years", URL: "http://example.org/c.csv", Format: "CSV", Size: &size},
			{Name: "Map", URL: "http://example.org/wms", Format: "WMS"},
		},
		Maintainer: "Someone Else",
	}

	got := mapper.ToDcat(t.Context(), pkg)
	want := types.DcatDataset{
		Title:       "Road casualties",
		Description: "By year",
		LandingPage: "http://example.org/roads",
		Keyword:     []string{"roads", "safety"},
		Issued:      types.StringPtr("2014-01-01"),
		Identifier:  types.StringPtr("0e2f1b"),
		License:     types.StringPtr("http://example.org/lic"),
		Language:    []string{"en", "cy"},
		Publisher:   types.DcatPublisher{Name: "DfT", Mbox: "dft@example.org"},
		Distribution: []types.DcatDistribution{
			{Title: "Casualties", Description: "All years", Format: "text/csv", ByteSize: &size, AccessURL: "http://example.org/c.csv"},
			{Title: "Map", Format: "WMS", AccessURL: "http://example.org/wms"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected dataset (-want +got):\n%s", diff)
	}
}

func TestReverseMapperMaintainerFallback(t *testing.T) {
	mapper := NewReverseMapper(newTestFormatResolver())
	got := mapper.ToDcat(t.Context(), types.Package{
		Title:           "T",
		Maintainer:      "Data Team",
		MaintainerEmail: "team@example.org",
	})
	assert.Equal(t, types.DcatPublisher{Name: "Data Team", Mbox: "team@example.org"}, got.Publisher)
	assert.NotNil(t, got.Keyword)
	assert.NotNil(t, got.Distribution)
}

func TestReverseMapperIgnoresLicenseName(t *testing.T) {
	mapper := NewReverseMapper(newTestFormatResolver())
	got := mapper.ToDcat(t.Context(), types.Package{
		Title:     "T",
		Extras:    []types.Extra{{Key: "license_name", Value: types.StringPtr("Public Domain")}},
		LicenseID: "other-pd",
	})
	assert.Nil(t, got.License)
}

func TestRoundTripIsLossy(t *testing.T) {
	forward := newTestForwardMapper()
	reverse := NewReverseMapper(newTestFormatResolver())
	record := types.DcatRecord{
		"title":       "Road casualties",
		"description": "By year",
		"landingPage": "http://example.org/roads",
		"keyword":     []any{"roads", "safety"},
		"publisher":   map[string]any{"name": "DfT", "mbox": "dft@example.org"},
		"subject":     []any{"http://example.org/theme/transport"},
		"dataDump":    "http://example.org/dump.rdf",
		"references":  []any{"http://example.org/guide.pdf"},
		"distribution": []any{
			map[string]any{"title": "Casualties", "downloadURL": "http://example.org/c.csv", "format": "CSV"},
		},
	}
	pkg, err := forward.ToPackage(t.Context(), record)
	require.NoError(t, err)
	got := reverse.ToDcat(t.Context(), pkg)

	assert.Equal(t, "Road casualties", got.Title)
	assert.Equal(t, "By year", got.Description)
	assert.Equal(t, "http://example.org/roads", got.LandingPage)
	assert.Equal(t, []string{"roads", "safety"}, got.Keyword)
	assert.Equal(t, types.DcatPublisher{Name: "DfT", Mbox: "dft@example.org"}, got.Publisher)

	// Synthesized resources come back as ordinary distributions; the
	// dataset-level fields they came from are not rebuilt.
	require.Len(t, got.Distribution, 4)
	assert.Equal(t, "Casualties", got.Distribution[0].Title)
	assert.Equal(t, "text/csv", got.Distribution[0].Format)
	assert.Equal(t, "Data dump", got.Distribution[1].Title)
	assert.Equal(t, "Reference", got.Distribution[2].Title)
	assert.Equal(t, "Landing page", got.Distribution[3].Title)
}
