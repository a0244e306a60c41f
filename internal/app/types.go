package app

import "dcat-packages/internal/types"

type ToPackageRequest struct {
	InputPath  string
	OutputPath string
	Format     types.OutputFormat
}

type ToPackageResult struct {
	Package    types.Package
	OutputPath string
}

type ToDcatRequest struct {
	InputPath  string
	OutputPath string
}

type ToDcatResult struct {
	Dataset    types.DcatDataset
	OutputPath string
}

type ConvertCatalogRequest struct {
	InputPath string
	OutputDir string
	Format    types.OutputFormat
}

type ConvertCatalogResult struct {
	Total    int
	Written  []string
	Failures []DatasetFailure
}

// DatasetFailure records a catalog entry that could not be converted.
type DatasetFailure struct {
	Index      int
	Identifier string
	Title      string
	Message    string
}

type ExportRequest struct {
	InputPath  string
	OutputPath string

	// FromDataset reads InputPath as a DCAT dataset and converts it first.
	FromDataset bool
}

type ExportResult struct {
	OutputPath string
	Resources  []string
}

type InspectRequest struct {
	InputPath string
}

type InspectResult struct {
	Title           string
	LicenseID       string
	TagCount        int
	ExtraCount      int
	ResourceTypes   []CountEntry
	ResourceFormats []CountEntry
}

// CountEntry is one row of a frequency table.
type CountEntry struct {
	Name  string
	Count int
}

type FormatsRequest struct {
	Hints []string
}

type FormatsResult struct {
	Resolutions []FormatResolution
}

type FormatResolution struct {
	Hint     string
	Label    string
	Mimetype string
	Known    bool
}
