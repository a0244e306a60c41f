package ports

import "dcat-packages/internal/types"

// DataPackageExportPort writes a package as a Frictionless Data Package
// descriptor and returns the names of the exported resources.
type DataPackageExportPort interface {
	Export(path string, pkg types.Package) ([]string, error)
}
