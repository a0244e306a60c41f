package ports

import "dcat-packages/internal/types"

// RecordReaderPort loads DCAT documents and packages from disk.
type RecordReaderPort interface {
	ReadDataset(path string) (types.DcatRecord, error)
	ReadCatalog(path string) ([]types.DcatRecord, error)
	ReadPackage(path string) (types.Package, error)
}

// RecordWriterPort persists conversion results.
type RecordWriterPort interface {
	WritePackage(path string, pkg types.Package, format types.OutputFormat) error
	WritePackages(dir string, pkgs []types.Package, format types.OutputFormat) ([]string, error)
	WriteDataset(path string, dataset types.DcatDataset) error
}
