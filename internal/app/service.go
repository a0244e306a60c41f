package app

import (
	"dcat-packages/internal/adapters"
	"dcat-packages/internal/core"
	"dcat-packages/internal/ports"
)

// ServiceConfig names the optional files that replace or extend the
// built-in lookup tables.
type ServiceConfig struct {
	// LicenseRegistry replaces the built-in license list when set.
	LicenseRegistry string

	// FormatCatalogs are layered over the built-in format table in order.
	FormatCatalogs []string
}

type Service struct {
	Catalog  ports.FormatCatalogPort
	Resolver core.FormatResolver
	Forward  core.ForwardMapper
	Reverse  core.ReverseMapper
	Reader   ports.RecordReaderPort
	Writer   ports.RecordWriterPort
	Exporter ports.DataPackageExportPort
}

func NewService(cfg ServiceConfig) (Service, error) {
	catalog, err := adapters.NewFormatCatalogAdapter()
	if err != nil {
		return Service{}, err
	}
	for _, path := range cfg.FormatCatalogs {
		if err := catalog.LoadCatalog(path); err != nil {
			return Service{}, err
		}
	}

	var registry adapters.LicenseRegistryAdapter
	if cfg.LicenseRegistry != "" {
		registry, err = adapters.LoadLicenseRegistry(cfg.LicenseRegistry)
	} else {
		registry, err = adapters.NewLicenseRegistryAdapter()
	}
	if err != nil {
		return Service{}, err
	}
	return NewServiceWithPorts(catalog, registry), nil
}

// NewServiceWithPorts wires the mappers around the given lookup tables and
// the file-based record adapters.
func NewServiceWithPorts(catalog ports.FormatCatalogPort, registry ports.LicenseRegistryPort) Service {
	formats := core.NewFormatResolver(catalog)
	licenses := core.NewLicenseResolver(registry)
	return Service{
		Catalog:  catalog,
		Resolver: formats,
		Forward:  core.NewForwardMapper(formats, licenses),
		Reverse:  core.NewReverseMapper(formats),
		Reader:   adapters.NewRecordReaderAdapter(),
		Writer:   adapters.NewRecordWriterAdapter(),
		Exporter: adapters.NewDataPackageExportAdapter(),
	}
}
