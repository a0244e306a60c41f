package ports

import "dcat-packages/internal/types"

// LicenseRegistryPort exposes the read-only license register the converter
// matches DCAT license strings against.
type LicenseRegistryPort interface {
	Licenses() []types.License
}
