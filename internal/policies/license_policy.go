package policies

import "strings"

// NoLicenseProvided is the placeholder Socrata writes when a dataset has
// no license.
const NoLicenseProvided = "No license provided"

type LicenseForm string

const (
	LicenseFormAbsent LicenseForm = ""
	LicenseFormURI    LicenseForm = "uri"
	LicenseFormTitle  LicenseForm = "title"
)

// ClassifyLicense decides how a DCAT license string is stored and matched.
// URIs are recognized by their http prefix only.
func ClassifyLicense(value string) LicenseForm {
	if value == "" || value == NoLicenseProvided {
		return LicenseFormAbsent
	}
	if strings.HasPrefix(value, "http") {
		return LicenseFormURI
	}
	return LicenseFormTitle
}
