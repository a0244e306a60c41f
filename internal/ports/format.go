package ports

// FormatCatalogPort maps free-text format hints to canonical labels and
// back.
type FormatCatalogPort interface {
	// Lookup resolves a format name, mimetype or bare file extension to the
	// canonical label. Returns ("", false) when the hint is unknown.
	Lookup(hint string) (string, bool)

	// Mimetype returns the representative mimetype for a canonical label.
	Mimetype(label string) (string, bool)
}
