// Package shared provides common utility functions used across multiple
// packages in the dcat-packages codebase.
package shared

import (
	"strings"
)

// NormalizeKey lowercases and trims a lookup key so that format names,
// mimetypes and extensions compare case-insensitively.
func NormalizeKey(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// Slugify lowercases a title and collapses every run of characters outside
// [a-z0-9] into a single hyphen. Leading and trailing hyphens are dropped.
func Slugify(value string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(value) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}
