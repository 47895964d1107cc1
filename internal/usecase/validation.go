package usecase

import (
	"fmt"
	"strings"
)

// HasContact reports whether both name and email are non-empty after
// trimming whitespace. The order endpoint rejects snapshots without
// them.
func HasContact(name, email string) bool {
	return strings.TrimSpace(name) != "" && strings.TrimSpace(email) != ""
}

// SanitizeFileName replaces every character outside the storage-safe
// allow-list (letters, digits, dot, hyphen, underscore) with an
// underscore, so user-supplied names are usable as path/key segments.
func SanitizeFileName(name string) string {
	sanitized := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
	if sanitized == "" {
		return "file"
	}
	return sanitized
}

// StoredFileName builds the per-slot object name embedding the upload
// coordinate, so re-uploads of one slot can never collide with another
// slot's data.
func StoredFileName(sectionIdx, fileIdx int, originalName string) string {
	return fmt.Sprintf("s%d_f%d_%s", sectionIdx, fileIdx, SanitizeFileName(originalName))
}

// StorageKey is the deterministic storage address of one uploaded
// slot: per-order prefix plus the slot object name.
func StorageKey(orderID string, sectionIdx, fileIdx int, originalName string) string {
	return orderID + "/" + StoredFileName(sectionIdx, fileIdx, originalName)
}
