package textutil

import "strings"

// NormalizeName lowercases a name and collapses internal whitespace so that
// user-typed and voice-parsed names compare consistently.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// ContainsFold reports whether name matches needle case-insensitively, either
// exactly or as a substring. Empty needles never match.
func ContainsFold(name, needle string) bool {
	needle = NormalizeName(needle)
	if needle == "" {
		return false
	}
	return strings.Contains(NormalizeName(name), needle)
}
