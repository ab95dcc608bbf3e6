package utils

import "strings"

// NormalizeWord lowercases and trims a banned-word entry so matching stays
// case-insensitive regardless of how admins typed it.
func NormalizeWord(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}
