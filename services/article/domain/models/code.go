package models

import "strings"

// NormalizeCode returns the canonical form of a reference, internal or order code:
// surrounding whitespace removed and letters uppercased. It is idempotent.
func NormalizeCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
