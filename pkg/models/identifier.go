package models

import "github.com/google/uuid"

// canonicalIDLen is the length of "{xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx}".
const canonicalIDLen = 38

// hyphen offsets inside a canonical id, counted from the opening brace.
var hyphenOffsets = [...]int{9, 14, 19, 24}

// IsCanonicalID reports whether s is a brace-enclosed GUID with hex groups
// of length 8-4-4-4-12.
func IsCanonicalID(s string) bool {
	if len(s) != canonicalIDLen || s[0] != '{' || s[canonicalIDLen-1] != '}' {
		return false
	}
	for _, i := range hyphenOffsets {
		if s[i] != '-' {
			return false
		}
	}
	// uuid.Parse accepts the braced form and checks every hex digit.
	_, err := uuid.Parse(s)
	return err == nil
}
