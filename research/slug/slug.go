// Package slug normalizes free text into storage-safe key segments.
// Every component that derives a storage path from a keyword goes through
// Make, so independently computed paths for the same keyword agree.
package slug

import (
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Make lowercases text, collapses each run of non-alphanumeric characters
// into a single hyphen and strips leading and trailing hyphens. It is pure
// and total: any input, including the empty string, yields a result.
func Make(text string) string {
	s := strings.ToLower(text)
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
