package pkg

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// NormalizeName turns a free-text routine/exercise name into its canonical
// storage key: trimmed, internal whitespace collapsed to single spaces,
// lower-cased. Idempotent, so "Bench  Press", "bench press" and
// "BENCH PRESS" all collide to "bench press".
func NormalizeName(raw string) string {
	return strings.ToLower(strings.Join(strings.Fields(raw), " "))
}

// DisplayName renders a normalized name key for presentation (Title Case)
// without changing the stored key.
func DisplayName(key string) string {
	return titleCaser.String(key)
}
