package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var folder = cases.Fold()

// NormalizeName prepares a name or query for comparison: Unicode NFC, trimmed,
// inner whitespace collapsed to single spaces and case folded.
func NormalizeName(s string) string {
	s = norm.NFC.String(s)
	s = strings.Join(strings.Fields(s), " ")
	return folder.String(s)
}

// TrimEmoji removes surrounding colons from a shortcode such as ":hammer:".
func TrimEmoji(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && strings.HasPrefix(s, ":") && strings.HasSuffix(s, ":") {
		return s[1 : len(s)-1]
	}
	return s
}
