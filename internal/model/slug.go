package model

import (
	"regexp"
	"strings"
)

var (
	slugSeparators = regexp.MustCompile(`[\s_]+`)
	slugInvalid    = regexp.MustCompile(`[^a-z0-9-]`)
	slugHyphenRuns = regexp.MustCompile(`-+`)
)

// Slugify cleans text into a filesystem-safe name: lowercase, hyphen
// delimited, alphanumerics only. Returns "" when nothing usable remains.
func Slugify(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = slugSeparators.ReplaceAllString(s, "-")
	s = slugInvalid.ReplaceAllString(s, "")
	s = slugHyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
