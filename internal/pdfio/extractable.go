package pdfio

import (
	"regexp"
)

// DefaultTextThreshold is the minimum number of non-whitespace
// characters a sampled document must yield to count as text-bearing.
const DefaultTextThreshold = 100

var whitespaceRegex = regexp.MustCompile(`\s+`)

// HasExtractableText samples up to three pages (first, middle, last)
// and reports whether the document carries a usable text layer. Pure
// scans have none, and no title heuristic can run on them; the caller
// routes such files to manual review instead of failing page by page.
func (d *Document) HasExtractableText(threshold int) bool {
	if threshold <= 0 {
		threshold = DefaultTextThreshold
	}

	total := d.NumPages()
	if total <= 0 {
		return false
	}

	sampled := map[int]struct{}{0: {}, total / 2: {}, total - 1: {}}
	chars := 0
	for idx := range sampled {
		text, err := d.PageText(idx)
		if err != nil {
			continue
		}
		stripped := whitespaceRegex.ReplaceAllString(text, "")
		chars += len([]rune(stripped))
		if chars >= threshold {
			return true
		}
	}
	return chars >= threshold
}
