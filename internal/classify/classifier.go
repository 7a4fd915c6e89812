// Package classify implements the card title extraction heuristic: rank
// a page's text runs by font size, filter out team names and rules
// vocabulary, and take the first survivor as the card name. The layout
// convention it models is that card titles are rendered in the largest
// font near the top of the page.
package classify

import (
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Wen-Qualtu/kt-datacards/internal/model"
)

// Classifier turns one page's text layout into a ClassifiedPage.
type Classifier struct {
	rules Rules
}

// New creates a Classifier with the given policy.
func New(rules Rules) *Classifier {
	return &Classifier{rules: rules}
}

// Classify determines the card name for one page. runs is the page's
// text layout, rawText its plain text (used for the marker-guide
// fallback), hint the card type known for the whole document.
//
// Returns a ClassifiedPage with a non-empty CardName, or *Error when
// nothing usable was found.
func (c *Classifier) Classify(pageIndex int, runs []model.TextRun, rawText string, hint model.CardType, team *model.Team) (model.ClassifiedPage, error) {
	page := model.ClassifiedPage{PageIndex: pageIndex, CardType: hint}

	// Roster pages carry no per-card title; the grouper numbers the
	// second and later occurrences.
	if hint == model.Operatives {
		page.CardName = OperativesName
		return page, nil
	}

	if name, ok := c.candidateName(runs, hint, team); ok {
		page.CardName = name
		return page, nil
	}

	if hint == model.FactionRules && isMarkerGuide(rawText) {
		page.CardName = MarkerGuideName
		return page, nil
	}

	log.Debug().
		Int("page", pageIndex+1).
		Str("team", team.Slug).
		Str("card_type", hint.String()).
		Int("runs", len(runs)).
		Msg("no card name candidate survived filtering")

	return model.ClassifiedPage{}, &Error{PageIndex: pageIndex, Team: team.Slug, CardType: hint.String()}
}

// candidateName walks the size-ranked runs and returns the first one
// that survives every filter, in slug form.
func (c *Classifier) candidateName(runs []model.TextRun, hint model.CardType, team *model.Team) (string, bool) {
	ranked := make([]model.TextRun, len(runs))
	copy(ranked, runs)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].FontSize != ranked[j].FontSize {
			return ranked[i].FontSize > ranked[j].FontSize
		}
		return ranked[i].Y < ranked[j].Y
	})

	floor, ok := c.rules.FontFloor[hint]
	if !ok {
		floor = c.rules.DefaultFontFloor
	}

	limit := c.rules.MaxCandidates
	if limit > len(ranked) {
		limit = len(ranked)
	}

	for _, run := range ranked[:limit] {
		text := strings.TrimSpace(run.Content)
		lower := strings.ToLower(text)

		if len(text) < c.rules.MinLength || len(text) > c.rules.MaxLength {
			continue
		}
		if matchesTeamName(lower, team) {
			continue
		}
		if c.containsSkipTerm(lower) {
			continue
		}
		if run.FontSize < floor {
			continue
		}
		// Colons and parentheses mark rules body text, not titles.
		if strings.ContainsAny(text, ":()") {
			continue
		}

		slug := model.Slugify(text)
		if len(slug) >= c.rules.MinSlugLength {
			return slug, true
		}
	}

	return "", false
}

func (c *Classifier) containsSkipTerm(lower string) bool {
	for _, term := range c.rules.SkipTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

// matchesTeamName rejects candidates that are the team's own name in
// disguise. Comparison flattens spaces and hyphens and tolerates
// singular/plural drift in any word, so team "angels-of-death" blocks
// both "Angels of Death" and "Angel of Death".
func matchesTeamName(lower string, team *model.Team) bool {
	candidate := flatten(lower)
	names := append([]string{team.Slug}, team.Aliases...)
	for _, name := range names {
		target := flatten(strings.ToLower(name))
		if candidate == target || candidate+"s" == target || candidate == target+"s" {
			return true
		}
		if depluralize(lower) == depluralize(strings.ToLower(name)) {
			return true
		}
	}
	return false
}

// flatten removes spaces and hyphens for normalized comparison.
func flatten(s string) string {
	s = strings.ReplaceAll(s, " ", "")
	return strings.ReplaceAll(s, "-", "")
}

// depluralize strips a trailing "s" from every word, then flattens.
func depluralize(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == '-' })
	for i, w := range words {
		if len(w) > 1 {
			words[i] = strings.TrimSuffix(w, "s")
		}
	}
	return strings.Join(words, "")
}

// isMarkerGuide reports whether the page is the marker/token guide that
// faction-rules PDFs may end with.
func isMarkerGuide(rawText string) bool {
	upper := strings.ToUpper(rawText)
	return strings.Contains(upper, "MARKER") &&
		strings.Contains(upper, "TOKEN") &&
		strings.Contains(upper, "GUIDE")
}
