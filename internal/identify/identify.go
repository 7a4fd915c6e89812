// Package identify determines which team and card type a source PDF
// belongs to. The filename convention {team-slug}-{card-type}.pdf is
// authoritative; page-one content is the fallback for files that were
// renamed or downloaded with opaque names.
package identify

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Wen-Qualtu/kt-datacards/internal/model"
	"github.com/Wen-Qualtu/kt-datacards/internal/team"
)

// Error reports that a document could not be identified. The caller
// routes the file to the manual-review directory; no partial output is
// written.
type Error struct {
	Path   string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("cannot identify %s: %s", filepath.Base(e.Path), e.Reason)
}

// Identity is the resolved (team, card type) pair for one document.
type Identity struct {
	Team     *model.Team
	CardType model.CardType
}

// cardTypeSuffixes lists filename suffixes checked against the stem,
// longest first so "faction-rules" wins over "rules".
var cardTypeSuffixes = []string{
	"firefight-ploys", "firefight-ploy",
	"strategy-ploys", "strategy-ploy",
	"faction-rules", "faction-rule",
	"datacards", "datacard",
	"operatives", "operative",
	"equipment",
}

// FromFilename identifies a document from its filename alone.
func FromFilename(path string, resolver *team.Resolver) (Identity, error) {
	stem := strings.ToLower(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))

	for _, suffix := range cardTypeSuffixes {
		if !strings.HasSuffix(stem, "-"+suffix) {
			continue
		}
		cardType, err := model.ParseCardType(suffix)
		if err != nil {
			continue
		}
		teamPart := strings.TrimSuffix(stem, "-"+suffix)
		if t := resolver.Resolve(teamPart); t != nil {
			return Identity{Team: t, CardType: cardType}, nil
		}
		return Identity{}, &Error{Path: path, Reason: fmt.Sprintf("team %q not in alias table", teamPart)}
	}

	return Identity{}, &Error{Path: path, Reason: "filename does not follow {team}-{card-type}.pdf"}
}

// FromContent identifies a document from its first page when the
// filename convention fails. runs and rawText come from page one.
func FromContent(path string, runs []model.TextRun, rawText string, resolver *team.Resolver) (Identity, error) {
	cardType, ok := cardTypeFromHeaders(runs, rawText)
	if !ok {
		return Identity{}, &Error{Path: path, Reason: "no card type header on page 1"}
	}

	name, ok := teamNameFromHeaders(rawText)
	if !ok {
		return Identity{}, &Error{Path: path, Reason: "no team name on page 1"}
	}
	t := resolver.Resolve(name)
	if t == nil {
		return Identity{}, &Error{Path: path, Reason: fmt.Sprintf("team %q not in alias table", name)}
	}

	log.Info().
		Str("file", filepath.Base(path)).
		Str("team", t.Slug).
		Str("card_type", cardType.String()).
		Msg("identified document from content")

	return Identity{Team: t, CardType: cardType}, nil
}

// cardTypeFromHeaders looks for section headers in the largest runs,
// then falls back to datacard stat keywords near the bottom of the page.
func cardTypeFromHeaders(runs []model.TextRun, rawText string) (model.CardType, bool) {
	ranked := make([]model.TextRun, len(runs))
	copy(ranked, runs)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].FontSize > ranked[j].FontSize })

	limit := 30
	if limit > len(ranked) {
		limit = len(ranked)
	}
	for _, run := range ranked[:limit] {
		lower := strings.ToLower(strings.TrimSpace(run.Content))
		switch {
		case lower == "operatives":
			return model.Operatives, true
		case strings.Contains(lower, "faction equipment"):
			return model.Equipment, true
		case strings.Contains(lower, "strategy ploy") || strings.Contains(lower, "strategic ploy"):
			return model.StrategyPloys, true
		case strings.Contains(lower, "firefight ploy"):
			return model.FirefightPloys, true
		case strings.Contains(lower, "faction rule"):
			return model.FactionRules, true
		}
	}

	// Datacards have no section header; their stat line sits at the
	// bottom of the page.
	lines := nonEmptyLines(rawText)
	start := len(lines) - 10
	if start < 0 {
		start = 0
	}
	for _, line := range lines[start:] {
		upper := strings.ToUpper(line)
		for _, keyword := range []string{"RULES CONTINUE", "APL", "WOUNDS", "SAVE", "MOVE"} {
			if strings.Contains(upper, keyword) {
				return model.Datacards, true
			}
		}
	}

	return "", false
}

// teamNameFromHeaders scans the top lines for an all-caps team name.
func teamNameFromHeaders(rawText string) (string, bool) {
	lines := nonEmptyLines(rawText)
	limit := 20
	if limit > len(lines) {
		limit = len(lines)
	}
	for _, line := range lines[:limit] {
		upper := strings.ToUpper(line)
		if strings.Contains(upper, "EQUIPMENT") || strings.Contains(upper, "PLOY") ||
			strings.Contains(upper, "RULE") || strings.Contains(upper, "OPERATIVES") {
			continue
		}
		words := strings.Fields(line)
		if len(words) >= 1 && len(words) <= 5 && len(line) > 3 && line == upper {
			return model.Slugify(line), true
		}
	}
	return "", false
}

func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
