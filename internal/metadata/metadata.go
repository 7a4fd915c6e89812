// Package metadata writes the per-team cards.json index that downstream
// generators consume. The front/back naming convention in the entries is
// a stable contract; changing it breaks every downstream script.
package metadata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/Wen-Qualtu/kt-datacards/internal/model"
)

// Entry describes one extracted card in the team index.
type Entry struct {
	Name     string `json:"name"`
	CardType string `json:"card_type"`
	Front    string `json:"front"`
	Back     string `json:"back,omitempty"`
}

// Index is the cards.json document for one team.
type Index struct {
	Team  string  `json:"team"`
	Cards []Entry `json:"cards"`
}

// Build converts extracted cards into an Index with paths relative to
// the team's output directory, sorted by card type then name.
func Build(teamSlug string, cards []model.Card, teamDir string) Index {
	idx := Index{Team: teamSlug, Cards: make([]Entry, 0, len(cards))}
	for _, c := range cards {
		entry := Entry{
			Name:     c.Name,
			CardType: c.CardType.String(),
			Front:    relOrBase(teamDir, c.FrontImage),
		}
		if c.BackImage != "" {
			entry.Back = relOrBase(teamDir, c.BackImage)
		}
		idx.Cards = append(idx.Cards, entry)
	}
	sort.Slice(idx.Cards, func(i, j int) bool {
		if idx.Cards[i].CardType != idx.Cards[j].CardType {
			return idx.Cards[i].CardType < idx.Cards[j].CardType
		}
		return idx.Cards[i].Name < idx.Cards[j].Name
	})
	return idx
}

// Write stores the index as cards.json inside teamDir.
func Write(idx Index, teamDir string) (string, error) {
	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal team index: %w", err)
	}
	path := filepath.Join(teamDir, "cards.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

func relOrBase(base, target string) string {
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return filepath.Base(target)
	}
	return filepath.ToSlash(rel)
}
