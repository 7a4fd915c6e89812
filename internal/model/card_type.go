package model

import (
	"fmt"
	"strings"
)

// CardType identifies which kind of card a source PDF holds. Each PDF
// contains exactly one card type; faction-rules PDFs may additionally end
// with a marker/token guide page.
type CardType string

const (
	Datacards      CardType = "datacards"
	Equipment      CardType = "equipment"
	FactionRules   CardType = "faction-rules"
	FirefightPloys CardType = "firefight-ploys"
	Operatives     CardType = "operatives"
	StrategyPloys  CardType = "strategy-ploys"
)

// AllCardTypes returns every known card type in stable order.
func AllCardTypes() []CardType {
	return []CardType{Datacards, Equipment, FactionRules, FirefightPloys, Operatives, StrategyPloys}
}

// singular forms seen in filenames and headers
var cardTypeVariants = map[string]CardType{
	"datacard":       Datacards,
	"faction-rule":   FactionRules,
	"firefight-ploy": FirefightPloys,
	"operative":      Operatives,
	"strategy-ploy":  StrategyPloys,
}

// ParseCardType converts a string to a CardType, tolerating spaces,
// underscores and singular forms ("strategy ploy" -> strategy-ploys).
func ParseCardType(value string) (CardType, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	normalized = strings.ReplaceAll(normalized, " ", "-")
	normalized = strings.ReplaceAll(normalized, "_", "-")

	for _, ct := range AllCardTypes() {
		if normalized == string(ct) {
			return ct, nil
		}
	}
	if ct, ok := cardTypeVariants[normalized]; ok {
		return ct, nil
	}
	// Plural form that isn't a direct match, e.g. "equipments"
	if trimmed := strings.TrimSuffix(normalized, "s"); trimmed != normalized {
		if ct, ok := cardTypeVariants[trimmed]; ok {
			return ct, nil
		}
		for _, ct := range AllCardTypes() {
			if trimmed == string(ct) {
				return ct, nil
			}
		}
	}

	return "", fmt.Errorf("unknown card type: %q", value)
}

func (c CardType) String() string { return string(c) }
