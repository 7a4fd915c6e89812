package classify

import "github.com/Wen-Qualtu/kt-datacards/internal/model"

// Rules is the heuristic policy for title extraction. It is passed into
// the Classifier explicitly so the policy can be tested in isolation and
// tuned without touching the extraction code.
type Rules struct {
	// SkipTerms are lowercase substrings that disqualify a candidate:
	// stat abbreviations, section headers and generic rules vocabulary.
	SkipTerms []string

	// MinLength and MaxLength bound the raw candidate text.
	MinLength int
	MaxLength int

	// MaxCandidates caps how far down the size-ranked list we look.
	MaxCandidates int

	// FontFloor is the minimum font size accepted per card type.
	// Rules-body text can otherwise outrank a genuinely small title.
	FontFloor map[model.CardType]float64

	// DefaultFontFloor applies to card types without an explicit floor.
	DefaultFontFloor float64

	// MinSlugLength is the minimum length of the cleaned name.
	MinSlugLength int
}

// MarkerGuideName is the fixed name for the non-card marker/token guide
// page that faction-rules PDFs may end with.
const MarkerGuideName = "markertoken-guide"

// OperativesName is the fixed name assigned to operative roster pages.
const OperativesName = "operatives"

// DefaultRules returns the production policy.
func DefaultRules() Rules {
	return Rules{
		SkipTerms: []string{
			"rules continue", "wounds", "save", "move", "apl",
			"strategy ploy", "strategic ploy", "tactical ploy",
			"firefight ploy", "firefight",
			"faction equipment", "equipment",
			"faction rules", "faction rule", "datacard", "datacards",
			"hit", "dmg", "name", "atk",
		},
		MinLength:     5,
		MaxLength:     50,
		MaxCandidates: 20,
		FontFloor: map[model.CardType]float64{
			model.Datacards: 10,
			// Rule-name typography varies more than card titles do.
			model.FactionRules: 5,
		},
		DefaultFontFloor: 7,
		MinSlugLength:    5,
	}
}
