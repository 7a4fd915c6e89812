// Package group decides which pages of a document are the front and
// back of the same physical card. Fronts are paired with backs by an
// explicit continuation marker, by repeated titles (datacards), or by
// unnamed continuation pages (faction rules).
package group

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Wen-Qualtu/kt-datacards/internal/classify"
	"github.com/Wen-Qualtu/kt-datacards/internal/model"
)

// continuationMarkers are the literal phrases a card uses to announce
// that its rules continue on the next page.
var continuationMarkers = []string{
	"CONTINUES ON OTHER SIDE",
	"CONTINUES ON THE OTHER SIDE",
	"RULES CONTINUE ON OTHER SIDE",
}

// PageSource supplies per-page data for one document. Implementations
// are expected to classify lazily and cache, since the grouper probes
// the same page more than once.
type PageSource interface {
	NumPages() int
	RawText(pageIndex int) (string, error)
	Classify(pageIndex int) (model.ClassifiedPage, error)
}

// Group walks the document's pages and returns one ClassifiedPage per
// card front, with HasBack set where the following page is the card's
// back side. A classification failure on a page that must be a named
// front aborts the document; failures on pages probed only for
// back-detection do not.
func Group(src PageSource, hint model.CardType) ([]model.ClassifiedPage, error) {
	total := src.NumPages()
	fronts := make([]model.ClassifiedPage, 0, total)

	skipNext := false
	for i := 0; i < total; i++ {
		if skipNext {
			skipNext = false
			continue
		}

		page, err := src.Classify(i)
		if err != nil {
			var cerr *classify.Error
			if errors.As(err, &cerr) && hint == model.FactionRules {
				// An unnamed faction-rules page that nothing claimed as a
				// back has no identity to name its output after.
				return nil, fmt.Errorf("unpaired continuation page: %w", err)
			}
			return nil, fmt.Errorf("classify page %d: %w", i+1, err)
		}

		rawText, err := src.RawText(i)
		if err != nil {
			return nil, fmt.Errorf("read page %d text: %w", i+1, err)
		}

		// Precedence: explicit marker, then type-specific pairing.
		switch {
		case hasContinuationMarker(rawText) && i+1 < total:
			page.HasBack = true
			skipNext = true
		case hint == model.Datacards && i+1 < total:
			// Datacards are printed as consecutive front/back pairs with
			// identical titles.
			if next, err := src.Classify(i + 1); err == nil && next.CardName == page.CardName {
				page.HasBack = true
				skipNext = true
			}
		case hint == model.FactionRules && i+1 < total:
			if _, err := src.Classify(i + 1); err != nil {
				var cerr *classify.Error
				if errors.As(err, &cerr) {
					page.HasBack = true
					skipNext = true
				} else {
					return nil, fmt.Errorf("probe page %d: %w", i+2, err)
				}
			}
		}

		fronts = append(fronts, page)
	}

	numberOperatives(fronts)

	log.Debug().Int("pages", total).Int("cards", len(fronts)).Msg("grouped document pages")
	return fronts, nil
}

// numberOperatives renames the second and later roster cards to
// operatives-2, operatives-3, and so on. A single roster card keeps the
// plain name.
func numberOperatives(fronts []model.ClassifiedPage) {
	count := 0
	for i := range fronts {
		if fronts[i].CardType != model.Operatives || fronts[i].CardName != classify.OperativesName {
			continue
		}
		count++
		if count > 1 {
			fronts[i].CardName = fmt.Sprintf("%s-%d", classify.OperativesName, count)
		}
	}
}

func hasContinuationMarker(rawText string) bool {
	upper := strings.ToUpper(rawText)
	for _, marker := range continuationMarkers {
		if strings.Contains(upper, marker) {
			return true
		}
	}
	return false
}
