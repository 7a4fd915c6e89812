package pipeline

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/Wen-Qualtu/kt-datacards/internal/classify"
	"github.com/Wen-Qualtu/kt-datacards/internal/group"
	"github.com/Wen-Qualtu/kt-datacards/internal/identify"
	"github.com/Wen-Qualtu/kt-datacards/internal/model"
	"github.com/Wen-Qualtu/kt-datacards/internal/pdfio"
	"github.com/Wen-Qualtu/kt-datacards/internal/preview"
)

// processDocument classifies, groups and renders one source PDF.
// Returns the extracted cards and the number of pages rendered.
func (p *Pipeline) processDocument(src string, identity identify.Identity) ([]model.Card, int, error) {
	doc, err := pdfio.Open(src)
	if err != nil {
		return nil, 0, err
	}
	defer doc.Close()

	docLog := log.With().
		Str("file", filepath.Base(src)).
		Str("team", identity.Team.Slug).
		Str("card_type", identity.CardType.String()).
		Logger()
	docLog.Info().Int("pages", doc.NumPages()).Msg("processing document")

	source := newDocSource(doc, p.classifier, identity.CardType, identity.Team)
	fronts, err := group.Group(source, identity.CardType)
	if err != nil {
		return nil, 0, err
	}

	typeDir := filepath.Join(p.cfg.OutputDir, identity.Team.Slug, identity.CardType.String())
	seen := make(map[string]int)

	var cards []model.Card
	rendered := 0
	for _, front := range fronts {
		name := front.CardName
		if name == "" {
			return nil, rendered, &classify.Error{PageIndex: front.PageIndex, Team: identity.Team.Slug, CardType: identity.CardType.String()}
		}
		// Two different cards collapsing to one name would silently
		// overwrite each other's files.
		if prev, dup := seen[name]; dup {
			return nil, rendered, fmt.Errorf("card name %q extracted for both page %d and page %d", name, prev+1, front.PageIndex+1)
		}
		seen[name] = front.PageIndex

		card := model.Card{
			Team:     identity.Team,
			CardType: identity.CardType,
			Name:     name,
		}

		frontPath := filepath.Join(typeDir, name+"_front.jpg")
		if err := doc.SavePageJPEG(front.PageIndex, p.cfg.DPI, p.cfg.JPEGQuality, frontPath); err != nil {
			return nil, rendered, err
		}
		card.FrontImage = frontPath
		rendered++
		docLog.Info().Str("card", name).Int("page", front.PageIndex+1).Msg("saved front")

		if front.HasBack {
			backPath := filepath.Join(typeDir, name+"_back.jpg")
			if err := doc.SavePageJPEG(front.PageIndex+1, p.cfg.DPI, p.cfg.JPEGQuality, backPath); err != nil {
				return nil, rendered, err
			}
			card.BackImage = backPath
			rendered++
			docLog.Info().Str("card", name).Int("page", front.PageIndex+2).Msg("saved back")
		}

		if p.cfg.Previews {
			previewPath := filepath.Join(p.cfg.OutputDir, identity.Team.Slug, "previews", identity.CardType.String(), name+".jpg")
			if err := preview.Generate(frontPath, previewPath, uint(p.cfg.PreviewMaxEdge), p.cfg.PreviewQuality); err != nil {
				docLog.Warn().Err(err).Str("card", name).Msg("preview generation failed")
			}
		}

		cards = append(cards, card)
	}

	return cards, rendered, nil
}

// docSource adapts an open document to the grouper's PageSource,
// caching per-page text and classification because back-detection probes
// the same page more than once.
type docSource struct {
	doc        *pdfio.Document
	classifier *classify.Classifier
	hint       model.CardType
	team       *model.Team

	texts map[int]string
	pages map[int]model.ClassifiedPage
	errs  map[int]error
}

func newDocSource(doc *pdfio.Document, classifier *classify.Classifier, hint model.CardType, t *model.Team) *docSource {
	return &docSource{
		doc:        doc,
		classifier: classifier,
		hint:       hint,
		team:       t,
		texts:      make(map[int]string),
		pages:      make(map[int]model.ClassifiedPage),
		errs:       make(map[int]error),
	}
}

func (s *docSource) NumPages() int { return s.doc.NumPages() }

func (s *docSource) RawText(pageIndex int) (string, error) {
	if text, ok := s.texts[pageIndex]; ok {
		return text, nil
	}
	text, err := s.doc.PageText(pageIndex)
	if err != nil {
		return "", err
	}
	s.texts[pageIndex] = text
	return text, nil
}

func (s *docSource) Classify(pageIndex int) (model.ClassifiedPage, error) {
	if page, ok := s.pages[pageIndex]; ok {
		return page, nil
	}
	if err, ok := s.errs[pageIndex]; ok {
		return model.ClassifiedPage{}, err
	}

	runs, err := s.doc.PageRuns(pageIndex)
	if err != nil {
		s.errs[pageIndex] = err
		return model.ClassifiedPage{}, err
	}
	rawText, err := s.RawText(pageIndex)
	if err != nil {
		s.errs[pageIndex] = err
		return model.ClassifiedPage{}, err
	}

	page, err := s.classifier.Classify(pageIndex, runs, rawText, s.hint, s.team)
	if err != nil {
		s.errs[pageIndex] = err
		return model.ClassifiedPage{}, err
	}
	s.pages[pageIndex] = page
	return page, nil
}
