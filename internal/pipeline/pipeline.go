// Package pipeline orchestrates the batch run: discover source PDFs,
// identify each one, extract and render its cards, and route failures.
// Processing is single-threaded, one document then one page at a time;
// a failure in one document is logged and the batch moves on.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Wen-Qualtu/kt-datacards/internal/classify"
	"github.com/Wen-Qualtu/kt-datacards/internal/config"
	"github.com/Wen-Qualtu/kt-datacards/internal/filetype"
	"github.com/Wen-Qualtu/kt-datacards/internal/identify"
	"github.com/Wen-Qualtu/kt-datacards/internal/metadata"
	"github.com/Wen-Qualtu/kt-datacards/internal/metrics"
	"github.com/Wen-Qualtu/kt-datacards/internal/model"
	"github.com/Wen-Qualtu/kt-datacards/internal/pdfio"
	"github.com/Wen-Qualtu/kt-datacards/internal/team"
)

// Pipeline runs the extraction batch.
type Pipeline struct {
	cfg        config.PipelineConfig
	resolver   *team.Resolver
	classifier *classify.Classifier
}

// New builds a Pipeline.
func New(cfg config.PipelineConfig, resolver *team.Resolver, classifier *classify.Classifier) *Pipeline {
	return &Pipeline{cfg: cfg, resolver: resolver, classifier: classifier}
}

// Summary reports the outcome of one batch run.
type Summary struct {
	RunID         string
	Documents     int
	Processed     int
	Failed        int
	Unidentified  int
	Cards         int
	PagesRendered int
}

// Run processes every PDF under the input directory.
func (p *Pipeline) Run(ctx context.Context) (Summary, error) {
	summary := Summary{RunID: uuid.NewString()}
	runLog := log.With().Str("run_id", summary.RunID).Logger()

	sources, err := p.discover()
	if err != nil {
		return summary, err
	}
	summary.Documents = len(sources)
	runLog.Info().Int("documents", len(sources)).Str("input", p.cfg.InputDir).Msg("starting batch run")

	cardsByTeam := make(map[string][]model.Card)

	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		identity, err := p.identifyDocument(src)
		if err != nil {
			runLog.Warn().Err(err).Str("file", filepath.Base(src)).Msg("unidentifiable document, moving to failed")
			p.routeFailed(src)
			summary.Unidentified++
			metrics.IncDocument("unidentified")
			continue
		}

		cards, rendered, err := p.processDocument(src, identity)
		if err != nil {
			runLog.Error().Err(err).
				Str("file", filepath.Base(src)).
				Str("team", identity.Team.Slug).
				Msg("document failed, continuing with next")
			summary.Failed++
			metrics.IncDocument("failed")
			var cerr *classify.Error
			if errors.As(err, &cerr) {
				metrics.IncClassificationFailure()
			}
			continue
		}

		cardsByTeam[identity.Team.Slug] = append(cardsByTeam[identity.Team.Slug], cards...)
		summary.Processed++
		summary.Cards += len(cards)
		summary.PagesRendered += rendered
		metrics.IncDocument("ok")
		metrics.AddPagesRendered(rendered)
		for _, c := range cards {
			metrics.IncCard(c.CardType.String())
		}

		p.archive(src, identity.Team)
	}

	for slug, cards := range cardsByTeam {
		teamDir := filepath.Join(p.cfg.OutputDir, slug)
		idx := metadata.Build(slug, cards, teamDir)
		if _, err := metadata.Write(idx, teamDir); err != nil {
			runLog.Warn().Err(err).Str("team", slug).Msg("failed to write team index")
		}
	}

	runLog.Info().
		Int("processed", summary.Processed).
		Int("failed", summary.Failed).
		Int("unidentified", summary.Unidentified).
		Int("cards", summary.Cards).
		Int("pages_rendered", summary.PagesRendered).
		Msg("batch run complete")

	return summary, nil
}

// ProcessOne extracts a single PDF with an explicitly given identity,
// bypassing discovery and identification. Output goes to the configured
// output directory; the source file is left in place.
func (p *Pipeline) ProcessOne(src string, t *model.Team, cardType model.CardType) ([]model.Card, int, error) {
	return p.processDocument(src, identify.Identity{Team: t, CardType: cardType})
}

// discover lists candidate PDFs under the input directory, skipping the
// failed/ subdirectory so rejected files are not reprocessed forever.
func (p *Pipeline) discover() ([]string, error) {
	failedAbs, _ := filepath.Abs(p.cfg.FailedDir)

	var sources []string
	err := filepath.WalkDir(p.cfg.InputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			abs, _ := filepath.Abs(path)
			if abs == failedAbs {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".pdf") {
			return nil
		}
		ok, err := filetype.IsPDF(path)
		if err != nil {
			log.Warn().Err(err).Str("file", path).Msg("cannot inspect file, skipping")
			return nil
		}
		if !ok {
			log.Warn().Str("file", path).Msg("not a PDF by content, skipping")
			return nil
		}
		sources = append(sources, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan input dir %s: %w", p.cfg.InputDir, err)
	}
	return sources, nil
}

// identifyDocument resolves (team, card type), preferring the filename
// convention and falling back to page-one content.
func (p *Pipeline) identifyDocument(src string) (identify.Identity, error) {
	if _, err := pdfio.PageCount(src); err != nil {
		return identify.Identity{}, &identify.Error{Path: src, Reason: err.Error()}
	}

	doc, openErr := pdfio.Open(src)
	if openErr != nil {
		return identify.Identity{}, &identify.Error{Path: src, Reason: openErr.Error()}
	}
	defer doc.Close()

	if !doc.HasExtractableText(pdfio.DefaultTextThreshold) {
		return identify.Identity{}, &identify.Error{Path: src, Reason: "no extractable text layer (scanned pdf?)"}
	}

	identity, err := identify.FromFilename(src, p.resolver)
	if err == nil {
		return identity, nil
	}

	runs, runsErr := doc.PageRuns(0)
	if runsErr != nil {
		return identify.Identity{}, &identify.Error{Path: src, Reason: runsErr.Error()}
	}
	rawText, textErr := doc.PageText(0)
	if textErr != nil {
		return identify.Identity{}, &identify.Error{Path: src, Reason: textErr.Error()}
	}

	return identify.FromContent(src, runs, rawText, p.resolver)
}

// routeFailed moves an unidentifiable source to the manual-review
// directory. Failure to move is logged, not fatal to the batch.
func (p *Pipeline) routeFailed(src string) {
	if err := os.MkdirAll(p.cfg.FailedDir, 0o755); err != nil {
		log.Error().Err(err).Msg("cannot create failed dir")
		return
	}
	dst := filepath.Join(p.cfg.FailedDir, filepath.Base(src))
	if err := moveFile(src, dst); err != nil {
		log.Error().Err(err).Str("file", src).Msg("cannot move to failed dir")
	}
}

// archive moves a successfully processed source PDF out of the input
// tree, keeping it available for reprocessing.
func (p *Pipeline) archive(src string, t *model.Team) {
	dir := filepath.Join(p.cfg.ArchiveDir, t.Slug)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Warn().Err(err).Msg("cannot create archive dir")
		return
	}
	dst := filepath.Join(dir, filepath.Base(src))
	if err := moveFile(src, dst); err != nil {
		log.Warn().Err(err).Str("file", src).Msg("cannot archive source")
		return
	}
	log.Info().Str("file", filepath.Base(src)).Str("team", t.Slug).Msg("archived source")
}

// moveFile renames, falling back to copy+remove across filesystems.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return err
	}
	return os.Remove(src)
}
