package cli

import (
	"fmt"
	"net/http"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Wen-Qualtu/kt-datacards/internal/classify"
	"github.com/Wen-Qualtu/kt-datacards/internal/metrics"
	"github.com/Wen-Qualtu/kt-datacards/internal/pipeline"
	"github.com/Wen-Qualtu/kt-datacards/internal/team"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Process every PDF in the input directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver, err := team.Load(cfg.Pipeline.TeamConfig)
		if err != nil {
			return err
		}

		metrics.Init()
		if cfg.Metrics.Addr != "" {
			mux := http.NewServeMux()
			mux.Handle("/metrics", metrics.Handler())
			go func() {
				log.Info().Str("addr", cfg.Metrics.Addr).Msg("metrics listener started")
				if err := http.ListenAndServe(cfg.Metrics.Addr, mux); err != nil {
					log.Warn().Err(err).Msg("metrics listener stopped")
				}
			}()
		}

		p := pipeline.New(cfg.Pipeline, resolver, classify.New(classify.DefaultRules()))
		summary, err := p.Run(cmd.Context())
		if err != nil {
			return err
		}

		printSummary(summary)
		return nil
	},
}

func printSummary(s pipeline.Summary) {
	bold := color.New(color.Bold)
	bold.Printf("Run %s\n", s.RunID)
	fmt.Printf("  documents:      %d\n", s.Documents)
	color.Green("  processed:      %d", s.Processed)
	if s.Failed > 0 {
		color.Red("  failed:         %d", s.Failed)
	} else {
		fmt.Printf("  failed:         %d\n", s.Failed)
	}
	if s.Unidentified > 0 {
		color.Yellow("  unidentified:   %d (moved to failed/)", s.Unidentified)
	} else {
		fmt.Printf("  unidentified:   %d\n", s.Unidentified)
	}
	fmt.Printf("  cards:          %d\n", s.Cards)
	fmt.Printf("  pages rendered: %d\n", s.PagesRendered)
}
