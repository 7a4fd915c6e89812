package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Wen-Qualtu/kt-datacards/internal/identify"
	"github.com/Wen-Qualtu/kt-datacards/internal/pdfio"
	"github.com/Wen-Qualtu/kt-datacards/internal/team"
)

var identifyCmd = &cobra.Command{
	Use:   "identify <pdf>",
	Short: "Show which team and card type a PDF resolves to",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver, err := team.Load(cfg.Pipeline.TeamConfig)
		if err != nil {
			return err
		}

		src := args[0]
		identity, err := identify.FromFilename(src, resolver)
		if err == nil {
			fmt.Printf("%s -> team=%s type=%s (from filename)\n", src, identity.Team.Slug, identity.CardType)
			return nil
		}

		doc, err := pdfio.Open(src)
		if err != nil {
			return err
		}
		defer doc.Close()

		runs, err := doc.PageRuns(0)
		if err != nil {
			return err
		}
		rawText, err := doc.PageText(0)
		if err != nil {
			return err
		}

		identity, err = identify.FromContent(src, runs, rawText, resolver)
		if err != nil {
			return err
		}
		fmt.Printf("%s -> team=%s type=%s (from content)\n", src, identity.Team.Slug, identity.CardType)
		return nil
	},
}
