package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Wen-Qualtu/kt-datacards/internal/classify"
	"github.com/Wen-Qualtu/kt-datacards/internal/model"
	"github.com/Wen-Qualtu/kt-datacards/internal/pipeline"
	"github.com/Wen-Qualtu/kt-datacards/internal/team"
)

var (
	flagTeam string
	flagType string
)

var extractCmd = &cobra.Command{
	Use:   "extract <pdf>",
	Short: "Extract cards from a single PDF with an explicit team and card type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver, err := team.Load(cfg.Pipeline.TeamConfig)
		if err != nil {
			return err
		}

		t := resolver.Resolve(flagTeam)
		if t == nil {
			return fmt.Errorf("team %q not in alias table %s", flagTeam, cfg.Pipeline.TeamConfig)
		}
		cardType, err := model.ParseCardType(flagType)
		if err != nil {
			return err
		}

		p := pipeline.New(cfg.Pipeline, resolver, classify.New(classify.DefaultRules()))
		cards, rendered, err := p.ProcessOne(args[0], t, cardType)
		if err != nil {
			return err
		}

		color.Green("extracted %d card(s), %d page(s) rendered", len(cards), rendered)
		for _, c := range cards {
			sides := "front"
			if c.BackImage != "" {
				sides = "front+back"
			}
			fmt.Printf("  %s (%s)\n", c.Name, sides)
		}
		return nil
	},
}

func init() {
	extractCmd.Flags().StringVar(&flagTeam, "team", "", "team slug or alias (required)")
	extractCmd.Flags().StringVar(&flagType, "type", "", "card type, e.g. datacards, strategy-ploys (required)")
	_ = extractCmd.MarkFlagRequired("team")
	_ = extractCmd.MarkFlagRequired("type")
}
