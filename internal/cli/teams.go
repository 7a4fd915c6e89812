package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Wen-Qualtu/kt-datacards/internal/team"
)

var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "List the teams loaded from the alias table",
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver, err := team.Load(cfg.Pipeline.TeamConfig)
		if err != nil {
			return err
		}
		for _, t := range resolver.Teams() {
			fmt.Printf("%-30s %d alias(es)\n", t.Slug, len(t.Aliases))
		}
		fmt.Printf("%d team(s)\n", resolver.Len())
		return nil
	},
}
