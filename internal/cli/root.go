// Package cli implements the kt-datacards commands.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/Wen-Qualtu/kt-datacards/internal/config"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "kt-datacards",
	Short: "Convert card rules PDFs into per-team card images",
	Long: `kt-datacards converts published card rules PDFs into per-team card
images and metadata. Pages are classified by font-size heuristics, paired
into card fronts and backs, and rendered to JPEG under a stable
{team}/{card-type}/{name}_front.jpg layout.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(identifyCmd)
	rootCmd.AddCommand(teamsCmd)
	rootCmd.AddCommand(publishCmd)
}

// Execute runs the CLI with the given configuration.
func Execute(c config.Config) error {
	cfg = c
	return rootCmd.Execute()
}
