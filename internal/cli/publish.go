package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Wen-Qualtu/kt-datacards/internal/publish"
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Upload the output directory to the configured S3 bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := publish.New(cmd.Context(), cfg.Publish.Bucket, cfg.Publish.Prefix)
		if err != nil {
			return err
		}
		n, err := p.PublishDir(cmd.Context(), cfg.Pipeline.OutputDir)
		if err != nil {
			return err
		}
		color.Green("uploaded %d file(s) to s3://%s/%s", n, cfg.Publish.Bucket, cfg.Publish.Prefix)
		return nil
	},
}
