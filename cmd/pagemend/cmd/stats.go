package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pagemend/pagemend/internal/batch"
)

var statsCmd = &cobra.Command{
	Use:   "stats [files...]",
	Short: "Count regions, lines, words and glyphs",
	Long: `Count the regions, text lines, words and glyphs of each file and
print a per-file table with totals. Use --format json or yaml for
machine-readable output.

Examples:
  pagemend stats scans/
  pagemend stats scans/ --format json --report counts.json`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		paths, err := resolveInputs(cfg, args)
		if err != nil {
			return err
		}
		report, err := batch.CollectStats(paths)
		if err != nil {
			return err
		}
		reportFile, _ := cmd.Flags().GetString("report")
		return batch.SaveReport(report, cfg.Output.Format, reportFile)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
