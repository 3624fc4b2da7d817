package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pagemend/pagemend/internal/ops"
)

var sortAndMergeCmd = &cobra.Command{
	Use:   "sort-and-merge [files...]",
	Short: "Sort lines into reading order and merge split fragments",
	Long: `Sort each region's lines into reading order (top to bottom, left to
right within a row), then merge consecutive fragments that
segmentation split apart: two lines merge when the horizontal gap
between their baselines is small and they sit on the same row.

Examples:
  pagemend sort-and-merge scans/
  pagemend sort-and-merge scans/ --gap-x 48 --gap-y 8`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		gapX := cfg.Geometry.GapX
		if cmd.Flags().Changed("gap-x") {
			gapX, _ = cmd.Flags().GetFloat64("gap-x")
		}
		gapY := cfg.Geometry.GapY
		if cmd.Flags().Changed("gap-y") {
			gapY, _ = cmd.Flags().GetFloat64("gap-y")
		}
		return runBatch(cmd, args, ops.SortAndMerge{GapX: gapX, GapY: gapY})
	},
}

func init() {
	sortAndMergeCmd.Flags().Float64("gap-x", ops.DefaultGapX, "largest horizontal baseline gap that still merges, in pixels")
	sortAndMergeCmd.Flags().Float64("gap-y", ops.DefaultGapY, "largest vertical baseline offset that still merges, in pixels")
	rootCmd.AddCommand(sortAndMergeCmd)
}
