package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pagemend/pagemend/internal/ops"
)

var repairCmd = &cobra.Command{
	Use:   "repair [files...]",
	Short: "Repair broken line geometry",
	Long: `Normalize the line geometry of PAGE-XML files: duplicate polygon
points are removed and self-intersecting line outlines are replaced
with their convex hull. Degenerate baselines are reported but left in
place.

Examples:
  pagemend repair page_0001.xml
  pagemend repair scans/ --overwrite`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBatch(cmd, args, ops.Repair{})
	},
}

func init() {
	rootCmd.AddCommand(repairCmd)
}
