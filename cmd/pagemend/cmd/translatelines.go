package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pagemend/pagemend/internal/ops"
)

var translateLinesCmd = &cobra.Command{
	Use:   "translate-lines [files...]",
	Short: "Shift lines by a fixed offset",
	Long: `Shift every line by a fixed pixel offset, moving baseline and
polygon together. Each polygon is re-centered over its baseline before
the move and clipped back into its region afterwards. Useful when page
images were cropped or padded after segmentation.

Examples:
  pagemend translate-lines scans/ --y-offset 12
  pagemend translate-lines scans/ --x-offset -8 --y-offset 4`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		xoff, _ := cmd.Flags().GetFloat64("x-offset")
		yoff, _ := cmd.Flags().GetFloat64("y-offset")
		return runBatch(cmd, args, ops.TranslateLines{XOffset: xoff, YOffset: yoff})
	},
}

func init() {
	translateLinesCmd.Flags().Float64("x-offset", 0, "horizontal shift in pixels")
	translateLinesCmd.Flags().Float64("y-offset", 0, "vertical shift in pixels")
	rootCmd.AddCommand(translateLinesCmd)
}
