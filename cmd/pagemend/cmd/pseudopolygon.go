package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pagemend/pagemend/internal/ops"
)

var pseudoPolygonCmd = &cobra.Command{
	Use:   "pseudo-polygon [files...]",
	Short: "Rebuild line polygons from baselines",
	Long: `Rebuild every line polygon from its baseline. The lines are sorted
into reading order, each baseline is extended slightly and buffered
into a polygon, and overlaps between adjacent lines are split. Useful
for segmentation output that carries baselines but no usable line
outlines.

Examples:
  pagemend pseudo-polygon scans/
  pagemend pseudo-polygon scans/ --buffer 20`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		buffer := cfg.Geometry.BufferSize
		if cmd.Flags().Changed("buffer") {
			buffer, _ = cmd.Flags().GetFloat64("buffer")
		}
		yoff := cfg.Geometry.YOffset
		if cmd.Flags().Changed("y-offset") {
			yoff, _ = cmd.Flags().GetFloat64("y-offset")
		}
		return runBatch(cmd, args, ops.PseudoPolygon{BufferSize: buffer, YOffset: yoff})
	},
}

func init() {
	pseudoPolygonCmd.Flags().Float64("buffer", ops.DefaultBufferSize, "buffering distance around the baseline in pixels")
	pseudoPolygonCmd.Flags().Float64("y-offset", ops.DefaultYOffset, "downward baseline shift after buffering in pixels")
	rootCmd.AddCommand(pseudoPolygonCmd)
}
