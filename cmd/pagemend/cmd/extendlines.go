package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pagemend/pagemend/internal/geometry"
	"github.com/pagemend/pagemend/internal/ops"
)

var extendLinesCmd = &cobra.Command{
	Use:   "extend-lines [files...]",
	Short: "Grow line polygons outward",
	Long: `Grow every line polygon outward by a fixed distance and clip the
result back into its region. Lines that carry only a baseline get a
polygon buffered from it.

Examples:
  pagemend extend-lines scans/
  pagemend extend-lines scans/ --distance 24 --direction y
  pagemend extend-lines scans/ --rectify --cut-overlaps`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		distance := cfg.Geometry.Distance
		if cmd.Flags().Changed("distance") {
			distance, _ = cmd.Flags().GetFloat64("distance")
		}
		dir, _ := cmd.Flags().GetString("direction")
		rectify, _ := cmd.Flags().GetBool("rectify")
		cut, _ := cmd.Flags().GetBool("cut-overlaps")
		return runBatch(cmd, args, ops.ExtendLines{
			Distance:    distance,
			Direction:   geometry.Direction(dir),
			Rectify:     rectify,
			CutOverlaps: cut,
		})
	},
}

func init() {
	extendLinesCmd.Flags().Float64("distance", ops.DefaultDistance, "growth distance in pixels")
	extendLinesCmd.Flags().String("direction", string(geometry.DirectionAll),
		"growth direction (all, x, y)")
	extendLinesCmd.Flags().Bool("rectify", false, "replace each polygon with its bounding box")
	extendLinesCmd.Flags().Bool("cut-overlaps", false, "split polygon overlap between adjacent lines")
	rootCmd.AddCommand(extendLinesCmd)
}
