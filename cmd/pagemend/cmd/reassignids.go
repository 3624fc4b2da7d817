package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pagemend/pagemend/internal/model"
	"github.com/pagemend/pagemend/internal/ops"
)

var reassignIDsCmd = &cobra.Command{
	Use:   "reassign-ids [files...]",
	Short: "Renumber element identifiers hierarchically",
	Long: `Renumber every region, line, word and glyph with sequential
hierarchical identifiers: regions become r1, r2, ... following the
page's reading order, and children are numbered per parent, so the
second word of the first line of region r3 becomes r3l1w2. Reading
order references are rewritten to the new identifiers.

Examples:
  pagemend reassign-ids scans/ --overwrite
  pagemend reassign-ids scans/ --order document`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		order, _ := cmd.Flags().GetString("order")
		mode := model.ReadingOrderMode(order)
		if !mode.Valid() {
			return fmt.Errorf("invalid reading order mode %q", order)
		}
		return runBatch(cmd, args, ops.ReassignIDs{Mode: mode})
	},
}

func init() {
	reassignIDsCmd.Flags().String("order", string(model.OrderAuto),
		"region order the numbering follows (auto, reading_order, document)")
	rootCmd.AddCommand(reassignIDsCmd)
}
