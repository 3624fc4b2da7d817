package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pagemend/pagemend/internal/model"
	"github.com/pagemend/pagemend/internal/ops"
)

var deleteTextCmd = &cobra.Command{
	Use:   "delete-text [files...]",
	Short: "Remove transcription content at one granularity",
	Long: `Remove transcription content without touching geometry: word level
removes the Word elements themselves, line level strips line
transcriptions, region level strips region transcriptions.

Examples:
  pagemend delete-text scans/ --level region
  pagemend delete-text scans/ --level word --overwrite`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		levelStr, _ := cmd.Flags().GetString("level")
		level := model.TextLevel(levelStr)
		if !level.Valid() {
			return fmt.Errorf("invalid text level %q", levelStr)
		}
		return runBatch(cmd, args, ops.DeleteText{Level: level})
	},
}

func init() {
	deleteTextCmd.Flags().String("level", string(model.LevelRegion),
		"granularity to delete (word, line, region)")
	rootCmd.AddCommand(deleteTextCmd)
}
