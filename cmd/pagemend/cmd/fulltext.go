package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pagemend/pagemend/internal/batch"
	"github.com/pagemend/pagemend/internal/model"
)

var fulltextCmd = &cobra.Command{
	Use:   "fulltext [files...]",
	Short: "Export plain text from PAGE-XML files",
	Long: `Extract the line transcriptions of each file into a plain-text file
next to the usual output location, one .txt per page, following the
page's reading order. The output is NFC-normalized.

Examples:
  pagemend fulltext scans/
  pagemend fulltext scans/ --dehyphenate -o texts/`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		paths, err := resolveInputs(cfg, args)
		if err != nil {
			return err
		}
		files, err := batch.DiscoverFiles(paths)
		if err != nil {
			return err
		}

		dehyphenate, _ := cmd.Flags().GetBool("dehyphenate")
		order, _ := cmd.Flags().GetString("order")
		mode := model.ReadingOrderMode(order)
		if !mode.Valid() {
			return fmt.Errorf("invalid reading order mode %q", order)
		}
		opts := model.FullTextOptions{
			Dehyphenate:     dehyphenate,
			UseReadingOrder: true,
			Mode:            mode,
		}
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		bc := batchConfig(cfg, cmd)

		failed := 0
		for _, file := range files {
			if err := exportFulltext(file, bc, opts, dryRun); err != nil {
				slog.Warn("fulltext export failed", "file", file, "error", err)
				failed++
			}
		}
		if failed == len(files) {
			return fmt.Errorf("all files failed")
		}
		return nil
	},
}

// exportFulltext writes one page's text beside the regular output
// location, with a .txt extension.
func exportFulltext(file string, bc *batch.Config, opts model.FullTextOptions, dryRun bool) error {
	page, err := model.Load(file)
	if err != nil {
		return err
	}
	text, err := page.ExtractFullText(opts)
	if err != nil {
		return err
	}
	out := bc.OutputPath(file)
	out = strings.TrimSuffix(out, filepath.Ext(out)) + ".txt"
	if dryRun {
		slog.Info("dry run, not writing", "file", file, "output", out)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o750); err != nil {
		return err
	}
	return os.WriteFile(out, []byte(text+"\n"), 0o600)
}

func init() {
	fulltextCmd.Flags().Bool("dehyphenate", false, "join lines broken by end-of-line hyphenation")
	fulltextCmd.Flags().String("order", string(model.OrderAuto),
		"region order of the exported text (auto, reading_order, document)")
	rootCmd.AddCommand(fulltextCmd)
}
