package batch

import (
	"fmt"
	"strings"

	"github.com/pagemend/pagemend/internal/model"
)

// FileStats are the element counts of one page.
type FileStats struct {
	File      string `json:"file" yaml:"file"`
	Regions   int    `json:"regions" yaml:"regions"`
	TextLines int    `json:"textlines" yaml:"textlines"`
	Words     int    `json:"words" yaml:"words"`
	Glyphs    int    `json:"glyphs" yaml:"glyphs"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
}

// StatsReport aggregates element counts over a batch of pages.
type StatsReport struct {
	Files []FileStats `json:"files" yaml:"files"`
	Total FileStats   `json:"total" yaml:"total"`
}

// CollectStats counts regions, lines, words and glyphs for every file
// in paths. Unreadable files are reported per file, not fatally.
func CollectStats(paths []string) (*StatsReport, error) {
	files, err := DiscoverFiles(paths)
	if err != nil {
		return nil, err
	}
	report := &StatsReport{Total: FileStats{File: "total"}}
	for _, file := range files {
		fs := FileStats{File: file}
		page, err := model.Load(file)
		if err != nil {
			fs.Error = err.Error()
			report.Files = append(report.Files, fs)
			continue
		}
		fs.Regions = len(page.Regions())
		fs.TextLines = page.Count(model.CountTextLines)
		fs.Words = page.Count(model.CountWords)
		fs.Glyphs = page.Count(model.CountGlyphs)
		report.Files = append(report.Files, fs)

		report.Total.Regions += fs.Regions
		report.Total.TextLines += fs.TextLines
		report.Total.Words += fs.Words
		report.Total.Glyphs += fs.Glyphs
	}
	return report, nil
}

// String renders the statistics as an aligned text table.
func (s *StatsReport) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-40s %8s %10s %8s %8s\n", "file", "regions", "textlines", "words", "glyphs")
	for _, fs := range s.Files {
		if fs.Error != "" {
			fmt.Fprintf(&b, "%-40s error: %s\n", fs.File, fs.Error)
			continue
		}
		fmt.Fprintf(&b, "%-40s %8d %10d %8d %8d\n", fs.File, fs.Regions, fs.TextLines, fs.Words, fs.Glyphs)
	}
	fmt.Fprintf(&b, "%-40s %8d %10d %8d %8d\n",
		"total", s.Total.Regions, s.Total.TextLines, s.Total.Words, s.Total.Glyphs)
	return b.String()
}
