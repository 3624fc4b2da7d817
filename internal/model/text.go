package model

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/pagemend/pagemend/internal/pagexml"
)

// TextLevel selects the granularity of transcription deletion.
type TextLevel string

const (
	LevelWord   TextLevel = "word"
	LevelLine   TextLevel = "line"
	LevelRegion TextLevel = "region"
)

// Valid reports whether l names a known text level.
func (l TextLevel) Valid() bool {
	switch l {
	case LevelWord, LevelLine, LevelRegion:
		return true
	}
	return false
}

// DeleteTextLevel removes transcription content at the given
// granularity without touching geometry: word level removes the Word
// elements themselves, line level strips line TextEquiv nodes, region
// level strips region TextEquiv nodes.
func (p *Page) DeleteTextLevel(level TextLevel) error {
	if !level.Valid() {
		return fmt.Errorf("invalid text level %q", string(level))
	}
	for _, region := range p.Regions() {
		switch level {
		case LevelRegion:
			region.el.TextEquiv = nil
		case LevelLine:
			for _, line := range region.Lines {
				line.el.TextEquiv = nil
			}
		case LevelWord:
			for _, line := range region.Lines {
				line.el.Words = nil
			}
		}
	}
	return nil
}

// FullTextOptions controls ExtractFullText.
type FullTextOptions struct {
	// Dehyphenate joins lines broken by end-of-line hyphenation.
	Dehyphenate bool
	// UseReadingOrder walks regions in resolved reading order instead
	// of raw document order.
	UseReadingOrder bool
	// Mode resolves the reading order when UseReadingOrder is set.
	Mode ReadingOrderMode
	// Delimiter joins the extracted lines; defaults to "\n".
	Delimiter string
}

// ExtractFullText concatenates the line transcriptions of the page.
// The output is NFC-normalized.
func (p *Page) ExtractFullText(opts FullTextOptions) (string, error) {
	delimiter := opts.Delimiter
	if delimiter == "" {
		delimiter = "\n"
	}
	mode := opts.Mode
	if mode == "" {
		mode = OrderAuto
	}

	var lines []string
	if opts.UseReadingOrder {
		order, err := p.ReadingOrderIDs(mode)
		if err != nil {
			return "", err
		}
		for _, id := range order {
			if region := p.regionByID(id); region != nil {
				lines = append(lines, regionLineTexts(region)...)
			}
		}
	} else {
		for _, region := range p.Regions() {
			for _, line := range region.Lines {
				if t := line.Text(); t != "" {
					lines = append(lines, t)
				}
			}
		}
	}

	if opts.Dehyphenate {
		lines = Dehyphenate(lines)
	}
	return norm.NFC.String(strings.Join(lines, delimiter)), nil
}

// regionLineTexts collects line transcriptions of a region element,
// recursing through table cells.
func regionLineTexts(region *pagexml.Region) []string {
	var out []string
	for _, cell := range region.Cells {
		out = append(out, regionLineTexts(cell)...)
	}
	for _, line := range region.TextLines {
		if line.TextEquiv != nil && line.TextEquiv.Unicode != "" {
			out = append(out, line.TextEquiv.Unicode)
		}
	}
	return out
}

// hyphens are the line-final glyphs treated as hyphenation marks,
// following the OCR-D transcription guidelines.
var hyphens = []rune{'-', '­', '⹀', '⸗'}

func isHyphen(r rune) bool {
	for _, h := range hyphens {
		if r == h {
			return true
		}
	}
	return false
}

func endsWithHyphen(s string) bool {
	r, size := utf8.DecodeLastRuneInString(s)
	return size > 0 && isHyphen(r)
}

// Dehyphenate joins lines broken by hyphenation: a line ending in a
// hyphen glyph is fused with the following line, unless that line
// starts with an uppercase letter — then the hyphen marks a genuine
// word boundary and is kept. Joins chain, so a run of hyphenated
// lines collapses into one.
func Dehyphenate(lines []string) []string {
	work := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			work = append(work, line)
		}
	}
	var out []string
	for i := 0; i < len(work); i++ {
		line := work[i]
		for endsWithHyphen(line) && i+1 < len(work) {
			next := work[i+1]
			if first, _ := utf8.DecodeRuneInString(next); unicode.IsUpper(first) {
				break
			}
			line = strings.TrimRightFunc(line, isHyphen) + next
			i++
		}
		out = append(out, line)
	}
	return out
}
