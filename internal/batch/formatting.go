package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Report formats supported by FormatReport.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// FormatReport renders any report value (batch results, statistics)
// in the requested format. Text formatting is delegated to the
// value's fmt.Stringer when it has one.
func FormatReport(v any, format string) (string, error) {
	switch format {
	case FormatJSON:
		bts, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encoding report: %w", err)
		}
		return string(bts) + "\n", nil
	case FormatYAML:
		bts, err := yaml.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("encoding report: %w", err)
		}
		return string(bts), nil
	case FormatText, "":
		if s, ok := v.(fmt.Stringer); ok {
			return s.String(), nil
		}
		return fmt.Sprintf("%v\n", v), nil
	}
	return "", fmt.Errorf("unknown format %q", format)
}

// String renders the batch result as a plain-text report.
func (r *Result) String() string {
	var b strings.Builder
	for _, fr := range r.Files {
		switch {
		case fr.Error != "":
			fmt.Fprintf(&b, "FAIL %s: %s\n", fr.Input, fr.Error)
		case fr.Output != "":
			fmt.Fprintf(&b, "ok   %s -> %s (%d lines)\n", fr.Input, fr.Output, fr.Lines)
		default:
			fmt.Fprintf(&b, "ok   %s (%d lines)\n", fr.Input, fr.Lines)
		}
	}
	b.WriteString(r.Summary())
	b.WriteString("\n")
	return b.String()
}

// SaveReport writes a formatted report to outputFile, or stdout when
// outputFile is empty.
func SaveReport(v any, format, outputFile string) error {
	output, err := FormatReport(v, format)
	if err != nil {
		return err
	}
	if outputFile == "" {
		_, err = fmt.Fprint(os.Stdout, output)
		return err
	}
	if err := os.WriteFile(outputFile, []byte(output), 0o600); err != nil {
		return fmt.Errorf("writing report %s: %w", outputFile, err)
	}
	return nil
}
