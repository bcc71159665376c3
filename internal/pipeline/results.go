package pipeline

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output format identifiers shared by the CLI and the server.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidFormats lists the supported output formats.
var ValidFormats = []string{FormatText, FormatJSON, FormatYAML}

// IsValidFormat reports whether the format name is supported.
func IsValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if format == f {
			return true
		}
	}
	return false
}

// ToPlainText renders a result as the two human-readable blocks: the raw
// extracted text and the validation report.
func ToPlainText(res *Result, showText bool) string {
	var sb strings.Builder
	if showText {
		sb.WriteString("----- extracted text -----\n")
		sb.WriteString(res.Text)
		if !strings.HasSuffix(res.Text, "\n") {
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("----- validation report -----\n")
	fmt.Fprintf(&sb, "misspelled words: %s\n", joinOrNone(res.Report.MisspelledWords))
	fmt.Fprintf(&sb, "non-blank lines: %d\n", res.Report.LineCount)
	if res.Report.IsValid {
		sb.WriteString("all checks passed\n")
		return sb.String()
	}
	sb.WriteString("issues found:\n")
	for _, e := range res.Report.Errors {
		fmt.Fprintf(&sb, "- %s\n", e)
	}
	return sb.String()
}

// ToJSON renders a result as indented JSON.
func ToJSON(res *Result) (string, error) {
	bts, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(bts), nil
}

// ToYAML renders a result as YAML.
func ToYAML(res *Result) (string, error) {
	bts, err := yaml.Marshal(res)
	if err != nil {
		return "", fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return string(bts), nil
}

func joinOrNone(words []string) string {
	if len(words) == 0 {
		return "(none)"
	}
	return strings.Join(words, ", ")
}
