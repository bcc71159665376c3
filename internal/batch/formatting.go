package batch

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sujinee01/Image-Verification-Automation-System/internal/pipeline"
	"gopkg.in/yaml.v3"
)

// FormatResults renders a batch result in the given output format.
func FormatResults(res *Result, format string, showText bool) (string, error) {
	switch format {
	case pipeline.FormatJSON:
		bts, err := json.MarshalIndent(res, "", "  ")
		return string(bts), err
	case pipeline.FormatYAML:
		bts, err := yaml.Marshal(res)
		return string(bts), err
	default:
		return formatText(res, showText), nil
	}
}

func formatText(res *Result, showText bool) string {
	var output strings.Builder
	for i, item := range res.Items {
		if i > 0 {
			output.WriteString("\n")
		}
		fmt.Fprintf(&output, "# %s\n", item.Path)
		if item.Err != "" {
			fmt.Fprintf(&output, "error: %s\n", item.Err)
			continue
		}
		output.WriteString(pipeline.ToPlainText(item.Result, showText))
	}
	fmt.Fprintf(&output, "\nprocessed %d images: %d valid, %d invalid, %d failed\n",
		len(res.Items), res.Valid, res.Invalid, res.Failed)
	return output.String()
}
