package runner

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Render writes reports to w in the given format.
func Render(w io.Writer, format string, reports []Report) error {
	switch format {
	case FormatText:
		_, err := io.WriteString(w, renderText(reports))
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func renderText(reports []Report) string {
	var b strings.Builder
	for i, r := range reports {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Day %d: %s\n", r.Day, r.Title)
		for _, p := range r.Parts {
			fmt.Fprintf(&b, "  %s: %s (took %s)\n", p.Name, p.Answer, p.Took)
		}
	}
	return b.String()
}
