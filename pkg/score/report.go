package score

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mchmarny/gradestat/pkg/i18n"
	"gopkg.in/yaml.v3"
)

// Format selects how Report renders Stats.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported output formats.
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

// ParseFormat converts a flag value into a Format. Empty defaults to text.
func ParseFormat(v string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", string(FormatText):
		return FormatText, nil
	case string(FormatJSON):
		return FormatJSON, nil
	case string(FormatYAML), "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format: %s", v)
	}
}

// Report writes s to w. The text format prints the average with two decimal
// places followed by the maximum and minimum, labeled from m.
func Report(w io.Writer, s *Stats, f Format, m *i18n.Messages) error {
	if w == nil {
		return errors.New("writer required")
	}
	if s == nil {
		return errors.New("stats required")
	}
	if m == nil {
		m = i18n.Default()
	}

	switch f {
	case FormatJSON:
		e := json.NewEncoder(w)
		e.SetIndent("", "  ")
		if err := e.Encode(s); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
	case FormatYAML:
		e := yaml.NewEncoder(w)
		if err := e.Encode(s); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		if err := e.Close(); err != nil {
			return fmt.Errorf("flushing yaml: %w", err)
		}
	case FormatText, "":
		if _, err := fmt.Fprintf(w, "%s:%.2f\n%s:%d\n%s:%d\n",
			m.AverageLabel, s.Average,
			m.MaxLabel, s.Max,
			m.MinLabel, s.Min); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format: %s", f)
	}
	return nil
}
