package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/mj1618/a11y-reporter/internal/model"
)

// Format represents the output format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatYAML

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatYAML, FormatJSON:
		return Format(s), nil
	case "":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format: %s (use yaml or json)", s)
	}
}

// ClassifyEntry is one row of the `classify` command.
type ClassifyEntry struct {
	Code  int    `yaml:"code"  json:"code"`
	Label string `yaml:"label" json:"label"`
	Known bool   `yaml:"known" json:"known"`
}

// ReplayResult is the summary printed after the `replay` command.
type ReplayResult struct {
	Session   string   `yaml:"session"         json:"session"`
	Recording string   `yaml:"recording"       json:"recording"`
	Revision  int      `yaml:"revision"        json:"revision"`
	Steps     int      `yaml:"steps"           json:"steps"`
	Events    int      `yaml:"events"          json:"events"`
	State     string   `yaml:"state"           json:"state"`
	Handles   any      `yaml:"handles"         json:"handles"`
	Lines     []string `yaml:"lines,omitempty" json:"lines,omitempty"`
}

// TreeResult is the output of the `tree` command.
type TreeResult struct {
	Recording string           `yaml:"recording" json:"recording"`
	Step      int              `yaml:"step"      json:"step"`
	Event     string           `yaml:"event"     json:"event"`
	Count     int              `yaml:"count"     json:"count"`
	Nodes     []model.FlatNode `yaml:"nodes"     json:"nodes"`
}

// TreeDiffResult is the output of `tree --against`.
type TreeDiffResult struct {
	Recording string             `yaml:"recording" json:"recording"`
	From      int                `yaml:"from"      json:"from"`
	To        int                `yaml:"to"        json:"to"`
	Changes   []model.NodeChange `yaml:"changes"   json:"changes"`
}

// Fprint serializes v to w in the current output format.
func Fprint(w io.Writer, v interface{}) error {
	switch OutputFormat {
	case FormatJSON:
		return WriteJSON(w, v, PrettyOutput)
	case FormatYAML:
		return WriteYAML(w, v)
	default:
		return fmt.Errorf("unsupported output format: %s", OutputFormat)
	}
}

// WriteJSON serializes v to w as JSON.
// If pretty is true, uses indentation; otherwise single-line.
func WriteJSON(w io.Writer, v interface{}, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}

// WriteYAML serializes v to w as YAML.
func WriteYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}
