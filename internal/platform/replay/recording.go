// Package replay is a host backend that plays back recorded accessibility
// sessions: a list of connect, event and interrupt steps, each event carrying
// the windows and node tree the host reported at that moment.
package replay

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mj1618/a11y-reporter/internal/model"
)

// ErrInvalidRecording wraps every decode and validation failure.
var ErrInvalidRecording = errors.New("invalid recording")

// Recording is a captured host session.
type Recording struct {
	Name  string `yaml:"name,omitempty" json:"name,omitempty"`
	Steps []Step `yaml:"steps"          json:"steps"`
}

// Step is one host callback. Exactly one of Connect, Event and Interrupt is
// set.
type Step struct {
	Connect   bool            `yaml:"connect,omitempty"   json:"connect,omitempty"`
	Interrupt bool            `yaml:"interrupt,omitempty" json:"interrupt,omitempty"`
	Event     *model.Event    `yaml:"event,omitempty"     json:"event,omitempty"`
	Windows   []model.Window  `yaml:"windows,omitempty"   json:"windows,omitempty"`
	Root      *model.NodeInfo `yaml:"root,omitempty"      json:"root,omitempty"`
}

// Kind names the callback a step delivers.
func (s Step) Kind() string {
	switch {
	case s.Connect:
		return "connect"
	case s.Interrupt:
		return "interrupt"
	case s.Event != nil:
		return "event"
	default:
		return "empty"
	}
}

// EventCount returns the number of event steps.
func (r *Recording) EventCount() int {
	n := 0
	for _, s := range r.Steps {
		if s.Event != nil {
			n++
		}
	}
	return n
}

// Load reads and validates a recording file. Files ending in .json are
// decoded as JSON, everything else as YAML.
func Load(path string) (*Recording, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read recording: %w", err)
	}
	format := "yaml"
	if strings.EqualFold(filepath.Ext(path), ".json") {
		format = "json"
	}
	rec, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if rec.Name == "" {
		rec.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return rec, nil
}

// Parse decodes a recording in the given format ("yaml" or "json"),
// validates it against the recording schema and checks step invariants.
func Parse(data []byte, format string) (*Recording, error) {
	var doc interface{}
	switch format {
	case "json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: json decode: %v", ErrInvalidRecording, err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: yaml decode: %v", ErrInvalidRecording, err)
		}
	default:
		return nil, fmt.Errorf("unsupported recording format: %s (use yaml or json)", format)
	}

	if err := validateSchema(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecording, err)
	}

	// JSON is a subset of YAML, so one typed decode serves both formats.
	var rec Recording
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecording, err)
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Validate checks that every step delivers exactly one callback and that
// windows and trees only accompany events.
func (r *Recording) Validate() error {
	for i, s := range r.Steps {
		n := 0
		if s.Connect {
			n++
		}
		if s.Interrupt {
			n++
		}
		if s.Event != nil {
			n++
		}
		if n != 1 {
			return fmt.Errorf("%w: step %d: want exactly one of connect, event, interrupt", ErrInvalidRecording, i)
		}
		if s.Event == nil && (len(s.Windows) > 0 || s.Root != nil) {
			return fmt.Errorf("%w: step %d: windows and root are only allowed on event steps", ErrInvalidRecording, i)
		}
	}
	return nil
}
