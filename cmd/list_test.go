package cmd

import (
	"strings"
	"testing"

	"github.com/mj1618/a11y-reporter/internal/model"
	"gopkg.in/yaml.v3"
)

func TestListCommand_Flags(t *testing.T) {
	flags := listCmd.Flags()

	tests := []struct {
		name     string
		flagType string
	}{
		{"step", "int"},
		{"pretty", "bool"},
	}

	for _, tt := range tests {
		f := flags.Lookup(tt.name)
		if f == nil {
			t.Errorf("expected flag %q not found", tt.name)
			continue
		}
		if f.Value.Type() != tt.flagType {
			t.Errorf("flag %q: expected type %q, got %q", tt.name, tt.flagType, f.Value.Type())
		}
	}
}

func TestListCommand_DeduplicatesWindows(t *testing.T) {
	stdout, _, err := runCLI(t, "list", fixtureYAML)
	if err != nil {
		t.Fatal(err)
	}
	var windows []model.Window
	if err := yaml.Unmarshal([]byte(stdout), &windows); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, stdout)
	}
	if len(windows) != 2 {
		t.Fatalf("expected 2 unique windows, got %d", len(windows))
	}
	if windows[0].Title != "Settings" || windows[1].Title != "StatusBar" {
		t.Errorf("unexpected windows: %+v", windows)
	}
}

func TestListCommand_Step(t *testing.T) {
	stdout, _, err := runCLI(t, "list", fixtureYAML, "--step", "3", "--format", "json")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(stdout) != "[]" {
		t.Errorf("interrupt step has no windows, got %q", stdout)
	}

	if _, _, err := runCLI(t, "list", fixtureYAML, "--step", "9"); err == nil {
		t.Error("expected out of range error")
	}
}
