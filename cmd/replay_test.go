package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mj1618/a11y-reporter/internal/model"
	"github.com/mj1618/a11y-reporter/internal/output"
	"gopkg.in/yaml.v3"
)

func TestReplayCommand_Inspector(t *testing.T) {
	stdout, stderr, err := runCLI(t, "replay", fixtureYAML, "--revision", "2", "--log-format", "json")
	if err != nil {
		t.Fatal(err)
	}

	var result output.ReplayResult
	if err := yaml.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("summary is not valid YAML: %v\n%s", err, stdout)
	}
	if result.Recording != "settings-walkthrough" || result.Events != 3 || result.Steps != 5 {
		t.Errorf("unexpected summary: %+v", result)
	}
	if result.State != "connected" {
		t.Errorf("state: got %q", result.State)
	}

	var msgs []string
	for _, line := range strings.Split(strings.TrimSpace(stderr), "\n") {
		var rec map[string]any
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			t.Fatalf("log line is not JSON: %q", line)
		}
		if rec["level"] == "VERBOSE" {
			if rec["tag"] != "A11yReporter" {
				t.Errorf("missing tag on %q", line)
			}
			msgs = append(msgs, rec["msg"].(string))
		}
	}
	if len(msgs) == 0 || msgs[0] != "onServiceConnected" {
		t.Fatalf("expected onServiceConnected first, got %v", msgs)
	}
	want := []string{"windows: 2", "   android.widget.TextView; text: Settings; contentDescription: ; viewId: com.android.settings:id/title; bounds: [42,84,400,140]; clickable: false; focused: false", "windows: 0", "dumpNode: no root node, stopping"}
	for _, w := range want {
		if !contains(msgs, w) {
			t.Errorf("missing log line %q", w)
		}
	}
}

func TestReplayCommand_BasicRevisionFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.toml")
	if err := os.WriteFile(path, []byte("[reporter]\nrevision = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	stdout, stderr, err := runCLI(t, "replay", fixtureYAML, "--config", path, "--format", "json")
	if err != nil {
		t.Fatal(err)
	}
	var result output.ReplayResult
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatal(err)
	}
	if result.Revision != 1 {
		t.Errorf("revision: got %d, want 1", result.Revision)
	}
	if strings.Contains(stderr, "windows:") {
		t.Error("basic revision must not list windows")
	}
	if got := strings.Count(stderr, "onAccessibilityEvent:"); got != 3 {
		t.Errorf("expected 3 event lines, got %d", got)
	}
}

func TestReplayCommand_Errors(t *testing.T) {
	if _, _, err := runCLI(t, "replay", "missing.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
	if _, _, err := runCLI(t, "replay", fixtureYAML, "--revision", "7"); err == nil {
		t.Error("expected error for bad revision")
	}
	if _, _, err := runCLI(t, "replay", fixtureYAML, "--backend", "adb"); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestServiceInfoCommand(t *testing.T) {
	stdout, _, err := runCLI(t, "service-info", "--revision", "1", "--format", "json")
	if err != nil {
		t.Fatal(err)
	}
	var doc model.ServiceInfoDoc
	if err := json.Unmarshal([]byte(stdout), &doc); err != nil {
		t.Fatal(err)
	}
	if len(doc.Flags) != 1 || doc.Flags[0] != "DEFAULT" {
		t.Errorf("revision 1 flags: got %v", doc.Flags)
	}

	stdout, _, err = runCLI(t, "service-info", "--format", "json")
	if err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal([]byte(stdout), &doc); err != nil {
		t.Fatal(err)
	}
	for _, f := range []string{"FLAG_RETRIEVE_INTERACTIVE_WINDOWS", "FLAG_REQUEST_ENHANCED_WEB_ACCESSIBILITY", "FLAG_REPORT_VIEW_IDS"} {
		if !contains(doc.Flags, f) {
			t.Errorf("default revision should request %s, got %v", f, doc.Flags)
		}
	}
}

func TestTreeCommand(t *testing.T) {
	stdout, _, err := runCLI(t, "tree", fixtureYAML, "--format", "json")
	if err != nil {
		t.Fatal(err)
	}
	var result output.TreeResult
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatal(err)
	}
	if result.Count != 3 || result.Nodes[1].Path != "FrameLayout > TextView" {
		t.Errorf("unexpected tree: %+v", result)
	}
}

func TestTreeCommand_Against(t *testing.T) {
	stdout, _, err := runCLI(t, "tree", fixtureYAML, "--against", "1", "--step", "1", "--format", "json")
	if err != nil {
		t.Fatal(err)
	}
	var result output.TreeDiffResult
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatal(err)
	}
	if result.From != 1 || result.To != 1 || len(result.Changes) != 0 {
		t.Errorf("unexpected diff: %+v", result)
	}

	if _, _, err := runCLI(t, "tree", fixtureYAML, "--against", "1"); err == nil {
		t.Error("expected error: fixture has a single tree")
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
