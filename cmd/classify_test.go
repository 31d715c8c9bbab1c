package cmd

import (
	"encoding/json"
	"testing"

	"github.com/mj1618/a11y-reporter/internal/model"
	"github.com/mj1618/a11y-reporter/internal/output"
)

func TestClassifyCommand_Codes(t *testing.T) {
	stdout, _, err := runCLI(t, "classify", "1", "view_scrolled", "999", "--format", "json")
	if err != nil {
		t.Fatal(err)
	}
	var entries []output.ClassifyEntry
	if err := json.Unmarshal([]byte(stdout), &entries); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, stdout)
	}
	want := []output.ClassifyEntry{
		{Code: 1, Label: "TYPE_VIEW_CLICKED", Known: true},
		{Code: 4096, Label: "TYPE_VIEW_SCROLLED", Known: true},
		{Code: 999, Label: "unknown (999)", Known: false},
	}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(entries), len(want))
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entry %d: got %+v, want %+v", i, entries[i], want[i])
		}
	}
}

func TestClassifyCommand_ListsAllKnown(t *testing.T) {
	stdout, _, err := runCLI(t, "classify", "--format", "json")
	if err != nil {
		t.Fatal(err)
	}
	var entries []output.ClassifyEntry
	if err := json.Unmarshal([]byte(stdout), &entries); err != nil {
		t.Fatal(err)
	}
	if len(entries) != len(model.KnownEventTypes()) {
		t.Errorf("got %d entries, want %d", len(entries), len(model.KnownEventTypes()))
	}
}

func TestClassifyCommand_UnknownName(t *testing.T) {
	if _, _, err := runCLI(t, "classify", "TYPE_NOPE"); err == nil {
		t.Error("expected error for unknown name")
	}
}
