package model

import (
	"reflect"
	"testing"
)

func TestServiceFlag_Names(t *testing.T) {
	f := FlagDefault | FlagReportViewIDs | FlagRetrieveInteractiveWindows
	want := []string{"DEFAULT", "FLAG_REPORT_VIEW_IDS", "FLAG_RETRIEVE_INTERACTIVE_WINDOWS"}
	if got := f.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	if got := ServiceFlag(0).String(); got != "0" {
		t.Errorf("zero flags String() = %q", got)
	}
	if got := (FlagDefault | 1<<10).String(); got != "DEFAULT|0x400" {
		t.Errorf("unknown bit String() = %q", got)
	}
}

func TestServiceInfo_Describe(t *testing.T) {
	info := ServiceInfo{EventTypes: TypesAllMask, Flags: FlagDefault, FeedbackType: FeedbackGeneric}
	doc := info.Describe()
	if doc.EventTypes != "TYPES_ALL_MASK" {
		t.Errorf("event types: got %q", doc.EventTypes)
	}
	if !reflect.DeepEqual(doc.Flags, []string{"DEFAULT"}) {
		t.Errorf("flags: got %v", doc.Flags)
	}
	if doc.FeedbackType != "FEEDBACK_GENERIC" {
		t.Errorf("feedback: got %q", doc.FeedbackType)
	}

	partial := ServiceInfo{EventTypes: uint32(TypeViewClicked | TypeViewFocused)}.Describe()
	if partial.EventTypes != "0x00000009" {
		t.Errorf("partial mask: got %q", partial.EventTypes)
	}
	if partial.Flags == nil || len(partial.Flags) != 0 {
		t.Errorf("no flags should render as empty list, got %#v", partial.Flags)
	}
}

func TestServiceInfo_Has(t *testing.T) {
	info := ServiceInfo{Flags: FlagDefault | FlagReportViewIDs}
	if !info.Has(FlagReportViewIDs) {
		t.Error("expected FlagReportViewIDs")
	}
	if info.Has(FlagReportViewIDs | FlagRetrieveInteractiveWindows) {
		t.Error("Has should require every bit")
	}
}

func TestServiceInfo_Equal(t *testing.T) {
	base := ServiceInfo{EventTypes: TypesAllMask, Flags: FlagDefault, FeedbackType: FeedbackGeneric}
	tests := []struct {
		name  string
		other ServiceInfo
		want  bool
	}{
		{"same", base, true},
		{"flags", ServiceInfo{EventTypes: TypesAllMask, Flags: FlagDefault | FlagReportViewIDs, FeedbackType: FeedbackGeneric}, false},
		{"event types", ServiceInfo{EventTypes: uint32(TypeViewClicked), Flags: FlagDefault, FeedbackType: FeedbackGeneric}, false},
		{"feedback", ServiceInfo{EventTypes: TypesAllMask, Flags: FlagDefault, FeedbackType: FeedbackSpoken}, false},
	}
	for _, tt := range tests {
		if got := base.Equal(tt.other); got != tt.want {
			t.Errorf("%s: Equal = %v, want %v", tt.name, got, tt.want)
		}
	}
}
