package model

import "fmt"

// WindowType classifies an on-screen window.
type WindowType int

const (
	WindowTypeApplication          WindowType = 1
	WindowTypeInputMethod          WindowType = 2
	WindowTypeSystem               WindowType = 3
	WindowTypeAccessibilityOverlay WindowType = 4
	WindowTypeSplitScreenDivider   WindowType = 5
)

func (t WindowType) String() string {
	switch t {
	case WindowTypeApplication:
		return "TYPE_APPLICATION"
	case WindowTypeInputMethod:
		return "TYPE_INPUT_METHOD"
	case WindowTypeSystem:
		return "TYPE_SYSTEM"
	case WindowTypeAccessibilityOverlay:
		return "TYPE_ACCESSIBILITY_OVERLAY"
	case WindowTypeSplitScreenDivider:
		return "TYPE_SPLIT_SCREEN_DIVIDER"
	default:
		return "TYPE_UNKNOWN"
	}
}

// Window is a point-in-time snapshot of one on-screen window.
type Window struct {
	ID      int        `yaml:"id"                json:"id"`
	Type    WindowType `yaml:"type,omitempty"    json:"type,omitempty"`
	Layer   int        `yaml:"layer,omitempty"   json:"layer,omitempty"`
	Title   string     `yaml:"title,omitempty"   json:"title,omitempty"`
	Bounds  [4]int     `yaml:"bounds,flow"       json:"bounds"`
	Active  bool       `yaml:"active,omitempty"  json:"active,omitempty"`
	Focused bool       `yaml:"focused,omitempty" json:"focused,omitempty"`
}

// String is the window's default descriptive representation.
func (w Window) String() string {
	return fmt.Sprintf("AccessibilityWindowInfo[id=%d, type=%s, title=%s, layer=%d, bounds=%s, focused=%t, active=%t]",
		w.ID, w.Type, w.Title, w.Layer, formatBounds(w.Bounds), w.Focused, w.Active)
}

func formatBounds(b [4]int) string {
	return fmt.Sprintf("[%d,%d,%d,%d]", b[0], b[1], b[2], b[3])
}
