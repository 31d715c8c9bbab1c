package model

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// EventType is a host-defined accessibility event code. Codes are single bits
// so that a set of them can be expressed as a mask.
type EventType int

const (
	TypeViewClicked                            EventType = 1 << 0
	TypeViewLongClicked                        EventType = 1 << 1
	TypeViewSelected                           EventType = 1 << 2
	TypeViewFocused                            EventType = 1 << 3
	TypeViewTextChanged                        EventType = 1 << 4
	TypeWindowStateChanged                     EventType = 1 << 5
	TypeNotificationStateChanged               EventType = 1 << 6
	TypeViewHoverEnter                         EventType = 1 << 7
	TypeViewHoverExit                          EventType = 1 << 8
	TypeTouchExplorationGestureStart           EventType = 1 << 9
	TypeTouchExplorationGestureEnd             EventType = 1 << 10
	TypeWindowContentChanged                   EventType = 1 << 11
	TypeViewScrolled                           EventType = 1 << 12
	TypeViewTextSelectionChanged               EventType = 1 << 13
	TypeAnnouncement                           EventType = 1 << 14
	TypeViewAccessibilityFocused               EventType = 1 << 15
	TypeViewAccessibilityFocusCleared          EventType = 1 << 16
	TypeViewTextTraversedAtMovementGranularity EventType = 1 << 17
	TypeGestureDetectionStart                  EventType = 1 << 18
	TypeGestureDetectionEnd                    EventType = 1 << 19
	TypeTouchInteractionStart                  EventType = 1 << 20
	TypeTouchInteractionEnd                    EventType = 1 << 21
	TypeWindowsChanged                         EventType = 1 << 22
	TypeViewContextClicked                     EventType = 1 << 23
)

// TypesAllMask requests every event type, including ones added after this
// list was written.
const TypesAllMask uint32 = 0xFFFFFFFF

var eventTypeLabels = map[EventType]string{
	TypeViewClicked:                            "TYPE_VIEW_CLICKED",
	TypeViewLongClicked:                        "TYPE_VIEW_LONG_CLICKED",
	TypeViewSelected:                           "TYPE_VIEW_SELECTED",
	TypeViewFocused:                            "TYPE_VIEW_FOCUSED",
	TypeViewTextChanged:                        "TYPE_VIEW_TEXT_CHANGED",
	TypeWindowStateChanged:                     "TYPE_WINDOW_STATE_CHANGED",
	TypeNotificationStateChanged:               "TYPE_NOTIFICATION_STATE_CHANGED",
	TypeViewHoverEnter:                         "TYPE_VIEW_HOVER_ENTER",
	TypeViewHoverExit:                          "TYPE_VIEW_HOVER_EXIT",
	TypeTouchExplorationGestureStart:           "TYPE_TOUCH_EXPLORATION_GESTURE_START",
	TypeTouchExplorationGestureEnd:             "TYPE_TOUCH_EXPLORATION_GESTURE_END",
	TypeWindowContentChanged:                   "TYPE_WINDOW_CONTENT_CHANGED",
	TypeViewScrolled:                           "TYPE_VIEW_SCROLLED",
	TypeViewTextSelectionChanged:               "TYPE_VIEW_TEXT_SELECTION_CHANGED",
	TypeAnnouncement:                           "TYPE_ANNOUNCEMENT",
	TypeViewAccessibilityFocused:               "TYPE_VIEW_ACCESSIBILITY_FOCUSED",
	TypeViewAccessibilityFocusCleared:          "TYPE_VIEW_ACCESSIBILITY_FOCUS_CLEARED",
	TypeViewTextTraversedAtMovementGranularity: "TYPE_VIEW_TEXT_TRAVERSED_AT_MOVEMENT_GRANULARITY",
	TypeGestureDetectionStart:                  "TYPE_GESTURE_DETECTION_START",
	TypeGestureDetectionEnd:                    "TYPE_GESTURE_DETECTION_END",
	TypeTouchInteractionStart:                  "TYPE_TOUCH_INTERACTION_START",
	TypeTouchInteractionEnd:                    "TYPE_TOUCH_INTERACTION_END",
	TypeWindowsChanged:                         "TYPE_WINDOWS_CHANGED",
	TypeViewContextClicked:                     "TYPE_VIEW_CONTEXT_CLICKED",
}

// labelTypes is the reverse of eventTypeLabels, built once at init.
var labelTypes = func() map[string]EventType {
	m := make(map[string]EventType, len(eventTypeLabels))
	for t, label := range eventTypeLabels {
		m[label] = t
	}
	return m
}()

// ClassifyEventType returns the label for an event code. Codes outside the
// known set get "unknown (<code>)" so nothing is lost when the host adds new
// types.
func ClassifyEventType(code int) string {
	if label, ok := eventTypeLabels[EventType(code)]; ok {
		return label
	}
	return fmt.Sprintf("unknown (%d)", code)
}

// String returns the event type label.
func (t EventType) String() string {
	return ClassifyEventType(int(t))
}

// Known reports whether t is in the host enumeration.
func (t EventType) Known() bool {
	_, ok := eventTypeLabels[t]
	return ok
}

// KnownEventTypes returns every known event type in ascending code order.
func KnownEventTypes() []EventType {
	types := make([]EventType, 0, len(eventTypeLabels))
	for t := range eventTypeLabels {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// ParseEventType accepts a decimal code, a full label ("TYPE_VIEW_CLICKED")
// or a label without the TYPE_ prefix ("view_clicked"). Any number is
// accepted; unknown names are not.
func ParseEventType(s string) (EventType, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty event type")
	}
	if n, err := strconv.Atoi(s); err == nil {
		return EventType(n), nil
	}
	name := strings.ToUpper(s)
	if !strings.HasPrefix(name, "TYPE_") {
		name = "TYPE_" + name
	}
	if t, ok := labelTypes[name]; ok {
		return t, nil
	}
	return 0, fmt.Errorf("unknown event type: %q", s)
}

// MarshalJSON mirrors MarshalYAML.
func (t EventType) MarshalJSON() ([]byte, error) {
	if t.Known() {
		return json.Marshal(t.String())
	}
	return json.Marshal(int(t))
}

// UnmarshalJSON accepts a number or a label.
func (t *EventType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		s = string(data)
	}
	parsed, err := ParseEventType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalYAML writes known types by label and unknown ones by number.
func (t EventType) MarshalYAML() (interface{}, error) {
	if t.Known() {
		return t.String(), nil
	}
	return int(t), nil
}

// UnmarshalYAML accepts either form written by MarshalYAML.
func (t *EventType) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: event type must be a scalar", value.Line)
	}
	parsed, err := ParseEventType(value.Value)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Event is one reported change in on-screen UI state. It is a read-only view
// that is only valid for the duration of the callback it was delivered to.
type Event struct {
	Type        EventType `yaml:"type"              json:"type"`
	ClassName   string    `yaml:"class,omitempty"   json:"class,omitempty"`
	PackageName string    `yaml:"package,omitempty" json:"package,omitempty"`
	Time        int64     `yaml:"time"              json:"time"` // milliseconds
	Text        []string  `yaml:"text,omitempty"    json:"text,omitempty"`
}

// JoinedText concatenates the text fragments in order with no separator.
func (e Event) JoinedText() string {
	return strings.Join(e.Text, "")
}
