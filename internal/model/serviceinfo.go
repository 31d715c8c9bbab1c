package model

import (
	"fmt"
	"strings"
)

// ServiceFlag is a behavioural flag a listener requests from the host.
type ServiceFlag uint32

const (
	FlagDefault                         ServiceFlag = 1 << 0
	FlagIncludeNotImportantViews        ServiceFlag = 1 << 1
	FlagRequestTouchExplorationMode     ServiceFlag = 1 << 2
	FlagRequestEnhancedWebAccessibility ServiceFlag = 1 << 3
	FlagReportViewIDs                   ServiceFlag = 1 << 4
	FlagRequestFilterKeyEvents          ServiceFlag = 1 << 5
	FlagRetrieveInteractiveWindows      ServiceFlag = 1 << 6
)

var serviceFlagNames = []struct {
	flag ServiceFlag
	name string
}{
	{FlagDefault, "DEFAULT"},
	{FlagIncludeNotImportantViews, "FLAG_INCLUDE_NOT_IMPORTANT_VIEWS"},
	{FlagRequestTouchExplorationMode, "FLAG_REQUEST_TOUCH_EXPLORATION_MODE"},
	{FlagRequestEnhancedWebAccessibility, "FLAG_REQUEST_ENHANCED_WEB_ACCESSIBILITY"},
	{FlagReportViewIDs, "FLAG_REPORT_VIEW_IDS"},
	{FlagRequestFilterKeyEvents, "FLAG_REQUEST_FILTER_KEY_EVENTS"},
	{FlagRetrieveInteractiveWindows, "FLAG_RETRIEVE_INTERACTIVE_WINDOWS"},
}

// Names lists the set flags in bit order. Unknown bits are rendered as hex.
func (f ServiceFlag) Names() []string {
	var names []string
	rest := f
	for _, fn := range serviceFlagNames {
		if f&fn.flag != 0 {
			names = append(names, fn.name)
			rest &^= fn.flag
		}
	}
	if rest != 0 {
		names = append(names, fmt.Sprintf("0x%x", uint32(rest)))
	}
	return names
}

func (f ServiceFlag) String() string {
	names := f.Names()
	if len(names) == 0 {
		return "0"
	}
	return strings.Join(names, "|")
}

// FeedbackType classifies the kind of feedback a listener provides.
type FeedbackType uint32

const (
	FeedbackSpoken  FeedbackType = 1 << 0
	FeedbackHaptic  FeedbackType = 1 << 1
	FeedbackAudible FeedbackType = 1 << 2
	FeedbackVisual  FeedbackType = 1 << 3
	FeedbackGeneric FeedbackType = 1 << 4
)

func (t FeedbackType) String() string {
	switch t {
	case FeedbackSpoken:
		return "FEEDBACK_SPOKEN"
	case FeedbackHaptic:
		return "FEEDBACK_HAPTIC"
	case FeedbackAudible:
		return "FEEDBACK_AUDIBLE"
	case FeedbackVisual:
		return "FEEDBACK_VISUAL"
	case FeedbackGeneric:
		return "FEEDBACK_GENERIC"
	default:
		return fmt.Sprintf("FEEDBACK_0x%x", uint32(t))
	}
}

// ServiceInfo declares which events and behaviours a listener wants. It is
// handed to the host once at connection time.
type ServiceInfo struct {
	EventTypes   uint32
	Flags        ServiceFlag
	FeedbackType FeedbackType
}

// Has reports whether every bit of flag is requested.
func (s ServiceInfo) Has(flag ServiceFlag) bool {
	return s.Flags&flag == flag
}

// Equal reports whether o requests the same event types, flags and feedback.
func (s ServiceInfo) Equal(o ServiceInfo) bool {
	return s.EventTypes == o.EventTypes && s.Flags == o.Flags && s.FeedbackType == o.FeedbackType
}

// AllEventTypes reports whether the "all types" mask is requested.
func (s ServiceInfo) AllEventTypes() bool {
	return s.EventTypes == TypesAllMask
}

// ServiceInfoDoc is the printable form of a ServiceInfo.
type ServiceInfoDoc struct {
	EventTypes   string   `yaml:"event_types"   json:"event_types"`
	Flags        []string `yaml:"flags"         json:"flags"`
	FeedbackType string   `yaml:"feedback_type" json:"feedback_type"`
}

// Describe renders s with symbolic names.
func (s ServiceInfo) Describe() ServiceInfoDoc {
	events := fmt.Sprintf("0x%08x", s.EventTypes)
	if s.AllEventTypes() {
		events = "TYPES_ALL_MASK"
	}
	flags := s.Flags.Names()
	if flags == nil {
		flags = []string{}
	}
	return ServiceInfoDoc{
		EventTypes:   events,
		Flags:        flags,
		FeedbackType: s.FeedbackType.String(),
	}
}
