package reporter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mj1618/a11y-reporter/internal/model"
)

// Revision selects how much the reporter does per event.
type Revision int

const (
	// RevisionBasic logs one line per event.
	RevisionBasic Revision = 1
	// RevisionInspector also lists windows and dumps the active node tree.
	RevisionInspector Revision = 2
)

func (r Revision) String() string {
	switch r {
	case RevisionBasic:
		return "basic"
	case RevisionInspector:
		return "inspector"
	default:
		return fmt.Sprintf("revision(%d)", int(r))
	}
}

// ParseRevision accepts "1", "2", "basic" or "inspector".
func ParseRevision(s string) (Revision, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "basic":
		return RevisionBasic, nil
	case "2", "inspector":
		return RevisionInspector, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return 0, fmt.Errorf("unsupported revision %d (use 1 or 2)", n)
	}
	return 0, fmt.Errorf("unknown revision %q (use 1, 2, basic or inspector)", s)
}

// ServiceInfoFor builds the configuration submitted on connect.
func ServiceInfoFor(rev Revision) model.ServiceInfo {
	info := model.ServiceInfo{
		EventTypes:   model.TypesAllMask,
		Flags:        model.FlagDefault,
		FeedbackType: model.FeedbackGeneric,
	}
	if rev >= RevisionInspector {
		info.Flags |= model.FlagRetrieveInteractiveWindows |
			model.FlagRequestEnhancedWebAccessibility |
			model.FlagReportViewIDs
	}
	return info
}
