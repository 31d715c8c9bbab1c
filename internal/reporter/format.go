package reporter

import (
	"fmt"
	"strings"

	"github.com/mj1618/a11y-reporter/internal/model"
)

// indentUnit is prepended once per tree level in node dumps.
const indentUnit = "   "

// FormatEvent renders ev as a single log line.
func FormatEvent(ev model.Event) string {
	return fmt.Sprintf("onAccessibilityEvent: [type] %s [class] %s [package] %s [time] %d [text] %s",
		ev.Type, ev.ClassName, ev.PackageName, ev.Time, ev.JoinedText())
}

// FormatNode renders one node dump line at the given depth.
func FormatNode(desc string, level int) string {
	return strings.Repeat(indentUnit, level) + desc
}

// FormatWindowCount renders the line preceding a window listing.
func FormatWindowCount(n int) string {
	return fmt.Sprintf("windows: %d", n)
}
