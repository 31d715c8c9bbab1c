// Package reporter implements the accessibility event reporter: a passive
// listener that turns host callbacks into verbose log lines.
package reporter

import (
	"context"
	"log/slog"

	"github.com/mj1618/a11y-reporter/internal/logging"
	"github.com/mj1618/a11y-reporter/internal/model"
	"github.com/mj1618/a11y-reporter/internal/platform"
)

// Tag is attached to every record the reporter writes.
const Tag = "A11yReporter"

// State is the lifecycle position imposed by host callbacks.
type State int

const (
	StateDisconnected State = iota
	StateConnected
	StateInterrupted
)

func (s State) String() string {
	switch s {
	case StateConnected:
		return "connected"
	case StateInterrupted:
		return "interrupted"
	default:
		return "disconnected"
	}
}

// Options configures a Service.
type Options struct {
	Revision Revision
	MaxDepth int // Max node levels dumped per event (0 = unlimited)
}

// Stats counts the callbacks a Service has handled.
type Stats struct {
	Connects   int `yaml:"connects"   json:"connects"`
	Events     int `yaml:"events"     json:"events"`
	Interrupts int `yaml:"interrupts" json:"interrupts"`
}

// Service is the reporter. It satisfies platform.Handler and is driven only
// by its host; it is not safe for concurrent use.
type Service struct {
	host   platform.Host
	logger *slog.Logger
	opts   Options

	state State
	stats Stats
}

var _ platform.Handler = (*Service)(nil)

// NewService returns a disconnected reporter bound to host.
func NewService(host platform.Host, logger *slog.Logger, opts Options) *Service {
	if logger == nil {
		logger = logging.Discard()
	}
	if opts.Revision == 0 {
		opts.Revision = RevisionBasic
	}
	return &Service{
		host:   host,
		logger: logger.With("tag", Tag),
		opts:   opts,
	}
}

// State returns the current lifecycle state.
func (s *Service) State() State { return s.state }

// Stats returns callback counters.
func (s *Service) Stats() Stats { return s.stats }

// Revision returns the configured revision.
func (s *Service) Revision() Revision { return s.opts.Revision }

// OnConnected declares the service configuration to the host.
func (s *Service) OnConnected() {
	s.verbose("onServiceConnected")
	s.host.SetServiceInfo(ServiceInfoFor(s.opts.Revision))
	s.state = StateConnected
	s.stats.Connects++
}

// OnEvent logs ev. The inspector revision also lists windows and dumps the
// active window's tree, whatever the event type.
func (s *Service) OnEvent(ev model.Event) {
	s.state = StateConnected
	s.stats.Events++

	s.verbose(FormatEvent(ev))
	if s.opts.Revision < RevisionInspector {
		return
	}
	s.EnumerateWindows()
	s.DumpTree(s.host.RootInActiveWindow())
}

// OnInterrupt records the interrupt. There is no pending output to cancel.
func (s *Service) OnInterrupt() {
	s.state = StateInterrupted
	s.stats.Interrupts++
}

// EnumerateWindows logs the window count and one line per window.
func (s *Service) EnumerateWindows() {
	windows := s.host.Windows()
	s.verbose(FormatWindowCount(len(windows)))
	for _, w := range windows {
		s.verbose(w.String())
	}
}

func (s *Service) verbose(msg string) {
	s.logger.Log(context.Background(), logging.LevelVerbose, msg)
}

// Run connects a new Service to sess and lets the session drive it to
// completion.
func Run(ctx context.Context, sess platform.Session, logger *slog.Logger, opts Options) (*Service, error) {
	svc := NewService(sess, logger, opts)
	if err := sess.Run(ctx, svc); err != nil {
		return svc, err
	}
	return svc, nil
}
