package replay

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mj1618/a11y-reporter/internal/logging"
	"github.com/mj1618/a11y-reporter/internal/model"
	"github.com/mj1618/a11y-reporter/internal/platform"
)

// BackendName is the name the replay backend registers under.
const BackendName = "replay"

func init() {
	platform.Register(BackendName, func(source string) (platform.Session, error) {
		rec, err := Load(source)
		if err != nil {
			return nil, err
		}
		return NewSession(rec, nil), nil
	})
}

// Session plays a Recording to a handler. It implements platform.Session.
type Session struct {
	id     string
	rec    *Recording
	logger *slog.Logger

	handles *handleTracker

	// Host state installed before each event step.
	windows []model.Window
	root    *model.NodeInfo

	infos []model.ServiceInfo
	steps int
}

var _ platform.Session = (*Session)(nil)

// NewSession prepares rec for playback. Backend diagnostics (leaked handles)
// go to logger.
func NewSession(rec *Recording, logger *slog.Logger) *Session {
	if logger == nil {
		logger = logging.Discard()
	}
	id := uuid.NewString()
	return &Session{
		id:      id,
		rec:     rec,
		logger:  logger.With("session", id, "recording", rec.Name),
		handles: newHandleTracker(),
	}
}

// SetLogger replaces the diagnostics logger.
func (s *Session) SetLogger(logger *slog.Logger) {
	s.logger = logger.With("session", s.id, "recording", s.rec.Name)
}

func (s *Session) ID() string { return s.id }

// Recording returns the recording being played.
func (s *Session) Recording() *Recording { return s.rec }

// SetServiceInfo installs info. Resubmitting the current configuration has
// no effect.
func (s *Session) SetServiceInfo(info model.ServiceInfo) {
	if n := len(s.infos); n > 0 && s.infos[n-1].Equal(info) {
		return
	}
	s.infos = append(s.infos, info)
}

// ServiceInfos returns each distinct configuration in submission order.
func (s *Session) ServiceInfos() []model.ServiceInfo { return s.infos }

func (s *Session) Windows() []model.Window {
	out := make([]model.Window, len(s.windows))
	copy(out, s.windows)
	return out
}

func (s *Session) RootInActiveWindow() platform.Node {
	if s.root == nil {
		return nil
	}
	return s.handles.acquire(s.root)
}

// HandleStats reports node handle traffic so far.
func (s *Session) HandleStats() HandleStats { return s.handles.snapshot() }

// StepsDelivered returns how many steps Run has delivered.
func (s *Session) StepsDelivered() int { return s.steps }

// Run delivers every step to h in order. A recording whose first step is not
// a connect gets one before anything else, as a host always connects a
// listener before sending it events.
func (s *Session) Run(ctx context.Context, h platform.Handler) error {
	if len(s.rec.Steps) == 0 || !s.rec.Steps[0].Connect {
		h.OnConnected()
	}
	leaked := s.handles.snapshot().Outstanding()
	for i, step := range s.rec.Steps {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("replay stopped at step %d: %w", i, err)
		}
		s.deliver(step, h)
		s.steps++
		if out := s.handles.snapshot().Outstanding(); out > leaked {
			s.logger.Warn("node handles not released", "step", i, "outstanding", out)
			leaked = out
		}
	}
	return nil
}

func (s *Session) deliver(step Step, h platform.Handler) {
	switch {
	case step.Connect:
		h.OnConnected()
	case step.Interrupt:
		h.OnInterrupt()
	case step.Event != nil:
		s.windows = step.Windows
		s.root = step.Root
		h.OnEvent(*step.Event)
	}
}
