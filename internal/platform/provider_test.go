package platform

import (
	"context"
	"errors"
	"testing"

	"github.com/mj1618/a11y-reporter/internal/model"
)

type stubSession struct{ source string }

func (s *stubSession) SetServiceInfo(model.ServiceInfo) {}
func (s *stubSession) Windows() []model.Window { return nil }
func (s *stubSession) RootInActiveWindow() Node { return nil }
func (s *stubSession) ID() string { return "stub" }
func (s *stubSession) Run(ctx context.Context, h Handler) error { return nil }

func withBackends(t *testing.T) {
	t.Helper()
	backendsMu.Lock()
	orig := backends
	backends = map[string]Opener{}
	backendsMu.Unlock()
	t.Cleanup(func() {
		backendsMu.Lock()
		backends = orig
		backendsMu.Unlock()
	})
}

func TestOpen_RegisteredBackend(t *testing.T) {
	withBackends(t)
	Register("stub", func(source string) (Session, error) {
		return &stubSession{source: source}, nil
	})

	s, err := Open("stub", "rec.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if got := s.(*stubSession).source; got != "rec.yaml" {
		t.Errorf("source: got %q, want %q", got, "rec.yaml")
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	withBackends(t)

	_, err := Open("missing", "")
	if err == nil {
		t.Fatal("expected error for unknown backend")
	}
	if !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("expected ErrUnknownBackend, got: %v", err)
	}
}

func TestBackends_Sorted(t *testing.T) {
	withBackends(t)
	open := func(string) (Session, error) { return nil, nil }
	Register("b", open)
	Register("a", open)

	got := Backends()
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("Backends() = %v, want [a b]", got)
	}
}
