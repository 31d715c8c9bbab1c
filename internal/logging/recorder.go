package logging

import (
	"context"
	"log/slog"
	"sync"
)

// Record is one captured log entry.
type Record struct {
	Level   slog.Level
	Message string
	Attrs   map[string]string
}

// Recorder is an slog.Handler that keeps records in memory. Handlers derived
// with WithAttrs/WithGroup share the parent's storage.
type Recorder struct {
	level slog.Leveler
	attrs []slog.Attr

	store *recordStore
}

type recordStore struct {
	mu      sync.Mutex
	records []Record
}

// NewRecorder returns a recorder that keeps records at or above level.
func NewRecorder(level slog.Leveler) *Recorder {
	if level == nil {
		level = LevelVerbose
	}
	return &Recorder{level: level, store: &recordStore{}}
}

func (r *Recorder) Enabled(_ context.Context, l slog.Level) bool {
	return l >= r.level.Level()
}

func (r *Recorder) Handle(_ context.Context, rec slog.Record) error {
	attrs := make(map[string]string, len(r.attrs)+rec.NumAttrs())
	for _, a := range r.attrs {
		attrs[a.Key] = a.Value.String()
	}
	rec.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.String()
		return true
	})

	r.store.mu.Lock()
	r.store.records = append(r.store.records, Record{Level: rec.Level, Message: rec.Message, Attrs: attrs})
	r.store.mu.Unlock()
	return nil
}

func (r *Recorder) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(r.attrs)+len(attrs))
	merged = append(merged, r.attrs...)
	merged = append(merged, attrs...)
	return &Recorder{level: r.level, attrs: merged, store: r.store}
}

// WithGroup is accepted but groups are flattened.
func (r *Recorder) WithGroup(string) slog.Handler {
	return r
}

// Records returns a copy of everything captured so far.
func (r *Recorder) Records() []Record {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := make([]Record, len(r.store.records))
	copy(out, r.store.records)
	return out
}

// Messages returns the captured messages at exactly level l.
func (r *Recorder) Messages(l slog.Level) []string {
	var msgs []string
	for _, rec := range r.Records() {
		if rec.Level == l {
			msgs = append(msgs, rec.Message)
		}
	}
	return msgs
}

// Reset drops all captured records.
func (r *Recorder) Reset() {
	r.store.mu.Lock()
	r.store.records = nil
	r.store.mu.Unlock()
}
