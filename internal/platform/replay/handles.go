package replay

import (
	"sync"

	"github.com/mj1618/a11y-reporter/internal/model"
	"github.com/mj1618/a11y-reporter/internal/platform"
)

// HandleStats counts node handle traffic for a session.
type HandleStats struct {
	Acquired       int `yaml:"acquired"        json:"acquired"`
	Released       int `yaml:"released"        json:"released"`
	DoubleReleased int `yaml:"double_released" json:"double_released"`
}

// Outstanding is the number of acquired handles not yet released.
func (s HandleStats) Outstanding() int {
	return s.Acquired - s.Released
}

// handleTracker accounts for every node handle a session gives out.
type handleTracker struct {
	mu    sync.Mutex
	stats HandleStats
	live  map[*nodeHandle]struct{}
}

func newHandleTracker() *handleTracker {
	return &handleTracker{live: make(map[*nodeHandle]struct{})}
}

func (t *handleTracker) acquire(info *model.NodeInfo) *nodeHandle {
	h := &nodeHandle{info: info, tracker: t}
	t.mu.Lock()
	t.stats.Acquired++
	t.live[h] = struct{}{}
	t.mu.Unlock()
	return h
}

func (t *handleTracker) release(h *nodeHandle) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.live[h]; !ok {
		t.stats.DoubleReleased++
		return
	}
	delete(t.live, h)
	t.stats.Released++
}

func (t *handleTracker) snapshot() HandleStats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stats
}

// nodeHandle is a release-managed view of a recorded node.
type nodeHandle struct {
	info    *model.NodeInfo
	tracker *handleTracker
}

var _ platform.Node = (*nodeHandle)(nil)

func (h *nodeHandle) String() string { return h.info.String() }

func (h *nodeHandle) ChildCount() int { return len(h.info.Children) }

func (h *nodeHandle) Child(i int) platform.Node {
	if i < 0 || i >= len(h.info.Children) {
		return nil
	}
	return h.tracker.acquire(&h.info.Children[i])
}

// Recycle is idempotent; repeats are counted but have no other effect.
func (h *nodeHandle) Recycle() {
	h.tracker.release(h)
}
