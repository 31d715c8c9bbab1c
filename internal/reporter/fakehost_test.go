package reporter

import (
	"log/slog"

	"github.com/mj1618/a11y-reporter/internal/logging"
	"github.com/mj1618/a11y-reporter/internal/model"
	"github.com/mj1618/a11y-reporter/internal/platform"
)

// fakeHost records configuration submissions and serves a fixed window list
// and tree.
type fakeHost struct {
	infos   []model.ServiceInfo
	windows []model.Window
	root    *fakeNode
	journal *[]string
}

func newFakeHost() *fakeHost {
	return &fakeHost{journal: new([]string)}
}

func (h *fakeHost) SetServiceInfo(info model.ServiceInfo) { h.infos = append(h.infos, info) }
func (h *fakeHost) Windows() []model.Window { return h.windows }

func (h *fakeHost) RootInActiveWindow() platform.Node {
	if h.root == nil {
		return nil
	}
	return h.root
}

// node builds a fake node sharing the host journal.
func (h *fakeHost) node(name string, children ...*fakeNode) *fakeNode {
	return &fakeNode{name: name, children: children, journal: h.journal}
}

type fakeNode struct {
	name     string
	children []*fakeNode
	journal  *[]string
	released int
}

func (n *fakeNode) String() string {
	*n.journal = append(*n.journal, "visit:"+n.name)
	return n.name
}

func (n *fakeNode) ChildCount() int { return len(n.children) }

func (n *fakeNode) Child(i int) platform.Node {
	if n.children[i] == nil {
		return nil
	}
	return n.children[i]
}

func (n *fakeNode) Recycle() {
	n.released++
	*n.journal = append(*n.journal, "release:"+n.name)
}

func (h *fakeHost) releases() []string {
	var out []string
	for _, e := range *h.journal {
		if len(e) > 8 && e[:8] == "release:" {
			out = append(out, e)
		}
	}
	return out
}

func newRecordedService(host platform.Host, opts Options) (*Service, *logging.Recorder) {
	rec := logging.NewRecorder(logging.LevelVerbose)
	return NewService(host, slog.New(rec), opts), rec
}
