package platform

import "testing"

type countingNode struct{ recycled int }

func (n *countingNode) String() string { return "node" }
func (n *countingNode) ChildCount() int { return 0 }
func (n *countingNode) Child(int) Node { return nil }
func (n *countingNode) Recycle() { n.recycled++ }

func TestVisit_ReleasesAfterCallback(t *testing.T) {
	n := &countingNode{}
	called := false
	Visit(n, func(got Node) {
		called = true
		if n.recycled != 0 {
			t.Error("node released before callback returned")
		}
	})
	if !called {
		t.Fatal("callback not invoked")
	}
	if n.recycled != 1 {
		t.Errorf("recycled: got %d, want 1", n.recycled)
	}
}

func TestVisit_ReleasesOnPanic(t *testing.T) {
	n := &countingNode{}
	func() {
		defer func() { _ = recover() }()
		Visit(n, func(Node) { panic("boom") })
	}()
	if n.recycled != 1 {
		t.Errorf("recycled: got %d, want 1", n.recycled)
	}
}

func TestVisit_NilNode(t *testing.T) {
	Visit(nil, func(Node) { t.Error("callback invoked for nil node") })
}
