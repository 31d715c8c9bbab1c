package reporter

import "github.com/mj1618/a11y-reporter/internal/platform"

// noRootMessage is logged when there is nothing to dump.
const noRootMessage = "dumpNode: no root node, stopping"

// DumpTree logs root and its descendants depth-first, pre-order, and releases
// every node it acquires. A nil root logs one line and touches nothing.
func (s *Service) DumpTree(root platform.Node) {
	if root == nil {
		s.verbose(noRootMessage)
		return
	}
	s.dumpNode(root, 0)
}

func (s *Service) dumpNode(node platform.Node, level int) {
	platform.Visit(node, func(n platform.Node) {
		s.verbose(FormatNode(n.String(), level))
		if s.opts.MaxDepth > 0 && level+1 >= s.opts.MaxDepth {
			return
		}
		for i := 0; i < n.ChildCount(); i++ {
			// A nil child means the host dropped it since ChildCount.
			if child := n.Child(i); child != nil {
				s.dumpNode(child, level+1)
			}
		}
	})
}
