package model

import "fmt"

// NodeInfo is the data behind one UI element of a window hierarchy.
type NodeInfo struct {
	Class       string     `yaml:"class"                 json:"class"`
	Package     string     `yaml:"package,omitempty"     json:"package,omitempty"`
	Text        string     `yaml:"text,omitempty"        json:"text,omitempty"`
	Description string     `yaml:"description,omitempty" json:"description,omitempty"`
	ViewID      string     `yaml:"view_id,omitempty"     json:"view_id,omitempty"`
	Bounds      [4]int     `yaml:"bounds,flow"           json:"bounds"`
	Clickable   bool       `yaml:"clickable,omitempty"   json:"clickable,omitempty"`
	Focused     bool       `yaml:"focused,omitempty"     json:"focused,omitempty"`
	Children    []NodeInfo `yaml:"children,omitempty"    json:"children,omitempty"`
}

// String is the node's default descriptive representation.
func (n NodeInfo) String() string {
	return fmt.Sprintf("%s; text: %s; contentDescription: %s; viewId: %s; bounds: %s; clickable: %t; focused: %t",
		n.Class, n.Text, n.Description, n.ViewID, formatBounds(n.Bounds), n.Clickable, n.Focused)
}

// Count returns the number of nodes in the subtree rooted at n.
func (n NodeInfo) Count() int {
	total := 1
	for _, c := range n.Children {
		total += c.Count()
	}
	return total
}
