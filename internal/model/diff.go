package model

import "fmt"

// ChangeType represents the kind of node change detected.
type ChangeType string

const (
	ChangeAdded   ChangeType = "added"
	ChangeRemoved ChangeType = "removed"
	ChangeChanged ChangeType = "changed"
)

// NodeChange represents a single change between two tree snapshots.
type NodeChange struct {
	Type    ChangeType           `yaml:"type"              json:"type"`
	Key     string               `yaml:"key"               json:"key"`
	Node    *FlatNode            `yaml:"node,omitempty"    json:"node,omitempty"`    // For added/removed: the node
	Changes map[string][2]string `yaml:"changes,omitempty" json:"changes,omitempty"` // For changed: field diffs
}

// nodeKeys identifies a node across snapshots: its view ID when it has one,
// otherwise its class path. Either is suffixed with the node's position among
// earlier nodes sharing it, since list rows reuse one view ID.
func nodeKeys(nodes []FlatNode) []string {
	seen := make(map[string]int, len(nodes))
	seenID := make(map[string]int)
	keys := make([]string, len(nodes))
	for i, n := range nodes {
		if n.ViewID != "" {
			keys[i] = fmt.Sprintf("id:%s#%d", n.ViewID, seenID[n.ViewID])
			seenID[n.ViewID]++
			continue
		}
		keys[i] = fmt.Sprintf("%s#%d", n.Path, seen[n.Path])
		seen[n.Path]++
	}
	return keys
}

// DiffNodes compares two flattened trees and returns the changes, added and
// changed nodes first in curr order, then removed nodes in prev order.
func DiffNodes(prev, curr []FlatNode) []NodeChange {
	prevKeys := nodeKeys(prev)
	currKeys := nodeKeys(curr)

	prevMap := make(map[string]FlatNode, len(prev))
	for i, n := range prev {
		prevMap[prevKeys[i]] = n
	}
	currSet := make(map[string]bool, len(curr))
	for _, k := range currKeys {
		currSet[k] = true
	}

	var changes []NodeChange

	// Check for added and changed nodes
	for i, n := range curr {
		key := currKeys[i]
		prevNode, existed := prevMap[key]
		if !existed {
			nodeCopy := n
			changes = append(changes, NodeChange{Type: ChangeAdded, Key: key, Node: &nodeCopy})
			continue
		}
		if diffs := diffProperties(prevNode, n); len(diffs) > 0 {
			changes = append(changes, NodeChange{Type: ChangeChanged, Key: key, Changes: diffs})
		}
	}

	// Check for removed nodes
	for i, n := range prev {
		if !currSet[prevKeys[i]] {
			nodeCopy := n
			changes = append(changes, NodeChange{Type: ChangeRemoved, Key: prevKeys[i], Node: &nodeCopy})
		}
	}

	return changes
}

// diffProperties compares two nodes and returns changed fields.
func diffProperties(prev, curr FlatNode) map[string][2]string {
	diffs := make(map[string][2]string)

	if prev.Class != curr.Class {
		diffs["class"] = [2]string{prev.Class, curr.Class}
	}
	if prev.Text != curr.Text {
		diffs["t"] = [2]string{prev.Text, curr.Text}
	}
	if prev.Description != curr.Description {
		diffs["d"] = [2]string{prev.Description, curr.Description}
	}
	if prev.Bounds != curr.Bounds {
		diffs["b"] = [2]string{formatBounds(prev.Bounds), formatBounds(curr.Bounds)}
	}
	if prev.Depth != curr.Depth {
		diffs["depth"] = [2]string{fmt.Sprint(prev.Depth), fmt.Sprint(curr.Depth)}
	}

	if len(diffs) == 0 {
		return nil
	}
	return diffs
}
