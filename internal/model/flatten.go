package model

// FlatNode is a node with a path breadcrumb instead of children.
type FlatNode struct {
	Index       int    `yaml:"i"            json:"i"`
	Depth       int    `yaml:"depth"        json:"depth"`
	Class       string `yaml:"class"        json:"class"`
	Text        string `yaml:"t,omitempty"  json:"t,omitempty"`
	Description string `yaml:"d,omitempty"  json:"d,omitempty"`
	ViewID      string `yaml:"id,omitempty" json:"id,omitempty"`
	Bounds      [4]int `yaml:"b,flow"       json:"b"`
	Path        string `yaml:"p"            json:"p"`
}

// FlattenNodes converts a node tree into a pre-order list. Each node gets a
// path showing its location using short class names joined with " > ".
func FlattenNodes(root NodeInfo) []FlatNode {
	var result []FlatNode
	flattenRecursive(root, "", 0, &result)
	return result
}

func flattenRecursive(n NodeInfo, parentPath string, depth int, result *[]FlatNode) {
	currentPath := shortClass(n.Class)
	if parentPath != "" {
		currentPath = parentPath + " > " + currentPath
	}

	*result = append(*result, FlatNode{
		Index:       len(*result),
		Depth:       depth,
		Class:       n.Class,
		Text:        n.Text,
		Description: n.Description,
		ViewID:      n.ViewID,
		Bounds:      n.Bounds,
		Path:        currentPath,
	})

	for _, child := range n.Children {
		flattenRecursive(child, currentPath, depth+1, result)
	}
}

// shortClass strips the package qualifier: "android.widget.Button" -> "Button".
func shortClass(class string) string {
	for i := len(class) - 1; i >= 0; i-- {
		if class[i] == '.' {
			return class[i+1:]
		}
	}
	return class
}
