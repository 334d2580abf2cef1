package model

// FlatNode is a node with a path breadcrumb instead of children.
type FlatNode struct {
	Type       string      `yaml:"type"                 json:"type"`
	Name       string      `yaml:"name"                 json:"name"`
	Position   *string     `yaml:"position,omitempty"   json:"position,omitempty"`
	Size       *string     `yaml:"size,omitempty"       json:"size,omitempty"`
	Text       *string     `yaml:"text,omitempty"       json:"text,omitempty"`
	Visibility *Visibility `yaml:"visibility,omitempty" json:"visibility,omitempty"`
	Path       string      `yaml:"path"                 json:"path"`
	Depth      int         `yaml:"depth"                json:"depth"`
}

// Flatten converts a forest of nodes into a flat list in depth-first order.
// Each node gets a path made of its ancestors' names and its own, joined
// with " > ".
func Flatten(nodes []*Node) []FlatNode {
	var result []FlatNode
	for _, n := range nodes {
		flattenRecursive(n, "", 0, &result)
	}
	return result
}

func flattenRecursive(n *Node, parentPath string, depth int, result *[]FlatNode) {
	currentPath := n.Name
	if parentPath != "" {
		currentPath = parentPath + " > " + n.Name
	}

	*result = append(*result, FlatNode{
		Type:       n.Type,
		Name:       n.Name,
		Position:   n.Position,
		Size:       n.Size,
		Text:       n.Text,
		Visibility: n.Visibility,
		Path:       currentPath,
		Depth:      depth,
	})

	for _, child := range n.Children {
		flattenRecursive(child, currentPath, depth+1, result)
	}
}
