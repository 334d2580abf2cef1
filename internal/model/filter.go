package model

import "strings"

// FilterByType returns a copy of the forest containing only nodes whose type
// is in types. Matching is case-insensitive and ignores any vendor prefix on
// the node's type. A node that doesn't match is dropped, and its matching
// descendants are promoted into its place. An empty types list returns nodes
// unchanged.
func FilterByType(nodes []*Node, types []string) []*Node {
	if len(types) == 0 {
		return nodes
	}

	typeSet := make(map[string]bool, len(types))
	for _, t := range types {
		typeSet[strings.ToLower(BaseType(t))] = true
	}
	return filterByTypeSet(nodes, typeSet)
}

func filterByTypeSet(nodes []*Node, typeSet map[string]bool) []*Node {
	var result []*Node
	for _, n := range nodes {
		var filteredChildren []*Node
		if len(n.Children) > 0 {
			filteredChildren = filterByTypeSet(n.Children, typeSet)
		}

		if typeSet[strings.ToLower(BaseType(n.Type))] {
			filtered := *n
			filtered.Children = filteredChildren
			result = append(result, &filtered)
		} else if len(filteredChildren) > 0 {
			result = append(result, filteredChildren...)
		}
	}
	return result
}
