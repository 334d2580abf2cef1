package model

// NodeChange is a node present in both conversions whose fields differ.
type NodeChange struct {
	Path    string               `yaml:"path"    json:"path"`
	Type    string               `yaml:"type"    json:"type"`
	Changes map[string][2]string `yaml:"changes" json:"changes"`
}

// NodeDiff is the result of comparing two flattened conversions.
type NodeDiff struct {
	Added          []FlatNode   `yaml:"added,omitempty"   json:"added,omitempty"`
	Removed        []FlatNode   `yaml:"removed,omitempty" json:"removed,omitempty"`
	Changed        []NodeChange `yaml:"changed,omitempty" json:"changed,omitempty"`
	UnchangedCount int          `yaml:"unchanged_count"   json:"unchanged_count"`
}

// Empty reports whether the two conversions were equivalent.
func (d NodeDiff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Changed) == 0
}

// DiffNodes compares two flat node lists. Nodes are matched by path, so a
// control that moves to a different container shows up as removed + added.
// When a path occurs more than once only its first occurrence is compared.
func DiffNodes(prev, curr []FlatNode) NodeDiff {
	prevByPath := make(map[string]FlatNode, len(prev))
	for _, n := range prev {
		if _, dup := prevByPath[n.Path]; !dup {
			prevByPath[n.Path] = n
		}
	}
	currByPath := make(map[string]FlatNode, len(curr))
	for _, n := range curr {
		if _, dup := currByPath[n.Path]; !dup {
			currByPath[n.Path] = n
		}
	}

	var diff NodeDiff
	seen := make(map[string]bool, len(curr))
	for _, n := range curr {
		if seen[n.Path] {
			continue
		}
		seen[n.Path] = true

		old, existed := prevByPath[n.Path]
		if !existed {
			diff.Added = append(diff.Added, n)
			continue
		}
		if changes := diffFields(old, n); changes != nil {
			diff.Changed = append(diff.Changed, NodeChange{Path: n.Path, Type: n.Type, Changes: changes})
		} else {
			diff.UnchangedCount++
		}
	}

	seen = make(map[string]bool, len(prev))
	for _, n := range prev {
		if seen[n.Path] {
			continue
		}
		seen[n.Path] = true
		if _, exists := currByPath[n.Path]; !exists {
			diff.Removed = append(diff.Removed, n)
		}
	}

	return diff
}

// diffFields compares two nodes and returns the changed fields, or nil.
func diffFields(prev, curr FlatNode) map[string][2]string {
	diffs := make(map[string][2]string)

	if prev.Type != curr.Type {
		diffs["type"] = [2]string{prev.Type, curr.Type}
	}
	if !optionalEqual(prev.Position, curr.Position) {
		diffs["position"] = [2]string{Deref(prev.Position), Deref(curr.Position)}
	}
	if !optionalEqual(prev.Size, curr.Size) {
		diffs["size"] = [2]string{Deref(prev.Size), Deref(curr.Size)}
	}
	if !optionalEqual(prev.Text, curr.Text) {
		diffs["text"] = [2]string{Deref(prev.Text), Deref(curr.Text)}
	}
	if visibilityString(prev.Visibility) != visibilityString(curr.Visibility) {
		diffs["visibility"] = [2]string{visibilityString(prev.Visibility), visibilityString(curr.Visibility)}
	}

	if len(diffs) == 0 {
		return nil
	}
	return diffs
}

func optionalEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func visibilityString(v *Visibility) string {
	if v == nil {
		return ""
	}
	return v.String()
}
