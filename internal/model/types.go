package model

import "strings"

// Target UI types emitted by the converter.
const (
	TypeButton    = "Button"
	TypeLabel     = "Label"
	TypeTextbox   = "Textbox"
	TypeCheckbox  = "Checkbox"
	TypeCombobox  = "Combobox"
	TypeRadio     = "Radio"
	TypeImage     = "Image"
	TypeList      = "List"
	TypeContainer = "Container"
)

// MetaTypes maps meta-type names to the concrete types they expand to.
var MetaTypes = map[string][]string{
	"input":     {TypeTextbox, TypeCheckbox, TypeCombobox, TypeRadio, TypeList},
	"static":    {TypeLabel, TypeImage},
	"container": {TypeContainer},
}

// ExpandTypes expands any meta-types in the given list to their concrete types.
// Other names are passed through unchanged. Duplicates are removed.
func ExpandTypes(types []string) []string {
	seen := make(map[string]bool, len(types))
	var expanded []string
	for _, t := range types {
		if concrete, ok := MetaTypes[strings.ToLower(t)]; ok {
			for _, c := range concrete {
				if !seen[c] {
					seen[c] = true
					expanded = append(expanded, c)
				}
			}
		} else if !seen[t] {
			seen[t] = true
			expanded = append(expanded, t)
		}
	}
	return expanded
}

// BaseType strips a dotted vendor prefix, so "RadJav.GUI.Button" becomes "Button".
func BaseType(t string) string {
	if i := strings.LastIndex(t, "."); i >= 0 {
		return t[i+1:]
	}
	return t
}
