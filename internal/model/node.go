package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Node is one recognized control in a converted designer file.
// Optional fields are nil when the designer source had no matching assignment,
// so an empty string (e.g. `Text = ""`) is kept distinct from "not assigned".
type Node struct {
	Type       string      `yaml:"type"                 json:"type"`
	Name       string      `yaml:"name"                 json:"name"`
	Position   *string     `yaml:"position,omitempty"   json:"position,omitempty"`   // raw "x, y" text
	Size       *string     `yaml:"size,omitempty"       json:"size,omitempty"`       // raw "w, h" text
	Text       *string     `yaml:"text,omitempty"       json:"text,omitempty"`       // label literal
	Visibility *Visibility `yaml:"visibility,omitempty" json:"visibility,omitempty"` // see Visibility
	Children   []*Node     `yaml:"children,omitempty"   json:"children,omitempty"`
}

// String returns a pointer to s, for populating optional Node fields.
func String(s string) *string {
	return &s
}

// Deref returns the pointed-to string, or "" for nil.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Visibility is the value of a `Visible = <token>` assignment.
//
// When the token lower-cases to exactly "true" or "false" it is a boolean.
// Any other token (a variable, an expression) is kept verbatim in Raw and
// serialized as a string rather than coerced or dropped.
type Visibility struct {
	Value bool
	Raw   string
}

// ParseVisibility interprets a captured Visible token.
func ParseVisibility(token string) *Visibility {
	switch strings.ToLower(token) {
	case "true":
		return &Visibility{Value: true}
	case "false":
		return &Visibility{Value: false}
	}
	return &Visibility{Raw: token}
}

// IsBool reports whether the assignment was a boolean literal.
func (v Visibility) IsBool() bool {
	return v.Raw == ""
}

func (v Visibility) String() string {
	if v.IsBool() {
		return fmt.Sprintf("%v", v.Value)
	}
	return v.Raw
}

// MarshalJSON writes a boolean literal, or the raw token as a string.
// The token is not HTML-escaped, matching the rest of the output.
func (v Visibility) MarshalJSON() ([]byte, error) {
	if v.IsBool() {
		return json.Marshal(v.Value)
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v.Raw); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func (v *Visibility) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*v = Visibility{Value: b}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("visibility must be a boolean or string: %w", err)
	}
	*v = Visibility{Raw: s}
	return nil
}

func (v Visibility) MarshalYAML() (interface{}, error) {
	if v.IsBool() {
		return v.Value, nil
	}
	return v.Raw, nil
}

func (v *Visibility) UnmarshalYAML(n *yaml.Node) error {
	if n.Tag == "!!bool" {
		var b bool
		if err := n.Decode(&b); err != nil {
			return err
		}
		*v = Visibility{Value: b}
		return nil
	}
	*v = Visibility{Raw: n.Value}
	return nil
}

// FindByName searches the forest depth-first for the first node named name.
func FindByName(nodes []*Node, name string) *Node {
	for _, n := range nodes {
		if n.Name == name {
			return n
		}
		if found := FindByName(n.Children, name); found != nil {
			return found
		}
	}
	return nil
}

// CountNodes returns the number of nodes in the forest, descendants included.
func CountNodes(nodes []*Node) int {
	count := 0
	for _, n := range nodes {
		count += 1 + CountNodes(n.Children)
	}
	return count
}
