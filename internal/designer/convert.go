// Package designer converts WinForms designer source into a UI node forest.
//
// Conversion is lexical: designer files are one statement per line with a
// fixed keyword order, so statements are recognized by pattern rather than
// parsed. Unrecognized or malformed input yields fewer nodes, never an error.
package designer

import (
	"fmt"

	"github.com/mj1618/designer-cli/internal/model"
	"github.com/mj1618/designer-cli/internal/output"
)

// Options tune a conversion. The zero value is the default conversion.
type Options struct {
	// TypePrefix is prepended to every emitted type, e.g. "RadJav.GUI.".
	TypePrefix string
	// Lexer overrides the statement matcher. Nil means NewRegexpLexer.
	Lexer LexerFunc
}

// Convert converts designer source text to a JSON array of UI nodes,
// indented with four spaces. fileName is only used to pick the dialect.
func Convert(source, fileName string) string {
	return ConvertWithOptions(source, fileName, Options{})
}

// ConvertWithOptions is Convert with explicit options.
func ConvertWithOptions(source, fileName string, opts Options) string {
	data, err := output.MarshalJSON(ParseWithOptions(source, fileName, opts))
	if err != nil {
		// Nodes hold only strings and booleans.
		panic(fmt.Sprintf("designer: encoding nodes: %v", err))
	}
	return string(data)
}

// Parse converts designer source text to a forest of UI nodes. The result is
// never nil.
func Parse(source, fileName string) []*model.Node {
	return ParseWithOptions(source, fileName, Options{})
}

// ParseWithOptions is Parse with explicit options.
func ParseWithOptions(source, fileName string, opts Options) []*model.Node {
	newLexer := opts.Lexer
	if newLexer == nil {
		newLexer = NewRegexpLexer
	}
	lex := newLexer(source, DialectFor(fileName))

	decls := scan(lex, opts.TypePrefix)
	return assemble(decls)
}

// declaration is a node found by scan along with the names it adds as children.
type declaration struct {
	node     *model.Node
	children []string
}

// scan builds every node in detection order: table order first, then source
// order within a type.
func scan(lex Lexer, typePrefix string) []declaration {
	var decls []declaration
	for _, ct := range convertibleTypes {
		for _, name := range lex.Declarations(ct.Source) {
			n := &model.Node{Type: typePrefix + ct.Target, Name: name}
			if v, ok := lex.Location(name); ok {
				n.Position = model.String(v)
			}
			if v, ok := lex.Size(name); ok {
				n.Size = model.String(v)
			}
			if v, ok := lex.Text(name); ok {
				n.Text = model.String(v)
			}
			if v, ok := lex.Visible(name); ok {
				n.Visibility = model.ParseVisibility(v)
			}
			decls = append(decls, declaration{node: n, children: lex.ChildAdds(name)})
		}
	}
	return decls
}

// assemble links children to parents and returns the unclaimed roots.
//
// Parents are visited in detection order and their Controls.Add edges in
// source order. Each edge claims the first unclaimed node with that name.
// Edges to unknown names, to the parent itself or to one of its ancestors
// are dropped, so the result is always a forest.
func assemble(decls []declaration) []*model.Node {
	byName := make(map[string][]int, len(decls))
	for i, d := range decls {
		byName[d.node.Name] = append(byName[d.node.Name], i)
	}

	parent := make([]int, len(decls))
	for i := range parent {
		parent[i] = -1
	}

	isAncestor := func(candidate, of int) bool {
		for p := of; p >= 0; p = parent[p] {
			if p == candidate {
				return true
			}
		}
		return false
	}

	for pi, d := range decls {
		for _, childName := range d.children {
			ci := -1
			for _, idx := range byName[childName] {
				if parent[idx] < 0 && !isAncestor(idx, pi) {
					ci = idx
					break
				}
			}
			if ci < 0 {
				continue
			}
			parent[ci] = pi
			d.node.Children = append(d.node.Children, decls[ci].node)
		}
	}

	roots := make([]*model.Node, 0, len(decls))
	for i, d := range decls {
		if parent[i] < 0 {
			roots = append(roots, d.node)
		}
	}
	return roots
}
