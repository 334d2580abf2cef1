package designer

import (
	"path/filepath"
	"strings"
)

// Dialect holds the literal tokens a designer language uses for
// self-reference and object construction.
type Dialect struct {
	Self string
	New  string
}

var (
	// CSharp is the dialect of *.Designer.cs files.
	CSharp = Dialect{Self: "this", New: "new"}
	// VisualBasic is the dialect of *.Designer.vb files.
	VisualBasic = Dialect{Self: "Me", New: "New"}
)

// DialectFor selects the dialect from a file name's extension.
// ".vb" (any case) is Visual Basic; everything else is C#.
func DialectFor(fileName string) Dialect {
	if strings.EqualFold(filepath.Ext(fileName), ".vb") {
		return VisualBasic
	}
	return CSharp
}
