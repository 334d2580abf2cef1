package designer

import (
	"regexp"
)

// Lexer extracts designer statements from source text. Implementations are
// bound to one source text and one dialect.
type Lexer interface {
	// Declarations returns the names assigned a new instance of sourceType,
	// in source order.
	Declarations(sourceType string) []string
	// Location returns the raw argument text of the control's Location point.
	Location(name string) (string, bool)
	// Size returns the raw argument text of the control's Size.
	Size(name string) (string, bool)
	// Text returns the string literal assigned to the control's Text.
	Text(name string) (string, bool)
	// Visible returns the token assigned to the control's Visible.
	Visible(name string) (string, bool)
	// ChildAdds returns the names passed to the control's Controls.Add,
	// in source order.
	ChildAdds(name string) []string
}

// LexerFunc constructs a Lexer for a source text.
type LexerFunc func(source string, d Dialect) Lexer

const (
	identPattern = `[\p{L}_][\p{L}\p{N}_]*`
	assignOp     = `[ \t]*=[ \t]*`
)

// regexpLexer matches designer statements line by line with RE2 patterns.
// Statements never span lines, and `.` does not cross a newline, so each
// greedy capture stays within its statement's line.
type regexpLexer struct {
	src  string
	self string
	new  string
}

// NewRegexpLexer returns the default Lexer.
func NewRegexpLexer(source string, d Dialect) Lexer {
	return &regexpLexer{
		src:  source,
		self: regexp.QuoteMeta(d.Self),
		new:  regexp.QuoteMeta(d.New),
	}
}

// member returns the pattern prefix for "<self>.<name>.<prop>".
func (l *regexpLexer) member(name, prop string) string {
	return `\b` + l.self + `\.` + regexp.QuoteMeta(name) + `\.` + prop
}

// construct returns the pattern for "<new> <typeName>(".
func (l *regexpLexer) construct(typeName string) string {
	return l.new + `[ \t]+` + regexp.QuoteMeta(typeName) + `\(`
}

func (l *regexpLexer) Declarations(sourceType string) []string {
	re := regexp.MustCompile(`\b` + l.self + `\.(` + identPattern + `)` + assignOp + l.construct(sourceType) + `[ \t]*\)`)
	return l.all(re)
}

func (l *regexpLexer) Location(name string) (string, bool) {
	return l.first(regexp.MustCompile(l.member(name, "Location") + assignOp + l.construct(pointType) + `(.*)\)`))
}

func (l *regexpLexer) Size(name string) (string, bool) {
	return l.first(regexp.MustCompile(l.member(name, "Size") + assignOp + l.construct(sizeType) + `(.*)\)`))
}

func (l *regexpLexer) Text(name string) (string, bool) {
	return l.first(regexp.MustCompile(l.member(name, "Text") + assignOp + `"(.*)"`))
}

func (l *regexpLexer) Visible(name string) (string, bool) {
	return l.first(regexp.MustCompile(l.member(name, "Visible") + assignOp + `([^\s;]+)`))
}

func (l *regexpLexer) ChildAdds(name string) []string {
	re := regexp.MustCompile(l.member(name, `Controls\.Add\(`) + `[ \t]*` + l.self + `\.(` + identPattern + `)[ \t]*\)`)
	return l.all(re)
}

// first returns the first capture of re's leftmost match.
func (l *regexpLexer) first(re *regexp.Regexp) (string, bool) {
	m := re.FindStringSubmatch(l.src)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// all returns the first capture of every non-overlapping match of re.
func (l *regexpLexer) all(re *regexp.Regexp) []string {
	matches := re.FindAllStringSubmatch(l.src, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
	}
	return out
}
