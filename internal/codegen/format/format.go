// Package format is a small, deterministic pretty-printer for generated TypeScript.
//
// It does not parse TypeScript. It works line by line: indentation follows the
// bracket depth outside string and regex literals, string quotes and single-line brace spacing are normalized and
// blank lines are collapsed. Running it on its own output changes nothing.
package format

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedParser is returned for a parser dialect the printer does not know.
var ErrUnsupportedParser = errors.New("unsupported parser")

// Options are the style settings of the printer.
type Options struct {
	Parser         string `help:"Parser dialect of the generated sources" default:"typescript" enum:"typescript,babel-ts"`
	SingleQuote    bool   `help:"Prefer single quotes in string literals" default:"true" negatable:""`
	TabWidth       int    `help:"Number of spaces per indentation level" default:"2"`
	UseTabs        bool   `help:"Indent with tabs instead of spaces"`
	BracketSpacing bool   `help:"Print spaces between braces of single-line object literals" default:"true" negatable:""`
}

// DefaultOptions mirrors the flag defaults.
func DefaultOptions() Options {
	return Options{
		Parser:         "typescript",
		SingleQuote:    true,
		TabWidth:       2,
		BracketSpacing: true,
	}
}

// Printer formats TypeScript sources.
type Printer struct {
	opts   Options
	indent string
}

// New validates opts and returns a printer.
func New(opts Options) (*Printer, error) {
	switch opts.Parser {
	case "typescript", "babel-ts":
	case "":
		opts.Parser = "typescript"
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedParser, opts.Parser)
	}
	if opts.TabWidth < 0 {
		return nil, fmt.Errorf("invalid tab width %d", opts.TabWidth)
	}
	p := &Printer{opts: opts, indent: "\t"}
	if !opts.UseTabs {
		p.indent = strings.Repeat(" ", opts.TabWidth)
	}
	return p, nil
}

// Format returns src in canonical style. name is only used in error messages.
func (p *Printer) Format(name, src string) (string, error) {
	lines := strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n")

	var out []string
	depth := 0
	blank := false
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			blank = len(out) > 0
			continue
		}

		if !isComment(line) {
			line = p.normalizeQuotes(line)
			line = p.spaceBraces(line)
		}

		lead := leadingClosers(line)
		level := depth - lead
		if level < 0 {
			return "", fmt.Errorf("%s:%d: unbalanced closing bracket", name, i+1)
		}
		if blank && !endsWithOpener(out[len(out)-1]) && lead == 0 {
			out = append(out, "")
		}
		blank = false
		out = append(out, strings.Repeat(p.indent, level)+line)

		if !isComment(line) {
			depth += bracketDelta(line)
		}
		if depth < 0 {
			return "", fmt.Errorf("%s:%d: unbalanced closing bracket", name, i+1)
		}
	}
	if depth != 0 {
		return "", fmt.Errorf("%s: %d unclosed brackets", name, depth)
	}
	if len(out) == 0 {
		return "", nil
	}
	return strings.Join(out, "\n") + "\n", nil
}

func isComment(line string) bool {
	return strings.HasPrefix(line, "//") || strings.HasPrefix(line, "/*") || strings.HasPrefix(line, "*")
}

func isOpener(c byte) bool { return c == '{' || c == '(' || c == '[' }
func isCloser(c byte) bool { return c == '}' || c == ')' || c == ']' }
func isQuote(c byte) bool  { return c == '\'' || c == '"' || c == '`' }

func endsWithOpener(line string) bool {
	line = strings.TrimSpace(line)
	return line != "" && isOpener(line[len(line)-1])
}

func leadingClosers(line string) int {
	n := 0
	for n < len(line) && isCloser(line[n]) {
		n++
	}
	return n
}

// bracketDelta is the change in nesting depth caused by line, ignoring
// string and regex literals and comments.
func bracketDelta(line string) int {
	delta := 0
	for i := 0; i < len(line); {
		c := line[i]
		switch {
		case isQuote(c):
			i = skipString(line, i)
			continue
		case c == '/' && i+1 < len(line) && line[i+1] == '/':
			return delta
		case c == '/':
			if j := skipRegex(line, i); j > i {
				i = j
				continue
			}
		case isOpener(c):
			delta++
		case isCloser(c):
			delta--
		}
		i++
	}
	return delta
}

// skipString returns the index just past the string literal starting at i.
// An unterminated literal extends to the end of the line.
func skipString(line string, i int) int {
	q := line[i]
	for j := i + 1; j < len(line); j++ {
		switch line[j] {
		case '\\':
			j++
		case q:
			return j + 1
		}
	}
	return len(line)
}

// skipRegex returns the index just past the regex literal starting at i, or i
// when line[i] does not start one. A slash starts a regex only where an
// operand is expected; '/' inside a character class does not end it.
func skipRegex(line string, i int) int {
	if line[i] != '/' || i+1 >= len(line) || line[i+1] == '/' || line[i+1] == '*' || !operandExpected(line, i) {
		return i
	}
	inClass := false
	for j := i + 1; j < len(line); j++ {
		switch c := line[j]; {
		case c == '\\':
			j++
		case c == '[':
			inClass = true
		case c == ']':
			inClass = false
		case c == '/' && !inClass:
			j++
			for j < len(line) && isWordByte(line[j]) {
				j++
			}
			return j
		}
	}
	return i
}

// operandExpected reports whether the token before i leaves the parser
// expecting an expression, which makes a following '/' a regex and not a division.
func operandExpected(line string, i int) bool {
	j := i - 1
	for j >= 0 && (line[j] == ' ' || line[j] == '\t') {
		j--
	}
	if j < 0 || strings.IndexByte("(,=:[!&|?{};", line[j]) >= 0 {
		return true
	}
	end := j + 1
	for j >= 0 && isWordByte(line[j]) {
		j--
	}
	switch line[j+1 : end] {
	case "return", "typeof", "case", "in", "of":
		return true
	}
	return false
}

func isWordByte(c byte) bool {
	return c == '_' || c == '$' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

// matchBrace returns the index of the '}' closing the '{' at i, or -1 when it
// is not closed on the same line.
func matchBrace(line string, i int) int {
	depth := 0
	for j := i; j < len(line); {
		c := line[j]
		switch {
		case isQuote(c):
			j = skipString(line, j)
			continue
		case c == '/' && j+1 < len(line) && line[j+1] == '/':
			return -1
		case c == '/':
			if k := skipRegex(line, j); k > j {
				j = k
				continue
			}
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return j
			}
		}
		j++
	}
	return -1
}

func (p *Printer) spaceBraces(line string) string {
	var b strings.Builder
	for i := 0; i < len(line); {
		c := line[i]
		if isQuote(c) {
			j := skipString(line, i)
			b.WriteString(line[i:j])
			i = j
			continue
		}
		if c == '/' && i+1 < len(line) && line[i+1] == '/' {
			b.WriteString(line[i:])
			break
		}
		if j := skipRegex(line, i); j > i {
			b.WriteString(line[i:j])
			i = j
			continue
		}
		if c == '{' {
			if j := matchBrace(line, i); j > 0 {
				inner := strings.TrimSpace(p.spaceBraces(line[i+1 : j]))
				b.WriteByte('{')
				if inner != "" {
					if p.opts.BracketSpacing {
						b.WriteByte(' ')
					}
					b.WriteString(inner)
					if p.opts.BracketSpacing {
						b.WriteByte(' ')
					}
				}
				b.WriteByte('}')
				i = j + 1
				continue
			}
		}
		b.WriteByte(c)
		i++
	}
	return b.String()
}

func (p *Printer) normalizeQuotes(line string) string {
	want, other := byte('\''), byte('"')
	if !p.opts.SingleQuote {
		want, other = other, want
	}

	var b strings.Builder
	for i := 0; i < len(line); {
		c := line[i]
		if c == '/' && i+1 < len(line) && line[i+1] == '/' {
			b.WriteString(line[i:])
			break
		}
		if j := skipRegex(line, i); j > i {
			b.WriteString(line[i:j])
			i = j
			continue
		}
		if !isQuote(c) {
			b.WriteByte(c)
			i++
			continue
		}
		j := skipString(line, i)
		lit := line[i:j]
		if c == other && j-i >= 2 && lit[len(lit)-1] == other {
			lit = requote(lit[1:len(lit)-1], want, other)
		}
		b.WriteString(lit)
		i = j
	}
	return b.String()
}

// requote converts the body of an other-quoted literal to a want-quoted one,
// unless that would need more escapes than it removes.
func requote(body string, want, other byte) string {
	wants, others := 0, 0
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '\\':
			if i+1 < len(body) && body[i+1] == other {
				others++
			}
			i++
		case want:
			wants++
		}
	}
	if wants > others {
		return string(other) + body + string(other)
	}

	var b strings.Builder
	b.WriteByte(want)
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case c == '\\' && i+1 < len(body):
			if body[i+1] == other {
				b.WriteByte(other)
			} else {
				b.WriteByte(c)
				b.WriteByte(body[i+1])
			}
			i++
		case c == want:
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte(want)
	return b.String()
}
