package ron

import (
	"fmt"
	"strconv"
	"strings"
)

// SyntaxError is a hard parse failure.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Lint flags a fragment the parser could only keep as an opaque string
// instead of structured data.
type Lint struct {
	Line     int    `json:"line"`
	Fragment string `json:"fragment"`
	Message  string `json:"message"`
}

// Document is the output of a parse: the value tree plus any lints
// recorded on the way.
type Document struct {
	Root  Value
	Lints []Lint
}

// Parse reads a complete document in the notation used by schema folders.
// A *SyntaxError is returned only when the text cannot be tokenized at all
// (unterminated string, mapping, sequence or optional wrapper); anything
// short of that parses, with lossy captures recorded as lints on the
// returned Document.
func Parse(input string) (*Document, error) {
	p := &parser{src: stripComments(input), line: 1}
	root, err := p.parseDocument()
	if err != nil {
		return nil, err
	}
	return &Document{Root: root, Lints: p.lints}, nil
}

// stripComments blanks every line whose first non-blank character is '#'.
// Newlines are kept so line numbers in errors and lints stay true. There
// is no lexer state to resume from, so mid-line comments are not a thing.
func stripComments(src string) string {
	var b strings.Builder
	b.Grow(len(src))
	for start := 0; start < len(src); {
		line := src[start:]
		newline := false
		if end := strings.IndexByte(line, '\n'); end >= 0 {
			line = line[:end]
			start += end + 1
			newline = true
		} else {
			start = len(src)
		}
		if t := strings.TrimLeft(line, " \t"); !strings.HasPrefix(t, "#") {
			b.WriteString(line)
		}
		if newline {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

const lintFragmentMax = 40

type parser struct {
	src   string
	pos   int
	line  int
	lints []Lint
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) bump() byte {
	c := p.src[p.pos]
	p.pos++
	if c == '\n' {
		p.line++
	}
	return c
}

func (p *parser) consume(n int) {
	for i := 0; i < n && !p.eof(); i++ {
		p.bump()
	}
}

func (p *parser) hasPrefix(s string) bool {
	return strings.HasPrefix(p.src[p.pos:], s)
}

func (p *parser) skipWhitespace() {
	for !p.eof() {
		switch p.peek() {
		case ' ', '\t', '\r', '\n':
			p.bump()
		default:
			return
		}
	}
}

// skipSeparators also eats commas, which separate both mapping entries and
// sequence elements.
func (p *parser) skipSeparators() {
	for !p.eof() {
		switch p.peek() {
		case ' ', '\t', '\r', '\n', ',':
			p.bump()
		default:
			return
		}
	}
}

func (p *parser) fail(msg string) *SyntaxError {
	return &SyntaxError{Line: p.line, Msg: msg}
}

func (p *parser) lint(line int, fragment, message string) {
	if len(fragment) > lintFragmentMax {
		fragment = fragment[:lintFragmentMax] + "..."
	}
	p.lints = append(p.lints, Lint{Line: line, Fragment: fragment, Message: message})
}

func (p *parser) parseDocument() (Value, error) {
	p.skipWhitespace()
	if p.eof() {
		return &Mapping{}, nil
	}
	var root Value
	var err error
	switch {
	case p.peek() == '[':
		root, err = p.parseSequence()
	case p.peek() == '{':
		p.bump()
		root, err = p.parseMappingBody('}')
	case !strings.ContainsAny(p.src[p.pos:], ":{"):
		// No structure anywhere ahead: the document is a lone scalar.
		root, err = p.parseValue(0)
	default:
		return p.parseMappingBody(0)
	}
	if err != nil {
		return nil, err
	}
	p.skipSeparators()
	if !p.eof() {
		line := p.line
		rest := strings.TrimSpace(p.src[p.pos:])
		p.consume(len(p.src) - p.pos)
		p.lint(line, rest, "content after the document root was ignored")
	}
	return root, nil
}

// parseMappingBody reads key/value pairs until the closer byte, or until
// the end of input when closer is zero (the document level). Entries are
// separated by commas and/or newlines; a nested named object "Ident { .. }"
// is an entry without a colon.
func (p *parser) parseMappingBody(closer byte) (*Mapping, error) {
	m := &Mapping{}
	for {
		p.skipSeparators()
		if p.eof() {
			if closer != 0 {
				return nil, p.fail("unterminated mapping")
			}
			return m, nil
		}
		if closer != 0 && p.peek() == closer {
			p.bump()
			return m, nil
		}
		line := p.line
		key, term := p.scanKey(closer)
		switch term {
		case ':':
			v, err := p.parseValue(closer)
			if err != nil {
				return nil, err
			}
			m.Set(key, v)
		case '{':
			body, err := p.parseMappingBody('}')
			if err != nil {
				return nil, err
			}
			if key == "" {
				p.lint(line, "{", "mapping without a key was discarded")
				continue
			}
			m.Set(key, body)
		default:
			if key != "" {
				p.lint(line, key, "entry without a ':' was discarded")
			}
		}
	}
}

// scanKey reads entry text up to the byte that decides the entry shape:
// ':' starts a key/value pair, '{' a nested named object. A separator,
// newline or the closer before either of those means the run was a dangling
// token, reported with a zero terminator (the closer itself is left in
// place so the body loop can finish).
func (p *parser) scanKey(closer byte) (string, byte) {
	start := p.pos
	for !p.eof() {
		c := p.peek()
		switch c {
		case ':', '{', ',', '\n':
			key := strings.TrimSpace(p.src[start:p.pos])
			p.bump()
			if c == ',' || c == '\n' {
				c = 0
			}
			return key, c
		}
		if closer != 0 && c == closer {
			return strings.TrimSpace(p.src[start:p.pos]), 0
		}
		p.bump()
	}
	return strings.TrimSpace(p.src[start:p.pos]), 0
}

func (p *parser) parseValue(closer byte) (Value, error) {
	p.skipWhitespace()
	if p.eof() {
		return String(""), nil
	}
	switch p.peek() {
	case '"':
		return p.parseString()
	case '[':
		return p.parseSequence()
	case '{':
		p.bump()
		return p.parseMappingBody('}')
	}
	if name, ok := p.tryNamedObject(false); ok {
		body, err := p.parseMappingBody('}')
		if err != nil {
			return nil, err
		}
		return &Mapping{Entries: []Entry{{Key: name, Value: body}}}, nil
	}
	if p.hasPrefix("Some(") {
		return p.parseSome()
	}
	stop := ",\n"
	if closer != 0 {
		stop += string(closer)
	}
	return p.scanFallback(stop, true)
}

func (p *parser) parseSequence() (Value, error) {
	p.bump()
	seq := Sequence{}
	for {
		p.skipSeparators()
		if p.eof() {
			return nil, p.fail("unterminated sequence")
		}
		var elem Value
		var err error
		switch p.peek() {
		case ']':
			p.bump()
			return seq, nil
		case '"':
			elem, err = p.parseString()
		case '[':
			elem, err = p.parseSequence()
		case '{':
			p.bump()
			elem, err = p.parseMappingBody('}')
		default:
			// A leading uppercase identifier names a nested object; the
			// name is dropped so children sequences hold the node
			// mappings themselves.
			if _, ok := p.tryNamedObject(true); ok {
				elem, err = p.parseMappingBody('}')
			} else if p.hasPrefix("Some(") {
				elem, err = p.parseSome()
			} else {
				elem, err = p.scanFallback(",]", false)
			}
		}
		if err != nil {
			return nil, err
		}
		seq = append(seq, elem)
	}
}

func (p *parser) parseString() (Value, error) {
	p.bump()
	var b strings.Builder
	for !p.eof() {
		c := p.bump()
		switch c {
		case '"':
			return String(b.String()), nil
		case '\\':
			if p.eof() {
				return nil, p.fail("unterminated string literal")
			}
			esc := p.bump()
			switch esc {
			case '"', '\\':
				b.WriteByte(esc)
			default:
				// Unknown escapes pass through verbatim.
				b.WriteByte('\\')
				b.WriteByte(esc)
			}
		default:
			b.WriteByte(c)
		}
	}
	return nil, p.fail("unterminated string literal")
}

func (p *parser) parseSome() (Value, error) {
	p.consume(len("Some("))
	start := p.pos
	depth := 1
	for !p.eof() {
		switch p.peek() {
		case '"':
			if _, err := p.parseString(); err != nil {
				return nil, err
			}
			continue
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				inner := p.src[start:p.pos]
				p.bump()
				return someScalar(inner), nil
			}
		}
		p.bump()
	}
	return nil, p.fail("unterminated optional wrapper")
}

// someScalar unwraps the payload of Some(...): digit runs become integers,
// true/false booleans, anything else a quote-stripped string.
func someScalar(inner string) Value {
	text := strings.TrimSpace(inner)
	switch {
	case text == "true":
		return Bool(true)
	case text == "false":
		return Bool(false)
	case text != "" && allDigits(text):
		if n, err := strconv.ParseInt(text, 10, 64); err == nil {
			return Int(n)
		}
	}
	return String(strings.Trim(text, `"`))
}

// scanFallback captures a value that matches no other production. The raw
// run ends at one of the stop bytes at nesting depth zero; braces and
// brackets inside it are tracked so structured-looking text is kept whole.
// Captures that are not a recognized scalar become opaque strings; those
// are the lossy path and get linted (always in mapping values, only when
// structure-looking in sequence elements where bare words are legitimate).
func (p *parser) scanFallback(stop string, lintAlways bool) (Value, error) {
	line := p.line
	raw, err := p.scanRaw(stop)
	if err != nil {
		return nil, err
	}
	text := strings.TrimSpace(raw)
	if v, ok := classifyScalar(text); ok {
		return v, nil
	}
	if lintAlways || strings.ContainsAny(text, "{}[]:") {
		p.lint(line, text, "unrecognized value kept as string")
	}
	return String(text), nil
}

func (p *parser) scanRaw(stop string) (string, error) {
	start := p.pos
	var stack []byte
	for !p.eof() {
		c := p.peek()
		if len(stack) == 0 && strings.IndexByte(stop, c) >= 0 {
			break
		}
		switch c {
		case '"':
			if _, err := p.parseString(); err != nil {
				return "", err
			}
			continue
		case '{', '[':
			stack = append(stack, c)
		case '}':
			if len(stack) > 0 && stack[len(stack)-1] == '{' {
				stack = stack[:len(stack)-1]
			}
		case ']':
			if len(stack) > 0 && stack[len(stack)-1] == '[' {
				stack = stack[:len(stack)-1]
			}
		}
		p.bump()
	}
	if len(stack) > 0 {
		if stack[len(stack)-1] == '[' {
			return "", p.fail("unterminated sequence")
		}
		return "", p.fail("unterminated mapping")
	}
	return p.src[start:p.pos], nil
}

// tryNamedObject consumes "Ident {" when the cursor sits on one and
// returns the identifier. upperOnly restricts the first letter to
// uppercase, the rule for sequence elements.
func (p *parser) tryNamedObject(upperOnly bool) (string, bool) {
	first := p.peek()
	if !isLetter(first) || (upperOnly && (first < 'A' || first > 'Z')) {
		return "", false
	}
	i := p.pos
	for i < len(p.src) && isIdentByte(p.src[i]) {
		i++
	}
	j := i
	for j < len(p.src) && (p.src[j] == ' ' || p.src[j] == '\t') {
		j++
	}
	if j >= len(p.src) || p.src[j] != '{' {
		return "", false
	}
	name := p.src[p.pos:i]
	p.pos = j + 1 // no newline can occur in the skipped span
	return name, true
}

func classifyScalar(text string) (Value, bool) {
	switch text {
	case "":
		return String(""), true
	case "true":
		return Bool(true), true
	case "false":
		return Bool(false), true
	case "None":
		return Optional{}, true
	}
	return numberValue(text)
}

func numberValue(s string) (Value, bool) {
	t := strings.TrimPrefix(s, "-")
	if t == "" {
		return nil, false
	}
	digits, dots := 0, 0
	for i := 0; i < len(t); i++ {
		switch {
		case t[i] >= '0' && t[i] <= '9':
			digits++
		case t[i] == '.':
			dots++
		default:
			return nil, false
		}
	}
	if digits == 0 || dots > 1 {
		return nil, false
	}
	if dots == 0 {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return Int(n), true
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, false
	}
	return Float(f), true
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentByte(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_' || c == '-'
}
