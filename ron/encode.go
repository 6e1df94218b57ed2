package ron

import (
	"strconv"
	"strings"
)

const indentUnit = "    "

// Marshal renders v in the notation read by Parse. A top-level mapping is
// written as a document body; entries holding mappings use the named-object
// form, sequences become bracket blocks and scalars their literals. Parsing
// the output yields a tree equal to v for any tree the parser can produce.
func Marshal(v Value) []byte {
	var b strings.Builder
	if m, ok := v.(*Mapping); ok {
		writeBody(&b, m, 0)
	} else {
		writeValue(&b, v, 0)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

func writeBody(b *strings.Builder, m *Mapping, indent int) {
	for _, e := range m.Entries {
		writeIndent(b, indent)
		if val, ok := e.Value.(*Mapping); ok {
			b.WriteString(e.Key)
			b.WriteString(" {")
			if val.Len() > 0 {
				b.WriteByte('\n')
				writeBody(b, val, indent+1)
				writeIndent(b, indent)
			}
			b.WriteByte('}')
		} else {
			b.WriteString(e.Key)
			b.WriteString(": ")
			writeValue(b, e.Value, indent)
		}
		if indent > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
}

func writeValue(b *strings.Builder, v Value, indent int) {
	switch t := v.(type) {
	case String:
		writeString(b, string(t))
	case Int:
		b.WriteString(strconv.FormatInt(int64(t), 10))
	case Float:
		b.WriteString(formatFloat(float64(t)))
	case Bool:
		b.WriteString(strconv.FormatBool(bool(t)))
	case Optional:
		if t.Inner == nil {
			b.WriteString("None")
		} else {
			b.WriteString("Some(")
			writeValue(b, t.Inner, indent)
			b.WriteByte(')')
		}
	case Sequence:
		if len(t) == 0 {
			b.WriteString("[]")
			return
		}
		b.WriteString("[\n")
		for _, e := range t {
			writeIndent(b, indent+1)
			writeValue(b, e, indent+1)
			b.WriteString(",\n")
		}
		writeIndent(b, indent)
		b.WriteByte(']')
	case *Mapping:
		if t.Len() == 0 {
			b.WriteString("{}")
			return
		}
		b.WriteString("{\n")
		writeBody(b, t, indent+1)
		writeIndent(b, indent)
		b.WriteByte('}')
	default:
		b.WriteString("None")
	}
}

func writeString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"', '\\':
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	b.WriteByte('"')
}

// formatFloat keeps a decimal point so the literal reads back as a float
// rather than collapsing to an integer.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func writeIndent(b *strings.Builder, n int) {
	for i := 0; i < n; i++ {
		b.WriteString(indentUnit)
	}
}
