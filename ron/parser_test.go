package ron

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t testing.TB, input string) *Document {
	t.Helper()

	doc, err := Parse(input)
	require.NoError(t, err)
	require.NotNil(t, doc.Root)

	return doc
}

func rootMapping(t testing.TB, input string) *Mapping {
	t.Helper()

	m, ok := AsMapping(mustParse(t, input).Root)
	require.True(t, ok, "document root is not a mapping")

	return m
}

func TestParseSyntaxDocument(t *testing.T) {
	input := `# definitions for heading levels
Heading1 {
    node_type: "heading",
    depth: 1,
    markdown_syntax: "#",
}

Bold {
    node_type: "strong",
    markdown_syntax: "**",
}
`
	doc := mustParse(t, input)
	assert.Empty(t, doc.Lints)

	m, ok := AsMapping(doc.Root)
	require.True(t, ok)
	require.Equal(t, 2, m.Len())

	h1, ok := AsMapping(mustGet(t, m, "Heading1"))
	require.True(t, ok)
	assert.Equal(t, "heading", h1.GetString("node_type", ""))
	assert.Equal(t, int64(1), h1.GetInt("depth", 0))
	assert.Equal(t, "#", h1.GetString("markdown_syntax", ""))

	bold, ok := AsMapping(mustGet(t, m, "Bold"))
	require.True(t, ok)
	assert.Equal(t, "strong", bold.GetString("node_type", ""))
}

func TestParseASTDocument(t *testing.T) {
	input := `RootNode {
    type: "root",
    children: [
        Heading {
            type: "heading",
            depth: 1,
        },
        { type: "paragraph" },
        "stray text",
    ],
}
`
	m := rootMapping(t, input)

	rootNode, ok := AsMapping(mustGet(t, m, "RootNode"))
	require.True(t, ok)
	assert.Equal(t, "root", rootNode.GetString("type", ""))

	children, ok := mustGet(t, rootNode, "children").(Sequence)
	require.True(t, ok)
	require.Len(t, children, 3)

	// Named sequence elements drop the identifier and keep the body.
	heading, ok := children[0].(*Mapping)
	require.True(t, ok)
	assert.Equal(t, "heading", heading.GetString("type", ""))
	assert.Equal(t, int64(1), heading.GetInt("depth", 0))

	para, ok := children[1].(*Mapping)
	require.True(t, ok)
	assert.Equal(t, "paragraph", para.GetString("type", ""))

	assert.Equal(t, String("stray text"), children[2])
}

func TestParseScalarValues(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Value
	}{
		{"integer", "v: 42", Int(42)},
		{"negative integer", "v: -7", Int(-7)},
		{"float", "v: 2.5", Float(2.5)},
		{"negative float", "v: -0.5", Float(-0.5)},
		{"bool true", "v: true", Bool(true)},
		{"bool false", "v: false", Bool(false)},
		{"quoted string", `v: "hello"`, String("hello")},
		{"escaped quote", `v: "say \"hi\""`, String(`say "hi"`)},
		{"escaped backslash", `v: "a\\b"`, String(`a\b`)},
		{"unknown escape passes through", `v: "a\nb"`, String(`a\nb`)},
		{"none", "v: None", Optional{}},
		{"some integer", "v: Some(3)", Int(3)},
		{"some bool", "v: Some(true)", Bool(true)},
		{"some quoted string", `v: Some("text")`, String("text")},
		{"some bare word", "v: Some(word)", String("word")},
		{"some decimal is a string", "v: Some(3.5)", String("3.5")},
		{"empty value", "v: ,", String("")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := rootMapping(t, tt.input)
			assert.Equal(t, tt.want, mustGet(t, m, "v"))
		})
	}
}

func TestParseSequenceElements(t *testing.T) {
	m := rootMapping(t, `items: [1, "two", three, true, None, Some(5)]`)

	items, ok := mustGet(t, m, "items").(Sequence)
	require.True(t, ok)
	assert.Equal(t, Sequence{Int(1), String("two"), String("three"), Bool(true), Optional{}, Int(5)}, items)
}

func TestParseNestedValueShapes(t *testing.T) {
	input := `outer {
    plain: { a: 1, b: [2, 3] },
    named: Config { x: true },
    empty: [],
}
`
	m := rootMapping(t, input)
	outer, ok := AsMapping(mustGet(t, m, "outer"))
	require.True(t, ok)

	plain, ok := AsMapping(mustGet(t, outer, "plain"))
	require.True(t, ok)
	assert.Equal(t, int64(1), plain.GetInt("a", 0))
	b, ok := mustGet(t, plain, "b").(Sequence)
	require.True(t, ok)
	assert.Equal(t, Sequence{Int(2), Int(3)}, b)

	// A named object in value position keeps its identifier as a wrapper.
	named, ok := AsMapping(mustGet(t, outer, "named"))
	require.True(t, ok)
	cfg, ok := AsMapping(mustGet(t, named, "Config"))
	require.True(t, ok)
	assert.Equal(t, Bool(true), mustGet(t, cfg, "x"))

	empty, ok := mustGet(t, outer, "empty").(Sequence)
	require.True(t, ok)
	assert.Empty(t, empty)
}

func TestParseCommentsKeepLineNumbers(t *testing.T) {
	input := "# top comment\na: 1\n# another comment\nb: **\n"

	doc := mustParse(t, input)
	m, ok := AsMapping(doc.Root)
	require.True(t, ok)
	assert.Equal(t, int64(1), m.GetInt("a", 0))
	assert.Equal(t, String("**"), mustGet(t, m, "b"))

	require.Len(t, doc.Lints, 1)
	assert.Equal(t, 4, doc.Lints[0].Line)
	assert.Equal(t, "**", doc.Lints[0].Fragment)
}

func TestParseFallbackRecordsLint(t *testing.T) {
	doc := mustParse(t, "decoration: **")

	m, ok := AsMapping(doc.Root)
	require.True(t, ok)
	assert.Equal(t, String("**"), mustGet(t, m, "decoration"))

	require.Len(t, doc.Lints, 1)
	lint := doc.Lints[0]
	assert.Equal(t, 1, lint.Line)
	assert.Equal(t, "**", lint.Fragment)
	assert.NotEmpty(t, lint.Message)
}

func TestParseBareSequenceWordsAreNotLinted(t *testing.T) {
	doc := mustParse(t, "tags: [alpha, beta]")
	assert.Empty(t, doc.Lints)
}

func TestParseStructuredSequenceFallbackIsLinted(t *testing.T) {
	doc := mustParse(t, "items: [foo {a, b}]")

	m, ok := AsMapping(doc.Root)
	require.True(t, ok)
	items, ok := mustGet(t, m, "items").(Sequence)
	require.True(t, ok)
	require.Len(t, items, 1)
	assert.Equal(t, String("foo {a, b}"), items[0])

	require.Len(t, doc.Lints, 1)
}

func TestParseDanglingEntryIsLintedAndSkipped(t *testing.T) {
	doc := mustParse(t, "orphan\nb: 2")

	m, ok := AsMapping(doc.Root)
	require.True(t, ok)
	assert.Equal(t, int64(2), m.GetInt("b", 0))
	assert.False(t, m.Has("orphan"))
	require.NotEmpty(t, doc.Lints)
}

func TestParseSyntaxErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
	}{
		{"unterminated string", `v: "open`, 1},
		{"unterminated sequence", "v: [1, 2", 1},
		{"unterminated mapping", "Foo {\n    a: 1", 2},
		{"unterminated optional", "v: Some(1", 1},
		{"unterminated nested mapping", "v: {a: 1", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)

			var synErr *SyntaxError
			require.ErrorAs(t, err, &synErr)
			assert.Equal(t, tt.line, synErr.Line)
		})
	}
}

func TestParseEmptyDocument(t *testing.T) {
	doc := mustParse(t, "")
	m, ok := AsMapping(doc.Root)
	require.True(t, ok)
	assert.Equal(t, 0, m.Len())
}

func TestParseScalarDocument(t *testing.T) {
	doc := mustParse(t, "42\n")
	assert.Equal(t, Int(42), doc.Root)
}

func TestParseSequenceDocument(t *testing.T) {
	doc := mustParse(t, `[1, "a", true]`)
	assert.Equal(t, Sequence{Int(1), String("a"), Bool(true)}, doc.Root)
}

func TestParseDuplicateKeysLastWriteWins(t *testing.T) {
	m := rootMapping(t, "a: 1\nb: 2\na: 3")

	require.Equal(t, 2, m.Len())
	assert.Equal(t, int64(3), m.GetInt("a", 0))
	// The first position of the key is kept.
	assert.Equal(t, "a", m.Entries[0].Key)
	assert.Equal(t, "b", m.Entries[1].Key)
}

func mustGet(t testing.TB, m *Mapping, key string) Value {
	t.Helper()

	v, ok := m.Get(key)
	require.True(t, ok, "missing key %q", key)

	return v
}
