package checker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgonek/markdown-schema-checker/ron"
	"github.com/rgonek/markdown-schema-checker/schema"
)

func modelFrom(t testing.TB, syntaxSrc string) *schema.Model {
	t.Helper()

	doc, err := ron.Parse(syntaxSrc)
	require.NoError(t, err)

	return schema.Extract(doc.Root)
}

func validateSource(t testing.TB, syntaxSrc, astSrc string) []Diagnostic {
	t.Helper()

	ast, err := ron.Parse(astSrc)
	require.NoError(t, err)

	return Validate(modelFrom(t, syntaxSrc), ast.Root)
}

func messages(diags []Diagnostic) []string {
	out := make([]string, len(diags))
	for i, d := range diags {
		out[i] = d.Message
	}
	return out
}

func TestValidateCleanDocument(t *testing.T) {
	syntax := `Heading1 { node_type: "heading", depth: 1, markdown_syntax: "#" }`
	ast := `RootNode {
    type: "root",
    children: [
        { type: "heading", depth: 1, children: [] },
    ],
}`
	assert.Empty(t, validateSource(t, syntax, ast))
}

func TestValidateBareNodeDocument(t *testing.T) {
	ast := `{ type: "heading", depth: 1, children: [] }`
	assert.Empty(t, validateSource(t, "", ast))
}

func TestValidateForestWalksEveryTopLevelNode(t *testing.T) {
	ast := `first { type: "heading" }
second { type: "link" }`
	got := messages(validateSource(t, "", ast))

	assert.Equal(t, []string{
		"Heading node missing required 'depth' attribute",
		"Link node missing required 'url' attribute",
	}, got)
}

func TestValidateDescendsRootKey(t *testing.T) {
	ast := `root { type: "root", children: [] }`
	assert.Empty(t, validateSource(t, "", ast))
}

func TestValidateMissingTypeField(t *testing.T) {
	t.Run("root wrapper without type", func(t *testing.T) {
		got := messages(validateSource(t, "", `RootNode { children: [] }`))
		assert.Equal(t, []string{"Node missing 'type' field"}, got)
	})

	t.Run("child without type", func(t *testing.T) {
		ast := `{ type: "root", children: [ { note: "no type here" } ] }`
		got := messages(validateSource(t, "", ast))
		assert.Equal(t, []string{"Node missing 'type' field"}, got)
	})
}

func TestValidateUnknownTypeStopsDescent(t *testing.T) {
	ast := `{
    type: "root",
    children: [
        { type: "wat", children: [ { type: "heading" } ] },
    ],
}`
	got := messages(validateSource(t, "", ast))

	// The heading below the unknown node is not walked, so its missing
	// depth goes unreported.
	assert.Equal(t, []string{"Unknown node type: wat"}, got)
}

func TestValidateSchemaDeclaredTypeIsKnown(t *testing.T) {
	syntax := `Callout { node_type: "callout", markdown_syntax: ">" }`
	ast := `{ type: "root", children: [ { type: "callout" } ] }`

	assert.Empty(t, validateSource(t, syntax, ast))
}

func TestValidateSchemaLookupIsCaseInsensitive(t *testing.T) {
	syntax := `Callout { node_type: "callout" }`
	ast := `{ type: "root", children: [ { type: "Callout" } ] }`

	got := validateSource(t, syntax, ast)

	// The structural walk accepts the case-folded match; coverage compares
	// exactly and still wants a lowercase example.
	require.Len(t, got, 1)
	assert.Equal(t, "Syntax defines Callout (node_type: callout) but AST has no example of this node type", got[0].Message)
}

func TestValidateFrontmatterMustBeFirst(t *testing.T) {
	syntax := `FrontMatter { node_type: "frontmatter" }`

	t.Run("second child is reported", func(t *testing.T) {
		ast := `{
    type: "root",
    children: [
        { type: "paragraph", children: [] },
        { type: "frontmatter" },
    ],
}`
		got := messages(validateSource(t, syntax, ast))
		assert.Equal(t, []string{"Frontmatter node must be first child of Document"}, got)
	})

	t.Run("first child is fine", func(t *testing.T) {
		ast := `{
    type: "root",
    children: [
        { type: "frontmatter" },
        { type: "paragraph", children: [] },
    ],
}`
		assert.Empty(t, validateSource(t, syntax, ast))
	})
}

func TestValidateRequiredAttributes(t *testing.T) {
	ast := `{
    type: "root",
    children: [
        { type: "heading" },
        { type: "link" },
        { type: "image" },
    ],
}`
	got := messages(validateSource(t, "", ast))

	assert.Equal(t, []string{
		"Heading node missing required 'depth' attribute",
		"Link node missing required 'url' attribute",
		"Image node missing required 'url' attribute",
		"Image node missing required 'alt' attribute",
	}, got)
}

func TestValidateLooseNestingIsAdvisory(t *testing.T) {
	// text directly under root breaks the containment table, which is
	// deliberately not a finding.
	ast := `{
    type: "root",
    children: [
        { type: "text", value: "loose" },
    ],
}`
	assert.Empty(t, validateSource(t, "", ast))
	assert.False(t, CanContain("root", "text"))
}

func TestValidateNonMappingDocument(t *testing.T) {
	ast, err := ron.Parse(`[1, 2, 3]`)
	require.NoError(t, err)

	assert.Empty(t, Validate(modelFrom(t, ""), ast.Root))
}

func TestCanContain(t *testing.T) {
	tests := []struct {
		parent, child string
		want          bool
	}{
		{"root", "heading", true},
		{"root", "paragraph", true},
		{"root", "text", false},
		{"paragraph", "text", true},
		{"paragraph", "strong", true},
		{"paragraph", "blockquote", false},
		{"strong", "text", true},
		{"emphasis", "inlineCode", true},
		{"list", "listItem", true},
		{"list", "paragraph", false},
		{"listItem", "paragraph", true},
		{"blockquote", "paragraph", true},
		{"blockquote", "text", false},
		{"codeBlock", "anything", true},
		{"customParent", "customChild", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CanContain(tt.parent, tt.child), "%s > %s", tt.parent, tt.child)
	}
}
