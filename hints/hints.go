// Package hints derives per-node rendering metadata from a validated AST
// document: a style class, a decoration glyph and the markdown syntax, plus
// the node's own attributes carried along for the renderer.
package hints

import (
	"github.com/rgonek/markdown-schema-checker/schema"
)

// Style classifies how a node participates in layout.
type Style string

const (
	StyleBlock     Style = "block"
	StyleInline    Style = "inline"
	StyleContainer Style = "container"
	StyleUnknown   Style = "unknown"
)

var (
	blockTypes = map[string]bool{
		"heading":       true,
		"paragraph":     true,
		"blockquote":    true,
		"list":          true,
		"listItem":      true,
		"codeBlock":     true,
		"thematicBreak": true,
	}
	inlineTypes = map[string]bool{
		"text":       true,
		"strong":     true,
		"emphasis":   true,
		"inlineCode": true,
		"link":       true,
		"image":      true,
		"delete":     true,
	}
)

// StyleFor classifies a node type. The classification is intrinsic: it does
// not consult the schema, so a declared override never changes the style of
// a built-in type.
func StyleFor(nodeType string) Style {
	switch {
	case nodeType == "root":
		return StyleContainer
	case blockTypes[nodeType]:
		return StyleBlock
	case inlineTypes[nodeType]:
		return StyleInline
	default:
		return StyleUnknown
	}
}

// Display is the resolved rendering metadata for one node type.
type Display struct {
	Style          Style
	Decoration     string
	MarkdownSyntax string
}

// fallbackDisplay covers the built-in types when the schema has no entry.
var fallbackDisplay = map[string]Display{
	"root":          {StyleContainer, "", ""},
	"heading":       {StyleBlock, "#", "#"},
	"paragraph":     {StyleBlock, "", ""},
	"text":          {StyleInline, "", ""},
	"strong":        {StyleInline, "**", "**"},
	"emphasis":      {StyleInline, "*", "*"},
	"blockquote":    {StyleBlock, ">", ">"},
	"list":          {StyleBlock, "-", "-"},
	"listItem":      {StyleBlock, "-", "-"},
	"codeBlock":     {StyleBlock, "```", "```"},
	"inlineCode":    {StyleInline, "`", "`"},
	"thematicBreak": {StyleBlock, "---", "---"},
	"link":          {StyleInline, "[]()", "[text](url)"},
	"image":         {StyleInline, "![]()", "![alt](url)"},
	"delete":        {StyleInline, "~~", "~~"},
}

// Lookup resolves display metadata for a node type: the schema entry first
// (style still classified intrinsically, decoration and markdown syntax
// both taken from the entry's markdown_syntax), the fallback table second,
// and an unknown/empty Display for anything else.
func Lookup(model *schema.Model, nodeType string) Display {
	if def, ok := model.Lookup(nodeType); ok {
		return Display{
			Style:          StyleFor(nodeType),
			Decoration:     def.MarkdownSyntax,
			MarkdownSyntax: def.MarkdownSyntax,
		}
	}
	if d, ok := fallbackDisplay[nodeType]; ok {
		return d
	}
	return Display{Style: StyleUnknown}
}
