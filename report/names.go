package report

import "strings"

// friendlyNames maps technical node types to the names shown in listings.
var friendlyNames = map[string]string{
	"root":          "Document Root",
	"heading":       "Heading",
	"paragraph":     "Paragraph",
	"text":          "Text Content",
	"strong":        "Bold Text",
	"emphasis":      "Italic Text",
	"blockquote":    "Block Quote",
	"list":          "List",
	"listItem":      "List Item",
	"codeBlock":     "Code Block",
	"inlineCode":    "Inline Code",
	"thematicBreak": "Horizontal Rule",
	"link":          "Link",
	"image":         "Image",
	"delete":        "Strikethrough",
	"table":         "Table",
	"tableRow":      "Table Row",
	"tableCell":     "Table Cell",
	"footnote":      "Footnote",
	"definition":    "Link Definition",
	"frontmatter":   "Front Matter",
	"htmlInline":    "Inline HTML",
	"htmlBlock":     "HTML Block",
	"comment":       "Comment",
	"mathInline":    "Inline Math",
	"mathBlock":     "Math Block",
	"emoji":         "Emoji",
	"hardbreak":     "Line Break",
	"softbreak":     "Soft Break",
}

// FriendlyName returns the human-readable name for a node type, title-casing
// unlisted types rather than inventing anything.
func FriendlyName(nodeType string) string {
	if name, ok := friendlyNames[nodeType]; ok {
		return name
	}
	if nodeType == "" {
		return ""
	}
	return strings.ToUpper(nodeType[:1]) + nodeType[1:]
}
