package checker

// Containment stays advisory: Validate never turns a nesting violation
// into a diagnostic, so example documents may nest loosely while a schema
// is being sketched. The table is exported for callers that want to build
// a hard gate on top of the walk.

var (
	blockChildren = map[string]bool{
		"heading":       true,
		"paragraph":     true,
		"blockquote":    true,
		"list":          true,
		"codeBlock":     true,
		"thematicBreak": true,
	}
	inlineChildren = map[string]bool{
		"text":       true,
		"strong":     true,
		"emphasis":   true,
		"inlineCode": true,
		"link":       true,
		"image":      true,
		"delete":     true,
	}
)

// CanContain reports whether child may sit directly under parent according
// to the built-in containment table. Parents outside the table admit any
// child.
func CanContain(parent, child string) bool {
	switch parent {
	case "root":
		return blockChildren[child]
	case "paragraph", "strong", "emphasis":
		return inlineChildren[child]
	case "list":
		return child == "listItem"
	case "listItem", "blockquote":
		return blockChildren[child]
	default:
		return true
	}
}
