package checker

import (
	"fmt"
	"strings"

	"github.com/rgonek/markdown-schema-checker/ron"
	"github.com/rgonek/markdown-schema-checker/schema"
)

// Diagnostic is one validation finding. There are no severity grades:
// every diagnostic blocks hint generation, and callers that need a
// category have to match on the message shape.
type Diagnostic struct {
	Message string `json:"message"`
}

// intrinsicTypes may appear in a document without a schema declaration.
var intrinsicTypes = map[string]bool{
	"root":          true,
	"heading":       true,
	"paragraph":     true,
	"text":          true,
	"strong":        true,
	"emphasis":      true,
	"blockquote":    true,
	"list":          true,
	"listItem":      true,
	"codeBlock":     true,
	"inlineCode":    true,
	"thematicBreak": true,
	"link":          true,
	"image":         true,
	"delete":        true,
}

// Validate walks an AST document against the model and returns every
// finding: structural ones in walk order, then coverage ones in schema
// declaration order. It never fails; input that cannot be walked at all
// simply yields no findings.
func Validate(model *schema.Model, doc ron.Value) []Diagnostic {
	v := &validator{model: model}
	v.document(doc)
	v.coverage(doc)
	return v.diags
}

type validator struct {
	model *schema.Model
	diags []Diagnostic
}

func (v *validator) addf(format string, args ...any) {
	v.diags = append(v.diags, Diagnostic{Message: fmt.Sprintf(format, args...)})
}

// document locates the nodes validation starts from: the top-level value
// itself when node-shaped, the value under a "root" key, or otherwise
// every node-shaped entry of the top-level mapping (a forest).
func (v *validator) document(doc ron.Value) {
	m, ok := ron.AsMapping(doc)
	if !ok {
		return
	}
	if m.Has("type") {
		v.node(m, 0)
		return
	}
	if inner := childMapping(m, "root"); inner != nil {
		if inner.Has("type") {
			v.node(inner, 0)
			return
		}
		m = inner
	}
	for _, e := range m.Entries {
		child, ok := ron.AsMapping(e.Value)
		if !ok {
			continue
		}
		if child.Has("type") || strings.EqualFold(e.Key, "rootnode") {
			v.node(child, 0)
		}
	}
}

func (v *validator) node(node *ron.Mapping, position int) {
	rawType, ok := node.Get("type")
	if !ok {
		v.addf("Node missing 'type' field")
		return
	}
	nodeType, ok := ron.AsString(rawType)
	if !ok {
		nodeType = fmt.Sprintf("%v", rawType)
	}
	if !v.knownType(nodeType) {
		v.addf("Unknown node type: %s", nodeType)
		return
	}
	// Containment is not enforced here; see CanContain.
	if strings.EqualFold(nodeType, "frontmatter") && position > 0 {
		v.addf("Frontmatter node must be first child of Document")
	}
	if children, ok := node.Get("children"); ok {
		if seq, ok := children.(ron.Sequence); ok {
			for i, child := range seq {
				if cm, ok := ron.AsMapping(child); ok {
					v.node(cm, i)
				}
			}
		}
	}
	v.requiredAttrs(node, nodeType)
}

func (v *validator) knownType(nodeType string) bool {
	if intrinsicTypes[nodeType] {
		return true
	}
	_, ok := v.model.Lookup(nodeType)
	return ok
}

func (v *validator) requiredAttrs(node *ron.Mapping, nodeType string) {
	switch nodeType {
	case "heading":
		if !node.Has("depth") {
			v.addf("Heading node missing required 'depth' attribute")
		}
	case "link":
		if !node.Has("url") {
			v.addf("Link node missing required 'url' attribute")
		}
	case "image":
		if !node.Has("url") {
			v.addf("Image node missing required 'url' attribute")
		}
		if !node.Has("alt") {
			v.addf("Image node missing required 'alt' attribute")
		}
	}
}

func childMapping(m *ron.Mapping, key string) *ron.Mapping {
	v, ok := m.Get(key)
	if !ok {
		return nil
	}
	child, ok := ron.AsMapping(v)
	if !ok {
		return nil
	}
	return child
}
