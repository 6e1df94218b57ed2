package hints

import (
	"github.com/rgonek/markdown-schema-checker/ron"
	"github.com/rgonek/markdown-schema-checker/schema"
)

// attrPrefix keeps copied node attributes clear of the four fixed hint
// fields.
const attrPrefix = "attr_"

// Generate builds a display-hints tree mirroring the shape of an AST
// document. Callers are expected to validate first and only generate when
// there are no diagnostics; Generate itself never fails, it just annotates
// unknown nodes with empty metadata. A nil result means the document held
// nothing worth annotating.
func Generate(model *schema.Model, doc ron.Value) ron.Value {
	g := &generator{model: model}
	return g.value(doc)
}

type generator struct {
	model *schema.Model
}

func (g *generator) value(v ron.Value) ron.Value {
	switch t := v.(type) {
	case *ron.Mapping:
		if t.Has("type") {
			return g.node(t)
		}
		return g.wrapper(t)
	case ron.Sequence:
		out := ron.Sequence{}
		for _, e := range t {
			if r := g.value(e); !isEmpty(r) {
				out = append(out, r)
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	case ron.Optional:
		if t.Inner == nil {
			return nil
		}
		return g.value(t.Inner)
	case nil:
		return nil
	default:
		return ron.Clone(v)
	}
}

// node annotates one node-shaped mapping: the four fixed fields first, then
// the node's own attributes under the attr_ prefix, then the children only
// when recursing actually produced some.
func (g *generator) node(node *ron.Mapping) ron.Value {
	nodeType := node.GetString("type", "")
	display := Lookup(g.model, nodeType)

	hint := &ron.Mapping{}
	hint.Set("type", ron.String(nodeType))
	hint.Set("style", ron.String(display.Style))
	hint.Set("decoration", ron.String(display.Decoration))
	hint.Set("markdown_syntax", ron.String(display.MarkdownSyntax))

	for _, e := range node.Entries {
		switch e.Key {
		case "type", "children":
			continue
		}
		hint.Set(attrPrefix+e.Key, ron.Clone(e.Value))
	}

	if children, ok := node.Get("children"); ok {
		if r := g.value(children); !isEmpty(r) {
			hint.Set("children", r)
		}
	}
	return hint
}

// wrapper rebuilds a mapping that is not itself a node, such as the outer
// named-object shell of a document, dropping entries whose subtree yielded
// nothing.
func (g *generator) wrapper(m *ron.Mapping) ron.Value {
	out := &ron.Mapping{}
	for _, e := range m.Entries {
		if r := g.value(e.Value); !isEmpty(r) {
			out.Set(e.Key, r)
		}
	}
	if out.Len() == 0 {
		return nil
	}
	return out
}

func isEmpty(v ron.Value) bool {
	switch t := v.(type) {
	case nil:
		return true
	case ron.Optional:
		return t.Inner == nil
	case ron.Sequence:
		return len(t) == 0
	case *ron.Mapping:
		return t.Len() == 0
	default:
		return false
	}
}
