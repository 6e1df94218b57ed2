package checker

import (
	"github.com/rgonek/markdown-schema-checker/ron"
)

// coverage checks, independently of nesting, that every declared node type
// has a worked example somewhere in the document.
func (v *validator) coverage(doc ron.Value) {
	nodes := flatten(doc)
	for _, def := range v.model.Defs() {
		if def.NodeType == "" {
			continue
		}
		if def.NodeType == "heading" && def.HasDepth {
			if !hasHeadingWithDepth(nodes, def.Depth) {
				v.addf("Syntax defines %s (heading depth %d) but AST has no example heading with depth %d",
					def.Name, def.Depth, def.Depth)
			}
			continue
		}
		if !hasNodeOfType(nodes, def.NodeType) {
			v.addf("Syntax defines %s (node_type: %s) but AST has no example of this node type",
				def.Name, def.NodeType)
		}
	}
}

// flatten collects every node-shaped mapping in document order. The walk
// enters sequence elements, every mapping entry and present optionals, so
// examples count no matter where they sit.
func flatten(doc ron.Value) []*ron.Mapping {
	var out []*ron.Mapping
	var walk func(v ron.Value)
	walk = func(v ron.Value) {
		switch t := v.(type) {
		case *ron.Mapping:
			if t.Has("type") {
				out = append(out, t)
			}
			for _, e := range t.Entries {
				walk(e.Value)
			}
		case ron.Sequence:
			for _, e := range t {
				walk(e)
			}
		case ron.Optional:
			if t.Inner != nil {
				walk(t.Inner)
			}
		}
	}
	walk(doc)
	return out
}

// hasHeadingWithDepth matches depth numerically so a "2" in the document
// satisfies a depth: 2 discriminator.
func hasHeadingWithDepth(nodes []*ron.Mapping, depth int64) bool {
	for _, n := range nodes {
		if n.GetString("type", "") != "heading" {
			continue
		}
		d, ok := n.Get("depth")
		if !ok {
			continue
		}
		if got, ok := ron.AsInt(d); ok && got == depth {
			return true
		}
	}
	return false
}

func hasNodeOfType(nodes []*ron.Mapping, nodeType string) bool {
	for _, n := range nodes {
		if n.GetString("type", "") == nodeType {
			return true
		}
	}
	return false
}
