package schema

import (
	"strings"

	"github.com/rgonek/markdown-schema-checker/ron"
)

// Definition is one node-type declaration from a syntax document.
type Definition struct {
	Name           string // declaration key, e.g. "Heading1"
	NodeType       string // declared node_type, e.g. "heading"
	MarkdownSyntax string
	Depth          int64 // heading-depth discriminator, valid when HasDepth
	HasDepth       bool
	Attrs          []ron.Entry // remaining declaration entries, kept verbatim
}

// Attr returns the value of an extra declaration entry.
func (d *Definition) Attr(key string) (ron.Value, bool) {
	for _, e := range d.Attrs {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Model holds the node-type definitions of one syntax document: the
// backing store in declaration order plus two case-folded lookup indices,
// one by declaration name and one by declared node_type. Later declarations
// win an index slot.
type Model struct {
	defs   []*Definition
	byName map[string]*Definition
	byType map[string]*Definition
}

// Defs returns the definitions in declaration order.
func (m *Model) Defs() []*Definition {
	if m == nil {
		return nil
	}
	return m.defs
}

// Len returns the number of definitions.
func (m *Model) Len() int {
	if m == nil {
		return 0
	}
	return len(m.defs)
}

// Lookup resolves a name case-insensitively, first against declared
// node_type values, then against declaration names.
func (m *Model) Lookup(name string) (*Definition, bool) {
	if m == nil {
		return nil, false
	}
	key := strings.ToLower(name)
	if d, ok := m.byType[key]; ok {
		return d, true
	}
	d, ok := m.byName[key]
	return d, ok
}

// Extract builds the model from a parsed syntax document. It never fails;
// entries that are not definition-shaped are skipped.
func Extract(doc ron.Value) *Model {
	model := &Model{
		byName: make(map[string]*Definition),
		byType: make(map[string]*Definition),
	}
	m, ok := ron.AsMapping(doc)
	if !ok {
		return model
	}
	for _, e := range unwrapRoot(m).Entries {
		def, ok := definitionOf(e.Key, e.Value)
		if !ok {
			continue
		}
		model.defs = append(model.defs, def)
		model.byName[strings.ToLower(def.Name)] = def
		model.byType[strings.ToLower(def.NodeType)] = def
	}
	return model
}

// unwrapRoot descends into a "root" entry when there is one, looking
// through a single synthetic named-object wrapper first when the document
// was written as "Name { ... }".
func unwrapRoot(m *ron.Mapping) *ron.Mapping {
	if inner := childMapping(m, "root"); inner != nil {
		return inner
	}
	if m.Len() == 1 {
		if w, ok := ron.AsMapping(m.Entries[0].Value); ok && !w.Has("node_type") {
			if inner := childMapping(w, "root"); inner != nil {
				return inner
			}
			return w
		}
	}
	return m
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

func definitionOf(key string, v ron.Value) (*Definition, bool) {
	m, ok := ron.AsMapping(v)
	if !ok {
		return nil, false
	}
	rawType, ok := m.Get("node_type")
	if !ok {
		return nil, false
	}
	nodeType, ok := ron.AsString(rawType)
	if !ok {
		return nil, false
	}
	def := &Definition{
		Name:           key,
		NodeType:       nodeType,
		MarkdownSyntax: m.GetString("markdown_syntax", ""),
	}
	if depth, ok := m.Get("depth"); ok {
		if n, ok := ron.AsInt(depth); ok {
			def.Depth = n
			def.HasDepth = true
		}
	}
	for _, e := range m.Entries {
		switch e.Key {
		case "node_type", "markdown_syntax", "depth":
			continue
		}
		def.Attrs = append(def.Attrs, e)
	}
	return def, true
}
