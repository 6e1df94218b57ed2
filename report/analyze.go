package report

import (
	"sort"

	"github.com/rgonek/markdown-schema-checker/ron"
)

// TypeInfo summarizes one node type's occurrences in a document.
type TypeInfo struct {
	Count    int
	MaxDepth int
}

// Analysis is the structural summary of an AST document.
type Analysis struct {
	Types      map[string]TypeInfo
	TotalNodes int
	MaxDepth   int
}

// TypeNames returns the encountered node types sorted by name.
func (a Analysis) TypeNames() []string {
	names := make([]string, 0, len(a.Types))
	for name := range a.Types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Analyze counts node types and nesting depth for the detail view. Only the
// node tree matters here, so the walk follows children sequences and skips
// plain attribute values.
func Analyze(doc ron.Value) Analysis {
	a := Analysis{Types: make(map[string]TypeInfo)}
	m, ok := ron.AsMapping(doc)
	if !ok {
		return a
	}
	if m.Has("type") {
		a.walk(m, 1)
		return a
	}
	for _, e := range m.Entries {
		if child, ok := ron.AsMapping(e.Value); ok {
			if child.Has("type") {
				a.walk(child, 1)
			}
		}
	}
	return a
}

func (a *Analysis) walk(node *ron.Mapping, depth int) {
	nodeType := node.GetString("type", "")
	info := a.Types[nodeType]
	info.Count++
	if depth > info.MaxDepth {
		info.MaxDepth = depth
	}
	a.Types[nodeType] = info
	a.TotalNodes++
	if depth > a.MaxDepth {
		a.MaxDepth = depth
	}

	children, ok := node.Get("children")
	if !ok {
		return
	}
	seq, ok := children.(ron.Sequence)
	if !ok {
		return
	}
	for _, child := range seq {
		if cm, ok := ron.AsMapping(child); ok && cm.Has("type") {
			a.walk(cm, depth+1)
		}
	}
}
