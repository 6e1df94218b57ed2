// Package report renders the checker's results as plain strings for a
// terminal. It never prints and never touches the filesystem; the CLI
// decides where the text goes.
package report

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rgonek/markdown-schema-checker/checker"
	"github.com/rgonek/markdown-schema-checker/ron"
	"github.com/rgonek/markdown-schema-checker/schema"
	"github.com/rgonek/markdown-schema-checker/workspace"
)

// FolderList renders the discovered schema folders with status glyphs and
// entry counts, one folder per line.
func FolderList(folders []workspace.Folder) string {
	var b strings.Builder
	b.WriteString(render(titleStyle, "Schema folders"))
	b.WriteByte('\n')
	if len(folders) == 0 {
		b.WriteString(render(dimStyle, "  none found"))
		b.WriteByte('\n')
		return b.String()
	}
	for _, f := range folders {
		b.WriteString("  ")
		b.WriteString(FolderLabel(f))
		b.WriteByte('\n')
	}
	return b.String()
}

// FolderLabel is one folder's listing line: name plus a bracketed status
// of its files and their entry counts.
func FolderLabel(f workspace.Folder) string {
	stats := workspace.Stats(f)
	var parts []string
	if stats.Syntax.Present {
		parts = append(parts, fmt.Sprintf("syntax(%d)", stats.Syntax.Items))
	}
	if stats.AST.Present {
		parts = append(parts, fmt.Sprintf("ast(%d)", stats.AST.Items))
	}
	if stats.Hints.Present {
		parts = append(parts, "hints")
	}
	status := "incomplete"
	if len(parts) > 0 {
		status = strings.Join(parts, " | ")
	}
	return fmt.Sprintf("%-20s [%s]", f.Name, status)
}

// Validation renders a diagnostic list, or the pass line when it is empty.
func Validation(folder string, diags []checker.Diagnostic) string {
	var b strings.Builder
	if len(diags) == 0 {
		b.WriteString(render(successStyle, fmt.Sprintf("%s: validation passed", folder)))
		b.WriteByte('\n')
		return b.String()
	}
	b.WriteString(render(errorStyle, fmt.Sprintf("%s: %d validation error(s)", folder, len(diags))))
	b.WriteByte('\n')
	for i, d := range diags {
		b.WriteString(render(errorStyle, fmt.Sprintf("  %d. %s", i+1, d.Message)))
		b.WriteByte('\n')
	}
	return b.String()
}

// Lints renders the parser's lossy-capture warnings for one file.
func Lints(path string, lints []ron.Lint) string {
	if len(lints) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(render(warnStyle, fmt.Sprintf("%s: %d parse lint(s)", path, len(lints))))
	b.WriteByte('\n')
	for _, l := range lints {
		b.WriteString(render(warnStyle, fmt.Sprintf("  line %d: %s: %q", l.Line, l.Message, l.Fragment)))
		b.WriteByte('\n')
	}
	return b.String()
}

// syntaxDefines matches the coverage diagnostics, which are the only way to
// recover which definitions failed; diagnostics carry no structured
// category, so the message shape is the contract here.
var syntaxDefines = regexp.MustCompile(`^Syntax defines (\S+) `)

// FailedDefinitions returns the declaration names called out by coverage
// diagnostics.
func FailedDefinitions(diags []checker.Diagnostic) map[string]bool {
	failed := make(map[string]bool)
	for _, d := range diags {
		if m := syntaxDefines.FindStringSubmatch(d.Message); m != nil {
			failed[m[1]] = true
		}
	}
	return failed
}

// Details renders the full per-folder view: file stats, the document's
// structure, the declared definitions with coverage failures in red, and
// any parse lints.
func Details(folder workspace.Folder, model *schema.Model, ast *ron.Document, diags []checker.Diagnostic) string {
	var b strings.Builder
	b.WriteString(render(titleStyle, "Folder: "+folder.Name))
	b.WriteString("\n\n")

	writeFileStats(&b, folder)

	if ast != nil {
		writeStructure(&b, Analyze(ast.Root))
	}

	writeDefinitions(&b, model, FailedDefinitions(diags))

	if ast != nil && len(ast.Lints) > 0 {
		b.WriteByte('\n')
		b.WriteString(Lints(folder.ASTPath, ast.Lints))
	}
	return b.String()
}

func writeFileStats(b *strings.Builder, folder workspace.Folder) {
	stats := workspace.Stats(folder)
	b.WriteString(render(headerStyle, fmt.Sprintf("%-22s %8s %8s %8s", "File", "Bytes", "Lines", "Items")))
	b.WriteByte('\n')
	rows := []struct {
		name string
		fs   workspace.FileStats
	}{
		{workspace.SyntaxFile, stats.Syntax},
		{workspace.ASTFile, stats.AST},
		{workspace.HintsFile, stats.Hints},
	}
	for _, row := range rows {
		if !row.fs.Present {
			b.WriteString(render(dimStyle, fmt.Sprintf("%-22s %8s", row.name, "missing")))
			b.WriteByte('\n')
			continue
		}
		b.WriteString(fmt.Sprintf("%-22s %8d %8d %8d", row.name, row.fs.Bytes, row.fs.Lines, row.fs.Items))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
}

func writeStructure(b *strings.Builder, a Analysis) {
	b.WriteString(render(headerStyle, fmt.Sprintf("%-20s %-25s %8s %8s", "Node Type", "Name", "Count", "Depth")))
	b.WriteByte('\n')
	for _, name := range a.TypeNames() {
		info := a.Types[name]
		b.WriteString(fmt.Sprintf("%-20s %-25s %8d %8d", name, FriendlyName(name), info.Count, info.MaxDepth))
		b.WriteByte('\n')
	}
	b.WriteString(render(dimStyle, fmt.Sprintf("total nodes: %d, max depth: %d, distinct types: %d",
		a.TotalNodes, a.MaxDepth, len(a.Types))))
	b.WriteString("\n\n")
}

func writeDefinitions(b *strings.Builder, model *schema.Model, failed map[string]bool) {
	b.WriteString(render(headerStyle, fmt.Sprintf("%-20s %-25s %s", "Definition", "Name", "Markdown")))
	b.WriteByte('\n')
	for _, def := range model.Defs() {
		line := fmt.Sprintf("%-20s %-25s %s", def.Name, FriendlyName(def.NodeType), def.MarkdownSyntax)
		if failed[def.Name] {
			line = render(errorStyle, line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
}
