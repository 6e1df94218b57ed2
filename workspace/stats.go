package workspace

import (
	"os"
	"strings"
)

// FileStats summarizes one file of a schema folder for the detail view.
type FileStats struct {
	Present bool
	Bytes   int64
	Lines   int
	// Items counts the file's domain entries: node definitions for a
	// syntax file, node instances for an AST file, hint entries for a
	// hints file.
	Items int
}

// FolderStats holds the per-file summaries of one schema folder.
type FolderStats struct {
	Syntax FileStats
	AST    FileStats
	Hints  FileStats
}

// Stats sizes up a folder's files without parsing them; it is a cheap
// line-oriented count for listings, not a structural analysis.
func Stats(folder Folder) FolderStats {
	return FolderStats{
		Syntax: fileStats(folder.SyntaxPath, countDefinitions),
		AST:    fileStats(folder.ASTPath, countNodes),
		Hints:  fileStats(folder.HintsPath, countNodes),
	}
}

func fileStats(path string, count func(string) int) FileStats {
	if path == "" {
		return FileStats{}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return FileStats{}
	}
	content := string(data)
	return FileStats{
		Present: true,
		Bytes:   int64(len(data)),
		Lines:   strings.Count(content, "\n") + 1,
		Items:   count(content),
	}
}

// countDefinitions counts non-comment lines opening a block, which tracks
// the number of declarations in a syntax file closely enough for a listing.
func countDefinitions(content string) int {
	n := 0
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "#") && strings.Contains(line, "{") {
			n++
		}
	}
	return n
}

// countNodes counts non-comment lines carrying a type field, one per node
// instance in AST and hints files.
func countNodes(content string) int {
	n := 0
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "#") && strings.Contains(line, "type:") {
			n++
		}
	}
	return n
}
