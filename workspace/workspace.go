// Package workspace locates schema folders on disk and moves documents
// between files and parsed form. A schema folder is a directory holding a
// syntax.ron, usually next to an ast.ron with worked examples and an
// optional generated display_hints.ron.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/rgonek/markdown-schema-checker/ron"
)

const (
	SyntaxFile = "syntax.ron"
	ASTFile    = "ast.ron"
	HintsFile  = "display_hints.ron"
	DocFile    = "syntax_doc.md"
)

// Folder is one schema folder. Paths are set only for the files that were
// present at discovery time.
type Folder struct {
	Name       string
	Path       string
	SyntaxPath string
	ASTPath    string
	HintsPath  string
	DocPath    string
}

// HasAST reports whether the folder carries an example document.
func (f Folder) HasAST() bool { return f.ASTPath != "" }

// HasHints reports whether hints were generated before.
func (f Folder) HasHints() bool { return f.HintsPath != "" }

// Complete reports whether the folder can be validated: both the syntax
// definition and the example document exist.
func (f Folder) Complete() bool { return f.SyntaxPath != "" && f.ASTPath != "" }

// Discover lists the schema folders under root, sorted by name. The root
// itself qualifies when it carries a syntax.ron directly; otherwise every
// immediate subdirectory with one does.
func Discover(root string) ([]Folder, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("schema root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("schema root %s: not a directory", root)
	}

	if f, ok := folderAt(root); ok {
		return []Folder{f}, nil
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("schema root %s: %w", root, err)
	}
	var folders []Folder
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if f, ok := folderAt(filepath.Join(root, e.Name())); ok {
			folders = append(folders, f)
		}
	}
	sort.Slice(folders, func(i, j int) bool { return folders[i].Name < folders[j].Name })
	return folders, nil
}

func folderAt(dir string) (Folder, bool) {
	f := Folder{Name: filepath.Base(dir), Path: dir}
	syntax := filepath.Join(dir, SyntaxFile)
	if !fileExists(syntax) {
		return Folder{}, false
	}
	f.SyntaxPath = syntax
	if p := filepath.Join(dir, ASTFile); fileExists(p) {
		f.ASTPath = p
	}
	if p := filepath.Join(dir, HintsFile); fileExists(p) {
		f.HintsPath = p
	}
	if p := filepath.Join(dir, DocFile); fileExists(p) {
		f.DocPath = p
	}
	return f, true
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Load reads and parses one document.
func Load(path string) (*ron.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	doc, err := ron.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}

// LoadSyntax parses the folder's syntax definition.
func (f Folder) LoadSyntax() (*ron.Document, error) {
	if f.SyntaxPath == "" {
		return nil, fmt.Errorf("folder %s has no %s", f.Name, SyntaxFile)
	}
	return Load(f.SyntaxPath)
}

// LoadAST parses the folder's example document.
func (f Folder) LoadAST() (*ron.Document, error) {
	if f.ASTPath == "" {
		return nil, fmt.Errorf("folder %s has no %s", f.Name, ASTFile)
	}
	return Load(f.ASTPath)
}

// LoadHints parses the folder's generated hints, when present.
func (f Folder) LoadHints() (*ron.Document, error) {
	if f.HintsPath == "" {
		return nil, fmt.Errorf("folder %s has no %s", f.Name, HintsFile)
	}
	return Load(f.HintsPath)
}

// WriteHints persists a hints tree into the folder's display_hints.ron,
// wrapped in a display_hints named object so the file reads back as one
// document.
func WriteHints(folder Folder, hintsTree ron.Value) error {
	wrapped := &ron.Mapping{}
	wrapped.Set("display_hints", hintsTree)
	path := filepath.Join(folder.Path, HintsFile)
	if err := os.WriteFile(path, ron.Marshal(wrapped), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
