// Command msc validates markdown schema folders and generates display
// hints. Without action flags it drops into an interactive folder menu.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/rgonek/markdown-schema-checker/checker"
	"github.com/rgonek/markdown-schema-checker/hints"
	"github.com/rgonek/markdown-schema-checker/report"
	"github.com/rgonek/markdown-schema-checker/ron"
	"github.com/rgonek/markdown-schema-checker/schema"
	"github.com/rgonek/markdown-schema-checker/workspace"
)

const version = "0.3.0"

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
})

func main() {
	dir := flag.String("dir", defaultSchemaDir, "Schema root directory")
	configPath := flag.String("config", "", "Config file path (default: $XDG_CONFIG_HOME/msc/config.yaml)")
	list := flag.Bool("list", false, "List schema folders and exit")
	check := flag.String("check", "", "Validate one folder and exit")
	genHints := flag.String("hints", "", "Validate one folder, then generate and write display hints")
	details := flag.String("details", "", "Show one folder's details and exit")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: msc [flags]")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Println("msc " + version)
		return
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Fatal("load config", "err", err)
	}
	// Flags beat file values, so only fill in what the user left alone.
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if !set["dir"] && cfg.SchemaDir != "" {
		*dir = cfg.SchemaDir
	}
	if !set["no-color"] {
		*noColor = cfg.NoColor
	}
	if !set["verbose"] {
		*verbose = cfg.Verbose
	}

	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}
	report.SetColor(!*noColor)

	logger.Debug("discovering schema folders", "dir", *dir)
	folders, err := workspace.Discover(*dir)
	if err != nil {
		logger.Fatal("discover", "err", err)
	}
	logger.Debug("discovered", "count", len(folders))

	switch {
	case *list:
		fmt.Print(report.FolderList(folders))
	case *check != "":
		folder := mustFolder(folders, *check)
		diags, _, _ := runValidation(folder)
		fmt.Print(report.Validation(folder.Name, diags))
		if len(diags) > 0 {
			os.Exit(1)
		}
	case *genHints != "":
		folder := mustFolder(folders, *genHints)
		if err := generateHints(folder); err != nil {
			logger.Fatal("hints", "folder", folder.Name, "err", err)
		}
	case *details != "":
		folder := mustFolder(folders, *details)
		fmt.Print(folderDetails(folder))
	default:
		if err := runMenu(folders); err != nil {
			logger.Fatal("menu", "err", err)
		}
	}
}

func mustFolder(folders []workspace.Folder, name string) workspace.Folder {
	for _, f := range folders {
		if f.Name == name {
			return f
		}
	}
	logger.Fatal("no such schema folder", "name", name)
	return workspace.Folder{}
}

// runValidation loads a folder's documents and validates the example
// against its syntax. A load failure is fatal: nothing can be checked
// without a parsed tree.
func runValidation(folder workspace.Folder) ([]checker.Diagnostic, *schema.Model, *ron.Document) {
	syntaxDoc, err := folder.LoadSyntax()
	if err != nil {
		logger.Fatal("load syntax", "err", err)
	}
	astDoc, err := folder.LoadAST()
	if err != nil {
		logger.Fatal("load ast", "err", err)
	}
	warnLintsFor(folder.SyntaxPath, syntaxDoc.Lints)
	warnLintsFor(folder.ASTPath, astDoc.Lints)

	model := schema.Extract(syntaxDoc.Root)
	logger.Debug("extracted schema", "folder", folder.Name, "definitions", model.Len())

	return checker.Validate(model, astDoc.Root), model, astDoc
}

// generateHints runs the full pipeline for one folder, refusing to write
// hints while validation diagnostics exist.
func generateHints(folder workspace.Folder) error {
	diags, model, astDoc := runValidation(folder)
	if len(diags) > 0 {
		fmt.Print(report.Validation(folder.Name, diags))
		return fmt.Errorf("%d validation error(s); fix them before generating hints", len(diags))
	}
	tree := hints.Generate(model, astDoc.Root)
	if tree == nil {
		return fmt.Errorf("document %s produced no hints", folder.ASTPath)
	}
	if err := workspace.WriteHints(folder, tree); err != nil {
		return err
	}
	logger.Info("wrote display hints", "folder", folder.Name, "file", workspace.HintsFile)
	return nil
}

func folderDetails(folder workspace.Folder) string {
	syntaxDoc, err := folder.LoadSyntax()
	if err != nil {
		logger.Fatal("load syntax", "err", err)
	}
	model := schema.Extract(syntaxDoc.Root)

	var astDoc *ron.Document
	var diags []checker.Diagnostic
	if folder.HasAST() {
		astDoc, err = folder.LoadAST()
		if err != nil {
			logger.Fatal("load ast", "err", err)
		}
		diags = checker.Validate(model, astDoc.Root)
	}
	return report.Details(folder, model, astDoc, diags)
}

func warnLintsFor(path string, lints []ron.Lint) {
	for _, l := range lints {
		logger.Warn("lossy parse", "file", path, "line", l.Line, "fragment", l.Fragment, "reason", l.Message)
	}
}
