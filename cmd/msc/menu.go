package main

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/rgonek/markdown-schema-checker/report"
	"github.com/rgonek/markdown-schema-checker/workspace"
)

const (
	actionValidate = "Validate"
	actionDetails  = "Show details"
	actionHints    = "Generate display hints"
	actionErrors   = "List validation errors"
	actionBack     = "Back to folder list"
	actionQuit     = "Quit"
)

// runMenu is the interactive loop: pick a folder, then act on it until the
// user backs out. Ctrl-C anywhere leaves cleanly.
func runMenu(folders []workspace.Folder) error {
	if len(folders) == 0 {
		return errors.New("no schema folders found; point -dir at a directory of folders with a syntax.ron")
	}
	for {
		folder, ok, err := pickFolder(folders)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := folderMenu(folder); err != nil {
			return err
		}
	}
}

func pickFolder(folders []workspace.Folder) (workspace.Folder, bool, error) {
	labels := make([]string, len(folders)+1)
	for i, f := range folders {
		labels[i] = report.FolderLabel(f)
	}
	labels[len(folders)] = actionQuit

	var idx int
	prompt := &survey.Select{
		Message:  "Schema folder:",
		Options:  labels,
		PageSize: 12,
	}
	if err := survey.AskOne(prompt, &idx); err != nil {
		return workspace.Folder{}, false, interruptOK(err)
	}
	if idx == len(folders) {
		return workspace.Folder{}, false, nil
	}
	return folders[idx], true, nil
}

func folderMenu(folder workspace.Folder) error {
	for {
		if !folder.Complete() {
			fmt.Print(folderDetails(folder))
			fmt.Printf("folder %s is incomplete; it needs both %s and %s\n",
				folder.Name, workspace.SyntaxFile, workspace.ASTFile)
			return nil
		}

		diags, model, astDoc := runValidation(folder)
		fmt.Print(report.Validation(folder.Name, diags))

		// Hint generation only makes sense on a clean document; a failed
		// validation offers the error listing instead.
		actions := []string{actionDetails}
		if len(diags) == 0 {
			actions = append(actions, actionHints)
		} else {
			actions = append(actions, actionErrors)
		}
		actions = append(actions, actionValidate, actionBack)

		var choice string
		prompt := &survey.Select{
			Message: folder.Name + ":",
			Options: actions,
		}
		if err := survey.AskOne(prompt, &choice); err != nil {
			return interruptOK(err)
		}

		switch choice {
		case actionDetails:
			fmt.Print(report.Details(folder, model, astDoc, diags))
		case actionHints:
			if err := generateHints(folder); err != nil {
				fmt.Println(err)
			}
		case actionErrors:
			for i, d := range diags {
				fmt.Printf("%d. %s\n", i+1, d.Message)
			}
		case actionValidate:
			// Loop re-validates on every pass; nothing extra to do.
		case actionBack:
			return nil
		}
	}
}

// interruptOK turns a Ctrl-C during a prompt into a clean exit.
func interruptOK(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return nil
	}
	return err
}
