// Package interactive provides terminal user interface components
package interactive

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/ethpandaops/test-runs/internal/format"
	"github.com/ethpandaops/test-runs/internal/results"
)

// MenuOption represents a menu item with its associated action
type MenuOption struct {
	Name        string
	Description string
	Action      func() error
}

var (
	// ErrExit is returned when the user chooses to exit
	ErrExit = errors.New("exit")
	// ErrInvalidSelection is returned when an invalid menu option is selected
	ErrInvalidSelection = errors.New("invalid selection")
	// ErrNoResults is returned when there is nothing to pick from
	ErrNoResults = errors.New("no test results available")
)

const (
	exitChoice = "Exit"
	backChoice = "← Back"
	pageSize   = 15
)

// MenuChoices builds the labels shown for options, keyed back to their option.
func MenuChoices(options []MenuOption) ([]string, map[string]MenuOption) {
	choices := make([]string, 0, len(options)+1)
	optionMap := make(map[string]MenuOption, len(options))

	for _, opt := range options {
		choice := fmt.Sprintf("%s - %s", opt.Name, opt.Description)
		choices = append(choices, choice)
		optionMap[choice] = opt
	}

	return append(choices, exitChoice), optionMap
}

// ShowMainMenu displays the main menu and handles user selection
func ShowMainMenu(options []MenuOption) error {
	choices, optionMap := MenuChoices(options)

	var selected string
	prompt := &survey.Select{
		Message: "What would you like to do?",
		Options: choices,
	}

	if err := survey.AskOne(prompt, &selected); err != nil {
		return ErrExit
	}

	if selected == exitChoice {
		return ErrExit
	}

	if option, ok := optionMap[selected]; ok {
		return option.Action()
	}

	return ErrInvalidSelection
}

// ResultChoices labels each summary with its date and size, newest first.
func ResultChoices(summaries []results.Summary) ([]string, map[string]string) {
	choices := make([]string, 0, len(summaries)+1)
	byChoice := make(map[string]string, len(summaries))

	for _, s := range summaries {
		choice := fmt.Sprintf("%s  (%s, %s)", s.Filename, s.Date, format.Bytes(s.Size))
		choices = append(choices, choice)
		byChoice[choice] = s.Filename
	}

	return append(choices, backChoice), byChoice
}

// SelectResult asks the user to pick one of summaries and returns its filename.
// ErrExit is returned when the user backs out.
func SelectResult(summaries []results.Summary) (string, error) {
	if len(summaries) == 0 {
		return "", ErrNoResults
	}

	choices, byChoice := ResultChoices(summaries)

	var selected string
	prompt := &survey.Select{
		Message:  "Select a test run:",
		Options:  choices,
		PageSize: pageSize,
	}

	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", ErrExit
	}

	filename, ok := byChoice[selected]
	if !ok {
		return "", ErrExit
	}

	return filename, nil
}

// PauseForEnter waits for the user to press Enter
func PauseForEnter() {
	fmt.Println("\nPress Enter to continue...")
	_, _ = fmt.Scanln()
}
