// Package ui renders the interactive prompts used by the CLI.
package ui

import (
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/conn-castle/claude-setup/internal/messages"
	"github.com/conn-castle/claude-setup/internal/terminal"
)

var (
	// ErrNotInteractive is returned when a prompt is requested without a terminal.
	ErrNotInteractive = errors.New(messages.UIRequiresTerminal)
	// ErrCancelled is returned when the user aborts a prompt with Esc or Ctrl+C.
	ErrCancelled = errors.New(messages.UICancelled)
)

// Prompter asks the user for input.
type Prompter interface {
	Interactive() bool
	Confirm(title string, description string, value *bool) error
	Input(title string, value *string, validate func(string) error) error
}

// HuhUI implements Prompter using charmbracelet/huh.
type HuhUI struct {
	isTerminal func() bool
	output     io.Writer
}

var runFormFunc = func(form *huh.Form) error { return form.Run() }

// NewHuhUI creates a HuhUI that renders to stderr and uses terminal.IsInteractive.
func NewHuhUI() *HuhUI {
	return &HuhUI{isTerminal: terminal.IsInteractive, output: os.Stderr}
}

// Interactive reports whether prompts can be shown.
func (ui *HuhUI) Interactive() bool {
	checker := ui.isTerminal
	if checker == nil {
		checker = terminal.IsInteractive
	}
	return checker()
}

// keyMap binds both Esc and Ctrl+C to abort.
func keyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "cancel"))
	return km
}

// formFilter converts InterruptMsg (huh's cancel command, or SIGINT) to QuitMsg
// so bubbletea shuts down gracefully and clears the form.
func formFilter(_ tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.InterruptMsg); ok {
		return tea.QuitMsg{}
	}
	return msg
}

func (ui *HuhUI) runForm(form *huh.Form) error {
	if !ui.Interactive() {
		return ErrNotInteractive
	}
	output := ui.output
	if output == nil {
		output = os.Stderr
	}
	form.WithKeyMap(keyMap())
	form.WithProgramOptions(
		tea.WithOutput(output),
		tea.WithFilter(formFilter),
	)

	err := runFormFunc(form)
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrCancelled
	}
	return err
}

// Confirm renders a yes/no prompt.
func (ui *HuhUI) Confirm(title string, description string, value *bool) error {
	confirm := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(value)
	if description != "" {
		confirm = confirm.Description(description)
	}
	return ui.runForm(huh.NewForm(huh.NewGroup(confirm)))
}

// Input renders a plain text input prompt. validate may be nil.
func (ui *HuhUI) Input(title string, value *string, validate func(string) error) error {
	input := huh.NewInput().
		Title(title).
		Value(value)
	if validate != nil {
		input = input.Validate(validate)
	}
	return ui.runForm(huh.NewForm(huh.NewGroup(input)))
}
