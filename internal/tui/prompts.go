package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrInteractiveDisabled is returned when interactive prompts are disabled via DDFPANE_NO_INTERACTIVE
var ErrInteractiveDisabled = fmt.Errorf("interactive prompts are disabled (DDFPANE_NO_INTERACTIVE is set)")

// ErrCanceled is returned when the user cancels a prompt
var ErrCanceled = errors.New("canceled")

// checkInteractiveAllowed returns an error if interactive mode is disabled
func checkInteractiveAllowed() error {
	if os.Getenv("DDFPANE_NO_INTERACTIVE") != "" {
		return ErrInteractiveDisabled
	}
	return nil
}

// Prompter asks the user for input. The interactive pane depends on this
// rather than the terminal so it can be driven from tests.
type Prompter interface {
	Text(prompt, defaultValue string) (string, error)
	Confirm(prompt string, defaultValue bool) (bool, error)
	Password(prompt string) (string, error)
}

// TerminalPrompter implements Prompter on a terminal. In and Out default to
// os.Stdin and os.Stdout.
type TerminalPrompter struct {
	In  io.Reader
	Out io.Writer
}

func (p TerminalPrompter) input() io.Reader {
	if p.In == nil {
		return os.Stdin
	}
	return p.In
}

func (p TerminalPrompter) output() io.Writer {
	if p.Out == nil {
		return os.Stdout
	}
	return p.Out
}

// Text implements Prompter
func (p TerminalPrompter) Text(prompt, defaultValue string) (string, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return "", err
	}

	prog := tea.NewProgram(newTextInputModel(prompt, defaultValue), tea.WithInput(p.input()), tea.WithOutput(p.output()))
	model, err := prog.Run()
	if err != nil {
		return "", err
	}

	if finalModel, ok := model.(textInputModel); ok {
		if finalModel.err != nil {
			return "", finalModel.err
		}
		return strings.TrimSpace(finalModel.textInput.Value()), nil
	}

	return "", fmt.Errorf("unexpected model type")
}

// Confirm implements Prompter
func (p TerminalPrompter) Confirm(prompt string, defaultValue bool) (bool, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return false, err
	}

	m := confirmModel{
		prompt: prompt,
		choice: defaultValue,
	}

	prog := tea.NewProgram(m, tea.WithInput(p.input()), tea.WithOutput(p.output()))
	model, err := prog.Run()
	if err != nil {
		return false, err
	}

	if finalModel, ok := model.(confirmModel); ok {
		if finalModel.err != nil {
			return false, finalModel.err
		}
		return finalModel.choice, nil
	}

	return false, fmt.Errorf("unexpected model type")
}

// Password implements Prompter. survey needs file descriptors to turn off
// echo, so In and Out are only used when they are files.
func (p TerminalPrompter) Password(prompt string) (string, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return "", err
	}

	var opts []survey.AskOpt
	in, inOK := p.input().(terminal.FileReader)
	out, outOK := p.output().(terminal.FileWriter)
	if inOK && outOK {
		opts = append(opts, survey.WithStdio(in, out, os.Stderr))
	}

	var value string
	if err := survey.AskOne(&survey.Password{Message: prompt}, &value, opts...); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", ErrCanceled
		}
		return "", err
	}
	return strings.TrimSpace(value), nil
}

// textInputModel is a simple text input prompt model
type textInputModel struct {
	textInput textinput.Model
	prompt    string
	done      bool
	err       error
}

func (m textInputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textInputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.err = ErrCanceled
			m.done = true
			return m, tea.Quit
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m textInputModel) View() string {
	if m.done {
		return ""
	}
	styleObj := lipgloss.NewStyle().Margin(1, 0)
	return styleObj.Render(fmt.Sprintf("%s\n%s\n\n(Press Enter to submit, Ctrl+C to cancel)", m.prompt, m.textInput.View()))
}

func newTextInputModel(prompt, defaultValue string) textInputModel {
	ti := textinput.New()
	ti.Placeholder = ""
	ti.SetValue(defaultValue)
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 80

	return textInputModel{
		textInput: ti,
		prompt:    prompt,
	}
}

// confirmModel is a simple yes/no confirmation prompt model
type confirmModel struct {
	prompt string
	choice bool
	done   bool
	err    error
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.err = ErrCanceled
			m.done = true
			return m, tea.Quit
		case tea.KeyRunes:
			switch strings.ToLower(string(msg.Runes)) {
			case "y", "yes":
				m.choice = true
				m.done = true
				return m, tea.Quit
			case "n", "no":
				m.choice = false
				m.done = true
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	styleObj := lipgloss.NewStyle().Margin(1, 0)
	yesNo := "[y/N]"
	if m.choice {
		yesNo = "[Y/n]"
	}
	return styleObj.Render(fmt.Sprintf("%s %s\n\n(Press y/yes or n/no, Enter to confirm, Ctrl+C to cancel)", m.prompt, yesNo))
}

// PromptTextInput prompts the user for text input on stdin
func PromptTextInput(prompt, defaultValue string) (string, error) {
	return TerminalPrompter{}.Text(prompt, defaultValue)
}

// PromptConfirm prompts the user for yes/no confirmation on stdin
func PromptConfirm(prompt string, defaultValue bool) (bool, error) {
	return TerminalPrompter{}.Confirm(prompt, defaultValue)
}

// PromptPassword prompts for a secret without echoing it
func PromptPassword(prompt string) (string, error) {
	return TerminalPrompter{}.Password(prompt)
}
