package onboard

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/conn-castle/pc-onboard/internal/messages"
)

// Answer is a user's reply. OK is false when no reply could be read
// (end of input, interrupt, or a read failure).
type Answer struct {
	Text string
	OK   bool
}

// Prompter asks the user a question.
type Prompter interface {
	Ask(question string) Answer
}

// DecideRunAll decides whether to run every hook on every file.
// An explicit choice wins. Otherwise the user is asked only when prompting is enabled
// and the session is interactive, and only "y" or "yes" count as consent.
func DecideRunAll(explicit *bool, prompt bool, interactive bool, p Prompter) bool {
	if explicit != nil {
		return *explicit
	}
	if !prompt || !interactive || p == nil {
		return false
	}
	answer := p.Ask(messages.PromptRunAll)
	if !answer.OK {
		return false
	}
	return IsAffirmative(answer.Text)
}

// IsAffirmative reports whether text is a yes, ignoring case and surrounding space.
func IsAffirmative(text string) bool {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// LinePrompter asks on Out and reads one line from In.
type LinePrompter struct {
	In  io.Reader
	Out io.Writer
}

// Ask prints "question [y/N] " and returns the line typed, without its newline.
func (p LinePrompter) Ask(question string) Answer {
	if _, err := fmt.Fprintf(p.Out, messages.PromptNoDefaultFmt, question); err != nil {
		return Answer{}
	}
	line, err := bufio.NewReader(p.In).ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		// Leave the cursor on a fresh line after ^D.
		_, _ = fmt.Fprintln(p.Out)
		return Answer{}
	}
	return Answer{Text: strings.TrimRight(line, "\r\n"), OK: true}
}

var runFormFunc = func(form *huh.Form) error { return form.Run() }

// HuhPrompter asks with a terminal confirm widget. Esc and Ctrl+C decline.
type HuhPrompter struct {
	// Out receives the rendered form; nil means stderr.
	Out io.Writer
}

// confirmKeyMap lets Esc abort the confirm alongside Ctrl+C.
func confirmKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "skip"))
	return km
}

// Ask renders a yes/no confirm defaulting to no.
func (p HuhPrompter) Ask(question string) Answer {
	out := p.Out
	if out == nil {
		out = os.Stderr
	}
	value := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(question).
				Affirmative(messages.PromptAffirmative).
				Negative(messages.PromptNegative).
				Value(&value),
		),
	)
	form.WithKeyMap(confirmKeyMap())
	form.WithProgramOptions(tea.WithOutput(out))

	if err := runFormFunc(form); err != nil {
		return Answer{}
	}
	if value {
		return Answer{Text: "yes", OK: true}
	}
	return Answer{Text: "no", OK: true}
}
