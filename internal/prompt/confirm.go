package prompt

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
)

var runFormFunc = func(form *huh.Form) error { return form.Run() }

// Confirm asks yes/no questions with a huh confirm form. It is only used
// when stdin and stdout are interactive terminals.
type Confirm struct{}

// NewConfirm returns a huh-backed prompter.
func NewConfirm() *Confirm {
	return &Confirm{}
}

// Ask renders question as a confirm form, defaulting to "No".
// Aborting the form (esc or ctrl+c) counts as "no".
func (c *Confirm) Ask(question string) (string, error) {
	value := false
	title := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(question), "(y/N):"))
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(&value),
		),
	)
	if err := runFormFunc(form); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "n", nil
		}
		return "", err
	}
	if value {
		return "y", nil
	}
	return "n", nil
}
