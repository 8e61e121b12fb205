package wizard

import (
	"errors"
	"fmt"

	survey "gopkg.in/AlecAivazis/survey.v1"
	"gopkg.in/AlecAivazis/survey.v1/terminal"
)

// ErrCanceled is returned by a `Prompter` when the user cancels a prompt
// (e.g., with ctrl-c).
var ErrCanceled = errors.New("prompt canceled")

// Prompter asks the user questions. It is an interface so the wizard can be
// driven by a script in tests.
type Prompter interface {
	// Input asks for free text. `validate` may be nil; when set, the user is
	// asked again until it returns nil.
	Input(
		message string,
		defaultValue string,
		validate func(string) error,
	) (string, error)

	// Select asks the user to pick one of `options`.
	Select(
		message string,
		options []string,
		defaultValue string,
	) (string, error)

	// MultiSelect asks the user to pick any number of `options`. The
	// selection is returned in the order of `options`.
	MultiSelect(message string, options []string) ([]string, error)
}

// SurveyPrompter prompts on the terminal.
type SurveyPrompter struct{}

func askOne(p survey.Prompt, response interface{}, v survey.Validator) error {
	if err := survey.AskOne(p, response, v); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return ErrCanceled
		}
		return err
	}
	return nil
}

func (SurveyPrompter) Input(
	message string,
	defaultValue string,
	validate func(string) error,
) (string, error) {
	var validator survey.Validator
	if validate != nil {
		validator = func(val interface{}) error {
			s, ok := val.(string)
			if !ok {
				return fmt.Errorf("wanted a string; found `%T`", val)
			}
			return validate(s)
		}
	}

	var response string
	if err := askOne(
		&survey.Input{Message: message, Default: defaultValue},
		&response,
		validator,
	); err != nil {
		return "", fmt.Errorf("prompting `%s`: %w", message, err)
	}
	return response, nil
}

func (SurveyPrompter) Select(
	message string,
	options []string,
	defaultValue string,
) (string, error) {
	var response string
	if err := askOne(
		&survey.Select{
			Message: message,
			Options: options,
			Default: defaultValue,
		},
		&response,
		nil,
	); err != nil {
		return "", fmt.Errorf("prompting `%s`: %w", message, err)
	}
	return response, nil
}

func (SurveyPrompter) MultiSelect(
	message string,
	options []string,
) ([]string, error) {
	var response []string
	if err := askOne(
		&survey.MultiSelect{Message: message, Options: options},
		&response,
		nil,
	); err != nil {
		return nil, fmt.Errorf("prompting `%s`: %w", message, err)
	}
	return inOptionOrder(response, options), nil
}

func inOptionOrder(selected, options []string) []string {
	out := make([]string, 0, len(selected))
	for _, option := range options {
		for _, s := range selected {
			if s == option {
				out = append(out, option)
				break
			}
		}
	}
	return out
}
