// Package wizard asks the setup questions.
package wizard

import (
	"errors"

	"github.com/conn-castle/create-release-it/internal/messages"
)

var (
	// ErrCancelled reports that the user abandoned the questions.
	ErrCancelled = errors.New("wizard cancelled")
	errBack      = errors.New("wizard back requested")
)

const (
	errNoOptionsFmt   = messages.WizardNoOptionsFmt
	errUnknownKindFmt = messages.WizardUnknownKindFmt
)

// Ask poses questions in order and collects the answers. No questions means
// no interaction: ui is not touched and the answers are empty.
// Esc on a question returns to the previous one; Esc on the first question or
// Ctrl+C anywhere returns ErrCancelled.
func Ask(ui UI, questions []Question) (Answers, error) {
	answers := NewAnswers()
	if len(questions) == 0 {
		return answers, nil
	}
	for _, q := range questions {
		if err := q.validate(); err != nil {
			return Answers{}, err
		}
	}
	if ui == nil {
		return Answers{}, errors.New(messages.WizardUIRequired)
	}

	// Seed with defaults so going back re-presents the previous answer.
	current := Defaults(questions)
	step := 0
	for step < len(questions) {
		q := questions[step]
		err := askOne(ui, q, current)
		if err == nil {
			step++
			continue
		}
		if errors.Is(err, errBack) {
			if step == 0 {
				return Answers{}, ErrCancelled
			}
			step--
			continue
		}
		if errors.Is(err, ErrCancelled) {
			return Answers{}, ErrCancelled
		}
		return Answers{}, err
	}

	for _, q := range questions {
		switch q.Kind {
		case KindConfirm:
			answers.SetBool(q.Name, current.Bool(q.Name))
		case KindSelect:
			answers.SetString(q.Name, current.String(q.Name))
		}
	}
	return answers, nil
}

func askOne(ui UI, q Question, current Answers) error {
	switch q.Kind {
	case KindConfirm:
		value := current.Bool(q.Name)
		if err := ui.Confirm(q.Message, &value); err != nil {
			return err
		}
		current.SetBool(q.Name, value)
	case KindSelect:
		value := current.String(q.Name)
		if err := ui.Select(q.Message, q.Options, &value); err != nil {
			return err
		}
		current.SetString(q.Name, value)
	}
	return nil
}
