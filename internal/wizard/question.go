package wizard

import "fmt"

// Kind is the type of prompt a Question renders.
type Kind int

const (
	// KindConfirm is a yes/no question answered with a bool.
	KindConfirm Kind = iota
	// KindSelect is a single-choice question answered with one of Options.
	KindSelect
)

// Question describes one prompt.
type Question struct {
	// Name keys the answer in Answers.
	Name    string
	Kind    Kind
	Message string
	// Default is the initial value of a confirm question.
	Default bool
	// Options are the choices of a select question.
	Options []string
	// Initial is the preselected option of a select question; empty means
	// the first option.
	Initial string
}

// initialOption returns the preselected option of a select question.
func (q Question) initialOption() string {
	for _, option := range q.Options {
		if option == q.Initial {
			return option
		}
	}
	if len(q.Options) == 0 {
		return ""
	}
	return q.Options[0]
}

func (q Question) validate() error {
	switch q.Kind {
	case KindConfirm:
		return nil
	case KindSelect:
		if len(q.Options) == 0 {
			return fmt.Errorf(errNoOptionsFmt, q.Name)
		}
		return nil
	default:
		return fmt.Errorf(errUnknownKindFmt, q.Name, q.Kind)
	}
}

// Answers holds the answers to asked questions, keyed by question name.
// Unasked questions read as false or empty.
type Answers struct {
	confirms map[string]bool
	selects  map[string]string
}

// NewAnswers returns an empty answer set.
func NewAnswers() Answers {
	return Answers{confirms: map[string]bool{}, selects: map[string]string{}}
}

// Bool returns the answer to a confirm question.
func (a Answers) Bool(name string) bool {
	return a.confirms[name]
}

// String returns the answer to a select question.
func (a Answers) String(name string) string {
	return a.selects[name]
}

// Len returns the number of answered questions.
func (a Answers) Len() int {
	return len(a.confirms) + len(a.selects)
}

// SetBool records a confirm answer.
func (a Answers) SetBool(name string, value bool) {
	a.confirms[name] = value
}

// SetString records a select answer.
func (a Answers) SetString(name string, value string) {
	a.selects[name] = value
}

// Defaults answers every question with its default, without prompting.
func Defaults(questions []Question) Answers {
	answers := NewAnswers()
	for _, q := range questions {
		switch q.Kind {
		case KindConfirm:
			answers.SetBool(q.Name, q.Default)
		case KindSelect:
			answers.SetString(q.Name, q.initialOption())
		}
	}
	return answers
}
