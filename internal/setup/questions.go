package setup

import (
	"github.com/conn-castle/create-release-it/internal/messages"
	"github.com/conn-castle/create-release-it/internal/project"
	"github.com/conn-castle/create-release-it/internal/wizard"
)

// Question names.
const (
	QuestionGitHub = "github"
	QuestionGitLab = "gitlab"
	QuestionConfig = "config"
)

// Config destinations offered by the config question.
const (
	DestinationStandalone = project.ConfigFile
	DestinationManifest   = project.ManifestFile
)

// Answers are the user's choices.
type Answers struct {
	GitHub bool
	GitLab bool
	// Destination is empty when the config question was not asked.
	Destination string
}

// BuildQuestions lists the questions that apply to probe, in asking order.
func BuildQuestions(probe Probe) []wizard.Question {
	var questions []wizard.Question
	if probe.Host.GitHub {
		questions = append(questions, wizard.Question{
			Name:    QuestionGitHub,
			Kind:    wizard.KindConfirm,
			Message: messages.QuestionGitHubRelease,
			Default: true,
		})
	}
	if probe.Host.GitLab {
		questions = append(questions, wizard.Question{
			Name:    QuestionGitLab,
			Kind:    wizard.KindConfirm,
			Message: messages.QuestionGitLabRelease,
			Default: true,
		})
	}
	if probe.HasManifest {
		questions = append(questions, wizard.Question{
			Name:    QuestionConfig,
			Kind:    wizard.KindSelect,
			Message: messages.QuestionConfigDestination,
			Options: []string{DestinationStandalone, DestinationManifest},
			Initial: DestinationStandalone,
		})
	}
	return questions
}

func answersFrom(a wizard.Answers) Answers {
	return Answers{
		GitHub:      a.Bool(QuestionGitHub),
		GitLab:      a.Bool(QuestionGitLab),
		Destination: a.String(QuestionConfig),
	}
}
