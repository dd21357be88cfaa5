package setup

import (
	"github.com/conn-castle/create-release-it/internal/project"
)

const releaseFlag = "release"

// Plan is the reconciled state of both documents.
type Plan struct {
	Dir             string
	Manifest        *project.Document
	Config          *project.Document
	ManifestChanged bool
	ConfigChanged   bool
	// Destination is where Config is persisted: DestinationStandalone or
	// DestinationManifest.
	Destination string
}

// Reconcile applies answers to copies of the probed documents.
// A package.json destination without a manifest falls back to the
// standalone file.
func Reconcile(probe Probe, answers Answers) Plan {
	plan := Plan{
		Dir:         probe.Dir,
		Manifest:    cloneOrNew(probe.Manifest),
		Config:      cloneOrNew(probe.Config),
		Destination: DestinationStandalone,
	}

	if answers.GitHub {
		plan.Config.EnsureObject("github").Set(releaseFlag, true)
		plan.ConfigChanged = true
	}
	if answers.GitLab {
		plan.Config.EnsureObject("gitlab").Set(releaseFlag, true)
		plan.ConfigChanged = true
	}

	if !probe.HasManifest {
		return plan
	}
	scripts := plan.Manifest.EnsureObject(project.ScriptsKey)
	if !scripts.Has(project.ReleaseScript) {
		scripts.Set(project.ReleaseScript, project.ReleaseCommand)
		plan.ManifestChanged = true
	}
	if answers.Destination == DestinationManifest {
		// Embedding is itself a manifest change even when the config is not.
		plan.Manifest.Set(project.EmbeddedConfigKey, plan.Config)
		plan.ManifestChanged = true
		plan.Destination = DestinationManifest
	}
	return plan
}

// WritesConfig reports whether the standalone config file is written.
func (p Plan) WritesConfig() bool {
	return p.ConfigChanged && p.Destination == DestinationStandalone
}

// WritesManifest reports whether package.json is written.
func (p Plan) WritesManifest() bool {
	return p.ManifestChanged
}

func cloneOrNew(doc *project.Document) *project.Document {
	if doc == nil {
		return project.NewDocument()
	}
	return doc.Clone()
}
