package setup

import (
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/conn-castle/create-release-it/internal/logging"
	"github.com/conn-castle/create-release-it/internal/project"
	"github.com/conn-castle/create-release-it/internal/remote"
)

// Probe is what the prober found in the project directory. Later stages read
// it and never modify it.
type Probe struct {
	Dir         string
	Manifest    *project.Document
	HasManifest bool
	Config      *project.Document
	HasConfig   bool
	RemoteURL   string
	Host        remote.Host
}

var originURLFunc = remote.OriginURL

// ProbeDir loads package.json and .release-it.json from dir and classifies
// the origin remote. Nothing here is fatal: unreadable or malformed files
// count as absent and a missing remote classifies as neither host.
func ProbeDir(fsys afero.Fs, dir string, hosts remote.Hosts, log *logging.Logger) Probe {
	if log == nil {
		log = logging.Nop()
	}
	probe := Probe{Dir: dir}

	manifestPath := filepath.Join(dir, project.ManifestFile)
	manifest, present, err := project.Load(fsys, manifestPath)
	if err != nil {
		log.Debug().Err(err).Str("path", manifestPath).Msg("ignoring unusable manifest")
	}
	probe.Manifest, probe.HasManifest = manifest, present

	configPath := filepath.Join(dir, project.ConfigFile)
	config, present, err := project.Load(fsys, configPath)
	if err != nil {
		log.Debug().Err(err).Str("path", configPath).Msg("ignoring unusable release-it config")
	}
	probe.Config, probe.HasConfig = config, present

	url, found, err := originURLFunc(dir)
	switch {
	case err != nil:
		log.Debug().Err(err).Msg("origin remote lookup failed")
	case !found:
		log.Debug().Msg("no origin remote")
	default:
		probe.RemoteURL = url
		probe.Host = remote.Classify(url, hosts)
		log.Debug().
			Str("url", url).
			Bool("github", probe.Host.GitHub).
			Bool("gitlab", probe.Host.GitLab).
			Msg("classified origin remote")
	}
	return probe
}
