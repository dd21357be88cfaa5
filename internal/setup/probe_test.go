package setup

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/conn-castle/create-release-it/internal/logging"
	"github.com/conn-castle/create-release-it/internal/project"
	"github.com/conn-castle/create-release-it/internal/remote"
)

func TestProbeDir(t *testing.T) {
	t.Run("both files and github remote", func(t *testing.T) {
		stubOrigin(t, "git@github.com:org/repo.git", true, nil)
		fsys := newFs(t, map[string]string{
			project.ManifestFile: `{"name":"pkg"}`,
			project.ConfigFile:   `{"git":{"requireCleanWorkingDir":false}}`,
		})

		probe := ProbeDir(fsys, testDir, remote.Hosts{}, nil)
		assert.Equal(t, testDir, probe.Dir)
		assert.True(t, probe.HasManifest)
		assert.True(t, probe.HasConfig)
		assert.Equal(t, []string{"name"}, probe.Manifest.Keys())
		assert.Equal(t, []string{"git"}, probe.Config.Keys())
		assert.Equal(t, "git@github.com:org/repo.git", probe.RemoteURL)
		assert.Equal(t, remote.Host{GitHub: true}, probe.Host)
	})

	t.Run("nothing present", func(t *testing.T) {
		stubOrigin(t, "", false, nil)
		probe := ProbeDir(newFs(t, nil), testDir, remote.Hosts{}, nil)

		assert.False(t, probe.HasManifest)
		assert.False(t, probe.HasConfig)
		assert.NotNil(t, probe.Manifest)
		assert.NotNil(t, probe.Config)
		assert.Equal(t, 0, probe.Config.Len())
		assert.Empty(t, probe.RemoteURL)
		assert.Equal(t, remote.Host{}, probe.Host)
	})

	t.Run("malformed files count as absent", func(t *testing.T) {
		stubOrigin(t, "", false, nil)
		var logs bytes.Buffer
		log := logging.New(logging.Options{Output: &logs, Verbose: true})
		fsys := newFs(t, map[string]string{
			project.ManifestFile: `{"name":`,
			project.ConfigFile:   `[1,2]`,
		})

		probe := ProbeDir(fsys, testDir, remote.Hosts{}, log)
		assert.False(t, probe.HasManifest)
		assert.False(t, probe.HasConfig)
		assert.Equal(t, 0, probe.Manifest.Len())
		assert.Contains(t, logs.String(), "ignoring unusable manifest")
		assert.Contains(t, logs.String(), "ignoring unusable release-it config")
	})

	t.Run("remote lookup error is tolerated", func(t *testing.T) {
		stubOrigin(t, "", false, errors.New("corrupt repository"))
		probe := ProbeDir(newFs(t, nil), testDir, remote.Hosts{}, nil)
		assert.Equal(t, remote.Host{}, probe.Host)
	})

	t.Run("self-hosted gitlab", func(t *testing.T) {
		stubOrigin(t, "https://git.corp.example/org/repo.git", true, nil)
		probe := ProbeDir(newFs(t, nil), testDir, remote.Hosts{GitLab: []string{"git.corp.example"}}, nil)
		assert.Equal(t, remote.Host{GitLab: true}, probe.Host)
	})
}
