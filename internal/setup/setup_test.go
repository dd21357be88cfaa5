package setup

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/create-release-it/internal/config"
	"github.com/conn-castle/create-release-it/internal/pkgmanager"
	"github.com/conn-castle/create-release-it/internal/project"
	"github.com/conn-castle/create-release-it/internal/wizard"
)

// fakeUI answers confirms and selects from fixed values and records titles.
type fakeUI struct {
	confirm   bool
	selection string
	err       error
	asked     []string
}

func (f *fakeUI) Select(title string, _ []string, current *string) error {
	f.asked = append(f.asked, title)
	if f.err != nil {
		return f.err
	}
	*current = f.selection
	return nil
}

func (f *fakeUI) Confirm(title string, value *bool) error {
	f.asked = append(f.asked, title)
	if f.err != nil {
		return f.err
	}
	*value = f.confirm
	return nil
}

type installCall struct {
	dir     string
	command pkgmanager.Command
}

func recordInstall(calls *[]installCall, err error) InstallFunc {
	return func(_ context.Context, dir string, command pkgmanager.Command) error {
		*calls = append(*calls, installCall{dir: dir, command: command})
		return err
	}
}

func baseOptions(fsys afero.Fs, out *bytes.Buffer, calls *[]installCall) Options {
	return Options{
		Dir:     testDir,
		Fs:      fsys,
		Out:     out,
		Err:     out,
		Install: recordInstall(calls, nil),
	}
}

func TestRunFreshProjectWithoutQuestions(t *testing.T) {
	stubOrigin(t, "https://bitbucket.org/org/repo.git", true, nil)
	fsys := newFs(t, nil)
	ui := &fakeUI{}
	var out bytes.Buffer
	var calls []installCall
	opts := baseOptions(fsys, &out, &calls)
	opts.UI = ui
	opts.Interactive = true

	result, err := Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Empty(t, ui.asked)
	assert.Empty(t, result.Written)
	_, hasConfig := readDoc(t, fsys, project.ConfigFile)
	_, hasManifest := readDoc(t, fsys, project.ManifestFile)
	assert.False(t, hasConfig)
	assert.False(t, hasManifest)

	require.Len(t, calls, 1)
	assert.Equal(t, testDir, calls[0].dir)
	assert.Equal(t, pkgmanager.Command{Name: "npm", Args: []string{"install", "release-it", "--save-dev"}}, calls[0].command)
	assert.Equal(t, pkgmanager.SourceDefault, result.Resolution.Source)
	assert.Contains(t, out.String(), "No file changes needed.")
	assert.Contains(t, out.String(), "Installing release-it with npm (default)")
	assert.Contains(t, out.String(), "release-it is ready.")
}

func TestRunGitHubStandalone(t *testing.T) {
	stubOrigin(t, "git@github.com:org/repo.git", true, nil)
	fsys := newFs(t, map[string]string{project.ManifestFile: `{"name":"pkg","scripts":{"test":"jest"}}`})
	ui := &fakeUI{confirm: true, selection: DestinationStandalone}
	var out bytes.Buffer
	var calls []installCall
	opts := baseOptions(fsys, &out, &calls)
	opts.UI = ui
	opts.Interactive = true

	result, err := Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Len(t, ui.asked, 2)
	assert.Len(t, result.Written, 2)

	config, hasConfig := readDoc(t, fsys, project.ConfigFile)
	require.True(t, hasConfig)
	assert.Equal(t, map[string]any{"github": map[string]any{"release": true}}, config.Plain())

	manifest, _ := readDoc(t, fsys, project.ManifestFile)
	assert.Equal(t, []string{"name", "scripts"}, manifest.Keys())
	assert.False(t, manifest.Has(project.EmbeddedConfigKey))
	assert.Equal(t, map[string]any{"test": "jest", "release": "release-it"}, manifest.Plain()["scripts"])

	assert.Contains(t, out.String(), "Updated .release-it.json")
	assert.Contains(t, out.String(), "Updated package.json")
	assert.Contains(t, out.String(), "Run `npm run release`")
	require.Len(t, calls, 1)
}

func TestRunGitLabEmbedded(t *testing.T) {
	stubOrigin(t, "https://gitlab.com/org/repo.git", true, nil)
	fsys := newFs(t, map[string]string{project.ManifestFile: `{"name":"pkg"}`})
	ui := &fakeUI{confirm: true, selection: DestinationManifest}
	var out bytes.Buffer
	var calls []installCall
	opts := baseOptions(fsys, &out, &calls)
	opts.UI = ui
	opts.Interactive = true

	_, err := Run(context.Background(), opts)
	require.NoError(t, err)

	_, hasConfig := readDoc(t, fsys, project.ConfigFile)
	assert.False(t, hasConfig)
	manifest, _ := readDoc(t, fsys, project.ManifestFile)
	assert.Equal(t, map[string]any{"gitlab": map[string]any{"release": true}}, manifest.Plain()[project.EmbeddedConfigKey])
}

func TestRunIsIdempotentForManifest(t *testing.T) {
	stubOrigin(t, "", false, nil)
	fsys := newFs(t, map[string]string{project.ManifestFile: `{"name":"pkg"}`})
	var out bytes.Buffer
	var calls []installCall
	opts := baseOptions(fsys, &out, &calls)
	opts.AssumeYes = true

	first, err := Run(context.Background(), opts)
	require.NoError(t, err)
	assert.True(t, first.Plan.ManifestChanged)

	second, err := Run(context.Background(), opts)
	require.NoError(t, err)
	assert.False(t, second.Plan.ManifestChanged)
	assert.Empty(t, second.Written)
}

func TestRunCancelled(t *testing.T) {
	stubOrigin(t, "git@github.com:org/repo.git", true, nil)
	fsys := newFs(t, map[string]string{project.ManifestFile: `{"name":"pkg"}`})
	var out bytes.Buffer
	var calls []installCall
	opts := baseOptions(fsys, &out, &calls)
	opts.UI = &fakeUI{err: wizard.ErrCancelled}
	opts.Interactive = true

	result, err := Run(context.Background(), opts)
	require.NoError(t, err)
	assert.True(t, result.Cancelled)
	assert.Empty(t, calls)
	assert.Contains(t, out.String(), "Setup cancelled; no files were changed.")

	manifest, _ := readDoc(t, fsys, project.ManifestFile)
	assert.Equal(t, []string{"name"}, manifest.Keys())
}

func TestRunPromptError(t *testing.T) {
	stubOrigin(t, "git@github.com:org/repo.git", true, nil)
	var out bytes.Buffer
	var calls []installCall
	opts := baseOptions(newFs(t, nil), &out, &calls)
	opts.UI = &fakeUI{err: errors.New("terminal lost")}
	opts.Interactive = true

	_, err := Run(context.Background(), opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "terminal lost")
	assert.Empty(t, calls)
}

func TestRunNonInteractiveUsesDefaults(t *testing.T) {
	stubOrigin(t, "git@github.com:org/repo.git", true, nil)
	fsys := newFs(t, map[string]string{project.ManifestFile: `{"name":"pkg"}`})
	var out bytes.Buffer
	var calls []installCall
	opts := baseOptions(fsys, &out, &calls)

	result, err := Run(context.Background(), opts)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "no interactive terminal")
	assert.Equal(t, DestinationStandalone, result.Plan.Destination)

	config, hasConfig := readDoc(t, fsys, project.ConfigFile)
	require.True(t, hasConfig)
	assert.Equal(t, map[string]any{"github": map[string]any{"release": true}}, config.Plain())
}

func TestRunInteractiveRequiresUI(t *testing.T) {
	stubOrigin(t, "git@github.com:org/repo.git", true, nil)
	var out bytes.Buffer
	var calls []installCall
	opts := baseOptions(newFs(t, nil), &out, &calls)
	opts.Interactive = true

	_, err := Run(context.Background(), opts)
	assert.Error(t, err)
}

func TestRunDryRun(t *testing.T) {
	stubOrigin(t, "git@github.com:org/repo.git", true, nil)
	fsys := newFs(t, map[string]string{project.ManifestFile: `{"name":"pkg"}`})
	var out bytes.Buffer
	opts := Options{Dir: testDir, Fs: fsys, Out: &out, AssumeYes: true, DryRun: true}

	result, err := Run(context.Background(), opts)
	require.NoError(t, err)
	assert.Len(t, result.Written, 2)

	_, hasConfig := readDoc(t, fsys, project.ConfigFile)
	assert.False(t, hasConfig)
	manifest, _ := readDoc(t, fsys, project.ManifestFile)
	assert.Equal(t, []string{"name"}, manifest.Keys())
	assert.Contains(t, out.String(), "Would run: npm install release-it --save-dev")
	assert.NotContains(t, out.String(), "Updated ")
}

func TestRunInstallFailure(t *testing.T) {
	stubOrigin(t, "", false, nil)
	fsys := newFs(t, nil)
	var out bytes.Buffer
	var calls []installCall
	opts := baseOptions(fsys, &out, &calls)
	opts.Install = recordInstall(&calls, errors.New("exit status 1"))

	_, err := Run(context.Background(), opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "install release-it: exit status 1")
	assert.NotContains(t, out.String(), "release-it is ready")
}

func TestRunWriteFailureSkipsInstall(t *testing.T) {
	stubOrigin(t, "", false, nil)
	base := newFs(t, map[string]string{project.ManifestFile: `{"name":"pkg"}`})
	var out bytes.Buffer
	var calls []installCall
	opts := baseOptions(afero.NewReadOnlyFs(base), &out, &calls)
	opts.AssumeYes = true

	_, err := Run(context.Background(), opts)
	require.Error(t, err)
	assert.Empty(t, calls)
}

func TestRunPackageManagerResolution(t *testing.T) {
	tests := []struct {
		name      string
		files     map[string]string
		cfg       *config.Config
		userAgent string
		want      pkgmanager.Command
		source    pkgmanager.Source
	}{
		{
			name:   "lockfile",
			files:  map[string]string{"pnpm-lock.yaml": ""},
			want:   pkgmanager.Command{Name: "pnpm", Args: []string{"add", "release-it", "--save-dev"}},
			source: pkgmanager.SourceLockfile,
		},
		{
			name:      "user agent",
			userAgent: "yarn/1.22.19 npm/? node/v20.11.0 darwin arm64",
			want:      pkgmanager.Command{Name: "yarn", Args: []string{"add", "release-it", "--dev"}},
			source:    pkgmanager.SourceUserAgent,
		},
		{
			name:      "npminstall alias",
			userAgent: "npminstall/7.12.0 npm/? node/v20.11.0 linux x64",
			want:      pkgmanager.Command{Name: "cnpm", Args: []string{"install", "release-it", "--save-dev"}},
			source:    pkgmanager.SourceUserAgent,
		},
		{
			name:      "forced beats lockfile",
			files:     map[string]string{"yarn.lock": ""},
			cfg:       &config.Config{PackageManager: config.PackageManagerConfig{Force: "bun"}},
			userAgent: "pnpm/9.0.0 npm/? node/v20.11.0 linux x64",
			want:      pkgmanager.Command{Name: "bun", Args: []string{"add", "release-it", "--dev"}},
			source:    pkgmanager.SourceForced,
		},
		{
			name:      "configured alias",
			cfg:       &config.Config{PackageManager: config.PackageManagerConfig{Aliases: map[string]string{"corp-npm": "npm"}}},
			userAgent: "corp-npm/1.0.0 node/v20.11.0 linux x64",
			want:      pkgmanager.Command{Name: "npm", Args: []string{"install", "release-it", "--save-dev"}},
			source:    pkgmanager.SourceUserAgent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubOrigin(t, "", false, nil)
			var out bytes.Buffer
			var calls []installCall
			opts := baseOptions(newFs(t, tt.files), &out, &calls)
			opts.Config = tt.cfg
			opts.UserAgent = tt.userAgent

			result, err := Run(context.Background(), opts)
			require.NoError(t, err)
			assert.Equal(t, tt.source, result.Resolution.Source)
			require.Len(t, calls, 1)
			assert.Equal(t, tt.want, calls[0].command)
		})
	}
}

func TestRunValidatesOptions(t *testing.T) {
	fsys := afero.NewMemMapFs()
	noop := func(context.Context, string, pkgmanager.Command) error { return nil }

	_, err := Run(context.Background(), Options{Dir: testDir, Install: noop})
	assert.Error(t, err)
	_, err = Run(context.Background(), Options{Fs: fsys, Install: noop})
	assert.Error(t, err)
	_, err = Run(context.Background(), Options{Fs: fsys, Dir: testDir})
	assert.Error(t, err)
}
