package setup

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/create-release-it/internal/project"
)

const testDir = "/work/app"

func stubOrigin(t *testing.T, url string, found bool, err error) {
	t.Helper()
	orig := originURLFunc
	t.Cleanup(func() { originURLFunc = orig })
	originURLFunc = func(string) (string, bool, error) { return url, found, err }
}

func newFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll(testDir, 0o755))
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fsys, filepath.Join(testDir, name), []byte(content), 0o644))
	}
	return fsys
}

func readDoc(t *testing.T, fsys afero.Fs, name string) (*project.Document, bool) {
	t.Helper()
	doc, present, err := project.Load(fsys, filepath.Join(testDir, name))
	require.NoError(t, err)
	return doc, present
}

func mustParse(t *testing.T, content string) *project.Document {
	t.Helper()
	doc, err := project.Parse([]byte(content), "test")
	require.NoError(t, err)
	return doc
}
