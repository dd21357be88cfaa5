package project

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/afero"

	"github.com/conn-castle/create-release-it/internal/messages"
)

const (
	// ManifestFile is the package descriptor file name.
	ManifestFile = "package.json"
	// ConfigFile is the standalone release-it config file name.
	ConfigFile = ".release-it.json"
	// EmbeddedConfigKey is the manifest key holding an embedded release-it config.
	EmbeddedConfigKey = "release-it"
	// ScriptsKey is the manifest key holding npm scripts.
	ScriptsKey = "scripts"
	// ReleaseScript is the script name added to the manifest.
	ReleaseScript = "release"
	// ReleaseCommand is the command the release script runs.
	ReleaseCommand = "release-it"
	// ReleasePackage is the npm package installed as a dev dependency.
	ReleasePackage = "release-it"

	defaultFileMode os.FileMode = 0o644
	indent                      = "  "
)

// EOL terminates every written document.
var EOL = platformEOL(runtime.GOOS)

func platformEOL(goos string) string {
	if goos == "windows" {
		return "\r\n"
	}
	return "\n"
}

// Load reads the JSON object stored at path.
// A missing file yields present=false and a nil error. An unreadable file or
// one that does not hold a JSON object yields present=false and the reason.
// doc is never nil: callers that tolerate absence can use it as-is.
func Load(fsys afero.Fs, path string) (doc *Document, present bool, err error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewDocument(), false, nil
		}
		return NewDocument(), false, fmt.Errorf(messages.ProjectReadFailedFmt, path, err)
	}
	parsed, err := Parse(data, path)
	if err != nil {
		return NewDocument(), false, err
	}
	return parsed, true, nil
}

// Parse decodes data as a JSON object; source names the data in errors.
func Parse(data []byte, source string) (*Document, error) {
	trimmed := bytes.TrimSpace(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf")))
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf(messages.ProjectNotObjectFmt, source)
	}
	doc := NewDocument()
	if err := json.Unmarshal(trimmed, doc); err != nil {
		return nil, fmt.Errorf(messages.ProjectParseFailedFmt, source, err)
	}
	return doc, nil
}

// Encode renders doc with two-space indentation followed by EOL.
func Encode(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	out := bytes.TrimRight(buf.Bytes(), "\n")
	return append(out, EOL...), nil
}

// Write encodes doc and replaces path atomically. An existing file keeps its
// permission bits; a new file is created with mode 0644.
func Write(fsys afero.Fs, path string, doc *Document) error {
	data, err := Encode(doc)
	if err != nil {
		return fmt.Errorf(messages.ProjectEncodeFailedFmt, path, err)
	}
	mode := defaultFileMode
	if info, err := fsys.Stat(path); err == nil {
		mode = info.Mode().Perm()
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf(messages.ProjectStatFailedFmt, path, err)
	}
	return writeFileAtomic(fsys, path, data, mode)
}

func writeFileAtomic(fsys afero.Fs, path string, data []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := afero.TempFile(fsys, dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf(messages.ProjectTempFileFmt, path, err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = fsys.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf(messages.ProjectWriteTempFileFmt, path, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf(messages.ProjectWriteTempFileFmt, path, err)
	}
	if err := fsys.Chmod(tmpName, mode); err != nil {
		cleanup()
		return fmt.Errorf(messages.ProjectChmodFailedFmt, path, err)
	}
	if err := fsys.Rename(tmpName, path); err != nil {
		cleanup()
		return fmt.Errorf(messages.ProjectRenameFailedFmt, path, err)
	}
	return nil
}
