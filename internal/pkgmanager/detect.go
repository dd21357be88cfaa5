package pkgmanager

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/conn-castle/create-release-it/internal/messages"
	"github.com/conn-castle/create-release-it/internal/project"
)

// Source names the signal that chose a package manager.
type Source string

// Resolution sources, in the order Resolve consults them.
const (
	SourceForced              Source = "forced"
	SourceLockfile            Source = "lockfile"
	SourcePackageManagerField Source = "packageManager field"
	SourceUserAgent           Source = "user agent"
	SourceDefault             Source = "default"
)

const packageManagerField = "packageManager"

// lockfiles are checked in order within each directory.
var lockfiles = []struct {
	name    string
	manager Manager
}{
	{name: "bun.lock", manager: Bun},
	{name: "bun.lockb", manager: Bun},
	{name: "pnpm-lock.yaml", manager: PNPM},
	{name: "pnpm-workspace.yaml", manager: PNPM},
	{name: "yarn.lock", manager: Yarn},
	{name: "package-lock.json", manager: NPM},
	{name: "npm-shrinkwrap.json", manager: NPM},
}

// Detection is a package manager identified from project files.
type Detection struct {
	Manager Manager
	Source  Source
	// Path is the file that identified Manager.
	Path string
}

// Detect looks for lockfiles and the package.json packageManager field in dir
// and then in each parent directory, nearest first. found is false when no
// directory up to the filesystem root identifies a package manager.
func Detect(fsys afero.Fs, dir string) (detection Detection, found bool, err error) {
	current := filepath.Clean(dir)
	for {
		d, ok, err := detectIn(fsys, current)
		if err != nil || ok {
			return d, ok, err
		}
		parent := filepath.Dir(current)
		if parent == current {
			return Detection{}, false, nil
		}
		current = parent
	}
}

func detectIn(fsys afero.Fs, dir string) (Detection, bool, error) {
	for _, lock := range lockfiles {
		path := filepath.Join(dir, lock.name)
		info, err := fsys.Stat(path)
		if err == nil {
			if info.IsDir() {
				continue
			}
			return Detection{Manager: lock.manager, Source: SourceLockfile, Path: path}, true, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return Detection{}, false, fmt.Errorf(messages.PackageManagerStatFailedFmt, path, err)
		}
	}

	manifestPath := filepath.Join(dir, project.ManifestFile)
	manifest, present, err := project.Load(fsys, manifestPath)
	if err != nil {
		return Detection{}, false, fmt.Errorf(messages.PackageManagerReadFailedFmt, manifestPath, err)
	}
	if !present {
		return Detection{}, false, nil
	}
	value, ok := manifest.Get(packageManagerField)
	if !ok {
		return Detection{}, false, nil
	}
	manager, err := parsePackageManagerField(value, manifestPath)
	if err != nil {
		return Detection{}, false, err
	}
	return Detection{Manager: manager, Source: SourcePackageManagerField, Path: manifestPath}, true, nil
}

// parsePackageManagerField parses a corepack "name@version" value.
func parsePackageManagerField(value any, source string) (Manager, error) {
	raw, ok := value.(string)
	if !ok {
		return Manager{}, fmt.Errorf(messages.PackageManagerFieldInvalidFmt, source)
	}
	name, version, ok := strings.Cut(strings.TrimSpace(raw), "@")
	if !ok || name == "" || version == "" {
		return Manager{}, fmt.Errorf(messages.PackageManagerFieldInvalidFmt, source)
	}
	manager, ok := Lookup(name)
	if !ok {
		return Manager{}, fmt.Errorf(messages.PackageManagerFieldUnknownFmt, source, name)
	}
	return manager, nil
}
