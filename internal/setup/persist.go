package setup

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/conn-castle/create-release-it/internal/messages"
	"github.com/conn-castle/create-release-it/internal/project"
)

// PersistOptions controls Persist.
type PersistOptions struct {
	// DryRun renders diffs to Out instead of writing.
	DryRun       bool
	Out          io.Writer
	DiffMaxLines int
}

// Persist writes the files plan marks as changed and returns their paths:
// .release-it.json when the config changed and stays standalone, and
// package.json when the manifest changed. Unchanged files are never touched.
func Persist(fsys afero.Fs, plan Plan, opts PersistOptions) ([]string, error) {
	out := opts.Out
	if out == nil {
		out = io.Discard
	}

	type target struct {
		name string
		doc  *project.Document
	}
	var targets []target
	if plan.WritesConfig() {
		targets = append(targets, target{name: project.ConfigFile, doc: plan.Config})
	}
	if plan.WritesManifest() {
		targets = append(targets, target{name: project.ManifestFile, doc: plan.Manifest})
	}

	var written []string
	for _, t := range targets {
		path := filepath.Join(plan.Dir, t.name)
		if opts.DryRun {
			if err := previewWrite(fsys, out, path, t.name, t.doc, opts.DiffMaxLines); err != nil {
				return written, err
			}
		} else if err := project.Write(fsys, path, t.doc); err != nil {
			return written, fmt.Errorf(messages.SetupPersistFailedFmt, t.name, err)
		}
		written = append(written, path)
	}
	return written, nil
}

func previewWrite(fsys afero.Fs, out io.Writer, path string, name string, doc *project.Document, maxLines int) error {
	after, err := project.Encode(doc)
	if err != nil {
		return fmt.Errorf(messages.SetupPersistFailedFmt, name, err)
	}
	before, err := afero.ReadFile(fsys, path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf(messages.SetupPersistFailedFmt, name, err)
	}
	_, _ = fmt.Fprintf(out, messages.SetupDryRunFileFmt, name)
	_, _ = io.WriteString(out, renderTruncatedUnifiedDiff(name, string(before), string(after), maxLines))
	return nil
}
