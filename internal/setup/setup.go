// Package setup configures a JavaScript project for release-it: it probes
// the project, asks the applicable questions, reconciles the answers into
// package.json and .release-it.json, saves them, and installs release-it.
package setup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/afero"

	"github.com/conn-castle/create-release-it/internal/config"
	"github.com/conn-castle/create-release-it/internal/logging"
	"github.com/conn-castle/create-release-it/internal/messages"
	"github.com/conn-castle/create-release-it/internal/pkgmanager"
	"github.com/conn-castle/create-release-it/internal/project"
	"github.com/conn-castle/create-release-it/internal/remote"
	"github.com/conn-castle/create-release-it/internal/wizard"
)

// InstallFunc runs the install command in dir.
type InstallFunc func(ctx context.Context, dir string, command pkgmanager.Command) error

// Options configures Run.
type Options struct {
	Dir    string
	Fs     afero.Fs
	Config *config.Config
	UI     wizard.UI
	// Interactive reports whether prompts can be shown. When false the
	// questions take their defaults.
	Interactive bool
	// AssumeYes takes every default without prompting.
	AssumeYes bool
	// DryRun prints diffs and the install command without acting on them.
	DryRun    bool
	UserAgent string
	Out       io.Writer
	Err       io.Writer
	Logger    *logging.Logger
	Install   InstallFunc
}

// Result reports what Run did.
type Result struct {
	Cancelled  bool
	Plan       Plan
	Written    []string
	Resolution pkgmanager.Resolution
	Command    pkgmanager.Command
}

// Run performs the whole setup. A cancelled prompt returns Cancelled with a
// nil error and leaves every file alone.
func Run(ctx context.Context, opts Options) (Result, error) {
	if opts.Fs == nil {
		return Result{}, errors.New(messages.SetupFsRequired)
	}
	if opts.Dir == "" {
		return Result{}, errors.New(messages.SetupDirRequired)
	}
	if opts.Install == nil && !opts.DryRun {
		return Result{}, errors.New(messages.SetupInstallerMissing)
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	out := writerOrDiscard(opts.Out)
	errOut := writerOrDiscard(opts.Err)
	log := opts.Logger
	if log == nil {
		log = logging.Nop()
	}

	hosts := remote.Hosts{GitHub: cfg.Hosts.GitHub, GitLab: cfg.Hosts.GitLab}
	probe := ProbeDir(opts.Fs, opts.Dir, hosts, log.WithComponent("probe"))

	answers, cancelled, err := ask(opts, BuildQuestions(probe), errOut)
	if err != nil {
		return Result{}, err
	}
	if cancelled {
		_, _ = fmt.Fprintln(out, color.YellowString(messages.SetupCancelled))
		return Result{Cancelled: true}, nil
	}

	plan := Reconcile(probe, answers)
	log.Debug().
		Bool("manifest_changed", plan.ManifestChanged).
		Bool("config_changed", plan.ConfigChanged).
		Str("destination", plan.Destination).
		Msg("reconciled answers")

	written, err := Persist(opts.Fs, plan, PersistOptions{DryRun: opts.DryRun, Out: out})
	result := Result{Plan: plan, Written: written}
	if err != nil {
		return result, err
	}
	if !opts.DryRun {
		for _, path := range written {
			_, _ = fmt.Fprintf(out, messages.SetupUpdatedFileFmt, filepath.Base(path))
		}
	}
	if len(written) == 0 {
		_, _ = fmt.Fprintln(out, messages.SetupNoFileChanges)
	}

	result.Resolution = pkgmanager.Resolve(pkgmanager.Options{
		Fs:        opts.Fs,
		Dir:       opts.Dir,
		Force:     cfg.PackageManager.Force,
		UserAgent: opts.UserAgent,
		Aliases:   pkgmanager.DefaultAliases().With(cfg.PackageManager.Aliases),
		Logger:    log.WithComponent("pkgmanager"),
	})
	result.Command = result.Resolution.Manager.InstallCommand(project.ReleasePackage)
	log.Debug().
		Str("manager", result.Resolution.Manager.Name()).
		Str("source", string(result.Resolution.Source)).
		Str("evidence", result.Resolution.Evidence).
		Msg("resolved package manager")

	if opts.DryRun {
		_, _ = fmt.Fprintf(out, messages.SetupDryRunInstallFmt, result.Command)
		return result, nil
	}

	_, _ = fmt.Fprintf(out, messages.SetupInstallingFmt, result.Resolution.Manager, result.Resolution.Source)
	if err := opts.Install(ctx, opts.Dir, result.Command); err != nil {
		return result, fmt.Errorf(messages.SetupInstallFailedFmt, err)
	}

	if probe.HasManifest {
		_, _ = fmt.Fprint(out, color.GreenString(messages.SetupDoneWithScriptFmt, result.Resolution.Manager))
	} else {
		_, _ = fmt.Fprintln(out, color.GreenString(messages.SetupDone))
	}
	return result, nil
}

// ask collects answers, falling back to defaults when prompting is off.
func ask(opts Options, questions []wizard.Question, errOut io.Writer) (Answers, bool, error) {
	if len(questions) == 0 {
		return Answers{}, false, nil
	}
	if opts.AssumeYes {
		return answersFrom(wizard.Defaults(questions)), false, nil
	}
	if !opts.Interactive {
		_, _ = fmt.Fprint(errOut, color.YellowString(messages.SetupNonInteractiveWarn))
		return answersFrom(wizard.Defaults(questions)), false, nil
	}
	if opts.UI == nil {
		return Answers{}, false, errors.New(messages.SetupUIRequired)
	}
	raw, err := wizard.Ask(opts.UI, questions)
	if errors.Is(err, wizard.ErrCancelled) {
		return Answers{}, true, nil
	}
	if err != nil {
		return Answers{}, false, fmt.Errorf(messages.SetupPromptFailedFmt, err)
	}
	return answersFrom(raw), false, nil
}

func writerOrDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}
