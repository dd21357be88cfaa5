package pkgmanager

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/conn-castle/create-release-it/internal/logging"
	"github.com/conn-castle/create-release-it/internal/messages"
)

// Options configures Resolve.
type Options struct {
	Fs  afero.Fs
	Dir string
	// Force names a package manager that overrides every other signal.
	Force string
	// UserAgent is the value of npm_config_user_agent.
	UserAgent string
	Aliases   Aliases
	Logger    *logging.Logger
}

// Resolution is the chosen package manager and the signal that chose it.
type Resolution struct {
	Manager  Manager
	Source   Source
	Evidence string
}

// Resolve picks the package manager: a forced name, then project files
// (Detect), then the invoking package manager's user agent, then Default.
// It never fails; problems with a signal are logged as warnings and the next
// signal is tried.
func Resolve(opts Options) Resolution {
	log := opts.Logger
	if log == nil {
		log = logging.Nop()
	}
	aliases := opts.Aliases
	if aliases == nil {
		aliases = DefaultAliases()
	}

	if opts.Force != "" {
		if m, ok := Lookup(aliases.Canonical(opts.Force)); ok {
			return Resolution{Manager: m, Source: SourceForced, Evidence: opts.Force}
		}
		log.Warn().Msg(fmt.Sprintf(messages.PackageManagerForcedUnknownFmt, opts.Force))
	}

	if opts.Fs != nil && opts.Dir != "" {
		detection, found, err := Detect(opts.Fs, opts.Dir)
		switch {
		case err != nil:
			log.Warn().Err(err).Msg("package manager detection failed")
		case found:
			return Resolution{Manager: detection.Manager, Source: detection.Source, Evidence: detection.Path}
		}
	}

	if m, ok := ParseUserAgent(opts.UserAgent, aliases); ok {
		return Resolution{Manager: m, Source: SourceUserAgent, Evidence: opts.UserAgent}
	}
	if opts.UserAgent != "" {
		log.Debug().Str("user_agent", opts.UserAgent).Msg("user agent names no supported package manager")
	}

	return Resolution{Manager: Default, Source: SourceDefault}
}
