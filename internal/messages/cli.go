// Package messages holds every user-facing string emitted by create-release-it.
package messages

// CLI messages for the root command and its flags.
const (
	// RootUse is the CLI command name.
	RootUse = "create-release-it"
	// RootShort is the short description for the root command.
	RootShort = "Set up release-it in this project"
	RootLong  = `Configure this project to use release-it.

Detects package.json, .release-it.json and the git origin remote, asks where
release publishing and configuration should go, updates the files that need
changes, then installs release-it as a development dependency with the
project's package manager.`

	RootFlagYes     = "Accept the default answer for every question without prompting"
	RootFlagDryRun  = "Show the file changes and install command without applying them"
	RootFlagVerbose = "Enable debug logging on stderr"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// CLIGetwdFailedFmt formats a failure to resolve the working directory.
	CLIGetwdFailedFmt = "resolve working directory: %w"
	// CLIErrorFmt prefixes fatal errors printed before exiting.
	CLIErrorFmt = "Error: %v\n"
)
