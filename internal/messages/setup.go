package messages

// Setup flow messages.
const (
	// QuestionGitHubRelease asks whether to publish GitHub releases.
	QuestionGitHubRelease = "Publish a GitHub Release with every release?"
	// QuestionGitLabRelease asks whether to publish GitLab releases.
	QuestionGitLabRelease = "Publish a GitLab Release with every release?"
	// QuestionConfigDestination asks where the release-it config should live.
	QuestionConfigDestination = "Where to add the release-it config?"

	SetupCancelled          = "Setup cancelled; no files were changed."
	SetupNonInteractiveWarn = "Warning: no interactive terminal; using default answers.\n"
	SetupUpdatedFileFmt     = "Updated %s\n"
	SetupDryRunFileFmt      = "Would update %s:\n"
	SetupNoFileChanges      = "No file changes needed."
	SetupInstallingFmt      = "Installing release-it with %s (%s)\n"
	SetupDryRunInstallFmt   = "Would run: %s\n"
	SetupDoneWithScriptFmt  = "release-it is ready. Run `%s run release` to make a release.\n"
	SetupDone               = "release-it is ready."

	SetupFsRequired       = "setup filesystem is required"
	SetupDirRequired      = "setup directory is required"
	SetupInstallerMissing = "setup installer is required"
	SetupUIRequired       = "interactive setup requires a prompt UI"
	SetupPersistFailedFmt = "save %s: %w"
	SetupInstallFailedFmt = "install release-it: %w"
	SetupPromptFailedFmt  = "prompt: %w"

	// DiffTruncatedFmt is appended to a diff preview cut at the line limit.
	DiffTruncatedFmt = "... (truncated to %d lines)"
)

// Wizard messages.
const (
	WizardRequiresTerminal = "the setup questions require an interactive terminal; re-run with --yes to accept the defaults"
	WizardUIRequired       = "asking questions requires a prompt UI"
	WizardUnknownKindFmt   = "question %q has unknown kind %d"
	WizardNoOptionsFmt     = "question %q has no options"
)
