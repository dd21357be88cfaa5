package messages

// Messages for project documents, remotes, package managers, and the installer.
const (
	ProjectReadFailedFmt    = "read %s: %w"
	ProjectNotObjectFmt     = "%s does not contain a JSON object"
	ProjectParseFailedFmt   = "parse %s: %w"
	ProjectEncodeFailedFmt  = "encode %s: %w"
	ProjectStatFailedFmt    = "stat %s: %w"
	ProjectTempFileFmt      = "create temp file for %s: %w"
	ProjectWriteTempFileFmt = "write temp file for %s: %w"
	ProjectChmodFailedFmt   = "chmod %s: %w"
	ProjectRenameFailedFmt  = "move %s into place: %w"

	RemoteOpenRepoFailedFmt = "open git repository at %s: %w"
	RemoteLookupFailedFmt   = "look up remote %q: %w"
	RemoteParseFailedFmt    = "parse remote url %q: %w"
	RemoteNoHostFmt         = "remote url %q has no host"

	PackageManagerFieldInvalidFmt  = "%s: packageManager must be a string of the form name@version"
	PackageManagerFieldUnknownFmt  = "%s: unsupported packageManager %q"
	PackageManagerStatFailedFmt    = "check %s: %w"
	PackageManagerReadFailedFmt    = "read %s: %w"
	PackageManagerForcedUnknownFmt = "ignoring forced package manager %q: not one of npm, pnpm, yarn, bun, cnpm"

	InstallerCommandRequired = "install command is required"
	InstallerRunFailedFmt    = "%s: %w"
)

// Config messages.
const (
	ConfigReadFailedFmt        = "read config %s: %w"
	ConfigInvalidFmt           = "%s: %w"
	ConfigInvalidLogLevelFmt   = "log.level %q must be one of debug, info, warn, error"
	ConfigInvalidAliasFmt      = "package_manager.aliases: %q maps to unknown package manager %q"
	ConfigEmptyAliasKey        = "package_manager.aliases: alias name must not be empty"
	ConfigInvalidHostFmt       = "hosts.%s: host entries must not be empty"
	ConfigResolveHomeFailedFmt = "resolve home dir: %w"
)
