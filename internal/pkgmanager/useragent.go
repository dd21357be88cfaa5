package pkgmanager

import "strings"

// UserAgentEnv is set by npm-compatible package managers for the scripts and
// binaries they run, e.g. "pnpm/9.1.0 npm/? node/v20.11.0 linux x64".
const UserAgentEnv = "npm_config_user_agent"

// ParseUserAgent returns the package manager named by the first token of a
// user agent string, after alias resolution.
func ParseUserAgent(userAgent string, aliases Aliases) (Manager, bool) {
	fields := strings.Fields(userAgent)
	if len(fields) == 0 {
		return Manager{}, false
	}
	name, _, _ := strings.Cut(fields[0], "/")
	if name == "" {
		return Manager{}, false
	}
	return Lookup(aliases.Canonical(name))
}
