// Package config loads the optional user-level settings of create-release-it
// from a TOML file and the environment.
package config

// Config is the user-level configuration.
type Config struct {
	PackageManager PackageManagerConfig `toml:"package_manager"`
	Hosts          HostsConfig          `toml:"hosts"`
	Log            LogConfig            `toml:"log"`
}

// PackageManagerConfig controls package manager resolution.
type PackageManagerConfig struct {
	// Force skips detection and always uses the named package manager.
	Force string `toml:"force"`
	// Aliases maps reported package manager names to supported ones.
	Aliases map[string]string `toml:"aliases"`
}

// HostsConfig lists self-hosted domains that count as GitHub or GitLab.
type HostsConfig struct {
	GitHub []string `toml:"github"`
	GitLab []string `toml:"gitlab"`
}

// LogConfig controls the diagnostic logger.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{}
}
