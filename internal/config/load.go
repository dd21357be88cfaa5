package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/create-release-it/internal/messages"
)

// Environment variables read by Load.
const (
	EnvConfigPath     = "CREATE_RELEASE_IT_CONFIG"
	EnvPackageManager = "CREATE_RELEASE_IT_PACKAGE_MANAGER"
	EnvLogLevel       = "CREATE_RELEASE_IT_LOG_LEVEL"
)

// ErrInvalidConfig wraps every parse and validation failure so callers can
// tell a bad config file from a filesystem error.
var ErrInvalidConfig = errors.New("invalid config")

var homeDirFunc = homedir.Dir

// DefaultPath returns ~/.config/create-release-it/config.toml.
func DefaultPath() (string, error) {
	home, err := homeDirFunc()
	if err != nil {
		return "", fmt.Errorf(messages.ConfigResolveHomeFailedFmt, err)
	}
	return filepath.Join(home, ".config", "create-release-it", "config.toml"), nil
}

// Load reads the config file named by CREATE_RELEASE_IT_CONFIG, or the
// default path, then applies environment overrides. A missing default file
// yields the defaults; a missing explicit file is an error.
func Load(sys System) (*Config, error) {
	path, explicit := sys.LookupEnv(EnvConfigPath)
	path = strings.TrimSpace(path)
	if !explicit || path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
		explicit = false
	} else {
		expanded, err := expandHome(path)
		if err != nil {
			return nil, err
		}
		path = expanded
	}

	cfg, err := LoadConfig(sys, path)
	if err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		cfg = Default()
	}
	applyEnv(sys, cfg)
	if err := cfg.Validate(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// expandHome replaces a leading "~" with the home directory.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path, nil
	}
	home, err := homeDirFunc()
	if err != nil {
		return "", fmt.Errorf(messages.ConfigResolveHomeFailedFmt, err)
	}
	return filepath.Join(home, path[1:]), nil
}

// LoadConfig reads and validates the config file at path.
func LoadConfig(sys System, path string) (*Config, error) {
	data, err := sys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigReadFailedFmt, path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses and validates config TOML data from a source identifier.
// Unknown keys are rejected.
func ParseConfig(data []byte, source string) (*Config, error) {
	var cfg Config
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%w: "+messages.ConfigInvalidFmt, ErrInvalidConfig, source, err)
	}
	if err := cfg.Validate(source); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnv(sys System, cfg *Config) {
	if value, ok := sys.LookupEnv(EnvPackageManager); ok && strings.TrimSpace(value) != "" {
		cfg.PackageManager.Force = strings.TrimSpace(value)
	}
	if value, ok := sys.LookupEnv(EnvLogLevel); ok && strings.TrimSpace(value) != "" {
		cfg.Log.Level = strings.TrimSpace(value)
	}
}
