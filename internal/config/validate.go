package config

import (
	"fmt"
	"strings"

	"github.com/conn-castle/create-release-it/internal/logging"
	"github.com/conn-castle/create-release-it/internal/messages"
	"github.com/conn-castle/create-release-it/internal/pkgmanager"
)

// Validate checks field values; source names the config in errors.
// An unknown forced package manager is not an error: resolution warns and
// ignores it.
func (c *Config) Validate(source string) error {
	if level := strings.TrimSpace(c.Log.Level); level != "" {
		if _, ok := logging.ParseLevel(level); !ok {
			return invalid(source, fmt.Errorf(messages.ConfigInvalidLogLevelFmt, c.Log.Level))
		}
	}
	for alias, target := range c.PackageManager.Aliases {
		if strings.TrimSpace(alias) == "" {
			return invalid(source, fmt.Errorf(messages.ConfigEmptyAliasKey))
		}
		if _, ok := pkgmanager.Lookup(target); !ok {
			return invalid(source, fmt.Errorf(messages.ConfigInvalidAliasFmt, alias, target))
		}
	}
	if err := validateHosts("github", c.Hosts.GitHub); err != nil {
		return invalid(source, err)
	}
	if err := validateHosts("gitlab", c.Hosts.GitLab); err != nil {
		return invalid(source, err)
	}
	return nil
}

func validateHosts(field string, hosts []string) error {
	for _, host := range hosts {
		if strings.TrimSpace(host) == "" {
			return fmt.Errorf(messages.ConfigInvalidHostFmt, field)
		}
	}
	return nil
}

func invalid(source string, err error) error {
	return fmt.Errorf("%w: "+messages.ConfigInvalidFmt, ErrInvalidConfig, source, err)
}
