package pkgmanager

import "strings"

// Aliases maps a reported package manager name to a supported one.
// cnpm reports itself as "npminstall" in npm_config_user_agent.
type Aliases map[string]string

// DefaultAliases returns the built-in alias table.
func DefaultAliases() Aliases {
	return Aliases{"npminstall": CNPM.name}
}

// With returns a copy of a extended by extra; extra wins on conflicts.
func (a Aliases) With(extra map[string]string) Aliases {
	out := make(Aliases, len(a)+len(extra))
	for k, v := range a {
		out[normalizeName(k)] = normalizeName(v)
	}
	for k, v := range extra {
		out[normalizeName(k)] = normalizeName(v)
	}
	return out
}

// Canonical returns the aliased name for name, or name itself.
func (a Aliases) Canonical(name string) string {
	normalized := normalizeName(name)
	if target, ok := a[normalized]; ok {
		return target
	}
	return normalized
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
