// Package pkgmanager resolves which JavaScript package manager installs
// release-it and how it is invoked.
package pkgmanager

import "strings"

// Manager is one of the supported package managers. The set is closed: the
// only values are the package-level variables below and the zero Manager.
type Manager struct {
	name    string
	verb    string
	devFlag string
}

// Supported package managers.
var (
	NPM  = Manager{name: "npm", verb: "install", devFlag: "--save-dev"}
	PNPM = Manager{name: "pnpm", verb: "add", devFlag: "--save-dev"}
	Yarn = Manager{name: "yarn", verb: "add", devFlag: "--dev"}
	Bun  = Manager{name: "bun", verb: "add", devFlag: "--dev"}
	CNPM = Manager{name: "cnpm", verb: "install", devFlag: "--save-dev"}
)

// Default is used when nothing identifies the project's package manager.
var Default = NPM

// All lists every supported package manager.
func All() []Manager {
	return []Manager{NPM, PNPM, Yarn, Bun, CNPM}
}

// Lookup returns the manager with the given executable name.
func Lookup(name string) (Manager, bool) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, m := range All() {
		if m.name == normalized {
			return m, true
		}
	}
	return Manager{}, false
}

// Name returns the executable name.
func (m Manager) Name() string {
	return m.name
}

// String implements fmt.Stringer.
func (m Manager) String() string {
	return m.name
}

// IsZero reports whether m is the zero Manager.
func (m Manager) IsZero() bool {
	return m == Manager{}
}

// InstallCommand returns the command that installs pkg as a dev dependency.
func (m Manager) InstallCommand(pkg string) Command {
	return Command{Name: m.name, Args: []string{m.verb, pkg, m.devFlag}}
}

// Command is an executable and its arguments.
type Command struct {
	Name string
	Args []string
}

// String renders the command line for display.
func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}
