package config

import "os"

// System abstracts the OS operations needed to load configuration.
type System interface {
	ReadFile(name string) ([]byte, error)
	LookupEnv(key string) (string, bool)
}

// RealSystem implements System using the OS.
type RealSystem struct{}

// ReadFile reads the named file and returns the contents.
func (RealSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// LookupEnv returns the value and presence of an environment variable.
func (RealSystem) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}
