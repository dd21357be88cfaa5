// Package installer runs the package manager that installs release-it.
package installer

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/conn-castle/create-release-it/internal/messages"
	"github.com/conn-castle/create-release-it/internal/pkgmanager"
)

// Streams are the standard streams handed to the child process.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StdStreams returns the process's own standard streams.
func StdStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// Run executes command in dir with streams attached and waits for it to exit.
// A spawn failure or non-zero exit is returned wrapped; callers can reach the
// *exec.ExitError with errors.As.
func Run(ctx context.Context, dir string, command pkgmanager.Command, streams Streams) error {
	if command.Name == "" {
		return fmt.Errorf(messages.InstallerCommandRequired)
	}
	cmd := exec.CommandContext(ctx, command.Name, command.Args...)
	cmd.Dir = dir
	cmd.Stdin = streams.In
	cmd.Stdout = streams.Out
	cmd.Stderr = streams.Err

	if err := cmd.Run(); err != nil {
		return fmt.Errorf(messages.InstallerRunFailedFmt, command.String(), err)
	}
	return nil
}
