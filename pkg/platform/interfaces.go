package platform

import (
	"context"
	"io"
	"os"
)

//go:generate go tool counterfeiter -generate

// Platform is the seam between the build helper and the host: file checks,
// environment lookups and child processes all go through it.
//
//counterfeiter:generate . Platform
type Platform interface {
	OSOperations
	CommandFactory

	// HostInfo reports the OS and architecture the helper runs on.
	HostInfo() Info
}

// OSOperations defines file system and OS-level operations
type OSOperations interface {
	// File operations
	WriteFile(name string, data []byte, perm os.FileMode) error
	ReadFile(path string) ([]byte, error)
	MkdirAll(dir string, perm os.FileMode) error
	Remove(name string) error

	IsNotExist(err error) bool

	// Process info
	Executable() (string, error)

	// Environment
	Environ() []string
	Getenv(key string) string

	DirExists(path string) bool
	FileExists(path string) bool
}

// CommandFactory creates commands bound to a context
type CommandFactory interface {
	CommandContext(ctx context.Context, name string, args ...string) Command
}

// Command is a child process that has not been started yet.
//
//counterfeiter:generate . Command
type Command interface {
	SetStdout(w io.Writer)
	SetStderr(w io.Writer)
	SetEnv(env []string)
	// Run starts the process and blocks until it exits.
	Run() error
	String() string
}

// Info provides information about the current platform
type Info struct {
	OS           string
	Architecture string
}

func (i Info) String() string {
	return i.OS + "/" + i.Architecture
}
