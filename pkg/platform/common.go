package platform

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/ehsaniara/upbgen/pkg/logger"
)

// BasePlatform provides the os and os/exec backed operations
type BasePlatform struct {
	logger *logger.Logger
}

// NewBasePlatform creates a new base platform
func NewBasePlatform() *BasePlatform {
	return &BasePlatform{
		logger: logger.WithField("component", "platform"),
	}
}

func (bp *BasePlatform) WriteFile(name string, data []byte, perm os.FileMode) error {
	return os.WriteFile(name, data, perm)
}

func (bp *BasePlatform) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (bp *BasePlatform) MkdirAll(dir string, perm os.FileMode) error {
	return os.MkdirAll(dir, perm)
}

func (bp *BasePlatform) Remove(name string) error {
	return os.Remove(name)
}

func (bp *BasePlatform) IsNotExist(err error) bool {
	return os.IsNotExist(err)
}

func (bp *BasePlatform) Executable() (string, error) {
	return os.Executable()
}

func (bp *BasePlatform) Environ() []string {
	return os.Environ()
}

func (bp *BasePlatform) Getenv(key string) string {
	return os.Getenv(key)
}

func (bp *BasePlatform) CommandContext(ctx context.Context, name string, args ...string) Command {
	if ctx == nil {
		ctx = context.Background()
	}
	bp.logger.Debug("creating command", "name", name, "args", args)
	return &ExecCommand{cmd: exec.CommandContext(ctx, name, args...)}
}

// DirExists checks if a directory exists
func (bp *BasePlatform) DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// FileExists checks if a file exists
func (bp *BasePlatform) FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// ExecCommand wraps exec.Cmd to implement Command interface
type ExecCommand struct {
	cmd *exec.Cmd
}

func (e *ExecCommand) SetStdout(w io.Writer) {
	e.cmd.Stdout = w
}

func (e *ExecCommand) SetStderr(w io.Writer) {
	e.cmd.Stderr = w
}

func (e *ExecCommand) SetEnv(env []string) {
	e.cmd.Env = env
}

func (e *ExecCommand) Run() error {
	return e.cmd.Run()
}

func (e *ExecCommand) String() string {
	return e.cmd.String()
}

// ExitCode reports the exit status carried by err when the process started
// and exited unsuccessfully. ok is false when the process never ran.
func ExitCode(err error) (code int, ok bool) {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), true
	}
	return 0, false
}
