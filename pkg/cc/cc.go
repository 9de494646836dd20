// Package cc compiles C sources into a static archive with the host C
// toolchain. Every step runs one child process at a time and blocks until
// it exits.
package cc

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ehsaniara/upbgen/pkg/constants"
	"github.com/ehsaniara/upbgen/pkg/errors"
	"github.com/ehsaniara/upbgen/pkg/logger"
	"github.com/ehsaniara/upbgen/pkg/platform"
)

// Build accumulates the include dirs, flags and files of one static library.
type Build struct {
	platform platform.Platform
	logger   *logger.Logger

	includes []string
	flags    []string
	files    []string
	outDir   string
	compiler string
	archiver string
	stdout   io.Writer
	stderr   io.Writer
}

// Result describes what Compile produced.
type Result struct {
	Library string
	Objects []string
}

func New(p platform.Platform) *Build {
	return &Build{
		platform: p,
		logger:   logger.WithField("component", "cc"),
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
}

func (b *Build) Include(dir string) *Build {
	b.includes = append(b.includes, dir)
	return b
}

func (b *Build) Flag(flag string) *Build {
	b.flags = append(b.flags, flag)
	return b
}

func (b *Build) Flags(flags ...string) *Build {
	b.flags = append(b.flags, flags...)
	return b
}

func (b *Build) File(path string) *Build {
	b.files = append(b.files, path)
	return b
}

// OutDir sets where objects and the archive are written.
func (b *Build) OutDir(dir string) *Build {
	b.outDir = dir
	return b
}

// Compiler overrides $CC. The value may carry leading words such as a
// ccache wrapper.
func (b *Build) Compiler(cc string) *Build {
	b.compiler = cc
	return b
}

// Archiver overrides $AR.
func (b *Build) Archiver(ar string) *Build {
	b.archiver = ar
	return b
}

func (b *Build) Stdout(w io.Writer) *Build {
	b.stdout = w
	return b
}

func (b *Build) Stderr(w io.Writer) *Build {
	b.stderr = w
	return b
}

// Files returns the sources added so far.
func (b *Build) Files() []string {
	return append([]string(nil), b.files...)
}

// Compile compiles every file into <outDir>/objs and archives the objects
// into <outDir>/lib<name>.a. Any failure is fatal for the build.
func (b *Build) Compile(ctx context.Context, name string) (*Result, error) {
	if name == "" {
		return nil, b.fail("compile", fmt.Errorf("library name is empty"))
	}
	if len(b.files) == 0 {
		return nil, b.fail("compile", fmt.Errorf("no source files for lib%s.a", name))
	}

	compiler := b.command(b.compiler, constants.EnvCC, constants.DefaultCompiler)
	archiver := b.command(b.archiver, constants.EnvAR, constants.DefaultArchiver)

	objDir := filepath.Join(b.outDir, constants.ObjectDirName)
	if err := b.platform.MkdirAll(objDir, constants.DefaultDirMode); err != nil {
		return nil, b.fail("compile", fmt.Errorf("create %s: %v", objDir, err))
	}

	flags := b.compileFlags()
	objects := make([]string, 0, len(b.files))
	for i, src := range b.files {
		obj := filepath.Join(objDir, objectName(i, src))

		args := append([]string(nil), compiler[1:]...)
		args = append(args, flags...)
		args = append(args, "-c", src, "-o", obj)

		if err := b.run(ctx, compiler[0], args); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, fmt.Errorf("cc: %w", ctxErr)
			}
			return nil, b.fail("compile", fmt.Errorf("%s: %v", src, err))
		}
		objects = append(objects, obj)
	}

	library := filepath.Join(b.outDir, "lib"+name+".a")
	if err := b.platform.Remove(library); err != nil && !b.platform.IsNotExist(err) {
		return nil, b.fail("archive", fmt.Errorf("remove stale %s: %v", library, err))
	}

	args := append([]string(nil), archiver[1:]...)
	args = append(args, "crs", library)
	args = append(args, objects...)
	if err := b.run(ctx, archiver[0], args); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("cc: %w", ctxErr)
		}
		return nil, b.fail("archive", err)
	}

	b.logger.Debug("static library built", "library", library, "objects", len(objects))
	return &Result{Library: library, Objects: objects}, nil
}

// compileFlags orders flags as: position independent code, configured
// flags, $CFLAGS, then include dirs.
func (b *Build) compileFlags() []string {
	var flags []string
	if b.platform.HostInfo().OS != "windows" {
		flags = append(flags, "-fPIC")
	}
	flags = append(flags, b.flags...)
	flags = append(flags, strings.Fields(b.platform.Getenv(constants.EnvCFlags))...)
	for _, inc := range b.includes {
		flags = append(flags, "-I"+inc)
	}
	return flags
}

// command splits the configured value, else the environment variable, else
// the default into words. The result is never empty.
func (b *Build) command(configured, env, def string) []string {
	for _, candidate := range []string{configured, b.platform.Getenv(env)} {
		if words := strings.Fields(candidate); len(words) > 0 {
			return words
		}
	}
	return []string{def}
}

func (b *Build) run(ctx context.Context, name string, args []string) error {
	cmd := b.platform.CommandContext(ctx, name, args...)
	cmd.SetStdout(b.stdout)
	cmd.SetStderr(b.stderr)
	b.logger.Debug("running", "command", cmd.String())
	return cmd.Run()
}

func (b *Build) fail(operation string, err error) error {
	return errors.WrapToolError("cc", operation, fmt.Errorf("%w: %v", errors.ErrCompileFailed, err))
}

func objectName(index int, src string) string {
	base := filepath.Base(src)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return strconv.Itoa(index) + "_" + base + ".o"
}
