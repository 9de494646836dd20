package codegen

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ehsaniara/upbgen/internal/upbgen/cgo"
	"github.com/ehsaniara/upbgen/internal/upbgen/manifest"
	"github.com/ehsaniara/upbgen/pkg/cc"
	"github.com/ehsaniara/upbgen/pkg/constants"
	"github.com/ehsaniara/upbgen/pkg/errors"
	"github.com/ehsaniara/upbgen/pkg/logger"
	"github.com/ehsaniara/upbgen/pkg/platform"
	"github.com/ehsaniara/upbgen/pkg/toolchain"
	"github.com/ehsaniara/upbgen/pkg/version"
)

// CheckVersion fails unless DEP_UPB_VERSION names the release this helper
// was built for. Both failures are fatal.
func (g *CodeGen) CheckVersion() error {
	dep, err := g.requireEnv(constants.EnvUpbVersion, "make sure the protobuf runtime is a dependency")
	if err != nil {
		return err
	}
	return version.CheckCompatible(dep)
}

// GenerateAndCompile runs protoc over every input and then CompileOnly.
//
// Nothing is spawned unless the version check passes. Failing to start
// protoc is reported as a recoverable error; protoc exiting unsuccessfully
// is fatal.
func (g *CodeGen) GenerateAndCompile(ctx context.Context) (*Artifacts, error) {
	if err := g.CheckVersion(); err != nil {
		return nil, err
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	args, err := g.GenerateArgs()
	if err != nil {
		return nil, err
	}
	protoc := args[0]

	if err := g.runProtoc(ctx, protoc, args[1:]); err != nil {
		return nil, err
	}

	return g.CompileOnly(ctx)
}

// GenerateArgs resolves the tools and returns the full protoc command line,
// protoc first. It creates the output directory when missing; a failure to
// do so is logged and left for protoc to report.
func (g *CodeGen) GenerateArgs() ([]string, error) {
	log := g.logger.WithMode("generate")
	resolver := toolchain.NewResolver(g.platform, g.toolsDir)

	protoc, err := g.toolPath(constants.ProtocBinary, g.protocPath, resolver.ProtocPath)
	if err != nil {
		return nil, err
	}

	if !g.platform.DirExists(g.outputDir) {
		if err := g.platform.MkdirAll(g.outputDir, constants.DefaultDirMode); err != nil {
			log.Debug("could not create output directory", "dir", g.outputDir, "error", err)
		}
	}

	plugin, err := g.toolPath(constants.MinitableBinary, g.minitablePluginPath, resolver.MinitablePluginPath)
	if err != nil {
		return nil, err
	}

	for _, inc := range g.includes {
		log.Info("tracking include directory", "dir", inc)
	}

	args := []string{protoc}
	args = append(args, g.inputs...)
	args = append(args, fmt.Sprintf("--%s_out=%s", g.generator.Lang, g.outputDir))
	if g.generator.Opt != "" {
		args = append(args, fmt.Sprintf("--%s_opt=%s", g.generator.Lang, g.generator.Opt))
	}
	args = append(args,
		fmt.Sprintf("--plugin=protoc-gen-%s=%s", constants.MinitablePlugin, plugin),
		fmt.Sprintf("--%s_out=%s", constants.MinitablePlugin, g.outputDir),
	)
	for _, inc := range g.includes {
		args = append(args, "--proto_path="+inc)
	}
	if g.descriptorSet {
		args = append(args, "--descriptor_set_out="+g.descriptorSetPath(), "--include_imports")
	}
	return args, nil
}

func (g *CodeGen) toolPath(name, override string, bundled func() (string, bool)) (string, error) {
	if override != "" {
		return override, nil
	}
	path, ok := bundled()
	if !ok {
		info := g.platform.HostInfo()
		return "", errors.NewUnsupportedPlatformError(name, info.OS, info.Architecture)
	}
	return path, nil
}

func (g *CodeGen) runProtoc(ctx context.Context, protoc string, args []string) error {
	cmd := g.platform.CommandContext(ctx, protoc, args...)
	cmd.SetStdout(g.stdout)
	cmd.SetStderr(g.stderr)
	cmd.SetEnv(g.childEnv())

	g.logger.WithMode("generate").Debug("running protoc", "command", cmd.String())

	err := cmd.Run()
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("protoc: %w", ctxErr)
	}
	if code, exited := platform.ExitCode(err); exited {
		return errors.WrapToolError(constants.ProtocBinary, "run",
			fmt.Errorf("%w: exit status %d", errors.ErrGeneratorFailed, code))
	}
	return fmt.Errorf("failed to run protoc: %w",
		errors.WrapToolError(constants.ProtocBinary, "start", fmt.Errorf("%w: %v", errors.ErrToolStart, err)))
}

// childEnv is the helper's environment with the bundled tools directory put
// first on PATH, so plugins shipped next to protoc are found.
func (g *CodeGen) childEnv() []string {
	env := append([]string(nil), g.platform.Environ()...)

	bin, ok := toolchain.NewResolver(g.platform, g.toolsDir).BinDir()
	if !ok {
		return env
	}

	// Windows reports the key as "Path" and exec dedups keys case-insensitively.
	foldKey := g.platform.HostInfo().OS == "windows"
	for i, kv := range env {
		key, current, found := strings.Cut(kv, "=")
		if !found || !sameEnvKey(key, constants.EnvPath, foldKey) {
			continue
		}
		if current == "" {
			env[i] = key + "=" + bin
		} else {
			env[i] = key + "=" + bin + string(filepath.ListSeparator) + current
		}
		return env
	}
	return append(env, constants.EnvPath+"="+bin)
}

func sameEnvKey(a, b string, fold bool) bool {
	if fold {
		return strings.EqualFold(a, b)
	}
	return a == b
}

// CompileOnly compiles files generated by an earlier run. Every expected
// header and minitable file must exist; the first missing one is returned
// as a *errors.GeneratedFileError.
//
// When the library is built but the manifest or cgo stub cannot be written,
// the Artifacts are returned together with that recoverable error.
func (g *CodeGen) CompileOnly(ctx context.Context) (*Artifacts, error) {
	log := g.logger.WithMode("compile")
	upbInclude, err := g.requireEnv(constants.EnvUpbInclude, "make sure the protobuf runtime is a dependency")
	if err != nil {
		return nil, err
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	sources, err := g.ExpectedGeneratedSourceFiles()
	if err != nil {
		return nil, err
	}
	minitables, err := g.ExpectedGeneratedMinitableFiles()
	if err != nil {
		return nil, err
	}

	build := cc.New(g.platform).
		OutDir(g.outputDir).
		Include(upbInclude).
		Include(g.outputDir).
		Compiler(g.compiler).
		Archiver(g.archiver).
		Stdout(g.stdout).
		Stderr(g.stderr)
	if g.cStandard != "" {
		build.Flag(g.cStandard)
	}
	build.Flags(g.cFlags...)

	for _, path := range sources {
		if !g.platform.FileExists(path) {
			return nil, errors.NewMissingGeneratedFileError(path)
		}
	}
	for _, path := range minitables {
		if !g.platform.FileExists(path) {
			return nil, errors.NewMissingGeneratedFileError(path)
		}
		build.File(path)
	}

	result, err := build.Compile(ctx, g.libraryBase())
	if err != nil {
		return nil, err
	}

	artifacts := &Artifacts{
		Library:        result.Library,
		LibraryName:    g.libraryBase(),
		Objects:        result.Objects,
		SourceFiles:    sources,
		MinitableFiles: minitables,
		Tracked:        append([]string(nil), g.includes...),
	}
	log.Info("generated library", "library", artifacts.Library, "inputs", len(g.inputs))

	err = errors.JoinErrors(
		g.writeManifest(log, artifacts),
		g.writeCgoStub(artifacts, upbInclude),
	)
	return artifacts, err
}

func (g *CodeGen) writeManifest(log *logger.Logger, a *Artifacts) error {
	m := &manifest.Manifest{
		Version:     version.GetVersion(),
		Library:     a.LibraryName,
		LibraryPath: a.Library,
		Inputs:      g.inputs,
		Includes:    g.includes,
		Generated:   append(append([]string(nil), a.SourceFiles...), a.MinitableFiles...),
		Tracked:     a.Tracked,
	}

	if g.descriptorSet {
		path := g.descriptorSetPath()
		if g.platform.FileExists(path) {
			deps, err := manifest.Dependencies(g.platform, path)
			if err != nil {
				log.Warn("cannot read descriptor set", "path", path, "error", err)
			} else {
				m.DescriptorSet = path
				m.Dependencies = deps
				a.DescriptorSet = path
			}
		}
	}

	path := g.ManifestPath()
	if err := manifest.Write(g.platform, path, m); err != nil {
		return err
	}
	a.Manifest = path
	return nil
}

func (g *CodeGen) writeCgoStub(a *Artifacts, upbInclude string) error {
	if g.cgoStub == "" {
		return nil
	}

	pkg := g.cgoPackage
	if pkg == "" {
		pkg = g.platform.Getenv(constants.EnvPackageName)
	}
	if pkg == "" {
		pkg = g.libraryName
	}

	err := cgo.Write(g.platform, cgo.Stub{
		Path:        g.cgoStub,
		Package:     pkg,
		Version:     version.GetVersion(),
		IncludeDirs: []string{upbInclude, g.outputDir},
		LibDir:      filepath.Dir(a.Library),
		Library:     a.LibraryName,
	})
	if err != nil {
		return err
	}
	a.CgoStub = g.cgoStub
	return nil
}
