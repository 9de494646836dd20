// Package codegen drives protoc to generate upb C sources for a set of
// .proto inputs and compiles them into a static library a cgo package can
// link against.
//
// A CodeGen is configured with chained setters and then run once, usually
// from a //go:generate directive:
//
//	_, err := codegen.New(platform.NewPlatform()).
//		Include("protos").
//		Input("shop/order.proto").
//		GenerateAndCompile(ctx)
//
// Errors are classified by pkg/errors: fatal ones (unsupported platform,
// version mismatch, protoc or compiler failure) must stop the build, while a
// missing generated file is reported so the caller can decide what to do.
package codegen

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ehsaniara/upbgen/pkg/constants"
	"github.com/ehsaniara/upbgen/pkg/errors"
	"github.com/ehsaniara/upbgen/pkg/logger"
	"github.com/ehsaniara/upbgen/pkg/platform"
)

// Generator selects the protoc source generator: protoc is called with
// --<Lang>_out and, when Opt is set, --<Lang>_opt. SourceExt is the suffix of
// the header it writes per input.
type Generator struct {
	Lang      string
	Opt       string
	SourceExt string
}

// DefaultGenerator emits upb headers.
func DefaultGenerator() Generator {
	return Generator{
		Lang:      constants.DefaultSourceLang,
		SourceExt: constants.DefaultSourceExt,
	}
}

// CodeGen is the build configuration for one generated library.
type CodeGen struct {
	platform platform.Platform
	logger   *logger.Logger

	inputs              []string
	includes            []string
	outputDir           string
	protocPath          string
	minitablePluginPath string
	toolsDir            string
	libraryName         string
	generator           Generator
	descriptorSet       bool

	cgoStub    string
	cgoPackage string

	compiler  string
	archiver  string
	cStandard string
	cFlags    []string

	stdout io.Writer
	stderr io.Writer
}

// Artifacts is what a successful run leaves behind.
type Artifacts struct {
	// Library is the path of lib<LibraryName>.a.
	Library     string   `json:"library"`
	LibraryName string   `json:"library_name"`
	Objects     []string `json:"objects"`

	SourceFiles    []string `json:"source_files"`
	MinitableFiles []string `json:"minitable_files"`
	// Tracked lists the include directories whose changes should trigger
	// another run.
	Tracked []string `json:"tracked,omitempty"`

	DescriptorSet string `json:"descriptor_set,omitempty"`
	Manifest      string `json:"manifest,omitempty"`
	CgoStub       string `json:"cgo_stub,omitempty"`
}

// New creates a configuration whose output directory defaults to
// $OUT_DIR/protobuf_generated, or ./protobuf_generated when OUT_DIR is
// unset, and whose library name defaults to $GOPACKAGE.
func New(p platform.Platform) *CodeGen {
	outDir := constants.GeneratedDirName
	if base := p.Getenv(constants.EnvOutDir); base != "" {
		outDir = filepath.Join(base, constants.GeneratedDirName)
	}

	return &CodeGen{
		platform:    p,
		logger:      logger.WithField("component", "codegen"),
		outputDir:   outDir,
		libraryName: p.Getenv(constants.EnvPackageName),
		generator:   DefaultGenerator(),
		cStandard:   constants.DefaultCStandard,
		stdout:      os.Stdout,
		stderr:      os.Stderr,
	}
}

func (g *CodeGen) Input(path string) *CodeGen {
	g.inputs = append(g.inputs, path)
	return g
}

func (g *CodeGen) Inputs(paths ...string) *CodeGen {
	g.inputs = append(g.inputs, paths...)
	return g
}

func (g *CodeGen) OutputDir(dir string) *CodeGen {
	g.outputDir = dir
	return g
}

// ProtocPath uses the given protoc instead of the bundled one.
func (g *CodeGen) ProtocPath(path string) *CodeGen {
	g.protocPath = path
	return g
}

// MinitablePluginPath uses the given protoc-gen-upb_minitable instead of the
// bundled one.
func (g *CodeGen) MinitablePluginPath(path string) *CodeGen {
	g.minitablePluginPath = path
	return g
}

// ToolsDir sets the root of the bundled tool directories. UPBGEN_TOOLS_DIR
// still wins when set.
func (g *CodeGen) ToolsDir(dir string) *CodeGen {
	g.toolsDir = dir
	return g
}

func (g *CodeGen) Include(dir string) *CodeGen {
	g.includes = append(g.includes, dir)
	return g
}

func (g *CodeGen) Includes(dirs ...string) *CodeGen {
	g.includes = append(g.includes, dirs...)
	return g
}

// LibraryName names the build unit. The archive is
// lib<name>_upb_gen_code.a.
func (g *CodeGen) LibraryName(name string) *CodeGen {
	g.libraryName = name
	return g
}

// Generator replaces the source generator. Empty fields keep their
// defaults.
func (g *CodeGen) Generator(gen Generator) *CodeGen {
	if gen.Lang != "" {
		g.generator.Lang = gen.Lang
	}
	if gen.SourceExt != "" {
		g.generator.SourceExt = gen.SourceExt
	}
	g.generator.Opt = gen.Opt
	return g
}

// DescriptorSet makes protoc also write <out>/<library>.pb with imports,
// whose dependencies end up in the manifest.
func (g *CodeGen) DescriptorSet(enabled bool) *CodeGen {
	g.descriptorSet = enabled
	return g
}

// CgoStub renders a cgo linkage file at path after compiling. pkg defaults
// to $GOPACKAGE when empty.
func (g *CodeGen) CgoStub(path, pkg string) *CodeGen {
	g.cgoStub = path
	g.cgoPackage = pkg
	return g
}

// Compiler overrides $CC and $AR. Empty values keep the environment.
func (g *CodeGen) Compiler(cc, ar string) *CodeGen {
	g.compiler = cc
	g.archiver = ar
	return g
}

// CStandard replaces the -std flag; an empty value drops it.
func (g *CodeGen) CStandard(std string) *CodeGen {
	g.cStandard = std
	return g
}

// CFlags adds compiler flags ahead of $CFLAGS.
func (g *CodeGen) CFlags(flags ...string) *CodeGen {
	g.cFlags = append(g.cFlags, flags...)
	return g
}

// Stdout receives the output of protoc and the C toolchain.
func (g *CodeGen) Stdout(w io.Writer) *CodeGen {
	g.stdout = w
	return g
}

func (g *CodeGen) Stderr(w io.Writer) *CodeGen {
	g.stderr = w
	return g
}

func (g *CodeGen) Logger(l *logger.Logger) *CodeGen {
	g.logger = l
	return g
}

// OutDir returns the configured output directory.
func (g *CodeGen) OutDir() string {
	return g.outputDir
}

// ManifestPath is where a successful build records its manifest.
func (g *CodeGen) ManifestPath() string {
	return filepath.Join(g.outputDir, constants.ManifestFileName)
}

// ExpectedGeneratedSourceFiles lists the header protoc writes for each
// input, in input order.
func (g *CodeGen) ExpectedGeneratedSourceFiles() ([]string, error) {
	return g.expectedFiles(g.generator.SourceExt)
}

// ExpectedGeneratedMinitableFiles lists the minitable C file protoc writes
// for each input, in input order.
func (g *CodeGen) ExpectedGeneratedMinitableFiles() ([]string, error) {
	return g.expectedFiles(constants.MinitableExt)
}

func (g *CodeGen) expectedFiles(ext string) ([]string, error) {
	files := make([]string, 0, len(g.inputs))
	for _, input := range g.inputs {
		name, err := ReplaceExtension(input, ext)
		if err != nil {
			return nil, err
		}
		files = append(files, filepath.Join(g.outputDir, name))
	}
	return files, nil
}

// ReplaceExtension swaps the extension of the last path element for ext:
// "a/b.proto" becomes "a/b.<ext>" and a name without extension gets one
// appended. A path with no final name (empty, ".", "..", or ending in a
// separator) is rejected with ErrInvalidInputPath.
//
// "a/b.proto/" is rejected rather than treated as "a/b.proto": protoc would
// refuse it as an input anyway, so the error is reported before it runs.
func ReplaceExtension(path, ext string) (string, error) {
	if path == "" || strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return "", errors.NewInvalidInputError(path)
	}

	dir, file := filepath.Split(path)
	if file == "." || file == ".." {
		return "", errors.NewInvalidInputError(path)
	}

	// A leading dot starts a hidden name, not an extension.
	if i := strings.LastIndexByte(file, '.'); i > 0 {
		file = file[:i]
	}
	return dir + file + "." + ext, nil
}

func (g *CodeGen) libraryBase() string {
	return g.libraryName + constants.LibrarySuffix
}

func (g *CodeGen) descriptorSetPath() string {
	return filepath.Join(g.outputDir, g.libraryName+"."+constants.DescriptorSetExt)
}

func (g *CodeGen) requireLibraryName() error {
	if g.libraryName == "" {
		return errors.NewMissingEnvError(constants.EnvPackageName, "set a library name or run under go generate")
	}
	return nil
}

func (g *CodeGen) requireEnv(name, hint string) (string, error) {
	val := g.platform.Getenv(name)
	if val == "" {
		return "", errors.NewMissingEnvError(name, hint)
	}
	return val, nil
}

func (g *CodeGen) Validate() error {
	var errs []error
	if len(g.inputs) == 0 {
		errs = append(errs, errors.NewConfigError("codegen", "inputs", fmt.Errorf("no .proto inputs")))
	}
	if g.outputDir == "" {
		errs = append(errs, errors.NewConfigError("codegen", "output_dir", fmt.Errorf("output directory is empty")))
	}
	if err := g.requireLibraryName(); err != nil {
		errs = append(errs, err)
	}
	if _, err := g.ExpectedGeneratedSourceFiles(); err != nil {
		errs = append(errs, err)
	}
	return errors.JoinErrors(errs...)
}
