package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ehsaniara/upbgen/internal/upbgen/manifest"
	"github.com/ehsaniara/upbgen/pkg/codegen"
	"github.com/ehsaniara/upbgen/pkg/logger"
	"github.com/ehsaniara/upbgen/pkg/version"
)

// buildFlags are the per-run settings shared by generate, compile and paths.
// Each one overrides the matching upbgen.yml value; inputs and includes are
// appended after the configured ones.
type buildFlags struct {
	outDir          string
	protoc          string
	minitablePlugin string
	includes        []string
	library         string
	descriptorSet   bool
	cgoStub         string
}

func (f *buildFlags) register(fs *pflag.FlagSet, generate bool) {
	fs.StringVarP(&f.outDir, "out", "o", "", "Output directory (default $OUT_DIR/protobuf_generated)")
	fs.StringArrayVarP(&f.includes, "include", "I", nil, "Include directory passed to protoc as --proto_path (repeatable)")
	fs.StringVar(&f.library, "lib", "", "Library name (default $GOPACKAGE)")
	fs.StringVar(&f.cgoStub, "cgo-stub", "", "Write a cgo linkage file to this path after compiling")
	if generate {
		fs.StringVar(&f.protoc, "protoc", "", "Path to protoc (default: bundled for this platform)")
		fs.StringVar(&f.minitablePlugin, "minitable-plugin", "", "Path to protoc-gen-upb_minitable (default: bundled for this platform)")
		fs.BoolVar(&f.descriptorSet, "descriptor-set", false, "Also write a descriptor set and record imported files in the manifest")
	}
}

// codegen maps configuration and flags onto a CodeGen. With --json, stdout
// carries only the result, so tool output goes to stderr.
func (a *app) codegen(f *buildFlags, args []string) *codegen.CodeGen {
	cfg := a.config

	toolOut := a.stdout
	if a.jsonOutput {
		toolOut = a.stderr
	}

	g := codegen.New(a.platform).
		Stdout(toolOut).
		Stderr(a.stderr).
		Inputs(cfg.Inputs...).
		Inputs(args...).
		Includes(cfg.Includes...).
		Includes(f.includes...).
		ToolsDir(cfg.Tools.Dir).
		ProtocPath(firstNonEmpty(f.protoc, cfg.Tools.Protoc)).
		MinitablePluginPath(firstNonEmpty(f.minitablePlugin, cfg.Tools.MinitablePlugin)).
		Generator(codegen.Generator{
			Lang:      cfg.Generator.Lang,
			Opt:       cfg.Generator.Opt,
			SourceExt: cfg.Generator.SourceExt,
		}).
		DescriptorSet(f.descriptorSet || cfg.DescriptorSet).
		CgoStub(firstNonEmpty(f.cgoStub, cfg.Cgo.Stub), cfg.Cgo.Package).
		Compiler(cfg.Compiler.CC, cfg.Compiler.AR).
		CStandard(cfg.Compiler.Standard).
		CFlags(cfg.Compiler.Flags...)

	if out := firstNonEmpty(f.outDir, cfg.OutputDir); out != "" {
		g.OutputDir(out)
	}
	if lib := firstNonEmpty(f.library, cfg.LibraryName); lib != "" {
		g.LibraryName(lib)
	}
	return g
}

func newGenerateCmd(a *app) *cobra.Command {
	flags := &buildFlags{}

	cmd := &cobra.Command{
		Use:   "generate [inputs...]",
		Short: "Run protoc over the inputs and compile the generated C code",
		Long: `Run protoc with the upb and upb_minitable generators, then compile every
generated minitable file into lib<name>_upb_gen_code.a.

Inputs are .proto paths as protoc resolves them against the include
directories. The DEP_UPB_VERSION environment variable must match this
upbgen release.`,
		Example: `  upbgen generate -I protos shop/order.proto shop/cart.proto
  upbgen generate --config upbgen.yml --cgo-stub upb_cgo.go`,
		RunE: func(cmd *cobra.Command, args []string) error {
			artifacts, err := a.codegen(flags, args).GenerateAndCompile(cmd.Context())
			return a.printArtifacts(artifacts, err)
		},
	}
	flags.register(cmd.Flags(), true)
	return cmd
}

func newCompileCmd(a *app) *cobra.Command {
	flags := &buildFlags{}

	cmd := &cobra.Command{
		Use:   "compile [inputs...]",
		Short: "Compile code generated by an earlier run",
		Long: `Compile the minitable files protoc already generated for the inputs.
Fails with the exact path when an expected generated file is missing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			g := a.codegen(flags, args)
			if prev := a.previousRun(g); prev != nil && prev.Version != version.GetVersion() {
				a.report().Warn("%s was generated by upbgen %s, this is %s", g.OutDir(), prev.Version, version.GetVersion())
			}
			artifacts, err := g.CompileOnly(cmd.Context())
			return a.printArtifacts(artifacts, err)
		},
	}
	flags.register(cmd.Flags(), false)
	return cmd
}

func newPathsCmd(a *app) *cobra.Command {
	flags := &buildFlags{}

	cmd := &cobra.Command{
		Use:   "paths [inputs...]",
		Short: "Print the files protoc is expected to generate",
		RunE: func(cmd *cobra.Command, args []string) error {
			g := a.codegen(flags, args)

			sources, err := g.ExpectedGeneratedSourceFiles()
			if err != nil {
				return err
			}
			minitables, err := g.ExpectedGeneratedMinitableFiles()
			if err != nil {
				return err
			}

			prev := a.previousRun(g)

			if a.jsonOutput {
				out := map[string]interface{}{
					"output_dir": g.OutDir(),
					"sources":    sources,
					"minitables": minitables,
				}
				if prev != nil {
					out["previous"] = prev
				}
				return a.printJSON(out)
			}
			for i := range sources {
				fmt.Fprintln(a.stdout, sources[i])
				fmt.Fprintln(a.stdout, minitables[i])
			}
			if prev != nil {
				a.report().Info("last built %s with upbgen %s from %d inputs", prev.LibraryPath, prev.Version, len(prev.Inputs))
			}
			return nil
		},
	}
	flags.register(cmd.Flags(), false)
	return cmd
}

// previousRun loads the manifest an earlier build left in the output
// directory, or nil when there is no usable one.
func (a *app) previousRun(g *codegen.CodeGen) *manifest.Manifest {
	path := g.ManifestPath()
	if !a.platform.FileExists(path) {
		return nil
	}
	m, err := manifest.Read(a.platform, path)
	if err != nil {
		logger.Debug("ignoring unreadable manifest", "path", path, "error", err)
		return nil
	}
	if m.Library == "" {
		return nil
	}
	return m
}

// printArtifacts reports a run. Artifacts may accompany a recoverable error
// when only the manifest or stub could not be written.
func (a *app) printArtifacts(artifacts *codegen.Artifacts, err error) error {
	if artifacts == nil {
		return err
	}

	if a.jsonOutput {
		if jsonErr := a.printJSON(artifacts); jsonErr != nil {
			return jsonErr
		}
		return err
	}

	r := a.report()
	r.Info("built %s from %d generated files", artifacts.Library, len(artifacts.MinitableFiles))
	if artifacts.Manifest != "" {
		r.Info("manifest %s", artifacts.Manifest)
	}
	if artifacts.CgoStub != "" {
		r.Info("cgo stub %s", artifacts.CgoStub)
	}
	return err
}

func (a *app) printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.stdout, string(data))
	return err
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
