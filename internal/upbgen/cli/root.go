// Package cli implements the upbgen command line.
package cli

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ehsaniara/upbgen/pkg/config"
	"github.com/ehsaniara/upbgen/pkg/errors"
	"github.com/ehsaniara/upbgen/pkg/logger"
	"github.com/ehsaniara/upbgen/pkg/platform"
)

// app is the state shared by every command of one invocation.
type app struct {
	platform platform.Platform
	stdout   io.Writer
	stderr   io.Writer

	configPath string
	envFiles   []string
	logLevel   string
	jsonOutput bool

	config       *config.Config
	configSource string
}

func (a *app) report() reporter {
	return reporter{out: a.stderr}
}

// NewRootCmd builds the command tree around p.
func NewRootCmd(p platform.Platform, stdout, stderr io.Writer) *cobra.Command {
	a := &app{platform: p, stdout: stdout, stderr: stderr}

	rootCmd := &cobra.Command{
		Use:   "upbgen",
		Short: "Generate and compile upb C code for cgo packages",
		Long: `upbgen runs protoc with the upb and upb_minitable generators over a set of
.proto files and compiles the result into a static library a cgo package can
link against.

Typical use from a Go package:
  //go:generate go run github.com/ehsaniara/upbgen/cmd/upbgen generate -I protos shop/order.proto

The environment must provide DEP_UPB_VERSION and DEP_UPB_INCLUDE, either
directly or through --env-file. OUT_DIR selects the output root and GOPACKAGE
names the library.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "",
		"Path to upbgen.yml (searches UPBGEN_CONFIG, ./upbgen.yml, ./config/upbgen.yml if not specified)")
	rootCmd.PersistentFlags().StringSliceVar(&a.envFiles, "env-file", nil,
		"Load environment variables from dotenv files (existing variables win)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "",
		"Log level: debug, info, warn or error (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&a.jsonOutput, "json", false,
		"Output in JSON format")

	rootCmd.AddCommand(newGenerateCmd(a))
	rootCmd.AddCommand(newCompileCmd(a))
	rootCmd.AddCommand(newPathsCmd(a))
	rootCmd.AddCommand(newToolsCmd(a))
	rootCmd.AddCommand(newVersionCmd(a))

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if len(a.envFiles) > 0 {
		if err := godotenv.Load(a.envFiles...); err != nil {
			return errors.NewConfigError("env-file", "", err)
		}
	}

	cfg, source, err := config.LoadConfig(a.configPath, config.WithLogLevel(a.logLevel))
	if err != nil {
		return err
	}
	a.config = cfg
	a.configSource = source

	parsed, err := logger.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return errors.NewConfigError("logging", "level", err)
	}
	logger.SetLevel(parsed)
	logger.SetFormat(cfg.Logging.Format)
	logger.SetOutput(a.stderr)

	logger.Debug("configuration loaded", "source", source, "command", cmd.Name())
	return nil
}

// Run executes upbgen with args and returns the process exit status.
func Run(ctx context.Context, args []string, p platform.Platform, stdout, stderr io.Writer) int {
	rootCmd := NewRootCmd(p, stdout, stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		errors.LogError(logger.Default(), err, "command failed")
		r := reporter{out: stderr}
		r.Error("%v", err)
		if errors.IsFatal(err) {
			r.Error("%s", errors.GetUserMessage(err))
		} else {
			r.Warn("%s", errors.GetUserMessage(err))
		}
	}
	return errors.ExitCode(err)
}

// Execute runs upbgen against the real host. An interrupt cancels the
// running child process.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return Run(ctx, os.Args[1:], platform.NewPlatform(), os.Stdout, os.Stderr)
}
