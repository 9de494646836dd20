package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ehsaniara/upbgen/pkg/constants"
	"github.com/ehsaniara/upbgen/pkg/errors"
	"github.com/ehsaniara/upbgen/pkg/logger"
)

// Config holds everything upbgen can read from upbgen.yml. Values given on
// the command line are layered on top by the CLI.
type Config struct {
	Version       string          `yaml:"version" json:"version"`
	Inputs        []string        `yaml:"inputs" json:"inputs"`
	Includes      []string        `yaml:"includes" json:"includes"`
	OutputDir     string          `yaml:"output_dir" json:"output_dir"`
	LibraryName   string          `yaml:"library_name" json:"library_name"`
	DescriptorSet bool            `yaml:"descriptor_set" json:"descriptor_set"`
	Tools         ToolsConfig     `yaml:"tools" json:"tools"`
	Generator     GeneratorConfig `yaml:"generator" json:"generator"`
	Compiler      CompilerConfig  `yaml:"compiler" json:"compiler"`
	Cgo           CgoConfig       `yaml:"cgo" json:"cgo"`
	Logging       LoggingConfig   `yaml:"logging" json:"logging"`
}

// ToolsConfig locates protoc and the minitable plugin
type ToolsConfig struct {
	// Dir is the root of the bundled per-platform tool directories.
	Dir             string `yaml:"dir" json:"dir"`
	Protoc          string `yaml:"protoc" json:"protoc"`
	MinitablePlugin string `yaml:"minitable_plugin" json:"minitable_plugin"`
}

// GeneratorConfig selects the protoc source generator
type GeneratorConfig struct {
	Lang      string `yaml:"lang" json:"lang"`
	Opt       string `yaml:"opt" json:"opt"`
	SourceExt string `yaml:"source_ext" json:"source_ext"`
}

// CompilerConfig holds the C toolchain settings
type CompilerConfig struct {
	CC       string   `yaml:"cc" json:"cc"`
	AR       string   `yaml:"ar" json:"ar"`
	Standard string   `yaml:"std" json:"std"`
	Flags    []string `yaml:"flags" json:"flags"`
}

// CgoConfig controls the optional cgo linkage file
type CgoConfig struct {
	Stub    string `yaml:"stub" json:"stub"`
	Package string `yaml:"package" json:"package"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
}

// DefaultConfig is used for every field upbgen.yml leaves out.
var DefaultConfig = Config{
	Version: "1",
	Generator: GeneratorConfig{
		Lang:      constants.DefaultSourceLang,
		SourceExt: constants.DefaultSourceExt,
	},
	Compiler: CompilerConfig{
		Standard: constants.DefaultCStandard,
	},
	Logging: LoggingConfig{
		Level:  "INFO",
		Format: "text",
	},
}

// SearchPaths lists the config locations tried in order when no explicit
// path is given. Empty entries are skipped.
func SearchPaths() []string {
	return []string{
		os.Getenv(constants.EnvConfigPath),
		"./upbgen.yml",
		"./config/upbgen.yml",
	}
}

// LoadConfig loads upbgen.yml and applies environment overrides.
//
// An explicit path must exist. Otherwise the first file found in
// SearchPaths is used, and built-in defaults when there is none.
// UPBGEN_TOOLS_DIR and UPBGEN_LOG_LEVEL override the file, and overrides
// (usually command line flags) override both. Validation runs last.
// Returns (config, source, error) where source names where values came from.
func LoadConfig(explicitPath string, overrides ...Override) (*Config, string, error) {
	config := DefaultConfig

	var (
		path string
		err  error
	)
	if explicitPath != "" {
		path, err = loadFile(&config, explicitPath)
	} else {
		path, err = loadFromSearchPaths(&config)
	}
	if err != nil {
		return nil, "", err
	}

	if val := os.Getenv(constants.EnvToolsDir); val != "" {
		config.Tools.Dir = val
	}
	if val := os.Getenv(constants.EnvLogLevel); val != "" {
		config.Logging.Level = val
	}
	for _, override := range overrides {
		override(&config)
	}

	config.applyDefaults()

	if e := config.Validate(); e != nil {
		return nil, "", fmt.Errorf("configuration validation failed: %w", e)
	}

	return &config, path, nil
}

// Override adjusts a loaded configuration before it is validated.
type Override func(*Config)

// WithLogLevel sets the log level when level is not empty.
func WithLogLevel(level string) Override {
	return func(c *Config) {
		if level != "" {
			c.Logging.Level = level
		}
	}
}

func loadFromSearchPaths(config *Config) (string, error) {
	for _, path := range SearchPaths() {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		return loadFile(config, path)
	}

	return "built-in defaults (no config file found)", nil
}

func loadFile(config *Config, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.NewConfigError("upbgen", "", fmt.Errorf("failed to read config file %s: %w", path, err))
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return "", errors.NewConfigError("upbgen", "", fmt.Errorf("failed to parse config file %s: %w", path, err))
	}

	return path, nil
}

// applyDefaults restores defaults for fields a file explicitly blanked.
func (c *Config) applyDefaults() {
	if c.Generator.Lang == "" {
		c.Generator.Lang = DefaultConfig.Generator.Lang
	}
	if c.Generator.SourceExt == "" {
		c.Generator.SourceExt = DefaultConfig.Generator.SourceExt
	}
	if c.Compiler.Standard == "" {
		c.Compiler.Standard = DefaultConfig.Compiler.Standard
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultConfig.Logging.Level
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultConfig.Logging.Format
	}
}

// Validate checks every section and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error

	if strings.ContainsAny(c.Generator.Lang, " \t/\\=") {
		errs = append(errs, errors.NewConfigError("generator", "lang", fmt.Errorf("invalid generator name %q", c.Generator.Lang)))
	}

	if strings.HasPrefix(c.Generator.SourceExt, ".") {
		errs = append(errs, errors.NewConfigError("generator", "source_ext", fmt.Errorf("%q must not start with a dot", c.Generator.SourceExt)))
	}

	if c.LibraryName != "" && (strings.ContainsAny(c.LibraryName, `/\ `) || c.LibraryName != filepath.Base(c.LibraryName)) {
		errs = append(errs, errors.NewConfigError("upbgen", "library_name", fmt.Errorf("%q is not a valid library name", c.LibraryName)))
	}

	for i, input := range c.Inputs {
		if strings.TrimSpace(input) == "" {
			errs = append(errs, errors.NewConfigError("upbgen", fmt.Sprintf("inputs[%d]", i), fmt.Errorf("empty input path")))
		}
	}

	if c.Cgo.Package != "" && c.Cgo.Stub == "" {
		errs = append(errs, errors.NewConfigError("cgo", "package", fmt.Errorf("package is set but no stub path")))
	}

	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, errors.NewConfigError("logging", "level", err))
	}

	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		errs = append(errs, errors.NewConfigError("logging", "format", fmt.Errorf("invalid log format: %s", c.Logging.Format)))
	}

	return errors.JoinErrors(errs...)
}
