// Package toolchain locates the protoc and protoc-gen-upb_minitable binaries
// bundled for the host platform.
package toolchain

import (
	"path/filepath"

	"github.com/ehsaniara/upbgen/pkg/constants"
	"github.com/ehsaniara/upbgen/pkg/logger"
	"github.com/ehsaniara/upbgen/pkg/platform"
)

// platformDirs maps GOOS/GOARCH to the bundled directory name. The names
// follow the protoc release archives.
var platformDirs = map[string]string{
	"darwin/amd64":  "osx-x86_64",
	"darwin/arm64":  "osx-aarch_64",
	"linux/arm64":   "linux-aarch_64",
	"linux/ppc64le": "linux-ppcle_64",
	"linux/s390x":   "linux-s390_64",
	"linux/386":     "linux-x86_32",
	"linux/amd64":   "linux-x86_64",
	"windows/386":   "win32",
	"windows/amd64": "win64",
}

// PlatformDir returns the bundled directory for info, or false when no tools
// are shipped for it.
func PlatformDir(info platform.Info) (string, bool) {
	dir, ok := platformDirs[info.String()]
	return dir, ok
}

// Resolver builds bundled tool paths for one host.
type Resolver struct {
	platform platform.Platform
	root     string
	logger   *logger.Logger
}

// NewResolver creates a resolver. configuredRoot comes from upbgen.yml and
// may be empty; UPBGEN_TOOLS_DIR takes precedence over it.
func NewResolver(p platform.Platform, configuredRoot string) *Resolver {
	return &Resolver{
		platform: p,
		root:     configuredRoot,
		logger:   logger.WithField("component", "toolchain"),
	}
}

// Root returns the directory holding the per-platform tool directories.
func (r *Resolver) Root() string {
	if dir := r.platform.Getenv(constants.EnvToolsDir); dir != "" {
		return dir
	}
	if r.root != "" {
		return r.root
	}

	exe, err := r.platform.Executable()
	if err != nil {
		r.logger.Debug("cannot locate executable, using relative tools dir", "error", err)
		return constants.BundledToolsSubdir
	}
	return filepath.Join(filepath.Dir(exe), constants.BundledToolsSubdir)
}

// BinDir is the bundled directory for the host platform.
func (r *Resolver) BinDir() (string, bool) {
	dir, ok := PlatformDir(r.platform.HostInfo())
	if !ok {
		return "", false
	}
	return filepath.Join(r.Root(), dir), true
}

// ProtocPath is the bundled protoc for the host platform.
func (r *Resolver) ProtocPath() (string, bool) {
	return r.toolPath(constants.ProtocBinary)
}

// MinitablePluginPath is the bundled protoc-gen-upb_minitable for the host
// platform.
func (r *Resolver) MinitablePluginPath() (string, bool) {
	return r.toolPath(constants.MinitableBinary)
}

func (r *Resolver) toolPath(name string) (string, bool) {
	bin, ok := r.BinDir()
	if !ok {
		r.logger.Debug("no bundled tools for host", "tool", name, "host", r.platform.HostInfo().String())
		return "", false
	}
	return filepath.Join(bin, ExecutableName(r.platform.HostInfo(), name)), true
}

// ExecutableName adds the platform executable suffix to name.
func ExecutableName(info platform.Info, name string) string {
	if info.OS == "windows" {
		return name + ".exe"
	}
	return name
}
