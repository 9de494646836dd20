// Package version pins upbgen to a upb runtime release. Generated code is
// only valid against the runtime it was generated for, so the helper's
// release number is the protobuf release it bundles protoc for.
package version

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/ehsaniara/upbgen/pkg/constants"
)

// Overridden with -ldflags "-X github.com/ehsaniara/upbgen/pkg/version.Version=..."
// when the bundled tools are rebuilt for another upb release.
var (
	Version   = "4.31.1"
	GitCommit = "unknown"
	GitTag    = "unknown"
	BuildDate = "unknown"
	Component = "upbgen"
)

// BuildInfo is what `upbgen version --json` prints.
type BuildInfo struct {
	Version string `json:"version"`
	// UpbRuntime is the release DEP_UPB_VERSION has to name.
	UpbRuntime   string `json:"upb_runtime"`
	GitCommit    string `json:"git_commit"`
	GitTag       string `json:"git_tag"`
	BuildDate    string `json:"build_date"`
	Component    string `json:"component"`
	GoVersion    string `json:"go_version"`
	Compiler     string `json:"compiler"`
	Platform     string `json:"platform"`
	Architecture string `json:"architecture"`
}

func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:      Version,
		UpbRuntime:   GetVersion(),
		GitCommit:    GitCommit,
		GitTag:       GitTag,
		BuildDate:    BuildDate,
		Component:    Component,
		GoVersion:    runtime.Version(),
		Compiler:     runtime.Compiler,
		Platform:     runtime.GOOS,
		Architecture: runtime.GOARCH,
	}
}

// GetVersion is the upb release generated code targets. Without a Version
// the git tag is used, and a bare commit yields dev-<commit>, which no
// runtime release matches.
func GetVersion() string {
	if Version != "" {
		return Version
	}
	if GitTag != "unknown" && GitTag != "" {
		return GitTag
	}
	return fmt.Sprintf("dev-%s", GitCommit)
}

// GetShortVersion appends the abbreviated commit when one was stamped.
func GetShortVersion() string {
	v := GetVersion()
	if GitCommit != "unknown" && len(GitCommit) >= 7 {
		return fmt.Sprintf("%s (%s)", v, GitCommit[:7])
	}
	return v
}

// GetLongVersion is the text form of `upbgen version`.
func GetLongVersion() string {
	info := GetBuildInfo()

	var b strings.Builder
	fmt.Fprintf(&b, "%s version %s\n", info.Component, GetShortVersion())
	fmt.Fprintf(&b, "upb runtime: %s (%s must match)\n", info.UpbRuntime, constants.EnvUpbVersion)
	if info.BuildDate != "unknown" {
		fmt.Fprintf(&b, "Built: %s\n", info.BuildDate)
	}
	if info.GitCommit != "unknown" {
		fmt.Fprintf(&b, "Commit: %s\n", info.GitCommit)
	}
	fmt.Fprintf(&b, "Go: %s\n", info.GoVersion)
	fmt.Fprintf(&b, "Platform: %s/%s\n", info.Platform, info.Architecture)
	return b.String()
}
