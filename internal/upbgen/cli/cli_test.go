package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ehsaniara/upbgen/pkg/constants"
	"github.com/ehsaniara/upbgen/pkg/errors"
	"github.com/ehsaniara/upbgen/pkg/platform"
	"github.com/ehsaniara/upbgen/pkg/platform/platformfakes"
	"github.com/ehsaniara/upbgen/pkg/version"
)

type fakeHost struct {
	p       *platformfakes.FakePlatform
	env     map[string]string
	missing map[string]bool
	spawned []string
}

func newFakeHost(t *testing.T) *fakeHost {
	t.Helper()

	// Keep config discovery and env overrides away from the developer's
	// environment.
	testChdir(t, t.TempDir())
	t.Setenv(constants.EnvConfigPath, "")
	t.Setenv(constants.EnvToolsDir, "")
	t.Setenv(constants.EnvLogLevel, "")

	h := &fakeHost{
		env: map[string]string{
			"DEP_UPB_VERSION": version.GetVersion(),
			"DEP_UPB_INCLUDE": "/upb/include",
			"GOPACKAGE":       "widgets",
		},
		missing: map[string]bool{},
	}

	p := &platformfakes.FakePlatform{}
	p.HostInfoReturns(platform.Info{OS: "linux", Architecture: "amd64"})
	p.GetenvStub = func(key string) string { return h.env[key] }
	p.ExecutableReturns("/opt/upbgen/upbgen", nil)
	p.FileExistsStub = func(path string) bool { return !h.missing[path] }
	p.RemoveReturns(os.ErrNotExist)
	p.IsNotExistStub = os.IsNotExist
	p.CommandContextStub = func(_ context.Context, name string, _ ...string) platform.Command {
		h.spawned = append(h.spawned, name)
		return &platformfakes.FakeCommand{}
	}
	h.p = p
	return h
}

func (h *fakeHost) run(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := Run(context.Background(), args, h.p, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestVersionCommand(t *testing.T) {
	h := newFakeHost(t)

	code, out, _ := h.run("version")
	assert.Equal(t, errors.ExitOK, code)
	assert.True(t, strings.HasPrefix(out, "upbgen version "+version.GetVersion()))

	code, out, _ = h.run("version", "--json")
	require.Equal(t, errors.ExitOK, code)
	var info version.BuildInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, "upbgen", info.Component)
}

func TestToolsCommand(t *testing.T) {
	h := newFakeHost(t)

	code, out, _ := h.run("tools")
	assert.Equal(t, errors.ExitOK, code)
	assert.Contains(t, out, "linux-x86_64")
	assert.Contains(t, out, filepath.Join("/opt/upbgen/bin", "linux-x86_64", "protoc-gen-upb_minitable"))

	h.p.HostInfoReturns(platform.Info{OS: "plan9", Architecture: "arm"})
	code, out, _ = h.run("tools")
	assert.Equal(t, errors.ExitOK, code)
	assert.Contains(t, out, "unsupported")
}

func TestPathsCommand(t *testing.T) {
	h := newFakeHost(t)

	code, out, _ := h.run("paths", "-o", "gen", "shop/order.proto")
	require.Equal(t, errors.ExitOK, code)
	assert.Equal(t, filepath.Join("gen", "shop", "order.upb.h")+"\n"+filepath.Join("gen", "shop", "order.upb_minitable.c")+"\n", out)
	assert.Empty(t, h.spawned)
}

func TestPathsAppendsFlagInputsAfterConfig(t *testing.T) {
	h := newFakeHost(t)
	require.NoError(t, os.WriteFile("upbgen.yml", []byte("inputs: [a.proto]\noutput_dir: gen\n"), 0o644))

	code, out, _ := h.run("paths", "--json", "b.proto")
	require.Equal(t, errors.ExitOK, code)

	var got struct {
		OutputDir string   `json:"output_dir"`
		Sources   []string `json:"sources"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "gen", got.OutputDir)
	assert.Equal(t, []string{filepath.Join("gen", "a.upb.h"), filepath.Join("gen", "b.upb.h")}, got.Sources)
}

func TestPathsInvalidInputIsFatal(t *testing.T) {
	h := newFakeHost(t)

	code, _, errOut := h.run("paths", "protos/")
	assert.Equal(t, errors.ExitFatal, code)
	assert.Contains(t, errOut, "has no file name")
}

func TestGenerateCommand(t *testing.T) {
	h := newFakeHost(t)

	code, _, errOut := h.run("generate", "-o", "gen", "-I", "protos", "shop/order.proto")
	require.Equal(t, errors.ExitOK, code, errOut)
	assert.Contains(t, errOut, "built "+filepath.Join("gen", "libwidgets_upb_gen_code.a"))
	assert.Equal(t, []string{
		filepath.Join("/opt/upbgen/bin", "linux-x86_64", "protoc"),
		"cc",
		"ar",
	}, h.spawned)
}

func TestGenerateCommandWithExplicitTools(t *testing.T) {
	h := newFakeHost(t)
	h.p.HostInfoReturns(platform.Info{OS: "plan9", Architecture: "arm"})

	code, _, _ := h.run("generate", "-o", "gen", "a.proto")
	assert.Equal(t, errors.ExitFatal, code)
	assert.Empty(t, h.spawned)

	code, _, errOut := h.run("generate", "-o", "gen", "--protoc", "/usr/bin/protoc", "--minitable-plugin", "/usr/bin/protoc-gen-upb_minitable", "a.proto")
	assert.Equal(t, errors.ExitOK, code, errOut)
	assert.Equal(t, "/usr/bin/protoc", h.spawned[0])
}

func TestGenerateVersionMismatchExitsFatal(t *testing.T) {
	h := newFakeHost(t)
	h.env["DEP_UPB_VERSION"] = "1.0.0"

	code, _, errOut := h.run("generate", "a.proto")
	assert.Equal(t, errors.ExitFatal, code)
	assert.Contains(t, errOut, "does not match protobuf version 1.0.0")
	assert.Empty(t, h.spawned)
}

func TestCompileMissingFileIsRecoverable(t *testing.T) {
	h := newFakeHost(t)
	missing := filepath.Join("gen", "a.upb.h")
	h.missing[missing] = true

	code, _, errOut := h.run("compile", "-o", "gen", "a.proto")
	assert.Equal(t, errors.ExitRecoverable, code)
	assert.Contains(t, errOut, "expected generated file "+missing+" does not exist")
	assert.Empty(t, h.spawned)
}

func TestEnvFile(t *testing.T) {
	h := newFakeHost(t)

	const key = "UPBGEN_TEST_ENV_FILE_VALUE"
	t.Cleanup(func() { _ = os.Unsetenv(key) })
	require.NoError(t, os.WriteFile("build.env", []byte(key+"=loaded\n"), 0o644))

	code, _, _ := h.run("--env-file", "build.env", "version")
	assert.Equal(t, errors.ExitOK, code)
	assert.Equal(t, "loaded", os.Getenv(key))

	code, _, _ = h.run("--env-file", "absent.env", "version")
	assert.Equal(t, errors.ExitFatal, code)
}

func TestInvalidLogLevelFlag(t *testing.T) {
	h := newFakeHost(t)

	code, _, errOut := h.run("--log-level", "chatty", "version")
	assert.Equal(t, errors.ExitFatal, code)
	assert.Contains(t, errOut, "unknown log level")
}

func TestLogLevelFlagOverridesInvalidEnvironment(t *testing.T) {
	h := newFakeHost(t)
	t.Setenv(constants.EnvLogLevel, "chatty")

	code, _, errOut := h.run("version")
	assert.Equal(t, errors.ExitFatal, code)
	assert.Contains(t, errOut, "unknown log level: chatty")

	code, _, errOut = h.run("--log-level", "debug", "version")
	assert.Equal(t, errors.ExitOK, code, errOut)
}

func TestFailedCommandLogsClassificationAtDebug(t *testing.T) {
	h := newFakeHost(t)
	h.env["DEP_UPB_VERSION"] = "1.0.0"

	code, _, errOut := h.run("generate", "a.proto")
	assert.Equal(t, errors.ExitFatal, code)
	assert.NotContains(t, errOut, "command failed")

	code, _, errOut = h.run("--log-level", "debug", "generate", "a.proto")
	assert.Equal(t, errors.ExitFatal, code)
	assert.Contains(t, errOut, "command failed")
	assert.Contains(t, errOut, "severity=fatal")
	assert.Contains(t, errOut, "category=configuration")
}

func TestGenerateJSONKeepsToolOutputOffStdout(t *testing.T) {
	h := newFakeHost(t)
	h.p.CommandContextStub = func(_ context.Context, name string, _ ...string) platform.Command {
		var out io.Writer = io.Discard
		cmd := &platformfakes.FakeCommand{}
		cmd.SetStdoutStub = func(w io.Writer) { out = w }
		cmd.RunStub = func() error {
			_, err := fmt.Fprintf(out, "%s: chatter\n", filepath.Base(name))
			return err
		}
		return cmd
	}

	code, out, errOut := h.run("--json", "generate", "-o", "gen", "a.proto")
	require.Equal(t, errors.ExitOK, code, errOut)

	var got struct {
		Library string `json:"library"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got), out)
	assert.Equal(t, filepath.Join("gen", "libwidgets_upb_gen_code.a"), got.Library)
	assert.Contains(t, errOut, "protoc: chatter")
	assert.Contains(t, errOut, "ar: chatter")

	code, out, _ = h.run("generate", "-o", "gen", "a.proto")
	require.Equal(t, errors.ExitOK, code)
	assert.Contains(t, out, "cc: chatter")
}

func (h *fakeHost) previousManifest(path, content string) {
	h.p.ReadFileStub = func(name string) ([]byte, error) {
		if name == path {
			return []byte(content), nil
		}
		return nil, os.ErrNotExist
	}
}

func TestPathsReportsPreviousRun(t *testing.T) {
	h := newFakeHost(t)
	lib := filepath.Join("gen", "libwidgets_upb_gen_code.a")
	h.previousManifest(filepath.Join("gen", constants.ManifestFileName),
		"version: 4.30.0\nlibrary: widgets_upb_gen_code\nlibrary_path: "+lib+"\ninputs: [a.proto]\n")

	code, out, errOut := h.run("paths", "-o", "gen", "a.proto")
	require.Equal(t, errors.ExitOK, code)
	assert.Equal(t, filepath.Join("gen", "a.upb.h")+"\n"+filepath.Join("gen", "a.upb_minitable.c")+"\n", out)
	assert.Contains(t, errOut, "last built "+lib+" with upbgen 4.30.0 from 1 inputs")

	code, out, _ = h.run("paths", "--json", "-o", "gen", "a.proto")
	require.Equal(t, errors.ExitOK, code)
	var got struct {
		Previous struct {
			Version     string `json:"version"`
			LibraryPath string `json:"library_path"`
		} `json:"previous"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "4.30.0", got.Previous.Version)
	assert.Equal(t, lib, got.Previous.LibraryPath)
}

func TestPathsWithoutPreviousRun(t *testing.T) {
	h := newFakeHost(t)
	h.missing[filepath.Join("gen", constants.ManifestFileName)] = true

	code, out, errOut := h.run("paths", "--json", "-o", "gen", "a.proto")
	require.Equal(t, errors.ExitOK, code)
	assert.NotContains(t, out, "previous")
	assert.NotContains(t, errOut, "last built")
}

func TestCompileWarnsWhenGeneratedByAnotherVersion(t *testing.T) {
	h := newFakeHost(t)
	manifestPath := filepath.Join("gen", constants.ManifestFileName)

	h.previousManifest(manifestPath, "version: 4.30.0\nlibrary: widgets_upb_gen_code\n")
	code, _, errOut := h.run("compile", "-o", "gen", "a.proto")
	require.Equal(t, errors.ExitOK, code, errOut)
	assert.Contains(t, errOut, "gen was generated by upbgen 4.30.0, this is "+version.GetVersion())

	h.previousManifest(manifestPath, "version: "+version.GetVersion()+"\nlibrary: widgets_upb_gen_code\n")
	code, _, errOut = h.run("compile", "-o", "gen", "a.proto")
	require.Equal(t, errors.ExitOK, code, errOut)
	assert.NotContains(t, errOut, "was generated by")
}

// testChdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func testChdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
