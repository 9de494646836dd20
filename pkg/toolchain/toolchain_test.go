package toolchain

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ehsaniara/upbgen/pkg/constants"
	"github.com/ehsaniara/upbgen/pkg/platform"
	"github.com/ehsaniara/upbgen/pkg/platform/platformfakes"
)

func TestPlatformDir(t *testing.T) {
	tests := []struct {
		os, arch string
		want     string
		ok       bool
	}{
		{"darwin", "amd64", "osx-x86_64", true},
		{"darwin", "arm64", "osx-aarch_64", true},
		{"linux", "arm64", "linux-aarch_64", true},
		{"linux", "ppc64le", "linux-ppcle_64", true},
		{"linux", "s390x", "linux-s390_64", true},
		{"linux", "386", "linux-x86_32", true},
		{"linux", "amd64", "linux-x86_64", true},
		{"windows", "386", "win32", true},
		{"windows", "amd64", "win64", true},
		{"windows", "arm64", "", false},
		{"freebsd", "amd64", "", false},
		{"linux", "riscv64", "", false},
		{"darwin", "386", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.os+"/"+tt.arch, func(t *testing.T) {
			got, ok := PlatformDir(platform.Info{OS: tt.os, Architecture: tt.arch})
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func fakeHost(goos, goarch string) *platformfakes.FakePlatform {
	p := &platformfakes.FakePlatform{}
	p.HostInfoReturns(platform.Info{OS: goos, Architecture: goarch})
	p.ExecutableReturns(filepath.Join("/opt", "upbgen", "upbgen"), nil)
	return p
}

func TestResolverPaths(t *testing.T) {
	p := fakeHost("linux", "amd64")
	r := NewResolver(p, "")

	protoc, ok := r.ProtocPath()
	assert.True(t, ok)
	assert.Equal(t, filepath.Join("/opt", "upbgen", "bin", "linux-x86_64", "protoc"), protoc)

	plugin, ok := r.MinitablePluginPath()
	assert.True(t, ok)
	assert.Equal(t, filepath.Join("/opt", "upbgen", "bin", "linux-x86_64", "protoc-gen-upb_minitable"), plugin)
}

func TestResolverWindowsSuffix(t *testing.T) {
	r := NewResolver(fakeHost("windows", "amd64"), "tools")

	protoc, ok := r.ProtocPath()
	assert.True(t, ok)
	assert.Equal(t, filepath.Join("tools", "win64", "protoc.exe"), protoc)
}

func TestResolverUnsupportedHost(t *testing.T) {
	r := NewResolver(fakeHost("plan9", "amd64"), "")

	_, ok := r.ProtocPath()
	assert.False(t, ok)
	_, ok = r.MinitablePluginPath()
	assert.False(t, ok)
	_, ok = r.BinDir()
	assert.False(t, ok)
}

func TestResolverRootPrecedence(t *testing.T) {
	p := fakeHost("darwin", "arm64")
	p.GetenvStub = func(key string) string {
		if key == constants.EnvToolsDir {
			return "/env/tools"
		}
		return ""
	}

	r := NewResolver(p, "/config/tools")
	assert.Equal(t, "/env/tools", r.Root())

	p.GetenvStub = nil
	assert.Equal(t, "/config/tools", r.Root())

	r = NewResolver(p, "")
	assert.Equal(t, filepath.Join("/opt", "upbgen", "bin"), r.Root())

	p.ExecutableReturns("", errors.New("unknown"))
	assert.Equal(t, "bin", r.Root())
}
