package version

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ehsaniara/upbgen/pkg/errors"
)

func withVersion(t *testing.T, v string) {
	t.Helper()
	saved := Version
	Version = v
	t.Cleanup(func() { Version = saved })
}

func TestSame(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"4.31.1", "4.31.1", true},
		{"v4.31.1", "4.31.1", true},
		{"4.31.1", "4.31.1+build.7", true},
		{"4.31.1", "4.31.0", false},
		{"4.31.1-rc1", "4.31.1-rc1", true},
		{"4.31.1-rc1", "4.31.1", false},
		{"4.31", "4.31.0", false},
		{"main", "main", true},
		{"main", "4.31.1", false},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Same(tt.a, tt.b))
		})
	}
}

func TestCheckCompatible(t *testing.T) {
	withVersion(t, "4.31.1")

	assert.NoError(t, CheckCompatible("4.31.1"))

	err := CheckCompatible("4.30.0")
	assert.True(t, stderrors.Is(err, errors.ErrVersionMismatch))
	assert.True(t, errors.IsFatal(err))
	assert.Equal(t, "upbgen version 4.31.1 does not match protobuf version 4.30.0", err.Error())
}

func TestGetBuildInfo(t *testing.T) {
	withVersion(t, "4.31.1")

	info := GetBuildInfo()
	assert.Equal(t, "4.31.1", info.Version)
	assert.Equal(t, "4.31.1", info.UpbRuntime)
	assert.Equal(t, "upbgen", info.Component)
	assert.NotEmpty(t, info.GoVersion)
}

func TestGetVersionFallbacks(t *testing.T) {
	withVersion(t, "")
	savedTag, savedCommit := GitTag, GitCommit
	t.Cleanup(func() { GitTag, GitCommit = savedTag, savedCommit })

	GitTag, GitCommit = "v4.31.1", "0123456"
	assert.Equal(t, "v4.31.1", GetVersion())
	assert.NoError(t, CheckCompatible("4.31.1"))

	GitTag = "unknown"
	assert.Equal(t, "dev-0123456", GetVersion())
	assert.Error(t, CheckCompatible("4.31.1"))
}

func TestGetShortVersion(t *testing.T) {
	withVersion(t, "4.31.1")
	savedCommit := GitCommit
	t.Cleanup(func() { GitCommit = savedCommit })

	GitCommit = "unknown"
	assert.Equal(t, "4.31.1", GetShortVersion())

	GitCommit = "0123456789abcdef"
	assert.Equal(t, "4.31.1 (0123456)", GetShortVersion())
}

func TestGetLongVersion(t *testing.T) {
	withVersion(t, "4.31.1")

	out := GetLongVersion()
	assert.True(t, strings.HasPrefix(out, "upbgen version 4.31.1"))
	assert.Contains(t, out, "upb runtime: 4.31.1 (DEP_UPB_VERSION must match)\n")
	assert.Contains(t, out, "Platform: ")
}
