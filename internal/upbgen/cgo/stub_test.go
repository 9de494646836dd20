package cgo

import (
	stderrors "errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ehsaniara/upbgen/pkg/errors"
	"github.com/ehsaniara/upbgen/pkg/platform/platformfakes"
)

func TestRender(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(root, "protobuf_generated")

	src, err := Render(Stub{
		Path:        filepath.Join(root, "upb_cgo.go"),
		Package:     " widgets ",
		Version:     "4.31.1",
		IncludeDirs: []string{"/usr/include/upb", out, "/usr/include/upb"},
		LibDir:      out,
		Library:     "widgets_upb_gen_code",
	})
	require.NoError(t, err)

	want := `// Code generated by upbgen 4.31.1. DO NOT EDIT.

//go:build cgo

package widgets

/*
#cgo CFLAGS: -I/usr/include/upb
#cgo CFLAGS: -I${SRCDIR}/protobuf_generated
#cgo LDFLAGS: -L${SRCDIR}/protobuf_generated -lwidgets_upb_gen_code
*/
import "C"
`
	assert.Equal(t, want, string(src))
}

func TestCgoPath(t *testing.T) {
	anchor := t.TempDir()

	tests := []struct {
		name string
		path string
		want string
	}{
		{"anchor itself", anchor, "${SRCDIR}"},
		{"below anchor", filepath.Join(anchor, "gen", "out"), "${SRCDIR}/gen/out"},
		{"outside anchor", "/opt/upb/include", "/opt/upb/include"},
		{"sibling with common prefix", anchor + "-other", filepath.ToSlash(anchor + "-other")},
		{"with space", "/opt/my upb", `"/opt/my upb"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cgoPath(anchor, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderRequiresPackageAndLibrary(t *testing.T) {
	_, err := Render(Stub{Path: "x.go", Library: "l"})
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrMissingEnv))

	_, err = Render(Stub{Path: "x.go", Package: "p"})
	require.Error(t, err)
}

func TestWrite(t *testing.T) {
	p := &platformfakes.FakePlatform{}

	err := Write(p, Stub{Path: "upb_cgo.go", Package: "widgets", LibDir: "out", Library: "widgets_upb_gen_code"})
	require.NoError(t, err)
	require.Equal(t, 1, p.WriteFileCallCount())

	path, data, _ := p.WriteFileArgsForCall(0)
	assert.Equal(t, "upb_cgo.go", path)
	assert.Contains(t, string(data), "-lwidgets_upb_gen_code")

	p.WriteFileReturns(stderrors.New("denied"))
	err = Write(p, Stub{Path: "upb_cgo.go", Package: "widgets", LibDir: "out", Library: "l"})
	assert.True(t, stderrors.Is(err, errors.ErrFilesystemFailed))
}
