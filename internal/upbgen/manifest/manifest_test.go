package manifest

import (
	stderrors "errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/ehsaniara/upbgen/pkg/errors"
	"github.com/ehsaniara/upbgen/pkg/platform"
	"github.com/ehsaniara/upbgen/pkg/platform/platformfakes"
)

func TestWriteAndRead(t *testing.T) {
	p := platform.NewPlatform()
	path := filepath.Join(t.TempDir(), "upbgen.manifest.yml")

	want := &Manifest{
		Version:      "4.31.1",
		Library:      "widgets_upb_gen_code",
		LibraryPath:  "out/libwidgets_upb_gen_code.a",
		Inputs:       []string{"a.proto"},
		Includes:     []string{"protos"},
		Generated:    []string{"out/a.upb.h", "out/a.upb_minitable.c"},
		Tracked:      []string{"protos"},
		Dependencies: []string{"google/protobuf/timestamp.proto"},
	}
	require.NoError(t, Write(p, path, want))

	data, err := p.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "library: widgets_upb_gen_code")
	assert.NotContains(t, string(data), "descriptor_set", "empty optional fields are omitted")

	got, err := Read(p, path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestWriteFailure(t *testing.T) {
	p := &platformfakes.FakePlatform{}
	p.WriteFileReturns(stderrors.New("read-only file system"))

	err := Write(p, "out/upbgen.manifest.yml", &Manifest{})
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrFilesystemFailed))
	assert.False(t, errors.IsFatal(err))
}

func TestDependencies(t *testing.T) {
	set := &descriptorpb.FileDescriptorSet{
		File: []*descriptorpb.FileDescriptorProto{
			{Name: proto.String("google/protobuf/timestamp.proto")},
			{Name: proto.String("common/money.proto")},
			{
				Name:       proto.String("shop/order.proto"),
				Dependency: []string{"google/protobuf/timestamp.proto", "common/money.proto"},
			},
			{
				Name:       proto.String("shop/cart.proto"),
				Dependency: []string{"common/money.proto"},
			},
		},
	}
	data, err := proto.Marshal(set)
	require.NoError(t, err)

	p := &platformfakes.FakePlatform{}
	p.ReadFileReturns(data, nil)

	deps, err := Dependencies(p, "out/widgets.pb")
	require.NoError(t, err)
	assert.Equal(t, []string{"common/money.proto", "google/protobuf/timestamp.proto"}, deps)
	assert.Equal(t, "out/widgets.pb", p.ReadFileArgsForCall(0))
}

func TestDependenciesErrors(t *testing.T) {
	p := &platformfakes.FakePlatform{}

	p.ReadFileReturns(nil, stderrors.New("no such file"))
	_, err := Dependencies(p, "missing.pb")
	assert.True(t, stderrors.Is(err, errors.ErrFilesystemFailed))

	p.ReadFileReturns([]byte{0xff, 0xff, 0xff}, nil)
	_, err = Dependencies(p, "garbage.pb")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a FileDescriptorSet")
}
