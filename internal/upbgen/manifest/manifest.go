// Package manifest records what one upbgen run consumed and produced, so a
// Makefile or CI job can decide whether generation has to run again.
package manifest

import (
	"fmt"
	"sort"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
	"gopkg.in/yaml.v3"

	"github.com/ehsaniara/upbgen/pkg/constants"
	"github.com/ehsaniara/upbgen/pkg/errors"
	"github.com/ehsaniara/upbgen/pkg/platform"
)

// Manifest is written as upbgen.manifest.yml in the output directory.
type Manifest struct {
	Version       string   `json:"version" yaml:"version"`
	Library       string   `json:"library" yaml:"library"`
	LibraryPath   string   `json:"library_path" yaml:"library_path"`
	Inputs        []string `json:"inputs" yaml:"inputs"`
	Includes      []string `json:"includes,omitempty" yaml:"includes,omitempty"`
	Generated     []string `json:"generated" yaml:"generated"`
	Tracked       []string `json:"tracked,omitempty" yaml:"tracked,omitempty"`
	DescriptorSet string   `json:"descriptor_set,omitempty" yaml:"descriptor_set,omitempty"`
	Dependencies  []string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
}

// Write marshals m to path.
func Write(p platform.Platform, path string, m *Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return errors.NewFilesystemError(path, "encode", err)
	}
	if err := p.WriteFile(path, data, constants.DefaultFileMode); err != nil {
		return errors.NewFilesystemError(path, "write", err)
	}
	return nil
}

// Read loads a manifest written by Write.
func Read(p platform.Platform, path string) (*Manifest, error) {
	data, err := p.ReadFile(path)
	if err != nil {
		return nil, errors.NewFilesystemError(path, "read", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.NewFilesystemError(path, "decode", err)
	}
	return &m, nil
}

// Dependencies decodes the descriptor set protoc wrote with
// --include_imports and returns every imported .proto name, sorted and
// without duplicates.
func Dependencies(p platform.Platform, descriptorSetPath string) ([]string, error) {
	data, err := p.ReadFile(descriptorSetPath)
	if err != nil {
		return nil, errors.NewFilesystemError(descriptorSetPath, "read", err)
	}

	var set descriptorpb.FileDescriptorSet
	if err := proto.Unmarshal(data, &set); err != nil {
		return nil, errors.NewFilesystemError(descriptorSetPath, "decode", fmt.Errorf("not a FileDescriptorSet: %w", err))
	}

	seen := make(map[string]struct{})
	for _, file := range set.GetFile() {
		for _, dep := range file.GetDependency() {
			seen[dep] = struct{}{}
		}
	}

	deps := make([]string, 0, len(seen))
	for dep := range seen {
		deps = append(deps, dep)
	}
	sort.Strings(deps)
	return deps, nil
}
