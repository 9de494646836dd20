// Package cgo renders the Go file that links a cgo package against the
// generated upb library.
package cgo

import (
	"bytes"
	"fmt"
	"go/format"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/ehsaniara/upbgen/pkg/constants"
	"github.com/ehsaniara/upbgen/pkg/errors"
	"github.com/ehsaniara/upbgen/pkg/platform"
)

// Stub describes one linkage file.
type Stub struct {
	// Path is where the file is written. Its directory anchors ${SRCDIR}.
	Path        string
	Package     string
	Version     string
	IncludeDirs []string
	LibDir      string
	// Library is the archive name without the lib prefix and .a suffix.
	Library string
}

const stubTemplate = `// Code generated by upbgen {{ .Version }}. DO NOT EDIT.

//go:build cgo

package {{ .Package | trim }}

/*
{{- range .IncludeDirs | uniq }}
#cgo CFLAGS: -I{{ cgoPath . }}
{{- end }}
#cgo LDFLAGS: -L{{ cgoPath .LibDir }} -l{{ .Library }}
*/
import "C"
`

// Render returns the gofmt-ed stub source.
func Render(s Stub) ([]byte, error) {
	if strings.TrimSpace(s.Package) == "" {
		return nil, errors.NewMissingEnvError(constants.EnvPackageName, "the cgo stub needs a package name")
	}
	if s.Library == "" {
		return nil, fmt.Errorf("cgo stub %s: library name is empty", s.Path)
	}

	anchor, err := filepath.Abs(filepath.Dir(s.Path))
	if err != nil {
		return nil, errors.NewFilesystemError(s.Path, "resolve", err)
	}

	funcs := sprig.TxtFuncMap()
	funcs["cgoPath"] = func(path string) (string, error) {
		return cgoPath(anchor, path)
	}

	tmpl, err := template.New("stub").Funcs(funcs).Parse(stubTemplate)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, s); err != nil {
		return nil, fmt.Errorf("render cgo stub: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format cgo stub: %w", err)
	}
	return src, nil
}

// Write renders s and writes it to s.Path.
func Write(p platform.Platform, s Stub) error {
	src, err := Render(s)
	if err != nil {
		return err
	}
	if err := p.WriteFile(s.Path, src, constants.DefaultFileMode); err != nil {
		return errors.NewFilesystemError(s.Path, "write", err)
	}
	return nil
}

// cgoPath expresses path relative to ${SRCDIR} when it lives under anchor
// and as an absolute path otherwise. Paths with spaces are quoted.
func cgoPath(anchor, path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	out := filepath.ToSlash(abs)
	if rel, err := filepath.Rel(anchor, abs); err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		if rel == "." {
			out = "${SRCDIR}"
		} else {
			out = "${SRCDIR}/" + filepath.ToSlash(rel)
		}
	}

	if strings.ContainsAny(out, " \t") {
		return strconv.Quote(out), nil
	}
	return out, nil
}
