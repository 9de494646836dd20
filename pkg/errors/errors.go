// Package errors provides the error vocabulary shared by the generation and
// compile steps. Every failure is a sentinel wrapped in a typed error so that
// callers can match with errors.Is / errors.As and classify it as fatal or
// recoverable.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// Tool resolution and invocation
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	ErrToolStart           = errors.New("tool could not be started")
	ErrGeneratorFailed     = errors.New("code generator exited with failure")
	ErrCompileFailed       = errors.New("c toolchain exited with failure")

	// Build environment
	ErrVersionMismatch = errors.New("version mismatch")
	ErrMissingEnv      = errors.New("required environment variable is not set")
	ErrInvalidConfig   = errors.New("invalid configuration")

	// Inputs and outputs
	ErrInvalidInputPath     = errors.New("invalid input path")
	ErrMissingGeneratedFile = errors.New("expected generated file does not exist")
	ErrFilesystemFailed     = errors.New("filesystem operation failed")
)

// ToolError represents a failure while resolving or running an external tool
type ToolError struct {
	Tool      string
	Operation string
	Err       error
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("tool %s: operation %s: %v", e.Tool, e.Operation, e.Err)
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

// FilesystemError represents an error related to filesystem operations
type FilesystemError struct {
	Path      string
	Operation string
	Err       error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("filesystem %s: operation %s: %v", e.Path, e.Operation, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}

// ConfigError represents an error related to configuration
type ConfigError struct {
	Component string
	Field     string
	Err       error
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config %s.%s: %v", e.Component, e.Field, e.Err)
	}
	return fmt.Sprintf("config %s: %v", e.Component, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// GeneratedFileError reports an artifact that generation should have
// produced but did not. Its message names the exact path.
type GeneratedFileError struct {
	Path string
}

func (e *GeneratedFileError) Error() string {
	return fmt.Sprintf("expected generated file %s does not exist", e.Path)
}

func (e *GeneratedFileError) Unwrap() error {
	return ErrMissingGeneratedFile
}

// VersionError carries both sides of a failed compatibility check.
type VersionError struct {
	Helper     string
	Dependency string
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("upbgen version %s does not match protobuf version %s", e.Helper, e.Dependency)
}

func (e *VersionError) Unwrap() error {
	return ErrVersionMismatch
}

// Error wrapping constructors
func WrapToolError(tool, operation string, err error) error {
	if err == nil {
		return nil
	}
	return &ToolError{Tool: tool, Operation: operation, Err: err}
}

func WrapFilesystemError(path, operation string, err error) error {
	if err == nil {
		return nil
	}
	return &FilesystemError{Path: path, Operation: operation, Err: err}
}

func WrapConfigError(component, field string, err error) error {
	if err == nil {
		return nil
	}
	return &ConfigError{Component: component, Field: field, Err: err}
}

// Error classification functions
func IsToolError(err error) bool {
	var te *ToolError
	return errors.As(err, &te)
}

func IsFilesystemError(err error) bool {
	var fe *FilesystemError
	return errors.As(err, &fe)
}

func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// Error extraction helpers
func GetTool(err error) (string, bool) {
	var te *ToolError
	if errors.As(err, &te) {
		return te.Tool, true
	}
	return "", false
}

// GetMissingPath returns the path named by a GeneratedFileError.
func GetMissingPath(err error) (string, bool) {
	var ge *GeneratedFileError
	if errors.As(err, &ge) {
		return ge.Path, true
	}
	return "", false
}

// Convenience functions for common error patterns
func NewUnsupportedPlatformError(tool, goos, goarch string) error {
	return WrapToolError(tool, "resolve", fmt.Errorf("%w: %s/%s", ErrUnsupportedPlatform, goos, goarch))
}

func NewMissingEnvError(name, hint string) error {
	if hint == "" {
		return WrapConfigError("env", name, ErrMissingEnv)
	}
	return WrapConfigError("env", name, fmt.Errorf("%w, %s", ErrMissingEnv, hint))
}

func NewVersionMismatchError(helper, dependency string) error {
	return &VersionError{Helper: helper, Dependency: dependency}
}

func NewInvalidInputError(path string) error {
	return WrapFilesystemError(path, "derive", fmt.Errorf("%w: %q has no file name", ErrInvalidInputPath, path))
}

func NewMissingGeneratedFileError(path string) error {
	return &GeneratedFileError{Path: path}
}

func NewFilesystemError(path, operation string, err error) error {
	return WrapFilesystemError(path, operation, fmt.Errorf("%w: %v", ErrFilesystemFailed, err))
}

func NewConfigError(component, field string, err error) error {
	return WrapConfigError(component, field, fmt.Errorf("%w: %v", ErrInvalidConfig, err))
}

// JoinErrors combines multiple errors into a single error, skipping nils.
func JoinErrors(errs ...error) error {
	var validErrs []error
	for _, err := range errs {
		if err != nil {
			validErrs = append(validErrs, err)
		}
	}

	if len(validErrs) == 0 {
		return nil
	}
	if len(validErrs) == 1 {
		return validErrs[0]
	}

	return &multiError{errors: validErrs}
}

// multiError represents multiple errors
type multiError struct {
	errors []error
}

func (e *multiError) Error() string {
	if len(e.errors) == 0 {
		return ""
	}

	msg := e.errors[0].Error()
	for _, err := range e.errors[1:] {
		msg += "; " + err.Error()
	}
	return msg
}

func (e *multiError) Unwrap() []error {
	return e.errors
}
