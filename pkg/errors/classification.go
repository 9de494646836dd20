package errors

import (
	"context"
	"errors"
)

// ErrorCategory groups errors by the part of the build that failed.
type ErrorCategory string

const (
	CategoryToolchain     ErrorCategory = "toolchain"
	CategoryConfiguration ErrorCategory = "configuration"
	CategoryValidation    ErrorCategory = "validation"
	CategoryGeneration    ErrorCategory = "generation"
	CategoryFilesystem    ErrorCategory = "filesystem"
	CategoryCanceled      ErrorCategory = "canceled"
	CategoryUnknown       ErrorCategory = "unknown"
)

// ErrorSeverity separates failures that must stop the build from those a
// caller may inspect and react to.
type ErrorSeverity string

const (
	SeverityFatal       ErrorSeverity = "fatal"
	SeverityRecoverable ErrorSeverity = "recoverable"
)

// Process exit codes used by the CLI.
const (
	ExitOK          = 0
	ExitRecoverable = 1
	ExitFatal       = 2
)

// ClassifiedError is an error with its category, severity and a short
// message suitable for printing to a developer running the build.
type ClassifiedError struct {
	Err      error
	Category ErrorCategory
	Severity ErrorSeverity
	UserMsg  string
}

func (e *ClassifiedError) Error() string {
	return e.Err.Error()
}

func (e *ClassifiedError) Unwrap() error {
	return e.Err
}

type rule struct {
	target   error
	category ErrorCategory
	severity ErrorSeverity
	msg      string
}

// Sentinels are checked before wrapper types: an invalid input path travels
// inside a FilesystemError but is still fatal.
var rules = []rule{
	{ErrUnsupportedPlatform, CategoryToolchain, SeverityFatal, "No bundled tools for this platform. Pass explicit tool paths."},
	{ErrVersionMismatch, CategoryConfiguration, SeverityFatal, "upbgen and the protobuf runtime must be the same version."},
	{ErrMissingEnv, CategoryConfiguration, SeverityFatal, "A required build environment variable is missing."},
	{ErrInvalidConfig, CategoryConfiguration, SeverityFatal, "Configuration error. Please check upbgen.yml and flags."},
	{ErrInvalidInputPath, CategoryValidation, SeverityFatal, "An input path has no file name."},
	{ErrGeneratorFailed, CategoryGeneration, SeverityFatal, "protoc reported an error. See its output above."},
	{ErrCompileFailed, CategoryToolchain, SeverityFatal, "Compiling the generated C code failed."},
	{ErrMissingGeneratedFile, CategoryGeneration, SeverityRecoverable, "A generated file is missing. Was generation run for every input?"},
	{ErrToolStart, CategoryToolchain, SeverityRecoverable, "A build tool could not be started. Check its path."},
	{context.Canceled, CategoryCanceled, SeverityRecoverable, "Operation was canceled."},
	{context.DeadlineExceeded, CategoryCanceled, SeverityRecoverable, "Operation timed out."},
}

// ClassifyError automatically classifies an error based on its type and content
func ClassifyError(err error) *ClassifiedError {
	if err == nil {
		return nil
	}

	var classified *ClassifiedError
	if errors.As(err, &classified) {
		return classified
	}

	for _, r := range rules {
		if errors.Is(err, r.target) {
			return &ClassifiedError{Err: err, Category: r.category, Severity: r.severity, UserMsg: r.msg}
		}
	}

	switch {
	case IsConfigError(err):
		return &ClassifiedError{
			Err:      err,
			Category: CategoryConfiguration,
			Severity: SeverityFatal,
			UserMsg:  "Configuration error. Please check upbgen.yml and flags.",
		}
	case IsFilesystemError(err):
		return &ClassifiedError{
			Err:      err,
			Category: CategoryFilesystem,
			Severity: SeverityRecoverable,
			UserMsg:  "Filesystem operation failed. Please check file permissions and paths.",
		}
	case IsToolError(err):
		return &ClassifiedError{
			Err:      err,
			Category: CategoryToolchain,
			Severity: SeverityRecoverable,
			UserMsg:  "A build tool failed.",
		}
	default:
		return &ClassifiedError{
			Err:      err,
			Category: CategoryUnknown,
			Severity: SeverityRecoverable,
			UserMsg:  "An unexpected error occurred.",
		}
	}
}

// IsFatal reports whether err must terminate the build.
func IsFatal(err error) bool {
	return GetSeverity(err) == SeverityFatal
}

// GetSeverity defaults to recoverable when nothing more specific applies.
func GetSeverity(err error) ErrorSeverity {
	classified := ClassifyError(err)
	if classified == nil {
		return SeverityRecoverable
	}
	return classified.Severity
}

func GetUserMessage(err error) string {
	classified := ClassifyError(err)
	if classified == nil {
		return ""
	}
	return classified.UserMsg
}

// ExitCode maps an error to the CLI exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if IsFatal(err) {
		return ExitFatal
	}
	return ExitRecoverable
}

// FormatErrorForLogging formats an error for structured logging
func FormatErrorForLogging(err error) map[string]interface{} {
	if err == nil {
		return nil
	}

	classified := ClassifyError(err)
	result := map[string]interface{}{
		"error":    err.Error(),
		"category": string(classified.Category),
		"severity": string(classified.Severity),
	}

	if tool, ok := GetTool(err); ok {
		result["tool"] = tool
	}
	if path, ok := GetMissingPath(err); ok {
		result["path"] = path
	}

	return result
}

// LogError logs err with its classification as key/value fields at debug
// level. The CLI already prints the user-facing message.
func LogError(logger interface{ Debug(string, ...interface{}) }, err error, msg string) {
	if err == nil {
		return
	}

	logData := FormatErrorForLogging(err)
	args := make([]interface{}, 0, len(logData)*2)
	for k, v := range logData {
		args = append(args, k, v)
	}

	logger.Debug(msg, args...)
}
