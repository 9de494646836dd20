package errors

import (
	"bytes"
	"context"
	stderr "errors"
	"fmt"
	"testing"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name             string
		err              error
		expectedCategory ErrorCategory
		expectedSeverity ErrorSeverity
	}{
		{
			name:             "unsupported platform",
			err:              NewUnsupportedPlatformError("protoc", "freebsd", "riscv64"),
			expectedCategory: CategoryToolchain,
			expectedSeverity: SeverityFatal,
		},
		{
			name:             "version mismatch",
			err:              NewVersionMismatchError("4.31.1", "4.29.0"),
			expectedCategory: CategoryConfiguration,
			expectedSeverity: SeverityFatal,
		},
		{
			name:             "generator failure",
			err:              WrapToolError("protoc", "run", fmt.Errorf("%w: exit status 1", ErrGeneratorFailed)),
			expectedCategory: CategoryGeneration,
			expectedSeverity: SeverityFatal,
		},
		{
			name:             "invalid input path inside filesystem error",
			err:              NewInvalidInputError(""),
			expectedCategory: CategoryValidation,
			expectedSeverity: SeverityFatal,
		},
		{
			name:             "missing generated file",
			err:              NewMissingGeneratedFileError("out/a.upb.h"),
			expectedCategory: CategoryGeneration,
			expectedSeverity: SeverityRecoverable,
		},
		{
			name:             "tool did not start",
			err:              WrapToolError("protoc", "start", fmt.Errorf("%w: no such file", ErrToolStart)),
			expectedCategory: CategoryToolchain,
			expectedSeverity: SeverityRecoverable,
		},
		{
			name:             "plain filesystem error",
			err:              WrapFilesystemError("/out", "write", stderr.New("disk full")),
			expectedCategory: CategoryFilesystem,
			expectedSeverity: SeverityRecoverable,
		},
		{
			name:             "config error without sentinel",
			err:              WrapConfigError("upbgen", "tools", stderr.New("odd")),
			expectedCategory: CategoryConfiguration,
			expectedSeverity: SeverityFatal,
		},
		{
			name:             "context canceled",
			err:              context.Canceled,
			expectedCategory: CategoryCanceled,
			expectedSeverity: SeverityRecoverable,
		},
		{
			name:             "unknown",
			err:              stderr.New("something else"),
			expectedCategory: CategoryUnknown,
			expectedSeverity: SeverityRecoverable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classified := ClassifyError(tt.err)
			if classified.Category != tt.expectedCategory {
				t.Errorf("Category = %v, want %v", classified.Category, tt.expectedCategory)
			}
			if classified.Severity != tt.expectedSeverity {
				t.Errorf("Severity = %v, want %v", classified.Severity, tt.expectedSeverity)
			}
			if classified.UserMsg == "" {
				t.Error("UserMsg should not be empty")
			}
		})
	}
}

func TestClassifyErrorNil(t *testing.T) {
	if ClassifyError(nil) != nil {
		t.Error("ClassifyError(nil) should be nil")
	}
	if GetUserMessage(nil) != "" {
		t.Error("GetUserMessage(nil) should be empty")
	}
}

func TestClassifyErrorKeepsExplicitClassification(t *testing.T) {
	explicit := &ClassifiedError{
		Err:      stderr.New("cannot write stub"),
		Category: CategoryFilesystem,
		Severity: SeverityFatal,
		UserMsg:  "stub write failed",
	}
	wrapped := fmt.Errorf("compile: %w", explicit)

	if ClassifyError(wrapped) != explicit {
		t.Error("an existing ClassifiedError should be returned as is")
	}
	if !IsFatal(wrapped) {
		t.Error("explicitly fatal error should be fatal")
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, ExitOK},
		{"recoverable", NewMissingGeneratedFileError("a.upb.h"), ExitRecoverable},
		{"fatal", NewVersionMismatchError("1.0.0", "2.0.0"), ExitFatal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFormatErrorForLogging(t *testing.T) {
	if FormatErrorForLogging(nil) != nil {
		t.Error("nil error should format to nil")
	}

	fields := FormatErrorForLogging(NewMissingGeneratedFileError("out/x.upb.h"))
	if fields["severity"] != "recoverable" || fields["category"] != "generation" {
		t.Errorf("unexpected fields: %v", fields)
	}
	if fields["path"] != "out/x.upb.h" {
		t.Errorf("path field = %v", fields["path"])
	}

	fields = FormatErrorForLogging(NewUnsupportedPlatformError("protoc", "js", "wasm"))
	if fields["tool"] != "protoc" {
		t.Errorf("tool field = %v", fields["tool"])
	}
}

type recordingLogger struct {
	buf bytes.Buffer
}

func (r *recordingLogger) Debug(msg string, kv ...interface{}) {
	fmt.Fprint(&r.buf, msg)
	for _, v := range kv {
		fmt.Fprintf(&r.buf, " %v", v)
	}
}

func TestLogError(t *testing.T) {
	rec := &recordingLogger{}

	LogError(rec, nil, "ignored")
	if rec.buf.Len() != 0 {
		t.Error("LogError(nil) should not log")
	}

	LogError(rec, NewVersionMismatchError("1.0.0", "2.0.0"), "build aborted")
	if !bytes.Contains(rec.buf.Bytes(), []byte("build aborted")) || !bytes.Contains(rec.buf.Bytes(), []byte("fatal")) {
		t.Errorf("unexpected log output: %q", rec.buf.String())
	}
}
