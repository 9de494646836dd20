package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

type colorFunc func(string, ...interface{}) string

// reporter prints short status lines for a developer watching the build.
// Structured diagnostics go through pkg/logger instead.
type reporter struct {
	out io.Writer
}

func (r reporter) Info(format string, args ...interface{}) {
	r.report(color.GreenString, "INFO", format, args...)
}

func (r reporter) Warn(format string, args ...interface{}) {
	r.report(color.YellowString, "WARN", format, args...)
}

func (r reporter) Error(format string, args ...interface{}) {
	r.report(color.RedString, "ERROR", format, args...)
}

func (r reporter) report(c colorFunc, lvl string, format string, args ...interface{}) {
	_, _ = fmt.Fprintf(r.out, "%s: %s\n", c(lvl), fmt.Sprintf(format, args...))
}
