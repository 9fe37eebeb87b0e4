package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
)

type contextKey string

const contextKeyCommand contextKey = "command"

var (
	mu  sync.Mutex
	out io.Writer = os.Stderr

	dumper = spew.ConfigState{
		Indent:                  "  ",
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		SortKeys:                true,
	}
)

// SetOutput redirects every log line to w.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

// SetNoColor disables or enables colored level tags.
func SetNoColor(disable bool) {
	color.NoColor = disable
}

// WithCommand adds the running command name to context for logging
func WithCommand(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, contextKeyCommand, name)
}

func getCommand(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if name, ok := ctx.Value(contextKeyCommand).(string); ok {
		return name
	}
	return ""
}

// formatLog formats log message with optional command name
func formatLog(command string, format string, a ...interface{}) string {
	msg := fmt.Sprintf(format, a...)
	if command != "" {
		return fmt.Sprintf("[cmd=%s] %s", command, msg)
	}
	return msg
}

func write(tag *color.Color, level string, msg string) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, "%s %s\n", tag.Sprint(level), msg)
}

var (
	infoTag  = color.New(color.FgWhite, color.BgGreen)
	warnTag  = color.New(color.FgWhite, color.BgYellow)
	errorTag = color.New(color.FgRed)
)

// Info log information
func Info(format string, a ...interface{}) {
	write(infoTag, "[INFO] ", fmt.Sprintf(format, a...))
}

// InfoWithContext logs information with context (includes command name if available)
func InfoWithContext(ctx context.Context, format string, a ...interface{}) {
	write(infoTag, "[INFO] ", formatLog(getCommand(ctx), format, a...))
}

// Warn log warning
func Warn(format string, a ...interface{}) {
	write(warnTag, "[WARN] ", fmt.Sprintf(format, a...))
}

// WarnWithContext logs warning with context (includes command name if available)
func WarnWithContext(ctx context.Context, format string, a ...interface{}) {
	write(warnTag, "[WARN] ", formatLog(getCommand(ctx), format, a...))
}

// Error log error
func Error(format string, a ...interface{}) {
	write(errorTag, "[Error]", fmt.Sprintf(format, a...))
}

// ErrorWithContext logs error with context (includes command name if available)
func ErrorWithContext(ctx context.Context, format string, a ...interface{}) {
	write(errorTag, "[Error]", formatLog(getCommand(ctx), format, a...))
}

// Struct dumps a for debugging.
func Struct(a ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	dumper.Fdump(out, a...)
}
