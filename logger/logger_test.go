package logger_test

import (
	"bytes"
	"errors"
	"log"
	"regexp"
	"testing"

	"github.com/fatih/color"
	"github.com/kestrel-web/kestrel/logger"
	"github.com/stretchr/testify/require"
)

var (
	logLevelRegexp = regexp.MustCompile(`^\[[A-Z]+\]`)
	fpRegexp       = regexp.MustCompile(`logger.*\.go:\d+`)
	msgRegexp      = regexp.MustCompile(`'(.*)'`)
)

func newTestLogger(w *bytes.Buffer) *log.Logger { return log.New(w, "", 0) }

func TestKestrelLoggerLevels(t *testing.T) {
	color.NoColor = true

	tcs := []struct {
		name     string
		fn       func(logger.Logger, string, *logger.LogContext)
		expected string
	}{
		{"Debug", func(l logger.Logger, msg string, ctx *logger.LogContext) { l.Debug(msg, ctx) }, "[DEBUG]"},
		{"Info", func(l logger.Logger, msg string, ctx *logger.LogContext) { l.Info(msg, ctx) }, "[INFO]"},
		{"Warn", func(l logger.Logger, msg string, ctx *logger.LogContext) { l.Warn(msg, ctx) }, "[WARN]"},
		{"Error", func(l logger.Logger, msg string, ctx *logger.LogContext) { l.Error(msg, ctx) }, "[ERROR]"},
		{"Fatal", func(l logger.Logger, msg string, ctx *logger.LogContext) { l.Fatal(msg, ctx) }, "[FATAL]"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			b := new(bytes.Buffer)
			l := logger.New(logger.WithLogger(newTestLogger(b)), logger.WithLevel(logger.LogLevelDebug))

			tc.fn(l, "such fun!", nil)

			line := b.String()
			require.Equal(t, tc.expected, logLevelRegexp.FindString(line))
			require.Regexp(t, fpRegexp, line)
			require.Equal(t, "'such fun!'", msgRegexp.FindString(line))
		})
	}
}

func TestKestrelLoggerSuppressesBelowLevel(t *testing.T) {
	color.NoColor = true

	b := new(bytes.Buffer)
	l := logger.New(logger.WithLogger(newTestLogger(b)), logger.WithLevel(logger.LogLevelError))

	l.Debug("quiet", nil)
	l.Info("quiet", nil)
	l.Warn("quiet", nil)
	require.Zero(t, b.Len())

	l.Error("loud", nil)
	require.Contains(t, b.String(), "'loud'")
}

func TestKestrelLoggerLogContext(t *testing.T) {
	color.NoColor = true

	b := new(bytes.Buffer)
	l := logger.New(logger.WithLogger(newTestLogger(b)), logger.WithLevel(logger.LogLevelDebug))

	l.Error("whoops", &logger.LogContext{
		Data:  map[string]any{"page": "page/home"},
		Error: errors.New("not found"),
	})

	line := b.String()
	require.Contains(t, line, "log_context:")
	require.Contains(t, line, `"page":"page/home"`)
	require.Contains(t, line, `"error":"not found"`)
}

func TestLogLevel(t *testing.T) {
	for _, tc := range []struct {
		input    string
		expected logger.LogLevel
	}{
		{"DEBUG", logger.LogLevelDebug},
		{"INFO", logger.LogLevelInfo},
		{"WARN", logger.LogLevelWarn},
		{"ERROR", logger.LogLevelError},
		{"FATAL", logger.LogLevelFatal},
		{"whatever", logger.LogLevelUnk},
	} {
		t.Run(tc.input, func(t *testing.T) {
			require.Equal(t, tc.expected, logger.NewLogLevel(tc.input))
			require.NotEmpty(t, tc.expected.String())
		})
	}
}
