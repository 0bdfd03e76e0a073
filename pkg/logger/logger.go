package logger

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Aliases so callers don't import logrus directly.
type Logger = logrus.Logger
type LogEntry = logrus.Entry
type Fields = logrus.Fields

var rootLogger = logrus.StandardLogger()

// Configure sets the global level and output format ("text" or "json").
func Configure(level, format string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	root().SetLevel(lvl)

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		root().SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		root().SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format %q", format)
	}
	return nil
}

// ParseLevel accepts logrus level names; empty means info.
func ParseLevel(level string) (logrus.Level, error) {
	if strings.TrimSpace(level) == "" {
		return logrus.InfoLevel, nil
	}
	return logrus.ParseLevel(level)
}

// SetOutput redirects the root logger.
func SetOutput(w io.Writer) {
	root().SetOutput(w)
}

// Root returns the shared logger.
func Root() *Logger {
	return root()
}

// SetRoot makes the shared logger behave like l: its output, formatter,
// level, hooks and caller reporting are copied onto the root. Component
// loggers created earlier with Named keep pointing at the root, so they pick
// the change up. Passing nil restores logrus defaults.
func SetRoot(l *Logger) {
	if l == nil {
		l = logrus.New()
	}
	r := root()
	r.SetOutput(l.Out)
	r.SetFormatter(l.Formatter)
	r.SetLevel(l.GetLevel())
	r.SetReportCaller(l.ReportCaller)
	r.ReplaceHooks(l.Hooks)
}

// Named returns an entry tagged with a component field.
func Named(component string) *LogEntry {
	entry := logrus.NewEntry(root())
	if component != "" {
		entry = entry.WithField("component", component)
	}
	return entry
}

func Infof(format string, args ...any) {
	root().Infof(format, args...)
}

func Warnf(format string, args ...any) {
	root().Warnf(format, args...)
}

func Fatalf(format string, args ...any) {
	root().Fatalf(format, args...)
}

func root() *logrus.Logger {
	if rootLogger == nil {
		rootLogger = logrus.StandardLogger()
	}
	return rootLogger
}
