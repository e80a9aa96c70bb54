package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// LogFilePath is the default log file, relative to the working directory (project root when run via go run ./cmd/viewer).
const LogFilePath = "logs/viewer.txt"

const timestampFormat = "2006-01-02 15:04:05"

// Logger is the viewer's diagnostic stream. It writes through logrus to Out (stderr by default),
// keeps every emitted line in memory and, after AppendToFile, also appends each line to a file on disk.
type Logger struct {
	*logrus.Logger

	mu    sync.Mutex
	lines []string
}

// New returns a Logger writing text lines to out at info level. A nil out means stderr.
func New(out io.Writer) *Logger {
	if out == nil {
		out = os.Stderr
	}
	l := &Logger{Logger: logrus.New(), lines: make([]string, 0)}
	l.Out = out
	l.Formatter = &logrus.TextFormatter{FullTimestamp: true, TimestampFormat: timestampFormat}
	l.AddHook(&historyHook{l: l, format: plainFormatter()})
	return l
}

// SetLevelName sets the minimum level from its name ("debug", "info", "warn", ...).
func (l *Logger) SetLevelName(name string) error {
	lvl, err := logrus.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	l.SetLevel(lvl)
	return nil
}

// AppendToFile makes every following entry also append to path. The directory is created if needed.
func (l *Logger) AppendToFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("log file: %w", err)
	}
	l.AddHook(&fileHook{path: path, format: plainFormatter()})
	return nil
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

func plainFormatter() logrus.Formatter {
	return &logrus.TextFormatter{DisableColors: true, FullTimestamp: true, TimestampFormat: timestampFormat}
}

// historyHook stores each entry as one plain-text line.
type historyHook struct {
	l      *Logger
	format logrus.Formatter
}

func (h *historyHook) Levels() []logrus.Level { return logrus.AllLevels }

func (h *historyHook) Fire(e *logrus.Entry) error {
	b, err := h.format.Format(e)
	if err != nil {
		return err
	}
	line := strings.TrimRight(string(b), "\n")
	h.l.mu.Lock()
	h.l.lines = append(h.l.lines, line)
	h.l.mu.Unlock()
	return nil
}

// fileHook opens, appends and closes the file per entry so nothing needs closing on exit.
type fileHook struct {
	path   string
	format logrus.Formatter
}

func (h *fileHook) Levels() []logrus.Level { return logrus.AllLevels }

func (h *fileHook) Fire(e *logrus.Entry) error {
	b, err := h.format.Format(e)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(h.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	_, err = f.Write(b)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
