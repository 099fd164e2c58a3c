// Package logger provides diagnostic logging for textcorpus. Debug and Info
// lines are only written in verbose mode; Warn and Error always are.
package logger

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"sync"
)

// Logger is a printf-style logging contract.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

type writerLogger struct {
	mu      sync.Mutex
	out     io.Writer
	verbose bool
}

// New returns a logger writing to w. A nil w means os.Stderr.
func New(w io.Writer, verbose bool) Logger {
	if w == nil {
		w = os.Stderr
	}
	return &writerLogger{out: w, verbose: verbose}
}

func (l *writerLogger) Debug(format string, args ...any) {
	if l.verbose {
		l.write("DEBUG", format, args)
	}
}

func (l *writerLogger) Info(format string, args ...any) {
	if l.verbose {
		l.write("INFO", format, args)
	}
}

func (l *writerLogger) Warn(format string, args ...any) { l.write("WARN", format, args) }

func (l *writerLogger) Error(format string, args ...any) { l.write("ERROR", format, args) }

func (l *writerLogger) write(level, format string, args []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "["+level+"] "+format+"\n", args...)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// Nop returns a logger that discards all output.
func Nop() Logger { return nopLogger{} }

// OrNop returns l when non-nil, otherwise a no-op logger.
func OrNop(l Logger) Logger {
	if l == nil {
		return Nop()
	}
	if v := reflect.ValueOf(l); v.Kind() == reflect.Ptr && v.IsNil() {
		return Nop()
	}
	return l
}
