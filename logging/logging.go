// Package logging holds the process wide logger used by every engine package.
//
// By default records go to stderr through a text handler. Tests swap the logger
// with SetLogger to count warnings and errors (see logging/logtest).
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"
)

var (
	loggerPtr atomic.Pointer[slog.Logger]

	// exit is called by Fatal after logging
	exit = os.Exit
)

func init() {
	loggerPtr.Store(newDefaultLogger())
}

func newDefaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

// SetLogger replaces the logger. Passing nil restores the default stderr logger.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newDefaultLogger()
	}
	loggerPtr.Store(l)
}

func Logger() *slog.Logger {
	return loggerPtr.Load()
}

func Debug(msg string, args ...any) {
	Logger().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	Logger().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	Logger().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	Logger().Error(msg, args...)
}

// Fatal logs at error level then terminates the process with exit code 1.
// It is reserved for conditions where carrying on would touch an uninitialized GL context.
func Fatal(msg string, args ...any) {
	Logger().Error(msg, args...)
	exit(1)
}

// Fatalf is Fatal with a formatted message
func Fatalf(format string, args ...any) {
	Fatal(fmt.Sprintf(format, args...))
}

// SetExitFunc replaces what Fatal calls after logging and returns the previous one
func SetExitFunc(f func(code int)) (old func(code int)) {
	old = exit
	exit = f
	return old
}
