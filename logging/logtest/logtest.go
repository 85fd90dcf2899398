// Package logtest provides a slog handler that keeps every record in memory.
package logtest

import (
	"context"
	"log/slog"

	"github.com/usharplibs/engine/logging"
)

type Entry struct {
	Level   slog.Level
	Message string
}

// Recorder is a slog.Handler that stores records. It is not goroutine safe,
// which matches the single render thread the engine runs on.
type Recorder struct {
	Entries []Entry
}

func (r *Recorder) Enabled(context.Context, slog.Level) bool { return true }

func (r *Recorder) Handle(_ context.Context, rec slog.Record) error {
	r.Entries = append(r.Entries, Entry{Level: rec.Level, Message: rec.Message})
	return nil
}

func (r *Recorder) WithAttrs([]slog.Attr) slog.Handler { return r }
func (r *Recorder) WithGroup(string) slog.Handler      { return r }

// Count returns the number of records logged at exactly lvl
func (r *Recorder) Count(lvl slog.Level) int {
	n := 0
	for i := 0; i < len(r.Entries); i++ {
		if r.Entries[i].Level == lvl {
			n++
		}
	}
	return n
}

func (r *Recorder) Warnings() int { return r.Count(slog.LevelWarn) }
func (r *Recorder) Errors() int   { return r.Count(slog.LevelError) }

func (r *Recorder) Reset() {
	r.Entries = r.Entries[:0]
}

// Install makes a new Recorder the engine logger, restoring the default logger when the test ends
func Install(t interface{ Cleanup(func()) }) *Recorder {
	r := &Recorder{}
	logging.SetLogger(slog.New(r))
	t.Cleanup(func() { logging.SetLogger(nil) })
	return r
}
