package logging_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/usharplibs/engine/logging"
	"github.com/usharplibs/engine/logging/logtest"
)

func TestRecorderCountsLevels(t *testing.T) {

	rec := logtest.Install(t)

	logging.Info("info")
	logging.Warn("warn 1")
	logging.Warn("warn 2")
	logging.Error("err")

	assert.Equal(t, 1, rec.Count(slog.LevelInfo))
	assert.Equal(t, 2, rec.Warnings())
	assert.Equal(t, 1, rec.Errors())

	rec.Reset()
	assert.Empty(t, rec.Entries)
}

func TestFatalCallsExit(t *testing.T) {

	rec := logtest.Install(t)

	code := -1
	old := logging.SetExitFunc(func(c int) { code = c })
	defer logging.SetExitFunc(old)

	logging.Fatalf("cannot continue: %d", 3)

	assert.Equal(t, 1, code)
	assert.Equal(t, 1, rec.Errors())
	assert.Equal(t, "cannot continue: 3", rec.Entries[0].Message)
}

func TestSetLoggerNilRestoresDefault(t *testing.T) {
	logging.SetLogger(nil)
	assert.NotNil(t, logging.Logger())
}
