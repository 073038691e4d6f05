// Package logging builds the shared diagnostic logger. All non-fatal
// conditions (skipped files, specimens with the wrong group count, missing
// columns) are surfaced through it; processing continues afterwards.
package logging

import (
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger writing to w, tagged with a per-run
// correlation ID. With quiet set, only errors are emitted.
func New(w io.Writer, quiet bool) *zap.SugaredLogger {
	level := zapcore.InfoLevel
	if quiet {
		level = zapcore.ErrorLevel
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = "" // diagnostics are for humans, not log aggregation
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		level,
	)
	return zap.New(core).Sugar().With("run", uuid.NewString()[:8])
}

// Nop returns a logger that discards everything. Handy in tests.
func Nop() *zap.SugaredLogger { return zap.NewNop().Sugar() }
