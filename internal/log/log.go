// Package log is the ambient logger for this module, a thin wrapper around
// zap following drand/drand's common/log package: a Logger interface over a
// *zap.SugaredLogger, a package-level default guarded by sync.Once, and an
// environment variable that raises the default level for test runs.
package log

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the subset of zap's sugared API this module uses.
type Logger interface {
	Debug(keyvals ...interface{})
	Info(keyvals ...interface{})
	Warn(keyvals ...interface{})
	Error(keyvals ...interface{})
	With(keyvals ...interface{}) Logger
}

type log struct {
	*zap.SugaredLogger
}

func (l *log) With(args ...interface{}) Logger {
	return &log{l.SugaredLogger.With(args...)}
}

const (
	// DebugLevel enables debug-and-above logging.
	DebugLevel = int(zapcore.DebugLevel)
	// InfoLevel enables info-and-above logging (the default).
	InfoLevel = int(zapcore.InfoLevel)
)

// DefaultLevel is consulted the first time DefaultLogger is called.
var DefaultLevel = InfoLevel

//nolint:gochecknoinits // overwrite the default level before the logger is built
func init() {
	if v, ok := os.LookupEnv("GOTC_TEST_LOGS"); ok && v == "DEBUG" {
		DefaultLevel = DebugLevel
	}
}

var (
	defaultLogger     Logger
	defaultLoggerOnce sync.Once
)

// DefaultLogger returns the process-wide logger, built lazily at DefaultLevel.
func DefaultLogger() Logger {
	defaultLoggerOnce.Do(func() {
		defaultLogger = New(DefaultLevel)
	})
	return defaultLogger
}

// New builds a logger at the given zapcore level.
func New(level int) Logger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.Level(level))
	zl, err := cfg.Build()
	if err != nil {
		// Falls back to a no-op logger; logging must never crash the
		// library it's attached to.
		zl = zap.NewNop()
	}
	return &log{zl.Sugar()}
}
