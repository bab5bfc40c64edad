// Package logging builds the application logger. Entries always go to an
// in-memory Pool and optionally to a JSON log file; nothing is written to
// the terminal while the UI owns it.
package logging

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	TimeStampKey = "timestamp"
	MessageKey   = "message"
)

// Options configures New.
type Options struct {
	// FilePath, when set, receives JSON entries.
	FilePath string
	// Debug enables V(1) output.
	Debug bool
	// MaxEntries bounds the in-memory pool.
	MaxEntries int
}

// New returns the logger, the pool backing the log viewer and a function
// that flushes and closes the log file.
func New(opts Options) (logr.Logger, *Pool, func() error, error) {
	pool := NewPool(opts.MaxEntries)

	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if opts.Debug {
		level.SetLevel(zapcore.DebugLevel)
	}

	consoleCfg := zap.NewDevelopmentEncoderConfig()
	consoleCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	consoleCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	consoleCfg.CallerKey = zapcore.OmitKey
	consoleCfg.StacktraceKey = zapcore.OmitKey

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), zapcore.Lock(pool), level),
	}

	closeFn := func() error { return nil }
	if opts.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(opts.FilePath), 0o755); err != nil {
			return logr.Discard(), nil, nil, fmt.Errorf("creating log dir: %w", err)
		}
		f, err := os.OpenFile(opts.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return logr.Discard(), nil, nil, fmt.Errorf("opening log file: %w", err)
		}

		fileCfg := zap.NewProductionEncoderConfig()
		fileCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		fileCfg.TimeKey = TimeStampKey
		fileCfg.MessageKey = MessageKey

		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(fileCfg), zapcore.Lock(f), level))
		closeFn = func() error {
			return errors.Join(f.Sync(), f.Close())
		}
	}

	zl := zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	return zapr.NewLogger(zl), pool, func() error {
		_ = zl.Sync()
		return closeFn()
	}, nil
}
