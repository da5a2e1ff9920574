// Package logging provides the shared structured logger for the planner.
//
// All packages log through logr with a zap backend. Verbosity levels are
// named constants rather than bare integers so call sites read as
// logger.V(logging.DEBUG) instead of logger.V(1).
package logging

import (
	"context"
	"sync"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels for logr.V().
const (
	INFO  = 0
	DEBUG = 1
	TRACE = 2
)

var (
	mu   sync.RWMutex
	root = logr.Discard()
)

// NewLogger builds a logr.Logger backed by zap at the given verbosity.
// Levels above INFO map to negative zap levels, which is how zapr encodes
// logr verbosity.
func NewLogger(verbosity int, development bool) logr.Logger {
	var cfg zap.Config
	if development {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(zapcore.Level(-verbosity))
	zl, err := cfg.Build()
	if err != nil {
		return logr.Discard()
	}
	return zapr.NewLogger(zl)
}

// SetLogger replaces the package-level root logger.
func SetLogger(l logr.Logger) {
	mu.Lock()
	defer mu.Unlock()
	root = l
}

// Log returns the package-level root logger.
func Log() logr.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return root
}

// NewTestLogger installs a development logger at TRACE verbosity and
// returns it. Intended for test suites.
func NewTestLogger() logr.Logger {
	l := NewLogger(TRACE, true)
	SetLogger(l)
	return l
}

// IntoContext returns a copy of ctx carrying the given logger.
func IntoContext(ctx context.Context, l logr.Logger) context.Context {
	return logr.NewContext(ctx, l)
}

// FromContext returns the logger carried by ctx, falling back to the
// package-level root logger.
func FromContext(ctx context.Context) logr.Logger {
	if l, err := logr.FromContext(ctx); err == nil {
		return l
	}
	return Log()
}
