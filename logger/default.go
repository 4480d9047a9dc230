package logger

import (
	"context"
	"sync"
)

// The process-wide current-logger slot. The host populates and tears
// it down; nothing in this package writes to it implicitly, so it
// starts unset and Default returns nil until SetDefault is called.
var (
	defaultMu     sync.RWMutex
	defaultLogger *Logger
)

// Default returns the host-populated process logger, or nil when the
// slot is unset.
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault stores l in the process slot. Passing nil clears the
// slot. Only the slot access is synchronized, not the Logger itself.
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

type ctxKey struct{}

// NewContext returns a copy of ctx carrying l. Passing the Logger
// explicitly — as a parameter or through the context — is preferred
// over the process slot for anything but the deepest call sites.
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the Logger carried by ctx, falling back to the
// process slot. It returns nil when neither is set.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return Default()
}
