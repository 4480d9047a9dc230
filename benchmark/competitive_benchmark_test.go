package benchmark

import (
	"io"
	"log/slog"
	"testing"

	"github.com/rs/zerolog"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/fanlog/fanlog/core"
	"github.com/fanlog/fanlog/logger"
)

// ---------------------------------------------------------------------------
// Helpers – identical sink for every framework (io.Discard / no-op target)
// ---------------------------------------------------------------------------

// newFanlogLogger returns a logger dispatching to a no-op target.
func newFanlogLogger() *logger.Logger {
	l := logger.New()
	l.AddTarget(newNoopTarget())
	l.SetLevel(core.TraceLevel)
	return l
}

// newZapLogger returns a zap.SugaredLogger writing to io.Discard.
func newZapLogger() *zap.SugaredLogger {
	enc := zapcore.NewConsoleEncoder(zap.NewProductionEncoderConfig())
	c := zapcore.NewCore(enc, zapcore.AddSync(io.Discard), zap.DebugLevel)
	return zap.New(c).Sugar()
}

// newZerologLogger returns a zerolog.Logger writing to io.Discard.
func newZerologLogger() zerolog.Logger {
	return zerolog.New(io.Discard).Level(zerolog.TraceLevel)
}

// newSlogLogger returns an slog.Logger writing to io.Discard.
func newSlogLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// ---------------------------------------------------------------------------
// Formatted message, no fields
// ---------------------------------------------------------------------------

func BenchmarkFormatted_Fanlog(b *testing.B) {
	l := newFanlogLogger()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Infof("bench", "user %s logged in with id %d", "alice", 123)
	}
}

func BenchmarkFormatted_Zap(b *testing.B) {
	l := newZapLogger()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Infof("user %s logged in with id %d", "alice", 123)
	}
}

func BenchmarkFormatted_Zerolog(b *testing.B) {
	l := newZerologLogger()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info().Msgf("user %s logged in with id %d", "alice", 123)
	}
}

func BenchmarkFormatted_Slog(b *testing.B) {
	l := newSlogLogger()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info("user logged in", "user", "alice", "id", 123)
	}
}

// ---------------------------------------------------------------------------
// Filtered-out record
// ---------------------------------------------------------------------------

func BenchmarkFiltered_Fanlog(b *testing.B) {
	l := newFanlogLogger()
	l.SetLevel(core.ErrorLevel)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Debugf("bench", "dropped %d", i)
	}
}

func BenchmarkFiltered_Zap(b *testing.B) {
	enc := zapcore.NewConsoleEncoder(zap.NewProductionEncoderConfig())
	c := zapcore.NewCore(enc, zapcore.AddSync(io.Discard), zap.ErrorLevel)
	l := zap.New(c).Sugar()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Debugf("dropped %d", i)
	}
}

func BenchmarkFiltered_Zerolog(b *testing.B) {
	l := zerolog.New(io.Discard).Level(zerolog.ErrorLevel)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Debug().Msgf("dropped %d", i)
	}
}
