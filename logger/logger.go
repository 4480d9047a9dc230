package logger

import (
	"fmt"
	"time"

	"github.com/fanlog/fanlog/core"
	"github.com/fanlog/fanlog/target"
)

// timestampLayout is fixed width: locale-free date, time, and a
// three-digit millisecond fraction.
const timestampLayout = "01/02/06 15:04:05.000"

// frame punctuation shared by every record
var (
	frameOpen  = []byte("[ ")
	frameSep   = []byte(" ")
	frameClose = []byte(" ] ")
	frameNL    = []byte("\n")
)

// Logger fans leveled, formatted records out to an ordered set of
// targets. Records below the threshold are filtered before any
// formatting work. The logger owns its targets and tears each one
// down exactly once in Close.
//
// A Logger is not internally synchronized: confine an instance to a
// single goroutine, or synchronize externally. Independent goroutines
// should hold independent Logger instances; emission itself is
// synchronous on the calling goroutine, with no queue and no
// background flusher.
type Logger struct {
	targets    []target.Target
	colorizers []target.Colorizer // cached per target; nil entry = no colorization
	level      core.Level
}

// New returns a Logger with no targets and the threshold set to
// WarnLevel.
func New() *Logger {
	return &Logger{level: core.WarnLevel}
}

// AddTarget attaches t to the logger, which takes ownership of it.
// Targets are emitted most-recently-added first. There is no
// deduplication; the same backend kind may be attached any number of
// times, e.g. two different files.
func (l *Logger) AddTarget(t target.Target) {
	if t == nil {
		panic("logger: AddTarget with nil target")
	}
	// The Colorizer assertion happens once, here, not per record.
	c, _ := t.(target.Colorizer)
	l.targets = append([]target.Target{t}, l.targets...)
	l.colorizers = append([]target.Colorizer{c}, l.colorizers...)
}

// SetLevel sets the minimum severity a record needs to be emitted.
// An invalid level is a programmer error, not a runtime condition:
// thresholds come from validated configuration, so this panics.
func (l *Logger) SetLevel(level core.Level) {
	if !level.Valid() {
		panic(fmt.Sprintf("logger: SetLevel with invalid level %d", level))
	}
	l.level = level
}

// Level returns the current threshold.
func (l *Logger) Level() core.Level {
	return l.level
}

// Close tears down every owned target exactly once and returns the
// last teardown error, if any. The shared null target is unowned and
// is never closed here. The Logger must not be used after Close.
func (l *Logger) Close() error {
	var lastErr error
	for _, t := range l.targets {
		if t == target.Null() {
			continue
		}
		if err := t.Close(); err != nil {
			lastErr = err
		}
	}
	l.targets = nil
	l.colorizers = nil
	return lastErr
}

// Logf emits one record at the given level. The tag is conventionally
// the calling function's name; it is supplied by the call site, never
// derived here. Records below the threshold return before any
// formatting. An invalid level panics.
func (l *Logger) Logf(level core.Level, tag, format string, args ...interface{}) {
	if !level.Valid() {
		panic(fmt.Sprintf("logger: Logf with invalid level %d", level))
	}
	if level < l.level {
		return
	}
	l.emit(level, tag, format, args)
}

// emit renders the record once and hands every target the complete
// frame in a single vectored write.
func (l *Logger) emit(level core.Level, tag, format string, args []interface{}) {
	msg := fmt.Sprintf(format, args...)
	stamp := time.Now().Format(timestampLayout)
	label := level.Label()

	for i, t := range l.targets {
		var begin, end string
		if c := l.colorizers[i]; c != nil {
			begin = c.ColorizeBegin(level)
			if begin != "" {
				end = c.ColorizeEnd(level)
			}
		}
		// The full frame reaches the target in one WriteVec call, so
		// no target ever sees a truncated record. Write errors are
		// swallowed: best-effort diagnostics never raise to the call
		// site.
		_ = t.WriteVec([][]byte{
			frameOpen,
			[]byte(stamp),
			frameSep,
			[]byte(tag),
			frameSep,
			[]byte(begin),
			[]byte(label),
			[]byte(end),
			frameClose,
			[]byte(msg),
			frameNL,
		})
	}
}

// Tracef emits a trace record.
func (l *Logger) Tracef(tag, format string, args ...interface{}) {
	if core.TraceLevel < l.level {
		return
	}
	l.emit(core.TraceLevel, tag, format, args)
}

// Debugf emits a debug record.
func (l *Logger) Debugf(tag, format string, args ...interface{}) {
	if core.DebugLevel < l.level {
		return
	}
	l.emit(core.DebugLevel, tag, format, args)
}

// Infof emits an info record.
func (l *Logger) Infof(tag, format string, args ...interface{}) {
	if core.InfoLevel < l.level {
		return
	}
	l.emit(core.InfoLevel, tag, format, args)
}

// Warnf emits a warning record.
func (l *Logger) Warnf(tag, format string, args ...interface{}) {
	if core.WarnLevel < l.level {
		return
	}
	l.emit(core.WarnLevel, tag, format, args)
}

// Errorf emits an error record.
func (l *Logger) Errorf(tag, format string, args ...interface{}) {
	if core.ErrorLevel < l.level {
		return
	}
	l.emit(core.ErrorLevel, tag, format, args)
}

// Fatalf emits a fatal record. Fatal passes every threshold, and the
// process is not terminated here: that policy belongs to the host.
func (l *Logger) Fatalf(tag, format string, args ...interface{}) {
	l.emit(core.FatalLevel, tag, format, args)
}
