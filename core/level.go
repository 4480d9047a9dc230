package core

import "strings"

// Level represents the severity of a log record
type Level int8

const (
	// TraceLevel for fine-grained execution tracing
	TraceLevel Level = iota
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages
	InfoLevel
	// WarnLevel for warning messages (the default threshold)
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// FatalLevel for unrecoverable errors. Fatal is emit-only: it is a
	// valid record level and threshold but is never produced by
	// ParseLevel, so configuration text cannot select it.
	FatalLevel
)

// InvalidLevel is the sentinel returned by ParseLevel for unrecognized
// input. It is not a valid record level or threshold.
const InvalidLevel Level = -1

// pre-computed display labels, indexed by level
var levelLabels = [...]string{
	TraceLevel: "TRACE",
	DebugLevel: "DEBUG",
	InfoLevel:  "INFO",
	WarnLevel:  "WARN",
	ErrorLevel: "ERROR",
	FatalLevel: "FATAL ERROR",
}

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	return l >= TraceLevel && l <= FatalLevel
}

// Label returns the display label of the level. FatalLevel renders as
// the two-word label "FATAL ERROR", not "FATAL".
func (l Level) Label() string {
	if !l.Valid() {
		return "INVALID"
	}
	return levelLabels[l]
}

// String returns the same text as Label.
func (l Level) String() string {
	return l.Label()
}

// ParseLevel converts configuration text to a Level. Matching is
// case-insensitive over TRACE, DEBUG, INFO, WARN and ERROR; any other
// input, including "FATAL", yields InvalidLevel.
func ParseLevel(s string) Level {
	switch strings.ToUpper(s) {
	case "TRACE":
		return TraceLevel
	case "DEBUG":
		return DebugLevel
	case "INFO":
		return InfoLevel
	case "WARN":
		return WarnLevel
	case "ERROR":
		return ErrorLevel
	default:
		return InvalidLevel
	}
}
