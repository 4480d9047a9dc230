// Package logger is the public API of fanlog.
//
// A Logger holds an ordered collection of targets and a minimum
// severity threshold (default Warn). Logf — and the leveled helpers
// Tracef through Fatalf — filter by level before doing any formatting,
// render the message and timestamp once, and then issue exactly one
// vectored write per target:
//
//	[ 08/24/26 14:03:07.512 main WARN ] x=5
//
// Each target applies its own colorization to the level label, so one
// record can land colored on a terminal and plain in a file from the
// same call. Emission is fully synchronous on the calling goroutine.
//
// Typical setup:
//
//	log := logger.New()
//	log.SetLevel(core.InfoLevel)
//	if t, err := target.NewStderr(); err == nil {
//	    log.AddTarget(t)
//	}
//	log.Infof("main", "compositor ready in %v", elapsed)
//	defer log.Close()
//
// The package also defines the process current-logger slot. Go has no
// thread-local storage, so the slot is a single host-populated
// variable (Default/SetDefault) plus a context carrier
// (NewContext/FromContext) for explicit propagation. Neither is ever
// populated by this package itself.
package logger
