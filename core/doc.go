// Package core defines the Level type shared across the fanlog module.
//
// Levels are totally ordered (Trace < Debug < Info < Warn < Error <
// Fatal) and a record passes a logger's gate iff its level is at least
// the logger's threshold. ParseLevel converts configuration text into
// a Level; unrecognized input yields the InvalidLevel sentinel rather
// than an error, leaving it to the configuration layer to decide
// whether that is fatal.
//
// FatalLevel is asymmetric on purpose: it can be emitted and displays
// as "FATAL ERROR", but ParseLevel rejects "FATAL", so a configured
// threshold can never suppress everything below Fatal.
package core
