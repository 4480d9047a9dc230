// Package config builds a ready-to-use Logger from a TOML file, for
// hosts that drive their logging setup from configuration:
//
//	level  = "info"
//	file   = "/var/log/app.log"
//	stderr = true
//
// Load parses the file; Build validates the level text (an
// unrecognized level, including "fatal", is a build error) and
// constructs the requested targets. A missing marker capability is
// not an error — the null target is substituted, matching the
// contract of target.NewMarker.
package config
