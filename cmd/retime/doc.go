// Package main hosts the retime CLI entrypoint and command graph.
//
// The Cobra command tree resolves configuration once, builds the structured
// logger, and hands each invocation to the internal packages: shift drives a
// full file run through internal/retime, delay and stamp expose the timecode
// arithmetic directly, history reads the optional SQLite run log, and config
// scaffolds or validates the TOML file. Reports go to stdout; logs go to
// stderr.
package main
