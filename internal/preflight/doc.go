// Package preflight provides filesystem readiness checks that run before a
// retime run touches any subtitle content.
//
// The run service calls RunAll and stops at the first failed check so an
// unreadable input or an unwritable output directory is reported before the
// input is decoded or an output file is created.
package preflight
