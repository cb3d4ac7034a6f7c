// Package history persists a record of completed retime runs in SQLite.
//
// History is opt-in. A disabled history leaves no database behind, and the
// run service treats a failed write as a warning because the retimed file
// is already safely on disk by the time a run is recorded.
package history
