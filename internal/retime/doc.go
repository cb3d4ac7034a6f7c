// Package retime drives one subtitle retiming run end to end.
//
// Service.Run validates the request before any I/O, checks the input file
// and output directory, locks the output directory, and streams the decoded
// input through an srt.Retimer into an atomically written
// retimed_<timestamp>.srt file. A run either produces the complete output
// file or leaves the output directory untouched. Completed runs are recorded
// through an optional Recorder.
package retime
