// Package timecode implements SubRip clock arithmetic.
//
// A delay expressed in whole seconds is encoded once into a delay clock, and
// every cue timestamp is shifted against it field by field: seconds first,
// then minutes, then the hour. Carries and borrows are folded into the next
// unit before that unit is computed. Direction selects a Policy (Forward or
// Backward) that supplies the overflow test, the carry direction, and the
// hour and final rendering rules.
//
// Policies are stateless values. Whether a backward shift crossed below
// zero travels in the Hour value returned by ApplyHour, so a single policy
// can be shared by any number of goroutines.
package timecode
