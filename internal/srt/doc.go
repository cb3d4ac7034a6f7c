// Package srt rewrites SubRip timing lines.
//
// Only lines containing "-->" are examined. Each one must follow the fixed
// layout "HH:MM:SS,mmm --> HH:MM:SS,mmm" (optionally followed by cue
// settings); both timestamps are shifted with the timecode package. Every
// other line, and every line terminator, is reproduced byte for byte.
package srt
