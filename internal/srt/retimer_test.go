package srt

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"retime/internal/timecode"
)

func newTestRetimer(t *testing.T, seconds int, dir timecode.Direction, workers int) *Retimer {
	t.Helper()
	delay, err := timecode.EncodeDelay(seconds)
	if err != nil {
		t.Fatalf("EncodeDelay: %v", err)
	}
	return NewRetimer(Options{Delay: delay, Direction: dir, Workers: workers})
}

func TestRetimeForwardSingleCue(t *testing.T) {
	raw := "1\n00:00:10,000 --> 00:00:12,000\nHello there!\n\n"
	var out bytes.Buffer
	stats, err := newTestRetimer(t, 5, timecode.DirectionForward, 1).Retime(context.Background(), strings.NewReader(raw), &out)
	if err != nil {
		t.Fatalf("Retime returned error: %v", err)
	}
	want := "1\n00:00:15,000 --> 00:00:17,000\nHello there!\n\n"
	if out.String() != want {
		t.Fatalf("unexpected output:\n%q\nwant:\n%q", out.String(), want)
	}
	if stats.Cues != 1 || stats.Lines != 4 || stats.BelowZero != 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestRetimePreservesNonTimingBytes(t *testing.T) {
	raw := "\ufeff1\r\n00:00:01,000 --> 00:00:02,500\r\n  <i>Indented</i>  \r\n\r\n2\r\n00:01:00,000 --> 00:01:01,000\r\nLast line without newline"
	var out bytes.Buffer
	if _, err := newTestRetimer(t, 30, timecode.DirectionForward, 1).Retime(context.Background(), strings.NewReader(raw), &out); err != nil {
		t.Fatalf("Retime returned error: %v", err)
	}
	want := "\ufeff1\r\n00:00:31,000 --> 00:00:32,500\r\n  <i>Indented</i>  \r\n\r\n2\r\n00:01:30,000 --> 00:01:31,000\r\nLast line without newline"
	if out.String() != want {
		t.Fatalf("unexpected output:\n%q\nwant:\n%q", out.String(), want)
	}
}

func TestRetimeKeepsTimingLineWhitespace(t *testing.T) {
	raw := "1\n  00:00:10,000 --> 00:00:12,000  \nHello\n"
	var out bytes.Buffer
	if _, err := newTestRetimer(t, 5, timecode.DirectionForward, 1).Retime(context.Background(), strings.NewReader(raw), &out); err != nil {
		t.Fatalf("Retime returned error: %v", err)
	}
	want := "1\n  00:00:15,000 --> 00:00:17,000  \nHello\n"
	if out.String() != want {
		t.Fatalf("unexpected output:\n%q\nwant:\n%q", out.String(), want)
	}
}

func TestRetimeKeepsCueSettings(t *testing.T) {
	raw := "1\n00:00:01,000 --> 00:00:02,000 X1:100 X2:200\ntext\n"
	var out bytes.Buffer
	if _, err := newTestRetimer(t, 1, timecode.DirectionBackward, 1).Retime(context.Background(), strings.NewReader(raw), &out); err != nil {
		t.Fatalf("Retime returned error: %v", err)
	}
	if !strings.Contains(out.String(), "00:00:00,000 --> 00:00:01,000 X1:100 X2:200\n") {
		t.Fatalf("cue settings not preserved: %q", out.String())
	}
}

func TestRetimeCountsBelowZero(t *testing.T) {
	raw := "1\n00:00:00,500 --> 00:00:03,000\nearly\n\n2\n00:00:05,000 --> 00:00:06,000\nlate\n"
	var out bytes.Buffer
	stats, err := newTestRetimer(t, 1, timecode.DirectionBackward, 1).Retime(context.Background(), strings.NewReader(raw), &out)
	if err != nil {
		t.Fatalf("Retime returned error: %v", err)
	}
	if stats.BelowZero != 1 {
		t.Fatalf("expected 1 cue below zero, got %+v", stats)
	}
	if !strings.Contains(out.String(), "-00:00:00,500 --> 00:00:02,000") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestRetimeMalformedTimingLineFails(t *testing.T) {
	raw := "1\n00:00:01,000 --> 00:00:02,000\nok\n\n2\n0:00:03,000 --> 00:00:04,000\nbad\n"
	var out bytes.Buffer
	_, err := newTestRetimer(t, 1, timecode.DirectionForward, 1).Retime(context.Background(), strings.NewReader(raw), &out)
	var lineErr *LineError
	if !errors.As(err, &lineErr) {
		t.Fatalf("expected LineError, got %v", err)
	}
	if lineErr.Line != 6 {
		t.Fatalf("expected failure on line 6, got %d", lineErr.Line)
	}
	if !errors.Is(err, ErrMalformedTimingLine) {
		t.Fatalf("expected ErrMalformedTimingLine in chain, got %v", err)
	}
	if lineErr.ErrorKind() != "validation" {
		t.Fatalf("unexpected error kind %q", lineErr.ErrorKind())
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output on failure, got %q", out.String())
	}
}

func TestRetimeHourOverflowFails(t *testing.T) {
	raw := "1\n99:59:59,000 --> 99:59:59,500\nx\n"
	_, err := newTestRetimer(t, 1, timecode.DirectionForward, 1).Retime(context.Background(), strings.NewReader(raw), &bytes.Buffer{})
	if !errors.Is(err, timecode.ErrHourOutOfRange) {
		t.Fatalf("expected ErrHourOutOfRange, got %v", err)
	}
}

func TestRetimeWorkersMatchSequential(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 500; i++ {
		start := timecode.Clock{Hour: i / 3600, Minute: (i / 60) % 60, Second: i % 60, Millisecond: (i * 7) % 1000}
		end := timecode.Clock{Hour: start.Hour, Minute: start.Minute, Second: start.Second, Millisecond: 999}
		fmt.Fprintf(&b, "%d\n%s --> %s\nline %d\n\n", i+1, start, end, i)
	}
	raw := b.String()

	var seq, par bytes.Buffer
	seqStats, err := newTestRetimer(t, 3725, timecode.DirectionBackward, 1).Retime(context.Background(), strings.NewReader(raw), &seq)
	if err != nil {
		t.Fatalf("sequential Retime: %v", err)
	}
	parStats, err := newTestRetimer(t, 3725, timecode.DirectionBackward, 8).Retime(context.Background(), strings.NewReader(raw), &par)
	if err != nil {
		t.Fatalf("parallel Retime: %v", err)
	}
	if seq.String() != par.String() {
		t.Fatal("parallel output differs from sequential output")
	}
	if seqStats != parStats {
		t.Fatalf("stats differ: %+v vs %+v", seqStats, parStats)
	}
}

func TestRetimeWorkersReportFirstBadLine(t *testing.T) {
	raw := "1\n00:00:01,000 --> 00:00:02,000\n\n2\n00:00:01,000 -> bad --> x\n\n3\nxx --> yy\n"
	_, err := newTestRetimer(t, 1, timecode.DirectionForward, 4).Retime(context.Background(), strings.NewReader(raw), &bytes.Buffer{})
	var lineErr *LineError
	if !errors.As(err, &lineErr) || lineErr.Line != 5 {
		t.Fatalf("expected LineError on line 5, got %v", err)
	}
}

func TestRetimeHonoursCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	raw := "1\n00:00:01,000 --> 00:00:02,000\n"
	if _, err := newTestRetimer(t, 1, timecode.DirectionForward, 1).Retime(ctx, strings.NewReader(raw), &bytes.Buffer{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
