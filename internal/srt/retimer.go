package srt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"retime/internal/logging"
	"retime/internal/timecode"
)

// Options configures a Retimer.
type Options struct {
	Delay     timecode.Clock
	Direction timecode.Direction
	// Workers above 1 shifts timing lines concurrently. Output order is
	// unaffected.
	Workers int
	Logger  *slog.Logger
}

// Stats summarizes one Retime call.
type Stats struct {
	Lines     int `json:"lines" yaml:"lines"`
	Cues      int `json:"cues" yaml:"cues"`
	BelowZero int `json:"below_zero" yaml:"below_zero"`
}

// Retimer shifts every timing line of a subtitle stream by a fixed delay.
type Retimer struct {
	delay   timecode.Clock
	policy  timecode.Policy
	workers int
	logger  *slog.Logger
}

// NewRetimer binds the delay and direction for a run.
func NewRetimer(opts Options) *Retimer {
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	return &Retimer{
		delay:   opts.Delay,
		policy:  opts.Direction.Policy(),
		workers: workers,
		logger:  logging.NewComponentLogger(opts.Logger, "srt"),
	}
}

type line struct {
	content    string
	terminator string
	timing     bool
}

type shifted struct {
	text      string
	belowZero bool
	err       error
}

// Retime copies r to w, shifting timing lines. On error nothing is written
// to w.
func (rt *Retimer) Retime(ctx context.Context, r io.Reader, w io.Writer) (Stats, error) {
	lines, err := readLines(r)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{Lines: len(lines)}
	timingIdx := make([]int, 0, len(lines)/4)
	for i, l := range lines {
		if l.timing {
			timingIdx = append(timingIdx, i)
		}
	}
	stats.Cues = len(timingIdx)

	results, err := rt.shiftAll(ctx, lines, timingIdx)
	if err != nil {
		return Stats{}, err
	}
	for n, idx := range timingIdx {
		res := results[n]
		if res.err != nil {
			return Stats{}, &LineError{Line: idx + 1, Text: lines[idx].content, Err: res.err}
		}
		if res.belowZero {
			stats.BelowZero++
		}
		lines[idx].content = res.text
	}

	bw := bufio.NewWriter(w)
	for _, l := range lines {
		if _, err := bw.WriteString(l.content); err != nil {
			return Stats{}, fmt.Errorf("write subtitle: %w", err)
		}
		if _, err := bw.WriteString(l.terminator); err != nil {
			return Stats{}, fmt.Errorf("write subtitle: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return Stats{}, fmt.Errorf("write subtitle: %w", err)
	}

	rt.logger.Debug("subtitle retimed",
		logging.Int("lines", stats.Lines),
		logging.Int("cues", stats.Cues),
		logging.Int("below_zero", stats.BelowZero),
		logging.Int("workers", rt.workers),
	)
	return stats, nil
}

func (rt *Retimer) shiftAll(ctx context.Context, lines []line, timingIdx []int) ([]shifted, error) {
	results := make([]shifted, len(timingIdx))
	if rt.workers == 1 || len(timingIdx) < 2 {
		for n, idx := range timingIdx {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			results[n] = rt.shiftLine(lines[idx].content)
		}
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(rt.workers)
	for n, idx := range timingIdx {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[n] = rt.shiftLine(lines[idx].content)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (rt *Retimer) shiftLine(content string) shifted {
	parsed, err := ParseTimingLine(content)
	if err != nil {
		return shifted{err: err}
	}
	text, belowZero, err := parsed.Shift(rt.delay, rt.policy)
	return shifted{text: text, belowZero: belowZero, err: err}
}

func readLines(r io.Reader) ([]line, error) {
	br := bufio.NewReader(r)
	var lines []line
	for {
		raw, err := br.ReadString('\n')
		if raw != "" {
			lines = append(lines, splitTerminator(raw))
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read subtitle: %w", err)
		}
	}
}

func splitTerminator(raw string) line {
	var l line
	switch {
	case strings.HasSuffix(raw, "\r\n"):
		l.content, l.terminator = raw[:len(raw)-2], "\r\n"
	case strings.HasSuffix(raw, "\n"):
		l.content, l.terminator = raw[:len(raw)-1], "\n"
	default:
		l.content = raw
	}
	l.timing = IsTimingLine(l.content)
	return l
}
