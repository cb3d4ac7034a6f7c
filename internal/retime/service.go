package retime

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"retime/internal/charset"
	"retime/internal/fileutil"
	"retime/internal/history"
	"retime/internal/logging"
	"retime/internal/preflight"
	"retime/internal/srt"
	"retime/internal/timecode"
)

// MaxWorkers bounds Request.Workers.
const MaxWorkers = 64

// Request describes one run.
type Request struct {
	InputPath    string
	OutputDir    string
	DelaySeconds int
	Direction    timecode.Direction
	// Workers of 0 means sequential.
	Workers   int
	Charset   string
	Overwrite bool
}

// Result reports a completed run.
type Result struct {
	RunID        string             `json:"run_id" yaml:"run_id"`
	InputPath    string             `json:"input_path" yaml:"input_path"`
	OutputPath   string             `json:"output_path" yaml:"output_path"`
	DelaySeconds int                `json:"delay_seconds" yaml:"delay_seconds"`
	Delay        string             `json:"delay" yaml:"delay"`
	Direction    timecode.Direction `json:"direction" yaml:"direction"`
	Charset      string             `json:"charset" yaml:"charset"`
	Stats        srt.Stats          `json:"stats" yaml:"stats"`
	StartedAt    time.Time          `json:"started_at" yaml:"started_at"`
	Elapsed      time.Duration      `json:"elapsed" yaml:"elapsed"`
}

// Recorder persists completed runs.
type Recorder interface {
	Record(ctx context.Context, run history.Run) error
}

// Service executes runs.
type Service struct {
	logger   *slog.Logger
	recorder Recorder
	now      func() time.Time
	newID    func() string
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the base logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithRecorder enables run history.
func WithRecorder(recorder Recorder) Option {
	return func(s *Service) { s.recorder = recorder }
}

// WithClock overrides the time source used for output names and timings.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides run ID generation.
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// NewService constructs a Service.
func NewService(opts ...Option) *Service {
	s := &Service{
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = logging.NewComponentLogger(s.logger, "retime")
	return s
}

type runPlan struct {
	inputPath string
	outputDir string
	delay     timecode.Clock
	codec     charset.Codec
	workers   int
}

func (req Request) plan() (runPlan, error) {
	inputPath := strings.TrimSpace(req.InputPath)
	if inputPath == "" {
		return runPlan{}, &ConfigError{Field: "input", Err: ErrInputPathUnset}
	}
	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir == "" {
		return runPlan{}, &ConfigError{Field: "output", Err: ErrOutputPathUnset}
	}
	delay, err := timecode.EncodeDelay(req.DelaySeconds)
	if err != nil {
		return runPlan{}, &ConfigError{Field: "delay", Err: err}
	}
	codec, err := charset.Lookup(req.Charset)
	if err != nil {
		return runPlan{}, &ConfigError{Field: "charset", Err: err}
	}
	workers := req.Workers
	if workers == 0 {
		workers = 1
	}
	if workers < 1 || workers > MaxWorkers {
		return runPlan{}, &ConfigError{Field: "workers", Err: fmt.Errorf("%w: %d (allowed 1-%d)", ErrWorkersOutOfRange, req.Workers, MaxWorkers)}
	}
	return runPlan{
		inputPath: inputPath,
		outputDir: fileutil.NormalizeDir(outputDir),
		delay:     delay,
		codec:     codec,
		workers:   workers,
	}, nil
}

// Run retimes req.InputPath into a new file in req.OutputDir.
func (s *Service) Run(ctx context.Context, req Request) (*Result, error) {
	plan, err := req.plan()
	if err != nil {
		return nil, err
	}

	runID := s.newID()
	ctx = logging.WithRunID(ctx, runID)
	logger := logging.WithContext(ctx, s.logger)
	startedAt := s.now()

	logger.Debug("run planned",
		logging.String("input", plan.inputPath),
		logging.String("output_dir", plan.outputDir),
		logging.String("delay", plan.delay.String()),
		logging.String("direction", req.Direction.String()),
		logging.String("charset", plan.codec.Name()),
		logging.Int("workers", plan.workers),
	)

	if failed, ok := preflight.FirstFailure(preflight.RunAll(plan.inputPath, plan.outputDir)); ok {
		return nil, logFailure(logger, fmt.Errorf("preflight: %w", failed.Err()))
	}

	unlock, err := fileutil.LockDir(ctx, plan.outputDir)
	if err != nil {
		return nil, err
	}
	defer func() {
		if unlockErr := unlock(); unlockErr != nil {
			logger.Debug("output directory unlock failed", logging.Error(unlockErr))
		}
	}()

	input, err := os.Open(plan.inputPath)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer input.Close()

	retimer := srt.NewRetimer(srt.Options{
		Delay:     plan.delay,
		Direction: req.Direction,
		Workers:   plan.workers,
		Logger:    logger,
	})

	var stats srt.Stats
	outputPath, err := fileutil.WriteAtomic(plan.outputDir, fileutil.OutputName(startedAt), req.Overwrite, func(w io.Writer) error {
		encoder := plan.codec.NewWriter(w)
		var retimeErr error
		stats, retimeErr = retimer.Retime(ctx, plan.codec.NewReader(input), encoder)
		if retimeErr != nil {
			return retimeErr
		}
		return encoder.Close()
	})
	if err != nil {
		return nil, logFailure(logger, err)
	}

	result := &Result{
		RunID:        runID,
		InputPath:    plan.inputPath,
		OutputPath:   outputPath,
		DelaySeconds: req.DelaySeconds,
		Delay:        plan.delay.String(),
		Direction:    req.Direction,
		Charset:      plan.codec.Name(),
		Stats:        stats,
		StartedAt:    startedAt,
		Elapsed:      s.now().Sub(startedAt),
	}

	if stats.BelowZero > 0 {
		logging.WarnWithContext(logger, "cues shifted before zero",
			"below_zero",
			logging.Int("below_zero", stats.BelowZero),
			logging.String(logging.FieldErrorHint, "use a smaller backward delay"),
			logging.String(logging.FieldImpact, "affected cues carry negative timestamps"),
		)
	}

	s.record(ctx, logger, result)

	logger.Info("retime complete",
		logging.String("output", result.OutputPath),
		logging.Int("cues", stats.Cues),
		logging.Int("lines", stats.Lines),
		logging.Duration("elapsed", result.Elapsed),
	)
	return result, nil
}

func logFailure(logger *slog.Logger, err error) error {
	kind := Kind(err)
	if kind == "canceled" {
		return err
	}
	logging.ErrorWithContext(logger, "retime failed",
		"retime_failed",
		logging.String("error_kind", kind),
		logging.Error(err),
	)
	return err
}

func (s *Service) record(ctx context.Context, logger *slog.Logger, result *Result) {
	if s.recorder == nil {
		return
	}
	run := history.Run{
		ID:           result.RunID,
		StartedAt:    result.StartedAt,
		InputPath:    result.InputPath,
		OutputPath:   result.OutputPath,
		DelaySeconds: result.DelaySeconds,
		Direction:    result.Direction.String(),
		Charset:      result.Charset,
		Lines:        result.Stats.Lines,
		Cues:         result.Stats.Cues,
		BelowZero:    result.Stats.BelowZero,
		Elapsed:      result.Elapsed,
	}
	if err := s.recorder.Record(ctx, run); err != nil {
		logging.WarnWithContext(logger, "history record failed",
			"history_record_failed",
			logging.Error(err),
			logging.String(logging.FieldImpact, "run missing from history; output file is unaffected"),
		)
	}
}
