package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"retime/internal/config"
	"retime/internal/retime"
	"retime/internal/timecode"
)

type shiftFlags struct {
	outputDir string
	delay     int
	backward  bool
	direction string
	workers   int
	charset   string
	overwrite bool
	format    string
}

func newShiftCommand(ctx *commandContext) *cobra.Command {
	var flags shiftFlags

	cmd := &cobra.Command{
		Use:   "shift <input.srt>",
		Short: "Write a retimed copy of a subtitle file",
		Long: "Shift every cue of a SubRip file by a whole number of seconds and write\n" +
			"the result to retimed_YYYY-MM-DD-HH-MM-SS.srt in the output directory.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseFormat(flags.format)
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			req, err := buildShiftRequest(cmd, cfg, flags, args[0])
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			opts := []retime.Option{retime.WithLogger(logger)}
			if store := ctx.openHistory(cmd.Context(), logger); store != nil {
				defer store.Close()
				opts = append(opts, retime.WithRecorder(store))
			}

			result, err := retime.NewService(opts...).Run(cmd.Context(), req)
			if err != nil {
				return err
			}
			return writeReport(cmd, format, result, func() error {
				return printShiftResult(cmd, result)
			})
		},
	}

	cmd.Flags().StringVarP(&flags.outputDir, "output", "o", "", "Output directory (default output.dir)")
	cmd.Flags().IntVarP(&flags.delay, "delay", "d", 0, "Delay in whole seconds (default retime.delay_seconds)")
	cmd.Flags().BoolVarP(&flags.backward, "backward", "b", false, "Shift cues earlier instead of later")
	cmd.Flags().StringVar(&flags.direction, "direction", "", "Shift direction: forward or backward")
	cmd.Flags().IntVar(&flags.workers, "workers", 0, "Goroutines used to shift timing lines")
	cmd.Flags().StringVar(&flags.charset, "charset", "", "Input and output charset")
	cmd.Flags().BoolVar(&flags.overwrite, "overwrite", false, "Replace an existing output file")
	cmd.Flags().StringVar(&flags.format, "format", formatText, "Report format: text, json, or yaml")
	cmd.MarkFlagsMutuallyExclusive("backward", "direction")
	return cmd
}

// buildShiftRequest layers changed flags over config values.
func buildShiftRequest(cmd *cobra.Command, cfg *config.Config, flags shiftFlags, input string) (retime.Request, error) {
	req := retime.Request{
		InputPath:    input,
		OutputDir:    cfg.Output.Dir,
		DelaySeconds: cfg.Retime.DelaySeconds,
		Workers:      cfg.Retime.Workers,
		Charset:      cfg.Retime.Charset,
		Overwrite:    cfg.Output.Overwrite,
	}
	direction := cfg.Retime.Direction

	changed := cmd.Flags().Changed
	if changed("output") {
		expanded, err := config.ExpandPath(flags.outputDir)
		if err != nil {
			return retime.Request{}, fmt.Errorf("resolve output directory: %w", err)
		}
		req.OutputDir = expanded
	}
	if changed("delay") {
		req.DelaySeconds = flags.delay
	}
	if changed("direction") {
		direction = flags.direction
	}
	if changed("backward") {
		direction = timecode.DirectionForward.String()
		if flags.backward {
			direction = timecode.DirectionBackward.String()
		}
	}
	if changed("workers") {
		req.Workers = flags.workers
	}
	if changed("charset") {
		req.Charset = flags.charset
	}
	if changed("overwrite") {
		req.Overwrite = flags.overwrite
	}

	parsed, err := timecode.ParseDirection(direction)
	if err != nil {
		return retime.Request{}, &retime.ConfigError{Field: "direction", Err: err}
	}
	req.Direction = parsed
	return req, nil
}

func printShiftResult(cmd *cobra.Command, result *retime.Result) error {
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)

	kind, message := statusOK, "Retimed "+strconv.Itoa(result.Stats.Cues)+" cues"
	if result.Stats.BelowZero > 0 {
		kind = statusWarn
		message += fmt.Sprintf(" (%d before zero)", result.Stats.BelowZero)
	}
	fmt.Fprintln(out, renderStatusLine(kind, message, colorize))
	fmt.Fprintln(out, renderFieldTable([][2]string{
		{"Run ID", result.RunID},
		{"Input", result.InputPath},
		{"Output", result.OutputPath},
		{"Delay", fmt.Sprintf("%s (%ds)", result.Delay, result.DelaySeconds)},
		{"Direction", result.Direction.String()},
		{"Charset", result.Charset},
		{"Lines", strconv.Itoa(result.Stats.Lines)},
		{"Cues", strconv.Itoa(result.Stats.Cues)},
		{"Below zero", strconv.Itoa(result.Stats.BelowZero)},
		{"Elapsed", result.Elapsed.String()},
	}))
	return nil
}
