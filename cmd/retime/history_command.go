package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"retime/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var formatFlag string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent retime runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseFormat(formatFlag)
			if err != nil {
				return err
			}
			store, err := ctx.requireHistory(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if runs == nil {
				runs = []history.Run{}
			}
			return writeReport(cmd, format, runs, func() error {
				printHistory(cmd, runs)
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", history.DefaultListLimit, "Maximum runs to list")
	cmd.Flags().StringVar(&formatFlag, "format", formatText, "Output format: text, json, or yaml")
	return cmd
}

func printHistory(cmd *cobra.Command, runs []history.Run) {
	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, renderStatusLine(statusInfo, "No runs recorded", shouldColorize(out)))
		return
	}
	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, []string{
			run.StartedAt.Local().Format(time.DateTime),
			run.Direction,
			strconv.Itoa(run.DelaySeconds),
			strconv.Itoa(run.Cues),
			strconv.Itoa(run.BelowZero),
			run.OutputPath,
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Started", "Direction", "Delay (s)", "Cues", "Below zero", "Output"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft},
	))
}
