package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"retime/internal/timecode"
)

func newDelayCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "delay <seconds>",
		Short:       "Print the HH:MM:SS,mmm clock for a delay in seconds",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			seconds, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parse seconds %q: %w", args[0], err)
			}
			clock, err := timecode.EncodeDelay(seconds)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), clock.String())
			return nil
		},
	}
}
