package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"retime/internal/timecode"
)

func newStampCommand() *cobra.Command {
	var delay int
	var backward bool

	cmd := &cobra.Command{
		Use:         "stamp <HH:MM:SS,mmm>",
		Short:       "Shift a single timestamp",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			clock, err := timecode.EncodeDelay(delay)
			if err != nil {
				return err
			}
			direction := timecode.DirectionForward
			if backward {
				direction = timecode.DirectionBackward
			}
			shifted, err := timecode.ShiftText(args[0], clock, direction.Policy())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), shifted)
			return nil
		},
	}

	cmd.Flags().IntVarP(&delay, "delay", "d", 0, "Delay in whole seconds")
	cmd.Flags().BoolVarP(&backward, "backward", "b", false, "Shift earlier instead of later")
	return cmd
}
