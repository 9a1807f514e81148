// Command calrender renders the check-in calendar fragment for a
// questCalendarData JSON document without a running server.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ManuelReschke/QuestBoard/internal/pkg/calendar"
	"github.com/ManuelReschke/QuestBoard/views"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		today  string
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "calrender [file]",
		Short: "Render the check-in calendar fragment",
		Long: `Reads a questCalendarData document from file, or stdin when no file is
given, and writes the calendar fragment to stdout. Documents without a valid
date range render nothing unless --strict is set.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := referenceDay(today)
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open input: %w", err)
				}
				defer f.Close()
				in = f
			}

			return render(cmd, in, ref, strict)
		},
	}

	cmd.Flags().StringVar(&today, "today", "", "reference day as YYYY-MM-DD (default: local today)")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on documents without a valid date range")
	return cmd
}

func referenceDay(value string) (calendar.Date, error) {
	if value == "" {
		return calendar.FromTime(time.Now()), nil
	}
	d, err := calendar.ParseISO(value)
	if err != nil {
		return calendar.Date{}, fmt.Errorf("--today: %w", err)
	}
	return d, nil
}

func render(cmd *cobra.Command, in io.Reader, today calendar.Date, strict bool) error {
	data, err := calendar.DecodeData(in)
	if err != nil {
		return err
	}

	grid, err := data.Grid(today)
	if err != nil {
		if strict {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "calrender: skipping: %v\n", err)
		return nil
	}

	return views.CheckInCalendar(grid).Render(cmd.Context(), cmd.OutOrStdout())
}
