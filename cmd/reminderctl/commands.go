package main

import (
	"fmt"
	"strconv"
	"time"
	"waterreminder/internal/client"
	"waterreminder/internal/core/domain/reminder"

	"github.com/spf13/cobra"
)

const requestTimeout = 5 * time.Second

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "reminderctl",
		Short: "Control a running water reminder",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SilenceUsage = true
		},
	}
	rootCmd.PersistentFlags().String("addr", client.DefaultBaseURL, "address of the water reminder")

	intervalCmd := &cobra.Command{
		Use:   "interval",
		Short: "Read or change the reminder interval",
	}

	intervalGetCmd := &cobra.Command{
		Use:   "get",
		Short: "Print the current interval",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(cmd)
			if err != nil {
				return err
			}
			interval, err := c.GetInterval(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d (%s)\n", interval.Seconds(), interval)
			return nil
		},
	}

	intervalSetCmd := &cobra.Command{
		Use:   "set SECONDS|DURATION",
		Short: "Change the interval, e.g. 900 or 15m",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			interval, err := parseInterval(args[0])
			if err != nil {
				return err
			}
			c, err := newClient(cmd)
			if err != nil {
				return err
			}
			interval, err = c.SetInterval(cmd.Context(), interval)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d (%s)\n", interval.Seconds(), interval)
			return nil
		},
	}
	intervalCmd.AddCommand(intervalGetCmd, intervalSetCmd)

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the reminder window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(cmd)
			if err != nil {
				return err
			}
			return c.ShowWindow(cmd.Context())
		},
	}

	hideCmd := &cobra.Command{
		Use:   "hide",
		Short: "Hide the reminder window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(cmd)
			if err != nil {
				return err
			}
			return c.HideWindow(cmd.Context())
		},
	}

	remindCmd := &cobra.Command{
		Use:   "remind",
		Short: "Show a reminder now",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(cmd)
			if err != nil {
				return err
			}
			return c.ShowReminder(cmd.Context())
		},
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Print the interval and the next reminder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(cmd)
			if err != nil {
				return err
			}
			status, err := c.Status(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "interval:   %s\n", reminder.Interval(status.Interval))
			fmt.Fprintf(out, "last shown: %s\n", status.LastShown.Local().Format(time.DateTime))
			if status.Overdue {
				fmt.Fprintln(out, "next:       overdue")
			} else {
				fmt.Fprintf(out, "next:       in %s (%s)\n", status.NextIn, status.NextAt.Local().Format(time.DateTime))
			}
			return nil
		},
	}

	rootCmd.AddCommand(intervalCmd, showCmd, hideCmd, remindCmd, statusCmd)

	return rootCmd
}

func newClient(cmd *cobra.Command) (*client.Client, error) {
	addr, err := cmd.Flags().GetString("addr")
	if err != nil {
		return nil, err
	}
	return client.New(addr, requestTimeout)
}

// parseInterval accepts plain seconds ("900") or a Go duration ("15m").
func parseInterval(raw string) (reminder.Interval, error) {
	if seconds, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return reminder.NewInterval(seconds)
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid interval %q: expected seconds or a duration like 15m", raw)
	}
	return reminder.IntervalFromDuration(d)
}
