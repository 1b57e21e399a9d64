package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rezkam/ramadan/internal/application/planner"
	"github.com/rezkam/ramadan/internal/calendar"
	"github.com/rezkam/ramadan/internal/challenge"
	"github.com/rezkam/ramadan/internal/domain"
	"github.com/rezkam/ramadan/internal/quota"
)

func newWindowsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "windows",
		Short: "List the known observance windows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.traced(cmd.Context(), "windows", func(_ context.Context) error {
				engine := a.planner.Engine()
				out := cmd.OutOrStdout()

				if o, ok := engine.Override(); ok {
					_, _ = fmt.Fprintf(out, "override %s..%s applies to every year\n", o.Start, o.End)
				}

				table := engine.Table()
				fallback, _ := table.Fallback()

				_, _ = fmt.Fprintln(out, "YEAR  START       END         DAYS")
				for _, year := range table.Years() {
					w, _ := table.Lookup(year)
					mark := ""
					if year == fallback.Year {
						mark = "  fallback"
					}
					_, _ = fmt.Fprintf(out, "%-4d  %s  %s  %4d%s\n", w.Year, w.Start, w.End, w.TotalDays, mark)
				}
				return nil
			})
		},
	}
}

func newStatusCmd(a *app) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show where today falls in the current window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.traced(cmd.Context(), "status", func(ctx context.Context) error {
				now, err := a.parseAt(at)
				if err != nil {
					return err
				}

				today, err := a.planner.Today(ctx, now, nil, nil)
				if err != nil {
					return err
				}

				printStatus(cmd.OutOrStdout(), today)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "moment to evaluate (RFC 3339 or YYYY-MM-DD, default now)")
	return cmd
}

func printStatus(out io.Writer, t *planner.Today) {
	s := t.Status
	w := t.Window

	_, _ = fmt.Fprintf(out, "%s\n", t.Greeting)
	_, _ = fmt.Fprintf(out, "Today:   %s (%s)\n", t.Today, calendar.FormatDay(t.Today))
	_, _ = fmt.Fprintf(out, "Window:  %s\n", w)
	if t.FallbackUsed {
		_, _ = fmt.Fprintf(out, "         no window known for %d, showing fallback dates\n", w.Year)
	}

	switch {
	case s.IsActive:
		_, _ = fmt.Fprintf(out, "Status:  active, day %d of %d, %d days remaining\n", *s.CurrentDay, w.TotalDays, *s.DaysRemaining)
	case s.HasEnded:
		_, _ = fmt.Fprintln(out, "Status:  ended")
	default:
		_, _ = fmt.Fprintf(out, "Status:  starts in %d days\n", *s.DaysUntilStart)
	}

	week := challenge.Weeks(w.TotalDays)[s.WeekNumber-1]
	_, _ = fmt.Fprintf(out, "Week:    %d (%s)\n", week.Number, week.Title)
	_, _ = fmt.Fprintf(out, "Prompt:  %s\n", week.Prompt)
}

func newDayCmd(a *app) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "day <n>",
		Short: "Show the date of day n of the current window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.traced(cmd.Context(), "day", func(ctx context.Context) error {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("%w: day must be a number, got %q", domain.ErrInvalidArgument, args[0])
				}

				now, err := a.parseAt(at)
				if err != nil {
					return err
				}

				today, err := a.planner.Today(ctx, now, nil, nil)
				if err != nil {
					return err
				}

				d, err := today.Window.DayDate(n)
				if err != nil {
					return err
				}

				week := challenge.WeekOf(n, today.Window.TotalDays)
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Day %d of %d: %s (%s), week %d %s\n",
					n, today.Window.TotalDays, calendar.FormatDay(d), d, week.Number, week.Title)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "moment selecting the window (RFC 3339 or YYYY-MM-DD, default now)")
	return cmd
}

func newTargetCmd(a *app) *cobra.Command {
	var (
		at    string
		khatm int
		days  int
	)

	cmd := &cobra.Command{
		Use:   "target",
		Short: "Compute the daily reading target for a goal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.traced(cmd.Context(), "target", func(ctx context.Context) error {
				goalType, err := domain.GoalTypeForMultiplier(khatm)
				if err != nil {
					return err
				}
				totalPages, err := domain.TotalPagesFor(khatm)
				if err != nil {
					return err
				}

				if days == 0 {
					now, err := a.parseAt(at)
					if err != nil {
						return err
					}
					today, err := a.planner.Today(ctx, now, nil, nil)
					if err != nil {
						return err
					}
					days = today.Window.TotalDays
				}

				q, err := quota.NewGoalQuota(totalPages, days)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(out, "Goal:          %s (%d pages)\n", goalType, q.TotalPages)
				_, _ = fmt.Fprintf(out, "Days:          %d\n", q.WindowDays)
				_, _ = fmt.Fprintf(out, "Daily target:  %d pages\n", q.DailyTarget)
				printDistribution(out, q.Distribution)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&khatm, "khatm", 1, "number of complete readings")
	cmd.Flags().IntVar(&days, "days", 0, "days to spread the reading over (default: current window length)")
	cmd.Flags().StringVar(&at, "at", "", "moment selecting the window (RFC 3339 or YYYY-MM-DD, default now)")
	return cmd
}

func newDistributeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "distribute <target>",
		Short: "Split a daily page target across the five prayers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.traced(cmd.Context(), "distribute", func(_ context.Context) error {
				target, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("%w: target must be a number, got %q", domain.ErrInvalidArgument, args[0])
				}

				dist, err := quota.Distribute(target)
				if err != nil {
					return err
				}

				printDistribution(cmd.OutOrStdout(), dist)
				return nil
			})
		},
	}
}

func printDistribution(out io.Writer, dist map[domain.Slot]int) {
	for _, slot := range domain.Slots {
		_, _ = fmt.Fprintf(out, "  %-8s %3d\n", slot.Label(), dist[slot])
	}
}

func newChallengesCmd(a *app) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "challenges",
		Short: "Show the themed challenge weeks and where today falls",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.traced(cmd.Context(), "challenges", func(ctx context.Context) error {
				now, err := a.parseAt(at)
				if err != nil {
					return err
				}

				today, err := a.planner.Today(ctx, now, nil, nil)
				if err != nil {
					return err
				}

				printChallenges(cmd.OutOrStdout(), today)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "moment to evaluate (RFC 3339 or YYYY-MM-DD, default now)")
	return cmd
}

func printChallenges(out io.Writer, t *planner.Today) {
	totalDays := t.Window.TotalDays
	current := t.ChallengeDay

	for _, week := range challenge.Weeks(totalDays) {
		mark := ""
		if week.Contains(current) {
			mark = "  <- this week"
		}
		_, _ = fmt.Fprintf(out, "Week %d  %s (days %d-%d)%s\n", week.Number, week.Title, week.FirstDay, week.LastDay, mark)

		var states []string
		for day := week.FirstDay; day <= week.LastDay; day++ {
			states = append(states, fmt.Sprintf("%d:%s", day, challenge.StateOf(day, current, false)))
		}
		_, _ = fmt.Fprintf(out, "  %s\n", strings.Join(states, " "))
	}
}
