package cli

import (
	"fmt"
	"strconv"

	"github.com/pratik-mahalle/calendrical/internal/domain/calendar"
	"github.com/spf13/cobra"
)

func newLocalCmd(st *state) *cobra.Command {
	var preferOffset string

	cmd := &cobra.Command{
		Use:   "local <date-time>",
		Short: "Resolve a local date-time in a zone to an instant",
		Long: `Resolve a local date-time in a zone to an instant. A date-time in a
gap is moved forward by the length of the gap; inside an overlap the
earlier offset is used unless --prefer-offset names the other one.`,
		Example: `  calendrical local 2021-03-28T02:30 --zone Europe/Berlin
  calendrical local 2021-10-31T02:30 -z Europe/Berlin --prefer-offset +01:00`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			z, err := st.service.ToInstant(cmd.Context(), calendar.LocalQuery{
				DateTime:        args[0],
				Zone:            st.v.GetString("zone"),
				PreferredOffset: preferOffset,
			})
			if err != nil {
				return err
			}
			return printZoned(cmd, st, z)
		},
	}

	cmd.Flags().StringVar(&preferOffset, "prefer-offset", "", "offset to use inside an overlap, e.g. +01:00")
	return cmd
}

func newInstantCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:     "instant <instant>",
		Short:   "Read an instant in a zone",
		Example: `  calendrical instant 2021-03-28T01:30:00Z --zone Asia/Kolkata`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			z, err := st.service.ToLocal(cmd.Context(), calendar.InstantQuery{
				Instant: args[0],
				Zone:    st.v.GetString("zone"),
			})
			if err != nil {
				return err
			}
			return printZoned(cmd, st, z)
		},
	}
}

func newPlusCmd(st *state) *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "plus <instant> [<amount> <unit>]",
		Short: "Add units or a period to an instant",
		Long: `Add a number of units, or an ISO-8601 period with --period, to an
instant. Date-based units and periods follow the calendar of the zone.
Put negative amounts after "--".`,
		Example: `  calendrical plus 2021-03-27T12:00:00+01:00 1 DAY -z Europe/Berlin
  calendrical plus 2021-03-27T12:00:00Z --period P1M2DT3H
  calendrical plus -- 2021-03-31T00:00:00Z -1 MONTH`,
		Args: amountArgs(&period),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := calendar.PlusQuery{
				Instant: args[0],
				Period:  period,
				Zone:    st.v.GetString("zone"),
			}
			if len(args) == 3 {
				amount, err := parseAmount(args[1])
				if err != nil {
					return err
				}
				q.Amount, q.Unit = amount, args[2]
			}

			z, err := st.service.Plus(cmd.Context(), q)
			if err != nil {
				return err
			}
			return printZoned(cmd, st, z)
		},
	}

	cmd.Flags().StringVar(&period, "period", "", "ISO-8601 period to add instead of units, e.g. P1DT2H")
	return cmd
}

func newUntilCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:     "until <start> <end> <unit>",
		Short:   "Count whole units between two instants",
		Example: `  calendrical until 2021-03-27T12:00:00+01:00 2021-03-28T10:00:00Z HOUR`,
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := st.service.Until(cmd.Context(), calendar.UntilQuery{
				Start: args[0],
				End:   args[1],
				Unit:  args[2],
				Zone:  st.v.GetString("zone"),
			})
			if err != nil {
				return err
			}
			return printOutput(cmd.OutOrStdout(), st.getOutputFormat(), a, func() error {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", a.Amount, a.Unit)
				return err
			})
		},
	}
}

func newPeriodCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:     "period <start> <end>",
		Short:   "Split the distance between two instants into a period",
		Example: `  calendrical period 2021-01-15T00:00:00Z 2021-03-29T01:00:00Z -z UTC`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := st.service.Period(cmd.Context(), calendar.PeriodQuery{
				Start: args[0],
				End:   args[1],
				Zone:  st.v.GetString("zone"),
			})
			if err != nil {
				return err
			}
			return printPeriod(cmd, st, p)
		},
	}
}

func newDateCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "date",
		Short: "Calendar arithmetic on dates",
	}

	cmd.AddCommand(newDatePlusCmd(st))
	cmd.AddCommand(newDatePeriodCmd(st))

	return cmd
}

func newDatePlusCmd(st *state) *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "plus <date> [<amount> <unit>]",
		Short: "Add date units or a date period to a date",
		Example: `  calendrical date plus 2021-01-31 1 MONTH
  calendrical date plus 2020-02-29 --period P1Y`,
		Args: amountArgs(&period),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := calendar.DatePlusQuery{Date: args[0], Period: period}
			if len(args) == 3 {
				amount, err := parseAmount(args[1])
				if err != nil {
					return err
				}
				q.Amount, q.Unit = amount, args[2]
			}

			d, err := st.service.DatePlus(cmd.Context(), q)
			if err != nil {
				return err
			}
			return printOutput(cmd.OutOrStdout(), st.getOutputFormat(), d, func() error {
				return keyValues(cmd.OutOrStdout(),
					"date", d.Date,
					"day of week", d.DayOfWeek,
					"day of year", strconv.Itoa(d.DayOfYear),
					"epoch days", strconv.FormatInt(d.EpochDays, 10),
					"leap year", strconv.FormatBool(d.LeapYear),
				)
			})
		},
	}

	cmd.Flags().StringVar(&period, "period", "", "ISO-8601 date period to add instead of units, e.g. P1Y2M")
	return cmd
}

func newDatePeriodCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:     "period <start> <end>",
		Short:   "Calendar distance between two dates",
		Example: `  calendrical date period 2020-02-29 2021-02-28`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := st.service.DatePeriod(cmd.Context(), calendar.DatePeriodQuery{Start: args[0], End: args[1]})
			if err != nil {
				return err
			}
			return printPeriod(cmd, st, p)
		},
	}
}

// amountArgs accepts <value> with --period, or <value> <amount> <unit>
func amountArgs(period *string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if *period != "" {
			return cobra.ExactArgs(1)(cmd, args)
		}
		if len(args) != 3 {
			return fmt.Errorf("expected <amount> <unit> or --period, got %d arg(s)", len(args))
		}
		return nil
	}
}

func parseAmount(s string) (int64, error) {
	amount, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return amount, nil
}

func printZoned(cmd *cobra.Command, st *state, z *calendar.Zoned) error {
	return printOutput(cmd.OutOrStdout(), st.getOutputFormat(), z, func() error {
		return keyValues(cmd.OutOrStdout(),
			"instant", z.Instant,
			"local", z.LocalDateTime,
			"offset", z.Offset,
			"zone", z.Zone,
			"day of week", z.DayOfWeek,
			"epoch seconds", strconv.FormatInt(z.EpochSeconds, 10),
		)
	})
}

func printPeriod(cmd *cobra.Command, st *state, p *calendar.Period) error {
	return printOutput(cmd.OutOrStdout(), st.getOutputFormat(), p, func() error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), p.Period)
		return err
	})
}
