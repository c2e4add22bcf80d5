package cli

import (
	"fmt"
	"strconv"

	"github.com/pratik-mahalle/calendrical/internal/domain/calendar"
	"github.com/spf13/cobra"
)

func newZonesCmd(st *state) *cobra.Command {
	var prefix string

	cmd := &cobra.Command{
		Use:     "zones",
		Short:   "List the available time zone ids",
		Example: `  calendrical zones --prefix europe/`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := st.service.Zones(cmd.Context(), prefix)
			if err != nil {
				return err
			}
			return printOutput(cmd.OutOrStdout(), st.getOutputFormat(), ids, func() error {
				for _, id := range ids {
					if _, err := fmt.Fprintln(cmd.OutOrStdout(), id); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "", "only list ids starting with this prefix (case-insensitive)")
	cmd.AddCommand(newZonesSystemCmd(st))
	return cmd
}

func newZonesSystemCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "system",
		Short: "Show the current system time zone",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := st.service.SystemZone(cmd.Context())
			if err != nil {
				return err
			}
			return printOutput(cmd.OutOrStdout(), st.getOutputFormat(), map[string]string{"zone": id}, func() error {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), id)
				return err
			})
		},
	}
}

func newOffsetCmd(st *state) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "offset",
		Short: "Show the UTC offset of a zone",
		Example: `  calendrical offset -z America/New_York
  calendrical offset -z Europe/Berlin --at 2021-07-01T00:00:00Z`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := st.service.Offset(cmd.Context(), calendar.InstantQuery{
				Instant: at,
				Zone:    st.v.GetString("zone"),
			})
			if err != nil {
				return err
			}
			return printOutput(cmd.OutOrStdout(), st.getOutputFormat(), o, func() error {
				return keyValues(cmd.OutOrStdout(),
					"zone", o.Zone,
					"instant", o.Instant,
					"offset", o.Offset,
					"total seconds", strconv.Itoa(o.TotalSeconds),
				)
			})
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "instant to read the offset at (default: now)")
	return cmd
}
