package cli

import (
	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-dashboard-api/internal/client"
)

func newDashboardCmd(newClient clientFactory) *cobra.Command {
	var state, from, to string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Load the dashboard and print the view for a selection",
		Long: `Load the dataset once, select a state (the first one by default),
then narrow the date range like the web dashboard does.

Examples:
  salesctl dashboard
  salesctl dashboard --state Texas --from 2016-01-01 --to 2016-06-30`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}

			dashboard := client.NewDashboard(c)
			if err := dashboard.Load(cmd.Context()); err != nil {
				return err
			}

			if state != "" {
				if err := dashboard.SelectState(cmd.Context(), state); err != nil {
					return err
				}
			}

			dateRange, err := parseRange(from, to)
			if err != nil {
				return err
			}
			if !dateRange.MinDate.IsZero() {
				if err := dashboard.SelectFrom(dateRange.MinDate); err != nil {
					return err
				}
			}
			if !dateRange.MaxDate.IsZero() {
				if err := dashboard.SelectTo(dateRange.MaxDate); err != nil {
					return err
				}
			}

			view := dashboard.View()
			return printJSON(cmd, map[string]any{
				"selection": view.Selection,
				"totals":    view.Totals,
				"states":    view.States,
				"days":      len(view.FromOptions),
			})
		},
	}

	cmd.Flags().StringVar(&state, "state", "", "State to select")
	cmd.Flags().StringVar(&from, "from", "", "First order date, YYYY-MM-DD")
	cmd.Flags().StringVar(&to, "to", "", "Last order date, YYYY-MM-DD")

	return cmd
}
