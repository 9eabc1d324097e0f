package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func newStatesCmd(newClient clientFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "states",
		Short: "List the states present in the dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}

			states, err := c.GetStates(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list states: %w", err)
			}

			for _, state := range states {
				fmt.Fprintln(cmd.OutOrStdout(), state)
			}
			return nil
		},
	}
}

func newDatesCmd(newClient clientFactory) *cobra.Command {
	var expand bool

	cmd := &cobra.Command{
		Use:   "dates <state>",
		Short: "Show the first and last order date of a state",
		Long: `Show the first and last order date of a state.

Examples:
  salesctl dates California
  salesctl dates "New York" --expand`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}

			dateRange, err := c.GetDateRange(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if !expand {
				return printJSON(cmd, dateRange)
			}

			dates, err := dateRange.Expand()
			if err != nil {
				return err
			}
			for _, date := range dates {
				fmt.Fprintln(cmd.OutOrStdout(), date)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&expand, "expand", false, "Print every date of the range")

	return cmd
}

func newTotalCmd(newClient clientFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "total <state> [field]",
		Short: "Sum a numeric field (Sales, Quantity, Discount, Profit) for a state",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			field := domain.FieldSales
			if len(args) == 2 {
				field = args[1]
			}

			c, err := newClient()
			if err != nil {
				return err
			}

			total, err := c.GetTotal(cmd.Context(), args[0], field)
			if err != nil {
				return err
			}

			return printJSON(cmd, total)
		},
	}
}

func newSummaryCmd(newClient clientFactory) *cobra.Command {
	var state, from, to string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show totals for a state and an optional date range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dateRange, err := parseRange(from, to)
			if err != nil {
				return err
			}

			c, err := newClient()
			if err != nil {
				return err
			}

			summary, err := c.GetSummary(cmd.Context(), domain.NewFilterSelection(state, dateRange))
			if err != nil {
				return err
			}

			return printJSON(cmd, summary)
		},
	}

	cmd.Flags().StringVar(&state, "state", "", "State name (required)")
	cmd.Flags().StringVar(&from, "from", "", "First order date, YYYY-MM-DD")
	cmd.Flags().StringVar(&to, "to", "", "Last order date, YYYY-MM-DD")
	_ = cmd.MarkFlagRequired("state")

	return cmd
}

func newRankingCmd(newClient clientFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "ranking",
		Short: "Show states ranked by total sales",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}

			snapshot, err := c.GetRanking(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "POS\tSTATE\tSALES\tPROFIT\tQUANTITY\tORDERS")
			for _, item := range snapshot.Ranking {
				fmt.Fprintf(w, "%d\t%s\t%.2f\t%.2f\t%d\t%d\n",
					item.Position, item.State, item.TotalSales, item.TotalProfit, item.TotalQuantity, item.Orders)
			}
			return w.Flush()
		},
	}
}

func parseRange(from, to string) (domain.DateRange, error) {
	var dateRange domain.DateRange

	if from != "" {
		date, err := domain.ParseCalendarDate(from)
		if err != nil {
			return dateRange, err
		}
		dateRange.MinDate = date
	}

	if to != "" {
		date, err := domain.ParseCalendarDate(to)
		if err != nil {
			return dateRange, err
		}
		dateRange.MaxDate = date
	}

	if !dateRange.MinDate.IsZero() && !dateRange.MaxDate.IsZero() && dateRange.MaxDate.Before(dateRange.MinDate) {
		return dateRange, domain.ErrInvalidDateRange
	}

	return dateRange, nil
}
