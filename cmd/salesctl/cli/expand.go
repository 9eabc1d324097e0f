package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// newExpandCmd não consulta a API
func newExpandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "expand <from> <to>",
		Short: "Print every calendar date between two dates, inclusive",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := domain.ParseCalendarDate(args[0])
			if err != nil {
				return err
			}
			to, err := domain.ParseCalendarDate(args[1])
			if err != nil {
				return err
			}

			dates, err := domain.ExpandDates(from, to)
			if err != nil {
				return err
			}

			for _, date := range dates {
				fmt.Fprintln(cmd.OutOrStdout(), date)
			}
			return nil
		},
	}
}
