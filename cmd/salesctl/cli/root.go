package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vfg2006/sales-dashboard-api/internal/client"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

const apiURLKey = "api_url"

// NewRootCmd monta a árvore de comandos. A URL da API vem de --api-url ou SALES_API_URL.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("sales")
	v.SetDefault(apiURLKey, client.DefaultBaseURL)
	_ = v.BindEnv(apiURLKey)

	rootCmd := &cobra.Command{
		Use:   "salesctl",
		Short: "Query the sales dashboard API",
		Long: `salesctl reads the sales dataset through the dashboard API:
list states, inspect date ranges, aggregate totals and view the state ranking.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			// stdout fica só com o resultado
			logrus.SetOutput(cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().String("api-url", client.DefaultBaseURL, "Base URL of the sales API (env SALES_API_URL)")
	_ = v.BindPFlag(apiURLKey, rootCmd.PersistentFlags().Lookup("api-url"))

	newClient := func() (*client.Client, error) {
		return client.NewClient(v.GetString(apiURLKey))
	}

	rootCmd.AddCommand(newStatesCmd(newClient))
	rootCmd.AddCommand(newDatesCmd(newClient))
	rootCmd.AddCommand(newTotalCmd(newClient))
	rootCmd.AddCommand(newSummaryCmd(newClient))
	rootCmd.AddCommand(newDashboardCmd(newClient))
	rootCmd.AddCommand(newRankingCmd(newClient))
	rootCmd.AddCommand(newExpandCmd())

	return rootCmd
}

func Execute() error {
	return NewRootCmd().Execute()
}

type clientFactory func() (*client.Client, error)

func printJSON(cmd *cobra.Command, in any) error {
	out, err := utils.PrettyJson(in)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}
