// salesctl consulta a API de vendas pela linha de comando
//
// Uso:
//
//	salesctl states
//	salesctl dates "New York" --expand
//	salesctl total California Profit
//	salesctl summary --state California --from 2017-01-01 --to 2017-12-31
//	salesctl dashboard --state Texas --from 2016-01-01
//	salesctl expand 2023-01-30 2023-02-02
//	salesctl ranking
package main

import (
	"fmt"
	"os"

	"github.com/vfg2006/sales-dashboard-api/cmd/salesctl/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
