package main

import (
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
)

var listmarkets = cli.Command{
	Name:   "markets",
	Usage:  "list all markets",
	Action: listMarketsAction,
}

func listMarketsAction(ctx *cli.Context) error {
	svc, cleanup, err := getServices()
	if err != nil {
		return err
	}
	defer cleanup()

	infos, err := svc.operator.ListMarkets(ctx.Context)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"Market", "Title", "Status", "Staked A", "Staked B",
		"Odds A", "Odds B", "End", "Outcome",
	})

	for i := range infos {
		info := infos[i]
		outcome := "-"
		if info.Outcome != nil {
			outcome = info.Outcome.String()
		}
		table.Append([]string{
			info.Key[:8],
			info.Title,
			info.Status.String(),
			fmt.Sprintf("%d", info.StakedA),
			fmt.Sprintf("%d", info.StakedB),
			info.OddsA.StringFixed(2),
			info.OddsB.StringFixed(2),
			info.EndTime.Format(time.RFC3339),
			outcome,
		})
	}

	table.Render()
	return nil
}
