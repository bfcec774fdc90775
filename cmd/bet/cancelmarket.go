package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var cancelmarket = cli.Command{
	Name:  "cancel",
	Usage: "cancel a market whose resolve deadline has passed",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "market",
			Usage:    "the market key",
			Required: true,
		},
	},
	Action: cancelMarketAction,
}

func cancelMarketAction(ctx *cli.Context) error {
	svc, cleanup, err := getServices()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := svc.operator.CancelExpiredMarket(
		ctx.Context, ctx.String("market"),
	); err != nil {
		return err
	}

	fmt.Println("market cancelled, all stakes are refundable")
	return nil
}
