package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var closemarket = cli.Command{
	Name:  "close",
	Usage: "close betting on an ended market",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "market",
			Usage:    "the market key",
			Required: true,
		},
	},
	Action: closeMarketAction,
}

func closeMarketAction(ctx *cli.Context) error {
	svc, cleanup, err := getServices()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := svc.operator.CloseBetting(ctx.Context, ctx.String("market")); err != nil {
		return err
	}

	fmt.Println("betting closed")
	return nil
}
