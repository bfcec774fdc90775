package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var balance = cli.Command{
	Name:  "balance",
	Usage: "show your balance for an asset",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "asset",
			Usage:    "the token type",
			Required: true,
		},
	},
	Action: balanceAction,
}

func balanceAction(ctx *cli.Context) error {
	identity, err := getIdentity()
	if err != nil {
		return err
	}

	svc, cleanup, err := getServices()
	if err != nil {
		return err
	}
	defer cleanup()

	amount, err := svc.trader.GetBalance(ctx.Context, identity, ctx.String("asset"))
	if err != nil {
		return err
	}

	fmt.Printf("%d\n", amount)
	return nil
}
