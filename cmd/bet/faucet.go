package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var faucet = cli.Command{
	Name:  "faucet",
	Usage: "credit your balance on the embedded ledger (regtest only)",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "asset",
			Usage:    "the token type",
			Required: true,
		},
		&cli.Uint64Flag{
			Name:     "amount",
			Usage:    "the amount to credit",
			Required: true,
		},
	},
	Action: faucetAction,
}

func faucetAction(ctx *cli.Context) error {
	identity, err := getIdentity()
	if err != nil {
		return err
	}

	svc, cleanup, err := getServices()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := svc.trader.Faucet(
		ctx.Context, identity, ctx.String("asset"), ctx.Uint64("amount"),
	); err != nil {
		return err
	}

	fmt.Println("balance credited")
	return nil
}
