package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var withdrawfee = cli.Command{
	Name:  "withdrawfee",
	Usage: "withdraw the creator fee of a resolved market",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "market",
			Usage:    "the market key",
			Required: true,
		},
	},
	Action: withdrawFeeAction,
}

func withdrawFeeAction(ctx *cli.Context) error {
	identity, err := getIdentity()
	if err != nil {
		return err
	}

	svc, cleanup, err := getServices()
	if err != nil {
		return err
	}
	defer cleanup()

	amount, err := svc.operator.WithdrawCreatorFee(
		ctx.Context, ctx.String("market"), identity,
	)
	if err != nil {
		return err
	}

	fmt.Printf("withdrew creator fee of %d\n", amount)
	return nil
}
