package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var claim = cli.Command{
	Name:  "claim",
	Usage: "settle your position on a finalized market",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "market",
			Usage:    "the market key",
			Required: true,
		},
		&cli.BoolFlag{
			Name:  "preview",
			Usage: "show the settlement details without claiming",
		},
	},
	Action: claimAction,
}

func claimAction(ctx *cli.Context) error {
	identity, err := getIdentity()
	if err != nil {
		return err
	}

	svc, cleanup, err := getServices()
	if err != nil {
		return err
	}
	defer cleanup()

	if ctx.Bool("preview") {
		info, err := svc.trader.PreviewPayout(
			ctx.Context, ctx.String("market"), identity,
		)
		if err != nil {
			return err
		}
		fmt.Printf("total staked: %d\n", info.TotalStaked)
		fmt.Printf("fee: %d\n", info.FeeAmount)
		fmt.Printf("distributable: %d\n", info.Distributable)
		fmt.Printf("payout: %d\n", info.Payout)
		return nil
	}

	payout, err := svc.trader.Claim(ctx.Context, ctx.String("market"), identity)
	if err != nil {
		return err
	}

	fmt.Printf("claimed %d\n", payout)
	return nil
}
