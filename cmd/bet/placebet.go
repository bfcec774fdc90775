package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/betvault/betd/internal/core/domain"
)

var placebet = cli.Command{
	Name:  "bet",
	Usage: "stake an amount on one side of an open market",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "market",
			Usage:    "the market key",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "side",
			Usage:    "the side to stake on, A or B",
			Required: true,
		},
		&cli.Uint64Flag{
			Name:     "amount",
			Usage:    "the amount to stake",
			Required: true,
		},
	},
	Action: placeBetAction,
}

func placeBetAction(ctx *cli.Context) error {
	identity, err := getIdentity()
	if err != nil {
		return err
	}

	side, err := domain.ParseSide(ctx.String("side"))
	if err != nil {
		return err
	}

	svc, cleanup, err := getServices()
	if err != nil {
		return err
	}
	defer cleanup()

	info, err := svc.trader.PlaceBet(
		ctx.Context, ctx.String("market"), identity, side, ctx.Uint64("amount"),
	)
	if err != nil {
		return err
	}

	fmt.Printf(
		"bet placed, position now stakes %d on side %s\n",
		info.Amount, info.Side,
	)
	return nil
}
