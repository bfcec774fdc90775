package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/betvault/betd/internal/core/domain"
)

var resolvemarket = cli.Command{
	Name:  "resolve",
	Usage: "report the outcome of a market pending resolution",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "market",
			Usage:    "the market key",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "outcome",
			Usage:    "the winning side, A or B",
			Required: true,
		},
	},
	Action: resolveMarketAction,
}

func resolveMarketAction(ctx *cli.Context) error {
	identity, err := getIdentity()
	if err != nil {
		return err
	}

	outcome, err := domain.ParseSide(ctx.String("outcome"))
	if err != nil {
		return err
	}

	svc, cleanup, err := getServices()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := svc.operator.ResolveMarket(
		ctx.Context, ctx.String("market"), identity, outcome,
	); err != nil {
		return err
	}

	fmt.Printf("market resolved with outcome %s\n", outcome)
	return nil
}
