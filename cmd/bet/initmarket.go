package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/betvault/betd/internal/core/application"
)

var initmarket = cli.Command{
	Name:  "init",
	Usage: "initialize a new market",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "asset",
			Usage:    "the token type staked on the market",
			Required: true,
		},
		&cli.UintFlag{
			Name:  "fee_bps",
			Usage: "creator fee in basis points (max 2000)",
		},
		&cli.StringFlag{
			Name:     "end",
			Usage:    "betting end time, RFC3339 or Unix seconds",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "deadline",
			Usage:    "resolve deadline, RFC3339 or Unix seconds",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "title",
			Usage:    "market title (max 64 bytes)",
			Required: true,
		},
	},
	Action: initMarketAction,
}

func initMarketAction(ctx *cli.Context) error {
	identity, err := getIdentity()
	if err != nil {
		return err
	}

	endTime, err := parseTimestamp(ctx.String("end"))
	if err != nil {
		return err
	}
	resolveDeadline, err := parseTimestamp(ctx.String("deadline"))
	if err != nil {
		return err
	}

	svc, cleanup, err := getServices()
	if err != nil {
		return err
	}
	defer cleanup()

	info, err := svc.operator.InitializeMarket(
		ctx.Context, application.InitMarketRequest{
			Creator:         identity,
			Asset:           ctx.String("asset"),
			FeeBasisPoints:  uint32(ctx.Uint("fee_bps")),
			EndTime:         endTime,
			ResolveDeadline: resolveDeadline,
			Title:           ctx.String("title"),
		},
	)
	if err != nil {
		return err
	}

	fmt.Println("market initialized")
	fmt.Printf("market: %s\n", info.Key)
	fmt.Printf("vault: %s\n", info.Vault)
	return nil
}
