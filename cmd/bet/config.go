package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var configCmd = cli.Command{
	Name:  "config",
	Usage: "print or initialize the CLI state",
	Action: func(ctx *cli.Context) error {
		state, err := getState()
		if err != nil {
			return err
		}
		for key, value := range state {
			fmt.Printf("%s: %s\n", key, value)
		}
		return nil
	},
	Subcommands: []*cli.Command{
		{
			Name:  "init",
			Usage: "set the identity used to sign operations",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "identity",
					Usage:    "the account name operations are submitted as",
					Required: true,
				},
			},
			Action: func(ctx *cli.Context) error {
				return setState(map[string]string{
					"identity": ctx.String("identity"),
				})
			},
		},
	},
}
