package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var addwebhook = cli.Command{
	Name:  "addwebhook",
	Usage: "register a webhook notified on a market event topic",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "topic",
			Usage:    "the event topic, '*' for all",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "endpoint",
			Usage:    "the URL notified on every event",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "secret",
			Usage: "optional secret used to sign deliveries",
		},
	},
	Action: addWebhookAction,
}

var removewebhook = cli.Command{
	Name:  "removewebhook",
	Usage: "remove a registered webhook",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "id",
			Usage:    "the webhook id",
			Required: true,
		},
	},
	Action: removeWebhookAction,
}

func addWebhookAction(ctx *cli.Context) error {
	svc, cleanup, err := getServices()
	if err != nil {
		return err
	}
	defer cleanup()

	id, err := svc.pubsub.Subscribe(
		ctx.String("topic"), ctx.String("endpoint"), ctx.String("secret"),
	)
	if err != nil {
		return err
	}

	fmt.Printf("webhook registered with id %s\n", id)
	return nil
}

func removeWebhookAction(ctx *cli.Context) error {
	svc, cleanup, err := getServices()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := svc.pubsub.Unsubscribe("", ctx.String("id")); err != nil {
		return err
	}

	fmt.Println("webhook removed")
	return nil
}
