package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/betvault/betd/config"
	"github.com/betvault/betd/internal/core/application"
	"github.com/betvault/betd/internal/core/ports"
	"github.com/betvault/betd/internal/infrastructure/ledger"
	"github.com/betvault/betd/internal/infrastructure/pubsub"
	dbbadger "github.com/betvault/betd/internal/infrastructure/storage/db/badger"
)

type services struct {
	operator application.OperatorService
	trader   application.TraderService
	pubsub   ports.SecurePubSub
}

// getServices opens the local store and wires the application services
// on top of it. The returned closer must be deferred by every command.
func getServices() (*services, func(), error) {
	repoManager, err := dbbadger.NewDbManager(config.GetDbDir(), nil)
	if err != nil {
		return nil, nil, fmt.Errorf("opening db: %w", err)
	}

	pubsubSvc, err := pubsub.NewService(
		repoManager.PubSubStore,
		time.Duration(config.GetInt(config.WebhookTimeoutKey))*time.Second,
	)
	if err != nil {
		repoManager.Close()
		return nil, nil, err
	}

	clock := ports.NewSystemClock()
	tokenLedger := ledger.NewTokenLedger(repoManager)

	svc := &services{
		operator: application.NewOperatorService(
			repoManager, tokenLedger, clock, pubsubSvc,
		),
		trader: application.NewTraderService(
			repoManager, tokenLedger, clock, pubsubSvc,
			config.GetBool(config.FaucetEnabledKey),
		),
		pubsub: pubsubSvc,
	}

	cleanup := func() {
		pubsubSvc.Close()
		repoManager.Close()
	}
	return svc, cleanup, nil
}

// parseTimestamp accepts either an RFC3339 datetime or Unix seconds.
func parseTimestamp(value string) (time.Time, error) {
	if ts, err := strconv.ParseInt(value, 10, 64); err == nil {
		return time.Unix(ts, 0), nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf(
			"invalid timestamp %q, must be RFC3339 or Unix seconds", value,
		)
	}
	return t, nil
}
