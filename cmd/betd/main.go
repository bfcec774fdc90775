package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/betvault/betd/config"
	"github.com/betvault/betd/internal/core/application"
	"github.com/betvault/betd/internal/core/ports"
	"github.com/betvault/betd/internal/infrastructure/ledger"
	"github.com/betvault/betd/internal/infrastructure/pubsub"
	dbbadger "github.com/betvault/betd/internal/infrastructure/storage/db/badger"
)

func main() {
	log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))

	repoManager, err := dbbadger.NewDbManager(config.GetDbDir(), nil)
	if err != nil {
		log.WithError(err).Panic("error while opening db")
	}
	defer repoManager.Close()

	pubsubSvc, err := pubsub.NewService(
		repoManager.PubSubStore,
		time.Duration(config.GetInt(config.WebhookTimeoutKey))*time.Second,
	)
	if err != nil {
		log.WithError(err).Panic("error while starting pubsub service")
	}
	defer pubsubSvc.Close()

	clock := ports.NewSystemClock()
	tokenLedger := ledger.NewTokenLedger(repoManager)

	operatorSvc := application.NewOperatorService(
		repoManager, tokenLedger, clock, pubsubSvc,
	)

	if !config.GetBool(config.NoWatcherKey) {
		watcher, err := application.NewMarketWatcher(
			repoManager, operatorSvc, clock,
			config.GetInt(config.WatcherIntervalKey),
		)
		if err != nil {
			log.WithError(err).Panic("error while starting market watcher")
		}
		watcher.Start()
		defer watcher.Stop()

		log.Debug("market watcher is running")
	}

	log.Infof("daemon is running with datadir %s", config.GetDatadir())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	<-sigChan

	log.Debug("exiting")
}
