package application

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"github.com/betvault/betd/internal/core/domain"
	"github.com/betvault/betd/internal/core/ports"
)

// MarketWatcher periodically triggers the permissionless lifecycle
// transitions: it closes betting on markets past their end time and
// cancels pending markets past their resolve deadline. Anyone could
// submit these, the watcher just makes sure somebody does.
type MarketWatcher struct {
	cron        *cron.Cron
	repoManager ports.RepoManager
	operator    OperatorService
	clock       ports.Clock
}

// NewMarketWatcher returns a watcher scanning the markets every
// intervalSeconds.
func NewMarketWatcher(
	repoManager ports.RepoManager,
	operator OperatorService,
	clock ports.Clock,
	intervalSeconds int,
) (*MarketWatcher, error) {
	w := &MarketWatcher{
		cron:        cron.New(),
		repoManager: repoManager,
		operator:    operator,
		clock:       clock,
	}

	if _, err := w.cron.AddFunc(
		fmt.Sprintf("@every %ds", intervalSeconds), w.scanMarkets,
	); err != nil {
		return nil, err
	}
	return w, nil
}

// Start starts the watcher.
func (w *MarketWatcher) Start() {
	w.cron.Start()
}

// Stop stops the watcher, waiting for a running scan to complete.
func (w *MarketWatcher) Stop() {
	<-w.cron.Stop().Done()
}

func (w *MarketWatcher) scanMarkets() {
	ctx := context.Background()
	now := w.clock.Now()

	openMarkets, err := w.repoManager.MarketRepository().GetMarketsForStatus(
		ctx, domain.MarketStatusOpen,
	)
	if err != nil {
		log.WithError(err).Warn("watcher: failed to list open markets")
		return
	}
	for i := range openMarkets {
		market := openMarkets[i]
		if now.Before(market.EndTime) {
			continue
		}
		if err := w.operator.CloseBetting(ctx, market.Key); err != nil {
			log.WithError(err).Warnf(
				"watcher: failed to close betting on market %s", market.Key,
			)
			continue
		}
		log.Debugf("watcher: closed betting on market %s", market.Key)
	}

	pendingMarkets, err := w.repoManager.MarketRepository().GetMarketsForStatus(
		ctx, domain.MarketStatusPendingResolve,
	)
	if err != nil {
		log.WithError(err).Warn("watcher: failed to list pending markets")
		return
	}
	for i := range pendingMarkets {
		market := pendingMarkets[i]
		if now.Before(market.ResolveDeadline) {
			continue
		}
		if err := w.operator.CancelExpiredMarket(ctx, market.Key); err != nil {
			log.WithError(err).Warnf(
				"watcher: failed to cancel expired market %s", market.Key,
			)
			continue
		}
		log.Debugf("watcher: cancelled expired market %s", market.Key)
	}
}
