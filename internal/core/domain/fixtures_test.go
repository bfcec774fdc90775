package domain_test

import (
	"time"

	"github.com/betvault/betd/internal/core/domain"
)

const (
	creator = "alice"
	asset   = "usd-token"
)

var (
	now             = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	endTime         = now.Add(24 * time.Hour)
	resolveDeadline = endTime.Add(48 * time.Hour)
)

func newTestMarket() *domain.Market {
	market, err := domain.NewMarket(
		creator, asset, 1000, endTime, resolveDeadline, "test market", now,
	)
	if err != nil {
		panic(err)
	}
	return market
}

func newTestMarketWithStakes(stakedA, stakedB uint64) *domain.Market {
	market := newTestMarket()
	market.StakedA = stakedA
	market.StakedB = stakedB
	return market
}

func newPendingResolveMarket(stakedA, stakedB uint64) *domain.Market {
	market := newTestMarketWithStakes(stakedA, stakedB)
	if err := market.CloseBetting(endTime); err != nil {
		panic(err)
	}
	return market
}

func newResolvedMarket(stakedA, stakedB uint64, outcome domain.Side) *domain.Market {
	market := newPendingResolveMarket(stakedA, stakedB)
	if err := market.Resolve(creator, outcome, endTime.Add(time.Hour)); err != nil {
		panic(err)
	}
	return market
}

func newCancelledMarket(stakedA, stakedB uint64) *domain.Market {
	market := newPendingResolveMarket(stakedA, stakedB)
	if err := market.CancelExpired(resolveDeadline); err != nil {
		panic(err)
	}
	return market
}

func newTestPosition(
	market *domain.Market, owner string, side domain.Side, amount uint64,
) *domain.Position {
	position := domain.NewPosition(market.Key, owner, side, now)
	position.Amount = amount
	return position
}
