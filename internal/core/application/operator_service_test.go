package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/betvault/betd/internal/core/application"
	"github.com/betvault/betd/internal/core/domain"
)

func TestInitializeMarket(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	info, err := svc.operator.InitializeMarket(ctx, testMarketRequest())
	require.NoError(t, err)
	require.NotNil(t, info)
	require.True(t, info.IsOpen())
	require.Equal(t, domain.MarketKey("alice", "usd-token"), info.Key)
	require.Equal(t, "1", info.OddsA.String())
	require.Equal(t, "1", info.OddsB.String())

	found, err := svc.operator.GetMarketInfo(ctx, info.Key)
	require.NoError(t, err)
	require.Equal(t, info.Key, found.Key)
	require.Zero(t, found.VaultBalance)
}

func TestFailingInitializeMarket(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	_, err := svc.operator.InitializeMarket(ctx, testMarketRequest())
	require.NoError(t, err)

	// Same (creator, asset) pair derives the same market key.
	_, err = svc.operator.InitializeMarket(ctx, testMarketRequest())
	require.EqualError(t, err, application.ErrMarketAlreadyExists.Error())

	req := testMarketRequest()
	req.FeeBasisPoints = domain.MaxFeeBasisPoints + 1
	_, err = svc.operator.InitializeMarket(ctx, req)
	require.EqualError(t, err, domain.ErrFeeTooHigh.Error())
}

func TestMarketLifecycle(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	req := testMarketRequest()

	info, err := svc.operator.InitializeMarket(ctx, req)
	require.NoError(t, err)

	require.NoError(t, svc.trader.Faucet(ctx, "bob", "usd-token", 600))
	_, err = svc.trader.PlaceBet(ctx, info.Key, "bob", domain.SideA, 600)
	require.NoError(t, err)

	// Betting still running, closing is premature.
	err = svc.operator.CloseBetting(ctx, info.Key)
	require.EqualError(t, err, domain.ErrBettingNotEnded.Error())

	svc.clock.advanceTo(req.EndTime)
	require.NoError(t, svc.operator.CloseBetting(ctx, info.Key))

	found, err := svc.operator.GetMarketInfo(ctx, info.Key)
	require.NoError(t, err)
	require.True(t, found.IsPendingResolve())

	require.NoError(
		t, svc.operator.ResolveMarket(ctx, info.Key, "alice", domain.SideA),
	)

	found, err = svc.operator.GetMarketInfo(ctx, info.Key)
	require.NoError(t, err)
	require.True(t, found.IsResolved())
	require.Equal(t, domain.SideA, *found.Outcome)
}

func TestResolveUnknownMarket(t *testing.T) {
	svc := newTestServices(t)

	err := svc.operator.ResolveMarket(
		context.Background(), "unknown", "alice", domain.SideA,
	)
	require.EqualError(t, err, application.ErrMarketNotFound.Error())
}

func TestCancelExpiredMarket(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	req := testMarketRequest()

	info, err := svc.operator.InitializeMarket(ctx, req)
	require.NoError(t, err)

	svc.clock.advanceTo(req.EndTime)
	require.NoError(t, svc.operator.CloseBetting(ctx, info.Key))

	// The resolve window is still running.
	err = svc.operator.CancelExpiredMarket(ctx, info.Key)
	require.EqualError(t, err, domain.ErrResolutionNotExpired.Error())

	svc.clock.advanceTo(req.ResolveDeadline)

	// The creator missed the window.
	err = svc.operator.ResolveMarket(ctx, info.Key, "alice", domain.SideA)
	require.EqualError(t, err, domain.ErrResolutionDeadlinePassed.Error())

	require.NoError(t, svc.operator.CancelExpiredMarket(ctx, info.Key))

	found, err := svc.operator.GetMarketInfo(ctx, info.Key)
	require.NoError(t, err)
	require.True(t, found.IsCancelled())
}

func TestWithdrawCreatorFee(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	req := testMarketRequest()

	info, err := svc.operator.InitializeMarket(ctx, req)
	require.NoError(t, err)

	require.NoError(t, svc.trader.Faucet(ctx, "bob", "usd-token", 600))
	require.NoError(t, svc.trader.Faucet(ctx, "carol", "usd-token", 400))
	_, err = svc.trader.PlaceBet(ctx, info.Key, "bob", domain.SideA, 600)
	require.NoError(t, err)
	_, err = svc.trader.PlaceBet(ctx, info.Key, "carol", domain.SideB, 400)
	require.NoError(t, err)

	svc.clock.advanceTo(req.EndTime)
	require.NoError(t, svc.operator.CloseBetting(ctx, info.Key))
	require.NoError(
		t, svc.operator.ResolveMarket(ctx, info.Key, "alice", domain.SideA),
	)

	amount, err := svc.operator.WithdrawCreatorFee(ctx, info.Key, "alice")
	require.NoError(t, err)
	require.Equal(t, uint64(100), amount)

	balance, err := svc.trader.GetBalance(ctx, "alice", "usd-token")
	require.NoError(t, err)
	require.Equal(t, uint64(100), balance)

	// Second withdrawal is rejected and pays nothing.
	_, err = svc.operator.WithdrawCreatorFee(ctx, info.Key, "alice")
	require.EqualError(t, err, domain.ErrFeeAlreadyWithdrawn.Error())

	balance, err = svc.trader.GetBalance(ctx, "alice", "usd-token")
	require.NoError(t, err)
	require.Equal(t, uint64(100), balance)
}

func TestFailingWithdrawCreatorFee(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	req := testMarketRequest()

	info, err := svc.operator.InitializeMarket(ctx, req)
	require.NoError(t, err)

	require.NoError(t, svc.trader.Faucet(ctx, "bob", "usd-token", 600))
	_, err = svc.trader.PlaceBet(ctx, info.Key, "bob", domain.SideA, 600)
	require.NoError(t, err)

	// Not resolved yet.
	_, err = svc.operator.WithdrawCreatorFee(ctx, info.Key, "alice")
	require.EqualError(t, err, domain.ErrMarketNotResolved.Error())

	svc.clock.advanceTo(req.EndTime)
	require.NoError(t, svc.operator.CloseBetting(ctx, info.Key))
	require.NoError(
		t, svc.operator.ResolveMarket(ctx, info.Key, "alice", domain.SideA),
	)

	_, err = svc.operator.WithdrawCreatorFee(ctx, info.Key, "mallory")
	require.EqualError(t, err, domain.ErrUnauthorizedWithdrawal.Error())
}

func TestListMarkets(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	_, err := svc.operator.InitializeMarket(ctx, testMarketRequest())
	require.NoError(t, err)

	req := testMarketRequest()
	req.Asset = "eur-token"
	_, err = svc.operator.InitializeMarket(ctx, req)
	require.NoError(t, err)

	infos, err := svc.operator.ListMarkets(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 2)
}

func TestMarketOdds(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	info, err := svc.operator.InitializeMarket(ctx, testMarketRequest())
	require.NoError(t, err)

	require.NoError(t, svc.trader.Faucet(ctx, "bob", "usd-token", 600))
	require.NoError(t, svc.trader.Faucet(ctx, "carol", "usd-token", 400))
	_, err = svc.trader.PlaceBet(ctx, info.Key, "bob", domain.SideA, 600)
	require.NoError(t, err)
	_, err = svc.trader.PlaceBet(ctx, info.Key, "carol", domain.SideB, 400)
	require.NoError(t, err)

	found, err := svc.operator.GetMarketInfo(ctx, info.Key)
	require.NoError(t, err)
	// 1000 staked in total quotes 1000/600 against 1000/400.
	require.True(t, found.OddsA.Equal(decimalFromString(t, "1.66666667")))
	require.True(t, found.OddsB.Equal(decimalFromString(t, "2.5")))
	require.Equal(t, uint64(1000), found.VaultBalance)
}
