package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/betvault/betd/internal/core/domain"
)

func TestPayoutForWinner(t *testing.T) {
	t.Parallel()

	// 10% fee on a 1000 pool, single winner takes the whole 900 that
	// remains after the fee.
	market := newResolvedMarket(600, 400, domain.SideA)
	position := newTestPosition(market, "bob", domain.SideA, 600)

	info, err := market.PayoutFor(position)
	require.NoError(t, err)
	require.Equal(t, uint64(1000), info.TotalStaked)
	require.Equal(t, uint64(100), info.FeeAmount)
	require.Equal(t, uint64(900), info.Distributable)
	require.Equal(t, uint64(900), info.Payout)
}

func TestPayoutForLoser(t *testing.T) {
	t.Parallel()

	market := newResolvedMarket(600, 400, domain.SideA)
	position := newTestPosition(market, "carol", domain.SideB, 400)

	info, err := market.PayoutFor(position)
	require.NoError(t, err)
	require.Zero(t, info.Payout)
}

func TestPayoutProRata(t *testing.T) {
	t.Parallel()

	market := newResolvedMarket(600, 400, domain.SideA)

	tests := []struct {
		name           string
		amount         uint64
		expectedPayout uint64
	}{
		{"two_thirds_of_winning_side", 400, 600},
		{"one_third_of_winning_side", 200, 300},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			position := newTestPosition(market, "bob", domain.SideA, tt.amount)
			info, err := market.PayoutFor(position)
			require.NoError(t, err)
			require.Equal(t, tt.expectedPayout, info.Payout)
		})
	}
}

func TestPayoutTruncatesTowardZero(t *testing.T) {
	t.Parallel()

	// 900 distributable over 7 equal winning stakes does not divide
	// evenly. Each payout rounds down so the sum of all payouts never
	// exceeds the distributable pool.
	market := newResolvedMarket(7, 993, domain.SideA)

	var paid uint64
	for i := 0; i < 7; i++ {
		position := newTestPosition(market, "bob", domain.SideA, 1)
		info, err := market.PayoutFor(position)
		require.NoError(t, err)
		paid += info.Payout
	}
	require.LessOrEqual(t, paid, uint64(900))
}

func TestPayoutOnCancelledMarket(t *testing.T) {
	t.Parallel()

	// Refund of the original stake regardless of side, no fee deducted.
	market := newCancelledMarket(600, 400)

	for _, position := range []*domain.Position{
		newTestPosition(market, "bob", domain.SideA, 600),
		newTestPosition(market, "carol", domain.SideB, 400),
	} {
		info, err := market.PayoutFor(position)
		require.NoError(t, err)
		require.Equal(t, position.Amount, info.Payout)
		require.Zero(t, info.FeeAmount)
	}
}

func TestFailingPayoutFor(t *testing.T) {
	t.Parallel()

	market := newPendingResolveMarket(600, 400)
	position := newTestPosition(market, "bob", domain.SideA, 600)

	info, err := market.PayoutFor(position)
	require.Nil(t, info)
	require.EqualError(t, err, domain.ErrMarketNotFinalized.Error())
}

func TestSettlePosition(t *testing.T) {
	t.Parallel()

	market := newResolvedMarket(600, 400, domain.SideA)
	position := newTestPosition(market, "bob", domain.SideA, 600)

	settlement, err := market.SettlePosition(position, "bob")
	require.NoError(t, err)
	require.Equal(t, uint64(900), settlement.Amount)
	require.False(t, settlement.Authority.IsZero())
	require.Equal(t, market.Vault, settlement.Authority.Vault())
	require.True(t, position.Claimed)
}

func TestSettleLosingPositionMarksClaimed(t *testing.T) {
	t.Parallel()

	market := newResolvedMarket(600, 400, domain.SideA)
	position := newTestPosition(market, "carol", domain.SideB, 400)

	settlement, err := market.SettlePosition(position, "carol")
	require.NoError(t, err)
	require.Zero(t, settlement.Amount)
	require.True(t, settlement.Authority.IsZero())
	require.True(t, position.Claimed)
}

func TestFailingSettlePosition(t *testing.T) {
	t.Parallel()

	claimedPosition := func() *domain.Position {
		p := newTestPosition(newResolvedMarket(600, 400, domain.SideA), "bob", domain.SideA, 600)
		p.Claimed = true
		return p
	}

	tests := []struct {
		name          string
		market        *domain.Market
		position      *domain.Position
		claimer       string
		expectedError error
	}{
		{
			name:          "market_not_finalized",
			market:        newPendingResolveMarket(600, 400),
			position:      newTestPosition(newPendingResolveMarket(600, 400), "bob", domain.SideA, 600),
			claimer:       "bob",
			expectedError: domain.ErrMarketNotFinalized,
		},
		{
			name:          "already_claimed",
			market:        newResolvedMarket(600, 400, domain.SideA),
			position:      claimedPosition(),
			claimer:       "bob",
			expectedError: domain.ErrAlreadyClaimed,
		},
		{
			name:          "not_the_owner",
			market:        newResolvedMarket(600, 400, domain.SideA),
			position:      newTestPosition(newResolvedMarket(600, 400, domain.SideA), "bob", domain.SideA, 600),
			claimer:       "mallory",
			expectedError: domain.ErrUnauthorizedClaim,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			settlement, err := tt.market.SettlePosition(tt.position, tt.claimer)
			require.Nil(t, settlement)
			require.EqualError(t, err, tt.expectedError.Error())
		})
	}
}

func TestSettleCreatorFee(t *testing.T) {
	t.Parallel()

	market := newResolvedMarket(600, 400, domain.SideA)

	settlement, err := market.SettleCreatorFee(creator)
	require.NoError(t, err)
	require.Equal(t, uint64(100), settlement.Amount)
	require.Equal(t, market.Vault, settlement.Authority.Vault())
	require.True(t, market.CreatorFeeWithdrawn)
}

func TestSettleCreatorFeeIndependentOfClaims(t *testing.T) {
	t.Parallel()

	// The fee is computed from the frozen aggregate stakes, claiming
	// positions first must not change it.
	market := newResolvedMarket(600, 400, domain.SideA)
	position := newTestPosition(market, "bob", domain.SideA, 600)
	_, err := market.SettlePosition(position, "bob")
	require.NoError(t, err)

	settlement, err := market.SettleCreatorFee(creator)
	require.NoError(t, err)
	require.Equal(t, uint64(100), settlement.Amount)
}

func TestSettleZeroCreatorFee(t *testing.T) {
	t.Parallel()

	market := newResolvedMarket(600, 400, domain.SideA)
	market.FeeBasisPoints = 0

	settlement, err := market.SettleCreatorFee(creator)
	require.NoError(t, err)
	require.Zero(t, settlement.Amount)
	require.True(t, settlement.Authority.IsZero())
	require.True(t, market.CreatorFeeWithdrawn)
}

func TestFailingSettleCreatorFee(t *testing.T) {
	t.Parallel()

	withdrawnMarket := newResolvedMarket(600, 400, domain.SideA)
	withdrawnMarket.CreatorFeeWithdrawn = true

	tests := []struct {
		name          string
		market        *domain.Market
		withdrawer    string
		expectedError error
	}{
		{
			name:          "market_not_resolved",
			market:        newPendingResolveMarket(600, 400),
			withdrawer:    creator,
			expectedError: domain.ErrMarketNotResolved,
		},
		{
			name:          "cancelled_market_has_no_fee",
			market:        newCancelledMarket(600, 400),
			withdrawer:    creator,
			expectedError: domain.ErrMarketNotResolved,
		},
		{
			name:          "not_the_creator",
			market:        newResolvedMarket(600, 400, domain.SideA),
			withdrawer:    "mallory",
			expectedError: domain.ErrUnauthorizedWithdrawal,
		},
		{
			name:          "already_withdrawn",
			market:        withdrawnMarket,
			withdrawer:    creator,
			expectedError: domain.ErrFeeAlreadyWithdrawn,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			settlement, err := tt.market.SettleCreatorFee(tt.withdrawer)
			require.Nil(t, settlement)
			require.EqualError(t, err, tt.expectedError.Error())
		})
	}
}
