package domain

import (
	"time"

	"github.com/betvault/betd/pkg/mathutil"
)

// Market defines the Market entity data structure holding the state of a
// single binary betting event and its aggregate stakes.
type Market struct {
	// Key is the derived identity of the market, see MarketKey.
	Key string
	// Creator is the account that initialized the market and acts as its
	// trusted resolver.
	Creator string
	// Asset is the token type staked on the market.
	Asset string
	// Vault is the derived identity of the escrow account holding all
	// stakes, see VaultKey.
	Vault string
	// FeeBasisPoints is the creator fee in basis points, capped at 2000.
	FeeBasisPoints uint32
	// EndTime is when betting closes.
	EndTime time.Time
	// ResolveDeadline is when the resolve window ends and the market
	// becomes cancellable by anyone.
	ResolveDeadline time.Time
	// StakedA and StakedB are the aggregate stakes per side.
	StakedA uint64
	StakedB uint64
	Status  MarketStatus
	// Outcome is set if and only if the market is resolved.
	Outcome *Side
	// CreatorFeeWithdrawn flips to true exactly once.
	CreatorFeeWithdrawn bool
	Title               string
	CreatedAt           time.Time
}

// NewMarket returns a new open market for the (creator, asset) pair with
// derived market and vault identities.
func NewMarket(
	creator, asset string, feeBps uint32,
	endTime, resolveDeadline time.Time, title string, now time.Time,
) (*Market, error) {
	if len(creator) <= 0 {
		return nil, ErrMarketInvalidCreator
	}
	if len(asset) <= 0 {
		return nil, ErrMarketInvalidAsset
	}
	if feeBps > MaxFeeBasisPoints {
		return nil, ErrFeeTooHigh
	}
	if len(title) > MaxTitleLength {
		return nil, ErrTitleTooLong
	}
	if !endTime.After(now) {
		return nil, ErrEndTimeInPast
	}
	if !resolveDeadline.After(endTime) {
		return nil, ErrInvalidDeadline
	}

	marketKey := MarketKey(creator, asset)

	return &Market{
		Key:             marketKey,
		Creator:         creator,
		Asset:           asset,
		Vault:           VaultKey(marketKey),
		FeeBasisPoints:  feeBps,
		EndTime:         endTime,
		ResolveDeadline: resolveDeadline,
		Status:          MarketStatusOpen,
		Title:           title,
		CreatedAt:       now,
	}, nil
}

// IsOpen returns whether the market accepts bets.
func (m *Market) IsOpen() bool {
	return m.Status == MarketStatusOpen
}

// IsPendingResolve returns whether the market waits for its resolution.
func (m *Market) IsPendingResolve() bool {
	return m.Status == MarketStatusPendingResolve
}

// IsResolved returns whether the market has a reported outcome.
func (m *Market) IsResolved() bool {
	return m.Status == MarketStatusResolved
}

// IsCancelled returns whether the market was cancelled after a missed
// resolve deadline.
func (m *Market) IsCancelled() bool {
	return m.Status == MarketStatusCancelled
}

// IsFinalized returns whether the market reached a terminal state.
func (m *Market) IsFinalized() bool {
	return m.IsResolved() || m.IsCancelled()
}

// CanAcceptBets returns nil if the market is open and the betting period
// has not ended at the given time.
func (m *Market) CanAcceptBets(now time.Time) error {
	if !m.IsOpen() {
		return ErrMarketNotOpen
	}
	if !now.Before(m.EndTime) {
		return ErrBettingClosed
	}
	return nil
}

// AddStake adds amount to the aggregate stake of the given side. The
// market must be open and within the betting period.
func (m *Market) AddStake(side Side, amount uint64, now time.Time) error {
	if err := m.CanAcceptBets(now); err != nil {
		return err
	}
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if !side.IsValid() {
		return ErrInvalidSide
	}

	if side == SideA {
		staked, ok := mathutil.CheckedAdd(m.StakedA, amount)
		if !ok {
			return ErrOverflow
		}
		m.StakedA = staked
		return nil
	}

	staked, ok := mathutil.CheckedAdd(m.StakedB, amount)
	if !ok {
		return ErrOverflow
	}
	m.StakedB = staked
	return nil
}

// CloseBetting transitions the market from open to pending-resolve. It
// is permissionless and legal only once the betting period has ended.
func (m *Market) CloseBetting(now time.Time) error {
	if !m.IsOpen() {
		return ErrMarketNotOpen
	}
	if now.Before(m.EndTime) {
		return ErrBettingNotEnded
	}

	m.Status = MarketStatusPendingResolve
	return nil
}

// Resolve transitions the market from pending-resolve to resolved with
// the reported outcome. Only the creator can resolve and only before the
// resolve deadline. Resolving to a side nobody staked on is rejected so
// that the pool can never be stranded without a claimant.
func (m *Market) Resolve(resolver string, outcome Side, now time.Time) error {
	if !m.IsPendingResolve() {
		return ErrMarketNotPendingResolve
	}
	if resolver != m.Creator {
		return ErrUnauthorizedResolver
	}
	if !now.Before(m.ResolveDeadline) {
		return ErrResolutionDeadlinePassed
	}
	if !outcome.IsValid() {
		return ErrInvalidSide
	}
	if m.StakeOnSide(outcome) == 0 {
		return ErrOutcomeSideEmpty
	}

	m.Status = MarketStatusResolved
	m.Outcome = &outcome
	return nil
}

// CancelExpired transitions the market from pending-resolve to cancelled
// once the resolve deadline has passed. It is callable by anyone, as a
// safety valve against an unresponsive resolver.
func (m *Market) CancelExpired(now time.Time) error {
	if !m.IsPendingResolve() {
		return ErrMarketNotPendingResolve
	}
	if now.Before(m.ResolveDeadline) {
		return ErrResolutionNotExpired
	}

	m.Status = MarketStatusCancelled
	return nil
}

// StakeOnSide returns the aggregate stake on the given side.
func (m *Market) StakeOnSide(side Side) uint64 {
	if side == SideA {
		return m.StakedA
	}
	return m.StakedB
}

// TotalStaked returns the sum of the stakes of both sides.
func (m *Market) TotalStaked() (uint64, error) {
	total, ok := mathutil.CheckedAdd(m.StakedA, m.StakedB)
	if !ok {
		return 0, ErrOverflow
	}
	return total, nil
}

// FeeAmount returns the creator fee cut on the total staked amount. It
// depends only on the frozen aggregate stakes, never on claim history.
func (m *Market) FeeAmount() (uint64, error) {
	total, err := m.TotalStaked()
	if err != nil {
		return 0, err
	}
	fee, ok := mathutil.BpsFee(total, m.FeeBasisPoints)
	if !ok {
		return 0, ErrOverflow
	}
	return fee, nil
}
