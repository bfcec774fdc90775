package domain

import (
	"time"

	"github.com/betvault/betd/pkg/mathutil"
)

// Position defines the Position entity data structure holding the
// cumulative stake and claim state of one owner on one market.
type Position struct {
	// Key is the derived identity of the position, see PositionKey.
	Key string
	// Market is the derived identity of the market the position belongs to.
	Market string
	Owner  string
	// Side the whole stake sits on. A position never mixes sides.
	Side Side
	// Amount is the cumulative stake, it only grows while the market is open.
	Amount uint64
	// Claimed flips false to true exactly once.
	Claimed   bool
	CreatedAt time.Time
}

// NewPosition returns an empty position of the owner on the given market.
func NewPosition(marketKey, owner string, side Side, now time.Time) *Position {
	return &Position{
		Key:       PositionKey(marketKey, owner),
		Market:    marketKey,
		Owner:     owner,
		Side:      side,
		CreatedAt: now,
	}
}

// AddStake adds amount to the cumulative stake of the position. Stake on
// the opposite side of an existing position is rejected, the earlier
// stake would otherwise be silently relabelled at settlement.
func (p *Position) AddStake(side Side, amount uint64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if p.Amount > 0 && side != p.Side {
		return ErrPositionSideChanged
	}

	total, ok := mathutil.CheckedAdd(p.Amount, amount)
	if !ok {
		return ErrOverflow
	}
	p.Side = side
	p.Amount = total
	return nil
}
