package domain

import (
	"context"
	"time"
)

// PositionRepository is the abstraction for any kind of database
// intended to persist Positions.
type PositionRepository interface {
	// GetOrCreatePosition returns the position of the owner on the given
	// market, creating an empty one on the requested side if none
	// exists. New positions are stamped with the caller's timestamp.
	GetOrCreatePosition(
		ctx context.Context, marketKey, owner string, side Side, now time.Time,
	) (*Position, error)
	// GetPosition returns the position of the owner on the given market,
	// nil if it does not exist.
	GetPosition(ctx context.Context, marketKey, owner string) (*Position, error)
	// GetPositionsForMarket returns all positions on the given market.
	GetPositionsForMarket(ctx context.Context, marketKey string) ([]Position, error)
	// UpdatePosition updates the state of a position. The closure function
	// lets commit multiple changes to a certain position in a
	// transactional way.
	UpdatePosition(
		ctx context.Context,
		key string, updateFn func(p *Position) (*Position, error),
	) error
}
