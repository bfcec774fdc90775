package domain

import "context"

// MarketRepository is the abstraction for any kind of database intended
// to persist Markets. Markets are keyed by their derived identity, there
// is no global mutable index besides the records themselves.
type MarketRepository interface {
	// AddMarket adds a new market to the repository. It fails if a market
	// with the same derived key already exists.
	AddMarket(ctx context.Context, market *Market) error
	// GetMarket returns the market with the given derived key, nil if it
	// does not exist.
	GetMarket(ctx context.Context, key string) (*Market, error)
	// GetMarketsForStatus returns all markets in the given lifecycle state.
	GetMarketsForStatus(ctx context.Context, status MarketStatus) ([]Market, error)
	// GetAllMarkets returns all markets.
	GetAllMarkets(ctx context.Context) ([]Market, error)
	// UpdateMarket updates the state of a market. The closure function
	// lets commit multiple changes to a certain market in a transactional
	// way.
	UpdateMarket(
		ctx context.Context,
		key string, updateFn func(m *Market) (*Market, error),
	) error
}
