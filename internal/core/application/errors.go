package application

import "errors"

var (
	// ErrMarketNotFound is thrown when the requested market does not exist.
	ErrMarketNotFound = errors.New("market not found")
	// ErrMarketAlreadyExists is thrown when initializing a market for a
	// (creator, asset) pair that already has one.
	ErrMarketAlreadyExists = errors.New("market already exists for this creator and asset")
	// ErrPositionNotFound is thrown when the claimer has no position on
	// the market.
	ErrPositionNotFound = errors.New("position not found")
	// ErrFaucetDisabled is thrown when minting while the faucet is
	// disabled by config.
	ErrFaucetDisabled = errors.New("faucet is disabled")
)
