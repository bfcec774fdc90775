package dbbadger

import "errors"

var (
	// ErrMarketAlreadyExists is thrown when inserting a market whose
	// derived key is already taken.
	ErrMarketAlreadyExists = errors.New("market already exists")
	// ErrMarketNotFound ...
	ErrMarketNotFound = errors.New("market not found")
	// ErrPositionNotFound ...
	ErrPositionNotFound = errors.New("position not found")
)
