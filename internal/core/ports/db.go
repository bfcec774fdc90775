package ports

import (
	"context"

	"github.com/betvault/betd/internal/core/domain"
)

// RepoManager gives access to all the repositories of the daemon and to
// the transactional boundary they share.
type RepoManager interface {
	MarketRepository() domain.MarketRepository
	PositionRepository() domain.PositionRepository

	// RunTransaction runs the handler within a single storage
	// transaction: every repository and ledger access made through the
	// handler's context is committed or discarded as one unit.
	RunTransaction(
		ctx context.Context,
		readOnly bool,
		handler func(ctx context.Context) (interface{}, error),
	) (interface{}, error)

	Close()
}

// Transaction interface defines the method to commit or discard a
// database transaction.
type Transaction interface {
	Commit() error
	Discard()
}
