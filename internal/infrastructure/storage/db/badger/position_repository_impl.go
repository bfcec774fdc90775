package dbbadger

import (
	"context"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/betvault/betd/internal/core/domain"
	"github.com/timshannon/badgerhold/v4"
)

type positionRepositoryImpl struct {
	db *DbManager
}

func newPositionRepositoryImpl(db *DbManager) domain.PositionRepository {
	return positionRepositoryImpl{db: db}
}

func (p positionRepositoryImpl) GetOrCreatePosition(
	ctx context.Context, marketKey, owner string, side domain.Side, now time.Time,
) (*domain.Position, error) {
	position, err := p.GetPosition(ctx, marketKey, owner)
	if err != nil {
		return nil, err
	}

	if position == nil {
		position = domain.NewPosition(marketKey, owner, side, now)
		if err := p.insertPosition(ctx, position); err != nil {
			return nil, err
		}
	}

	return position, nil
}

func (p positionRepositoryImpl) GetPosition(
	ctx context.Context, marketKey, owner string,
) (*domain.Position, error) {
	var err error
	var position domain.Position

	key := domain.PositionKey(marketKey, owner)
	if ctx.Value(txKey) != nil {
		tx := ctx.Value(txKey).(*badger.Txn)
		err = p.db.Store.TxGet(tx, key, &position)
	} else {
		err = p.db.Store.Get(key, &position)
	}
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &position, nil
}

func (p positionRepositoryImpl) GetPositionsForMarket(
	ctx context.Context, marketKey string,
) ([]domain.Position, error) {
	var positions []domain.Position
	var err error

	query := badgerhold.Where("Market").Eq(marketKey)
	if ctx.Value(txKey) != nil {
		tx := ctx.Value(txKey).(*badger.Txn)
		err = p.db.Store.TxFind(tx, &positions, query)
	} else {
		err = p.db.Store.Find(&positions, query)
	}

	return positions, err
}

func (p positionRepositoryImpl) UpdatePosition(
	ctx context.Context,
	key string, updateFn func(p *domain.Position) (*domain.Position, error),
) error {
	currentPosition, err := p.getPositionByKey(ctx, key)
	if err != nil {
		return err
	}
	if currentPosition == nil {
		return ErrPositionNotFound
	}

	updatedPosition, err := updateFn(currentPosition)
	if err != nil {
		return err
	}

	return p.updatePosition(ctx, key, *updatedPosition)
}

func (p positionRepositoryImpl) getPositionByKey(
	ctx context.Context, key string,
) (*domain.Position, error) {
	var err error
	var position domain.Position

	if ctx.Value(txKey) != nil {
		tx := ctx.Value(txKey).(*badger.Txn)
		err = p.db.Store.TxGet(tx, key, &position)
	} else {
		err = p.db.Store.Get(key, &position)
	}
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &position, nil
}

func (p positionRepositoryImpl) insertPosition(
	ctx context.Context, position *domain.Position,
) error {
	var err error
	if ctx.Value(txKey) != nil {
		tx := ctx.Value(txKey).(*badger.Txn)
		err = p.db.Store.TxInsert(tx, position.Key, position)
	} else {
		err = p.db.Store.Insert(position.Key, position)
	}
	if err != nil && err != badgerhold.ErrKeyExists {
		return err
	}
	return nil
}

func (p positionRepositoryImpl) updatePosition(
	ctx context.Context, key string, position domain.Position,
) error {
	var err error
	if ctx.Value(txKey) != nil {
		tx := ctx.Value(txKey).(*badger.Txn)
		err = p.db.Store.TxUpdate(tx, key, position)
	} else {
		err = p.db.Store.Update(key, position)
	}
	if err != nil {
		return fmt.Errorf("trying to update position with key %s: %w", key, err)
	}
	return nil
}
