package dbbadger

import (
	"context"
	"fmt"

	"github.com/dgraph-io/badger/v3"
	"github.com/betvault/betd/internal/core/domain"
	"github.com/timshannon/badgerhold/v4"
)

type marketRepositoryImpl struct {
	db *DbManager
}

func newMarketRepositoryImpl(db *DbManager) domain.MarketRepository {
	return marketRepositoryImpl{db: db}
}

func (m marketRepositoryImpl) AddMarket(
	ctx context.Context, market *domain.Market,
) error {
	var err error
	if ctx.Value(txKey) != nil {
		tx := ctx.Value(txKey).(*badger.Txn)
		err = m.db.Store.TxInsert(tx, market.Key, market)
	} else {
		err = m.db.Store.Insert(market.Key, market)
	}
	if err != nil {
		if err == badgerhold.ErrKeyExists {
			return ErrMarketAlreadyExists
		}
		return err
	}
	return nil
}

func (m marketRepositoryImpl) GetMarket(
	ctx context.Context, key string,
) (*domain.Market, error) {
	var err error
	var market domain.Market

	if ctx.Value(txKey) != nil {
		tx := ctx.Value(txKey).(*badger.Txn)
		err = m.db.Store.TxGet(tx, key, &market)
	} else {
		err = m.db.Store.Get(key, &market)
	}
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &market, nil
}

func (m marketRepositoryImpl) GetMarketsForStatus(
	ctx context.Context, status domain.MarketStatus,
) ([]domain.Market, error) {
	query := badgerhold.Where("Status").Eq(status)
	return m.findMarkets(ctx, query)
}

func (m marketRepositoryImpl) GetAllMarkets(
	ctx context.Context,
) ([]domain.Market, error) {
	return m.findMarkets(ctx, nil)
}

func (m marketRepositoryImpl) UpdateMarket(
	ctx context.Context,
	key string, updateFn func(m *domain.Market) (*domain.Market, error),
) error {
	currentMarket, err := m.GetMarket(ctx, key)
	if err != nil {
		return err
	}
	if currentMarket == nil {
		return ErrMarketNotFound
	}

	updatedMarket, err := updateFn(currentMarket)
	if err != nil {
		return err
	}

	return m.updateMarket(ctx, key, *updatedMarket)
}

func (m marketRepositoryImpl) updateMarket(
	ctx context.Context, key string, market domain.Market,
) error {
	var err error
	if ctx.Value(txKey) != nil {
		tx := ctx.Value(txKey).(*badger.Txn)
		err = m.db.Store.TxUpdate(tx, key, market)
	} else {
		err = m.db.Store.Update(key, market)
	}
	if err != nil {
		return fmt.Errorf("trying to update market with key %s: %w", key, err)
	}
	return nil
}

func (m marketRepositoryImpl) findMarkets(
	ctx context.Context, query *badgerhold.Query,
) ([]domain.Market, error) {
	var markets []domain.Market
	var err error

	if ctx.Value(txKey) != nil {
		tx := ctx.Value(txKey).(*badger.Txn)
		err = m.db.Store.TxFind(tx, &markets, query)
	} else {
		err = m.db.Store.Find(&markets, query)
	}

	return markets, err
}
