package dbbadger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v3"
	"github.com/betvault/betd/internal/core/domain"
	"github.com/betvault/betd/internal/core/ports"
	"github.com/timshannon/badgerhold/v4"
)

const txKey = "tx"

// DbManager holds all the badgerhold stores in a single data structure.
// Markets, positions and ledger accounts share one store so that a
// single badger transaction covers every record an operation touches.
type DbManager struct {
	Store *badgerhold.Store
	// PubSubStore keeps webhook subscriptions out of the escrow records.
	PubSubStore *badgerhold.Store

	marketRepository   domain.MarketRepository
	positionRepository domain.PositionRepository
}

// NewDbManager opens (or creates if not exists) the badger stores on
// disk. It expects a base data dir and an optional logger.
func NewDbManager(baseDbDir string, logger badger.Logger) (*DbManager, error) {
	mainDb, err := createDb(baseDbDir+"/main", logger)
	if err != nil {
		return nil, fmt.Errorf("opening main db: %w", err)
	}

	pubsubDb, err := createDb(baseDbDir+"/pubsub", logger)
	if err != nil {
		return nil, fmt.Errorf("opening pubsub db: %w", err)
	}

	db := &DbManager{
		Store:       mainDb,
		PubSubStore: pubsubDb,
	}
	db.marketRepository = newMarketRepositoryImpl(db)
	db.positionRepository = newPositionRepositoryImpl(db)
	return db, nil
}

func (d *DbManager) MarketRepository() domain.MarketRepository {
	return d.marketRepository
}

func (d *DbManager) PositionRepository() domain.PositionRepository {
	return d.positionRepository
}

// RunTransaction runs the handler within a single badger transaction
// carried by the context. Nothing is committed if the handler errors.
func (d *DbManager) RunTransaction(
	ctx context.Context,
	readOnly bool,
	handler func(ctx context.Context) (interface{}, error),
) (interface{}, error) {
	tx := d.Store.Badger().NewTransaction(!readOnly)
	defer tx.Discard()

	res, err := handler(context.WithValue(ctx, txKey, tx))
	if err != nil {
		return nil, err
	}

	if !readOnly {
		if err := tx.Commit(); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Close closes the connections with all the stores.
func (d *DbManager) Close() {
	d.Store.Close()
	d.PubSubStore.Close()
}

// NewTransaction implements the RepoManager interface.
func (d *DbManager) NewTransaction() ports.Transaction {
	return d.Store.Badger().NewTransaction(true)
}

// JSONEncode is a custom JSON based encoder for badger.
func JSONEncode(value interface{}) ([]byte, error) {
	var buff bytes.Buffer

	en := json.NewEncoder(&buff)

	err := en.Encode(value)
	if err != nil {
		return nil, err
	}

	return buff.Bytes(), nil
}

// JSONDecode is a custom JSON based decoder for badger.
func JSONDecode(data []byte, value interface{}) error {
	var buff bytes.Buffer
	de := json.NewDecoder(&buff)

	_, err := buff.Write(data)
	if err != nil {
		return err
	}

	return de.Decode(value)
}

func createDb(dbDir string, logger badger.Logger) (db *badgerhold.Store, err error) {
	opts := badger.DefaultOptions(dbDir)
	opts.Logger = logger

	db, err = badgerhold.Open(badgerhold.Options{
		Encoder:          JSONEncode,
		Decoder:          JSONDecode,
		SequenceBandwith: 100,
		Options:          opts,
	})

	return
}
