package dbbadger

import (
	"testing"
	"time"

	"github.com/betvault/betd/internal/core/domain"
)

func newTestDb(t *testing.T) *DbManager {
	t.Helper()

	dbManager, err := NewDbManager(t.TempDir(), nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(dbManager.Close)

	return dbManager
}

func newTestMarket(t *testing.T, creator, asset string) *domain.Market {
	t.Helper()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	market, err := domain.NewMarket(
		creator, asset, 1000,
		now.Add(24*time.Hour), now.Add(72*time.Hour), "test market", now,
	)
	if err != nil {
		t.Fatal(err)
	}
	return market
}
