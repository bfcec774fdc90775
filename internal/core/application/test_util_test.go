package application_test

import (
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/betvault/betd/internal/core/application"
	"github.com/betvault/betd/internal/core/ports"
	"github.com/betvault/betd/internal/infrastructure/ledger"
	dbbadger "github.com/betvault/betd/internal/infrastructure/storage/db/badger"
)

var startTime = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

// fakeClock is a settable Clock for driving time-bound transitions.
type fakeClock struct {
	lock sync.RWMutex
	now  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: startTime}
}

func (c *fakeClock) Now() time.Time {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.now
}

func (c *fakeClock) advanceTo(t time.Time) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.now = t
}

type testServices struct {
	operator application.OperatorService
	trader   application.TraderService
	ledger   ports.TokenLedger
	clock    *fakeClock
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()

	db, err := dbbadger.NewDbManager(t.TempDir(), nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(db.Close)

	clock := newFakeClock()
	tokenLedger := ledger.NewTokenLedger(db)

	return &testServices{
		operator: application.NewOperatorService(db, tokenLedger, clock, nil),
		trader:   application.NewTraderService(db, tokenLedger, clock, nil, true),
		ledger:   tokenLedger,
		clock:    clock,
	}
}

func decimalFromString(t *testing.T, s string) decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func testMarketRequest() application.InitMarketRequest {
	return application.InitMarketRequest{
		Creator:         "alice",
		Asset:           "usd-token",
		FeeBasisPoints:  1000,
		EndTime:         startTime.Add(24 * time.Hour),
		ResolveDeadline: startTime.Add(72 * time.Hour),
		Title:           "test market",
	}
}
