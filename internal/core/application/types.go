package application

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/betvault/betd/internal/core/domain"
	"github.com/betvault/betd/pkg/mathutil"
)

// InitMarketRequest carries the parameters to initialize a market.
type InitMarketRequest struct {
	Creator         string
	Asset           string
	FeeBasisPoints  uint32
	EndTime         time.Time
	ResolveDeadline time.Time
	Title           string
}

// MarketInfo is the portable view of a market returned to callers.
type MarketInfo struct {
	domain.Market
	OddsA        decimal.Decimal
	OddsB        decimal.Decimal
	VaultBalance uint64
}

// PositionInfo is the portable view of a position returned to callers.
type PositionInfo struct {
	domain.Position
}

// oddsForMarket quotes the decimal odds of both sides as total/side.
// With an empty book both sides quote even money, an empty side quotes
// zero.
func oddsForMarket(m *domain.Market) (decimal.Decimal, decimal.Decimal) {
	if m.StakedA == 0 && m.StakedB == 0 {
		one := decimal.NewFromInt(1)
		return one, one
	}

	total := mathutil.UintToDecimal(m.StakedA).Add(mathutil.UintToDecimal(m.StakedB))

	oddsA := decimal.Zero
	if m.StakedA > 0 {
		oddsA = total.Div(mathutil.UintToDecimal(m.StakedA))
	}
	oddsB := decimal.Zero
	if m.StakedB > 0 {
		oddsB = total.Div(mathutil.UintToDecimal(m.StakedB))
	}
	return oddsA, oddsB
}
