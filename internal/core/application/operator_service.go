package application

import (
	"context"

	"github.com/betvault/betd/internal/core/domain"
	"github.com/betvault/betd/internal/core/ports"
)

// OperatorService exposes the operations of market creators plus the
// permissionless lifecycle transitions.
type OperatorService interface {
	// InitializeMarket creates a new open market with a derived identity
	// and an empty escrow vault.
	InitializeMarket(
		ctx context.Context, req InitMarketRequest,
	) (*MarketInfo, error)
	// CloseBetting transitions an ended market to pending-resolve.
	// Permissionless.
	CloseBetting(ctx context.Context, marketKey string) error
	// ResolveMarket reports the outcome. Creator only, within the
	// resolve window.
	ResolveMarket(
		ctx context.Context, marketKey, resolver string, outcome domain.Side,
	) error
	// CancelExpiredMarket cancels a pending market whose resolve
	// deadline has passed. Permissionless.
	CancelExpiredMarket(ctx context.Context, marketKey string) error
	// WithdrawCreatorFee pays the creator fee out of the vault, exactly
	// once, and returns the amount withdrawn.
	WithdrawCreatorFee(
		ctx context.Context, marketKey, withdrawer string,
	) (uint64, error)
	// GetMarketInfo returns the market with its odds and vault balance.
	GetMarketInfo(ctx context.Context, marketKey string) (*MarketInfo, error)
	// ListMarkets returns all markets.
	ListMarkets(ctx context.Context) ([]MarketInfo, error)
}

type operatorService struct {
	repoManager ports.RepoManager
	ledger      ports.TokenLedger
	clock       ports.Clock
	pubsub      ports.SecurePubSub
}

// NewOperatorService returns an OperatorService using the given repo
// manager, token ledger, clock oracle and optional pubsub service.
func NewOperatorService(
	repoManager ports.RepoManager,
	ledger ports.TokenLedger,
	clock ports.Clock,
	pubsub ports.SecurePubSub,
) OperatorService {
	return &operatorService{
		repoManager: repoManager,
		ledger:      ledger,
		clock:       clock,
		pubsub:      pubsub,
	}
}

func (o *operatorService) InitializeMarket(
	ctx context.Context, req InitMarketRequest,
) (*MarketInfo, error) {
	now := o.clock.Now()

	market, err := domain.NewMarket(
		req.Creator, req.Asset, req.FeeBasisPoints,
		req.EndTime, req.ResolveDeadline, req.Title, now,
	)
	if err != nil {
		return nil, err
	}

	if _, err := o.repoManager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			existing, err := o.repoManager.MarketRepository().GetMarket(ctx, market.Key)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, ErrMarketAlreadyExists
			}
			if err := o.repoManager.MarketRepository().AddMarket(ctx, market); err != nil {
				return nil, err
			}
			return nil, o.ledger.OpenVault(ctx, market.Vault, market.Asset)
		},
	); err != nil {
		return nil, err
	}

	publishMarketInitialized(o.pubsub, market)

	oddsA, oddsB := oddsForMarket(market)
	return &MarketInfo{Market: *market, OddsA: oddsA, OddsB: oddsB}, nil
}

func (o *operatorService) CloseBetting(
	ctx context.Context, marketKey string,
) error {
	now := o.clock.Now()

	var closed *domain.Market
	if _, err := o.repoManager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			if _, err := o.getMarket(ctx, marketKey); err != nil {
				return nil, err
			}
			return nil, o.repoManager.MarketRepository().UpdateMarket(
				ctx, marketKey, func(m *domain.Market) (*domain.Market, error) {
					if err := m.CloseBetting(now); err != nil {
						return nil, err
					}
					closed = m
					return m, nil
				},
			)
		},
	); err != nil {
		return err
	}

	publishBettingClosed(o.pubsub, closed)
	return nil
}

func (o *operatorService) ResolveMarket(
	ctx context.Context, marketKey, resolver string, outcome domain.Side,
) error {
	now := o.clock.Now()

	var resolved *domain.Market
	if _, err := o.repoManager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			if _, err := o.getMarket(ctx, marketKey); err != nil {
				return nil, err
			}
			return nil, o.repoManager.MarketRepository().UpdateMarket(
				ctx, marketKey, func(m *domain.Market) (*domain.Market, error) {
					if err := m.Resolve(resolver, outcome, now); err != nil {
						return nil, err
					}
					resolved = m
					return m, nil
				},
			)
		},
	); err != nil {
		return err
	}

	publishResolved(o.pubsub, resolved)
	return nil
}

func (o *operatorService) CancelExpiredMarket(
	ctx context.Context, marketKey string,
) error {
	now := o.clock.Now()

	var cancelled *domain.Market
	if _, err := o.repoManager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			if _, err := o.getMarket(ctx, marketKey); err != nil {
				return nil, err
			}
			return nil, o.repoManager.MarketRepository().UpdateMarket(
				ctx, marketKey, func(m *domain.Market) (*domain.Market, error) {
					if err := m.CancelExpired(now); err != nil {
						return nil, err
					}
					cancelled = m
					return m, nil
				},
			)
		},
	); err != nil {
		return err
	}

	publishCancelled(o.pubsub, cancelled)
	return nil
}

func (o *operatorService) WithdrawCreatorFee(
	ctx context.Context, marketKey, withdrawer string,
) (uint64, error) {
	var settled *domain.Market
	var settlement *domain.Settlement

	if _, err := o.repoManager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			if _, err := o.getMarket(ctx, marketKey); err != nil {
				return nil, err
			}
			if err := o.repoManager.MarketRepository().UpdateMarket(
				ctx, marketKey, func(m *domain.Market) (*domain.Market, error) {
					s, err := m.SettleCreatorFee(withdrawer)
					if err != nil {
						return nil, err
					}
					settled, settlement = m, s
					return m, nil
				},
			); err != nil {
				return nil, err
			}

			if settlement.Amount > 0 {
				if err := o.ledger.TransferWithAuthority(
					ctx, settled.Vault, withdrawer, settled.Asset,
					settlement.Amount, settlement.Authority,
				); err != nil {
					return nil, err
				}
			}
			return nil, nil
		},
	); err != nil {
		return 0, err
	}

	publishCreatorFeeWithdrawn(o.pubsub, settled, settlement.Amount)
	return settlement.Amount, nil
}

func (o *operatorService) GetMarketInfo(
	ctx context.Context, marketKey string,
) (*MarketInfo, error) {
	market, err := o.getMarket(ctx, marketKey)
	if err != nil {
		return nil, err
	}
	return o.marketInfo(ctx, market)
}

func (o *operatorService) ListMarkets(ctx context.Context) ([]MarketInfo, error) {
	markets, err := o.repoManager.MarketRepository().GetAllMarkets(ctx)
	if err != nil {
		return nil, err
	}

	infos := make([]MarketInfo, 0, len(markets))
	for i := range markets {
		info, err := o.marketInfo(ctx, &markets[i])
		if err != nil {
			return nil, err
		}
		infos = append(infos, *info)
	}
	return infos, nil
}

func (o *operatorService) getMarket(
	ctx context.Context, marketKey string,
) (*domain.Market, error) {
	market, err := o.repoManager.MarketRepository().GetMarket(ctx, marketKey)
	if err != nil {
		return nil, err
	}
	if market == nil {
		return nil, ErrMarketNotFound
	}
	return market, nil
}

func (o *operatorService) marketInfo(
	ctx context.Context, market *domain.Market,
) (*MarketInfo, error) {
	vaultBalance, err := o.ledger.Balance(ctx, market.Vault, market.Asset)
	if err != nil {
		return nil, err
	}
	oddsA, oddsB := oddsForMarket(market)
	return &MarketInfo{
		Market:       *market,
		OddsA:        oddsA,
		OddsB:        oddsB,
		VaultBalance: vaultBalance,
	}, nil
}
