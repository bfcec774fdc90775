package application

import (
	"context"

	"github.com/betvault/betd/internal/core/domain"
	"github.com/betvault/betd/internal/core/ports"
)

// TraderService exposes the operations of bettors.
type TraderService interface {
	// PlaceBet moves amount from the bettor's balance into the market's
	// vault and grows the aggregate and position counters, all or
	// nothing.
	PlaceBet(
		ctx context.Context,
		marketKey, bettor string, side domain.Side, amount uint64,
	) (*PositionInfo, error)
	// Claim settles the owner's position on a finalized market, pays the
	// settlement out of the vault and marks the position claimed exactly
	// once. It returns the amount paid out.
	Claim(ctx context.Context, marketKey, owner string) (uint64, error)
	// GetPosition returns the position of the owner on the market.
	GetPosition(
		ctx context.Context, marketKey, owner string,
	) (*PositionInfo, error)
	// PreviewPayout details what the owner's position would settle for
	// on a finalized market, without settling anything.
	PreviewPayout(
		ctx context.Context, marketKey, owner string,
	) (*domain.PayoutInfo, error)
	// GetBalance returns the ledger balance of an account.
	GetBalance(ctx context.Context, account, asset string) (uint64, error)
	// Faucet credits an account on the ledger. Regtest only, gated by
	// config.
	Faucet(ctx context.Context, account, asset string, amount uint64) error
}

type traderService struct {
	repoManager   ports.RepoManager
	ledger        ports.TokenLedger
	clock         ports.Clock
	pubsub        ports.SecurePubSub
	faucetEnabled bool
}

// NewTraderService returns a TraderService using the given repo manager,
// token ledger, clock oracle and optional pubsub service.
func NewTraderService(
	repoManager ports.RepoManager,
	ledger ports.TokenLedger,
	clock ports.Clock,
	pubsub ports.SecurePubSub,
	faucetEnabled bool,
) TraderService {
	return &traderService{
		repoManager:   repoManager,
		ledger:        ledger,
		clock:         clock,
		pubsub:        pubsub,
		faucetEnabled: faucetEnabled,
	}
}

func (t *traderService) PlaceBet(
	ctx context.Context,
	marketKey, bettor string, side domain.Side, amount uint64,
) (*PositionInfo, error) {
	now := t.clock.Now()

	var market *domain.Market
	var position *domain.Position

	if _, err := t.repoManager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			m, err := t.repoManager.MarketRepository().GetMarket(ctx, marketKey)
			if err != nil {
				return nil, err
			}
			if m == nil {
				return nil, ErrMarketNotFound
			}

			if err := t.repoManager.MarketRepository().UpdateMarket(
				ctx, marketKey, func(m *domain.Market) (*domain.Market, error) {
					if err := m.AddStake(side, amount, now); err != nil {
						return nil, err
					}
					market = m
					return m, nil
				},
			); err != nil {
				return nil, err
			}

			pos, err := t.repoManager.PositionRepository().GetOrCreatePosition(
				ctx, marketKey, bettor, side, now,
			)
			if err != nil {
				return nil, err
			}
			if err := t.repoManager.PositionRepository().UpdatePosition(
				ctx, pos.Key, func(p *domain.Position) (*domain.Position, error) {
					if err := p.AddStake(side, amount); err != nil {
						return nil, err
					}
					position = p
					return p, nil
				},
			); err != nil {
				return nil, err
			}

			return nil, t.ledger.Transfer(
				ctx, bettor, market.Vault, market.Asset, amount,
			)
		},
	); err != nil {
		return nil, err
	}

	publishBetPlaced(t.pubsub, market, bettor, side, amount)
	return &PositionInfo{Position: *position}, nil
}

func (t *traderService) Claim(
	ctx context.Context, marketKey, owner string,
) (uint64, error) {
	var market *domain.Market
	var settlement *domain.Settlement

	if _, err := t.repoManager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			m, err := t.repoManager.MarketRepository().GetMarket(ctx, marketKey)
			if err != nil {
				return nil, err
			}
			if m == nil {
				return nil, ErrMarketNotFound
			}
			market = m

			position, err := t.repoManager.PositionRepository().GetPosition(
				ctx, marketKey, owner,
			)
			if err != nil {
				return nil, err
			}
			if position == nil {
				return nil, ErrPositionNotFound
			}

			if err := t.repoManager.PositionRepository().UpdatePosition(
				ctx, position.Key,
				func(p *domain.Position) (*domain.Position, error) {
					s, err := market.SettlePosition(p, owner)
					if err != nil {
						return nil, err
					}
					settlement = s
					return p, nil
				},
			); err != nil {
				return nil, err
			}

			if settlement.Amount > 0 {
				if err := t.ledger.TransferWithAuthority(
					ctx, market.Vault, owner, market.Asset,
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

	publishClaimed(t.pubsub, market, owner, settlement.Amount)
	return settlement.Amount, nil
}

func (t *traderService) GetPosition(
	ctx context.Context, marketKey, owner string,
) (*PositionInfo, error) {
	position, err := t.repoManager.PositionRepository().GetPosition(
		ctx, marketKey, owner,
	)
	if err != nil {
		return nil, err
	}
	if position == nil {
		return nil, ErrPositionNotFound
	}
	return &PositionInfo{Position: *position}, nil
}

func (t *traderService) PreviewPayout(
	ctx context.Context, marketKey, owner string,
) (*domain.PayoutInfo, error) {
	market, err := t.repoManager.MarketRepository().GetMarket(ctx, marketKey)
	if err != nil {
		return nil, err
	}
	if market == nil {
		return nil, ErrMarketNotFound
	}

	position, err := t.repoManager.PositionRepository().GetPosition(
		ctx, marketKey, owner,
	)
	if err != nil {
		return nil, err
	}
	if position == nil {
		return nil, ErrPositionNotFound
	}

	return market.PayoutFor(position)
}

func (t *traderService) GetBalance(
	ctx context.Context, account, asset string,
) (uint64, error) {
	return t.ledger.Balance(ctx, account, asset)
}

func (t *traderService) Faucet(
	ctx context.Context, account, asset string, amount uint64,
) error {
	if !t.faucetEnabled {
		return ErrFaucetDisabled
	}
	return t.ledger.Mint(ctx, account, asset, amount)
}
