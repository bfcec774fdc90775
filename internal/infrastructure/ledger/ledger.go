package ledger

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v3"
	"github.com/betvault/betd/internal/core/domain"
	"github.com/betvault/betd/internal/core/ports"
	dbbadger "github.com/betvault/betd/internal/infrastructure/storage/db/badger"
	"github.com/betvault/betd/pkg/mathutil"
	"github.com/timshannon/badgerhold/v4"
)

const txKey = "tx"

var (
	// ErrInsufficientBalance is thrown when debiting more than the
	// account holds.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrInvalidAuthority is thrown when spending from a vault without
	// the authority minted for it.
	ErrInvalidAuthority = errors.New("invalid spend authority")
	// ErrVaultDebit is thrown when debiting a vault account through the
	// plain transfer path.
	ErrVaultDebit = errors.New("vault accounts require a spend authority")
	// ErrBalanceOverflow is thrown when crediting wraps the balance.
	ErrBalanceOverflow = errors.New("balance overflow")
)

// Account is a per (holder, asset) balance record. Vault accounts are
// flagged when the market opens them and keep the flag for life.
type Account struct {
	Key     string
	Holder  string
	Asset   string
	Balance uint64
	IsVault bool
}

type ledgerService struct {
	store *badgerhold.Store
}

// NewTokenLedger returns a token ledger persisted on the same store as
// markets and positions, so ledger moves and record updates share the
// transaction of the operation that triggers them.
func NewTokenLedger(db *dbbadger.DbManager) ports.TokenLedger {
	return &ledgerService{store: db.Store}
}

func (l *ledgerService) Balance(
	ctx context.Context, holder, asset string,
) (uint64, error) {
	account, err := l.getAccount(ctx, holder, asset)
	if err != nil {
		return 0, err
	}
	if account == nil {
		return 0, nil
	}
	return account.Balance, nil
}

func (l *ledgerService) Mint(
	ctx context.Context, holder, asset string, amount uint64,
) error {
	return l.credit(ctx, holder, asset, amount)
}

func (l *ledgerService) OpenVault(
	ctx context.Context, vault, asset string,
) error {
	account, err := l.getAccount(ctx, vault, asset)
	if err != nil {
		return err
	}
	if account == nil {
		account = &Account{
			Key:    accountKey(vault, asset),
			Holder: vault,
			Asset:  asset,
		}
	}
	account.IsVault = true
	return l.upsertAccount(ctx, account)
}

func (l *ledgerService) Transfer(
	ctx context.Context, from, to, asset string, amount uint64,
) error {
	account, err := l.getAccount(ctx, from, asset)
	if err != nil {
		return err
	}
	if account != nil && account.IsVault {
		return ErrVaultDebit
	}
	return l.move(ctx, from, to, asset, amount)
}

func (l *ledgerService) TransferWithAuthority(
	ctx context.Context, from, to, asset string, amount uint64,
	authority domain.SpendAuthority,
) error {
	if authority.IsZero() || authority.Vault() != from {
		return ErrInvalidAuthority
	}
	return l.move(ctx, from, to, asset, amount)
}

func (l *ledgerService) move(
	ctx context.Context, from, to, asset string, amount uint64,
) error {
	if amount <= 0 {
		return nil
	}
	if err := l.debit(ctx, from, asset, amount); err != nil {
		return err
	}
	return l.credit(ctx, to, asset, amount)
}

func (l *ledgerService) debit(
	ctx context.Context, holder, asset string, amount uint64,
) error {
	account, err := l.getAccount(ctx, holder, asset)
	if err != nil {
		return err
	}
	if account == nil || account.Balance < amount {
		return ErrInsufficientBalance
	}

	balance, ok := mathutil.CheckedSub(account.Balance, amount)
	if !ok {
		return ErrInsufficientBalance
	}
	account.Balance = balance
	return l.upsertAccount(ctx, account)
}

func (l *ledgerService) credit(
	ctx context.Context, holder, asset string, amount uint64,
) error {
	account, err := l.getAccount(ctx, holder, asset)
	if err != nil {
		return err
	}
	if account == nil {
		account = &Account{
			Key:    accountKey(holder, asset),
			Holder: holder,
			Asset:  asset,
		}
	}

	balance, ok := mathutil.CheckedAdd(account.Balance, amount)
	if !ok {
		return ErrBalanceOverflow
	}
	account.Balance = balance
	return l.upsertAccount(ctx, account)
}

func (l *ledgerService) getAccount(
	ctx context.Context, holder, asset string,
) (*Account, error) {
	var err error
	var account Account

	key := accountKey(holder, asset)
	if ctx.Value(txKey) != nil {
		tx := ctx.Value(txKey).(*badger.Txn)
		err = l.store.TxGet(tx, key, &account)
	} else {
		err = l.store.Get(key, &account)
	}
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (l *ledgerService) upsertAccount(
	ctx context.Context, account *Account,
) error {
	if ctx.Value(txKey) != nil {
		tx := ctx.Value(txKey).(*badger.Txn)
		return l.store.TxUpsert(tx, account.Key, account)
	}
	return l.store.Upsert(account.Key, account)
}

func accountKey(holder, asset string) string {
	return holder + "/" + asset
}
