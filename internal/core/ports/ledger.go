package ports

import (
	"context"

	"github.com/betvault/betd/internal/core/domain"
)

// TokenLedger is the token-transfer primitive backing the escrow. Every
// transfer fails atomically on insufficient funds or invalid authority.
type TokenLedger interface {
	// Balance returns the balance of the account for the given asset.
	Balance(ctx context.Context, account, asset string) (uint64, error)
	// Mint credits an account out of thin air. Regtest tooling only.
	Mint(ctx context.Context, account, asset string, amount uint64) error
	// OpenVault marks the account as a market escrow vault. Vault
	// accounts can be debited only through TransferWithAuthority.
	OpenVault(ctx context.Context, vault, asset string) error
	// Transfer moves funds between accounts on behalf of the sender. The
	// caller is implicitly authenticated by the runtime, vault accounts
	// cannot be debited this way.
	Transfer(ctx context.Context, from, to, asset string, amount uint64) error
	// TransferWithAuthority moves funds out of a vault. It accepts only a
	// spend authority minted by the settlement code paths for that vault.
	TransferWithAuthority(
		ctx context.Context, from, to, asset string, amount uint64,
		authority domain.SpendAuthority,
	) error
}
