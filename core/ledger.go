package core

import (
	"context"

	"github.com/holiman/uint256"
)

// CollateralStore tracks deposited collateral per (account, asset).
// Only the accounting engine may mutate it.
type CollateralStore interface {
	Add(ctx context.Context, account, assetID string, amount *uint256.Int) error
	// Sub fails with ErrInsufficientBalance if amount exceeds the stored
	// value; balances never wrap.
	Sub(ctx context.Context, account, assetID string, amount *uint256.Int) error
	Balance(ctx context.Context, account, assetID string) (*uint256.Int, error)
}

// DebtStore tracks minted debt per account.
// Only the accounting engine may mutate it.
type DebtStore interface {
	Add(ctx context.Context, account string, amount *uint256.Int) error
	Sub(ctx context.Context, account string, amount *uint256.Int) error
	Balance(ctx context.Context, account string) (*uint256.Int, error)
}
