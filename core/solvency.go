package core

import (
	"context"

	"github.com/holiman/uint256"
)

// SolvencyService computes account solvency from ledger snapshots and
// oracle prices. All values are fixed point at the internal precision.
type SolvencyService interface {
	// CollateralValue sums the USD value of every registered asset the
	// account holds, in registration order.
	CollateralValue(ctx context.Context, account string) (*uint256.Int, error)
	// HealthFactor returns the scaled solvency ratio of the account.
	// Accounts with zero debt report the maximum representable value.
	HealthFactor(ctx context.Context, account string) (*uint256.Int, error)
	// USDValue prices an asset amount in USD.
	USDValue(ctx context.Context, assetID string, amount *uint256.Int) (*uint256.Int, error)
	// TokenAmountFromUSD converts a USD amount into the equivalent asset
	// quantity, the exact inverse of USDValue up to integer rounding.
	TokenAmountFromUSD(ctx context.Context, assetID string, usd *uint256.Int) (*uint256.Int, error)
}
