package core

import (
	"context"

	"github.com/holiman/uint256"
)

// AccountInfo is the (debt, collateral value) snapshot of an account
type AccountInfo struct {
	Account         string       `json:"account"`
	Debt            *uint256.Int `json:"debt"`
	CollateralValue *uint256.Int `json:"collateral_value"`
	HealthFactor    *uint256.Int `json:"health_factor"`
}

// Engine is the accounting engine: the only component with write access
// to the collateral and debt ledgers. Every mutating operation is atomic
// and reentrancy guarded; on any failure no partial ledger mutation is
// observable.
type Engine interface {
	// Address is the engine's custody identity on the token collaborators.
	Address() string

	DepositCollateral(ctx context.Context, account, assetID string, amount *uint256.Int) error
	MintDebt(ctx context.Context, account string, amount *uint256.Int) error
	DepositAndMint(ctx context.Context, account, assetID string, collateralAmount, debtAmount *uint256.Int) error
	RedeemCollateral(ctx context.Context, account, assetID string, amount *uint256.Int) error
	BurnDebt(ctx context.Context, account string, amount *uint256.Int) error
	BurnAndRedeem(ctx context.Context, account string, debtAmount *uint256.Int, assetID string, collateralAmount *uint256.Int) error
	Liquidate(ctx context.Context, liquidator, target, assetID string, debtToCover *uint256.Int) error

	// Read accessors. Never fail under valid ledger state except for
	// oracle staleness surfaced through the price path.
	AccountInfo(ctx context.Context, account string) (*AccountInfo, error)
	HealthFactor(ctx context.Context, account string) (*uint256.Int, error)
	CollateralBalance(ctx context.Context, account, assetID string) (*uint256.Int, error)
	CollateralValue(ctx context.Context, account string) (*uint256.Int, error)
	USDValue(ctx context.Context, assetID string, amount *uint256.Int) (*uint256.Int, error)
	TokenAmountFromUSD(ctx context.Context, assetID string, usd *uint256.Int) (*uint256.Int, error)
	CollateralAssets() []string
	Feed(assetID string) (PriceFeed, error)
}
