package core

import (
	"context"
	"time"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

// PriceFeed is a raw price source for a single asset. The answer is
// denominated in USD with Decimals() fractional digits; UpdatedAt is the
// feed's last refresh time and drives staleness rejection.
type PriceFeed interface {
	Latest(ctx context.Context) (answer decimal.Decimal, updatedAt time.Time, err error)
	Decimals() int32
	Heartbeat() time.Duration
}

// PriceTicker price ticker pulled from a remote oracle endpoint
type PriceTicker struct {
	Provider  string          `json:"provider,omitempty"`
	AssetID   string          `json:"asset_id,omitempty"`
	Price     decimal.Decimal `json:"price,omitempty"`
	UpdatedAt time.Time       `json:"updated_at,omitempty"`
}

// PriceOracleService normalizes raw feed readings into fixed point USD
// prices at the internal precision, one feed per registered asset.
type PriceOracleService interface {
	// Price returns the current USD price of one whole unit of the asset,
	// scaled to the internal precision. Fails with ErrStalePrice when the
	// feed reading is older than its allowed age.
	Price(ctx context.Context, assetID string) (*uint256.Int, error)
	// Assets returns the registered asset ids in registration order.
	Assets() []string
	// Feed returns the raw feed backing an asset.
	Feed(assetID string) (PriceFeed, error)
}
