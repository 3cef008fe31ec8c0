package core

import (
	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

// Config pegvault config
type Config struct {
	API     API           `json:"api"`
	DB      db.Config     `json:"db"`
	Oracle  Oracle        `json:"oracle"`
	Assets  []AssetConfig `json:"assets"`
	Genesis []Grant       `json:"genesis"`
}

// API rest api config
type API struct {
	Addr string `json:"addr"`
}

// Oracle remote price oracle config
type Oracle struct {
	EndPoint string `json:"end_point"`
	// PullInterval in seconds; zero keeps the worker at its default tick
	PullInterval int64 `json:"pull_interval"`
}

// AssetConfig one registered collateral asset and its feed parameters
type AssetConfig struct {
	AssetID string `json:"asset_id"`
	Symbol  string `json:"symbol"`
	// Decimals of the raw feed answer
	Decimals int32 `json:"decimals"`
	// Heartbeat in seconds; the allowed price age is heartbeat scaled by
	// the staleness factor
	Heartbeat int64 `json:"heartbeat"`
}

// Grant seeds a token balance at boot, local runs only
type Grant struct {
	AssetID string          `json:"asset_id"`
	Account string          `json:"account"`
	Amount  decimal.Decimal `json:"amount"`
}
