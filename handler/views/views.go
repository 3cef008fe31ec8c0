package views

import (
	"pegvault/core"
	"pegvault/pkg/number"

	"github.com/shopspring/decimal"
)

// Account account solvency view
type Account struct {
	Account         string          `json:"account"`
	Debt            decimal.Decimal `json:"debt"`
	CollateralValue decimal.Decimal `json:"collateral_value"`
	HealthFactor    decimal.Decimal `json:"health_factor"`
	Solvent         bool            `json:"solvent"`
}

// AccountFromCore render account view at human scale
func AccountFromCore(info *core.AccountInfo) Account {
	return Account{
		Account:         info.Account,
		Debt:            number.ToDecimal(info.Debt, 18),
		CollateralValue: number.ToDecimal(info.CollateralValue, 18),
		HealthFactor:    number.ToDecimal(info.HealthFactor, 18),
		Solvent:         !info.HealthFactor.Lt(number.MinHealthFactor),
	}
}

// Asset registered collateral asset view
type Asset struct {
	AssetID string          `json:"asset_id"`
	Price   decimal.Decimal `json:"price,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Constants fixed engine parameters
type Constants struct {
	Precision            string `json:"precision"`
	MinHealthFactor      string `json:"min_health_factor"`
	LiquidationThreshold string `json:"liquidation_threshold"`
	LiquidationBonus     string `json:"liquidation_bonus"`
	LiquidationPrecision string `json:"liquidation_precision"`
}

// ConstantsView the engine's fixed parameters
func ConstantsView() Constants {
	return Constants{
		Precision:            number.Precision.Dec(),
		MinHealthFactor:      number.MinHealthFactor.Dec(),
		LiquidationThreshold: number.LiquidationThreshold.Dec(),
		LiquidationBonus:     number.LiquidationBonus.Dec(),
		LiquidationPrecision: number.LiquidationPrecision.Dec(),
	}
}
