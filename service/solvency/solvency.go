package solvency

import (
	"context"

	"pegvault/core"
	"pegvault/pkg/number"

	"github.com/holiman/uint256"
)

type solvencyService struct {
	collateralStore core.CollateralStore
	debtStore       core.DebtStore
	priceService    core.PriceOracleService
}

// New new solvency service computing collateral value and health factor
// from ledger snapshots and oracle prices
func New(collateralStore core.CollateralStore, debtStore core.DebtStore, priceSrv core.PriceOracleService) core.SolvencyService {
	return &solvencyService{
		collateralStore: collateralStore,
		debtStore:       debtStore,
		priceService:    priceSrv,
	}
}

func (s *solvencyService) CollateralValue(ctx context.Context, account string) (*uint256.Int, error) {
	total := uint256.NewInt(0)

	for _, assetID := range s.priceService.Assets() {
		balance, err := s.collateralStore.Balance(ctx, account, assetID)
		if err != nil {
			return nil, err
		}
		if balance.IsZero() {
			continue
		}

		value, err := s.USDValue(ctx, assetID, balance)
		if err != nil {
			return nil, err
		}

		total, err = number.Add(total, value)
		if err != nil {
			return nil, err
		}
	}

	return total, nil
}

func (s *solvencyService) HealthFactor(ctx context.Context, account string) (*uint256.Int, error) {
	debt, err := s.debtStore.Balance(ctx, account)
	if err != nil {
		return nil, err
	}

	collateralValue, err := s.CollateralValue(ctx, account)
	if err != nil {
		return nil, err
	}

	return HealthFactor(debt, collateralValue)
}

func (s *solvencyService) USDValue(ctx context.Context, assetID string, amount *uint256.Int) (*uint256.Int, error) {
	price, err := s.priceService.Price(ctx, assetID)
	if err != nil {
		return nil, err
	}

	return number.MulDiv(amount, price, number.Precision)
}

func (s *solvencyService) TokenAmountFromUSD(ctx context.Context, assetID string, usd *uint256.Int) (*uint256.Int, error) {
	price, err := s.priceService.Price(ctx, assetID)
	if err != nil {
		return nil, err
	}

	return number.MulDiv(usd, number.Precision, price)
}

// HealthFactor is the scaled solvency ratio: the liquidation threshold
// share of collateral value, scaled by the precision, over debt. Debt
// free accounts report the maximum representable value.
func HealthFactor(debt, collateralValue *uint256.Int) (*uint256.Int, error) {
	if debt.IsZero() {
		return new(uint256.Int).Set(number.MaxUint256), nil
	}

	adjusted, err := number.MulDiv(collateralValue, number.LiquidationThreshold, number.LiquidationPrecision)
	if err != nil {
		return nil, err
	}

	return number.MulDiv(adjusted, number.Precision, debt)
}
