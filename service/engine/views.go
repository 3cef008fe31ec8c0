package engine

import (
	"context"

	"pegvault/core"

	"github.com/holiman/uint256"
)

func (s *engineService) AccountInfo(ctx context.Context, account string) (*core.AccountInfo, error) {
	debt, err := s.debtStore.Balance(ctx, account)
	if err != nil {
		return nil, err
	}

	collateralValue, err := s.solvencySrv.CollateralValue(ctx, account)
	if err != nil {
		return nil, err
	}

	healthFactor, err := s.solvencySrv.HealthFactor(ctx, account)
	if err != nil {
		return nil, err
	}

	return &core.AccountInfo{
		Account:         account,
		Debt:            debt,
		CollateralValue: collateralValue,
		HealthFactor:    healthFactor,
	}, nil
}

func (s *engineService) HealthFactor(ctx context.Context, account string) (*uint256.Int, error) {
	return s.solvencySrv.HealthFactor(ctx, account)
}

func (s *engineService) CollateralBalance(ctx context.Context, account, assetID string) (*uint256.Int, error) {
	return s.collateralStore.Balance(ctx, account, assetID)
}

func (s *engineService) CollateralValue(ctx context.Context, account string) (*uint256.Int, error) {
	return s.solvencySrv.CollateralValue(ctx, account)
}

func (s *engineService) USDValue(ctx context.Context, assetID string, amount *uint256.Int) (*uint256.Int, error) {
	return s.solvencySrv.USDValue(ctx, assetID, amount)
}

func (s *engineService) TokenAmountFromUSD(ctx context.Context, assetID string, usd *uint256.Int) (*uint256.Int, error) {
	return s.solvencySrv.TokenAmountFromUSD(ctx, assetID, usd)
}

func (s *engineService) CollateralAssets() []string {
	return s.priceService.Assets()
}

func (s *engineService) Feed(assetID string) (core.PriceFeed, error) {
	return s.priceService.Feed(assetID)
}
