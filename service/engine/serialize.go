package engine

import (
	"context"
	"sync"

	"pegvault/core"

	"github.com/holiman/uint256"
)

// Serialized wraps an engine with a mutex so a concurrent host, such as
// an http server, delivers one call at a time the way the engine
// expects. The reentrancy guard stays engine-internal: a nested call on
// the same goroutine is an attack, a parallel call here is just load.
func Serialized(eng core.Engine) core.Engine {
	return &serializedEngine{eng: eng}
}

type serializedEngine struct {
	mu  sync.Mutex
	eng core.Engine
}

func (s *serializedEngine) Address() string {
	return s.eng.Address()
}

func (s *serializedEngine) DepositCollateral(ctx context.Context, account, assetID string, amount *uint256.Int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eng.DepositCollateral(ctx, account, assetID, amount)
}

func (s *serializedEngine) MintDebt(ctx context.Context, account string, amount *uint256.Int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eng.MintDebt(ctx, account, amount)
}

func (s *serializedEngine) DepositAndMint(ctx context.Context, account, assetID string, collateralAmount, debtAmount *uint256.Int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eng.DepositAndMint(ctx, account, assetID, collateralAmount, debtAmount)
}

func (s *serializedEngine) RedeemCollateral(ctx context.Context, account, assetID string, amount *uint256.Int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eng.RedeemCollateral(ctx, account, assetID, amount)
}

func (s *serializedEngine) BurnDebt(ctx context.Context, account string, amount *uint256.Int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eng.BurnDebt(ctx, account, amount)
}

func (s *serializedEngine) BurnAndRedeem(ctx context.Context, account string, debtAmount *uint256.Int, assetID string, collateralAmount *uint256.Int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eng.BurnAndRedeem(ctx, account, debtAmount, assetID, collateralAmount)
}

func (s *serializedEngine) Liquidate(ctx context.Context, liquidator, target, assetID string, debtToCover *uint256.Int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eng.Liquidate(ctx, liquidator, target, assetID, debtToCover)
}

func (s *serializedEngine) AccountInfo(ctx context.Context, account string) (*core.AccountInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eng.AccountInfo(ctx, account)
}

func (s *serializedEngine) HealthFactor(ctx context.Context, account string) (*uint256.Int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eng.HealthFactor(ctx, account)
}

func (s *serializedEngine) CollateralBalance(ctx context.Context, account, assetID string) (*uint256.Int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eng.CollateralBalance(ctx, account, assetID)
}

func (s *serializedEngine) CollateralValue(ctx context.Context, account string) (*uint256.Int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eng.CollateralValue(ctx, account)
}

func (s *serializedEngine) USDValue(ctx context.Context, assetID string, amount *uint256.Int) (*uint256.Int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eng.USDValue(ctx, assetID, amount)
}

func (s *serializedEngine) TokenAmountFromUSD(ctx context.Context, assetID string, usd *uint256.Int) (*uint256.Int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eng.TokenAmountFromUSD(ctx, assetID, usd)
}

func (s *serializedEngine) CollateralAssets() []string {
	return s.eng.CollateralAssets()
}

func (s *serializedEngine) Feed(assetID string) (core.PriceFeed, error) {
	return s.eng.Feed(assetID)
}
