package collateral

import (
	"context"

	"pegvault/core"
	"pegvault/pkg/number"

	"github.com/holiman/uint256"
)

type collateralStore struct {
	balances map[string]map[string]*uint256.Int
}

// New new collateral store. The engine is the only writer; the host
// serializes calls, so there is no internal locking.
func New() core.CollateralStore {
	return &collateralStore{
		balances: make(map[string]map[string]*uint256.Int),
	}
}

func (s *collateralStore) Add(ctx context.Context, account, assetID string, amount *uint256.Int) error {
	assets, ok := s.balances[account]
	if !ok {
		assets = make(map[string]*uint256.Int)
		s.balances[account] = assets
	}

	balance, ok := assets[assetID]
	if !ok {
		balance = uint256.NewInt(0)
	}

	next, err := number.Add(balance, amount)
	if err != nil {
		return err
	}

	assets[assetID] = next
	return nil
}

func (s *collateralStore) Sub(ctx context.Context, account, assetID string, amount *uint256.Int) error {
	assets, ok := s.balances[account]
	if !ok {
		if amount.IsZero() {
			return nil
		}
		return core.ErrInsufficientBalance
	}

	balance, ok := assets[assetID]
	if !ok {
		balance = uint256.NewInt(0)
	}

	next, err := number.Sub(balance, amount)
	if err != nil {
		return core.ErrInsufficientBalance
	}

	assets[assetID] = next
	return nil
}

func (s *collateralStore) Balance(ctx context.Context, account, assetID string) (*uint256.Int, error) {
	if assets, ok := s.balances[account]; ok {
		if balance, ok := assets[assetID]; ok {
			return new(uint256.Int).Set(balance), nil
		}
	}

	return uint256.NewInt(0), nil
}
