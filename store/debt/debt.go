package debt

import (
	"context"

	"pegvault/core"
	"pegvault/pkg/number"

	"github.com/holiman/uint256"
)

type debtStore struct {
	minted map[string]*uint256.Int
}

// New new debt store, engine owned
func New() core.DebtStore {
	return &debtStore{
		minted: make(map[string]*uint256.Int),
	}
}

func (s *debtStore) Add(ctx context.Context, account string, amount *uint256.Int) error {
	balance, ok := s.minted[account]
	if !ok {
		balance = uint256.NewInt(0)
	}

	next, err := number.Add(balance, amount)
	if err != nil {
		return err
	}

	s.minted[account] = next
	return nil
}

func (s *debtStore) Sub(ctx context.Context, account string, amount *uint256.Int) error {
	balance, ok := s.minted[account]
	if !ok {
		balance = uint256.NewInt(0)
	}

	next, err := number.Sub(balance, amount)
	if err != nil {
		return core.ErrInsufficientBalance
	}

	s.minted[account] = next
	return nil
}

func (s *debtStore) Balance(ctx context.Context, account string) (*uint256.Int, error) {
	if balance, ok := s.minted[account]; ok {
		return new(uint256.Int).Set(balance), nil
	}

	return uint256.NewInt(0), nil
}
