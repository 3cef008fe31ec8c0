package engine

import (
	"context"

	"pegvault/core"

	"github.com/holiman/uint256"
)

func (s *engineService) MintDebt(ctx context.Context, account string, amount *uint256.Int) error {
	return s.run(ctx, func(op *operation) error {
		return s.mintDebt(ctx, op, account, amount)
	})
}

func (s *engineService) BurnDebt(ctx context.Context, account string, amount *uint256.Int) error {
	return s.run(ctx, func(op *operation) error {
		if err := s.burnDebt(ctx, op, account, account, amount); err != nil {
			return err
		}

		// a burn can only improve solvency; checked anyway for uniformity
		return s.requireSolvent(ctx, account)
	})
}

func (s *engineService) DepositAndMint(ctx context.Context, account, assetID string, collateralAmount, debtAmount *uint256.Int) error {
	return s.run(ctx, func(op *operation) error {
		if err := s.depositCollateral(ctx, op, account, assetID, collateralAmount); err != nil {
			return err
		}

		return s.mintDebt(ctx, op, account, debtAmount)
	})
}

func (s *engineService) BurnAndRedeem(ctx context.Context, account string, debtAmount *uint256.Int, assetID string, collateralAmount *uint256.Int) error {
	return s.run(ctx, func(op *operation) error {
		if err := s.burnDebt(ctx, op, account, account, debtAmount); err != nil {
			return err
		}

		if err := s.redeemCollateral(ctx, op, account, account, assetID, collateralAmount); err != nil {
			return err
		}

		return s.requireSolvent(ctx, account)
	})
}

func (s *engineService) mintDebt(ctx context.Context, op *operation, account string, amount *uint256.Int) error {
	if amount == nil || amount.IsZero() {
		return core.ErrMustBeMoreThanZero
	}

	if err := s.debtStore.Add(ctx, account, amount); err != nil {
		return err
	}
	op.deferUndo(func(ctx context.Context) error {
		return s.debtStore.Sub(ctx, account, amount)
	})

	// solvency first, token mint only after the check passes
	if err := s.requireSolvent(ctx, account); err != nil {
		return err
	}

	op.deferExternal(core.ErrMintFailed, func(ctx context.Context) error {
		return s.debtToken.Mint(ctx, account, amount)
	}, nil)

	return nil
}

// burnDebt retires debt recorded against onBehalfOf, funded by pulling
// debt tokens from payer into engine custody and burning them
func (s *engineService) burnDebt(ctx context.Context, op *operation, onBehalfOf, payer string, amount *uint256.Int) error {
	if amount == nil || amount.IsZero() {
		return core.ErrMustBeMoreThanZero
	}

	if err := s.debtStore.Sub(ctx, onBehalfOf, amount); err != nil {
		return err
	}
	op.deferUndo(func(ctx context.Context) error {
		return s.debtStore.Add(ctx, onBehalfOf, amount)
	})

	op.deferExternal(core.ErrTransferFailed,
		func(ctx context.Context) error {
			if err := s.debtToken.TransferFrom(ctx, payer, s.address, amount); err != nil {
				return err
			}

			return s.debtToken.Burn(ctx, amount)
		},
		// the engine holds mint authority, so an executed burn can be
		// reissued to the payer if a later call fails
		func(ctx context.Context) error {
			return s.debtToken.Mint(ctx, payer, amount)
		},
	)

	return nil
}
