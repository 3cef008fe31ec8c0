package engine

import (
	"context"
	"time"

	"pegvault/core"
	"pegvault/pkg/id"

	"github.com/holiman/uint256"
)

func (s *engineService) DepositCollateral(ctx context.Context, account, assetID string, amount *uint256.Int) error {
	return s.run(ctx, func(op *operation) error {
		return s.depositCollateral(ctx, op, account, assetID, amount)
	})
}

func (s *engineService) RedeemCollateral(ctx context.Context, account, assetID string, amount *uint256.Int) error {
	return s.run(ctx, func(op *operation) error {
		if err := s.redeemCollateral(ctx, op, account, account, assetID, amount); err != nil {
			return err
		}

		return s.requireSolvent(ctx, account)
	})
}

func (s *engineService) depositCollateral(ctx context.Context, op *operation, account, assetID string, amount *uint256.Int) error {
	if amount == nil || amount.IsZero() {
		return core.ErrMustBeMoreThanZero
	}

	token, err := s.tokens.Token(assetID)
	if err != nil {
		return err
	}

	if err := s.collateralStore.Add(ctx, account, assetID, amount); err != nil {
		return err
	}
	op.deferUndo(func(ctx context.Context) error {
		return s.collateralStore.Sub(ctx, account, assetID, amount)
	})

	// pull into engine custody once the ledger holds its final value
	op.deferExternal(core.ErrTransferFailed,
		func(ctx context.Context) error {
			return token.TransferFrom(ctx, account, s.address, amount)
		},
		func(ctx context.Context) error {
			return token.Transfer(ctx, account, amount)
		},
	)

	op.emit(&core.CollateralDeposited{
		TraceID:   id.GenTraceID(),
		Account:   account,
		AssetID:   assetID,
		Amount:    new(uint256.Int).Set(amount),
		CreatedAt: time.Now(),
	})

	return nil
}

// redeemCollateral moves collateral out of from's ledger to the receiver.
// Liquidation uses it as a privileged redemption on the target's behalf;
// callers decide whose solvency to check afterwards.
func (s *engineService) redeemCollateral(ctx context.Context, op *operation, from, to, assetID string, amount *uint256.Int) error {
	if amount == nil || amount.IsZero() {
		return core.ErrMustBeMoreThanZero
	}

	token, err := s.tokens.Token(assetID)
	if err != nil {
		return err
	}

	if err := s.collateralStore.Sub(ctx, from, assetID, amount); err != nil {
		return err
	}
	op.deferUndo(func(ctx context.Context) error {
		return s.collateralStore.Add(ctx, from, assetID, amount)
	})

	// outbound sends cannot be clawed back, so they carry no compensation
	// and every operation schedules them after its reversible calls
	op.deferExternal(core.ErrTransferFailed, func(ctx context.Context) error {
		return token.Transfer(ctx, to, amount)
	}, nil)

	op.emit(&core.CollateralRedeemed{
		TraceID:   id.GenTraceID(),
		From:      from,
		To:        to,
		AssetID:   assetID,
		Amount:    new(uint256.Int).Set(amount),
		CreatedAt: time.Now(),
	})

	return nil
}
