package engine

import (
	"context"

	"pegvault/core"
	"pegvault/pkg/number"

	"github.com/holiman/uint256"
)

// Liquidate lets liquidator repay debtToCover of target's debt and seize
// the equivalent collateral plus the liquidation bonus. Partial
// liquidation is allowed.
func (s *engineService) Liquidate(ctx context.Context, liquidator, target, assetID string, debtToCover *uint256.Int) error {
	return s.run(ctx, func(op *operation) error {
		if debtToCover == nil || debtToCover.IsZero() {
			return core.ErrMustBeMoreThanZero
		}

		startingHealth, err := s.solvencySrv.HealthFactor(ctx, target)
		if err != nil {
			return err
		}
		if !startingHealth.Lt(number.MinHealthFactor) {
			return core.ErrHealthFactorOkay
		}

		seized, err := s.solvencySrv.TokenAmountFromUSD(ctx, assetID, debtToCover)
		if err != nil {
			return err
		}

		bonus, err := number.MulDiv(seized, number.LiquidationBonus, number.LiquidationPrecision)
		if err != nil {
			return err
		}

		totalRedeemed, err := number.Add(seized, bonus)
		if err != nil {
			return err
		}

		// repayment is funded by the liquidator; scheduled first so the
		// irreversible collateral send stays the last external call
		if err := s.burnDebt(ctx, op, target, liquidator, debtToCover); err != nil {
			return err
		}

		// privileged redemption on the target's behalf; the target is not
		// re-checked here, the ending health comparison below governs
		if err := s.redeemCollateral(ctx, op, target, liquidator, assetID, totalRedeemed); err != nil {
			return err
		}

		endingHealth, err := s.solvencySrv.HealthFactor(ctx, target)
		if err != nil {
			return err
		}
		if !endingHealth.Gt(startingHealth) {
			return core.ErrHealthFactorNotImproved
		}

		// the liquidator funded the repayment: their own position must
		// stay solvent, the target's is deliberately not re-checked
		return s.requireSolvent(ctx, liquidator)
	})
}
