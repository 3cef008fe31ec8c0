package engine

import (
	"context"

	"pegvault/core"
	"pegvault/pkg/number"
)

type engineService struct {
	address string

	collateralStore core.CollateralStore
	debtStore       core.DebtStore
	priceService    core.PriceOracleService
	solvencySrv     core.SolvencyService
	tokens          core.TokenRegistry
	debtToken       core.DebtToken
	sink            core.EventSink

	// reentrancy guard: the host serializes calls, so a set flag means an
	// external collaborator called back into the engine mid operation
	entered bool
}

// New new accounting engine. It is the only writer of the two ledgers;
// the debt token must already have handed mint and burn authority to
// address.
func New(
	address string,
	collateralStore core.CollateralStore,
	debtStore core.DebtStore,
	priceSrv core.PriceOracleService,
	solvencySrv core.SolvencyService,
	tokens core.TokenRegistry,
	debtToken core.DebtToken,
	sink core.EventSink,
) core.Engine {
	return &engineService{
		address:         address,
		collateralStore: collateralStore,
		debtStore:       debtStore,
		priceService:    priceSrv,
		solvencySrv:     solvencySrv,
		tokens:          tokens,
		debtToken:       debtToken,
		sink:            sink,
	}
}

func (s *engineService) Address() string {
	return s.address
}

// run wraps one public mutating operation: reentrancy guard for its full
// duration, then commit or roll back as a unit.
func (s *engineService) run(ctx context.Context, fn func(op *operation) error) error {
	if s.entered {
		return core.ErrReentrantCall
	}
	s.entered = true
	defer func() { s.entered = false }()

	op := &operation{}
	if err := fn(op); err != nil {
		op.rollback(ctx)
		return err
	}

	return op.commit(ctx, s.sink)
}

// requireSolvent aborts the operation if the account's health factor
// fell below the minimum. Debt free accounts always pass.
func (s *engineService) requireSolvent(ctx context.Context, account string) error {
	healthFactor, err := s.solvencySrv.HealthFactor(ctx, account)
	if err != nil {
		return err
	}

	if healthFactor.Lt(number.MinHealthFactor) {
		return core.ErrHealthFactorTooLow
	}

	return nil
}
