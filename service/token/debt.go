package token

import (
	"context"

	"pegvault/core"

	"github.com/holiman/uint256"
)

// DebtToken is the pegged debt token: a fungible ledger whose mint and
// burn are restricted to a single owner identity, handed over once.
type DebtToken struct {
	*Fungible
	state *debtState
}

type debtState struct {
	owner       string
	transferred bool
	totalSupply *uint256.Int
}

// NewDebtToken new unowned debt token
func NewDebtToken(assetID string) *DebtToken {
	return &DebtToken{
		Fungible: NewFungible(assetID),
		state: &debtState{
			totalSupply: uint256.NewInt(0),
		},
	}
}

// TransferOwnership hands exclusive mint and burn authority to owner.
// It may be called once; authority is never reassigned.
func (t *DebtToken) TransferOwnership(owner string) error {
	if t.state.transferred {
		return core.ErrOperationForbidden
	}

	t.state.owner = owner
	t.state.transferred = true
	return nil
}

// Bind returns a view of the token acting as caller
func (t *DebtToken) Bind(caller string) *DebtToken {
	return &DebtToken{
		Fungible: t.Fungible.Bind(caller),
		state:    t.state,
	}
}

func (t *DebtToken) TotalSupply() *uint256.Int {
	return new(uint256.Int).Set(t.state.totalSupply)
}

func (t *DebtToken) Mint(ctx context.Context, to string, amount *uint256.Int) error {
	if !t.state.transferred || t.caller != t.state.owner {
		return core.ErrOperationForbidden
	}
	if amount.IsZero() {
		return core.ErrMustBeMoreThanZero
	}

	supply, overflow := new(uint256.Int).AddOverflow(t.state.totalSupply, amount)
	if overflow {
		return core.ErrAmountOverflow
	}

	t.state.totalSupply = supply
	t.credit(to, amount)
	return nil
}

// Burn destroys amount from the caller's own balance
func (t *DebtToken) Burn(ctx context.Context, amount *uint256.Int) error {
	if !t.state.transferred || t.caller != t.state.owner {
		return core.ErrOperationForbidden
	}

	balance := t.BalanceOf(t.caller)
	next, underflow := new(uint256.Int).SubOverflow(balance, amount)
	if underflow {
		return core.ErrInsufficientBalance
	}

	t.balances[t.caller] = next
	t.state.totalSupply = new(uint256.Int).Sub(t.state.totalSupply, amount)
	return nil
}
