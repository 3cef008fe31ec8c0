package token

import (
	"context"

	"pegvault/core"

	"github.com/holiman/uint256"
)

// Fungible is an in-process fungible balance ledger with the allowance
// semantics the engine expects from its collateral token collaborators.
type Fungible struct {
	assetID    string
	balances   map[string]*uint256.Int
	allowances map[string]map[string]*uint256.Int

	// caller identity the handle is bound to; transfers spend this
	// identity's balance and transferFrom spends its allowance
	caller string
}

// NewFungible new in-process token ledger for one asset
func NewFungible(assetID string) *Fungible {
	return &Fungible{
		assetID:    assetID,
		balances:   make(map[string]*uint256.Int),
		allowances: make(map[string]map[string]*uint256.Int),
	}
}

// Bind returns a view of the token acting as caller. The ledger is
// shared; only the caller identity differs between handles.
func (t *Fungible) Bind(caller string) *Fungible {
	bound := *t
	bound.caller = caller
	return &bound
}

func (t *Fungible) AssetID() string {
	return t.assetID
}

func (t *Fungible) BalanceOf(account string) *uint256.Int {
	if balance, ok := t.balances[account]; ok {
		return new(uint256.Int).Set(balance)
	}
	return uint256.NewInt(0)
}

// Deposit credits an account out of thin air, wiring and test setup only
func (t *Fungible) Deposit(account string, amount *uint256.Int) {
	t.credit(account, amount)
}

// Approve lets spender move up to amount of owner's balance
func (t *Fungible) Approve(owner, spender string, amount *uint256.Int) {
	approvals, ok := t.allowances[owner]
	if !ok {
		approvals = make(map[string]*uint256.Int)
		t.allowances[owner] = approvals
	}
	approvals[spender] = new(uint256.Int).Set(amount)
}

func (t *Fungible) Transfer(ctx context.Context, to string, amount *uint256.Int) error {
	return t.move(t.caller, to, amount)
}

func (t *Fungible) TransferFrom(ctx context.Context, from, to string, amount *uint256.Int) error {
	if from != t.caller {
		if err := t.spendAllowance(from, t.caller, amount); err != nil {
			return err
		}
	}

	return t.move(from, to, amount)
}

func (t *Fungible) move(from, to string, amount *uint256.Int) error {
	balance := t.BalanceOf(from)
	next, underflow := new(uint256.Int).SubOverflow(balance, amount)
	if underflow {
		return core.ErrInsufficientBalance
	}

	t.balances[from] = next
	t.credit(to, amount)
	return nil
}

func (t *Fungible) credit(account string, amount *uint256.Int) {
	balance, ok := t.balances[account]
	if !ok {
		balance = uint256.NewInt(0)
	}
	t.balances[account] = new(uint256.Int).Add(balance, amount)
}

func (t *Fungible) spendAllowance(owner, spender string, amount *uint256.Int) error {
	approvals, ok := t.allowances[owner]
	if !ok {
		return core.ErrTransferFailed
	}

	allowance, ok := approvals[spender]
	if !ok {
		return core.ErrTransferFailed
	}

	next, underflow := new(uint256.Int).SubOverflow(allowance, amount)
	if underflow {
		return core.ErrTransferFailed
	}

	approvals[spender] = next
	return nil
}
