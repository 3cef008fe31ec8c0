package core

import (
	"context"

	"github.com/holiman/uint256"
)

// Token is a fungible balance ledger collaborator. Transfers report
// failure through the returned error; the engine never inspects balances
// directly.
type Token interface {
	AssetID() string
	Transfer(ctx context.Context, to string, amount *uint256.Int) error
	TransferFrom(ctx context.Context, from, to string, amount *uint256.Int) error
}

// DebtToken is the pegged debt token. Mint and burn are capability
// guarded: the implementation records a single authorized owner at
// handover and rejects calls bound to any other identity.
type DebtToken interface {
	Token
	Mint(ctx context.Context, to string, amount *uint256.Int) error
	Burn(ctx context.Context, amount *uint256.Int) error
}

// TokenRegistry resolves a registered collateral asset id to its token
// collaborator.
type TokenRegistry interface {
	Token(assetID string) (Token, error)
}
