package token

import (
	"context"
	"testing"

	"pegvault/core"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransferFrom(t *testing.T) {
	ctx := context.Background()
	weth := NewFungible("weth")
	weth.Deposit("alice", uint256.NewInt(100))

	engine := weth.Bind("engine")

	// no allowance yet
	assert.Equal(t, core.ErrTransferFailed, engine.TransferFrom(ctx, "alice", "engine", uint256.NewInt(40)))

	weth.Approve("alice", "engine", uint256.NewInt(40))
	require.Nil(t, engine.TransferFrom(ctx, "alice", "engine", uint256.NewInt(40)))
	assert.Equal(t, uint64(60), weth.BalanceOf("alice").Uint64())
	assert.Equal(t, uint64(40), weth.BalanceOf("engine").Uint64())

	// allowance spent
	assert.Equal(t, core.ErrTransferFailed, engine.TransferFrom(ctx, "alice", "engine", uint256.NewInt(1)))
}

func TestTransferInsufficient(t *testing.T) {
	ctx := context.Background()
	weth := NewFungible("weth")
	weth.Deposit("alice", uint256.NewInt(10))

	alice := weth.Bind("alice")
	assert.Equal(t, core.ErrInsufficientBalance, alice.Transfer(ctx, "bob", uint256.NewInt(11)))
	assert.Equal(t, uint64(10), weth.BalanceOf("alice").Uint64())
}

func TestDebtTokenAuthority(t *testing.T) {
	ctx := context.Background()
	dsc := NewDebtToken("dsc")

	// unowned token mints nothing
	assert.Equal(t, core.ErrOperationForbidden, dsc.Bind("engine").Mint(ctx, "alice", uint256.NewInt(1)))

	require.Nil(t, dsc.TransferOwnership("engine"))
	assert.Equal(t, core.ErrOperationForbidden, dsc.TransferOwnership("mallory"))

	engine := dsc.Bind("engine")
	require.Nil(t, engine.Mint(ctx, "alice", uint256.NewInt(1000)))
	assert.Equal(t, uint64(1000), dsc.TotalSupply().Uint64())
	assert.Equal(t, uint64(1000), dsc.BalanceOf("alice").Uint64())

	// only the owner mints or burns
	assert.Equal(t, core.ErrOperationForbidden, dsc.Bind("mallory").Mint(ctx, "mallory", uint256.NewInt(1)))
	assert.Equal(t, core.ErrOperationForbidden, dsc.Bind("mallory").Burn(ctx, uint256.NewInt(1)))
}

func TestDebtTokenBurn(t *testing.T) {
	ctx := context.Background()
	dsc := NewDebtToken("dsc")
	require.Nil(t, dsc.TransferOwnership("engine"))

	engine := dsc.Bind("engine")
	require.Nil(t, engine.Mint(ctx, "engine", uint256.NewInt(500)))
	require.Nil(t, engine.Burn(ctx, uint256.NewInt(200)))

	assert.Equal(t, uint64(300), dsc.TotalSupply().Uint64())
	assert.Equal(t, uint64(300), dsc.BalanceOf("engine").Uint64())

	assert.Equal(t, core.ErrInsufficientBalance, engine.Burn(ctx, uint256.NewInt(301)))
}
