package engine

import (
	"context"
	"testing"
	"time"

	"pegvault/core"
	"pegvault/service/oracle"
	"pegvault/service/solvency"
	"pegvault/service/token"
	"pegvault/store/collateral"
	"pegvault/store/debt"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reentrantToken yields control back into the engine mid transfer, the
// way a hostile token contract would
type reentrantToken struct {
	core.Token
	eng core.Engine

	// error observed by the nested call
	nested error
}

func (t *reentrantToken) TransferFrom(ctx context.Context, from, to string, amount *uint256.Int) error {
	t.nested = t.eng.MintDebt(ctx, from, uint256.NewInt(1))
	return t.Token.TransferFrom(ctx, from, to, amount)
}

func TestReentrancyGuard(t *testing.T) {
	ctx := context.Background()

	feed := oracle.NewMemoryFeed("weth", 8, time.Hour)
	feed.SetAnswer(decimal.RequireFromString("2000"), time.Now())
	priceSrv, err := oracle.New([]string{"weth"}, []core.PriceFeed{feed})
	require.Nil(t, err)

	weth := token.NewFungible("weth")
	dsc := token.NewDebtToken("dsc")
	require.Nil(t, dsc.TransferOwnership(engineAddress))

	hostile := &reentrantToken{Token: weth.Bind(engineAddress)}

	collateralStore := collateral.New()
	debtStore := debt.New()
	solvencySrv := solvency.New(collateralStore, debtStore, priceSrv)

	eng := New(
		engineAddress,
		collateralStore,
		debtStore,
		priceSrv,
		solvencySrv,
		token.NewRegistry(hostile),
		dsc.Bind(engineAddress),
		nil,
	)
	hostile.eng = eng

	weth.Deposit("alice", uint256.NewInt(100))
	weth.Approve("alice", engineAddress, uint256.NewInt(100))

	// the outer deposit commits; the nested call bounced off the guard
	require.Nil(t, eng.DepositCollateral(ctx, "alice", "weth", uint256.NewInt(100)))
	assert.Equal(t, core.ErrReentrantCall, hostile.nested)

	// the nested mint left no trace
	debtBalance, _ := debtStore.Balance(ctx, "alice")
	assert.True(t, debtBalance.IsZero())
	assert.True(t, dsc.TotalSupply().IsZero())

	balance, _ := collateralStore.Balance(ctx, "alice", "weth")
	assert.Equal(t, uint64(100), balance.Uint64())
}
