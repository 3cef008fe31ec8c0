package engine

import (
	"context"
	"testing"
	"time"

	"pegvault/core"
	"pegvault/pkg/number"
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

const engineAddress = "engine"

type memorySink struct {
	events []core.Event
}

func (s *memorySink) Emit(ctx context.Context, events ...core.Event) error {
	s.events = append(s.events, events...)
	return nil
}

type fixture struct {
	eng  core.Engine
	weth *token.Fungible
	dsc  *token.DebtToken
	feed *oracle.MemoryFeed
	sink *memorySink

	collateralStore core.CollateralStore
	debtStore       core.DebtStore
}

func newFixture(t *testing.T) *fixture {
	feed := oracle.NewMemoryFeed("weth", 8, time.Hour)
	feed.SetAnswer(decimal.RequireFromString("2000"), time.Now())

	priceSrv, err := oracle.New([]string{"weth"}, []core.PriceFeed{feed})
	require.Nil(t, err)

	weth := token.NewFungible("weth")
	dsc := token.NewDebtToken("dsc")
	require.Nil(t, dsc.TransferOwnership(engineAddress))

	collateralStore := collateral.New()
	debtStore := debt.New()
	solvencySrv := solvency.New(collateralStore, debtStore, priceSrv)
	sink := &memorySink{}

	eng := New(
		engineAddress,
		collateralStore,
		debtStore,
		priceSrv,
		solvencySrv,
		token.NewRegistry(weth.Bind(engineAddress)),
		dsc.Bind(engineAddress),
		sink,
	)

	return &fixture{
		eng:             eng,
		weth:            weth,
		dsc:             dsc,
		feed:            feed,
		sink:            sink,
		collateralStore: collateralStore,
		debtStore:       debtStore,
	}
}

func unit(n uint64) *uint256.Int {
	return new(uint256.Int).Mul(uint256.NewInt(n), number.Precision)
}

// fund gives an account collateral and approves the engine to pull it
func (f *fixture) fund(account string, amount *uint256.Int) {
	f.weth.Deposit(account, amount)
	f.weth.Approve(account, engineAddress, amount)
}

func TestDepositCollateral(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	assert.Equal(t, core.ErrMustBeMoreThanZero, f.eng.DepositCollateral(ctx, "alice", "weth", uint256.NewInt(0)))
	assert.Equal(t, core.ErrNotAllowedToken, f.eng.DepositCollateral(ctx, "alice", "doge", unit(1)))

	// no balance, no approval: transfer fails and the ledger unwinds
	assert.Equal(t, core.ErrTransferFailed, f.eng.DepositCollateral(ctx, "alice", "weth", unit(1)))
	balance, _ := f.eng.CollateralBalance(ctx, "alice", "weth")
	assert.True(t, balance.IsZero())
	assert.Empty(t, f.sink.events)

	f.fund("alice", unit(1))
	require.Nil(t, f.eng.DepositCollateral(ctx, "alice", "weth", unit(1)))

	balance, _ = f.eng.CollateralBalance(ctx, "alice", "weth")
	assert.Equal(t, unit(1), balance)
	assert.Equal(t, unit(1), f.weth.BalanceOf(engineAddress))
	assert.True(t, f.weth.BalanceOf("alice").IsZero())

	require.Len(t, f.sink.events, 1)
	deposited, ok := f.sink.events[0].(*core.CollateralDeposited)
	require.True(t, ok)
	assert.Equal(t, "alice", deposited.Account)
	assert.Equal(t, "weth", deposited.AssetID)
	assert.Equal(t, unit(1), deposited.Amount)
}

func TestDepositRedeemRoundTrip(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.fund("alice", unit(3))
	require.Nil(t, f.eng.DepositCollateral(ctx, "alice", "weth", unit(3)))
	require.Nil(t, f.eng.RedeemCollateral(ctx, "alice", "weth", unit(3)))

	balance, _ := f.eng.CollateralBalance(ctx, "alice", "weth")
	assert.True(t, balance.IsZero())
	assert.Equal(t, unit(3), f.weth.BalanceOf("alice"))
	assert.True(t, f.weth.BalanceOf(engineAddress).IsZero())
}

func TestMintDebtBoundary(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	assert.Equal(t, core.ErrMustBeMoreThanZero, f.eng.MintDebt(ctx, "alice", uint256.NewInt(0)))

	// 1 weth at $2000 backs exactly 1000 debt at the 50% threshold
	f.fund("alice", unit(1))
	require.Nil(t, f.eng.DepositCollateral(ctx, "alice", "weth", unit(1)))
	require.Nil(t, f.eng.MintDebt(ctx, "alice", unit(1000)))

	healthFactor, err := f.eng.HealthFactor(ctx, "alice")
	require.Nil(t, err)
	assert.Equal(t, number.MinHealthFactor, healthFactor)
	assert.Equal(t, unit(1000), f.dsc.BalanceOf("alice"))

	// a single extra unit of debt breaks the invariant and rolls back
	assert.Equal(t, core.ErrHealthFactorTooLow, f.eng.MintDebt(ctx, "alice", number.Precision))

	debtBalance, _ := f.debtStore.Balance(ctx, "alice")
	assert.Equal(t, unit(1000), debtBalance)
	assert.Equal(t, unit(1000), f.dsc.TotalSupply())
}

func TestDepositAndMint(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.fund("alice", unit(1))
	require.Nil(t, f.eng.DepositAndMint(ctx, "alice", "weth", unit(1), unit(500)))

	info, err := f.eng.AccountInfo(ctx, "alice")
	require.Nil(t, err)
	assert.Equal(t, unit(500), info.Debt)
	assert.Equal(t, unit(2000), info.CollateralValue)

	// over-minting aborts the whole composition, deposit included
	f.fund("bob", unit(1))
	assert.Equal(t, core.ErrHealthFactorTooLow, f.eng.DepositAndMint(ctx, "bob", "weth", unit(1), unit(1001)))

	balance, _ := f.eng.CollateralBalance(ctx, "bob", "weth")
	assert.True(t, balance.IsZero())
	assert.Equal(t, unit(1), f.weth.BalanceOf("bob"))
	assert.True(t, f.dsc.BalanceOf("bob").IsZero())
}

func TestRedeemGuardedBySolvency(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.fund("alice", unit(2))
	require.Nil(t, f.eng.DepositAndMint(ctx, "alice", "weth", unit(2), unit(1000)))

	// redeeming 1.5 weth would leave $1000 backing 1000 debt
	oneAndHalf := new(uint256.Int).Mul(uint256.NewInt(15), uint256.NewInt(100_000_000_000_000_000))
	assert.Equal(t, core.ErrHealthFactorTooLow, f.eng.RedeemCollateral(ctx, "alice", "weth", oneAndHalf))

	balance, _ := f.eng.CollateralBalance(ctx, "alice", "weth")
	assert.Equal(t, unit(2), balance)
	assert.True(t, f.weth.BalanceOf("alice").IsZero())

	// redeeming the free 1 weth is fine
	require.Nil(t, f.eng.RedeemCollateral(ctx, "alice", "weth", unit(1)))
	assert.Equal(t, unit(1), f.weth.BalanceOf("alice"))
}

func TestBurnAndRedeemClosesPosition(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.fund("alice", unit(1))
	require.Nil(t, f.eng.DepositAndMint(ctx, "alice", "weth", unit(1), unit(1000)))

	f.dsc.Approve("alice", engineAddress, unit(1000))
	require.Nil(t, f.eng.BurnAndRedeem(ctx, "alice", unit(1000), "weth", unit(1)))

	info, err := f.eng.AccountInfo(ctx, "alice")
	require.Nil(t, err)
	assert.True(t, info.Debt.IsZero())
	assert.True(t, info.CollateralValue.IsZero())
	assert.Equal(t, number.MaxUint256, info.HealthFactor)

	assert.Equal(t, unit(1), f.weth.BalanceOf("alice"))
	assert.True(t, f.dsc.TotalSupply().IsZero())
}

func TestBurnWithoutApprovalRollsBack(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.fund("alice", unit(1))
	require.Nil(t, f.eng.DepositAndMint(ctx, "alice", "weth", unit(1), unit(1000)))

	assert.Equal(t, core.ErrTransferFailed, f.eng.BurnDebt(ctx, "alice", unit(400)))

	debtBalance, _ := f.debtStore.Balance(ctx, "alice")
	assert.Equal(t, unit(1000), debtBalance)
	assert.Equal(t, unit(1000), f.dsc.TotalSupply())
}

func TestStalePriceAbortsMint(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.fund("alice", unit(1))
	require.Nil(t, f.eng.DepositCollateral(ctx, "alice", "weth", unit(1)))

	f.feed.SetAnswer(decimal.RequireFromString("2000"), time.Now().Add(-4*time.Hour))
	assert.Equal(t, core.ErrStalePrice, f.eng.MintDebt(ctx, "alice", unit(1)))

	debtBalance, _ := f.debtStore.Balance(ctx, "alice")
	assert.True(t, debtBalance.IsZero())
}
