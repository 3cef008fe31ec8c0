package number

import (
	"testing"

	"pegvault/core"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckedArithmetic(t *testing.T) {
	sum, err := Add(uint256.NewInt(1), uint256.NewInt(2))
	require.Nil(t, err)
	assert.Equal(t, uint64(3), sum.Uint64())

	_, err = Add(MaxUint256, uint256.NewInt(1))
	assert.Equal(t, core.ErrAmountOverflow, err)

	_, err = Sub(uint256.NewInt(1), uint256.NewInt(2))
	assert.Equal(t, core.ErrAmountOverflow, err)

	_, err = Mul(MaxUint256, uint256.NewInt(2))
	assert.Equal(t, core.ErrAmountOverflow, err)

	_, err = Div(uint256.NewInt(1), uint256.NewInt(0))
	assert.Equal(t, core.ErrAmountOverflow, err)
}

func TestMulDiv(t *testing.T) {
	// 2000e18 * 50 / 100 = 1000e18
	v, err := MulDiv(new(uint256.Int).Mul(uint256.NewInt(2000), Precision), LiquidationThreshold, LiquidationPrecision)
	require.Nil(t, err)
	assert.Equal(t, new(uint256.Int).Mul(uint256.NewInt(1000), Precision), v)
}

func TestFromDecimal(t *testing.T) {
	v, err := FromDecimal(decimal.RequireFromString("2000.5"), 18)
	require.Nil(t, err)
	assert.Equal(t, "2000500000000000000000", v.Dec())

	_, err = FromDecimal(decimal.RequireFromString("-1"), 18)
	assert.Equal(t, core.ErrAmountOverflow, err)

	// truncates below the scale
	v, err = FromDecimal(decimal.RequireFromString("0.0000000000000000019"), 18)
	require.Nil(t, err)
	assert.Equal(t, uint64(1), v.Uint64())
}

func TestToDecimal(t *testing.T) {
	v := new(uint256.Int).Mul(uint256.NewInt(33), uint256.NewInt(10_000_000_000_000_000))
	assert.Equal(t, "0.33", ToDecimal(v, 18).String())
}
