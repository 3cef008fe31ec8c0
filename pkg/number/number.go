package number

import (
	"pegvault/core"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

// Fixed point constants shared by the solvency math. Prices, amounts and
// USD values all carry Precision fractional digits.
var (
	// Precision 1e18, the internal fixed point scale
	Precision = uint256.NewInt(1_000_000_000_000_000_000)
	// MinHealthFactor 1.0 at the internal scale
	MinHealthFactor = uint256.NewInt(1_000_000_000_000_000_000)
	// LiquidationThreshold percent of collateral value counted toward solvency
	LiquidationThreshold = uint256.NewInt(50)
	// LiquidationBonus percent of seized collateral awarded to the liquidator
	LiquidationBonus = uint256.NewInt(10)
	// LiquidationPrecision divisor for the two percentages above
	LiquidationPrecision = uint256.NewInt(100)
	// MaxUint256 reported as the health factor of debt free accounts
	MaxUint256 = new(uint256.Int).Not(uint256.NewInt(0))
)

// Add checked addition
func Add(a, b *uint256.Int) (*uint256.Int, error) {
	sum, overflow := new(uint256.Int).AddOverflow(a, b)
	if overflow {
		return nil, core.ErrAmountOverflow
	}
	return sum, nil
}

// Sub checked subtraction, rejects underflow
func Sub(a, b *uint256.Int) (*uint256.Int, error) {
	diff, underflow := new(uint256.Int).SubOverflow(a, b)
	if underflow {
		return nil, core.ErrAmountOverflow
	}
	return diff, nil
}

// Mul checked multiplication
func Mul(a, b *uint256.Int) (*uint256.Int, error) {
	product, overflow := new(uint256.Int).MulOverflow(a, b)
	if overflow {
		return nil, core.ErrAmountOverflow
	}
	return product, nil
}

// Div integer division, rejects a zero divisor
func Div(a, b *uint256.Int) (*uint256.Int, error) {
	if b.IsZero() {
		return nil, core.ErrAmountOverflow
	}
	return new(uint256.Int).Div(a, b), nil
}

// MulDiv computes a * b / den with the intermediate product checked
func MulDiv(a, b, den *uint256.Int) (*uint256.Int, error) {
	product, err := Mul(a, b)
	if err != nil {
		return nil, err
	}
	return Div(product, den)
}

// FromDecimal converts a non-negative decimal into a scaled integer with
// shift fractional digits, truncating anything below the scale.
func FromDecimal(d decimal.Decimal, shift int32) (*uint256.Int, error) {
	if d.IsNegative() {
		return nil, core.ErrAmountOverflow
	}

	scaled, overflow := uint256.FromBig(d.Shift(shift).Truncate(0).BigInt())
	if overflow {
		return nil, core.ErrAmountOverflow
	}

	return scaled, nil
}

// ToDecimal renders a scaled integer with shift fractional digits
func ToDecimal(v *uint256.Int, shift int32) decimal.Decimal {
	return decimal.NewFromBigInt(v.ToBig(), -shift)
}
