package liquidity_amounts

import (
	"github.com/holiman/uint256"
)

// MulDiv computes floor(a*b/denominator) over a 512-bit intermediate product.
// It fails when denominator is zero or the quotient does not fit in 256 bits.
func MulDiv(a, b, denominator *uint256.Int) (*uint256.Int, error) {
	if denominator.IsZero() {
		return nil, DIVISION_BY_ZERO
	}
	result, overflow := new(uint256.Int).MulDivOverflow(a, b, denominator)
	if overflow {
		return nil, OVERFLOW
	}
	return result, nil
}

// MulDivRoundingUp computes ceil(a*b/denominator).
func MulDivRoundingUp(a, b, denominator *uint256.Int) (*uint256.Int, error) {
	result, err := MulDiv(a, b, denominator)
	if err != nil {
		return nil, err
	}
	if !new(uint256.Int).MulMod(a, b, denominator).IsZero() {
		if result.Eq(MaxUint256) {
			return nil, OVERFLOW
		}
		result.AddUint64(result, 1)
	}
	return result, nil
}

// DivRoundingUp computes ceil(x/y).
func DivRoundingUp(x, y *uint256.Int) (*uint256.Int, error) {
	if y.IsZero() {
		return nil, DIVISION_BY_ZERO
	}
	quotient, remainder := new(uint256.Int).DivMod(x, y, new(uint256.Int))
	if !remainder.IsZero() {
		quotient.AddUint64(quotient, 1)
	}
	return quotient, nil
}
