package liquidity_amounts

import (
	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

// ToTokenUnits scales a raw token amount down by the token's decimals.
func ToTokenUnits(raw *uint256.Int, decimals uint8) decimal.Decimal {
	return decimal.NewFromBigInt(raw.ToBig(), -int32(decimals))
}

// FromTokenUnits converts a human amount to raw token units. Anything below
// one raw unit is truncated.
func FromTokenUnits(amount decimal.Decimal, decimals uint8) (*uint256.Int, error) {
	if amount.IsNegative() {
		return nil, UNDERFLOW
	}
	raw, overflow := uint256.FromBig(amount.Shift(int32(decimals)).Truncate(0).BigInt())
	if overflow {
		return nil, OVERFLOW
	}
	return raw, nil
}

// RangeAmount is the value of a liquidity range in human token units.
type RangeAmount struct {
	SqrtRatioLowerX96 *uint256.Int
	SqrtRatioUpperX96 *uint256.Int
	Liquidity         *uint256.Int
	Amount0           decimal.Decimal
	Amount1           decimal.Decimal
}

// CalcRangeAmount values liquidity over the range at the current price.
func CalcRangeAmount(sqrtRatioX96, sqrtRatioAX96, sqrtRatioBX96, liquidity *uint256.Int, decimals0, decimals1 uint8) (*RangeAmount, error) {
	amount0, amount1, err := GetAmountsForLiquidity(sqrtRatioX96, sqrtRatioAX96, sqrtRatioBX96, liquidity)
	if err != nil {
		return nil, err
	}
	lower, upper := SortSqrtRatios(sqrtRatioAX96, sqrtRatioBX96)
	return &RangeAmount{
		SqrtRatioLowerX96: lower.Clone(),
		SqrtRatioUpperX96: upper.Clone(),
		Liquidity:         liquidity.Clone(),
		Amount0:           ToTokenUnits(amount0, decimals0),
		Amount1:           ToTokenUnits(amount1, decimals1),
	}, nil
}
