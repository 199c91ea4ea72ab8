package liquidity_amounts

import (
	"github.com/holiman/uint256"
)

// RangePosition is where the current price sits relative to a price range.
type RangePosition int

const (
	RangeBelow RangePosition = iota
	RangeInside
	RangeAbove
)

func (p RangePosition) String() string {
	switch p {
	case RangeBelow:
		return "below"
	case RangeInside:
		return "inside"
	case RangeAbove:
		return "above"
	default:
		return "unknown"
	}
}

// SortSqrtRatios returns the two range boundaries in ascending order.
func SortSqrtRatios(sqrtRatioAX96, sqrtRatioBX96 *uint256.Int) (*uint256.Int, *uint256.Int) {
	if sqrtRatioAX96.Gt(sqrtRatioBX96) {
		return sqrtRatioBX96, sqrtRatioAX96
	}
	return sqrtRatioAX96, sqrtRatioBX96
}

// GetRangePosition classifies sqrtRatioX96 against the range. A price equal
// to a boundary counts as outside the range on that side.
func GetRangePosition(sqrtRatioX96, sqrtRatioAX96, sqrtRatioBX96 *uint256.Int) RangePosition {
	sqrtRatioAX96, sqrtRatioBX96 = SortSqrtRatios(sqrtRatioAX96, sqrtRatioBX96)
	if !sqrtRatioX96.Gt(sqrtRatioAX96) {
		return RangeBelow
	}
	if sqrtRatioX96.Lt(sqrtRatioBX96) {
		return RangeInside
	}
	return RangeAbove
}

func checkSqrtRatios(sqrtRatios ...*uint256.Int) error {
	for _, r := range sqrtRatios {
		if r.Gt(MaxUint160) {
			return OVERFLOW
		}
	}
	return nil
}

// GetLiquidityForAmount0 computes the liquidity received for amount0 of token0
// across the whole range:
//
//	liquidity = amount0 * (sqrt(upper) * sqrt(lower)) / (sqrt(upper) - sqrt(lower))
func GetLiquidityForAmount0(sqrtRatioAX96, sqrtRatioBX96, amount0 *uint256.Int) (*uint256.Int, error) {
	if err := checkSqrtRatios(sqrtRatioAX96, sqrtRatioBX96); err != nil {
		return nil, err
	}
	sqrtRatioAX96, sqrtRatioBX96 = SortSqrtRatios(sqrtRatioAX96, sqrtRatioBX96)
	if sqrtRatioAX96.Eq(sqrtRatioBX96) {
		return nil, DEGENERATE_RANGE
	}
	intermediate, err := MulDiv(sqrtRatioAX96, sqrtRatioBX96, Q96)
	if err != nil {
		return nil, err
	}
	liquidity, err := MulDiv(amount0, intermediate, new(uint256.Int).Sub(sqrtRatioBX96, sqrtRatioAX96))
	if err != nil {
		return nil, err
	}
	return ToUint128(liquidity)
}

// GetLiquidityForAmount1 computes the liquidity received for amount1 of token1
// across the whole range:
//
//	liquidity = amount1 / (sqrt(upper) - sqrt(lower))
func GetLiquidityForAmount1(sqrtRatioAX96, sqrtRatioBX96, amount1 *uint256.Int) (*uint256.Int, error) {
	if err := checkSqrtRatios(sqrtRatioAX96, sqrtRatioBX96); err != nil {
		return nil, err
	}
	sqrtRatioAX96, sqrtRatioBX96 = SortSqrtRatios(sqrtRatioAX96, sqrtRatioBX96)
	if sqrtRatioAX96.Eq(sqrtRatioBX96) {
		return nil, DEGENERATE_RANGE
	}
	liquidity, err := MulDiv(amount1, Q96, new(uint256.Int).Sub(sqrtRatioBX96, sqrtRatioAX96))
	if err != nil {
		return nil, err
	}
	return ToUint128(liquidity)
}

// GetLiquidityForAmounts computes the maximum liquidity that amount0 and
// amount1 can mint for the range at the current price.
func GetLiquidityForAmounts(sqrtRatioX96, sqrtRatioAX96, sqrtRatioBX96, amount0, amount1 *uint256.Int) (*uint256.Int, error) {
	if err := checkSqrtRatios(sqrtRatioX96); err != nil {
		return nil, err
	}
	sqrtRatioAX96, sqrtRatioBX96 = SortSqrtRatios(sqrtRatioAX96, sqrtRatioBX96)

	switch GetRangePosition(sqrtRatioX96, sqrtRatioAX96, sqrtRatioBX96) {
	case RangeBelow:
		return GetLiquidityForAmount0(sqrtRatioAX96, sqrtRatioBX96, amount0)
	case RangeInside:
		liquidity0, err := GetLiquidityForAmount0(sqrtRatioX96, sqrtRatioBX96, amount0)
		if err != nil {
			return nil, err
		}
		liquidity1, err := GetLiquidityForAmount1(sqrtRatioAX96, sqrtRatioX96, amount1)
		if err != nil {
			return nil, err
		}
		if liquidity0.Lt(liquidity1) {
			return liquidity0, nil
		}
		return liquidity1, nil
	default:
		return GetLiquidityForAmount1(sqrtRatioAX96, sqrtRatioBX96, amount1)
	}
}

// GetAmount0ForLiquidity computes the amount of token0 held by liquidity
// across the whole range, rounded down.
func GetAmount0ForLiquidity(sqrtRatioAX96, sqrtRatioBX96, liquidity *uint256.Int) (*uint256.Int, error) {
	if err := checkSqrtRatios(sqrtRatioAX96, sqrtRatioBX96); err != nil {
		return nil, err
	}
	if liquidity.Gt(MaxUint128) {
		return nil, OVERFLOW
	}
	sqrtRatioAX96, sqrtRatioBX96 = SortSqrtRatios(sqrtRatioAX96, sqrtRatioBX96)
	if sqrtRatioAX96.IsZero() {
		return nil, DIVISION_BY_ZERO
	}
	numerator1 := new(uint256.Int).Lsh(liquidity, RESOLUTION)
	numerator2 := new(uint256.Int).Sub(sqrtRatioBX96, sqrtRatioAX96)
	amount0, err := MulDiv(numerator1, numerator2, sqrtRatioBX96)
	if err != nil {
		return nil, err
	}
	return amount0.Div(amount0, sqrtRatioAX96), nil
}

// GetAmount1ForLiquidity computes the amount of token1 held by liquidity
// across the whole range, rounded down.
func GetAmount1ForLiquidity(sqrtRatioAX96, sqrtRatioBX96, liquidity *uint256.Int) (*uint256.Int, error) {
	if err := checkSqrtRatios(sqrtRatioAX96, sqrtRatioBX96); err != nil {
		return nil, err
	}
	if liquidity.Gt(MaxUint128) {
		return nil, OVERFLOW
	}
	sqrtRatioAX96, sqrtRatioBX96 = SortSqrtRatios(sqrtRatioAX96, sqrtRatioBX96)
	return MulDiv(liquidity, new(uint256.Int).Sub(sqrtRatioBX96, sqrtRatioAX96), Q96)
}

// GetAmountsForLiquidity computes the token0 and token1 value of liquidity
// for the range at the current price.
func GetAmountsForLiquidity(sqrtRatioX96, sqrtRatioAX96, sqrtRatioBX96, liquidity *uint256.Int) (amount0, amount1 *uint256.Int, err error) {
	if err = checkSqrtRatios(sqrtRatioX96); err != nil {
		return nil, nil, err
	}
	sqrtRatioAX96, sqrtRatioBX96 = SortSqrtRatios(sqrtRatioAX96, sqrtRatioBX96)

	switch GetRangePosition(sqrtRatioX96, sqrtRatioAX96, sqrtRatioBX96) {
	case RangeBelow:
		amount0, err = GetAmount0ForLiquidity(sqrtRatioAX96, sqrtRatioBX96, liquidity)
		if err != nil {
			return nil, nil, err
		}
		return amount0, new(uint256.Int), nil
	case RangeInside:
		amount0, err = GetAmount0ForLiquidity(sqrtRatioX96, sqrtRatioBX96, liquidity)
		if err != nil {
			return nil, nil, err
		}
		amount1, err = GetAmount1ForLiquidity(sqrtRatioAX96, sqrtRatioX96, liquidity)
		if err != nil {
			return nil, nil, err
		}
		return amount0, amount1, nil
	default:
		amount1, err = GetAmount1ForLiquidity(sqrtRatioAX96, sqrtRatioBX96, liquidity)
		if err != nil {
			return nil, nil, err
		}
		return new(uint256.Int), amount1, nil
	}
}
