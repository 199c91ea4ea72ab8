package liquidity_amounts

import (
	"math/big"

	"github.com/daoleno/uniswapv3-sdk/utils"
	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

// GetAmount0Delta returns the signed token0 delta for a signed liquidity
// delta. Added liquidity rounds the amount owed up, removed liquidity rounds
// the amount paid out down.
func GetAmount0Delta(
	sqrtRatioAX96 *uint256.Int,
	sqrtRatioBX96 *uint256.Int,
	liquidity *big.Int,
) (*big.Int, error) {
	return signedAmountDelta(GetAmount0DeltaWithRoundUp, sqrtRatioAX96, sqrtRatioBX96, liquidity)
}

// GetAmount1Delta is GetAmount0Delta for token1.
func GetAmount1Delta(
	sqrtRatioAX96 *uint256.Int,
	sqrtRatioBX96 *uint256.Int,
	liquidity *big.Int,
) (*big.Int, error) {
	return signedAmountDelta(GetAmount1DeltaWithRoundUp, sqrtRatioAX96, sqrtRatioBX96, liquidity)
}

func signedAmountDelta(
	delta func(a, b, liquidity *uint256.Int, roundUp bool) (*uint256.Int, error),
	sqrtRatioAX96 *uint256.Int,
	sqrtRatioBX96 *uint256.Int,
	liquidity *big.Int,
) (*big.Int, error) {
	abs := new(big.Int).Abs(liquidity)
	if abs.BitLen() > 128 {
		return nil, OVERFLOW
	}
	l, _ := uint256.FromBig(abs)
	if liquidity.Sign() < 0 {
		r, err := delta(sqrtRatioAX96, sqrtRatioBX96, l, false)
		if err != nil {
			return nil, err
		}
		return new(big.Int).Neg(r.ToBig()), nil
	}
	r, err := delta(sqrtRatioAX96, sqrtRatioBX96, l, true)
	if err != nil {
		return nil, err
	}
	return r.ToBig(), nil
}

// GetAmount0DeltaWithRoundUp computes
//
//	liquidity / sqrt(lower) - liquidity / sqrt(upper)
//
// Rounded down it is identical to GetAmount0ForLiquidity.
func GetAmount0DeltaWithRoundUp(
	sqrtRatioAX96 *uint256.Int,
	sqrtRatioBX96 *uint256.Int,
	liquidity *uint256.Int,
	roundUp bool) (*uint256.Int, error) {
	if !roundUp {
		return GetAmount0ForLiquidity(sqrtRatioAX96, sqrtRatioBX96, liquidity)
	}
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

	tmp, err := MulDivRoundingUp(numerator1, numerator2, sqrtRatioBX96)
	if err != nil {
		return nil, err
	}
	return DivRoundingUp(tmp, sqrtRatioAX96)
}

// GetAmount1DeltaWithRoundUp computes liquidity * (sqrt(upper) - sqrt(lower)).
// Rounded down it is identical to GetAmount1ForLiquidity.
func GetAmount1DeltaWithRoundUp(
	sqrtRatioAX96 *uint256.Int,
	sqrtRatioBX96 *uint256.Int,
	liquidity *uint256.Int,
	roundUp bool) (*uint256.Int, error) {
	if !roundUp {
		return GetAmount1ForLiquidity(sqrtRatioAX96, sqrtRatioBX96, liquidity)
	}
	if err := checkSqrtRatios(sqrtRatioAX96, sqrtRatioBX96); err != nil {
		return nil, err
	}
	if liquidity.Gt(MaxUint128) {
		return nil, OVERFLOW
	}
	sqrtRatioAX96, sqrtRatioBX96 = SortSqrtRatios(sqrtRatioAX96, sqrtRatioBX96)
	return MulDivRoundingUp(liquidity, new(uint256.Int).Sub(sqrtRatioBX96, sqrtRatioAX96), Q96)
}

// EncodeSqrtRatioX96 returns the Q64.96 sqrt of amount1 / amount0.
func EncodeSqrtRatioX96(amount1, amount0 *big.Int) (*uint256.Int, error) {
	if amount0.Sign() == 0 {
		return nil, DIVISION_BY_ZERO
	}
	if amount0.Sign() < 0 || amount1.Sign() < 0 {
		return nil, UNDERFLOW
	}
	sqrtRatioX96, overflow := uint256.FromBig(utils.EncodeSqrtRatioX96(amount1, amount0))
	if overflow || sqrtRatioX96.Gt(MaxUint160) {
		return nil, OVERFLOW
	}
	return sqrtRatioX96, nil
}

// SqrtRatioX96ToPrice converts a Q64.96 sqrt price into the human price of
// token0 in units of token1, adjusted for token decimals.
func SqrtRatioX96ToPrice(sqrtRatioX96 *uint256.Int, decimals0, decimals1 uint8) decimal.Decimal {
	ratioX192 := new(big.Int).Mul(sqrtRatioX96.ToBig(), sqrtRatioX96.ToBig())
	price := decimal.NewFromBigInt(ratioX192, int32(decimals0)-int32(decimals1))
	return price.DivRound(decimal.NewFromBigInt(new(big.Int).Lsh(big.NewInt(1), 192), 0), 40)
}
