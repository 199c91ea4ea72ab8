package liquidity_amounts

import (
	"errors"
	"math/big"

	"github.com/holiman/uint256"
)

var OVERFLOW = errors.New("OVERFLOW")
var UNDERFLOW = errors.New("UNDERFLOW")
var DIVISION_BY_ZERO = errors.New("DIVISION_BY_ZERO")
var DEGENERATE_RANGE = errors.New("DEGENERATE_RANGE")

// ToUint128 narrows x to the liquidity width.
func ToUint128(x *uint256.Int) (*uint256.Int, error) {
	if x.Gt(MaxUint128) {
		return nil, OVERFLOW
	}
	return x, nil
}

// LiquidityAddDelta adds a signed liquidity delta to x. Both the input and
// the result must fit in 128 bits.
func LiquidityAddDelta(x *uint256.Int, y *big.Int) (*uint256.Int, error) {
	if x.Gt(MaxUint128) {
		return nil, OVERFLOW
	}
	abs := new(big.Int).Abs(y)
	if abs.BitLen() > 128 {
		return nil, OVERFLOW
	}
	delta, _ := uint256.FromBig(abs)
	if y.Sign() < 0 {
		if delta.Gt(x) {
			return nil, UNDERFLOW
		}
		return new(uint256.Int).Sub(x, delta), nil
	} else {
		z := new(uint256.Int).Add(x, delta)
		if z.Gt(MaxUint128) {
			return nil, OVERFLOW
		}
		return z, nil
	}
}
