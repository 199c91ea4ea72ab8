package liquidity_amounts

import "github.com/holiman/uint256"

const RESOLUTION = 96

var (
	MaxUint128 = new(uint256.Int).Sub(new(uint256.Int).Lsh(uint256.NewInt(1), 128), uint256.NewInt(1))
	MaxUint160 = new(uint256.Int).Sub(new(uint256.Int).Lsh(uint256.NewInt(1), 160), uint256.NewInt(1))
	MaxUint256 = new(uint256.Int).SetAllOne()

	Q96 = new(uint256.Int).Lsh(uint256.NewInt(1), RESOLUTION)

	// sqrt ratios at tick -887272 and 887272
	MIN_SQRT_RATIO = uint256.NewInt(4295128739)
	MAX_SQRT_RATIO = uint256.MustFromDecimal("1461446703485210103287273052203988822378723970342")
)
