package liquidity_amounts

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/sirupsen/logrus"
)

var ZERO_LIQUIDITY = errors.New("ZERO_LIQUIDITY")
var PRICE_SLIPPAGE = errors.New("Price slippage check")

type Position struct {
	Liquidity         *uint256.Int
	SqrtRatioLowerX96 *uint256.Int
	SqrtRatioUpperX96 *uint256.Int
}

func NewPosition(sqrtRatioAX96, sqrtRatioBX96 *uint256.Int) *Position {
	lower, upper := SortSqrtRatios(sqrtRatioAX96, sqrtRatioBX96)
	return &Position{
		Liquidity:         new(uint256.Int),
		SqrtRatioLowerX96: lower.Clone(),
		SqrtRatioUpperX96: upper.Clone(),
	}
}

func (p *Position) Clone() *Position {
	return &Position{
		Liquidity:         p.Liquidity.Clone(),
		SqrtRatioLowerX96: p.SqrtRatioLowerX96.Clone(),
		SqrtRatioUpperX96: p.SqrtRatioUpperX96.Clone(),
	}
}

func (p *Position) IsEmpty() bool {
	return p.Liquidity.IsZero()
}

// Amounts values the position at the current price, rounding down.
func (p *Position) Amounts(sqrtRatioX96 *uint256.Int) (*uint256.Int, *uint256.Int, error) {
	return GetAmountsForLiquidity(sqrtRatioX96, p.SqrtRatioLowerX96, p.SqrtRatioUpperX96, p.Liquidity)
}

func GetPositionKey(owner common.Address, sqrtRatioAX96, sqrtRatioBX96 *uint256.Int) string {
	lower, upper := SortSqrtRatios(sqrtRatioAX96, sqrtRatioBX96)
	return fmt.Sprintf("%s_%s_%s", owner.Hex(), lower.Dec(), upper.Dec())
}

// getAmountsForLiquidityDelta mirrors GetAmountsForLiquidity with a choice of
// rounding. Amounts owed to the pool round up.
func getAmountsForLiquidityDelta(sqrtRatioX96, sqrtRatioAX96, sqrtRatioBX96, liquidity *uint256.Int, roundUp bool) (amount0, amount1 *uint256.Int, err error) {
	if !roundUp {
		return GetAmountsForLiquidity(sqrtRatioX96, sqrtRatioAX96, sqrtRatioBX96, liquidity)
	}
	lower, upper := SortSqrtRatios(sqrtRatioAX96, sqrtRatioBX96)
	amount0, amount1 = new(uint256.Int), new(uint256.Int)
	switch GetRangePosition(sqrtRatioX96, lower, upper) {
	case RangeBelow:
		amount0, err = GetAmount0DeltaWithRoundUp(lower, upper, liquidity, true)
	case RangeInside:
		amount0, err = GetAmount0DeltaWithRoundUp(sqrtRatioX96, upper, liquidity, true)
		if err != nil {
			return nil, nil, err
		}
		amount1, err = GetAmount1DeltaWithRoundUp(lower, sqrtRatioX96, liquidity, true)
	case RangeAbove:
		amount1, err = GetAmount1DeltaWithRoundUp(lower, upper, liquidity, true)
	}
	if err != nil {
		return nil, nil, err
	}
	return amount0, amount1, nil
}

func belowMin(amount, min *uint256.Int) bool {
	return min != nil && amount.Lt(min)
}

// PositionManager books liquidity positions of a single pool in memory. It is
// not safe for concurrent use.
type PositionManager struct {
	Config    *PoolConfig
	Positions map[string]*Position
	log       *logrus.Entry
}

func NewPositionManager(config *PoolConfig, logger *logrus.Logger) *PositionManager {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &PositionManager{
		Config:    config,
		Positions: map[string]*Position{},
		log:       logger.WithField("pool", config.Id),
	}
}

func (pm *PositionManager) Clone() *PositionManager {
	ps := make(map[string]*Position, len(pm.Positions))
	for s, position := range pm.Positions {
		ps[s] = position.Clone()
	}
	return &PositionManager{
		Config:    pm.Config,
		Positions: ps,
		log:       pm.log,
	}
}

func (pm *PositionManager) Set(key string, position *Position) {
	pm.Positions[key] = position
}

func (pm *PositionManager) Clear(key string) {
	delete(pm.Positions, key)
}

func (pm *PositionManager) GetPositionReadonly(owner common.Address, sqrtRatioAX96, sqrtRatioBX96 *uint256.Int) *Position {
	key := GetPositionKey(owner, sqrtRatioAX96, sqrtRatioBX96)
	if v, ok := pm.Positions[key]; ok {
		return v.Clone()
	}
	return NewPosition(sqrtRatioAX96, sqrtRatioBX96)
}

type AddLiquidityParams struct {
	Owner          common.Address
	SqrtRatioX96   *uint256.Int
	SqrtRatioAX96  *uint256.Int
	SqrtRatioBX96  *uint256.Int
	Amount0Desired *uint256.Int
	Amount1Desired *uint256.Int
	// optional
	Amount0Min *uint256.Int
	Amount1Min *uint256.Int
}

// AddLiquidity mints the most liquidity the desired amounts allow at the
// current price and returns it with the amounts the owner pays.
func (pm *PositionManager) AddLiquidity(params AddLiquidityParams) (liquidity, amount0, amount1 *uint256.Int, err error) {
	liquidity, err = GetLiquidityForAmounts(params.SqrtRatioX96, params.SqrtRatioAX96, params.SqrtRatioBX96, params.Amount0Desired, params.Amount1Desired)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("liquidity for amounts: %w", err)
	}
	if liquidity.IsZero() {
		return nil, nil, nil, ZERO_LIQUIDITY
	}
	amount0, amount1, err = getAmountsForLiquidityDelta(params.SqrtRatioX96, params.SqrtRatioAX96, params.SqrtRatioBX96, liquidity, true)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("amounts for liquidity: %w", err)
	}
	if belowMin(amount0, params.Amount0Min) || belowMin(amount1, params.Amount1Min) {
		pm.log.WithField("owner", params.Owner.Hex()).Warnf("add liquidity slippage, amount0: %s amount1: %s", amount0.Dec(), amount1.Dec())
		return nil, nil, nil, PRICE_SLIPPAGE
	}

	position := pm.GetPositionReadonly(params.Owner, params.SqrtRatioAX96, params.SqrtRatioBX96)
	next, err := LiquidityAddDelta(position.Liquidity, liquidity.ToBig())
	if err != nil {
		return nil, nil, nil, err
	}
	position.Liquidity = next
	pm.Set(GetPositionKey(params.Owner, params.SqrtRatioAX96, params.SqrtRatioBX96), position)

	pm.log.WithField("owner", params.Owner.Hex()).Debugf("add liquidity: %s, amount0: %s amount1: %s", liquidity.Dec(), amount0.Dec(), amount1.Dec())
	return liquidity, amount0, amount1, nil
}

type RemoveLiquidityParams struct {
	Owner         common.Address
	SqrtRatioX96  *uint256.Int
	SqrtRatioAX96 *uint256.Int
	SqrtRatioBX96 *uint256.Int
	Liquidity     *uint256.Int
	// optional
	Amount0Min *uint256.Int
	Amount1Min *uint256.Int
}

// RemoveLiquidity burns liquidity from a position and returns the amounts
// paid out, rounded down. Emptied positions are dropped.
func (pm *PositionManager) RemoveLiquidity(params RemoveLiquidityParams) (amount0, amount1 *uint256.Int, err error) {
	if params.Liquidity.IsZero() {
		return nil, nil, ZERO_LIQUIDITY
	}
	key := GetPositionKey(params.Owner, params.SqrtRatioAX96, params.SqrtRatioBX96)
	position, ok := pm.Positions[key]
	if !ok {
		return nil, nil, UNDERFLOW
	}
	next, err := LiquidityAddDelta(position.Liquidity, new(big.Int).Neg(params.Liquidity.ToBig()))
	if err != nil {
		return nil, nil, err
	}
	amount0, amount1, err = getAmountsForLiquidityDelta(params.SqrtRatioX96, params.SqrtRatioAX96, params.SqrtRatioBX96, params.Liquidity, false)
	if err != nil {
		return nil, nil, fmt.Errorf("amounts for liquidity: %w", err)
	}
	if belowMin(amount0, params.Amount0Min) || belowMin(amount1, params.Amount1Min) {
		pm.log.WithField("owner", params.Owner.Hex()).Warnf("remove liquidity slippage, amount0: %s amount1: %s", amount0.Dec(), amount1.Dec())
		return nil, nil, PRICE_SLIPPAGE
	}

	position.Liquidity = next
	if position.IsEmpty() {
		pm.Clear(key)
	}
	pm.log.WithField("owner", params.Owner.Hex()).Debugf("remove liquidity: %s, amount0: %s amount1: %s", params.Liquidity.Dec(), amount0.Dec(), amount1.Dec())
	return amount0, amount1, nil
}

// PositionValue values an owner's position in human token units.
func (pm *PositionManager) PositionValue(owner common.Address, sqrtRatioAX96, sqrtRatioBX96, sqrtRatioX96 *uint256.Int) (*RangeAmount, error) {
	position := pm.GetPositionReadonly(owner, sqrtRatioAX96, sqrtRatioBX96)
	return CalcRangeAmount(sqrtRatioX96, position.SqrtRatioLowerX96, position.SqrtRatioUpperX96, position.Liquidity, pm.Config.Decimals0, pm.Config.Decimals1)
}
