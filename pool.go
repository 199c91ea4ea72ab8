package liquidity_amounts

import (
	"bytes"
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

var INVALID_TOKENS = errors.New("INVALID_TOKENS")

type FeeAmount int

const (
	FeeAmountLowest FeeAmount = 100
	FeeAmountLow    FeeAmount = 500
	FeeAmountMedium FeeAmount = 3000
	FeeAmountHigh   FeeAmount = 10000
)

// pool config
type PoolConfig struct {
	Id        string
	Token0    common.Address
	Token1    common.Address
	Decimals0 uint8
	Decimals1 uint8
	Fee       FeeAmount
}

// NewPoolConfig describes the token pair a PositionManager books positions
// for. Token0 must sort before Token1.
func NewPoolConfig(
	Token0 common.Address,
	Token1 common.Address,
	Decimals0 uint8,
	Decimals1 uint8,
	Fee FeeAmount,
) (*PoolConfig, error) {
	if bytes.Compare(Token0.Bytes(), Token1.Bytes()) >= 0 {
		return nil, INVALID_TOKENS
	}
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}
	return &PoolConfig{
		Id:        id.String(),
		Token0:    Token0,
		Token1:    Token1,
		Decimals0: Decimals0,
		Decimals1: Decimals1,
		Fee:       Fee,
	}, nil
}

// Price returns the human price of token0 in token1 at sqrtRatioX96.
func (c *PoolConfig) Price(sqrtRatioX96 *uint256.Int) decimal.Decimal {
	return SqrtRatioX96ToPrice(sqrtRatioX96, c.Decimals0, c.Decimals1)
}
