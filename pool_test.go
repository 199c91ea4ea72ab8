package liquidity_amounts

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	usdc = common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48")
	weth = common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2")
)

func TestNewPoolConfig(t *testing.T) {
	config, err := NewPoolConfig(usdc, weth, 6, 18, FeeAmountLow)
	require.NoError(t, err)
	_, err = uuid.Parse(config.Id)
	assert.NoError(t, err)
	assert.Equal(t, usdc, config.Token0)
	assert.Equal(t, weth, config.Token1)

	other, err := NewPoolConfig(usdc, weth, 6, 18, FeeAmountLow)
	require.NoError(t, err)
	assert.NotEqual(t, config.Id, other.Id)

	_, err = NewPoolConfig(weth, usdc, 18, 6, FeeAmountLow)
	assert.ErrorIs(t, err, INVALID_TOKENS, "tokens out of order")

	_, err = NewPoolConfig(usdc, usdc, 6, 6, FeeAmountLow)
	assert.ErrorIs(t, err, INVALID_TOKENS, "same token")
}

func TestPoolConfig_Price(t *testing.T) {
	config, err := NewPoolConfig(usdc, weth, 6, 18, FeeAmountLow)
	require.NoError(t, err)

	price := config.Price(encodePriceSqrt(t, 500000000, 1))
	assert.True(t, price.Round(10).Equal(decimal.RequireFromString("0.0005")), "got %s", price)
}
