package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var d0 = time.Date(2019, 1, 2, 0, 0, 0, 0, time.UTC)

func TestNewBuyOrderRoundsDownToLot(t *testing.T) {
	// 9999 buys at most 900 shares at 10.0 once fees are in.
	ord := NewBuyOrder(9999, sseStock(), d0, 0, 10.0, "mmb", "")
	require.NotNil(t, ord)

	assert.Equal(t, 900, ord.Quantity)
	assert.Zero(t, ord.Quantity%LotSize)
	assert.True(t, ord.NetCashFlow+9999 >= 0, "order must be affordable after fees")
}

func TestNewBuyOrderShrinksForFees(t *testing.T) {
	// 10000 affords 1000 shares gross but not the fees on top; the factory
	// must fall back one lot.
	ord := NewBuyOrder(10000, sseStock(), d0, 0, 10.0, "mmb", "")
	require.NotNil(t, ord)
	assert.Equal(t, 900, ord.Quantity)
}

func TestNewBuyOrderInsufficientCash(t *testing.T) {
	assert.Nil(t, NewBuyOrder(999, sseStock(), d0, 0, 10.0, "mmb", ""))

	// Exactly one lot gross, but fees push it over.
	assert.Nil(t, NewBuyOrder(1000, sseStock(), d0, 0, 10.0, "mmb", ""))

	assert.Nil(t, NewBuyOrder(0, sseStock(), d0, 0, 10.0, "mmb", ""))
	assert.Nil(t, NewBuyOrder(10000, sseStock(), d0, 0, 0, "mmb", ""))
}

func TestNewBuyOrderPricesLeg(t *testing.T) {
	ord := NewBuyOrder(100000, szseStock(), d0, 3, 12.5, "mmb", "breakout")
	require.NotNil(t, ord)

	assert.Equal(t, Buy, ord.Side)
	assert.Equal(t, 3, ord.DayIndex)
	assert.Equal(t, "mmb", ord.RuleTag)
	assert.InDelta(t, float64(ord.Quantity)*12.5, ord.GrossAmount, 1e-9)
	assert.Negative(t, ord.NetCashFlow)
}

func TestNewSellOrder(t *testing.T) {
	ord := NewSellOrder(sseStock(), d0, 5, 900, 11.0, "stoploss", "")
	require.NotNil(t, ord)

	assert.Equal(t, Sell, ord.Side)
	assert.Equal(t, 900, ord.Quantity)
	assert.Positive(t, ord.NetCashFlow)
	assert.InDelta(t, 9900.0, ord.GrossAmount, 1e-9)

	assert.Nil(t, NewSellOrder(sseStock(), d0, 5, 0, 11.0, "stoploss", ""))
}
