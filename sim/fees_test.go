package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wtlabs/stocksim/market"
)

func sseStock() market.Instrument {
	return market.Instrument{Symbol: "600489.SH", Exchange: market.ExchangeSSE}
}

func szseStock() market.Instrument {
	return market.Instrument{Symbol: "000725.SZ", Exchange: market.ExchangeSZSE}
}

func TestCalculateFeesBuySSE(t *testing.T) {
	f := CalculateFees(true, sseStock(), 1000, 10.0)

	assert.InDelta(t, 10000.0, f.GrossAmount, 1e-9)
	assert.InDelta(t, 2.5, f.Commission, 1e-9)
	assert.InDelta(t, 0.2, f.TransferFee, 1e-9)
	assert.Zero(t, f.StampDuty)
	assert.InDelta(t, -10002.7, f.NetCashFlow, 1e-9)
}

func TestCalculateFeesSellSZSE(t *testing.T) {
	f := CalculateFees(false, szseStock(), 1000, 10.0)

	assert.InDelta(t, 2.5, f.Commission, 1e-9)
	assert.Zero(t, f.TransferFee)
	assert.InDelta(t, 10.0, f.StampDuty, 1e-9)
	assert.InDelta(t, 9987.5, f.NetCashFlow, 1e-9)
}

func TestCalculateFeesSellSSE(t *testing.T) {
	f := CalculateFees(false, sseStock(), 200, 25.0)

	require.InDelta(t, 5000.0, f.GrossAmount, 1e-9)
	assert.InDelta(t, 1.25, f.Commission, 1e-9)
	assert.InDelta(t, 0.1, f.TransferFee, 1e-9)
	assert.InDelta(t, 5.0, f.StampDuty, 1e-9)
	assert.InDelta(t, 5000-1.25-0.1-5.0, f.NetCashFlow, 1e-9)
	assert.InDelta(t, 6.35, f.Total(), 1e-9)
}
