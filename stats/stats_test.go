package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wtlabs/stocksim/sim"
)

// trade fabricates a realized trade with the given profit, holding period and
// exit tag. Fee fields are filled so TotalFees has something to sum.
func trade(profit float64, days int, tag string) sim.RealizedTrade {
	return sim.RealizedTrade{
		BuyLeg: sim.Order{
			Side: sim.Buy,
			Fees: sim.Fees{Commission: 1.0, TransferFee: 0.1},
		},
		SellLeg: sim.Order{
			Side:    sim.Sell,
			RuleTag: tag,
			Fees:    sim.Fees{Commission: 1.0, TransferFee: 0.1, StampDuty: 4.0},
		},
		Profit:      profit,
		HoldingDays: days,
	}
}

func TestAggregateEmpty(t *testing.T) {
	s := Aggregate(nil)

	assert.Zero(t, s.Count)
	assert.Zero(t, s.TotalProfit)
	assert.True(t, math.IsNaN(s.AverageProfit))
	assert.True(t, math.IsNaN(s.AverageWin))
	assert.True(t, math.IsNaN(s.AverageLoss))
	assert.Zero(t, s.MaxWinStreak)
	assert.Zero(t, s.MaxLossStreak)
	assert.Empty(t, s.ByReason)
}

func TestAggregateStreaks(t *testing.T) {
	trades := []sim.RealizedTrade{
		trade(1, 1, "a"), trade(1, 1, "a"),
		trade(-1, 1, "a"), trade(-1, 1, "a"), trade(-1, 1, "a"),
		trade(1, 1, "a"),
	}
	s := Aggregate(trades)

	assert.Equal(t, 2, s.MaxWinStreak)
	assert.Equal(t, 3, s.MaxLossStreak)
}

func TestAggregateFinalStreakFlushed(t *testing.T) {
	trades := []sim.RealizedTrade{
		trade(-1, 1, "a"),
		trade(1, 1, "a"), trade(1, 1, "a"), trade(1, 1, "a"),
	}
	s := Aggregate(trades)

	assert.Equal(t, 3, s.MaxWinStreak)
	assert.Equal(t, 1, s.MaxLossStreak)
}

func TestAggregateTotalsAndAverages(t *testing.T) {
	trades := []sim.RealizedTrade{
		trade(100, 2, "mmb1"),
		trade(-40, 5, "stoploss"),
		trade(60, 4, "mmb2"),
		trade(-20, 3, "stoploss"),
	}
	s := Aggregate(trades)

	assert.Equal(t, 4, s.Count)
	assert.InDelta(t, 100.0, s.TotalProfit, 1e-9)
	assert.Equal(t, 2, s.WinCount)
	assert.Equal(t, 2, s.LossCount)
	assert.InDelta(t, 160.0, s.TotalWin, 1e-9)
	assert.InDelta(t, -60.0, s.TotalLoss, 1e-9)
	assert.InDelta(t, 100.0, s.MaxProfit, 1e-9)
	assert.InDelta(t, -40.0, s.MaxLoss, 1e-9)

	assert.InDelta(t, 25.0, s.AverageProfit, 1e-9)
	assert.InDelta(t, 80.0, s.AverageWin, 1e-9)
	// Positive magnitude.
	assert.InDelta(t, 30.0, s.AverageLoss, 1e-9)

	// 6.2 of fees per trade as fabricated.
	assert.InDelta(t, 4*6.2, s.TotalFees, 1e-9)
}

func TestAggregateHoldingDays(t *testing.T) {
	trades := []sim.RealizedTrade{
		trade(100, 2, "mmb1"),
		trade(50, 6, "mmb1"),
		trade(-40, 5, "stoploss"),
		trade(-10, 1, "stoploss"),
	}
	s := Aggregate(trades)

	assert.Equal(t, 6, s.MaxWinHoldingDays)
	assert.Equal(t, 5, s.MaxLossHoldingDays)
	assert.InDelta(t, 4.0, s.AverageWinHoldingDays, 1e-9)
	assert.InDelta(t, 3.0, s.AverageLossHoldingDays, 1e-9)
}

func TestAggregateZeroProfitCountsAsWin(t *testing.T) {
	s := Aggregate([]sim.RealizedTrade{trade(0, 1, "a")})

	assert.Equal(t, 1, s.WinCount)
	assert.Zero(t, s.LossCount)
	assert.True(t, math.IsNaN(s.AverageLoss))
	assert.Zero(t, s.MaxProfit)
}

func TestAggregateByReason(t *testing.T) {
	trades := []sim.RealizedTrade{
		trade(100, 2, "mmb1"),
		trade(-40, 5, "stoploss"),
		trade(-20, 3, "stoploss"),
		trade(10, 2, "mmb2"),
	}
	s := Aggregate(trades)

	require.Len(t, s.ByReason, 3)
	assert.Equal(t, ReasonStats{Times: 2, Wins: 0, Losses: 2}, s.ByReason["stoploss"])
	assert.Equal(t, ReasonStats{Times: 1, Wins: 1}, s.ByReason["mmb1"])
	assert.Equal(t, ReasonStats{Times: 1, Wins: 1}, s.ByReason["mmb2"])
}
