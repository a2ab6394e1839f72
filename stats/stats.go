// Package stats computes aggregate performance metrics from the realized
// trades of a finished run. It depends only on the trade sequence, not on
// ledger internals.
package stats

import (
	"math"

	"github.com/wtlabs/stocksim/sim"
)

// ReasonStats is the per-exit-reason breakdown, keyed by the sell leg's rule
// tag.
type ReasonStats struct {
	Times  int
	Wins   int
	Losses int
}

// Stats is the full performance record. A trade with profit >= 0 counts as a
// win. Averages over an empty class are NaN, never a division by zero.
type Stats struct {
	Count       int
	TotalProfit float64
	TotalFees   float64

	WinCount  int
	LossCount int
	TotalWin  float64
	TotalLoss float64 // negative
	MaxProfit float64
	MaxLoss   float64 // negative

	AverageProfit float64
	AverageWin    float64
	AverageLoss   float64 // positive magnitude

	MaxWinStreak  int
	MaxLossStreak int

	MaxWinHoldingDays      int
	MaxLossHoldingDays     int
	AverageWinHoldingDays  float64
	AverageLossHoldingDays float64

	ByReason map[string]ReasonStats
}

// Aggregate scans the trade sequence once and finalizes the derived metrics.
func Aggregate(trades []sim.RealizedTrade) Stats {
	s := Stats{
		Count:    len(trades),
		ByReason: make(map[string]ReasonStats),
	}

	var (
		winDays, lossDays int
		streakLen         int
		streakWin         bool
		haveStreak        bool
	)

	flush := func() {
		if !haveStreak {
			return
		}
		if streakWin {
			if streakLen > s.MaxWinStreak {
				s.MaxWinStreak = streakLen
			}
		} else if streakLen > s.MaxLossStreak {
			s.MaxLossStreak = streakLen
		}
	}

	for _, tr := range trades {
		win := tr.Profit >= 0

		s.TotalProfit += tr.Profit
		s.TotalFees += tr.BuyLeg.Total() + tr.SellLeg.Total()

		if win {
			s.WinCount++
			s.TotalWin += tr.Profit
			if tr.Profit > s.MaxProfit {
				s.MaxProfit = tr.Profit
			}
			winDays += tr.HoldingDays
			if tr.HoldingDays > s.MaxWinHoldingDays {
				s.MaxWinHoldingDays = tr.HoldingDays
			}
		} else {
			s.LossCount++
			s.TotalLoss += tr.Profit
			if tr.Profit < s.MaxLoss {
				s.MaxLoss = tr.Profit
			}
			lossDays += tr.HoldingDays
			if tr.HoldingDays > s.MaxLossHoldingDays {
				s.MaxLossHoldingDays = tr.HoldingDays
			}
		}

		if haveStreak && win == streakWin {
			streakLen++
		} else {
			flush()
			streakWin = win
			streakLen = 1
			haveStreak = true
		}

		r := s.ByReason[tr.SellLeg.RuleTag]
		r.Times++
		if win {
			r.Wins++
		} else {
			r.Losses++
		}
		s.ByReason[tr.SellLeg.RuleTag] = r
	}
	flush()

	s.AverageProfit = ratio(s.TotalProfit, s.Count)
	s.AverageWin = ratio(s.TotalWin, s.WinCount)
	s.AverageLoss = ratio(-s.TotalLoss, s.LossCount)
	s.AverageWinHoldingDays = ratio(float64(winDays), s.WinCount)
	s.AverageLossHoldingDays = ratio(float64(lossDays), s.LossCount)

	return s
}

// WinRate returns the winning share of all trades, NaN for an empty run.
func (s Stats) WinRate() float64 {
	return ratio(float64(s.WinCount), s.Count)
}

// ProfitFactor returns gross wins over gross losses, NaN when there are no
// losses to divide by.
func (s Stats) ProfitFactor() float64 {
	if s.TotalLoss == 0 {
		return math.NaN()
	}
	return s.TotalWin / -s.TotalLoss
}

func ratio(sum float64, n int) float64 {
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}
