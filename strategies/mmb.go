package strategies

import (
	"fmt"
	"time"

	"github.com/wtlabs/stocksim/market"
	"github.com/wtlabs/stocksim/sim"
)

// MMBConfig parameterizes the momentum-breakout rule.
type MMBConfig struct {
	// N is the number of prior days averaged into the amplitude.
	N int `json:"n" yaml:"n"`
	// P is the breakout fraction added to the open for the buy target.
	P float64 `json:"p" yaml:"p"`
	// L is the breakdown fraction subtracted from the open for the sell
	// target.
	L float64 `json:"l" yaml:"l"`
	// Type selects the amplitude: "hl" (high-low) or "hc" (high-close).
	Type string `json:"type" yaml:"type"`
	// LockProfit sells at the open whenever the open beats the entry price.
	LockProfit bool `json:"lock_profit" yaml:"lock_profit"`
	// HoldOnBuySignal suppresses the sell side on days the buy condition
	// also fires.
	HoldOnBuySignal bool `json:"hold_on_buy_signal" yaml:"hold_on_buy_signal"`
}

// MMBDefaults mirrors the stock parameter set.
func MMBDefaults() *MMBConfig {
	return &MMBConfig{
		N:               1,
		P:               0.5,
		L:               0.5,
		Type:            "hl",
		LockProfit:      true,
		HoldOnBuySignal: true,
	}
}

func (c *MMBConfig) Validate() error {
	if c.N < 1 {
		return fmt.Errorf("mmb: n must be >= 1, got %d", c.N)
	}
	if c.P <= 0 || c.L <= 0 {
		return fmt.Errorf("mmb: p and l must be positive (p=%g l=%g)", c.P, c.L)
	}
	if c.Type != "hl" && c.Type != "hc" {
		return fmt.Errorf("mmb: type must be hl or hc, got %q", c.Type)
	}
	return nil
}

// MMB is the momentum-breakout rule: average the previous N days' amplitude,
// buy when today's range crosses open + amplitude*P, sell on the open-price
// profit lock or when the range reaches open - amplitude*L.
type MMB struct {
	*MMBConfig
}

func NewMMB(cfg *MMBConfig) (*MMB, error) {
	if cfg == nil {
		cfg = MMBDefaults()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &MMB{MMBConfig: cfg}, nil
}

func (s *MMB) Name() string { return "mmb" }

// momentum averages the amplitude of the N days preceding idx. Days before
// the start of history contribute nothing, matching a shorter warm-up.
func (s *MMB) momentum(idx int, bars []market.Bar) float64 {
	var sum float64
	for i := 0; i < s.N; i++ {
		j := idx - i - 1
		if j < 0 {
			continue
		}
		if s.Type == "hc" {
			sum += bars[j].High - bars[j].Close
		} else {
			sum += bars[j].High - bars[j].Low
		}
	}
	return sum / float64(s.N)
}

func (s *MMB) CheckBuy(cash float64, instr market.Instrument, date time.Time, idx int, bars []market.Bar) *sim.Order {
	if cash <= 0 {
		return nil
	}

	bar := bars[idx]
	mom := s.momentum(idx, bars)
	target := bar.Open + mom*s.P

	if bar.High < target || bar.Open > target {
		return nil
	}

	memo := fmt.Sprintf("momentum breakout buy %.2f (=%.2f+%.2f*%.0f%%)",
		target, bar.Open, mom, s.P*100)
	return sim.NewBuyOrder(cash, instr, date, idx, target, TagMMB, memo)
}

func (s *MMB) CheckSell(pos *sim.Position, date time.Time, idx int, bars []market.Bar) *sim.Order {
	if pos == nil || pos.Quantity <= 0 {
		return nil
	}

	// When today also satisfies the buy condition, hold instead of selling.
	// The probe cash only has to afford one lot.
	if s.HoldOnBuySignal &&
		s.CheckBuy(probeCash, pos.Instrument, date, idx, bars) != nil {
		return nil
	}

	bar := bars[idx]

	if s.LockProfit && bar.Open > pos.EntryPrice {
		memo := fmt.Sprintf("profit-lock sell at open %.2f (> entry %.2f)",
			bar.Open, pos.EntryPrice)
		return sim.NewSellOrder(pos.Instrument, date, idx, pos.Quantity, bar.Open, TagLockProfit, memo)
	}

	mom := s.momentum(idx, bars)
	target := bar.Open - mom*s.L

	if target <= bar.Open && target >= bar.Low {
		memo := fmt.Sprintf("momentum breakout sell %.2f (=%.2f-%.2f*%.0f%%)",
			target, bar.Open, mom, s.L*100)
		return sim.NewSellOrder(pos.Instrument, date, idx, pos.Quantity, target, TagBreakout, memo)
	}
	return nil
}

const probeCash = 100000
