package strategies

import (
	"fmt"
	"time"

	"github.com/wtlabs/stocksim/market"
	"github.com/wtlabs/stocksim/sim"
)

// BenchmarkConfig parameterizes the baseline rule.
type BenchmarkConfig struct {
	// SellPrice is the exit price of every held day: "close" or "open".
	SellPrice string `json:"sell_price" yaml:"sell_price"`
}

func BenchmarkDefaults() *BenchmarkConfig {
	return &BenchmarkConfig{SellPrice: "close"}
}

func (c *BenchmarkConfig) Validate() error {
	if c.SellPrice != "close" && c.SellPrice != "open" {
		return fmt.Errorf("benchmark: sell_price must be close or open, got %q", c.SellPrice)
	}
	return nil
}

// Benchmark is the do-nothing-clever baseline: buy every flat day at the
// open, sell every held day at the configured price. Comparing a strategy
// against it shows whether the signals add anything beyond fees.
type Benchmark struct {
	*BenchmarkConfig
}

func NewBenchmark(cfg *BenchmarkConfig) (*Benchmark, error) {
	if cfg == nil {
		cfg = BenchmarkDefaults()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Benchmark{BenchmarkConfig: cfg}, nil
}

func (s *Benchmark) Name() string { return "benchmark" }

func (s *Benchmark) CheckBuy(cash float64, instr market.Instrument, date time.Time, idx int, bars []market.Bar) *sim.Order {
	if cash <= 0 {
		return nil
	}
	open := bars[idx].Open
	memo := fmt.Sprintf("benchmark buy at open %.2f", open)
	return sim.NewBuyOrder(cash, instr, date, idx, open, TagBenchmark, memo)
}

func (s *Benchmark) CheckSell(pos *sim.Position, date time.Time, idx int, bars []market.Bar) *sim.Order {
	if pos == nil || pos.Quantity <= 0 {
		return nil
	}

	price := bars[idx].Close
	if s.SellPrice == "open" {
		price = bars[idx].Open
	}
	memo := fmt.Sprintf("benchmark sell at %s %.2f", s.SellPrice, price)
	return sim.NewSellOrder(pos.Instrument, date, idx, pos.Quantity, price, TagBenchmark, memo)
}
