package strategies

import (
	"fmt"
	"time"

	"github.com/wtlabs/stocksim/market"
	"github.com/wtlabs/stocksim/sim"
)

// StoplossConfig parameterizes the percentage stop.
type StoplossConfig struct {
	// S is the maximum tolerated loss fraction below the entry price.
	S float64 `json:"s" yaml:"s"`
}

func StoplossDefaults() *StoplossConfig {
	return &StoplossConfig{S: 0.1}
}

func (c *StoplossConfig) Validate() error {
	if c.S <= 0 || c.S >= 1 {
		return fmt.Errorf("stoploss: s must be in (0,1), got %g", c.S)
	}
	return nil
}

// Stoploss sells the whole position at entry*(1-S) once the day's low reaches
// it. It is a pure defensive exit: the buy side never fires.
type Stoploss struct {
	*StoplossConfig
}

func NewStoploss(cfg *StoplossConfig) (*Stoploss, error) {
	if cfg == nil {
		cfg = StoplossDefaults()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Stoploss{StoplossConfig: cfg}, nil
}

func (s *Stoploss) Name() string { return "stoploss" }

func (s *Stoploss) CheckBuy(cash float64, instr market.Instrument, date time.Time, idx int, bars []market.Bar) *sim.Order {
	return nil
}

func (s *Stoploss) CheckSell(pos *sim.Position, date time.Time, idx int, bars []market.Bar) *sim.Order {
	if pos == nil || pos.Quantity <= 0 {
		return nil
	}

	lossPrice := pos.EntryPrice * (1 - s.S)
	if bars[idx].Low > lossPrice {
		return nil
	}

	memo := fmt.Sprintf("stoploss %.2f (=%.2f*(1-%.0f%%))", lossPrice, pos.EntryPrice, s.S*100)
	return sim.NewSellOrder(pos.Instrument, date, idx, pos.Quantity, lossPrice, TagStoploss, memo)
}
