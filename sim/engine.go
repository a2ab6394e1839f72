package sim

import (
	"fmt"
	"time"

	"github.com/wtlabs/stocksim/market"
)

// Rule is the decision contract a strategy must satisfy. CheckBuy may return
// a buy candidate sized against the supplied cash; CheckSell may return a
// sell candidate for the open position. Either returns nil to pass. Rules
// receive read-only views; all account mutation flows through the ledger.
type Rule interface {
	Name() string
	CheckBuy(cash float64, instr market.Instrument, date time.Time, dayIndex int, bars []market.Bar) *Order
	CheckSell(pos *Position, date time.Time, dayIndex int, bars []market.Bar) *Order
}

// Config is the immutable per-run engine configuration.
type Config struct {
	InitialBalance float64
	// FixedStake sizes every buy with the initial balance instead of the
	// running balance, and disables the insufficient-balance rejection.
	FixedStake bool
	// Start skips leading bars before this date.
	Start time.Time
}

// Engine replays daily bars in order and drives rule evaluation and
// settlement. Single-threaded; one Account per run.
type Engine struct {
	cfg      Config
	instr    market.Instrument
	bars     []market.Bar
	buy      Rule
	sell     Rule
	stoploss Rule // optional, strict priority over sell
	acct     *Account
}

// NewEngine wires a run. stoploss and sink may be nil.
func NewEngine(instr market.Instrument, bars []market.Bar, cfg Config, buy, sell, stoploss Rule, sink EventSink) *Engine {
	return &Engine{
		cfg:      cfg,
		instr:    instr,
		bars:     bars,
		buy:      buy,
		sell:     sell,
		stoploss: stoploss,
		acct:     NewAccount(instr, cfg.InitialBalance, !cfg.FixedStake, sink),
	}
}

// Account returns the ledger. Read it after Run for reporting.
func (e *Engine) Account() *Account { return e.acct }

// Run executes the day loop. Within a day the order is fixed: stop-loss sell
// first, then the strategy's sell, then, only if flat, the strategy's buy.
// Only ErrInconsistentState aborts; rejected or absent orders skip silently.
func (e *Engine) Run() (*Account, error) {
	if e.buy == nil || e.sell == nil {
		return nil, fmt.Errorf("engine needs both a buy rule and a sell rule")
	}
	if err := market.CheckOrdered(e.bars); err != nil {
		return nil, err
	}

	for i := market.StartIndex(e.bars, e.cfg.Start); i < len(e.bars); i++ {
		date := e.bars[i].Date

		if e.acct.Position != nil && e.stoploss != nil {
			ord := e.stoploss.CheckSell(e.acct.Position, date, i, e.bars)
			if _, err := e.acct.Settle(ord); err != nil {
				return e.acct, fmt.Errorf("stoploss settlement: %w", err)
			}
		}

		if e.acct.Position != nil {
			ord := e.sell.CheckSell(e.acct.Position, date, i, e.bars)
			if _, err := e.acct.Settle(ord); err != nil {
				return e.acct, fmt.Errorf("sell settlement: %w", err)
			}
		}

		if e.acct.Position == nil {
			cash := e.acct.Balance
			if e.cfg.FixedStake {
				cash = e.cfg.InitialBalance
			}
			ord := e.buy.CheckBuy(cash, e.instr, date, i, e.bars)
			if _, err := e.acct.Settle(ord); err != nil {
				return e.acct, fmt.Errorf("buy settlement: %w", err)
			}
		}
	}

	return e.acct, nil
}
