// Package journal persists the transaction log of a run: every settled leg
// and every realized trade.
package journal

import (
	"time"

	"github.com/wtlabs/stocksim/internal/id"
	"github.com/wtlabs/stocksim/sim"
)

// LegRecord is one settled leg as stored.
type LegRecord struct {
	ID          string
	Symbol      string
	Side        string
	TradeDate   time.Time
	DayIndex    int
	Quantity    int
	Price       float64
	GrossAmount float64
	Commission  float64
	TransferFee float64
	StampDuty   float64
	NetCashFlow float64
	RuleTag     string
	Memo        string
	Balance     float64 // account balance after settlement
}

// TradeRecord is one realized buy/sell pairing as stored.
type TradeRecord struct {
	ID          string
	Symbol      string
	BuyDate     time.Time
	SellDate    time.Time
	BuyPrice    float64
	SellPrice   float64
	Quantity    int
	Profit      float64
	HoldingDays int
	Reason      string // sell leg's rule tag
}

type Journal interface {
	RecordLeg(LegRecord) error
	RecordTrade(TradeRecord) error
	Close() error
}

// NewLegRecord converts a settlement event into a storable record.
func NewLegRecord(symbol string, ev sim.Event) LegRecord {
	leg := ev.Leg
	return LegRecord{
		ID:          id.New(),
		Symbol:      symbol,
		Side:        leg.Side.String(),
		TradeDate:   leg.Date,
		DayIndex:    leg.DayIndex,
		Quantity:    leg.Quantity,
		Price:       leg.Price,
		GrossAmount: leg.GrossAmount,
		Commission:  leg.Commission,
		TransferFee: leg.TransferFee,
		StampDuty:   leg.StampDuty,
		NetCashFlow: leg.NetCashFlow,
		RuleTag:     leg.RuleTag,
		Memo:        leg.Memo,
		Balance:     ev.Balance,
	}
}

// NewTradeRecord converts a realized trade into a storable record.
func NewTradeRecord(symbol string, tr sim.RealizedTrade) TradeRecord {
	return TradeRecord{
		ID:          id.New(),
		Symbol:      symbol,
		BuyDate:     tr.BuyLeg.Date,
		SellDate:    tr.SellLeg.Date,
		BuyPrice:    tr.BuyLeg.Price,
		SellPrice:   tr.SellLeg.Price,
		Quantity:    tr.SellLeg.Quantity,
		Profit:      tr.Profit,
		HoldingDays: tr.HoldingDays,
		Reason:      tr.SellLeg.RuleTag,
	}
}

// Sink adapts a Journal to the engine's event sink. Settlements are
// persisted as legs (plus a trade record for sells); rejections are not
// stored. The first write error is kept and reported via Err.
type Sink struct {
	journal Journal
	symbol  string
	err     error
}

func NewSink(j Journal, symbol string) *Sink {
	return &Sink{journal: j, symbol: symbol}
}

func (s *Sink) OnEvent(ev sim.Event) {
	if ev.Kind != sim.EventSettled {
		return
	}
	if err := s.journal.RecordLeg(NewLegRecord(s.symbol, ev)); err != nil && s.err == nil {
		s.err = err
	}
	if ev.Trade != nil {
		if err := s.journal.RecordTrade(NewTradeRecord(s.symbol, *ev.Trade)); err != nil && s.err == nil {
			s.err = err
		}
	}
}

// Err returns the first write error seen, if any.
func (s *Sink) Err() error { return s.err }
