package sim

import (
	"errors"
	"fmt"

	"github.com/wtlabs/stocksim/market"
)

// ErrInconsistentState means a rule violated the settlement contract: a buy
// arrived while a position was open, or a sell while flat. It aborts the run.
var ErrInconsistentState = errors.New("inconsistent settlement state")

// Position is the single open holding. At most one exists at a time.
type Position struct {
	Instrument market.Instrument
	Quantity   int
	EntryPrice float64
	BuyLeg     Order
}

// RealizedTrade pairs a buy leg with the sell leg that closed it. Profit is
// the sum of both signed net cash flows, so it is net of all costs.
type RealizedTrade struct {
	BuyLeg      Order
	SellLeg     Order
	Profit      float64
	HoldingDays int
}

// Account is the capital ledger: cash balance, the open position if any, and
// the realized-trade history. All mutation flows through Settle.
type Account struct {
	Instrument     market.Instrument
	InitialBalance float64
	Balance        float64
	Position       *Position
	Trades         []RealizedTrade
	Legs           []Order // every settled leg, in settlement order

	guardBalance bool
	sink         EventSink
}

// NewAccount creates the ledger for one run. With guardBalance set
// (accumulating-account mode), settlements that would drive the balance
// negative are rejected; fixed-stake sizing bypasses the guard.
func NewAccount(instr market.Instrument, initialBalance float64, guardBalance bool, sink EventSink) *Account {
	if sink == nil {
		sink = NopSink{}
	}
	return &Account{
		Instrument:     instr,
		InitialBalance: initialBalance,
		Balance:        initialBalance,
		guardBalance:   guardBalance,
		sink:           sink,
	}
}

// Settle applies a candidate order to the account. A nil order is a no-op.
// Returns whether the order settled; ErrInconsistentState is fatal and the
// account must not be used afterwards.
func (a *Account) Settle(ord *Order) (bool, error) {
	if ord == nil {
		return false, nil
	}

	switch ord.Side {
	case Buy:
		if a.Position != nil {
			return false, fmt.Errorf("buy on %s while holding %d shares: %w",
				ord.Date.Format("20060102"), a.Position.Quantity, ErrInconsistentState)
		}
	case Sell:
		if a.Position == nil {
			return false, fmt.Errorf("sell on %s with no open position: %w",
				ord.Date.Format("20060102"), ErrInconsistentState)
		}
	default:
		return false, fmt.Errorf("order with side %d: %w", ord.Side, ErrInconsistentState)
	}

	if a.guardBalance && a.Balance+ord.NetCashFlow < 0 {
		a.sink.OnEvent(Event{
			Kind:    EventRejected,
			Leg:     *ord,
			Balance: a.Balance,
			Reason: fmt.Sprintf("balance %.2f insufficient for %s of %d at %.2f (net %.2f)",
				a.Balance, ord.Side, ord.Quantity, ord.Price, ord.NetCashFlow),
		})
		return false, nil
	}

	a.Balance += ord.NetCashFlow
	a.Legs = append(a.Legs, *ord)

	ev := Event{Kind: EventSettled, Leg: *ord, Balance: a.Balance}

	if ord.Side == Buy {
		a.Position = &Position{
			Instrument: a.Instrument,
			Quantity:   ord.Quantity,
			EntryPrice: ord.Price,
			BuyLeg:     *ord,
		}
	} else {
		trade := RealizedTrade{
			BuyLeg:      a.Position.BuyLeg,
			SellLeg:     *ord,
			Profit:      a.Position.BuyLeg.NetCashFlow + ord.NetCashFlow,
			HoldingDays: ord.DayIndex - a.Position.BuyLeg.DayIndex + 1,
		}
		a.Trades = append(a.Trades, trade)
		a.Position = nil
		ev.Trade = &trade
	}

	a.sink.OnEvent(ev)
	return true, nil
}
