package sim

import (
	"time"

	"github.com/wtlabs/stocksim/market"
)

// Side: buy or sell.
type Side int8

const (
	Buy  Side = +1
	Sell Side = -1
)

func (s Side) String() string {
	if s == Buy {
		return "buy"
	}
	return "sell"
}

// Order is one fully priced candidate leg. It is ephemeral until the ledger
// settles it; after settlement the same value is the settled leg.
type Order struct {
	Side     Side
	Date     time.Time
	DayIndex int
	Quantity int
	Price    float64
	RuleTag  string
	Memo     string

	Fees
}

// NewBuyOrder sizes a buy against the available cash: the largest multiple of
// LotSize affordable at price, shrunk one lot at a time until the total cost
// including fees fits. Returns nil when even one lot is unaffordable.
func NewBuyOrder(cash float64, instr market.Instrument, date time.Time, dayIndex int, price float64, tag, memo string) *Order {
	if price <= 0 || cash <= 0 {
		return nil
	}

	qty := int(cash/price/LotSize) * LotSize
	if qty < LotSize {
		return nil
	}

	fees := CalculateFees(true, instr, qty, price)
	for fees.NetCashFlow+cash < 0 {
		qty -= LotSize
		if qty < LotSize {
			return nil
		}
		fees = CalculateFees(true, instr, qty, price)
	}

	return &Order{
		Side:     Buy,
		Date:     date,
		DayIndex: dayIndex,
		Quantity: qty,
		Price:    price,
		RuleTag:  tag,
		Memo:     memo,
		Fees:     fees,
	}
}

// NewSellOrder prices a sell of quantity shares. Selling needs no
// affordability check; nil is returned only for a non-positive quantity.
func NewSellOrder(instr market.Instrument, date time.Time, dayIndex int, quantity int, price float64, tag, memo string) *Order {
	if quantity <= 0 {
		return nil
	}

	return &Order{
		Side:     Sell,
		Date:     date,
		DayIndex: dayIndex,
		Quantity: quantity,
		Price:    price,
		RuleTag:  tag,
		Memo:     memo,
		Fees:     CalculateFees(false, instr, quantity, price),
	}
}
