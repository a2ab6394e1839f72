package sim

import "github.com/wtlabs/stocksim/market"

// LotSize is the minimum tradable quantity increment (one board lot).
const LotSize = 100

// A-share fee schedule.
const (
	commissionRate  = 0.00025 // both sides
	transferFeeRate = 0.00002 // Shanghai only
	stampDutyRate   = 0.001   // seller only
)

// Fees is the full cost breakdown of one priced leg. NetCashFlow is signed:
// negative for a buy (cash out, costs included), positive for a sell (cash in,
// net of costs). No rounding is applied here; display code rounds.
type Fees struct {
	GrossAmount float64
	Commission  float64
	TransferFee float64
	StampDuty   float64
	NetCashFlow float64
}

// CalculateFees prices a trade of quantity shares at price on the given
// instrument's venue.
func CalculateFees(isBuy bool, instr market.Instrument, quantity int, price float64) Fees {
	gross := float64(quantity) * price

	f := Fees{
		GrossAmount: gross,
		Commission:  gross * commissionRate,
	}
	if instr.Exchange == market.ExchangeSSE {
		f.TransferFee = gross * transferFeeRate
	}
	if !isBuy {
		f.StampDuty = gross * stampDutyRate
	}

	if isBuy {
		f.NetCashFlow = -(gross + f.Commission + f.TransferFee + f.StampDuty)
	} else {
		f.NetCashFlow = gross - f.Commission - f.TransferFee - f.StampDuty
	}
	return f
}

// Total returns the sum of the three cost components of the leg.
func (f Fees) Total() float64 {
	return f.Commission + f.TransferFee + f.StampDuty
}
