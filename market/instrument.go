package market

import (
	"fmt"
	"strings"
)

// Exchange venues. The venue drives the fee schedule: Shanghai charges a
// transfer fee, Shenzhen does not.
const (
	ExchangeSSE  = "SSE"
	ExchangeSZSE = "SZSE"
)

// Instrument is immutable reference data for one listed stock.
type Instrument struct {
	Symbol   string // ts-code, e.g. "600489.SH"
	Name     string
	Exchange string // "SSE" or "SZSE"
}

// ParseSymbol builds an Instrument from a ts-code, deriving the venue from
// the suffix: ".SH" is Shanghai, ".SZ" is Shenzhen.
func ParseSymbol(symbol string) (Instrument, error) {
	sym := strings.TrimSpace(symbol)
	switch {
	case strings.HasSuffix(sym, ".SH"):
		return Instrument{Symbol: sym, Exchange: ExchangeSSE}, nil
	case strings.HasSuffix(sym, ".SZ"):
		return Instrument{Symbol: sym, Exchange: ExchangeSZSE}, nil
	default:
		return Instrument{}, fmt.Errorf("symbol %q: unknown exchange suffix (want .SH or .SZ)", symbol)
	}
}
