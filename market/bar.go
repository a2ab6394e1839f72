package market

import (
	"fmt"
	"math"
	"time"
)

// Bar represents one daily OHLC bar.
type Bar struct {
	Date  time.Time
	Open  float64
	High  float64
	Low   float64
	Close float64

	// PrevAdjFactor is the forward-adjustment factor for this bar, 0 if the
	// feed does not carry one.
	PrevAdjFactor float64
}

// Validate checks the basic OHLC sanity of a single bar.
func (b Bar) Validate() error {
	if b.Date.IsZero() {
		return fmt.Errorf("bar has no trade date")
	}
	if b.Low > b.Open || b.Low > b.Close || b.High < b.Open || b.High < b.Close {
		return fmt.Errorf("bar %s: OHLC out of range (o=%g h=%g l=%g c=%g)",
			b.Date.Format("20060102"), b.Open, b.High, b.Low, b.Close)
	}
	return nil
}

// CheckOrdered verifies the bars are strictly ascending by trade date.
func CheckOrdered(bars []Bar) error {
	for i := 1; i < len(bars); i++ {
		if !bars[i].Date.After(bars[i-1].Date) {
			return fmt.Errorf("bars out of order at index %d: %s !> %s",
				i, bars[i].Date.Format("20060102"), bars[i-1].Date.Format("20060102"))
		}
	}
	return nil
}

// StartIndex returns the index of the first bar on or after start.
// Returns len(bars) if every bar predates start.
func StartIndex(bars []Bar, start time.Time) int {
	for i, b := range bars {
		if !b.Date.Before(start) {
			return i
		}
	}
	return len(bars)
}

// AdjustPrev applies forward price adjustment in place: every OHLC field of a
// bar carrying a PrevAdjFactor is multiplied by it and rounded to three
// decimals, so the whole history is comparable to today's prices.
func AdjustPrev(bars []Bar) {
	for i := range bars {
		f := bars[i].PrevAdjFactor
		if f == 0 {
			continue
		}
		bars[i].Open = round3(bars[i].Open * f)
		bars[i].High = round3(bars[i].High * f)
		bars[i].Low = round3(bars[i].Low * f)
		bars[i].Close = round3(bars[i].Close * f)
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
