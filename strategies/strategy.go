// Package strategies implements the pluggable buy/sell rules consumed by the
// sim engine. Each rule validates its own parameters and tags every order it
// produces with the sub-condition that fired, so the statistics layer can
// break results down per exit reason.
package strategies

import (
	"fmt"
	"strings"

	"github.com/wtlabs/stocksim/sim"
)

// Rule tags. The sell-side tags key the per-reason statistics breakdown.
const (
	TagMMB        = "mmb"  // momentum breakout buy
	TagLockProfit = "mmb1" // open-price profit-lock sell
	TagBreakout   = "mmb2" // momentum breakout sell
	TagStoploss   = "stoploss"
	TagBenchmark  = "benchmark"
)

// RuleByName builds a strategy rule from its configured name.
func RuleByName(name string, mmb *MMBConfig, bench *BenchmarkConfig) (sim.Rule, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "mmb":
		return NewMMB(mmb)
	case "benchmark":
		return NewBenchmark(bench)
	default:
		return nil, fmt.Errorf("unknown rule %q (supported: mmb, benchmark)", name)
	}
}
