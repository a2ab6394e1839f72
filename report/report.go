// Package report formats run results for humans. The engine only publishes
// events and data; everything printable lives here.
package report

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/wtlabs/stocksim/sim"
	"github.com/wtlabs/stocksim/stats"
)

// Reason labels for the known rule tags.
var reasonLabels = map[string]string{
	"mmb":       "momentum breakout buy",
	"mmb1":      "profit-lock sell",
	"mmb2":      "momentum breakout sell",
	"stoploss":  "stop-loss sell",
	"benchmark": "benchmark",
}

// FormatMoney renders an amount with thousands separators and two decimals.
func FormatMoney(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}

	neg := v < 0
	s := fmt.Sprintf("%.2f", math.Abs(v))
	dot := strings.Index(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range s[:dot] {
		if i > 0 && (dot-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteString(s[dot:])
	return b.String()
}

func formatRatio(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%.2f", v)
}

func formatPct(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", v*100)
}

// Format renders the end-of-run report: account snapshot plus the aggregate
// statistics.
func Format(symbol string, acct *sim.Account, st stats.Stats) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  initial %s  final %s\n",
		symbol, FormatMoney(acct.InitialBalance), FormatMoney(acct.Balance))
	if acct.Position != nil {
		fmt.Fprintf(&b, "open position: %d shares @ %s (bought %s)\n",
			acct.Position.Quantity,
			FormatMoney(acct.Position.EntryPrice),
			acct.Position.BuyLeg.Date.Format("20060102"))
	}

	fmt.Fprintf(&b, "trades %d  wins %d  losses %d  win rate %s  profit factor %s\n",
		st.Count, st.WinCount, st.LossCount, formatPct(st.WinRate()), formatRatio(st.ProfitFactor()))
	fmt.Fprintf(&b, "profit %s  fees %s  avg %s\n",
		FormatMoney(st.TotalProfit), FormatMoney(st.TotalFees), FormatMoney(st.AverageProfit))
	fmt.Fprintf(&b, "wins:   total %s  avg %s  max %s  streak %d  hold max %dd avg %sd\n",
		FormatMoney(st.TotalWin), FormatMoney(st.AverageWin), FormatMoney(st.MaxProfit),
		st.MaxWinStreak, st.MaxWinHoldingDays, formatDays(st.AverageWinHoldingDays))
	fmt.Fprintf(&b, "losses: total %s  avg %s  max %s  streak %d  hold max %dd avg %sd\n",
		FormatMoney(st.TotalLoss), FormatMoney(st.AverageLoss), FormatMoney(st.MaxLoss),
		st.MaxLossStreak, st.MaxLossHoldingDays, formatDays(st.AverageLossHoldingDays))

	if len(st.ByReason) > 0 {
		b.WriteString("exit reasons:\n")
		tags := make([]string, 0, len(st.ByReason))
		for tag := range st.ByReason {
			tags = append(tags, tag)
		}
		sort.Strings(tags)
		for _, tag := range tags {
			r := st.ByReason[tag]
			label := reasonLabels[tag]
			if label == "" {
				label = tag
			}
			fmt.Fprintf(&b, "  %-24s %3d times  %3d win  %3d loss\n", label, r.Times, r.Wins, r.Losses)
		}
	}

	return b.String()
}

// FormatLeg renders one settled leg for the transaction listing.
func FormatLeg(leg sim.Order) string {
	return fmt.Sprintf("%s %-4s %6d @ %8.2f  gross %s  fees %s  net %s  [%s] %s",
		leg.Date.Format("20060102"), leg.Side, leg.Quantity, leg.Price,
		FormatMoney(leg.GrossAmount), FormatMoney(leg.Total()), FormatMoney(leg.NetCashFlow),
		leg.RuleTag, leg.Memo)
}

// One decimal for display, per convention for holding-day means.
func formatDays(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%.1f", v)
}
