package journal

import (
	"encoding/csv"
	"os"
	"strconv"
)

type CSVJournal struct {
	legs   *csv.Writer
	trades *csv.Writer
	lf, tf *os.File
}

func NewCSV(legsPath, tradesPath string) (*CSVJournal, error) {
	lf, err := os.Create(legsPath)
	if err != nil {
		return nil, err
	}
	tf, err := os.Create(tradesPath)
	if err != nil {
		lf.Close()
		return nil, err
	}

	lw := csv.NewWriter(lf)
	tw := csv.NewWriter(tf)

	if err := lw.Write([]string{"id", "symbol", "side", "trade_date", "day_index",
		"quantity", "price", "gross_amount", "commission", "transfer_fee",
		"stamp_duty", "net_cash_flow", "rule_tag", "memo", "balance"}); err != nil {
		return nil, err
	}
	if err := tw.Write([]string{"id", "symbol", "buy_date", "sell_date",
		"buy_price", "sell_price", "quantity", "profit", "holding_days", "reason"}); err != nil {
		return nil, err
	}

	lw.Flush()
	if err := lw.Error(); err != nil {
		return nil, err
	}
	tw.Flush()
	if err := tw.Error(); err != nil {
		return nil, err
	}

	return &CSVJournal{legs: lw, trades: tw, lf: lf, tf: tf}, nil
}

func (j *CSVJournal) RecordLeg(l LegRecord) error {
	j.legs.Write([]string{
		l.ID, l.Symbol, l.Side,
		l.TradeDate.Format("20060102"),
		strconv.Itoa(l.DayIndex),
		strconv.Itoa(l.Quantity),
		fmtF(l.Price), fmtF(l.GrossAmount), fmtF(l.Commission),
		fmtF(l.TransferFee), fmtF(l.StampDuty), fmtF(l.NetCashFlow),
		l.RuleTag, l.Memo, fmtF(l.Balance),
	})
	j.legs.Flush()
	return j.legs.Error()
}

func (j *CSVJournal) RecordTrade(t TradeRecord) error {
	j.trades.Write([]string{
		t.ID, t.Symbol,
		t.BuyDate.Format("20060102"),
		t.SellDate.Format("20060102"),
		fmtF(t.BuyPrice), fmtF(t.SellPrice),
		strconv.Itoa(t.Quantity),
		fmtF(t.Profit),
		strconv.Itoa(t.HoldingDays),
		t.Reason,
	})
	j.trades.Flush()
	return j.trades.Error()
}

func (j *CSVJournal) Close() error {
	j.legs.Flush()
	j.trades.Flush()
	if err := j.lf.Close(); err != nil {
		j.tf.Close()
		return err
	}
	return j.tf.Close()
}

func fmtF(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
