package journal

// ListLegs returns all settled legs in settlement order (ULIDs are
// time-sortable, so ordering by id is ordering by settlement).
func (j *SQLiteJournal) ListLegs(symbol string) ([]LegRecord, error) {
	rows, err := j.db.Query(`
		SELECT id, symbol, side, trade_date, day_index, quantity, price,
		       gross_amount, commission, transfer_fee, stamp_duty, net_cash_flow,
		       rule_tag, memo, balance
		FROM legs WHERE symbol = ? ORDER BY id`, symbol)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var legs []LegRecord
	for rows.Next() {
		var l LegRecord
		err := rows.Scan(&l.ID, &l.Symbol, &l.Side, &l.TradeDate, &l.DayIndex,
			&l.Quantity, &l.Price, &l.GrossAmount, &l.Commission, &l.TransferFee,
			&l.StampDuty, &l.NetCashFlow, &l.RuleTag, &l.Memo, &l.Balance)
		if err != nil {
			return nil, err
		}
		legs = append(legs, l)
	}
	return legs, rows.Err()
}

// ListTrades returns all realized trades in settlement order.
func (j *SQLiteJournal) ListTrades(symbol string) ([]TradeRecord, error) {
	rows, err := j.db.Query(`
		SELECT id, symbol, buy_date, sell_date, buy_price, sell_price,
		       quantity, profit, holding_days, reason
		FROM trades WHERE symbol = ? ORDER BY id`, symbol)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trades []TradeRecord
	for rows.Next() {
		var t TradeRecord
		err := rows.Scan(&t.ID, &t.Symbol, &t.BuyDate, &t.SellDate, &t.BuyPrice,
			&t.SellPrice, &t.Quantity, &t.Profit, &t.HoldingDays, &t.Reason)
		if err != nil {
			return nil, err
		}
		trades = append(trades, t)
	}
	return trades, rows.Err()
}
