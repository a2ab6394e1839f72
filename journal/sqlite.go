package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteJournal struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteJournal{db: db}, nil
}

func (j *SQLiteJournal) RecordLeg(l LegRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO legs
		(id, symbol, side, trade_date, day_index, quantity, price,
		 gross_amount, commission, transfer_fee, stamp_duty, net_cash_flow,
		 rule_tag, memo, balance)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.ID, l.Symbol, l.Side, l.TradeDate, l.DayIndex, l.Quantity, l.Price,
		l.GrossAmount, l.Commission, l.TransferFee, l.StampDuty, l.NetCashFlow,
		l.RuleTag, l.Memo, l.Balance,
	)
	return err
}

func (j *SQLiteJournal) RecordTrade(t TradeRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO trades
		(id, symbol, buy_date, sell_date, buy_price, sell_price, quantity,
		 profit, holding_days, reason)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Symbol, t.BuyDate, t.SellDate, t.BuyPrice, t.SellPrice,
		t.Quantity, t.Profit, t.HoldingDays, t.Reason,
	)
	return err
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
