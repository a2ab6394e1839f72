package journal

const Schema = `
CREATE TABLE IF NOT EXISTS legs (
	id TEXT PRIMARY KEY,
	symbol TEXT NOT NULL,
	side TEXT NOT NULL,
	trade_date DATETIME NOT NULL,
	day_index INTEGER NOT NULL,
	quantity INTEGER NOT NULL,
	price REAL NOT NULL,
	gross_amount REAL NOT NULL,
	commission REAL NOT NULL,
	transfer_fee REAL NOT NULL,
	stamp_duty REAL NOT NULL,
	net_cash_flow REAL NOT NULL,
	rule_tag TEXT NOT NULL,
	memo TEXT NOT NULL,
	balance REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS trades (
	id TEXT PRIMARY KEY,
	symbol TEXT NOT NULL,
	buy_date DATETIME NOT NULL,
	sell_date DATETIME NOT NULL,
	buy_price REAL NOT NULL,
	sell_price REAL NOT NULL,
	quantity INTEGER NOT NULL,
	profit REAL NOT NULL,
	holding_days INTEGER NOT NULL,
	reason TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_legs_date ON legs(trade_date);
CREATE INDEX IF NOT EXISTS idx_trades_sell_date ON trades(sell_date);
`
