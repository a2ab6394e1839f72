package journal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleLeg(id string) LegRecord {
	return LegRecord{
		ID:          id,
		Symbol:      "600489.SH",
		Side:        "buy",
		TradeDate:   time.Date(2019, 1, 2, 0, 0, 0, 0, time.UTC),
		DayIndex:    0,
		Quantity:    900,
		Price:       10,
		GrossAmount: 9000,
		Commission:  2.25,
		TransferFee: 0.18,
		NetCashFlow: -9002.43,
		RuleTag:     "mmb",
		Memo:        "breakout",
		Balance:     996.57,
	}
}

func sampleTrade(id string) TradeRecord {
	return TradeRecord{
		ID:          id,
		Symbol:      "600489.SH",
		BuyDate:     time.Date(2019, 1, 2, 0, 0, 0, 0, time.UTC),
		SellDate:    time.Date(2019, 1, 4, 0, 0, 0, 0, time.UTC),
		BuyPrice:    10,
		SellPrice:   10.5,
		Quantity:    900,
		Profit:      432.1,
		HoldingDays: 3,
		Reason:      "mmb1",
	}
}

func TestSQLiteRoundTrip(t *testing.T) {
	j, err := NewSQLite(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	defer j.Close()

	require.NoError(t, j.RecordLeg(sampleLeg("01A")))
	require.NoError(t, j.RecordLeg(sampleLeg("01B")))
	require.NoError(t, j.RecordTrade(sampleTrade("01C")))

	legs, err := j.ListLegs("600489.SH")
	require.NoError(t, err)
	require.Len(t, legs, 2)
	assert.Equal(t, "01A", legs[0].ID)
	assert.Equal(t, 900, legs[0].Quantity)
	assert.InDelta(t, -9002.43, legs[0].NetCashFlow, 1e-9)

	trades, err := j.ListTrades("600489.SH")
	require.NoError(t, err)
	require.Len(t, trades, 1)
	assert.Equal(t, "mmb1", trades[0].Reason)
	assert.Equal(t, 3, trades[0].HoldingDays)

	// Other symbols see nothing.
	none, err := j.ListTrades("000725.SZ")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCSVJournalWrites(t *testing.T) {
	dir := t.TempDir()
	legsPath := filepath.Join(dir, "legs.csv")
	tradesPath := filepath.Join(dir, "trades.csv")

	j, err := NewCSV(legsPath, tradesPath)
	require.NoError(t, err)

	require.NoError(t, j.RecordLeg(sampleLeg("01A")))
	require.NoError(t, j.RecordTrade(sampleTrade("01B")))
	require.NoError(t, j.Close())

	assert.FileExists(t, legsPath)
	assert.FileExists(t, tradesPath)
}
