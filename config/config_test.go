package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadFromFileYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.yaml")
	data := `
account:
  initial_balance: 500000
  fixed_stake: false
simulation:
  symbol: "000725.SZ"
  start_date: "2020-06-01"
  data_file: "bars.csv"
rules:
  buy: mmb
  sell: mmb
  stoploss: true
mmb:
  n: 3
  p: 0.4
  l: 0.6
  type: hc
stoploss:
  s: 0.08
journal:
  type: sqlite
  db_path: journal.db
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 500000.0, cfg.Account.InitialBalance)
	assert.False(t, cfg.Account.FixedStake)
	assert.Equal(t, "000725.SZ", cfg.Simulation.Symbol)
	assert.Equal(t, 3, cfg.MMB.N)
	assert.Equal(t, "hc", cfg.MMB.Type)
	assert.Equal(t, 0.08, cfg.Stoploss.S)
	assert.Equal(t, "sqlite", cfg.Journal.Type)

	// Untouched sections keep defaults.
	assert.Equal(t, "close", cfg.Benchmark.SellPrice)

	start, err := cfg.Simulation.ParseStartDate()
	require.NoError(t, err)
	assert.Equal(t, 2020, start.Year())
}

func TestLoadFromFileJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.json")
	data := `{"account":{"initial_balance":250000},"simulation":{"symbol":"600276.SH"}}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 250000.0, cfg.Account.InitialBalance)
	assert.Equal(t, "600276.SH", cfg.Simulation.Symbol)
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero balance", func(c *Config) { c.Account.InitialBalance = 0 }},
		{"no symbol", func(c *Config) { c.Simulation.Symbol = "" }},
		{"bad symbol", func(c *Config) { c.Simulation.Symbol = "AAPL" }},
		{"bad start date", func(c *Config) { c.Simulation.StartDate = "Jan 1" }},
		{"no buy rule", func(c *Config) { c.Rules.Buy = "" }},
		{"bad mmb n", func(c *Config) { c.MMB.N = 0 }},
		{"bad stoploss", func(c *Config) { c.Stoploss.S = 2 }},
		{"sqlite without path", func(c *Config) { c.Journal = JournalConfig{Type: "sqlite"} }},
		{"csv without files", func(c *Config) { c.Journal = JournalConfig{Type: "csv"} }},
		{"unknown journal", func(c *Config) { c.Journal.Type = "parquet" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
