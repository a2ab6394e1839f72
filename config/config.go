package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/wtlabs/stocksim/market"
	"github.com/wtlabs/stocksim/strategies"
)

// Config is the complete simulation configuration. It is loaded once, passed
// by value into the run wiring, and never mutated afterwards.
type Config struct {
	Account    AccountConfig    `json:"account" yaml:"account"`
	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`
	Rules      RulesConfig      `json:"rules" yaml:"rules"`

	MMB       strategies.MMBConfig       `json:"mmb" yaml:"mmb"`
	Stoploss  strategies.StoplossConfig  `json:"stoploss" yaml:"stoploss"`
	Benchmark strategies.BenchmarkConfig `json:"benchmark" yaml:"benchmark"`

	Journal JournalConfig `json:"journal" yaml:"journal"`
}

// AccountConfig seeds the capital ledger.
type AccountConfig struct {
	// InitialBalance is the starting cash, or the fixed stake amount when
	// FixedStake is set.
	InitialBalance float64 `json:"initial_balance" yaml:"initial_balance"`
	FixedStake     bool    `json:"fixed_stake" yaml:"fixed_stake"`
}

// SimulationConfig selects the instrument and data window.
type SimulationConfig struct {
	Symbol           string `json:"symbol" yaml:"symbol"`
	StartDate        string `json:"start_date" yaml:"start_date"` // "20190101" or "2019-01-01"
	DataFile         string `json:"data_file" yaml:"data_file"`
	AdjustPrices     bool   `json:"adjust_prices" yaml:"adjust_prices"`
	ShowTransactions bool   `json:"show_transactions" yaml:"show_transactions"`
}

// ParseStartDate parses the configured start date.
func (s SimulationConfig) ParseStartDate() (time.Time, error) {
	if s.StartDate == "" {
		return time.Time{}, nil
	}
	for _, layout := range []string{"20060102", "2006-01-02"} {
		if t, err := time.Parse(layout, s.StartDate); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("bad start_date %q", s.StartDate)
}

// RulesConfig names the rules wired into the engine.
type RulesConfig struct {
	Buy      string `json:"buy" yaml:"buy"`
	Sell     string `json:"sell" yaml:"sell"`
	Stoploss bool   `json:"stoploss" yaml:"stoploss"`
}

// JournalConfig selects transaction-log persistence.
type JournalConfig struct {
	Type       string `json:"type" yaml:"type"` // "none", "csv" or "sqlite"
	DBPath     string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
	LegsFile   string `json:"legs_file,omitempty" yaml:"legs_file,omitempty"`
	TradesFile string `json:"trades_file,omitempty" yaml:"trades_file,omitempty"`
}

// LoadFromFile loads a YAML or JSON configuration file and validates it.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jsonErr := json.Unmarshal(data, cfg); jsonErr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for a runnable simulation.
func (c *Config) Validate() error {
	if c.Account.InitialBalance <= 0 {
		return fmt.Errorf("account.initial_balance must be positive")
	}
	if c.Simulation.Symbol == "" {
		return fmt.Errorf("simulation.symbol is required")
	}
	if _, err := market.ParseSymbol(c.Simulation.Symbol); err != nil {
		return err
	}
	if _, err := c.Simulation.ParseStartDate(); err != nil {
		return err
	}
	if c.Rules.Buy == "" || c.Rules.Sell == "" {
		return fmt.Errorf("rules.buy and rules.sell are required")
	}
	if err := c.MMB.Validate(); err != nil {
		return err
	}
	if err := c.Stoploss.Validate(); err != nil {
		return err
	}
	if err := c.Benchmark.Validate(); err != nil {
		return err
	}

	switch c.Journal.Type {
	case "", "none":
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal.db_path required for sqlite journal")
		}
	case "csv":
		if c.Journal.LegsFile == "" || c.Journal.TradesFile == "" {
			return fmt.Errorf("journal.legs_file and journal.trades_file required for csv journal")
		}
	default:
		return fmt.Errorf("journal.type must be none, csv or sqlite")
	}
	return nil
}

// Default mirrors the stock parameter set: momentum breakout with a 10%
// stop, fixed one-million stake from 2019-01-01.
func Default() *Config {
	return &Config{
		Account: AccountConfig{
			InitialBalance: 1000000,
			FixedStake:     true,
		},
		Simulation: SimulationConfig{
			Symbol:    "600489.SH",
			StartDate: "20190101",
		},
		Rules: RulesConfig{
			Buy:      "mmb",
			Sell:     "mmb",
			Stoploss: true,
		},
		MMB:       *strategies.MMBDefaults(),
		Stoploss:  *strategies.StoplossDefaults(),
		Benchmark: *strategies.BenchmarkDefaults(),
		Journal:   JournalConfig{Type: "none"},
	}
}
