package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wtlabs/stocksim/config"
	"github.com/wtlabs/stocksim/journal"
	"github.com/wtlabs/stocksim/market"
	"github.com/wtlabs/stocksim/report"
	"github.com/wtlabs/stocksim/sim"
	"github.com/wtlabs/stocksim/stats"
	"github.com/wtlabs/stocksim/strategies"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Replay a strategy over historical daily bars",
	Long: `Replay a buy/sell strategy over one instrument's daily bars and report
the aggregate performance.

Example:
  stocksim run -f examples/configs/mmb.yaml --data bars/600489.csv.xz`,
	RunE: runSimulation,
}

var (
	runConfigPath string
	runDataFile   string
	runSymbol     string
	runShowTrans  bool
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runConfigPath, "config", "f", "", "path to config file (YAML or JSON)")
	runCmd.Flags().StringVar(&runDataFile, "data", "", "daily bars CSV file (overrides config)")
	runCmd.Flags().StringVar(&runSymbol, "symbol", "", "instrument ts-code (overrides config)")
	runCmd.Flags().BoolVar(&runShowTrans, "showtrans", false, "print the transaction listing")
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if runConfigPath != "" {
		var err error
		cfg, err = config.LoadFromFile(runConfigPath)
		if err != nil {
			return err
		}
	}
	if runDataFile != "" {
		cfg.Simulation.DataFile = runDataFile
	}
	if runSymbol != "" {
		cfg.Simulation.Symbol = runSymbol
	}
	if runShowTrans {
		cfg.Simulation.ShowTransactions = true
	}
	if cfg.Simulation.DataFile == "" {
		return fmt.Errorf("no data file: set simulation.data_file or --data")
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	instr, err := market.ParseSymbol(cfg.Simulation.Symbol)
	if err != nil {
		return err
	}

	bars, err := market.LoadBars(cfg.Simulation.DataFile)
	if err != nil {
		return err
	}
	if cfg.Simulation.AdjustPrices {
		market.AdjustPrev(bars)
	}
	logger.Info("loaded bars",
		zap.String("symbol", instr.Symbol),
		zap.Int("bars", len(bars)))

	buyRule, err := strategies.RuleByName(cfg.Rules.Buy, &cfg.MMB, &cfg.Benchmark)
	if err != nil {
		return err
	}
	sellRule, err := strategies.RuleByName(cfg.Rules.Sell, &cfg.MMB, &cfg.Benchmark)
	if err != nil {
		return err
	}

	var stoploss sim.Rule
	if cfg.Rules.Stoploss {
		stoploss, err = strategies.NewStoploss(&cfg.Stoploss)
		if err != nil {
			return err
		}
	}

	sinks := sim.MultiSink{report.NewZapSink(logger)}

	var jsink *journal.Sink
	switch cfg.Journal.Type {
	case "sqlite":
		j, err := journal.NewSQLite(cfg.Journal.DBPath)
		if err != nil {
			return fmt.Errorf("open journal: %w", err)
		}
		defer j.Close()
		jsink = journal.NewSink(j, instr.Symbol)
	case "csv":
		j, err := journal.NewCSV(cfg.Journal.LegsFile, cfg.Journal.TradesFile)
		if err != nil {
			return fmt.Errorf("open journal: %w", err)
		}
		defer j.Close()
		jsink = journal.NewSink(j, instr.Symbol)
	}
	if jsink != nil {
		sinks = append(sinks, jsink)
	}

	start, err := cfg.Simulation.ParseStartDate()
	if err != nil {
		return err
	}

	engine := sim.NewEngine(instr, bars, sim.Config{
		InitialBalance: cfg.Account.InitialBalance,
		FixedStake:     cfg.Account.FixedStake,
		Start:          start,
	}, buyRule, sellRule, stoploss, sinks)

	acct, err := engine.Run()
	if err != nil {
		return fmt.Errorf("run aborted: %w", err)
	}
	if jsink != nil {
		if err := jsink.Err(); err != nil {
			return fmt.Errorf("journal write: %w", err)
		}
	}

	if cfg.Simulation.ShowTransactions {
		for _, leg := range acct.Legs {
			fmt.Println(report.FormatLeg(leg))
		}
		fmt.Println()
	}

	fmt.Print(report.Format(instr.Symbol, acct, stats.Aggregate(acct.Trades)))
	return nil
}
