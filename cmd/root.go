package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/sheetwise/internal/config"
	"github.com/abhisek/sheetwise/internal/logging"
	"github.com/abhisek/sheetwise/internal/questionbank"
	"github.com/abhisek/sheetwise/internal/session"
)

var rootCmd = &cobra.Command{
	Use:   "sheetwise",
	Short: "Excel skills screening interviews in the terminal",
	Long: "Sheetwise runs a short technical interview on Excel skills, scores each free-text\n" +
		"answer and produces a hiring recommendation report.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to config file (default $XDG_CONFIG_HOME/sheetwise/config.yaml)")
	pf.String("env-file", ".env", "Dotenv file loaded before reading SHEETWISE_* variables")
	pf.String("bank", "", "Question bank file (YAML or JSON); defaults to the built-in bank")
	pf.Duration("delay", 0, "Simulated evaluation latency per answer (default 2s)")
	pf.Duration("timeout", 0, "Hard deadline per evaluation; 0 disables it")
	pf.String("log-file", "", "Log file path (default $XDG_STATE_HOME/sheetwise/sheetwise.log)")
	pf.String("log-level", "", "Log level: debug, info, warn, error")
	pf.String("metrics-file", "", "Write Prometheus metrics to this textfile on exit")

	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(versionCmd)
}

// env bundles what every command needs after flags and config are resolved.
type env struct {
	cfg      *config.Config
	log      *zap.Logger
	closeLog func() error
	bank     *questionbank.Bank
}

func (e *env) Close() error {
	if e.closeLog == nil {
		return nil
	}
	return e.closeLog()
}

// evaluator builds the configured evaluator. delay overrides the configured
// latency when non-negative.
func (e *env) evaluator(delay time.Duration) session.Evaluator {
	if delay < 0 {
		delay = e.cfg.Evaluation.Delay
	}
	return session.WithDeadline(session.HeuristicEvaluator{Delay: delay}, e.cfg.Evaluation.Timeout)
}

// setup loads config, opens the log file and resolves the question bank.
// stderr, when non-nil, also receives warnings.
func setup(cmd *cobra.Command, stderr io.Writer) (*env, error) {
	configFile, _ := cmd.Flags().GetString("config")
	envFile, _ := cmd.Flags().GetString("env-file")

	cfg, err := config.Load(config.Options{
		ConfigFile: configFile,
		EnvFile:    envFile,
		Flags:      cmd.Flags(),
	})
	if err != nil {
		return nil, err
	}

	log, closeLog, err := logging.New(logging.Options{
		File:   cfg.Log.File,
		Level:  cfg.Log.Level,
		Stderr: stderr,
	})
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	e := &env{cfg: cfg, log: log, closeLog: closeLog}

	e.bank, err = loadBank(cfg.Bank.File)
	if err != nil {
		log.Error("load question bank", zap.String("file", cfg.Bank.File), zap.Error(err))
		_ = e.Close()
		return nil, err
	}
	log.Debug("question bank ready",
		zap.String("version", e.bank.Version()),
		zap.Int("questions", e.bank.Len()),
	)
	return e, nil
}

func loadBank(path string) (*questionbank.Bank, error) {
	if path == "" {
		return questionbank.Default(), nil
	}
	return questionbank.LoadFile(path)
}
