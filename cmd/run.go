package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/sheetwise/internal/app"
	"github.com/abhisek/sheetwise/internal/metrics"
)

// runApp resolves config and dependencies, then launches the TUI.
func runApp(cmd *cobra.Command) error {
	e, err := setup(cmd, nil)
	if err != nil {
		return err
	}
	defer e.Close()

	exportDir, _ := cmd.Flags().GetString("export-dir")
	skipSplash, _ := cmd.Flags().GetBool("no-splash")

	rec := metrics.NewRecorder()
	e.log.Info("starting",
		zap.String("version", version),
		zap.String("bank_version", e.bank.Version()),
		zap.Duration("delay", e.cfg.Evaluation.Delay),
		zap.Duration("timeout", e.cfg.Evaluation.Timeout),
	)

	runErr := app.Run(app.Deps{
		Bank:       e.bank,
		Evaluator:  e.evaluator(-1),
		Recorder:   rec,
		Logger:     e.log,
		ExportDir:  exportDir,
		SkipSplash: skipSplash,
	})

	if err := rec.WriteTextfile(e.cfg.Metrics.File); err != nil {
		e.log.Warn("write metrics textfile", zap.String("file", e.cfg.Metrics.File), zap.Error(err))
		fmt.Fprintln(os.Stderr, "Could not write metrics:", err)
	}
	return runErr
}

func init() {
	rootCmd.Flags().String("export-dir", ".", "Directory where exported reports are written")
	rootCmd.Flags().Bool("no-splash", false, "Skip the splash screen")
}
