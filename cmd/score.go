package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/sheetwise/internal/answersheet"
	"github.com/abhisek/sheetwise/internal/metrics"
	"github.com/abhisek/sheetwise/internal/report"
	"github.com/abhisek/sheetwise/internal/session"
)

var scoreCmd = &cobra.Command{
	Use:   "score <answers.yaml>",
	Short: "Score a file of answers and print the report",
	Long: "Score reads a YAML or JSON answer sheet (candidate details plus one answer per\n" +
		"question), scores every answer without the simulated delay and prints the report.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		formatFlag, _ := cmd.Flags().GetString("format")
		format, err := report.ParseFormat(formatFlag)
		if err != nil {
			return err
		}
		output, _ := cmd.Flags().GetString("output")

		e, err := setup(cmd, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer e.Close()

		sheet, err := answersheet.LoadFile(args[0])
		if err != nil {
			return err
		}

		rec := metrics.NewRecorder()
		r, err := sheet.Score(cmd.Context(), e.bank,
			session.WithEvaluator(e.evaluator(0)),
			session.WithObserver(session.Observers{session.NewLogObserver(e.log), rec}),
		)
		if err != nil {
			e.log.Warn("score answer sheet", zap.String("file", args[0]), zap.Error(err))
			return err
		}
		rec.ReportGenerated(r)
		e.log.Info("report generated",
			zap.String("session_id", r.SessionID),
			zap.Int("overall_score", r.OverallScore),
			zap.String("recommendation", string(r.Recommendation)),
		)

		if err := writeReport(cmd.OutOrStdout(), output, r, format); err != nil {
			return err
		}
		if err := rec.WriteTextfile(e.cfg.Metrics.File); err != nil {
			e.log.Warn("write metrics textfile", zap.String("file", e.cfg.Metrics.File), zap.Error(err))
		}
		return nil
	},
}

// writeReport writes r to path, or to stdout when path is empty or "-".
func writeReport(stdout io.Writer, path string, r *report.Report, f report.Format) error {
	if path == "" || path == "-" {
		return report.Write(stdout, r, f)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := report.Write(file, r, f); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func init() {
	names := make([]string, 0, len(report.Formats()))
	for _, f := range report.Formats() {
		names = append(names, string(f))
	}
	scoreCmd.Flags().StringP("format", "f", string(report.FormatText), "Output format: "+strings.Join(names, ", "))
	scoreCmd.Flags().StringP("output", "o", "", "Write the report to this file instead of stdout")
}
