// Package metrics records interview activity in a private Prometheus
// registry. There is no HTTP endpoint; the registry is written to a
// node-exporter textfile when the process exits.
package metrics

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/abhisek/sheetwise/internal/questionbank"
	"github.com/abhisek/sheetwise/internal/report"
	"github.com/abhisek/sheetwise/internal/session"
)

// Submission outcomes.
const (
	OutcomeScored   = "scored"
	OutcomeEmpty    = "empty"
	OutcomeInFlight = "in_flight"
	OutcomeComplete = "complete"
	OutcomeFailed   = "failed"
	OutcomeRejected = "rejected"
)

// Recorder implements session.Observer and counts generated reports.
type Recorder struct {
	registry *prometheus.Registry

	submissions *prometheus.CounterVec
	scores      *prometheus.HistogramVec
	evalSeconds prometheus.Histogram
	reports     *prometheus.CounterVec
}

var _ session.Observer = (*Recorder)(nil)

// NewRecorder creates a Recorder with its own registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		submissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sheetwise_submissions_total",
				Help: "Answer submissions by outcome",
			},
			[]string{"outcome"},
		),
		scores: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sheetwise_response_score",
				Help:    "Composite score of evaluated answers",
				Buckets: prometheus.LinearBuckets(10, 10, 10),
			},
			[]string{"category"},
		),
		evalSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "sheetwise_evaluation_seconds",
			Help:    "Time spent evaluating one answer",
			Buckets: []float64{0.01, 0.1, 0.5, 1, 2, 5},
		}),
		reports: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sheetwise_reports_total",
				Help: "Generated reports by recommendation",
			},
			[]string{"recommendation"},
		),
	}
	r.registry.MustRegister(r.submissions, r.scores, r.evalSeconds, r.reports)
	return r
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

func (r *Recorder) SubmissionRejected(_ string, err error) {
	r.submissions.WithLabelValues(rejectOutcome(err)).Inc()
}

func (r *Recorder) EvaluationStarted(string, questionbank.Question) {}

func (r *Recorder) EvaluationFinished(_ string, resp session.ScoredResponse, elapsed time.Duration) {
	r.submissions.WithLabelValues(OutcomeScored).Inc()
	r.scores.WithLabelValues(resp.Category).Observe(float64(resp.Evaluation.Score))
	r.evalSeconds.Observe(elapsed.Seconds())
}

func (r *Recorder) EvaluationFailed(string, questionbank.Question, error) {
	r.submissions.WithLabelValues(OutcomeFailed).Inc()
}

// ReportGenerated counts a finished report.
func (r *Recorder) ReportGenerated(rep *report.Report) {
	r.reports.WithLabelValues(string(rep.Recommendation)).Inc()
}

// WriteTextfile writes the registry in the Prometheus text format. An empty
// path is a no-op.
func (r *Recorder) WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create metrics dir: %w", err)
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	return nil
}

func rejectOutcome(err error) string {
	switch {
	case errors.Is(err, session.ErrEmptyInput):
		return OutcomeEmpty
	case errors.Is(err, session.ErrInFlight):
		return OutcomeInFlight
	case errors.Is(err, session.ErrComplete):
		return OutcomeComplete
	default:
		return OutcomeRejected
	}
}
