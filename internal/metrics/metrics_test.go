package metrics

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sheetwise/internal/candidate"
	"github.com/abhisek/sheetwise/internal/questionbank"
	"github.com/abhisek/sheetwise/internal/session"
)

func runInterview(t *testing.T, rec *Recorder) *session.Session {
	t.Helper()
	s := session.New(questionbank.Default(), candidate.Candidate{},
		session.WithEvaluator(session.HeuristicEvaluator{}),
		session.WithObserver(rec),
	)
	ctx := context.Background()
	_, err := s.Submit(ctx, "")
	require.ErrorIs(t, err, session.ErrEmptyInput)
	for !s.IsComplete() {
		_, err := s.Submit(ctx, "zz")
		require.NoError(t, err)
	}
	_, err = s.Submit(ctx, "late")
	require.ErrorIs(t, err, session.ErrComplete)
	return s
}

func TestRecorder_Submissions(t *testing.T) {
	rec := NewRecorder()
	runInterview(t, rec)

	assert.Equal(t, 5.0, testutil.ToFloat64(rec.submissions.WithLabelValues(OutcomeScored)))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.submissions.WithLabelValues(OutcomeEmpty)))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.submissions.WithLabelValues(OutcomeComplete)))
	assert.Equal(t, 5, testutil.CollectAndCount(rec.scores))
}

func TestRecorder_Reports(t *testing.T) {
	rec := NewRecorder()
	s := runInterview(t, rec)
	r, err := s.Report()
	require.NoError(t, err)
	rec.ReportGenerated(r)

	expected := `
# HELP sheetwise_reports_total Generated reports by recommendation
# TYPE sheetwise_reports_total counter
sheetwise_reports_total{recommendation="Not Recommended"} 1
`
	require.NoError(t, testutil.CollectAndCompare(rec.reports, strings.NewReader(expected)))
}

func TestRecorder_WriteTextfile(t *testing.T) {
	rec := NewRecorder()
	runInterview(t, rec)

	path := filepath.Join(t.TempDir(), "textfile", "sheetwise.prom")
	require.NoError(t, rec.WriteTextfile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `sheetwise_submissions_total{outcome="scored"} 5`)
	assert.Contains(t, string(data), "sheetwise_evaluation_seconds_count 5")

	assert.NoError(t, rec.WriteTextfile(""))
}
