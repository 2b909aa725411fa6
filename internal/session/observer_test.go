package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/sheetwise/internal/questionbank"
)

type recordingObserver struct {
	mu       sync.Mutex
	events   []string
	finished []ScoredResponse
}

func (r *recordingObserver) add(e string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingObserver) SubmissionRejected(string, error) { r.add("rejected") }

func (r *recordingObserver) EvaluationStarted(string, questionbank.Question) { r.add("started") }

func (r *recordingObserver) EvaluationFinished(_ string, resp ScoredResponse, _ time.Duration) {
	r.mu.Lock()
	r.finished = append(r.finished, resp)
	r.mu.Unlock()
	r.add("finished")
}

func (r *recordingObserver) EvaluationFailed(string, questionbank.Question, error) { r.add("failed") }

func TestObserver_Events(t *testing.T) {
	rec := &recordingObserver{}
	s := instantSession(WithObserver(rec))

	_, err := s.Submit(context.Background(), "  ")
	require.ErrorIs(t, err, ErrEmptyInput)
	_, err = s.Submit(context.Background(), "multiple worksheets")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Submit(ctx, "answer")
	require.Error(t, err)

	assert.Equal(t, []string{"rejected", "started", "finished", "started", "failed"}, rec.events)
	require.Len(t, rec.finished, 1)
	assert.Equal(t, 1, rec.finished[0].QuestionID)
}

func TestObservers_FanOut(t *testing.T) {
	a, b := &recordingObserver{}, &recordingObserver{}
	s := instantSession(WithObserver(Observers{a, b}))
	_, err := s.Submit(context.Background(), "answer")
	require.NoError(t, err)

	assert.Equal(t, []string{"started", "finished"}, a.events)
	assert.Equal(t, a.events, b.events)
}

func TestLogObserver(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s := instantSession(WithObserver(NewLogObserver(zap.New(core))))

	_, err := s.Submit(context.Background(), "")
	require.Error(t, err)
	_, err = s.Submit(context.Background(), "tabs organize sheets.")
	require.NoError(t, err)

	assert.Equal(t, 1, logs.FilterMessage("submission rejected").Len())
	assert.Equal(t, 1, logs.FilterMessage("evaluating answer").Len())

	scored := logs.FilterMessage("answer scored").All()
	require.Len(t, scored, 1)
	fields := scored[0].ContextMap()
	assert.Equal(t, "test-session-id", fields["session_id"])
	assert.Equal(t, int64(1), fields["question_id"])
	assert.Equal(t, "session", scored[0].LoggerName)
}
