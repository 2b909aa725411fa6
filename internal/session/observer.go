package session

import (
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/sheetwise/internal/questionbank"
)

// Observer is notified of session events. Calls are made outside the session
// lock, possibly from the evaluation goroutine.
type Observer interface {
	SubmissionRejected(sessionID string, err error)
	EvaluationStarted(sessionID string, q questionbank.Question)
	EvaluationFinished(sessionID string, resp ScoredResponse, elapsed time.Duration)
	EvaluationFailed(sessionID string, q questionbank.Question, err error)
}

// Observers fans events out to several observers in order.
type Observers []Observer

func (os Observers) SubmissionRejected(sessionID string, err error) {
	for _, o := range os {
		o.SubmissionRejected(sessionID, err)
	}
}

func (os Observers) EvaluationStarted(sessionID string, q questionbank.Question) {
	for _, o := range os {
		o.EvaluationStarted(sessionID, q)
	}
}

func (os Observers) EvaluationFinished(sessionID string, resp ScoredResponse, elapsed time.Duration) {
	for _, o := range os {
		o.EvaluationFinished(sessionID, resp, elapsed)
	}
}

func (os Observers) EvaluationFailed(sessionID string, q questionbank.Question, err error) {
	for _, o := range os {
		o.EvaluationFailed(sessionID, q, err)
	}
}

// LogObserver writes session events to a zap logger.
type LogObserver struct {
	log *zap.Logger
}

// NewLogObserver returns an Observer that logs through l.
func NewLogObserver(l *zap.Logger) *LogObserver {
	return &LogObserver{log: l.Named("session")}
}

func (l *LogObserver) SubmissionRejected(sessionID string, err error) {
	l.log.Info("submission rejected", zap.String("session_id", sessionID), zap.Error(err))
}

func (l *LogObserver) EvaluationStarted(sessionID string, q questionbank.Question) {
	l.log.Debug("evaluating answer",
		zap.String("session_id", sessionID),
		zap.Int("question_id", q.ID),
		zap.String("category", q.Category),
	)
}

func (l *LogObserver) EvaluationFinished(sessionID string, resp ScoredResponse, elapsed time.Duration) {
	l.log.Info("answer scored",
		zap.String("session_id", sessionID),
		zap.Int("question_id", resp.QuestionID),
		zap.Int("score", resp.Evaluation.Score),
		zap.Int("keyword_matches", resp.Evaluation.KeywordMatches),
		zap.Duration("elapsed", elapsed),
	)
}

func (l *LogObserver) EvaluationFailed(sessionID string, q questionbank.Question, err error) {
	l.log.Warn("evaluation failed",
		zap.String("session_id", sessionID),
		zap.Int("question_id", q.ID),
		zap.Error(err),
	)
}
