package session

import (
	"errors"
	"time"

	"github.com/abhisek/sheetwise/internal/questionbank"
	"github.com/abhisek/sheetwise/internal/report"
	"github.com/abhisek/sheetwise/internal/scorer"
)

// Phase represents the current phase of the session.
type Phase int

const (
	PhaseAnswering  Phase = iota // Waiting for an answer to the current question
	PhaseEvaluating              // One submission is being scored
	PhaseComplete                // Every question has a scored response
)

func (p Phase) String() string {
	switch p {
	case PhaseAnswering:
		return "answering"
	case PhaseEvaluating:
		return "evaluating"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

var (
	// ErrEmptyInput is returned for a blank answer. Nothing is recorded.
	ErrEmptyInput = errors.New("answer is empty")

	// ErrInFlight is returned when an answer is submitted while the previous
	// one is still being evaluated.
	ErrInFlight = errors.New("an answer is already being evaluated")

	// ErrComplete is returned when every question has already been answered.
	ErrComplete = errors.New("interview is complete")

	// ErrIncomplete is returned when a report is requested before the last
	// question has been answered.
	ErrIncomplete = errors.New("interview is not complete")
)

// ScoredResponse is one answered question together with its evaluation.
type ScoredResponse struct {
	QuestionID   int
	QuestionText string
	Answer       string
	Category     string
	Difficulty   questionbank.Difficulty
	Evaluation   scorer.Evaluation
	SubmittedAt  time.Time
}

// Entry adapts the response for report aggregation.
func (r ScoredResponse) Entry() report.Entry {
	return report.Entry{
		QuestionID: r.QuestionID,
		Question:   r.QuestionText,
		Category:   r.Category,
		Difficulty: r.Difficulty,
		Answer:     r.Answer,
		Evaluation: r.Evaluation,
	}
}

// SubmitResult is the single completion event of an asynchronous submission.
type SubmitResult struct {
	Response ScoredResponse
	Err      error
}
