package session

import (
	"context"
	"time"

	"github.com/abhisek/sheetwise/internal/questionbank"
	"github.com/abhisek/sheetwise/internal/scorer"
)

// DefaultEvaluationDelay is the simulated latency of the heuristic evaluator.
const DefaultEvaluationDelay = 2 * time.Second

// Evaluator scores one answer. Implementations must honour ctx cancellation.
type Evaluator interface {
	Evaluate(ctx context.Context, answer string, q questionbank.Question) (scorer.Evaluation, error)
}

// EvaluatorFunc adapts a function to the Evaluator interface.
type EvaluatorFunc func(ctx context.Context, answer string, q questionbank.Question) (scorer.Evaluation, error)

func (f EvaluatorFunc) Evaluate(ctx context.Context, answer string, q questionbank.Question) (scorer.Evaluation, error) {
	return f(ctx, answer, q)
}

// HeuristicEvaluator scores with the keyword heuristic after waiting Delay,
// which stands in for the latency of a remote grader.
type HeuristicEvaluator struct {
	Delay time.Duration
}

func (h HeuristicEvaluator) Evaluate(ctx context.Context, answer string, q questionbank.Question) (scorer.Evaluation, error) {
	if err := ctx.Err(); err != nil {
		return scorer.Evaluation{}, err
	}
	if h.Delay > 0 {
		timer := time.NewTimer(h.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return scorer.Evaluation{}, ctx.Err()
		case <-timer.C:
		}
	}
	return scorer.Evaluate(answer, q)
}

// DeadlineEvaluator is a decorator that bounds the inner evaluator by a hard
// deadline. When the inner evaluator times out or fails, the answer is scored
// immediately with the heuristic instead.
type DeadlineEvaluator struct {
	inner   Evaluator
	timeout time.Duration
}

// WithDeadline wraps an Evaluator with a deadline. A non-positive timeout
// returns inner unchanged.
func WithDeadline(inner Evaluator, timeout time.Duration) Evaluator {
	if timeout <= 0 {
		return inner
	}
	return &DeadlineEvaluator{inner: inner, timeout: timeout}
}

func (d *DeadlineEvaluator) Evaluate(ctx context.Context, answer string, q questionbank.Question) (scorer.Evaluation, error) {
	dctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	ev, err := d.inner.Evaluate(dctx, answer, q)
	if err == nil {
		return ev, nil
	}

	// Caller cancellation is not a grader failure.
	if ctx.Err() != nil {
		return scorer.Evaluation{}, ctx.Err()
	}
	return scorer.Evaluate(answer, q)
}
