// Package session drives one interview: it serves questions in bank order,
// accepts one answer at a time, and records each scored response.
package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/sheetwise/internal/candidate"
	"github.com/abhisek/sheetwise/internal/questionbank"
)

// Session is the state of one interview. It is safe for concurrent use; at
// most one submission is evaluated at a time.
type Session struct {
	id        string
	bank      *questionbank.Bank
	candidate candidate.Candidate
	evaluator Evaluator
	observer  Observer
	now       func() time.Time
	startedAt time.Time

	mu        sync.Mutex
	responses []ScoredResponse
	cursor    int
	pending   bool
}

// Option configures a Session.
type Option func(*Session)

// WithEvaluator sets the evaluator. The default is a HeuristicEvaluator with
// DefaultEvaluationDelay.
func WithEvaluator(e Evaluator) Option {
	return func(s *Session) { s.evaluator = e }
}

// WithObserver registers an observer for session events.
func WithObserver(o Observer) Option {
	return func(s *Session) {
		if o != nil {
			s.observer = o
		}
	}
}

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithID overrides the generated session ID.
func WithID(id string) Option {
	return func(s *Session) { s.id = id }
}

// New starts a session over bank for the given candidate.
func New(bank *questionbank.Bank, c candidate.Candidate, opts ...Option) *Session {
	s := &Session{
		id:        uuid.New().String(),
		bank:      bank,
		candidate: c,
		evaluator: HeuristicEvaluator{Delay: DefaultEvaluationDelay},
		observer:  Observers(nil),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.startedAt = s.now()
	return s
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Candidate returns the candidate being interviewed.
func (s *Session) Candidate() candidate.Candidate { return s.candidate }

// Bank returns the question bank.
func (s *Session) Bank() *questionbank.Bank { return s.bank }

// StartedAt returns when the session was created.
func (s *Session) StartedAt() time.Time { return s.startedAt }

// CurrentQuestion returns the question awaiting an answer. It returns false
// once the interview is complete.
func (s *Session) CurrentQuestion() (questionbank.Question, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bank.At(s.cursor)
}

// Cursor returns the index of the current question.
func (s *Session) Cursor() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

// IsComplete reports whether every question has been answered.
func (s *Session) IsComplete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor >= s.bank.Len()
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case s.pending:
		return PhaseEvaluating
	case s.cursor >= s.bank.Len():
		return PhaseComplete
	default:
		return PhaseAnswering
	}
}

// Progress returns how many questions have been answered out of the total.
func (s *Session) Progress() Progress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Progress{Answered: len(s.responses), Total: s.bank.Len()}
}

// Responses returns a copy of the scored responses in submission order.
func (s *Session) Responses() []ScoredResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ScoredResponse, len(s.responses))
	copy(out, s.responses)
	return out
}

// Submit scores answer for the current question and blocks until the
// evaluation completes.
func (s *Session) Submit(ctx context.Context, answer string) (ScoredResponse, error) {
	ch, err := s.SubmitAsync(ctx, answer)
	if err != nil {
		return ScoredResponse{}, err
	}
	res := <-ch
	return res.Response, res.Err
}

// SubmitAsync reserves the session for answer and evaluates it in the
// background. The session is in PhaseEvaluating when SubmitAsync returns.
// Exactly one SubmitResult is delivered on the returned channel, after which
// it is closed. If ctx is cancelled first, the reservation is released and
// nothing is recorded.
func (s *Session) SubmitAsync(ctx context.Context, answer string) (<-chan SubmitResult, error) {
	q, err := s.reserve(answer)
	if err != nil {
		s.observer.SubmissionRejected(s.id, err)
		return nil, err
	}
	s.observer.EvaluationStarted(s.id, q)

	ch := make(chan SubmitResult, 1)
	go func() {
		defer close(ch)
		resp, err := s.evaluate(ctx, answer, q)
		ch <- SubmitResult{Response: resp, Err: err}
	}()
	return ch, nil
}

func (s *Session) reserve(answer string) (questionbank.Question, error) {
	if strings.TrimSpace(answer) == "" {
		return questionbank.Question{}, ErrEmptyInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending {
		return questionbank.Question{}, ErrInFlight
	}
	q, ok := s.bank.At(s.cursor)
	if !ok {
		return questionbank.Question{}, ErrComplete
	}
	s.pending = true
	return q, nil
}

func (s *Session) evaluate(ctx context.Context, answer string, q questionbank.Question) (ScoredResponse, error) {
	start := s.now()
	ev, err := s.evaluator.Evaluate(ctx, answer, q)

	s.mu.Lock()
	s.pending = false
	if err != nil {
		s.mu.Unlock()
		s.observer.EvaluationFailed(s.id, q, err)
		return ScoredResponse{}, err
	}
	resp := ScoredResponse{
		QuestionID:   q.ID,
		QuestionText: q.Text,
		Answer:       answer,
		Category:     q.Category,
		Difficulty:   q.Difficulty,
		Evaluation:   ev,
		SubmittedAt:  s.now(),
	}
	s.responses = append(s.responses, resp)
	s.cursor++
	s.mu.Unlock()

	s.observer.EvaluationFinished(s.id, resp, s.now().Sub(start))
	return resp, nil
}
