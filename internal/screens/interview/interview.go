// Package interview is the question-by-question answering screen.
package interview

import (
	"context"
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sheetwise/internal/report"
	"github.com/abhisek/sheetwise/internal/router"
	"github.com/abhisek/sheetwise/internal/screen"
	"github.com/abhisek/sheetwise/internal/session"
	"github.com/abhisek/sheetwise/internal/ui/components"
	"github.com/abhisek/sheetwise/internal/ui/layout"
)

const answerPlaceholder = "Please provide a detailed response with examples where applicable..."

// CompleteFunc builds the report screen once every question is answered.
type CompleteFunc func(r *report.Report) screen.Screen

// AbandonFunc builds the screen shown after the interviewer quits early.
type AbandonFunc func() screen.Screen

// InterviewScreen implements screen.Screen for an active interview.
type InterviewScreen struct {
	session *session.Session
	ctx     context.Context
	cancel  context.CancelFunc

	input   components.TextInput
	spinner components.Spinner

	evaluating         bool
	showingQuitConfirm bool
	last               *session.ScoredResponse
	errMsg             string

	onComplete CompleteFunc
	onAbandon  AbandonFunc
}

var _ screen.Screen = (*InterviewScreen)(nil)
var _ screen.KeyHintProvider = (*InterviewScreen)(nil)
var _ screen.StatusProvider = (*InterviewScreen)(nil)

// New creates an interview screen driving s.
func New(s *session.Session, onComplete CompleteFunc, onAbandon AbandonFunc) *InterviewScreen {
	ctx, cancel := context.WithCancel(context.Background())
	input := components.NewTextInput("Your Response", answerPlaceholder, 0)
	input.ShowCount = true
	return &InterviewScreen{
		session:    s,
		ctx:        ctx,
		cancel:     cancel,
		input:      input,
		spinner:    components.NewSpinner("Evaluating..."),
		onComplete: onComplete,
		onAbandon:  onAbandon,
	}
}

func (s *InterviewScreen) Init() tea.Cmd {
	return s.input.Focus()
}

func (s *InterviewScreen) Title() string {
	return "Technical Assessment"
}

func (s *InterviewScreen) Status() string {
	p := s.session.Progress()
	return fmt.Sprintf("Question %d of %d", min(p.Answered+1, p.Total), p.Total)
}

func (s *InterviewScreen) KeyHints() []layout.KeyHint {
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End interview"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.evaluating {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit response"},
		{Key: "Esc", Description: "Quit"},
	}
}

// Evaluating reports whether a submission is being scored.
func (s *InterviewScreen) Evaluating() bool {
	return s.evaluating
}

func (s *InterviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case evaluatedMsg:
		return s.handleEvaluated(msg.Result)

	case components.SpinnerTickMsg:
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Cursor blink and other input housekeeping.
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *InterviewScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			s.showingQuitConfirm = false
			s.cancel()
			next := s.onAbandon()
			return s, func() tea.Msg { return router.ResetScreenMsg{Screen: next} }
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	switch key {
	case "esc":
		s.showingQuitConfirm = true
		return s, nil
	case "enter":
		return s.submit()
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *InterviewScreen) submit() (screen.Screen, tea.Cmd) {
	if s.evaluating {
		return s, nil
	}

	ch, err := s.session.SubmitAsync(s.ctx, s.input.Value())
	switch {
	case errors.Is(err, session.ErrEmptyInput):
		s.input.SetError("Please enter a response before submitting.")
		return s, nil
	case err != nil:
		s.errMsg = err.Error()
		return s, nil
	}

	s.errMsg = ""
	s.evaluating = true
	s.input.Disabled = true
	s.input.Blur()

	return s, tea.Batch(s.spinner.Start(), waitForResult(ch))
}

func (s *InterviewScreen) handleEvaluated(res session.SubmitResult) (screen.Screen, tea.Cmd) {
	s.evaluating = false
	s.spinner.Stop()
	s.input.Disabled = false

	if res.Err != nil {
		if !errors.Is(res.Err, context.Canceled) {
			s.errMsg = "Evaluation failed: " + res.Err.Error()
		}
		return s, s.input.Focus()
	}

	resp := res.Response
	s.last = &resp
	s.input.Reset()

	if !s.session.IsComplete() {
		return s, s.input.Focus()
	}

	r, err := s.session.Report()
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	next := s.onComplete(r)
	return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}
