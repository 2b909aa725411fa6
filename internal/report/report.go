// Package report aggregates scored interview responses into per-category and
// per-difficulty statistics and a hiring recommendation.
package report

import (
	"errors"
	"math"
	"time"

	"github.com/abhisek/sheetwise/internal/candidate"
	"github.com/abhisek/sheetwise/internal/questionbank"
	"github.com/abhisek/sheetwise/internal/scorer"
)

// Thresholds for strengths and improvement areas, applied to group averages.
const (
	StrengthThreshold    = 75
	ImprovementThreshold = 60
)

// ErrEmptyReportInput is returned when there are no responses to aggregate.
var ErrEmptyReportInput = errors.New("report: no responses to aggregate")

// Entry is one scored answer as seen by the aggregator.
type Entry struct {
	QuestionID int                     `json:"question_id" yaml:"question_id"`
	Question   string                  `json:"question" yaml:"question"`
	Category   string                  `json:"category" yaml:"category"`
	Difficulty questionbank.Difficulty `json:"difficulty" yaml:"difficulty"`
	Answer     string                  `json:"answer" yaml:"answer"`
	Evaluation scorer.Evaluation       `json:"evaluation" yaml:"evaluation"`
}

// Scored is anything that can describe itself as a report entry.
type Scored interface {
	Entry() Entry
}

// Entry lets a bare Entry be aggregated directly.
func (e Entry) Entry() Entry { return e }

// GroupAverage is the mean score of the responses sharing a label.
type GroupAverage struct {
	Label   string `json:"label" yaml:"label"`
	Average int    `json:"average" yaml:"average"`
	Count   int    `json:"count" yaml:"count"`
}

// Report is the final assessment of one interview.
type Report struct {
	SessionID   string              `json:"session_id,omitempty" yaml:"session_id,omitempty"`
	Candidate   candidate.Candidate `json:"candidate" yaml:"candidate"`
	GeneratedAt time.Time           `json:"generated_at" yaml:"generated_at"`

	OverallScore       int            `json:"overall_score" yaml:"overall_score"`
	Recommendation     Recommendation `json:"recommendation" yaml:"recommendation"`
	CategoryAverages   []GroupAverage `json:"category_averages" yaml:"category_averages"`
	DifficultyAverages []GroupAverage `json:"difficulty_averages" yaml:"difficulty_averages"`
	Strengths          []string       `json:"strengths" yaml:"strengths"`
	Improvements       []string       `json:"improvements" yaml:"improvements"`

	Responses []Entry `json:"responses" yaml:"responses"`
}

// Aggregate computes the report statistics for an ordered list of scored
// responses. Groups appear in the order their label is first seen.
func Aggregate[S Scored](items []S) (*Report, error) {
	if len(items) == 0 {
		return nil, ErrEmptyReportInput
	}

	entries := make([]Entry, len(items))
	total := 0
	categories := newGrouper()
	difficulties := newGrouper()
	for i, item := range items {
		e := item.Entry()
		entries[i] = e
		total += e.Evaluation.Score
		categories.add(e.Category, e.Evaluation.Score)
		difficulties.add(e.Difficulty.String(), e.Evaluation.Score)
	}

	overall := roundMean(total, len(entries))
	catAvgs := categories.averages()

	strengths := []string{}
	improvements := []string{}
	for _, g := range catAvgs {
		switch {
		case g.Average >= StrengthThreshold:
			strengths = append(strengths, g.Label)
		case g.Average < ImprovementThreshold:
			improvements = append(improvements, g.Label)
		}
	}

	return &Report{
		OverallScore:       overall,
		Recommendation:     Recommend(overall),
		CategoryAverages:   catAvgs,
		DifficultyAverages: difficulties.averages(),
		Strengths:          strengths,
		Improvements:       improvements,
		Responses:          entries,
	}, nil
}

// StrengthsNote is shown in place of an empty strengths list.
func (r *Report) StrengthsNote() string {
	if len(r.Strengths) > 0 {
		return ""
	}
	return "No standout strengths identified. Focus on building foundational skills."
}

// ImprovementsNote is shown in place of an empty improvements list.
func (r *Report) ImprovementsNote() string {
	if len(r.Improvements) > 0 {
		return ""
	}
	return "Strong performance across all areas. Continue to build advanced skills."
}

type grouper struct {
	order  []string
	sums   map[string]int
	counts map[string]int
}

func newGrouper() *grouper {
	return &grouper{sums: make(map[string]int), counts: make(map[string]int)}
}

func (g *grouper) add(label string, score int) {
	if _, seen := g.counts[label]; !seen {
		g.order = append(g.order, label)
	}
	g.sums[label] += score
	g.counts[label]++
}

func (g *grouper) averages() []GroupAverage {
	out := make([]GroupAverage, 0, len(g.order))
	for _, label := range g.order {
		out = append(out, GroupAverage{
			Label:   label,
			Average: roundMean(g.sums[label], g.counts[label]),
			Count:   g.counts[label],
		})
	}
	return out
}

// roundMean rounds half away from zero; scores are never negative so this
// matches rounding half up.
func roundMean(sum, n int) int {
	return int(math.Round(float64(sum) / float64(n)))
}
