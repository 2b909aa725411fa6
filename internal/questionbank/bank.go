package questionbank

import (
	"fmt"
	"slices"
)

// Bank is an ordered, validated, read-only set of questions.
type Bank struct {
	version    string
	questions  []Question
	byID       map[int]int
	categories []string
}

// New validates questions and builds a Bank. The slice and keyword lists are
// copied so later changes by the caller cannot leak into the bank.
func New(version string, questions []Question) (*Bank, error) {
	if err := validateQuestions(questions); err != nil {
		return nil, err
	}

	b := &Bank{
		version:   version,
		questions: make([]Question, len(questions)),
		byID:      make(map[int]int, len(questions)),
	}

	seen := make(map[string]bool)
	for i, q := range questions {
		q.Keywords = slices.Clone(q.Keywords)
		b.questions[i] = q
		b.byID[q.ID] = i
		if !seen[q.Category] {
			seen[q.Category] = true
			b.categories = append(b.categories, q.Category)
		}
	}
	return b, nil
}

// Default returns the compiled-in question bank.
func Default() *Bank {
	return defaultBank
}

// Version returns the bank version string.
func (b *Bank) Version() string {
	return b.version
}

// Len returns the number of questions.
func (b *Bank) Len() int {
	return len(b.questions)
}

// At returns the question at position i in interview order.
func (b *Bank) At(i int) (Question, bool) {
	if i < 0 || i >= len(b.questions) {
		return Question{}, false
	}
	return cloneQuestion(b.questions[i]), true
}

// Questions returns all questions in interview order.
func (b *Bank) Questions() []Question {
	out := make([]Question, len(b.questions))
	for i, q := range b.questions {
		out[i] = cloneQuestion(q)
	}
	return out
}

// ByID returns a question by ID, or error if not found.
func (b *Bank) ByID(id int) (Question, error) {
	i, ok := b.byID[id]
	if !ok {
		return Question{}, fmt.Errorf("question not found: %d", id)
	}
	return cloneQuestion(b.questions[i]), nil
}

// Categories returns the distinct categories in first-seen order.
func (b *Bank) Categories() []string {
	return slices.Clone(b.categories)
}

// ByCategory returns the questions in a category, in interview order.
func (b *Bank) ByCategory(category string) []Question {
	var out []Question
	for _, q := range b.questions {
		if q.Category == category {
			out = append(out, cloneQuestion(q))
		}
	}
	return out
}

// ByDifficulty returns the questions of one difficulty tier, in interview order.
func (b *Bank) ByDifficulty(d Difficulty) []Question {
	var out []Question
	for _, q := range b.questions {
		if q.Difficulty == d {
			out = append(out, cloneQuestion(q))
		}
	}
	return out
}

// Validate re-checks the bank for structural issues.
func (b *Bank) Validate() error {
	return validateQuestions(b.questions)
}

func cloneQuestion(q Question) Question {
	q.Keywords = slices.Clone(q.Keywords)
	return q
}
