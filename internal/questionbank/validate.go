package questionbank

import (
	"fmt"
	"strings"
)

// ValidationError lists every structural problem found in a question set.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("question bank validation failed:\n  %s", strings.Join(e.Problems, "\n  "))
}

// validateQuestions performs all structural checks on the given question set.
// Returns a *ValidationError describing all problems found, or nil if valid.
func validateQuestions(questions []Question) error {
	var errs []string

	if len(questions) == 0 {
		errs = append(errs, "bank has no questions")
	}

	idSet := make(map[int]bool, len(questions))
	var prev Difficulty
	for i, q := range questions {
		prefix := fmt.Sprintf("question %d (index %d)", q.ID, i)

		if q.ID <= 0 {
			errs = append(errs, fmt.Sprintf("%s: ID must be > 0", prefix))
		}
		if idSet[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %d", q.ID))
		}
		idSet[q.ID] = true

		if strings.TrimSpace(q.Text) == "" {
			errs = append(errs, fmt.Sprintf("%s: text is empty", prefix))
		}
		if strings.TrimSpace(q.Category) == "" {
			errs = append(errs, fmt.Sprintf("%s: category is empty", prefix))
		}
		if q.MaxScore <= 0 {
			errs = append(errs, fmt.Sprintf("%s: MaxScore must be > 0, got %d", prefix, q.MaxScore))
		}

		// Every question needs at least one keyword, otherwise the concept
		// score would divide by zero.
		if len(q.Keywords) == 0 {
			errs = append(errs, fmt.Sprintf("%s: has no keywords", prefix))
		}
		for _, kw := range q.Keywords {
			if strings.TrimSpace(kw) == "" {
				errs = append(errs, fmt.Sprintf("%s: blank keyword", prefix))
				continue
			}
			if kw != strings.ToLower(kw) {
				errs = append(errs, fmt.Sprintf("%s: keyword %q must be lower-case", prefix, kw))
			}
		}

		if !q.Difficulty.Valid() {
			errs = append(errs, fmt.Sprintf("%s: unknown difficulty %d", prefix, int(q.Difficulty)))
			continue
		}
		if q.Difficulty < prev {
			errs = append(errs, fmt.Sprintf("%s: difficulty %s follows %s (questions must not get easier)", prefix, q.Difficulty, prev))
		}
		prev = q.Difficulty
	}

	if len(errs) > 0 {
		return &ValidationError{Problems: errs}
	}
	return nil
}
