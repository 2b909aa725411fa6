// Package candidate holds the intake details collected before an interview.
// The scoring engine never reads them; they are carried through to the report.
package candidate

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Experience is a bucketed number of years using Excel.
type Experience string

const (
	ExperienceJunior  Experience = "0-1"
	ExperienceMid     Experience = "2-3"
	ExperienceSenior  Experience = "4-5"
	ExperienceExpert  Experience = "6+"
	experienceOptions            = "0-1 2-3 4-5 6+"
)

// AllExperience returns the experience options in display order.
func AllExperience() []Experience {
	return []Experience{ExperienceJunior, ExperienceMid, ExperienceSenior, ExperienceExpert}
}

// Label returns the display label for an experience bucket.
func (e Experience) Label() string {
	if e == "" {
		return "Select experience level"
	}
	return string(e) + " years"
}

// Candidate is the person being interviewed.
type Candidate struct {
	Name       string     `json:"name" yaml:"name" validate:"required"`
	Email      string     `json:"email" yaml:"email" validate:"required,email"`
	Position   string     `json:"position" yaml:"position" validate:"required"`
	Experience Experience `json:"experience" yaml:"experience" validate:"required,oneof=0-1 2-3 4-5 6+"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Normalize trims surrounding whitespace from every field.
func (c Candidate) Normalize() Candidate {
	return Candidate{
		Name:       strings.TrimSpace(c.Name),
		Email:      strings.TrimSpace(c.Email),
		Position:   strings.TrimSpace(c.Position),
		Experience: Experience(strings.TrimSpace(string(c.Experience))),
	}
}

// Validate reports every missing or malformed field. All four fields are
// required before an interview can start.
func (c Candidate) Validate() error {
	err := structValidator().Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate candidate: %w", err)
	}
	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		problems = append(problems, describe(fe))
	}
	return &FieldError{Problems: problems}
}

// Ready reports whether the intake form is complete.
func (c Candidate) Ready() bool {
	return c.Validate() == nil
}

// FieldError lists the intake fields that failed validation.
type FieldError struct {
	Problems []string
}

func (e *FieldError) Error() string {
	return "invalid candidate: " + strings.Join(e.Problems, "; ")
}

func describe(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", field, experienceOptions)
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}
