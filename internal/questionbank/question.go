package questionbank

import (
	"fmt"
	"strings"
)

// Difficulty is the ordinal challenge level of a question.
type Difficulty int

const (
	DifficultyBasic        Difficulty = iota + 1 // Definitions and everyday usage
	DifficultyIntermediate                       // Formulas and analysis features
	DifficultyAdvanced                           // Open-ended data problems
)

// AllDifficulties returns all difficulty tiers in ascending order.
func AllDifficulties() []Difficulty {
	return []Difficulty{
		DifficultyBasic,
		DifficultyIntermediate,
		DifficultyAdvanced,
	}
}

// String returns the display label for a difficulty.
func (d Difficulty) String() string {
	switch d {
	case DifficultyBasic:
		return "Basic"
	case DifficultyIntermediate:
		return "Intermediate"
	case DifficultyAdvanced:
		return "Advanced"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
}

// Valid reports whether d is one of the known tiers.
func (d Difficulty) Valid() bool {
	return d >= DifficultyBasic && d <= DifficultyAdvanced
}

// ParseDifficulty parses a difficulty label, ignoring case.
func ParseDifficulty(s string) (Difficulty, error) {
	for _, d := range AllDifficulties() {
		if strings.EqualFold(strings.TrimSpace(s), d.String()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown difficulty %q", s)
}

// MarshalText implements encoding.TextMarshaler so difficulties serialize by label.
func (d Difficulty) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("invalid difficulty %d", int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Difficulty) UnmarshalText(text []byte) error {
	parsed, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Question is a single interview question. Questions are built once when the
// bank loads and never mutated afterwards.
type Question struct {
	ID         int        `json:"id" yaml:"id"`
	Category   string     `json:"category" yaml:"category"`
	Difficulty Difficulty `json:"difficulty" yaml:"difficulty"`
	Text       string     `json:"text" yaml:"text"`
	Keywords   []string   `json:"keywords" yaml:"keywords"`

	// MaxScore is the weight shown to interviewers. Scores are always
	// normalized to 0-100 and never rescaled by it.
	MaxScore int `json:"max_score" yaml:"max_score"`
}
