package questionbank

import (
	"errors"
	"strings"
	"testing"
)

func TestValidate_SeedBankPasses(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("seed bank validation failed: %v", err)
	}
}

func TestValidateQuestions_DetectsDuplicateID(t *testing.T) {
	qs := makeMinimalValidQuestions()
	qs[1].ID = qs[0].ID
	err := validateQuestions(qs)
	if err == nil {
		t.Fatal("expected error for duplicate ID, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("error should mention duplicate, got: %v", err)
	}
}

func TestValidateQuestions_RequiresKeywords(t *testing.T) {
	qs := makeMinimalValidQuestions()
	qs[0].Keywords = nil
	err := validateQuestions(qs)
	if err == nil {
		t.Fatal("expected error for missing keywords, got nil")
	}
	if !strings.Contains(err.Error(), "no keywords") {
		t.Errorf("error should mention keywords, got: %v", err)
	}
}

func TestValidateQuestions_RejectsUpperCaseKeyword(t *testing.T) {
	qs := makeMinimalValidQuestions()
	qs[0].Keywords = []string{"VLOOKUP"}
	err := validateQuestions(qs)
	if err == nil {
		t.Fatal("expected error for upper-case keyword, got nil")
	}
	if !strings.Contains(err.Error(), "lower-case") {
		t.Errorf("error should mention lower-case, got: %v", err)
	}
}

func TestValidateQuestions_RejectsBlankKeyword(t *testing.T) {
	qs := makeMinimalValidQuestions()
	qs[0].Keywords = []string{"  "}
	if err := validateQuestions(qs); err == nil {
		t.Fatal("expected error for blank keyword, got nil")
	}
}

func TestValidateQuestions_RejectsDecreasingDifficulty(t *testing.T) {
	qs := makeMinimalValidQuestions()
	qs[0].Difficulty = DifficultyAdvanced
	qs[1].Difficulty = DifficultyBasic
	err := validateQuestions(qs)
	if err == nil {
		t.Fatal("expected error for decreasing difficulty, got nil")
	}
	if !strings.Contains(err.Error(), "easier") {
		t.Errorf("error should mention ordering, got: %v", err)
	}
}

func TestValidateQuestions_RejectsUnknownDifficulty(t *testing.T) {
	qs := makeMinimalValidQuestions()
	qs[0].Difficulty = 0
	if err := validateQuestions(qs); err == nil {
		t.Fatal("expected error for unknown difficulty, got nil")
	}
}

func TestValidateQuestions_RejectsZeroMaxScore(t *testing.T) {
	qs := makeMinimalValidQuestions()
	qs[0].MaxScore = 0
	err := validateQuestions(qs)
	if err == nil {
		t.Fatal("expected error for zero MaxScore, got nil")
	}
	if !strings.Contains(err.Error(), "MaxScore") {
		t.Errorf("error should mention MaxScore, got: %v", err)
	}
}

func TestValidateQuestions_EmptyBank(t *testing.T) {
	if err := validateQuestions(nil); err == nil {
		t.Fatal("expected error for empty bank, got nil")
	}
}

func TestValidateQuestions_ReportsAllProblems(t *testing.T) {
	qs := makeMinimalValidQuestions()
	qs[0].Text = ""
	qs[1].Category = " "
	err := validateQuestions(qs)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(verr.Problems) != 2 {
		t.Errorf("Problems = %d, want 2: %v", len(verr.Problems), verr.Problems)
	}
}

// makeMinimalValidQuestions returns a small valid set in ascending difficulty.
func makeMinimalValidQuestions() []Question {
	return []Question{
		{ID: 1, Category: "A", Difficulty: DifficultyBasic, Text: "q1", Keywords: []string{"alpha"}, MaxScore: 10},
		{ID: 2, Category: "B", Difficulty: DifficultyIntermediate, Text: "q2", Keywords: []string{"beta"}, MaxScore: 10},
		{ID: 3, Category: "A", Difficulty: DifficultyAdvanced, Text: "q3", Keywords: []string{"gamma"}, MaxScore: 10},
	}
}
