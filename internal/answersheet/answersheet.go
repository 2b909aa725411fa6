// Package answersheet reads a file of pre-written answers and scores them in
// one pass, without the terminal UI.
package answersheet

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/sheetwise/internal/candidate"
	"github.com/abhisek/sheetwise/internal/questionbank"
	"github.com/abhisek/sheetwise/internal/report"
	"github.com/abhisek/sheetwise/internal/session"
)

// ErrMissingAnswer is returned when the sheet does not answer every question
// in the bank.
var ErrMissingAnswer = errors.New("missing answer")

//go:embed answers.schema.json
var sheetSchemaJSON []byte

var (
	sheetSchemaOnce sync.Once
	sheetSchema     *jsonschema.Schema
	sheetSchemaErr  error
)

// Answer is one candidate response keyed by question ID.
type Answer struct {
	QuestionID int    `yaml:"question_id"`
	Answer     string `yaml:"answer"`
}

// Sheet is the on-disk layout of an answer sheet (YAML or JSON).
type Sheet struct {
	Candidate candidate.Candidate `yaml:"candidate"`
	Answers   []Answer            `yaml:"answers"`
}

// LoadFile reads an answer sheet from disk. See Parse.
func LoadFile(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answer sheet: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a YAML or JSON answer sheet after checking it against the
// embedded schema.
func Parse(data []byte) (*Sheet, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse answer sheet: %w", err)
	}
	if err := validateAgainstSchema(doc); err != nil {
		return nil, err
	}

	var s Sheet
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode answer sheet: %w", err)
	}
	s.Candidate = s.Candidate.Normalize()
	if err := s.Candidate.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Ordered returns the answers in bank order. Every question must be
// answered; answers to unknown questions are an error.
func (s *Sheet) Ordered(bank *questionbank.Bank) ([]string, error) {
	byID := make(map[int]string, len(s.Answers))
	for _, a := range s.Answers {
		if _, err := bank.ByID(a.QuestionID); err != nil {
			return nil, fmt.Errorf("answer for question %d: %w", a.QuestionID, err)
		}
		if _, dup := byID[a.QuestionID]; dup {
			return nil, fmt.Errorf("question %d answered twice", a.QuestionID)
		}
		byID[a.QuestionID] = a.Answer
	}

	out := make([]string, 0, bank.Len())
	for _, q := range bank.Questions() {
		a, ok := byID[q.ID]
		if !ok {
			return nil, fmt.Errorf("%w for question %d", ErrMissingAnswer, q.ID)
		}
		out = append(out, a)
	}
	return out, nil
}

// Score runs a full session over the sheet and returns its report. opts are
// passed to session.New, so callers choose the evaluator and observers.
func (s *Sheet) Score(ctx context.Context, bank *questionbank.Bank, opts ...session.Option) (*report.Report, error) {
	answers, err := s.Ordered(bank)
	if err != nil {
		return nil, err
	}

	sess := session.New(bank, s.Candidate, opts...)
	for i, a := range answers {
		if _, err := sess.Submit(ctx, a); err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
	}
	return sess.Report()
}

func validateAgainstSchema(doc any) error {
	schema, err := compiledSheetSchema()
	if err != nil {
		return fmt.Errorf("compile answer sheet schema: %w", err)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("answer sheet is not JSON-compatible: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("re-read answer sheet: %w", err)
	}
	if err := schema.Validate(inst); err != nil {
		return fmt.Errorf("answer sheet schema validation failed: %w", err)
	}
	return nil
}

func compiledSheetSchema() (*jsonschema.Schema, error) {
	sheetSchemaOnce.Do(func() {
		def, err := jsonschema.UnmarshalJSON(bytes.NewReader(sheetSchemaJSON))
		if err != nil {
			sheetSchemaErr = err
			return
		}
		c := jsonschema.NewCompiler()
		const url = "schema://answer-sheet.json"
		if err := c.AddResource(url, def); err != nil {
			sheetSchemaErr = err
			return
		}
		sheetSchema, sheetSchemaErr = c.Compile(url)
	})
	return sheetSchema, sheetSchemaErr
}
