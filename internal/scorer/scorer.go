// Package scorer grades a free-text interview answer against a question's
// keyword list using a fixed heuristic. It performs no I/O.
package scorer

import (
	"errors"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/abhisek/sheetwise/internal/questionbank"
)

// ErrNoKeywords is returned for a question with an empty keyword list.
// Validated banks never contain one.
var ErrNoKeywords = errors.New("question has no keywords")

// Heuristic constants.
const (
	// DetailSaturationChars is the answer length at which the detail score caps.
	DetailSaturationChars = 200

	StructuredScore   = 80 // answer contains '.' or '?'
	UnstructuredScore = 60

	ExampleScore   = 90 // answer gives an example
	NoExampleScore = 50

	ConceptWeight   = 0.4
	DetailWeight    = 0.2
	StructureWeight = 0.2
	ExampleWeight   = 0.2
)

// examplePhrases mark an answer as illustrated with an example.
var examplePhrases = []string{"example", "for instance", "such as"}

// Evaluation is the graded result for one answer. All scores are 0-100.
type Evaluation struct {
	Score          int `json:"score" yaml:"score"`
	ConceptScore   int `json:"concept_score" yaml:"concept_score"`
	DetailScore    int `json:"detail_score" yaml:"detail_score"`
	StructureScore int `json:"structure_score" yaml:"structure_score"`
	ExampleScore   int `json:"example_score" yaml:"example_score"`
	KeywordMatches int `json:"keyword_matches" yaml:"keyword_matches"`
	TotalKeywords  int `json:"total_keywords" yaml:"total_keywords"`

	// MatchedKeywords lists the matched keywords in question order.
	MatchedKeywords []string `json:"matched_keywords,omitempty" yaml:"matched_keywords,omitempty"`
}

// Evaluate scores answer against q. Identical inputs always produce
// identical evaluations. Blank answers are scored as-is; rejecting them is
// the caller's job.
func Evaluate(answer string, q questionbank.Question) (Evaluation, error) {
	total := len(q.Keywords)
	if total == 0 {
		return Evaluation{}, ErrNoKeywords
	}

	lower := strings.ToLower(answer)
	tokens := strings.Fields(lower)
	matched := MatchKeywords(tokens, q.Keywords)

	concept := math.Min(100, float64(len(matched))/float64(total)*100)
	detail := math.Min(100, float64(utf8.RuneCountInString(answer))/DetailSaturationChars*100)

	structure := float64(UnstructuredScore)
	if strings.ContainsAny(answer, ".?") {
		structure = StructuredScore
	}

	example := float64(NoExampleScore)
	for _, p := range examplePhrases {
		if strings.Contains(lower, p) {
			example = ExampleScore
			break
		}
	}

	// The composite uses the unrounded sub-scores; each sub-score is rounded
	// only for reporting.
	composite := concept*ConceptWeight + detail*DetailWeight + structure*StructureWeight + example*ExampleWeight

	return Evaluation{
		Score:           round(composite),
		ConceptScore:    round(concept),
		DetailScore:     round(detail),
		StructureScore:  round(structure),
		ExampleScore:    round(example),
		KeywordMatches:  len(matched),
		TotalKeywords:   total,
		MatchedKeywords: matched,
	}, nil
}

// MatchKeywords returns the keywords matched by at least one token. A keyword
// matches a token when either contains the other, so partial words and
// multi-word phrases still count. Short keywords match very loosely; this is
// the reference behaviour and is kept as-is.
func MatchKeywords(tokens []string, keywords []string) []string {
	var matched []string
	for _, kw := range keywords {
		kw = strings.ToLower(kw)
		for _, tok := range tokens {
			if strings.Contains(tok, kw) || strings.Contains(kw, tok) {
				matched = append(matched, kw)
				break
			}
		}
	}
	return matched
}

// round rounds half away from zero. Scores are never negative, so this
// matches rounding 0.5 up.
func round(v float64) int {
	return int(math.Round(v))
}
