package questionbank

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validBankYAML = `version: v1.2.0
questions:
  - id: 1
    category: Formulas
    difficulty: Basic
    text: What does SUM do?
    keywords: [sum, range]
    max_score: 10
  - id: 2
    category: Charts
    difficulty: Advanced
    text: When would you use a combo chart?
    keywords: [axis, combo chart]
    max_score: 15
`

func TestParse_ValidYAML(t *testing.T) {
	b, err := Parse([]byte(validBankYAML))
	require.NoError(t, err)
	assert.Equal(t, "v1.2.0", b.Version())
	assert.Equal(t, 2, b.Len())

	q, _ := b.At(1)
	assert.Equal(t, DifficultyAdvanced, q.Difficulty)
	assert.Equal(t, []string{"axis", "combo chart"}, q.Keywords)
	assert.Equal(t, 15, q.MaxScore)
}

func TestParse_ValidJSON(t *testing.T) {
	data := `{"version":"v1.0.0","questions":[{"id":1,"category":"Foundation","difficulty":"Basic","text":"What is a cell?","keywords":["cell"],"max_score":5}]}`
	b, err := Parse([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, 1, b.Len())
}

func TestParse_RejectsMajorVersion(t *testing.T) {
	data := `{"version":"v2.0.0","questions":[{"id":1,"category":"Foundation","difficulty":"Basic","text":"What is a cell?","keywords":["cell"],"max_score":5}]}`
	_, err := Parse([]byte(data))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedVersion))
}

func TestParse_RejectsNonSemver(t *testing.T) {
	data := `{"version":"latest","questions":[{"id":1,"category":"Foundation","difficulty":"Basic","text":"What is a cell?","keywords":["cell"],"max_score":5}]}`
	_, err := Parse([]byte(data))
	assert.True(t, errors.Is(err, ErrUnsupportedVersion))
}

func TestParse_SchemaRejectsMissingKeywords(t *testing.T) {
	data := `{"version":"v1.0.0","questions":[{"id":1,"category":"Foundation","difficulty":"Basic","text":"What is a cell?","max_score":5}]}`
	_, err := Parse([]byte(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema")
}

func TestParse_SchemaRejectsUnknownDifficulty(t *testing.T) {
	data := `{"version":"v1.0.0","questions":[{"id":1,"category":"Foundation","difficulty":"Expert","text":"What is a cell?","keywords":["cell"],"max_score":5}]}`
	_, err := Parse([]byte(data))
	assert.Error(t, err)
}

func TestParse_RunsBankValidation(t *testing.T) {
	// Schema-valid, but difficulty decreases and a keyword is upper-case.
	data := `version: v1.0.0
questions:
  - {id: 1, category: A, difficulty: Advanced, text: x, keywords: [Upper], max_score: 1}
  - {id: 2, category: B, difficulty: Basic, text: y, keywords: [ok], max_score: 1}
`
	_, err := Parse([]byte(data))
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "got %v", err)
	assert.Len(t, verr.Problems, 2)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validBankYAML), 0o600))

	b, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Formulas", "Charts"}, b.Categories())
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
