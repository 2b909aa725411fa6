package candidate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCandidate() Candidate {
	return Candidate{
		Name:       "Ada Lovelace",
		Email:      "ada@example.com",
		Position:   "Data Analyst",
		Experience: ExperienceMid,
	}
}

func TestValidate_OK(t *testing.T) {
	require.NoError(t, validCandidate().Validate())
	assert.True(t, validCandidate().Ready())
}

func TestValidate_AllFieldsRequired(t *testing.T) {
	err := Candidate{}.Validate()
	var ferr *FieldError
	require.True(t, errors.As(err, &ferr))
	assert.Len(t, ferr.Problems, 4)
	assert.Contains(t, ferr.Problems, "name is required")
}

func TestValidate_Email(t *testing.T) {
	c := validCandidate()
	c.Email = "not-an-email"
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "valid email")
}

func TestValidate_ExperienceOption(t *testing.T) {
	c := validCandidate()
	c.Experience = "10+"
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of")

	for _, e := range AllExperience() {
		c.Experience = e
		assert.NoError(t, c.Validate(), "experience %q", e)
	}
}

func TestNormalize(t *testing.T) {
	c := Candidate{Name: "  Ada ", Email: " ada@example.com", Position: "Analyst ", Experience: " 6+ "}
	n := c.Normalize()
	assert.Equal(t, "Ada", n.Name)
	assert.Equal(t, "ada@example.com", n.Email)
	assert.Equal(t, ExperienceExpert, n.Experience)
	assert.True(t, n.Ready())
	assert.False(t, Candidate{Name: "   "}.Normalize().Ready())
}

func TestExperienceLabel(t *testing.T) {
	assert.Equal(t, "4-5 years", ExperienceSenior.Label())
	assert.Equal(t, "Select experience level", Experience("").Label())
}
