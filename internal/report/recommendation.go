package report

// Recommendation is the hiring verdict derived from the overall score.
type Recommendation string

const (
	StrongHire     Recommendation = "Strong Hire"
	Hire           Recommendation = "Hire"
	Consider       Recommendation = "Consider"
	NotRecommended Recommendation = "Not Recommended"
)

// Recommend maps an overall score to a recommendation.
func Recommend(overall int) Recommendation {
	switch {
	case overall >= 80:
		return StrongHire
	case overall >= 65:
		return Hire
	case overall >= 50:
		return Consider
	default:
		return NotRecommended
	}
}

// Positive reports whether the verdict favours hiring.
func (r Recommendation) Positive() bool {
	return r == StrongHire || r == Hire
}
