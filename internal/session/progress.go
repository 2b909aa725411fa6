package session

// Progress describes how far through the bank an interview is.
type Progress struct {
	Answered int
	Total    int
}

// Percent returns the position of the current question as a percentage of
// the bank, counting the question on screen. A complete interview is 100.
func (p Progress) Percent() float64 {
	if p.Total == 0 {
		return 0
	}
	pos := min(p.Answered+1, p.Total)
	return float64(pos) / float64(p.Total) * 100
}

// Remaining returns the number of questions still to be answered.
func (p Progress) Remaining() int {
	return max(p.Total-p.Answered, 0)
}
