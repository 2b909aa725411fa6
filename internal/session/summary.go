package session

import "github.com/abhisek/sheetwise/internal/report"

// Report aggregates the responses of a complete session and stamps the
// result with the session and candidate details.
func (s *Session) Report() (*report.Report, error) {
	if !s.IsComplete() {
		return nil, ErrIncomplete
	}

	r, err := report.Aggregate(s.Responses())
	if err != nil {
		return nil, err
	}
	r.SessionID = s.id
	r.Candidate = s.candidate
	r.GeneratedAt = s.now()
	return r, nil
}
