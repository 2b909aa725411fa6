package interview

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sheetwise/internal/session"
)

// evaluatedMsg carries the single completion event of a submission.
type evaluatedMsg struct {
	Result session.SubmitResult
}

// waitForResult blocks on the submission channel inside a command.
func waitForResult(ch <-chan session.SubmitResult) tea.Cmd {
	return func() tea.Msg {
		res, ok := <-ch
		if !ok {
			return nil
		}
		return evaluatedMsg{Result: res}
	}
}
