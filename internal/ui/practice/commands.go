package practice

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/NotMugil/interview-tui/internal/interview"
)

type questionsReadyMsg struct {
	gen       int
	questions []string
	err       error
}

type tickMsg struct {
	gen int
	t   time.Time
}

func (m *Model) prepareQuestions() tea.Cmd {
	bank := m.opts.Bank
	settings := m.opts.Settings
	n := m.opts.Questions
	rng := m.opts.Rand
	gen := m.gen
	return func() tea.Msg {
		qs, err := bank.Pick(settings, n, rng)
		return questionsReadyMsg{gen: gen, questions: qs, err: err}
	}
}

func (m *Model) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg{gen: gen, t: t}
	})
}

func finished(s *interview.Session) tea.Cmd {
	return func() tea.Msg {
		return FinishedMsg{Session: s}
	}
}

// FinishRequestedMsg asks the owner to confirm closing the session.
type FinishRequestedMsg struct{}

func requestFinish() tea.Msg {
	return FinishRequestedMsg{}
}
