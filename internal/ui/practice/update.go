package practice

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/NotMugil/interview-tui/internal/common"
	apperrors "github.com/NotMugil/interview-tui/internal/errors"
	"github.com/NotMugil/interview-tui/internal/interview"
)

// Start requests a new session. It is refused while one is running and
// while no API key has been entered.
func (m *Model) Start() tea.Cmd {
	if m.InProgress() {
		return nil
	}
	if m.apiKey == "" {
		m.opts.Logger.Warnf("practice start refused: %v", apperrors.ErrNoAPIKey)
		return common.NotifyCmd(common.NotifyWarning, "Enter your API key before starting a practice session")
	}

	m.gen++
	m.state = statePreparing
	m.timeUp = false
	m.opts.Logger.Infof("preparing %d %s/%s questions", m.opts.Questions, m.opts.Settings.Round, m.opts.Settings.Difficulty)
	return tea.Batch(m.spinner.Tick, m.prepareQuestions())
}

// Finish closes the running session and emits FinishedMsg.
func (m *Model) Finish() tea.Cmd {
	if m.state != stateAnswering || m.session == nil {
		return common.NotifyCmd(common.NotifyError, apperrors.ErrNoSession.Error())
	}
	if err := m.session.Finish(); err != nil {
		return common.NotifyCmd(common.NotifyError, err.Error())
	}

	m.gen++
	m.state = stateIdle
	m.textarea.Blur()
	m.textarea.Reset()
	m.opts.Logger.Infof("session finished after %s", common.FormatClock(m.session.Elapsed(m.opts.Now())))
	return finished(m.session)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsReadyMsg:
		if msg.gen != m.gen || m.state != statePreparing {
			return m, nil
		}
		if msg.err != nil {
			return m, m.abort(msg.err)
		}
		s, err := interview.NewSession(m.opts.Settings, msg.questions, m.opts.Now())
		if err != nil {
			return m, m.abort(err)
		}
		m.session = s
		m.state = stateAnswering
		m.textarea.Reset()
		m.opts.Logger.Infof("session started with %d questions, limit %s", s.Total(), common.FormatClock(s.Duration()))

		cmds := []tea.Cmd{m.tick()}
		if m.focused {
			cmds = append(cmds, m.textarea.Focus())
		}
		return m, tea.Batch(cmds...)

	case tickMsg:
		if msg.gen != m.gen || m.state != stateAnswering {
			return m, nil
		}
		if m.session.Expired(msg.t) {
			m.timeUp = true
			return m, common.NotifyCmd(common.NotifyWarning, "Time's up! Finish the interview when you're ready.")
		}
		return m, m.tick()

	case spinner.TickMsg:
		if m.state == statePreparing {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		switch m.state {
		case stateIdle:
			if key.Matches(msg, keyStart) {
				return m, m.Start()
			}
			return m, nil
		case statePreparing:
			return m, nil
		}
		return m, m.updateAnswering(msg)
	}

	if m.state == stateAnswering {
		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) updateAnswering(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keyPrev):
		if err := m.session.Prev(); err != nil {
			return common.NotifyCmd(common.NotifyError, err.Error())
		}
		m.loadAnswer()
		return nil
	case key.Matches(msg, keyNext):
		if err := m.session.Next(); err != nil {
			return common.NotifyCmd(common.NotifyError, err.Error())
		}
		m.loadAnswer()
		return nil
	case key.Matches(msg, keyFinish):
		if m.session.HasNext() {
			return nil
		}
		return requestFinish
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	if err := m.session.SetAnswer(m.textarea.Value()); err != nil {
		return tea.Batch(cmd, common.NotifyCmd(common.NotifyError, err.Error()))
	}
	return cmd
}

func (m *Model) loadAnswer() {
	m.textarea.SetValue(m.session.Answer(m.session.Current()))
}

func (m *Model) abort(err error) tea.Cmd {
	m.state = stateIdle
	m.opts.Logger.Errorf("prepare questions: %v", err)
	return common.NotifyCmd(common.NotifyError, err.Error())
}
