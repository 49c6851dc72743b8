package practice

import (
	"fmt"
	"strings"

	"github.com/NotMugil/interview-tui/internal/common"
	"github.com/NotMugil/interview-tui/internal/interview"
)

func (m *Model) caption() string {
	s := m.opts.Settings
	return common.SubtitleStyle.Render(fmt.Sprintf("%s • %s Level", s.Round, s.Difficulty))
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(common.TitleStyle.Render("Practice Session"))
	b.WriteString("\n")
	b.WriteString(m.caption())
	b.WriteString("\n\n")

	switch m.state {
	case stateIdle:
		b.WriteString(m.idleView())
	case statePreparing:
		b.WriteString(fmt.Sprintf("  %s Preparing your interview questions...\n", m.spinner.View()))
	case stateAnswering:
		b.WriteString(m.answeringView())
	}

	return common.AppStyle.Render(b.String())
}

func (m *Model) idleView() string {
	var b strings.Builder
	s := m.opts.Settings

	b.WriteString(common.LabelStyle.Render("Role: ") + common.ValueStyle.Render(s.RoleOrDefault()))
	b.WriteString("\n")
	b.WriteString(common.LabelStyle.Render("Company: ") + common.ValueStyle.Render(s.CompanyOrDefault()))
	b.WriteString("\n")
	b.WriteString(common.LabelStyle.Render("Questions: ") +
		common.ValueStyle.Render(fmt.Sprintf("%d, %s time limit", m.opts.Questions, common.FormatClock(interview.Duration(s.Difficulty)))))
	b.WriteString("\n\n")

	if m.apiKey == "" {
		b.WriteString(common.WarningStyle.Render("Add your API key above before starting your practice session."))
	} else {
		b.WriteString(common.SuccessStyle.Render("API key entered. Press enter to start practicing."))
	}

	if m.session != nil && m.session.Finished() {
		b.WriteString("\n\n")
		b.WriteString(common.HelpStyle.Render(fmt.Sprintf("Last session: %d questions", m.session.Total())))
	}
	return b.String()
}

func (m *Model) answeringView() string {
	var b strings.Builder
	s := m.session
	now := m.opts.Now()

	clock := "Time remaining " + common.FormatClock(s.Remaining(now))
	if m.timeUp || s.Expired(now) {
		clock = common.WarningStyle.Render("Time's up")
	}
	b.WriteString(m.timer.ViewAs(s.Progress(now)))
	b.WriteString("  ")
	b.WriteString(common.ValueStyle.Render(clock))
	b.WriteString("\n\n")

	b.WriteString(common.LabelStyle.Render(fmt.Sprintf("Question %d of %d", s.Current()+1, s.Total())))
	b.WriteString("\n")
	b.WriteString(common.QuestionStyle.Render(s.Question()))
	b.WriteString("\n\n")

	b.WriteString(common.LabelStyle.Render("Your Response"))
	b.WriteString("\n")
	b.WriteString(m.textarea.View())
	return b.String()
}
