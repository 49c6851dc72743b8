// Package summary shows a finished practice session: every answer, the
// feedback list and an answer-length chart, with transcript export.
package summary

import (
	"fmt"
	"strings"
	"time"

	"github.com/76creates/stickers/flexbox"
	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/NotMugil/interview-tui/internal/common"
	"github.com/NotMugil/interview-tui/internal/interview"
	"github.com/NotMugil/interview-tui/internal/logging"
)

// NewInterviewMsg asks the owner to start another session with the same
// settings.
type NewInterviewMsg struct{}

type exportedMsg struct {
	path string
	err  error
}

var (
	keyExport = key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "export transcript"))
	keyNew    = key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "new interview"))
	keyBack   = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back to setup"))
)

// Model is the summary screen.
type Model struct {
	session   *interview.Session
	feedback  []string
	exportDir string
	log       logging.Logger
	now       func() time.Time
	viewport  viewport.Model
	chart     barchart.Model
	flexBox   *flexbox.FlexBox
	exported  string
	width     int
	height    int
	chartW    int
}

// New creates the summary for a finished session.
func New(s *interview.Session, exportDir string, log logging.Logger, now func() time.Time) *Model {
	if now == nil {
		now = time.Now
	}
	fb := flexbox.New(0, 0)
	row := fb.NewRow().AddCells(
		flexbox.NewCell(13, 1), // answers
		flexbox.NewCell(7, 1),  // feedback + chart
	)
	fb.AddRows([]*flexbox.Row{row})

	m := &Model{
		session:   s,
		feedback:  interview.Feedback(s),
		exportDir: exportDir,
		log:       log,
		now:       now,
		viewport:  viewport.New(60, 12),
		flexBox:   fb,
	}
	m.viewport.SetContent(m.answersContent(60))
	m.buildChart(30)
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// SetSize updates the available terminal dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

func (m *Model) HelpBindings() []key.Binding {
	return []key.Binding{keyExport, keyNew, keyBack}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case exportedMsg:
		if msg.err != nil {
			m.log.Errorf("export transcript: %v", msg.err)
			return m, common.NotifyCmd(common.NotifyError, msg.err.Error())
		}
		m.exported = msg.path
		m.log.Infof("transcript exported to %s", msg.path)
		return m, common.NotifyCmd(common.NotifySuccess, "Saved "+msg.path)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keyExport):
			return m, m.export()
		case key.Matches(msg, keyNew):
			return m, func() tea.Msg { return NewInterviewMsg{} }
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) export() tea.Cmd {
	dir := m.exportDir
	s := m.session
	at := m.now()
	return func() tea.Msg {
		path, err := interview.Export(dir, s, at)
		return exportedMsg{path: path, err: err}
	}
}

func (m *Model) answersContent(w int) string {
	var b strings.Builder
	wrap := lipgloss.NewStyle().Width(w)
	for i := 0; i < m.session.Total(); i++ {
		b.WriteString(common.LabelStyle.Render(wrap.Render(fmt.Sprintf("Question %d: %s", i+1, m.session.QuestionAt(i)))))
		b.WriteString("\n")
		answer := m.session.Answer(i)
		if strings.TrimSpace(answer) == "" {
			b.WriteString(common.HelpStyle.Render("No response provided"))
		} else {
			b.WriteString(common.ValueStyle.Render(wrap.Render(answer)))
		}
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) buildChart(w int) {
	if w < 20 {
		w = 20
	}
	m.chartW = w

	axisStyle := lipgloss.NewStyle().Foreground(common.ColorBorder)
	labelStyle := lipgloss.NewStyle().Foreground(common.ColorSubtext)

	m.chart = barchart.New(w, 10, barchart.WithStyles(axisStyle, labelStyle))
	lengths := m.session.AnswerLengths()
	total := 0
	for _, n := range lengths {
		total += n
	}
	// An all-zero chart has no scale.
	if total == 0 {
		return
	}

	var bars []barchart.BarData
	for i, n := range lengths {
		color := common.ChartColors[i%len(common.ChartColors)]
		bars = append(bars, barchart.BarData{
			Label: fmt.Sprintf("Q%d", i+1),
			Values: []barchart.BarValue{
				{Name: fmt.Sprintf("Q%d", i+1), Value: float64(n), Style: lipgloss.NewStyle().Foreground(color)},
			},
		})
	}
	m.chart.PushAll(bars)
	m.chart.Draw()
}

func (m *Model) hasChart() bool {
	for _, n := range m.session.AnswerLengths() {
		if n > 0 {
			return true
		}
	}
	return false
}

func (m *Model) View() string {
	fbW := m.width - 2
	if fbW < 50 {
		fbW = 80
	}
	fbH := m.height
	if fbH < 10 {
		fbH = 24
	}
	m.flexBox.SetWidth(fbW)
	m.flexBox.SetHeight(fbH)
	m.flexBox.ForceRecalculate()

	leftCell := m.flexBox.GetRow(0).GetCell(0)
	rightCell := m.flexBox.GetRow(0).GetCell(1)
	leftW := leftCell.GetWidth()
	rightW := rightCell.GetWidth()
	panelH := leftCell.GetHeight()
	if panelH < 8 {
		panelH = 8
	}

	if m.viewport.Width != leftW-4 {
		m.viewport.Width = leftW - 4
		m.viewport.SetContent(m.answersContent(leftW - 4))
	}
	m.viewport.Height = panelH - 2
	leftCell.SetContent(common.RenderActivePanel("Interview Summary", m.viewport.View(), leftW, panelH))

	if rightW-4 != m.chartW {
		m.buildChart(rightW - 4)
	}
	var right strings.Builder
	right.WriteString(common.SuccessStyle.Render("Great job on completing the interview!"))
	right.WriteString("\n\n")
	for _, line := range m.feedback {
		right.WriteString("- " + line + "\n")
	}
	right.WriteString("\n")
	right.WriteString(common.LabelStyle.Render("Answer length (characters)"))
	right.WriteString("\n")
	if m.hasChart() {
		right.WriteString(m.chart.View())
	} else {
		right.WriteString(common.HelpStyle.Render("No answers recorded"))
	}
	if m.exported != "" {
		right.WriteString("\n\n")
		right.WriteString(common.HelpStyle.Render("Saved to " + m.exported))
	}
	rightCell.SetContent(common.RenderPanel("Overall Feedback", right.String(), rightW, panelH))

	return common.AppStyle.Render(m.flexBox.Render())
}
