package app

import (
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kevm/bubbleo/navstack"
	"github.com/kevm/bubbleo/window"
	zone "github.com/lrstanley/bubblezone"
	overlay "github.com/rmhubbert/bubbletea-overlay"
	"go.dalton.dog/bubbleup"

	"github.com/NotMugil/interview-tui/internal/common"
	"github.com/NotMugil/interview-tui/internal/interview"
	"github.com/NotMugil/interview-tui/internal/logging"
	"github.com/NotMugil/interview-tui/internal/ui/apikey"
	"github.com/NotMugil/interview-tui/internal/ui/practice"
	"github.com/NotMugil/interview-tui/internal/ui/summary"
)

// Screen is an interface that all screens implement.
type Screen interface {
	Init() tea.Cmd
	Update(tea.Msg) (tea.Model, tea.Cmd)
	View() string
}

// sizable is implemented by screens that can adapt to terminal dimensions.
type sizable interface {
	SetSize(w, h int)
}

type focus int

const (
	focusKey focus = iota
	focusPractice
)

// headerHeight is the logo plus the key panel.
const headerHeight = 14

// Options configures the root model.
type Options struct {
	Bank      *interview.Bank
	Settings  interview.Settings
	Questions int
	ExportDir string
	Logger    logging.Logger
	Now       func() time.Time
	Rand      *rand.Rand
}

// Model is the root application model. It owns the API key for as long as
// the program runs: the key starts empty, changes only through the key
// field's change callback or an explicit reset, and is handed to the
// practice screen on every change.
type Model struct {
	apiKey    string
	keyInput  apikey.Model
	practice  *practice.Model
	nav       *navstack.Model
	win       *window.Model
	keys      common.KeyMap
	help      help.Model
	focus     focus
	confirm   common.ConfirmState
	alert     bubbleup.AlertModel
	log       logging.Logger
	exportDir string
	now       func() time.Time
	width     int
	height    int
}

// New creates the root application model.
func New(opts Options) *Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	w := window.New(120, 30, 0, 0)
	n := navstack.New(&w)

	alertModel := bubbleup.NewAlertModel(50, false, 3*time.Second).
		WithMinWidth(20).
		WithPosition(bubbleup.TopRightPosition).
		WithUnicodePrefix()

	alertModel.RegisterNewAlertType(bubbleup.AlertDefinition{
		Key:       string(common.NotifySuccess),
		ForeColor: "#10B981", // ColorSuccess
		Prefix:    "✔",  // checkmark
	})

	p := practice.New(practice.Options{
		Bank:      opts.Bank,
		Settings:  opts.Settings,
		Questions: opts.Questions,
		Logger:    opts.Logger,
		Now:       opts.Now,
		Rand:      opts.Rand,
	})

	m := &Model{
		keyInput:  apikey.New(),
		practice:  p,
		nav:       &n,
		win:       &w,
		keys:      common.Keys,
		help:      common.NewHelp(),
		focus:     focusKey,
		alert:     alertModel,
		log:       opts.Logger,
		exportDir: opts.ExportDir,
		now:       opts.Now,
	}
	m.keyInput.Focus()
	_ = m.nav.Push(navstack.NavigationItem{Title: "Practice", Model: p})
	return m
}

func (m *Model) Init() tea.Cmd {
	m.log.Infof("started with %s/%s, key empty", m.practice.Settings().Round, m.practice.Settings().Difficulty)
	return textinput.Blink
}

// APIKey returns the current key.
func (m *Model) APIKey() string {
	return m.apiKey
}

// setAPIKey is the key field's change callback.
func (m *Model) setAPIKey(v string) {
	m.apiKey = v
	m.practice.SetAPIKey(v)
	m.log.Debugf("api key changed (empty=%t)", v == "")
}

// keyProps builds the key field's props for the current state. The key is
// locked while an interview is running.
func (m *Model) keyProps() apikey.Props {
	return apikey.Props{
		APIKey:         m.apiKey,
		OnAPIKeyChange: m.setAPIKey,
		Disabled:       m.practice.InProgress(),
	}
}

func (m *Model) resetKey() {
	m.setAPIKey("")
	m.log.Infof("api key cleared")
}

func (m *Model) contentHeight() int {
	overhead := headerHeight + 1
	if m.help.ShowAll {
		overhead++
	}
	return m.height - overhead
}

// pushScreen pushes a new screen onto the navstack.
func (m *Model) pushScreen(title string, screen Screen) tea.Cmd {
	if s, ok := screen.(sizable); ok && m.width > 0 {
		s.SetSize(m.width, m.contentHeight())
	}
	return m.nav.Push(navstack.NavigationItem{Title: title, Model: screen})
}

// popToPractice pops everything above the practice screen.
func (m *Model) popToPractice() tea.Cmd {
	var cmds []tea.Cmd
	for len(m.nav.StackSummary()) > 1 {
		cmds = append(cmds, m.nav.Pop())
	}
	m.practice.SetSize(m.width, m.contentHeight())
	return tea.Batch(cmds...)
}

func (m *Model) onSummary() bool {
	return len(m.nav.StackSummary()) > 1
}

func (m *Model) focusKeyInput() tea.Cmd {
	m.focus = focusKey
	m.practice.Blur()
	return m.keyInput.Focus()
}

func (m *Model) focusPracticeScreen() tea.Cmd {
	m.focus = focusPractice
	m.keyInput.Blur()
	return m.practice.Focus()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	outAlert, alertCmd := m.alert.Update(msg)
	m.alert = outAlert.(bubbleup.AlertModel)

	switch msg := msg.(type) {
	case common.NotifyMsg:
		return m, tea.Batch(alertCmd, m.alert.NewAlertCmd(string(msg.Level), msg.Message))

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.win.Width = msg.Width
		m.win.Height = msg.Height
		m.help.Width = msg.Width
		m.keyInput.SetWidth(min(msg.Width-10, 60))
		if top := m.nav.Top(); top != nil {
			if s, ok := top.Model.(sizable); ok {
				s.SetSize(msg.Width, m.contentHeight())
			}
		}
		return m, alertCmd

	case practice.FinishRequestedMsg:
		m.confirm = common.NewConfirm("Finish the interview and see your summary?", common.ConfirmFinish)
		return m, alertCmd

	case practice.FinishedMsg:
		screen := summary.New(msg.Session, m.exportDir, m.log, m.now)
		return m, tea.Batch(alertCmd, m.pushScreen("Summary", screen))

	case summary.NewInterviewMsg:
		popCmd := m.popToPractice()
		focusCmd := m.focusPracticeScreen()
		return m, tea.Batch(alertCmd, popCmd, focusCmd, m.practice.Start())

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft &&
			zone.Get(apikey.ZoneID).InBounds(msg) && !m.keyProps().Disabled {
			return m, tea.Batch(alertCmd, m.focusKeyInput())
		}
		return m, tea.Batch(alertCmd, m.nav.Update(msg))

	case tea.KeyMsg:
		return m, tea.Batch(alertCmd, m.handleKey(msg))
	}

	// Blink, paste, spinner and timer messages go to both regions; each
	// ignores what is not addressed to it.
	keyCmd := m.keyInput.Update(m.keyProps(), msg)
	return m, tea.Batch(alertCmd, keyCmd, m.nav.Update(msg))
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Quit) {
		m.log.Infof("quit")
		return tea.Quit
	}

	if m.confirm.Active {
		action := m.confirm.Action
		if !m.confirm.HandleKey(msg.String()) {
			return nil
		}
		switch action {
		case common.ConfirmResetKey:
			m.resetKey()
			return common.NotifyCmd(common.NotifyInfo, "API key cleared")
		case common.ConfirmFinish:
			return m.practice.Finish()
		}
		return nil
	}

	inProgress := m.practice.InProgress()
	if inProgress && m.focus == focusKey {
		m.focusPracticeScreen()
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	case key.Matches(msg, m.keys.Focus):
		if inProgress {
			return nil
		}
		if m.focus == focusKey {
			return m.focusPracticeScreen()
		}
		return m.focusKeyInput()
	case key.Matches(msg, m.keys.ResetKey):
		if inProgress {
			return common.NotifyCmd(common.NotifyWarning, "The API key is locked while an interview is running")
		}
		if m.apiKey == "" {
			return nil
		}
		m.confirm = common.NewConfirm("Clear the API key?", common.ConfirmResetKey)
		return nil
	case key.Matches(msg, m.keys.Back) && m.onSummary():
		return m.popToPractice()
	}

	if m.focus == focusKey {
		if msg.Type == tea.KeyEnter {
			return m.focusPracticeScreen()
		}
		return m.keyInput.Update(m.keyProps(), msg)
	}
	return m.nav.Update(msg)
}

func (m *Model) View() string {
	header := common.LogoStyle.Render(strings.TrimRight(common.Logo, "\n"))

	props := m.keyProps()
	keyView := m.keyInput.View(props)
	var keyPanel string
	switch {
	case props.Disabled:
		keyPanel = common.RenderDimPanel("API Key", keyView, m.panelWidth())
	case m.focus == focusKey:
		keyPanel = common.RenderActivePanel("API Key", keyView, m.panelWidth())
	default:
		keyPanel = common.RenderPanel("API Key", keyView, m.panelWidth())
	}

	var content string
	if top := m.nav.Top(); top != nil {
		content = top.Model.View()
	}

	output := lipgloss.JoinVertical(lipgloss.Left,
		header,
		keyPanel,
		content,
		m.renderHelp(),
	)
	output = common.AppStyle.Render(output)

	if m.confirm.Active {
		fg := common.RenderConfirmOverlay(m.confirm.Message, m.confirm.Cursor, 50)
		output = overlay.Composite(fg, output, overlay.Center, overlay.Center, 0, 0)
	}

	output = m.alert.Render(output)

	return zone.Scan(output)
}

func (m *Model) panelWidth() int {
	w := m.width - 2
	if w < 40 {
		w = 80
	}
	return w
}

func (m *Model) renderHelp() string {
	var pageBindings []key.Binding
	if m.focus == focusPractice {
		if top := m.nav.Top(); top != nil {
			if hb, ok := top.Model.(common.HelpBindable); ok {
				pageBindings = hb.HelpBindings()
			}
		}
	}

	if m.help.ShowAll {
		groups := [][]key.Binding{pageBindings}
		groups = append(groups, m.keys.FullHelp()...)
		return m.help.FullHelpView(groups)
	}

	bindings := make([]key.Binding, 0, len(pageBindings)+3)
	bindings = append(bindings, pageBindings...)
	bindings = append(bindings, m.keys.ShortHelp()...)
	return m.help.ShortHelpView(bindings)
}
