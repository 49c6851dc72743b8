package practice

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/NotMugil/interview-tui/internal/common"
	"github.com/NotMugil/interview-tui/internal/interview"
	"github.com/NotMugil/interview-tui/internal/logging"
)

// FinishedMsg is sent when the user closes a session. The root model shows
// the summary for it.
type FinishedMsg struct {
	Session *interview.Session
}

type state int

const (
	stateIdle state = iota
	statePreparing
	stateAnswering
)

// Options configures a practice screen.
type Options struct {
	Bank      *interview.Bank
	Settings  interview.Settings
	Questions int
	Logger    logging.Logger
	Now       func() time.Time
	Rand      *rand.Rand
}

// Model is the practice session screen. It receives the API key from its
// owner through SetAPIKey and never modifies it.
type Model struct {
	opts     Options
	apiKey   string
	session  *interview.Session
	textarea textarea.Model
	timer    progress.Model
	spinner  spinner.Model
	state    state
	focused  bool
	timeUp   bool
	gen      int
	width    int
	height   int
}

var (
	keyStart  = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start practice"))
	keyPrev   = key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "previous"))
	keyNext   = key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "next"))
	keyFinish = key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "finish interview"))
)

// New creates a new practice screen.
func New(opts Options) *Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Questions <= 0 {
		opts.Questions = interview.DefaultQuestions
	}

	ta := textarea.New()
	ta.Placeholder = "Type your answer here..."
	ta.ShowLineNumbers = false
	ta.SetWidth(60)
	ta.SetHeight(8)
	ta.Cursor.Style = common.CursorStyle

	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(common.SpinnerStyle),
	)

	return &Model{
		opts:     opts,
		textarea: ta,
		timer:    progress.New(progress.WithSolidFill(string(common.ColorPrimary)), progress.WithoutPercentage()),
		spinner:  s,
		state:    stateIdle,
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// SetAPIKey receives the current key from the owning model.
func (m *Model) SetAPIKey(k string) {
	m.apiKey = k
}

// SetSize updates the available terminal dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	if w > 8 {
		m.textarea.SetWidth(w - 8)
		m.timer.Width = w - 8
	}
}

func (m *Model) Focus() tea.Cmd {
	m.focused = true
	if m.state == stateAnswering {
		return m.textarea.Focus()
	}
	return nil
}

func (m *Model) Blur() {
	m.focused = false
	m.textarea.Blur()
}

// InProgress is true from the moment a session is requested until it is
// finished.
func (m *Model) InProgress() bool {
	return m.state == statePreparing || m.state == stateAnswering
}

// InputFocused returns true when the answer box is being edited.
func (m *Model) InputFocused() bool {
	return m.focused && m.state == stateAnswering
}

// Session returns the running session, or nil.
func (m *Model) Session() *interview.Session {
	return m.session
}

func (m *Model) HelpBindings() []key.Binding {
	switch m.state {
	case stateIdle:
		return []key.Binding{keyStart}
	case stateAnswering:
		var b []key.Binding
		if m.session.HasPrev() {
			b = append(b, keyPrev)
		}
		if m.session.HasNext() {
			b = append(b, keyNext)
		} else {
			b = append(b, keyFinish)
		}
		return b
	}
	return nil
}

// Settings returns the interview settings this screen starts sessions with.
func (m *Model) Settings() interview.Settings {
	return m.opts.Settings
}
