package app

import (
	"math/rand"
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NotMugil/interview-tui/internal/common"
	"github.com/NotMugil/interview-tui/internal/interview"
	"github.com/NotMugil/interview-tui/internal/ui/apikey"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

var t0 = time.Date(2026, 10, 17, 10, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T, questions int) *Model {
	t.Helper()
	bank, err := interview.DefaultBank()
	require.NoError(t, err)
	return New(Options{
		Bank: bank,
		Settings: interview.Settings{
			Role:       "Software Engineer",
			Round:      interview.RoundWarmUp,
			Difficulty: interview.DifficultyBeginner,
		},
		Questions: questions,
		ExportDir: t.TempDir(),
		Now:       func() time.Time { return t0 },
		Rand:      rand.New(rand.NewSource(3)),
	})
}

func press(m *Model, k tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: k})
	return cmd
}

func typeRunes(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// run executes cmd and feeds the resulting messages back into m, following
// batches. Commands returned by those updates are executed up to depth
// levels; timer and blink commands are never reached in these tests.
func run(m *Model, cmd tea.Cmd, depth ...int) {
	d := 1
	if len(depth) > 0 {
		d = depth[0]
	}
	if cmd == nil || d < 1 {
		return
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			run(m, c, d)
		}
		return
	}
	_, next := m.Update(msg)
	run(m, next, d-1)
}

func view(m *Model) string {
	return ansi.Strip(m.View())
}

func TestKeyStartsEmpty(t *testing.T) {
	m := newTestApp(t, 1)
	out := view(m)

	assert.Equal(t, "", m.APIKey())
	assert.Contains(t, out, apikey.Label)
	assert.Contains(t, out, apikey.Placeholder)
	assert.Contains(t, out, apikey.Hint)
	assert.NotContains(t, out, "••")
}

func TestTypingUpdatesOwner(t *testing.T) {
	m := newTestApp(t, 1)
	typeRunes(m, "sk-live-123")

	assert.Equal(t, "sk-live-123", m.APIKey())
	out := view(m)
	assert.Contains(t, out, strings.Repeat("•", len("sk-live-123")))
	assert.NotContains(t, out, "sk-live")
	assert.Equal(t, m.View(), m.View())
}

func TestPasteUpdatesOwner(t *testing.T) {
	m := newTestApp(t, 1)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("AIza-pasted"), Paste: true})
	assert.Equal(t, "AIza-pasted", m.APIKey())
}

func TestKeyIsForwardedToPractice(t *testing.T) {
	m := newTestApp(t, 1)
	assert.Contains(t, view(m), "Add your API key above")

	typeRunes(m, "k")
	assert.Contains(t, view(m), "API key entered")

	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "", m.APIKey())
	assert.Contains(t, view(m), "Add your API key above")
}

func TestResetKeyNeedsConfirmation(t *testing.T) {
	m := newTestApp(t, 1)
	typeRunes(m, "secret")

	press(m, tea.KeyCtrlR)
	require.True(t, m.confirm.Active)
	assert.Contains(t, view(m), "Clear the API key?")
	typeRunes(m, "n")
	assert.False(t, m.confirm.Active)
	assert.Equal(t, "secret", m.APIKey())

	press(m, tea.KeyCtrlR)
	cmd := func() tea.Cmd {
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
		return cmd
	}()
	assert.Equal(t, "", m.APIKey())
	assert.Contains(t, view(m), apikey.Placeholder)
	require.NotNil(t, cmd)

	// Typing after a reset starts from empty.
	typeRunes(m, "new")
	assert.Equal(t, "new", m.APIKey())
}

func TestResetKeyIgnoredWhenEmpty(t *testing.T) {
	m := newTestApp(t, 1)
	press(m, tea.KeyCtrlR)
	assert.False(t, m.confirm.Active)
}

func TestEnterMovesFocusToPractice(t *testing.T) {
	m := newTestApp(t, 1)
	typeRunes(m, "abc")
	press(m, tea.KeyEnter)

	assert.Equal(t, focusPractice, m.focus)
	assert.Equal(t, "abc", m.APIKey())
	assert.False(t, m.keyInput.Focused())

	press(m, tea.KeyTab)
	assert.Equal(t, focusKey, m.focus)
}

func startSession(t *testing.T, m *Model) {
	t.Helper()
	press(m, tea.KeyTab)
	require.Equal(t, focusPractice, m.focus)
	run(m, press(m, tea.KeyEnter))
	require.True(t, m.practice.InProgress())
	require.NotNil(t, m.practice.Session())
}

func TestKeyLockedDuringSession(t *testing.T) {
	m := newTestApp(t, 1)
	typeRunes(m, "k")
	startSession(t, m)

	assert.True(t, m.keyProps().Disabled)
	assert.Contains(t, view(m), "(locked)")

	typeRunes(m, "my answer")
	assert.Equal(t, "k", m.APIKey())
	assert.Equal(t, "my answer", m.practice.Session().Answer(0))

	press(m, tea.KeyTab)
	assert.Equal(t, focusPractice, m.focus)

	cmd := press(m, tea.KeyCtrlR)
	assert.False(t, m.confirm.Active)
	assert.Equal(t, "k", m.APIKey())
	require.NotNil(t, cmd)
}

func TestFinishShowsSummaryThenBack(t *testing.T) {
	m := newTestApp(t, 1)
	typeRunes(m, "k")
	startSession(t, m)
	typeRunes(m, "answer")

	run(m, press(m, tea.KeyCtrlF))
	require.True(t, m.confirm.Active)
	assert.Equal(t, common.ConfirmFinish, m.confirm.Action)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	run(m, cmd)
	assert.False(t, m.practice.InProgress())
	require.True(t, m.onSummary())
	assert.Contains(t, view(m), "Interview Summary")
	assert.False(t, m.keyProps().Disabled)
	assert.Equal(t, "k", m.APIKey())

	press(m, tea.KeyEsc)
	assert.False(t, m.onSummary())
	assert.Contains(t, view(m), "Last session: 1 questions")
}

func TestNewInterviewFromSummary(t *testing.T) {
	m := newTestApp(t, 1)
	typeRunes(m, "k")
	startSession(t, m)
	first := m.practice.Session()

	run(m, press(m, tea.KeyCtrlF))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	run(m, cmd)
	require.True(t, m.onSummary())

	run(m, press(m, tea.KeyCtrlN), 2)
	assert.False(t, m.onSummary())
	assert.True(t, m.practice.InProgress())
	assert.NotSame(t, first, m.practice.Session())
}

func TestWindowResize(t *testing.T) {
	m := newTestApp(t, 1)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, 100, m.width)
	assert.Contains(t, view(m), apikey.Hint)
}
