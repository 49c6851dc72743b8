package common

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestFormatClock(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00"},
		{59*time.Second + 900*time.Millisecond, "00:59"},
		{3 * time.Minute, "03:00"},
		{5*time.Minute - time.Second, "04:59"},
		{-time.Second, "00:00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatClock(tt.in), tt.in.String())
	}
}

func TestConfirmHandleKey(t *testing.T) {
	tests := []struct {
		name      string
		keys      []string
		confirmed bool
		active    bool
	}{
		{"enter defaults to no", []string{"enter"}, false, false},
		{"y confirms", []string{"y"}, true, false},
		{"n cancels", []string{"n"}, false, false},
		{"esc cancels", []string{"esc"}, false, false},
		{"move to yes then enter", []string{"left", "enter"}, true, false},
		{"move back to no", []string{"left", "right", "enter"}, false, false},
		{"other keys keep dialog open", []string{"x"}, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewConfirm("Sure?", ConfirmResetKey)
			var confirmed bool
			for _, k := range tt.keys {
				confirmed = c.HandleKey(k)
			}
			assert.Equal(t, tt.confirmed, confirmed)
			assert.Equal(t, tt.active, c.Active)
		})
	}
}

func TestRenderPanelTitle(t *testing.T) {
	out := ansi.Strip(RenderPanel("API Key", "body", 30))
	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[0], "API Key")
	assert.Contains(t, out, "body")
	for _, l := range lines {
		assert.Equal(t, 30, ansi.StringWidth(l), l)
	}
}

func TestConfirmOverlayShowsMessage(t *testing.T) {
	out := ansi.Strip(RenderConfirmOverlay("Clear the API key?", 1, 50))
	assert.Contains(t, out, "Clear the API key?")
	assert.Contains(t, out, "Yes")
	assert.Contains(t, out, "No")
}
