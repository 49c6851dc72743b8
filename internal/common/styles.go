package common

import (
	_ "embed"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	ColorPrimary    = lipgloss.Color("#6C63FF")
	ColorSecondary  = lipgloss.Color("#7C3AED")
	ColorAccent     = lipgloss.Color("#F59E0B")
	ColorSuccess    = lipgloss.Color("#10B981")
	ColorWarning    = lipgloss.Color("#F59E0B")
	ColorDanger     = lipgloss.Color("#EF4444")
	ColorMuted      = lipgloss.Color("#4B5563")
	ColorText       = lipgloss.Color("#E5E7EB")
	ColorSubtext    = lipgloss.Color("#9CA3AF")
	ColorBorder     = lipgloss.Color("#374151")
	ColorBackground = lipgloss.Color("#0D1117")
	ColorSurface    = lipgloss.Color("#161B22")
)

// ChartColors cycles through the bars of the answer-length chart.
var ChartColors = []lipgloss.Color{
	ColorPrimary,
	ColorSuccess,
	ColorAccent,
	ColorSecondary,
	lipgloss.Color("#3B82F6"),
}

// Layouts and borders
var (
	AppStyle = lipgloss.NewStyle().
			Padding(0, 1)

	BasePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1)

	PanelStyle       = BasePanelStyle.BorderForeground(ColorBorder)
	PanelActiveStyle = BasePanelStyle.BorderForeground(ColorPrimary)

	FocusedBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(ColorPrimary).
				Padding(0, 1)

	BlurredBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(ColorBorder).
				Padding(0, 1)

	DisabledBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.HiddenBorder()).
				Padding(0, 1)

	QuestionStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(ColorPrimary).
			Foreground(ColorText).
			Padding(0, 2)

	CursorStyle   = lipgloss.NewStyle().Foreground(ColorPrimary)
	DisabledStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)
)

// Typography
var (
	BoldTextStyle = lipgloss.NewStyle().Bold(true)
	TitleStyle    = BoldTextStyle.Foreground(ColorPrimary)
	LabelStyle    = BoldTextStyle.Foreground(ColorText)
	SubtitleStyle = lipgloss.NewStyle().Foreground(ColorSubtext)
	ValueStyle    = lipgloss.NewStyle().Foreground(ColorSubtext)
	HelpStyle     = lipgloss.NewStyle().Foreground(ColorMuted)
	QuoteStyle    = HelpStyle.Italic(true)
	SuccessStyle  = BoldTextStyle.Foreground(ColorSuccess)
	WarningStyle  = BoldTextStyle.Foreground(ColorWarning)
	ErrorStyle    = BoldTextStyle.Foreground(ColorDanger)
)

// ASCII logo above the key panel
var (
	//go:embed banner.txt
	Logo      string
	LogoStyle = TitleStyle
)

// Help or Keybindings
func HelpStyles() help.Styles {
	return help.Styles{
		ShortKey:       lipgloss.NewStyle().Foreground(ColorPrimary),
		ShortDesc:      lipgloss.NewStyle().Foreground(ColorMuted),
		ShortSeparator: lipgloss.NewStyle().Foreground(ColorBorder),
		FullKey:        lipgloss.NewStyle().Foreground(ColorPrimary),
		FullDesc:       lipgloss.NewStyle().Foreground(ColorSubtext),
		FullSeparator:  lipgloss.NewStyle().Foreground(ColorBorder),
		Ellipsis:       lipgloss.NewStyle().Foreground(ColorMuted),
	}
}

func NewHelp() help.Model {
	h := help.New()
	h.ShortSeparator = " • "
	h.FullSeparator = "    "
	h.Styles = HelpStyles()
	return h
}
