package common

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// panelOpts configures a bordered panel.
type panelOpts struct {
	borderColor lipgloss.Color
	titleColor  lipgloss.Color
}

// Bordered panels with inline title
func RenderPanel(title, content string, width int, heights ...int) string {
	return renderPanel(title, content, width, firstOr(heights, 0), panelOpts{
		borderColor: ColorBorder,
		titleColor:  ColorPrimary,
	})
}

func RenderActivePanel(title, content string, width int, heights ...int) string {
	return renderPanel(title, content, width, firstOr(heights, 0), panelOpts{
		borderColor: ColorPrimary,
		titleColor:  ColorPrimary,
	})
}

func RenderDimPanel(title, content string, width int, heights ...int) string {
	return renderPanel(title, content, width, firstOr(heights, 0), panelOpts{
		borderColor: lipgloss.Color("#1F2937"),
		titleColor:  ColorMuted,
	})
}

// firstOr returns the first element of s, or fallback if empty.
func firstOr(s []int, fallback int) int {
	if len(s) > 0 {
		return s[0]
	}
	return fallback
}

// clampMin returns max(v, min).
func clampMin(v, min int) int {
	if v < min {
		return min
	}
	return v
}

// repeatStyled renders ch repeated n times with style applied once.
func repeatStyled(ch string, n int, style lipgloss.Style) string {
	if n <= 0 {
		return ""
	}
	return style.Render(strings.Repeat(ch, n))
}

// renderPanel is the single internal implementation for all bordered panels.
func renderPanel(title, content string, width, height int, opts panelOpts) string {
	if width <= 0 {
		width = lipgloss.Width(content) + 4
	}
	innerW := clampMin(width-4, 1) // border(1+1) + padding(1+1)

	wrapped := lipgloss.NewStyle().Width(innerW).Render(content)
	border := lipgloss.NormalBorder()
	bdr := lipgloss.NewStyle().Foreground(opts.borderColor)

	if title == "" {
		style := PanelStyle.Width(width).BorderForeground(opts.borderColor)
		if height > 0 {
			style = style.Height(clampMin(height-2, 1))
		}
		return style.Render(wrapped)
	}

	titleStr := lipgloss.NewStyle().Bold(true).Foreground(opts.titleColor).Render(title)
	pad := clampMin(width-2-lipgloss.Width(titleStr)-4, 0)
	top := bdr.Render(border.TopLeft+border.Top+border.Top+" ") +
		titleStr +
		bdr.Render(" ") +
		repeatStyled(border.Top, pad, bdr) +
		bdr.Render(border.TopRight)

	bottom := bdr.Render(border.BottomLeft) +
		repeatStyled(border.Bottom, width-2, bdr) +
		bdr.Render(border.BottomRight)

	lines := strings.Split(wrapped, "\n")
	if height > 0 {
		innerH := clampMin(height-2, 1)
		for len(lines) < innerH {
			lines = append(lines, "")
		}
		if len(lines) > innerH {
			lines = lines[:innerH]
		}
	}

	var mid strings.Builder
	left := bdr.Render(border.Left)
	right := bdr.Render(border.Right)
	for _, line := range lines {
		gap := clampMin(innerW-lipgloss.Width(line), 0)
		mid.WriteString(left + " " + line + strings.Repeat(" ", gap) + " " + right + "\n")
	}

	return top + "\n" + mid.String() + bottom
}

// FormatClock renders d as mm:ss, rounding down to the second.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
