// Package ui renders rulecat terminal output: styled cards on a terminal,
// plain lines when colors are off or no TTY is attached.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Brand palette (dark variants). Light variants are paired in the styles.
const (
	ColorPrimary   = "#DA7756"
	ColorSecondary = "#7C3AED"
	ColorSuccess   = "#10B981"
	ColorError     = "#EF4444"
	ColorText      = "#E5E7EB"
	ColorMuted     = "#6B7280"
	ColorBorder    = "#4B5563"
)

var (
	primaryStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: ColorPrimary})
	borderStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: ColorBorder})
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: ColorSuccess})
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: ColorError})
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: ColorMuted})
)

// Theme selects between styled and plain rendering.
type Theme struct {
	NoColor bool
}

// NewTheme returns a Theme. Plain rendering is used when noColor is set
// or when hm reports headless mode.
func NewTheme(noColor bool, hm *HeadlessManager) *Theme {
	return &Theme{NoColor: noColor || (hm != nil && hm.IsHeadless())}
}

func (t *Theme) cardStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderStyle.GetForeground()).
		Padding(0, 2)
}

// Card renders content inside a rounded border box with a styled title.
func (t *Theme) Card(title, content string) string {
	if t.NoColor {
		return title + "\n" + content
	}
	body := primaryStyle.Bold(true).Render(title) + "\n\n" + content
	return t.cardStyle().Render(body)
}

// SuccessCard renders a success message with optional detail lines.
func (t *Theme) SuccessCard(title string, details ...string) string {
	if t.NoColor {
		var b strings.Builder
		b.WriteString("OK " + title)
		for _, d := range details {
			b.WriteString("\n  " + d)
		}
		return b.String()
	}

	var body strings.Builder
	body.WriteString(successStyle.Render("✓") + " " + title)
	if len(details) > 0 {
		body.WriteString("\n\n")
		body.WriteString(strings.Join(details, "\n"))
	}
	return t.cardStyle().Render(body.String())
}

// Warning renders a single warning line.
func (t *Theme) Warning(msg string) string {
	if t.NoColor {
		return "WARN " + msg
	}
	return errorStyle.Render("!") + " " + msg
}

// Muted renders secondary text.
func (t *Theme) Muted(s string) string {
	if t.NoColor {
		return s
	}
	return mutedStyle.Render(s)
}

// OrderTable renders rows of (order key, file name) aligned on the key.
func (t *Theme) OrderTable(rows [][2]string) string {
	width := 0
	for _, r := range rows {
		width = max(width, len(r[0]))
	}
	lines := make([]string, len(rows))
	for i, r := range rows {
		key := fmt.Sprintf("%*s", width, r[0])
		if !t.NoColor {
			key = primaryStyle.Render(key)
		}
		lines[i] = fmt.Sprintf("%3d. %s  %s", i+1, key, r[1])
	}
	return strings.Join(lines, "\n")
}
