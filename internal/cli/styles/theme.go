// Package styles provides the lipgloss styling for desklet's CLI output.
package styles

import "github.com/charmbracelet/lipgloss"

// Dark terminal palette.
const (
	colorBackground = lipgloss.Color("#101014")
	colorRaised     = lipgloss.Color("#2a2a31")
	colorText       = lipgloss.Color("#ededf0")
	colorMuted      = lipgloss.Color("#8b8b96")
	colorAccent     = lipgloss.Color("#f5b94a")
	colorBorder     = lipgloss.Color("#3a3a42")
	colorError      = lipgloss.Color("#ef4444")
	colorWarning    = lipgloss.Color("#f59e0b")
	colorSuccess    = lipgloss.Color("#4ade80")
)

// Theme bundles the colors and styles shared by commands and the setup wizard.
type Theme struct {
	Background     lipgloss.Color
	SurfaceVariant lipgloss.Color
	Text           lipgloss.Color
	Muted          lipgloss.Color
	Accent         lipgloss.Color
	Border         lipgloss.Color
	Error          lipgloss.Color
	Success        lipgloss.Color

	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	Badge      lipgloss.Style
	BadgeMuted lipgloss.Style

	Input        lipgloss.Style
	InputFocused lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	Box       lipgloss.Style
	BoxHeader lipgloss.Style
}

func NewTheme() *Theme {
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
	field := func(border lipgloss.Color) lipgloss.Style {
		return fg(colorText).BorderStyle(lipgloss.RoundedBorder()).BorderForeground(border).Padding(0, 1)
	}

	return &Theme{
		Background:     colorBackground,
		SurfaceVariant: colorRaised,
		Text:           colorText,
		Muted:          colorMuted,
		Accent:         colorAccent,
		Border:         colorBorder,
		Error:          colorError,
		Success:        colorSuccess,

		Title:        fg(colorText).Bold(true),
		Subtitle:     fg(colorMuted).Bold(true),
		Normal:       fg(colorText),
		Subtle:       fg(colorMuted),
		Highlight:    fg(colorAccent).Bold(true),
		ErrorStyle:   fg(colorError),
		WarningStyle: fg(colorWarning),
		SuccessStyle: fg(colorSuccess),

		Badge:      fg(colorBackground).Background(colorAccent).Padding(0, 1),
		BadgeMuted: fg(colorText).Background(colorRaised).Padding(0, 1),

		Input:        field(colorBorder),
		InputFocused: field(colorAccent),

		HelpKey:  fg(colorAccent),
		HelpDesc: fg(colorMuted),

		Box: lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(colorBorder).Padding(1, 2),
		BoxHeader: fg(colorText).Bold(true).
			BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(colorBorder).
			MarginBottom(1),
	}
}

func (t *Theme) AccentBadge(text string) string { return t.Badge.Render(text) }

func (t *Theme) MutedBadge(text string) string { return t.BadgeMuted.Render(text) }

// StatusBadge renders text as a badge with explicit colors.
func (t *Theme) StatusBadge(text string, fg, bg lipgloss.Color) string {
	return lipgloss.NewStyle().Foreground(fg).Background(bg).Padding(0, 1).Render(text)
}
