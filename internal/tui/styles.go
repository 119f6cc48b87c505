package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
	colorFg        = lipgloss.Color("#F9FAFB")
)

// Styles
var (
	// Title styles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	// Transcript styles
	PromptStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)

	ResultStyle = lipgloss.NewStyle().
			Foreground(colorFg)

	KindStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	SystemMessageStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Italic(true)

	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(colorError)

	// Status styles
	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#374151")).
			Foreground(colorFg).
			Padding(0, 1)

	StatusOKStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(colorError)

	// Help style
	HelpStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Input style
	FocusedInputStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(colorPrimary).
				Padding(0, 1)

	// Box style for tables printed by the CLI
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)
)

// Helper functions
func RenderTitle(title string) string {
	return TitleStyle.Render(title)
}

func RenderError(err string) string {
	return ErrorMessageStyle.Render("Fehler: " + err)
}

func RenderHelp(help string) string {
	return HelpStyle.Render(help)
}

// RenderResult renders a value with its kind in front
func RenderResult(kind, value string) string {
	return KindStyle.Render("["+kind+"] ") + ResultStyle.Render(value)
}

// RenderCheck renders a pass/fail marker
func RenderCheck(passed bool) string {
	if passed {
		return StatusOKStyle.Render("[+]")
	}
	return StatusErrorStyle.Render("[-]")
}
