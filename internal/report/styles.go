package report

import "github.com/charmbracelet/lipgloss"

// Terminal styles shared by the reporter.
// Lipgloss degrades colors based on terminal capabilities.
var (
	// StyleCyan is used for file names and diff hunk headers.
	StyleCyan = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	// StyleRed is used for removed lines and check failures.
	StyleRed = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	// StyleYellow is used for files that need formatting.
	StyleYellow = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	// StyleGreen is used for added lines and success messages.
	StyleGreen = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	// StyleGray is used for hints and unchanged summaries.
	StyleGray = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	// StyleBold is used for diff file headers.
	StyleBold = lipgloss.NewStyle().Bold(true)
)

// RenderStyle applies a lipgloss style to text when colors are enabled.
// When useColors is false, the text is returned unmodified.
func RenderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}
