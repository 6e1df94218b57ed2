package report

import "github.com/charmbracelet/lipgloss"

// Monokai-ish palette, matching the rest of the toolchain.
const (
	colorRed    = "#FF6188"
	colorGreen  = "#A9DC76"
	colorYellow = "#FFD866"
	colorDim    = "#727072"
	colorTitle  = "#AB9DF2"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorTitle))
	headerStyle  = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorGreen))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(colorRed))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(colorYellow))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(colorDim))
)

var colorEnabled = true

// SetColor switches styled output on or off. Reports built with color off
// are plain text, which is what tests and piped output want.
func SetColor(enabled bool) {
	colorEnabled = enabled
}

func render(style lipgloss.Style, s string) string {
	if !colorEnabled {
		return s
	}
	return style.Render(s)
}
