package formatter

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rankor24/BIM-AI-Crew/internal/domain"
)

var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
)

// StatusIndicator returns a colored status string such as "● Done".
func StatusIndicator(status domain.TaskStatus) string {
	switch status {
	case domain.TaskDone:
		return StyleGreen.Render("● " + string(status))
	case domain.TaskInProgress:
		return StyleBlue.Render("● " + string(status))
	case domain.TaskOverdue:
		return StyleRed.Render("● " + string(status))
	default:
		return StyleYellow.Render("● " + string(status))
	}
}
