package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/andretka/deskplan/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
	ColorBg     = lipgloss.Color("#282828")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// Dim renders text in the dim style.
func Dim(s string) string { return StyleDim.Render(s) }

// Bold renders text in the bold foreground style.
func Bold(s string) string { return StyleBold.Render(s) }

// StatusPill returns a colored project status label such as "● ACTIVE".
func StatusPill(status domain.ProjectStatus) string {
	label := strings.ToUpper(string(status))
	switch status {
	case domain.ProjectActive:
		return StyleBlue.Render("● " + label)
	case domain.ProjectFinished:
		return StyleGreen.Render("● " + label)
	case domain.ProjectPending:
		return StyleYellow.Render("● " + label)
	default:
		return StyleDim.Render("● " + label)
	}
}

// RoleBadge returns a colored user role label.
func RoleBadge(role domain.UserRole) string {
	return StylePurple.Render(strings.ToUpper(string(role)))
}

// TodoGlyph returns the state glyph for a todo status.
func TodoGlyph(status domain.TodoStatus) string {
	switch status {
	case domain.TodoDone:
		return StyleGreen.Render("●")
	case domain.TodoInProgress:
		return StyleYellow.Render("◐")
	case domain.TodoBlocked:
		return StyleRed.Render("✖")
	default:
		return StyleDim.Render("○")
	}
}

// InitialsBadge renders the two-letter project badge on its stable
// background color.
func InitialsBadge(initials, iconBG string) string {
	style := lipgloss.NewStyle().
		Background(lipgloss.Color(iconBG)).
		Foreground(ColorBg).
		Bold(true).
		Padding(0, 1)
	return style.Render(initials)
}
