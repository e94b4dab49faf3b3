package formatter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/sufragio/internal/domain"
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
)

// Predefined lipgloss styles.
var (
	StyleGreen      = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow     = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleYellowBold = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	StyleRed        = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue       = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple     = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim        = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg         = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader     = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold       = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StateStyle returns the style for an entity state.
func StateStyle(s domain.EntityState) lipgloss.Style {
	switch s {
	case domain.StateActive:
		return StyleGreen
	case domain.StateInactive:
		return StyleDim
	default:
		return StyleYellow
	}
}

// StatePill returns a colored state indicator such as "● Activo".
func StatePill(s domain.EntityState) string {
	switch s {
	case domain.StateActive:
		return StateStyle(s).Render("● " + s.Label())
	case domain.StateInactive:
		return StateStyle(s).Render("○ " + s.Label())
	default:
		return StateStyle(s).Render(fmt.Sprintf("? %s", s))
	}
}

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// PartyStyle colors text with a party's color. Values that are not hex
// colors fall back to the foreground color.
func PartyStyle(color string) lipgloss.Style {
	color = strings.TrimSpace(color)
	if !hexColor.MatchString(color) {
		return StyleBold
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
}

// PartySwatch renders a colored square for a party.
func PartySwatch(color string) string {
	if !hexColor.MatchString(strings.TrimSpace(color)) {
		return StyleDim.Render("□")
	}
	return PartyStyle(color).Render("■")
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
