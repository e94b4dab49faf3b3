package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// Names maps section and election ids to display names. Unknown ids render
// as "#<id>".
type Names struct {
	Sections  map[int64]string
	Elections map[int64]string
}

func (n Names) Section(id int64) string {
	return lookupName(n.Sections, id)
}

func (n Names) Election(id int64) string {
	return lookupName(n.Elections, id)
}

func lookupName(m map[int64]string, id int64) string {
	if id <= 0 {
		return "--"
	}
	if name, ok := m[id]; ok && name != "" {
		return name
	}
	return fmt.Sprintf("#%d", id)
}

// FormatID renders a numeric id dimmed.
func FormatID(id int64) string {
	return StyleDim.Render(fmt.Sprintf("#%d", id))
}

// Truncate shortens s to at most n visible runes, adding an ellipsis.
func Truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}

// Field renders an aligned "LABEL  value" metadata line.
func Field(label, value string) string {
	return fmt.Sprintf("%s  %s\n", StyleDim.Render(fmt.Sprintf("%-9s", strings.ToUpper(label))), value)
}

// FormatError renders a display-only error line.
func FormatError(msg string) string {
	return StyleRed.Render("✖ " + msg)
}

// FormatSuccess renders a confirmation line.
func FormatSuccess(msg string) string {
	return StyleGreen.Render("✔ " + msg)
}

// Plural picks the singular or plural noun for n.
func Plural(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
