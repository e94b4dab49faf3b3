package formatter

import (
	"strings"

	"github.com/alexanderramin/sufragio/internal/domain"
)

// FormatPositionList renders positions with their owning section.
func FormatPositionList(positions []*domain.Position, names Names) string {
	headers := []string{"ID", "CARGO", "SECCIÓN", "ESTADO", "DESCRIPCIÓN"}
	rows := make([][]string, 0, len(positions))
	for _, p := range positions {
		desc := Dim("--")
		if strings.TrimSpace(p.Description) != "" {
			desc = Truncate(p.Description, 40)
		}
		rows = append(rows, []string{
			FormatID(p.ID),
			Bold(p.Name),
			names.Section(p.SectionID),
			StatePill(p.State),
			desc,
		})
	}
	return RenderBox("Cargos", RenderTable(headers, rows, "No hay cargos registrados."))
}

// FormatPosition renders a single position card.
func FormatPosition(p *domain.Position, names Names) string {
	var b strings.Builder
	b.WriteString(StyleBold.Render(p.Name) + "\n\n")
	b.WriteString(Field("ID", FormatID(p.ID)))
	b.WriteString(Field("Sección", names.Section(p.SectionID)))
	b.WriteString(Field("Estado", StatePill(p.State)))
	if strings.TrimSpace(p.Description) != "" {
		b.WriteString("\n" + wrapText(p.Description, 60))
	}
	return RenderBox("Cargo", strings.TrimRight(b.String(), "\n"))
}

// wrapText breaks text into lines of at most width columns on word
// boundaries. Existing line breaks are kept.
func wrapText(text string, width int) string {
	if width <= 0 {
		return strings.TrimSpace(text)
	}
	var out []string
	for _, line := range strings.Split(text, "\n") {
		words := strings.Fields(line)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		current := words[0]
		for _, word := range words[1:] {
			if len([]rune(current))+1+len([]rune(word)) <= width {
				current += " " + word
				continue
			}
			out = append(out, current)
			current = word
		}
		out = append(out, current)
	}
	return strings.Join(out, "\n")
}
