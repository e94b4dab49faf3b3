package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/sufragio/internal/domain"
)

// FormatSectionList renders sections with their boundary vertex count.
func FormatSectionList(sections []*domain.Section) string {
	headers := []string{"ID", "SECCIÓN", "ESTADO", "VÉRTICES"}
	rows := make([][]string, 0, len(sections))
	for _, s := range sections {
		rows = append(rows, []string{
			FormatID(s.ID),
			Bold(s.Name),
			StatePill(s.State),
			boundarySummary(s),
		})
	}
	return RenderBox("Secciones", RenderTable(headers, rows, "No hay secciones registradas."))
}

// FormatSection renders a section with its ordered boundary polygon.
func FormatSection(s *domain.Section) string {
	var b strings.Builder
	b.WriteString(StyleBold.Render(s.Name) + "\n\n")
	b.WriteString(Field("ID", FormatID(s.ID)))
	b.WriteString(Field("Estado", StatePill(s.State)))
	b.WriteString(Field("Límite", boundarySummary(s)))
	b.WriteString("\n")

	points := s.OrderedBoundary()
	rows := make([][]string, 0, len(points))
	for _, p := range points {
		rows = append(rows, []string{
			strconv.Itoa(p.Order),
			fmt.Sprintf("%.6f", p.Latitude),
			fmt.Sprintf("%.6f", p.Longitude),
		})
	}
	b.WriteString(RenderTable([]string{"ORDEN", "LATITUD", "LONGITUD"}, rows, "Sin puntos de límite."))
	return RenderBox("Sección", strings.TrimRight(b.String(), "\n"))
}

func boundarySummary(s *domain.Section) string {
	n := len(s.BoundaryPoints)
	if s.IsClosed() {
		return strconv.Itoa(n)
	}
	return StyleYellow.Render(fmt.Sprintf("%d (incompleto)", n))
}

// FormatElectionList renders elections.
func FormatElectionList(elections []*domain.Election) string {
	headers := []string{"ID", "ELECCIÓN", "TIPO"}
	rows := make([][]string, 0, len(elections))
	for _, e := range elections {
		kind := Dim("--")
		if e.Type != "" {
			kind = StylePurple.Render(e.Type)
		}
		rows = append(rows, []string{FormatID(e.ID), Bold(e.Name), kind})
	}
	return RenderBox("Elecciones", RenderTable(headers, rows, "No hay elecciones registradas."))
}
