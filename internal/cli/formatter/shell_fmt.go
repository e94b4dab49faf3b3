package formatter

import (
	"fmt"
	"strings"
)

// FormatWelcome renders the banner shown at the top of the home screen.
func FormatWelcome(apiURL string) string {
	var b strings.Builder
	b.WriteString(StylePurple.Render("  sufragio") + "\n")
	b.WriteString(StyleDim.Render("  ─────────────────────────────") + "\n")
	b.WriteString(StyleDim.Render("  Consola de administración electoral") + "\n")
	if apiURL != "" {
		b.WriteString(StyleDim.Render("  API: ") + StyleBlue.Render(apiURL) + "\n")
	}
	return b.String()
}

// helpCategory groups commands under a section header for the help display.
type helpCategory struct {
	title    string
	commands [][]string
}

func renderHelpCategory(cat helpCategory) string {
	var b strings.Builder
	b.WriteString("\n " + StyleHeader.Render(strings.ToUpper(cat.title)) + "\n")
	for _, c := range cat.commands {
		b.WriteString(fmt.Sprintf("  %-44s %s\n",
			StyleGreen.Render(c[0]),
			StyleDim.Render(c[1])))
	}
	return b.String()
}

// FormatCommandReference renders the categorized command reference.
func FormatCommandReference() string {
	categories := []helpCategory{
		{
			title: "Papeletas",
			commands: [][]string{
				{"ballot list", "Listar papeletas generadas"},
				{"ballot show <id>", "Ver la estructura de una papeleta"},
				{"ballot find --section N --election N", "Buscar la papeleta de un par"},
				{"ballot generate --section N --election N", "Generar o regenerar una papeleta"},
			},
		},
		{
			title: "Cargos",
			commands: [][]string{
				{"position list", "Listar cargos"},
				{"position show <id>", "Ver un cargo"},
				{"position create", "Crear un cargo (formulario si faltan datos)"},
				{"position update <id>", "Modificar un cargo"},
				{"position delete <id>", "Eliminar un cargo"},
			},
		},
		{
			title: "Consulta",
			commands: [][]string{
				{"section list | show <id>", "Secciones y sus límites"},
				{"election list", "Elecciones"},
			},
		},
		{
			title: "Utilidades",
			commands: [][]string{
				{"serve [--seed]", "Levantar la API local de pruebas"},
				{"version", "Mostrar la versión"},
			},
		},
	}

	var b strings.Builder
	for _, cat := range categories {
		b.WriteString(renderHelpCategory(cat))
	}
	b.WriteString("\n" + StyleDim.Render("Sin subcomando en una terminal se abre la consola interactiva."))
	return RenderBox("Comandos", b.String())
}
