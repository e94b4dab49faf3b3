package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/sufragio/internal/cli/formatter"
	"github.com/alexanderramin/sufragio/internal/console"
	"github.com/alexanderramin/sufragio/internal/domain"
)

// positionsLoadedMsg carries a settled position list load together with
// the sections used for names and the form's section select.
type positionsLoadedMsg struct {
	res      console.Resource[[]*domain.Position]
	sections []*domain.Section
}

func (positionsLoadedMsg) broadcast() {}

// positionListView lists positions and hosts their create, edit and
// delete forms.
type positionListView struct {
	state    *SharedState
	list     *console.List[*domain.Position]
	sections []*domain.Section
	cursor   int
	loading  bool
	spin     spinner.Model
}

func newPositionListView(state *SharedState) *positionListView {
	return &positionListView{
		state:   state,
		list:    console.NewList[*domain.Position](state.App.API.ListPositions, console.PositionsLoadError),
		loading: true,
		spin:    newSpinner(),
	}
}

func (v *positionListView) ID() ViewID    { return ViewPositionList }
func (v *positionListView) Title() string { return "Cargos" }

func (v *positionListView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "nuevo")),
		key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "editar")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "eliminar")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "recargar")),
	}
}

func (v *positionListView) Init() tea.Cmd {
	return tea.Batch(v.spin.Tick, v.load())
}

func (v *positionListView) load() tea.Cmd {
	list := v.list
	src := v.state.App.API
	return func() tea.Msg {
		ctx := context.Background()
		res := list.Load(ctx)
		sections, _ := src.ListSections(ctx)
		return positionsLoadedMsg{res: res, sections: sections}
	}
}

func (v *positionListView) selected() (*domain.Position, bool) {
	positions := v.list.State().Data
	if v.cursor < len(positions) {
		return positions[v.cursor], true
	}
	return nil, false
}

func (v *positionListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case positionsLoadedMsg:
		v.loading = false
		v.sections = msg.sections
		if v.cursor >= len(msg.res.Data) {
			v.cursor = max(len(msg.res.Data)-1, 0)
		}
		return v, nil

	case refreshViewMsg:
		v.loading = true
		return v, tea.Batch(v.spin.Tick, v.load())

	case spinner.TickMsg:
		if !v.loading {
			return v, nil
		}
		var cmd tea.Cmd
		v.spin, cmd = v.spin.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		positions := v.list.State().Data
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(positions)-1 {
				v.cursor++
			}
		case "n":
			return v, v.openForm(nil)
		case "e", "enter":
			if p, ok := v.selected(); ok {
				return v, v.openForm(p)
			}
		case "d":
			if p, ok := v.selected(); ok {
				return v, v.openDelete(p)
			}
		case "r":
			v.loading = true
			return v, tea.Batch(v.spin.Tick, v.load())
		}
	}
	return v, nil
}

// openForm pushes the position form. current is nil when creating.
func (v *positionListView) openForm(current *domain.Position) tea.Cmd {
	f := newPositionFields(current)
	title := "Nuevo cargo"
	if current != nil {
		title = "Editar " + current.Name
	}
	app := v.state.App
	done := func() tea.Cmd {
		return tea.Sequence(func() tea.Msg { return applyPositionForm(app, current, f) }, refreshViews())
	}
	return pushView(newWizardView(v.state, title, positionForm(v.sections, f), done))
}

func (v *positionListView) openDelete(p *domain.Position) tea.Cmd {
	var confirmed bool
	app := v.state.App
	done := func() tea.Cmd {
		if !confirmed {
			return showOutput(formatter.Dim("Cancelado."))
		}
		return tea.Sequence(func() tea.Msg { return applyPositionDelete(app, p) }, refreshViews())
	}
	form := wizardConfirm(fmt.Sprintf("¿Eliminar el cargo %q?", p.Name), &confirmed)
	return pushView(newWizardView(v.state, "Eliminar "+p.Name, form, done))
}

// applyPositionForm saves the form values and reports the outcome as
// command output.
func applyPositionForm(app *App, current *domain.Position, f *positionFields) tea.Msg {
	ctx := context.Background()
	in := f.input()
	if current == nil {
		p, err := app.API.CreatePosition(ctx, in)
		if err != nil {
			return cmdOutputMsg{output: formMessage(err, "Error al crear el cargo")}
		}
		return cmdOutputMsg{output: formatter.FormatSuccess(fmt.Sprintf("Cargo #%d %s creado", p.ID, p.Name))}
	}
	p, err := app.API.UpdatePosition(ctx, current.ID, in)
	if err != nil {
		return cmdOutputMsg{output: formMessage(err, "Error al actualizar el cargo")}
	}
	return cmdOutputMsg{output: formatter.FormatSuccess(fmt.Sprintf("Cargo #%d %s actualizado", p.ID, p.Name))}
}

func applyPositionDelete(app *App, p *domain.Position) tea.Msg {
	if err := app.API.DeletePosition(context.Background(), p.ID); err != nil {
		return cmdOutputMsg{output: formMessage(err, "Error al eliminar el cargo")}
	}
	return cmdOutputMsg{output: formatter.FormatSuccess(fmt.Sprintf("Cargo #%d eliminado", p.ID))}
}

func (v *positionListView) View() string {
	if v.loading {
		return "\n  " + v.spin.View() + formatter.Dim(" Cargando cargos...")
	}
	res := v.list.State()
	if res.Failed() {
		return "\n  " + formatter.FormatError(res.Error) + "\n  " + formatter.Dim("r: reintentar")
	}
	if len(res.Data) == 0 {
		return "\n  " + formatter.Dim("No hay cargos registrados. Pulse n para crear uno.") + "\n"
	}

	sectionNames := make(map[int64]string, len(v.sections))
	for _, s := range v.sections {
		sectionNames[s.ID] = s.Name
	}
	names := formatter.Names{Sections: sectionNames}

	var b strings.Builder
	b.WriteString("\n")
	for i, p := range res.Data {
		cursor := "  "
		title := formatter.StyleFg.Render(p.Name)
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			title = formatter.StyleBold.Render(p.Name)
		}
		section := "sin sección"
		if p.SectionID > 0 {
			section = names.Section(p.SectionID)
		}
		b.WriteString(fmt.Sprintf("%s%-6s %s  %s  %s\n",
			cursor,
			formatter.FormatID(p.ID),
			padRight(title, 24),
			formatter.Dim(padRight(section, 16)),
			formatter.StatePill(p.State),
		))
	}
	return b.String()
}
