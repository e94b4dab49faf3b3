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

type sectionsLoadedMsg struct {
	res console.Resource[[]*domain.Section]
}

func (sectionsLoadedMsg) broadcast() {}

// sectionListView lists electoral sections and opens their boundary.
type sectionListView struct {
	state   *SharedState
	list    *console.List[*domain.Section]
	cursor  int
	loading bool
	spin    spinner.Model
}

func newSectionListView(state *SharedState) *sectionListView {
	return &sectionListView{
		state:   state,
		list:    console.NewList[*domain.Section](state.App.API.ListSections, console.SectionsLoadError),
		loading: true,
		spin:    newSpinner(),
	}
}

func (v *sectionListView) ID() ViewID    { return ViewSectionList }
func (v *sectionListView) Title() string { return "Secciones" }

func (v *sectionListView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "ver")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "recargar")),
	}
}

func (v *sectionListView) Init() tea.Cmd {
	return tea.Batch(v.spin.Tick, v.load())
}

func (v *sectionListView) load() tea.Cmd {
	list := v.list
	return func() tea.Msg {
		return sectionsLoadedMsg{res: list.Load(context.Background())}
	}
}

func (v *sectionListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sectionsLoadedMsg:
		v.loading = false
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
		sections := v.list.State().Data
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(sections)-1 {
				v.cursor++
			}
		case "enter":
			if v.cursor < len(sections) {
				return v, pushView(newSectionDetailView(v.state, sections[v.cursor]))
			}
		case "r":
			v.loading = true
			return v, tea.Batch(v.spin.Tick, v.load())
		}
	}
	return v, nil
}

func (v *sectionListView) View() string {
	if v.loading {
		return "\n  " + v.spin.View() + formatter.Dim(" Cargando secciones...")
	}
	res := v.list.State()
	if res.Failed() {
		return "\n  " + formatter.FormatError(res.Error) + "\n  " + formatter.Dim("r: reintentar")
	}
	if len(res.Data) == 0 {
		return "\n  " + formatter.Dim("No hay secciones registradas.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, s := range res.Data {
		cursor := "  "
		title := formatter.StyleFg.Render(s.Name)
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			title = formatter.StyleBold.Render(s.Name)
		}
		b.WriteString(fmt.Sprintf("%s%-6s %s  %s  %s\n",
			cursor,
			formatter.FormatID(s.ID),
			padRight(title, 24),
			formatter.Dim(formatter.Plural(len(s.BoundaryPoints), "vértice", "vértices")),
			formatter.StatePill(s.State),
		))
	}
	return b.String()
}
