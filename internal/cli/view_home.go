package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/sufragio/internal/cli/formatter"
)

type menuEntry struct {
	key   string
	label string
	open  func(*SharedState) View
}

var homeMenu = []menuEntry{
	{"b", "Papeletas", func(s *SharedState) View { return newBallotListView(s) }},
	{"g", "Generar papeleta", func(s *SharedState) View { return newGenerateView(s) }},
	{"c", "Cargos", func(s *SharedState) View { return newPositionListView(s) }},
	{"s", "Secciones", func(s *SharedState) View { return newSectionListView(s) }},
}

// homeView is the landing menu.
type homeView struct {
	state  *SharedState
	cursor int
}

func newHomeView(state *SharedState) *homeView {
	return &homeView{state: state}
}

func (v *homeView) ID() ViewID    { return ViewHome }
func (v *homeView) Title() string { return "" }

func (v *homeView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "abrir")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "salir")),
	}
}

func (v *homeView) Init() tea.Cmd { return nil }

func (v *homeView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	switch keyMsg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(homeMenu)-1 {
			v.cursor++
		}
	case "enter":
		return v, pushView(homeMenu[v.cursor].open(v.state))
	default:
		for _, e := range homeMenu {
			if keyMsg.String() == e.key {
				return v, pushView(e.open(v.state))
			}
		}
	}
	return v, nil
}

func (v *homeView) View() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(formatter.FormatWelcome(v.state.App.API.BaseURL()))
	b.WriteString("\n")
	for i, e := range homeMenu {
		cursor := "  "
		label := formatter.StyleFg.Render(e.label)
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			label = formatter.StyleBold.Render(e.label)
		}
		b.WriteString(fmt.Sprintf("  %s%s %s\n", cursor, formatter.StyleYellow.Render("["+e.key+"]"), label))
	}
	return b.String()
}
