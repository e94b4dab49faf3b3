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

// ballotsLoadedMsg carries a settled ballot list load.
type ballotsLoadedMsg struct {
	res   console.Resource[[]*domain.Ballot]
	names formatter.Names
}

func (ballotsLoadedMsg) broadcast() {}

// ballotListView shows generated ballots and opens their detail.
type ballotListView struct {
	state   *SharedState
	cursor  int
	loading bool
	spin    spinner.Model
}

func newBallotListView(state *SharedState) *ballotListView {
	return &ballotListView{state: state, loading: true, spin: newSpinner()}
}

func newSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = formatter.StyleYellow
	return s
}

func (v *ballotListView) ID() ViewID    { return ViewBallotList }
func (v *ballotListView) Title() string { return "Papeletas" }

func (v *ballotListView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "ver")),
		key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "generar")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "recargar")),
	}
}

func (v *ballotListView) Init() tea.Cmd {
	return tea.Batch(v.spin.Tick, v.load())
}

func (v *ballotListView) load() tea.Cmd {
	list := v.state.Ballots
	src := v.state.App.API
	return func() tea.Msg {
		ctx := context.Background()
		res := list.Load(ctx)
		return ballotsLoadedMsg{res: res, names: loadNames(ctx, src)}
	}
}

func (v *ballotListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ballotsLoadedMsg:
		v.loading = false
		v.state.Names = msg.names
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
		ballots := v.state.Ballots.State().Data
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(ballots)-1 {
				v.cursor++
			}
		case "enter":
			if v.cursor < len(ballots) {
				if b, ok := v.state.Ballots.Open(ballots[v.cursor].ID); ok {
					return v, pushView(newBallotDetailView(v.state, b))
				}
			}
		case "g":
			return v, pushView(newGenerateView(v.state))
		case "r":
			v.loading = true
			return v, tea.Batch(v.spin.Tick, v.load())
		}
	}
	return v, nil
}

func (v *ballotListView) View() string {
	if v.loading {
		return "\n  " + v.spin.View() + formatter.Dim(" Cargando papeletas...")
	}
	res := v.state.Ballots.State()
	if res.Failed() {
		return "\n  " + formatter.FormatError(res.Error) + "\n  " + formatter.Dim("r: reintentar")
	}
	if len(res.Data) == 0 {
		return "\n  " + formatter.Dim("No hay papeletas generadas. Pulse g para generar una.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, ballot := range res.Data {
		cursor := "  "
		title := formatter.StyleFg.Render(v.state.Names.Election(ballot.ElectionID))
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			title = formatter.StyleBold.Render(v.state.Names.Election(ballot.ElectionID))
		}
		b.WriteString(fmt.Sprintf("%s%-6s %s  %s  %s  %s\n",
			cursor,
			formatter.FormatID(ballot.ID),
			padRight(title, 28),
			formatter.Dim(padRight(v.state.Names.Section(ballot.SectionID), 16)),
			formatter.Dim(fmt.Sprintf("%s · %s",
				formatter.Plural(ballot.PositionCount(), "cargo", "cargos"),
				formatter.Plural(ballot.CandidateCount(), "candidato", "candidatos"))),
			formatter.StatePill(ballot.State),
		))
	}
	return b.String()
}

// padRight pads s to a minimum visible width.
func padRight(s string, width int) string {
	if w := visibleWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
