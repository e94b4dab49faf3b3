package cli

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/sufragio/internal/cli/formatter"
	"github.com/alexanderramin/sufragio/internal/domain"
)

// ballotDetailView renders one ballot's structure in a scrollable viewport.
// It uses the ballot already loaded by the list.
type ballotDetailView struct {
	state  *SharedState
	ballot *domain.Ballot
	vp     viewport.Model
}

func newBallotDetailView(state *SharedState, b *domain.Ballot) *ballotDetailView {
	v := &ballotDetailView{state: state, ballot: b, vp: viewport.New(state.Width, state.ContentHeight())}
	v.vp.SetContent(v.render())
	return v
}

func (v *ballotDetailView) ID() ViewID { return ViewBallotDetail }

func (v *ballotDetailView) Title() string {
	return "Papeleta " + formatter.FormatID(v.ballot.ID)
}

func (v *ballotDetailView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "desplazar")),
	}
}

func (v *ballotDetailView) Init() tea.Cmd { return nil }

// Close clears the list's detail selection when the view is popped.
func (v *ballotDetailView) Close() {
	v.state.Ballots.Close()
}

func (v *ballotDetailView) render() string {
	return formatter.FormatBallot(v.ballot, formatter.VariantDetail, v.state.BallotOptions())
}

func (v *ballotDetailView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.vp.Width = msg.Width
		v.vp.Height = v.state.ContentHeight()
		v.vp.SetContent(v.render())
		return v, nil
	case tea.KeyMsg, tea.MouseMsg:
		var cmd tea.Cmd
		v.vp, cmd = v.vp.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *ballotDetailView) View() string {
	if v.state.Height == 0 {
		return v.render()
	}
	return v.vp.View()
}

func visibleWidth(s string) int {
	return lipgloss.Width(s)
}
