package cli

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/sufragio/internal/cli/formatter"
	"github.com/alexanderramin/sufragio/internal/domain"
)

// sectionDetailView shows a section's boundary polygon.
type sectionDetailView struct {
	state   *SharedState
	section *domain.Section
	vp      viewport.Model
}

func newSectionDetailView(state *SharedState, s *domain.Section) *sectionDetailView {
	v := &sectionDetailView{state: state, section: s, vp: viewport.New(state.Width, state.ContentHeight())}
	v.vp.SetContent(formatter.FormatSection(s))
	return v
}

func (v *sectionDetailView) ID() ViewID    { return ViewSectionDetail }
func (v *sectionDetailView) Title() string { return v.section.Name }

func (v *sectionDetailView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "desplazar")),
	}
}

func (v *sectionDetailView) Init() tea.Cmd { return nil }

func (v *sectionDetailView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.vp.Width = msg.Width
		v.vp.Height = v.state.ContentHeight()
		return v, nil
	case tea.KeyMsg, tea.MouseMsg:
		var cmd tea.Cmd
		v.vp, cmd = v.vp.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *sectionDetailView) View() string {
	if v.state.Height == 0 {
		return formatter.FormatSection(v.section)
	}
	return v.vp.View()
}
