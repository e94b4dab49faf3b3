package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/alexanderramin/sufragio/internal/cli/formatter"
	"github.com/alexanderramin/sufragio/internal/domain"
	"github.com/alexanderramin/sufragio/internal/generation"
)

type catalogLoadedMsg struct {
	cat catalog
	err error
}

// generateRequestMsg submits the generation form with the chosen key.
type generateRequestMsg struct {
	key domain.BallotKey
}

type generatedMsg struct {
	snap generation.Snapshot
	err  error
}

// settleMsg fires when a generated ballot has been on display long enough.
type settleMsg struct{}

// generateView hosts the ballot generation workflow: pick a section and an
// election, submit once, show the result, then reset the form and refresh
// the ballot list.
type generateView struct {
	state *SharedState
	wf    *generation.Workflow

	cat     catalog
	loading bool
	loadErr string

	key  domain.BallotKey
	form *huh.Form
	spin spinner.Model

	// pending covers the gap between dispatching Submit and the workflow
	// entering Submitting.
	pending    bool
	notice     string
	refreshDue bool
}

func newGenerateView(state *SharedState) *generateView {
	v := &generateView{state: state, loading: true, spin: newSpinner()}
	v.wf = generation.New(state.App.API, state.App.Config.Console.DisplayDelay(), func() {
		v.refreshDue = true
	})
	return v
}

func (v *generateView) ID() ViewID    { return ViewGenerate }
func (v *generateView) Title() string { return "Generar papeleta" }

func (v *generateView) ShortHelp() []key.Binding {
	if v.editing() {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirmar")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancelar")),
		}
	}
	return nil
}

// editing reports whether the form is accepting input.
func (v *generateView) editing() bool {
	if v.loading || v.pending || v.form == nil {
		return false
	}
	st := v.wf.Snapshot().State
	return st == generation.Idle || st == generation.Failed
}

func (v *generateView) Init() tea.Cmd {
	src := v.state.App.API
	return tea.Batch(v.spin.Tick, func() tea.Msg {
		cat, err := loadCatalog(context.Background(), src)
		return catalogLoadedMsg{cat: cat, err: err}
	})
}

func (v *generateView) resetForm() tea.Cmd {
	v.form = ballotKeyForm(v.cat, &v.key)
	return v.form.Init()
}

func (v *generateView) submit() tea.Cmd {
	wf := v.wf
	return func() tea.Msg {
		snap, err := wf.Submit(context.Background())
		return generatedMsg{snap: snap, err: err}
	}
}

func (v *generateView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case catalogLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.loadErr = msg.err.Error()
			return v, nil
		}
		v.cat = msg.cat
		v.state.Names = msg.cat.names()
		return v, v.resetForm()

	case generateRequestMsg:
		v.notice = ""
		v.key = msg.key
		if err := v.wf.SetSection(msg.key.SectionID); err != nil {
			v.notice = noticeFor(err)
			return v, nil
		}
		if err := v.wf.SetElection(msg.key.ElectionID); err != nil {
			v.notice = noticeFor(err)
			return v, nil
		}
		v.pending = true
		return v, tea.Batch(v.spin.Tick, v.submit())

	case generatedMsg:
		if msg.err != nil {
			v.pending = v.wf.Snapshot().State == generation.Submitting
			v.notice = noticeFor(msg.err)
			return v, nil
		}
		v.pending = false
		switch msg.snap.State {
		case generation.Success:
			v.form = nil
			v.state.Ballots.Show(msg.snap.Ballot)
			return v, tea.Tick(v.wf.DisplayDelay(), func(time.Time) tea.Msg { return settleMsg{} })
		case generation.Failed:
			return v, v.resetForm()
		}
		return v, nil

	case settleMsg:
		if !v.wf.Settle() {
			return v, nil
		}
		v.key = domain.BallotKey{}
		v.state.Ballots.Close()
		cmds := []tea.Cmd{v.resetForm()}
		if v.refreshDue {
			v.refreshDue = false
			cmds = append(cmds, refreshViews())
		}
		return v, tea.Batch(cmds...)

	case spinner.TickMsg:
		if !v.loading && !v.pending && v.wf.Snapshot().State != generation.Submitting {
			return v, nil
		}
		var cmd tea.Cmd
		v.spin, cmd = v.spin.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		return v.updateKey(msg)
	}

	if v.editing() {
		return v.forwardToForm(msg)
	}
	return v, nil
}

func (v *generateView) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		return v, popView()
	}
	if v.editing() {
		return v.forwardToForm(msg)
	}
	// A repeated confirm while a request is outstanding reaches the
	// workflow, which refuses it without sending anything.
	if msg.Type == tea.KeyEnter && (v.pending || v.wf.Snapshot().State == generation.Submitting) {
		return v, v.submit()
	}
	return v, nil
}

func (v *generateView) forwardToForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}
	if v.form.State == huh.StateCompleted {
		key := v.key
		v.form = nil
		return v, tea.Batch(cmd, func() tea.Msg { return generateRequestMsg{key: key} })
	}
	return v, cmd
}

func noticeFor(err error) string {
	switch {
	case errors.Is(err, generation.ErrInFlight):
		return "Ya hay una generación en curso."
	case errors.Is(err, generation.ErrIncomplete):
		return "Seleccione una sección y una elección."
	case errors.Is(err, generation.ErrLocked):
		return "Espere a que termine la generación actual."
	default:
		return err.Error()
	}
}

func (v *generateView) View() string {
	var b strings.Builder
	b.WriteString("\n")

	if v.loading {
		b.WriteString("  " + v.spin.View() + formatter.Dim(" Cargando secciones y elecciones..."))
		return b.String()
	}
	if v.loadErr != "" {
		b.WriteString("  " + formatter.FormatError(v.loadErr) + "\n")
		return b.String()
	}
	if v.notice != "" {
		b.WriteString("  " + formatter.StyleYellow.Render(v.notice) + "\n\n")
	}

	snap := v.wf.Snapshot()
	switch {
	case v.pending || snap.State == generation.Submitting:
		b.WriteString(fmt.Sprintf("  %s Generando papeleta para %s...\n",
			v.spin.View(), keyLabel(v.state.Names, snap.Key)))

	case snap.State == generation.Success:
		b.WriteString("  " + formatter.FormatSuccess(fmt.Sprintf("Papeleta #%d generada", snap.Ballot.ID)) + "\n\n")
		b.WriteString(formatter.FormatBallot(snap.Ballot, formatter.VariantDetail, v.state.BallotOptions()))
		b.WriteString("\n" + formatter.Dim(fmt.Sprintf("  El formulario se reinicia en %s.", v.wf.DisplayDelay())) + "\n")

	default:
		if snap.State == generation.Failed {
			b.WriteString("  " + formatter.FormatError(snap.Message) + "\n\n")
		}
		if v.form != nil {
			b.WriteString(v.form.View())
		}
	}
	return b.String()
}

// Close settles a generation still on display when the view is popped.
func (v *generateView) Close() {
	if v.wf.Settle() {
		v.state.Ballots.Close()
	}
}
