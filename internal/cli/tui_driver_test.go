package cli

import (
	"testing"

	"github.com/alexanderramin/sufragio/internal/teatest"
)

// TestDriver wraps teatest.Driver with access to appModel internals (view
// stack, shared state, command bar focus) the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the appModel for app, sets the terminal size and
// drains Init.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

// Command focuses the command bar, types input and presses Enter. If the
// command left the bar focused it is blurred so later keys reach the view.
func (d *TestDriver) Command(input string) {
	d.T.Helper()
	d.PressKey(':')
	d.Type(input)
	d.PressEnter()
	if d.CmdBarFocused() {
		d.PressEsc()
	}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ActiveView returns the top view.
func (d *TestDriver) ActiveView() View {
	m := d.appModel()
	return m.activeView()
}

// ViewStackIDs returns the ViewIDs on the stack, bottom to top.
func (d *TestDriver) ViewStackIDs() []ViewID {
	m := d.appModel()
	ids := make([]ViewID, len(m.viewStack))
	for i, v := range m.viewStack {
		ids[i] = v.ID()
	}
	return ids
}

// State returns the shared state.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// IsQuitting reports whether the app signaled a quit either through its own
// flag or a drained tea.QuitMsg.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

func (d *TestDriver) CmdBarFocused() bool {
	m := d.appModel()
	return m.cmdBar.Focused()
}

// LastOutput returns the command output shown in the content area.
func (d *TestDriver) LastOutput() string {
	return d.appModel().lastOutput
}

// generate returns the active generate view, failing the test otherwise.
func (d *TestDriver) generate() *generateView {
	d.T.Helper()
	g, ok := d.ActiveView().(*generateView)
	if !ok {
		d.T.Fatalf("active view is %v, not the generate view", d.ActiveViewID())
	}
	return g
}
