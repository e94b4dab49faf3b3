package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/sufragio/internal/cli/formatter"
)

// commandSuggestions feeds the command bar's inline completion.
var commandSuggestions = []string{
	"ballot list", "ballot show ", "ballot find --section ", "ballot generate --section ",
	"position list", "position show ", "position delete ",
	"section list", "section show ", "election list",
	"papeletas", "generar", "cargos", "secciones", "ayuda", "salir",
}

// commandBar is the persistent text input at the bottom of the TUI.
type commandBar struct {
	input   textinput.Model
	state   *SharedState
	focused bool

	history    []string
	historyIdx int
}

func newCommandBar(state *SharedState) commandBar {
	ti := textinput.New()
	ti.Prompt = ""
	ti.ShowSuggestions = true
	ti.CharLimit = 500
	ti.KeyMap.NextSuggestion = key.NewBinding(key.WithKeys("ctrl+n"))
	ti.KeyMap.PrevSuggestion = key.NewBinding(key.WithKeys("ctrl+p"))
	ti.SetSuggestions(commandSuggestions)

	return commandBar{input: ti, state: state}
}

func (c *commandBar) Focus() {
	c.focused = true
	c.input.Focus()
}

func (c *commandBar) Blur() {
	c.focused = false
	c.input.Blur()
}

func (c *commandBar) Focused() bool {
	return c.focused
}

func (c *commandBar) SetWidth(w int) {
	c.input.Width = w - len("sufragio ❯ ") - 1
}

// Update handles key messages when the command bar is focused.
func (c *commandBar) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		input := strings.TrimSpace(c.input.Value())
		c.input.Reset()
		if input == "" {
			return nil
		}
		c.history = append(c.history, input)
		c.historyIdx = len(c.history)
		c.Blur()
		return c.executeCommand(input)

	case tea.KeyUp:
		if c.historyIdx > 0 {
			c.historyIdx--
			c.input.SetValue(c.history[c.historyIdx])
			c.input.CursorEnd()
		}
		return nil

	case tea.KeyDown:
		if c.historyIdx < len(c.history)-1 {
			c.historyIdx++
			c.input.SetValue(c.history[c.historyIdx])
			c.input.CursorEnd()
		} else {
			c.historyIdx = len(c.history)
			c.input.Reset()
		}
		return nil

	case tea.KeyEsc:
		c.Blur()
		return nil

	default:
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return cmd
	}
}

// UpdateNonKey handles non-key messages (e.g., cursor blink).
func (c *commandBar) UpdateNonKey(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return cmd
}

func (c *commandBar) View() string {
	prompt := formatter.StylePurple.Render("sufragio") + " " + formatter.Dim("❯") + " "
	if !c.focused {
		return prompt + formatter.Dim("pulse : para escribir un comando")
	}
	return prompt + c.input.View()
}

// executeCommand handles console navigation words directly and runs
// everything else through the cobra tree.
func (c *commandBar) executeCommand(input string) tea.Cmd {
	args := strings.Fields(input)
	switch strings.ToLower(args[0]) {
	case "salir", "quit", "exit", "q":
		return func() tea.Msg { return quitMsg{} }
	case "ayuda", "help", "h":
		return showOutput(formatter.FormatCommandReference())
	case "papeletas", "ballots":
		return pushView(newBallotListView(c.state))
	case "generar", "generate":
		return pushView(newGenerateView(c.state))
	case "cargos", "positions":
		return pushView(newPositionListView(c.state))
	case "secciones", "sections":
		return pushView(newSectionListView(c.state))
	}

	app := c.state.App
	return func() tea.Msg {
		return cmdOutputMsg{output: captureCobraOutput(app, args)}
	}
}
