package tui

import (
	"fmt"
	"strings"

	textinput "github.com/charmbracelet/bubbles/textinput"
	viewport "github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/danielCantwell/rsvg/internal/command"
)

const maxHistory = 50

// rows used by everything except the markup pane: title, two border
// lines, prompt and status.
const chromeHeight = 5

type Model struct {
	width  int
	height int

	dispatcher *command.Dispatcher

	input textinput.Model
	view  viewport.Model

	// command history, oldest first; histPos == len(history) means the
	// prompt is not browsing history.
	history []string
	histPos int

	status    string
	statusErr bool
}

func New(d *command.Dispatcher) Model {
	m := Model{
		dispatcher: d,
		status:     "type help for commands, ctrl+c to quit",
	}
	m.input = textinput.New()
	m.input.Prompt = "Enter Command: "
	m.input.Placeholder = "draw rect 10 -3"
	m.input.CharLimit = 0
	m.input.Focus()

	m.view = viewport.New(80, 20)
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

// refresh re-renders the scene into the markup pane.
func (m *Model) refresh() {
	m.view.SetContent(m.dispatcher.Grid().Render())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.view.Width = max(msg.Width-4, 1)
		m.view.Height = max(msg.Height-chromeHeight, 1)
		m.input.Width = max(msg.Width-len(m.input.Prompt)-1, 1)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.input.SetValue("")
			m.histPos = len(m.history)
			return m, nil
		case "enter":
			return m.submit()
		case "up":
			m.recall(-1)
			return m, nil
		case "down":
			m.recall(1)
			return m, nil
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.view, cmd = m.view.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit runs the prompt's line through the dispatcher.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")
	if line == "" {
		return m, nil
	}

	m.history = append(m.history, line)
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}
	m.histPos = len(m.history)

	if line == "quit" || line == "exit" {
		return m, tea.Quit
	}

	out, err := m.dispatcher.Execute(line)
	if err != nil {
		m.status = err.Error()
		m.statusErr = true
		return m, nil
	}

	m.statusErr = false
	switch {
	case line == "help":
		m.view.SetContent(out)
		m.status = "help"
		return m, nil
	case out == "" || strings.HasPrefix(out, "<svg"):
		m.status = "ok: " + line
	default:
		m.status = out
	}
	m.refresh()
	return m, nil
}

// recall steps through history by delta, filling the prompt.
func (m *Model) recall(delta int) {
	if len(m.history) == 0 {
		return
	}
	m.histPos = min(max(m.histPos+delta, 0), len(m.history))
	if m.histPos == len(m.history) {
		m.input.SetValue("")
		return
	}
	m.input.SetValue(m.history[m.histPos])
	m.input.CursorEnd()
}

func (m Model) View() string {
	grid := m.dispatcher.Grid()
	header := titleStyle.Render("rsvg") + " " +
		dimStyle.Render(fmt.Sprintf("%s  viewBox %q", grid.CoordinateSystem(), grid.ViewBox()))

	status := resultStyle.Render(m.status)
	if m.statusErr {
		status = errorStyle.Render(m.status)
	}

	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		header,
		boxStyle.Render(m.view.View()),
		m.input.View(),
		status,
	))
}
