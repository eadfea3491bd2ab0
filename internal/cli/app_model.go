package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andretka/deskplan/internal/cli/formatter"
)

// SharedState is passed to every view in the TUI.
type SharedState struct {
	App   *App
	Cards *CardTable

	Width  int
	Height int
}

// appModel is the root bubbletea Model: a view stack plus a status bar.
type appModel struct {
	state       *SharedState
	stack       []View
	status      string
	statusIsErr bool
	quitting    bool
}

func newAppModel(app *App, cards *CardTable) appModel {
	state := &SharedState{App: app, Cards: cards}
	m := appModel{state: state}
	m.stack = []View{newBoardView(state)}
	return m
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		return m.forward(msg)

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		m.status = ""
		return m.forward(msg)

	case pushViewMsg:
		m.stack = append(m.stack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		if len(m.stack) > 1 {
			m.stack = m.stack[:len(m.stack)-1]
		}
		return m, nil

	case statusMsg:
		m.status = msg.text
		m.statusIsErr = msg.isErr
		return m, nil
	}

	return m.forward(msg)
}

// forward delivers a message to the active view.
func (m appModel) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	v := m.activeView()
	if v == nil {
		return m, nil
	}
	updated, cmd := v.Update(msg)
	m.stack[len(m.stack)-1] = updated.(View)
	return m, cmd
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}
	v := m.activeView()
	if v == nil {
		return ""
	}

	crumbs := make([]string, 0, len(m.stack))
	for _, view := range m.stack {
		crumbs = append(crumbs, view.Title())
	}
	header := formatter.StyleHeader.Render("deskplan") +
		formatter.Dim(" › "+strings.Join(crumbs, " › "))

	body := v.View()

	statusLine := m.status
	if m.statusIsErr {
		statusLine = formatter.StyleRed.Render(statusLine)
	} else {
		statusLine = formatter.StyleGreen.Render(statusLine)
	}

	help := renderShortHelp(v.ShortHelp())

	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", statusLine, help)
}

func renderShortHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, formatter.StyleFg.Render(h.Key)+formatter.Dim(" "+h.Desc))
	}
	return formatter.Dim(strings.Join(parts, "  ·  "))
}
