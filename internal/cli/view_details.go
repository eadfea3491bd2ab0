package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andretka/deskplan/internal/cli/formatter"
	"github.com/andretka/deskplan/internal/domain"
)

// detailView shows the active project's detail panel and its todo list.
type detailView struct {
	state  *SharedState
	cursor int
}

func newDetailView(state *SharedState) *detailView {
	return &detailView{state: state}
}

func (v *detailView) ID() ViewID { return ViewDetails }

func (v *detailView) Title() string {
	if p := v.state.Cards.Active(); p != nil {
		return p.Name
	}
	return "Details"
}

func (v *detailView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add todo")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit todo")),
		key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "cycle status")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete todo")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

func (v *detailView) Init() tea.Cmd { return nil }

func (v *detailView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	p := v.state.App.Tracker.ActiveProject()
	if p == nil {
		return v, popView()
	}
	if v.cursor >= len(p.Todos) {
		v.cursor = max(0, len(p.Todos)-1)
	}

	switch keyMsg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(p.Todos)-1 {
			v.cursor++
		}
	case "a":
		return v, pushView(newTodoFormView(v.state, nil))
	case "e":
		if todo := v.selectedTodo(p); todo != nil {
			return v, pushView(newTodoFormView(v.state, todo))
		}
	case " ", "space":
		if todo := v.selectedTodo(p); todo != nil {
			next := nextTodoStatus(todo.Status)
			_, _ = v.state.App.Tracker.UpdateTodoInActive(todo.ID, domain.TodoPatch{Status: &next})
		}
	case "d":
		if todo := v.selectedTodo(p); todo != nil {
			v.state.App.Tracker.DeleteTodoInActive(todo.ID)
		}
	case "esc":
		return v, popView()
	}
	return v, nil
}

func (v *detailView) selectedTodo(p *domain.Project) *domain.Todo {
	if v.cursor < 0 || v.cursor >= len(p.Todos) {
		return nil
	}
	return &p.Todos[v.cursor]
}

func (v *detailView) View() string {
	p := v.state.Cards.Active()
	if p == nil {
		return formatter.Dim("No project selected.")
	}
	todos := formatter.RenderBox("Todos", formatter.FormatTodoList(p.Todos, v.cursor))
	return lipgloss.JoinHorizontal(lipgloss.Top, v.state.Cards.Details(), "  ", todos)
}

// nextTodoStatus cycles through the four todo statuses in display order.
func nextTodoStatus(s domain.TodoStatus) domain.TodoStatus {
	for i, status := range domain.TodoStatuses {
		if status == s {
			return domain.TodoStatuses[(i+1)%len(domain.TodoStatuses)]
		}
	}
	return domain.TodoPending
}
