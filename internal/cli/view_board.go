package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andretka/deskplan/internal/cli/formatter"
)

// boardView shows the project cards and is the home view of the TUI.
type boardView struct {
	state  *SharedState
	cursor int
}

func newBoardView(state *SharedState) *boardView {
	return &boardView{state: state}
}

func (v *boardView) ID() ViewID    { return ViewBoard }
func (v *boardView) Title() string { return "Projects" }

func (v *boardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "export")),
		key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "import")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (v *boardView) Init() tea.Cmd { return nil }

func (v *boardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	cards := v.state.Cards
	if v.cursor >= cards.Len() {
		v.cursor = max(0, cards.Len()-1)
	}

	switch keyMsg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < cards.Len()-1 {
			v.cursor++
		}
	case "enter":
		if id := v.selectedID(); id != "" {
			v.state.App.Tracker.OpenDetails(id)
			return v, pushView(newDetailView(v.state))
		}
	case "n":
		return v, pushView(newProjectFormView(v.state, nil))
	case "e":
		if id := v.selectedID(); id != "" {
			return v, pushView(newProjectFormView(v.state, v.state.App.Tracker.FindByID(id)))
		}
	case "d":
		if p := v.state.App.Tracker.FindByID(v.selectedID()); p != nil {
			v.state.App.Tracker.Delete(p.ID)
			return v, setStatus("Deleted " + p.Name)
		}
	case "x":
		return v, pushView(newExportFormView(v.state))
	case "i":
		return v, pushView(newImportFormView(v.state))
	case "q":
		return v, tea.Quit
	}
	return v, nil
}

// selectedID returns the project ID under the cursor, or "".
func (v *boardView) selectedID() string {
	ids := v.state.Cards.IDs()
	if v.cursor < 0 || v.cursor >= len(ids) {
		return ""
	}
	return ids[v.cursor]
}

func (v *boardView) View() string {
	cards := v.state.Cards
	if cards.Len() == 0 {
		return formatter.Dim("No projects yet. Press 'n' to create one.")
	}

	rendered := make([]string, 0, cards.Len())
	for i, id := range cards.IDs() {
		card := cards.Card(id)
		if i == v.cursor {
			card = lipgloss.NewStyle().
				Border(lipgloss.ThickBorder()).
				BorderForeground(formatter.ColorHeader).
				Render(card)
		}
		rendered = append(rendered, card)
	}

	// Two cards per row, like the original card grid.
	rows := make([]string, 0, (len(rendered)+1)/2)
	for i := 0; i < len(rendered); i += 2 {
		if i+1 < len(rendered) {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered[i], " ", rendered[i+1]))
		} else {
			rows = append(rows, rendered[i])
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
