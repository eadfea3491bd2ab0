package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andretka/deskplan/internal/domain"
	"github.com/andretka/deskplan/internal/teatest"
	"github.com/andretka/deskplan/internal/testutil"
	"github.com/andretka/deskplan/internal/tracker"
)

// newTUIDriver builds a full TUI harness: a tracker bound to a card table
// behind a fresh app model, with the standard test clock and color picker.
func newTUIDriver(t *testing.T, seed func(tr *tracker.Tracker)) (*teatest.Driver, *App) {
	t.Helper()
	tr := tracker.New(
		tracker.WithClock(testutil.FixedClock(testutil.BaseTime)),
		tracker.WithColorPicker(testutil.SeqPicker()),
	)
	if seed != nil {
		seed(tr)
	}
	app := &App{Tracker: tr}
	cards := NewCardTable()
	tr.SetView(cards)
	d := teatest.New(t, newAppModel(app, cards), 120, 40)
	return d, app
}

func seedTwoProjects(tr *tracker.Tracker) {
	_, _ = tr.Create(tracker.CreateData{Name: "Alpha Build"})
	_, _ = tr.Create(tracker.CreateData{Name: "Beta Build"})
}

func TestTUI_EmptyBoard(t *testing.T) {
	d, _ := newTUIDriver(t, nil)

	view := d.View()
	assert.Contains(t, view, "deskplan")
	assert.Contains(t, view, "Projects")
	assert.Contains(t, view, "No projects yet")
}

func TestTUI_BoardShowsCards(t *testing.T) {
	d, _ := newTUIDriver(t, seedTwoProjects)

	view := d.View()
	assert.Contains(t, view, "Alpha Build")
	assert.Contains(t, view, "Beta Build")
}

func TestTUI_EnterOpensDetails(t *testing.T) {
	d, app := newTUIDriver(t, seedTwoProjects)

	d.PressKey('j')
	d.PressEnter()

	require.NotNil(t, app.Tracker.ActiveProject())
	assert.Equal(t, "Beta Build", app.Tracker.ActiveProject().Name)
	view := d.View()
	assert.Contains(t, view, "TODOS")
	assert.Contains(t, view, "Projects › Beta Build", "breadcrumb reflects the stack")
}

func TestTUI_EscReturnsToBoard(t *testing.T) {
	d, _ := newTUIDriver(t, seedTwoProjects)

	d.PressEnter()
	d.PressEsc()

	view := d.View()
	assert.NotContains(t, view, "TODOS")
	assert.Contains(t, view, "Alpha Build")
}

func TestTUI_DeleteSelectedProject(t *testing.T) {
	d, app := newTUIDriver(t, seedTwoProjects)

	d.PressKey('d')

	assert.Equal(t, 1, app.Tracker.Len())
	assert.Nil(t, app.Tracker.FindByName("Alpha Build"))
	view := d.View()
	assert.Contains(t, view, "Deleted Alpha Build")
	assert.Contains(t, view, "Beta Build", "the remaining card is still on the board")
}

func TestTUI_QuitKeys(t *testing.T) {
	d, _ := newTUIDriver(t, nil)
	d.PressKey('q')
	assert.True(t, d.Quitting)

	d2, _ := newTUIDriver(t, seedTwoProjects)
	d2.Send(keyCtrlC())
	assert.True(t, d2.Quitting)
}

func TestTUI_CreateProjectThroughForm(t *testing.T) {
	d, app := newTUIDriver(t, nil)

	d.PressKey('n')
	assert.Contains(t, d.View(), "Name")

	d.Type("Gamma Build")
	for i := 0; i < 10 && app.Tracker.FindByName("Gamma Build") == nil; i++ {
		d.PressEnter()
	}

	p := app.Tracker.FindByName("Gamma Build")
	require.NotNil(t, p, "completing the form creates the project")
	assert.Equal(t, domain.ProjectPending, p.Status, "form defaults apply")
	view := d.View()
	assert.Contains(t, view, "Gamma Build")
	assert.Contains(t, view, "Created Gamma Build")
}

func TestTUI_EscCancelsForm(t *testing.T) {
	d, app := newTUIDriver(t, nil)

	d.PressKey('n')
	d.Type("Gamma Build")
	d.PressEsc()

	assert.Equal(t, 0, app.Tracker.Len(), "cancelled forms leave no trace")
	assert.Contains(t, d.View(), "No projects yet")
}

func TestTUI_TodoCycleAndDelete(t *testing.T) {
	d, app := newTUIDriver(t, func(tr *tracker.Tracker) {
		p, _ := tr.Create(tracker.CreateData{Name: "Alpha Build"})
		tr.OpenDetails(p.ID)
		_, _ = tr.AddTodoToActive("pour foundation", domain.TodoPending)
	})

	d.PressEnter()
	p := app.Tracker.ActiveProject()
	require.NotNil(t, p)

	d.PressKey(' ')
	require.Len(t, p.Todos, 1)
	assert.Equal(t, domain.TodoInProgress, p.Todos[0].Status)

	d.PressKey(' ')
	assert.Equal(t, domain.TodoDone, p.Todos[0].Status)

	d.PressKey('d')
	assert.Empty(t, p.Todos)
	assert.Contains(t, d.View(), "No todos yet")
}

func keyCtrlC() tea.Msg {
	return tea.KeyMsg{Type: tea.KeyCtrlC}
}
