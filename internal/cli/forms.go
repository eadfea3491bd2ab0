package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/andretka/deskplan/internal/domain"
	"github.com/andretka/deskplan/internal/tracker"
	"github.com/andretka/deskplan/internal/transfer"
)

// formView wraps a huh form as a stack view. Completing the form runs
// submit; aborting pops without side effects. Invalid values never complete
// the form, so corrections happen in place.
type formView struct {
	state  *SharedState
	title  string
	form   *huh.Form
	submit func() tea.Cmd
	done   bool
}

func newFormView(state *SharedState, title string, form *huh.Form, submit func() tea.Cmd) *formView {
	return &formView{state: state, title: title, form: form, submit: submit}
}

func (v *formView) ID() ViewID    { return ViewForm }
func (v *formView) Title() string { return v.title }

func (v *formView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (v *formView) Init() tea.Cmd { return v.form.Init() }

func (v *formView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return v, popView()
	}

	model, cmd := v.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		v.form = f
	}

	switch v.form.State {
	case huh.StateCompleted:
		if v.done {
			return v, nil
		}
		v.done = true
		return v, tea.Batch(popView(), v.submit())
	case huh.StateAborted:
		return v, popView()
	}
	return v, cmd
}

func (v *formView) View() string { return v.form.View() }

// ── Project form ────────────────────────────────────────────────────────────

type projectFormValues struct {
	name        string
	description string
	status      string
	role        string
	finish      string
	cost        string
	progress    string
}

// newProjectFormView builds the create form, or the edit form when p is
// non-nil.
func newProjectFormView(state *SharedState, p *domain.Project) *formView {
	v := &projectFormValues{
		status: string(domain.ProjectPending),
		role:   string(domain.RoleDeveloper),
	}
	selfID := ""
	title := "New project"
	if p != nil {
		selfID = p.ID
		title = "Edit project"
		v.name = p.Name
		v.description = p.Description
		v.status = string(p.Status)
		v.role = string(p.UserRole)
		v.finish = p.FinishDate.Format("2006-01-02")
		v.cost = strconv.FormatFloat(p.Cost, 'f', -1, 64)
		v.progress = strconv.FormatFloat(p.Progress*100, 'f', -1, 64)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Placeholder("Hospital Center").
				Value(&v.name).
				Validate(func(s string) error {
					return state.App.Tracker.ValidateName(s, selfID)
				}),
			huh.NewInput().
				Title("Description").
				Value(&v.description),
			huh.NewSelect[string]().
				Title("Status").
				Options(statusOptions()...).
				Value(&v.status),
			huh.NewSelect[string]().
				Title("Role").
				Options(roleOptions()...).
				Value(&v.role),
			huh.NewInput().
				Title("Finish date").
				Placeholder("2026-12-31").
				Value(&v.finish).
				Validate(validateOptionalDate),
			huh.NewInput().
				Title("Cost").
				Placeholder("0").
				Value(&v.cost).
				Validate(validateOptionalNumber),
			huh.NewInput().
				Title("Progress %").
				Placeholder("0").
				Value(&v.progress).
				Validate(validateOptionalPercent),
		),
	).WithShowHelp(false)

	submit := func() tea.Cmd {
		if p != nil {
			return submitProjectEdit(state, selfID, v)
		}
		return submitProjectCreate(state, v)
	}
	return newFormView(state, title, form, submit)
}

func submitProjectCreate(state *SharedState, v *projectFormValues) tea.Cmd {
	created, err := state.App.Tracker.Create(tracker.CreateData{
		Name:        v.name,
		Description: v.description,
		Status:      domain.ProjectStatus(v.status),
		UserRole:    domain.UserRole(v.role),
		FinishDate:  parseOptionalDate(v.finish),
		Cost:        parseOptionalNumber(v.cost),
		Progress:    parseOptionalPercent(v.progress),
	})
	if err != nil {
		return setError(err)
	}
	return setStatus("Created " + created.Name)
}

func submitProjectEdit(state *SharedState, id string, v *projectFormValues) tea.Cmd {
	status := domain.ProjectStatus(v.status)
	role := domain.UserRole(v.role)
	cost := parseOptionalNumber(v.cost)
	progress := parseOptionalPercent(v.progress)
	patch := domain.ProjectPatch{
		Name:          &v.name,
		Description:   &v.description,
		Status:        &status,
		UserRole:      &role,
		FinishDate:    parseOptionalDate(v.finish),
		FinishDateSet: true,
		Cost:          &cost,
		Progress:      &progress,
	}
	updated, err := state.App.Tracker.Update(id, patch)
	if err != nil {
		return setError(err)
	}
	if updated == nil {
		return nil
	}
	return setStatus("Updated " + updated.Name)
}

// ── Todo form ───────────────────────────────────────────────────────────────

type todoFormValues struct {
	title  string
	status string
}

// newTodoFormView builds the add-todo form, or the edit form when todo is
// non-nil. Both operate on the tracker's active project.
func newTodoFormView(state *SharedState, todo *domain.Todo) *formView {
	v := &todoFormValues{status: string(domain.TodoPending)}
	title := "New todo"
	if todo != nil {
		title = "Edit todo"
		v.title = todo.Title
		v.status = string(todo.Status)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&v.title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title must not be empty")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Status").
				Options(todoStatusOptions()...).
				Value(&v.status),
		),
	).WithShowHelp(false)

	submit := func() tea.Cmd {
		if todo != nil {
			status := domain.TodoStatus(v.status)
			_, err := state.App.Tracker.UpdateTodoInActive(todo.ID, domain.TodoPatch{
				Title:  &v.title,
				Status: &status,
			})
			if err != nil {
				return setError(err)
			}
			return setStatus("Updated todo")
		}
		_, err := state.App.Tracker.AddTodoToActive(v.title, domain.TodoStatus(v.status))
		if err != nil {
			return setError(err)
		}
		return setStatus("Added todo")
	}
	return newFormView(state, title, form, submit)
}

// ── Export / import forms ───────────────────────────────────────────────────

func newExportFormView(state *SharedState) *formView {
	name := "projects"
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Export file name").
				Value(&name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("file name must not be empty")
					}
					return nil
				}),
		),
	).WithShowHelp(false)

	submit := func() tea.Cmd {
		path, err := transfer.Save(strings.TrimSpace(name), state.App.Tracker.Export())
		if err != nil {
			return setError(err)
		}
		return setStatus("Exported to " + path)
	}
	return newFormView(state, "Export", form, submit)
}

func newImportFormView(state *SharedState) *formView {
	var path string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Import file").
				Placeholder("projects.json").
				Value(&path).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("file path must not be empty")
					}
					return nil
				}),
		),
	).WithShowHelp(false)

	submit := func() tea.Cmd {
		records, err := transfer.Load(strings.TrimSpace(path))
		if err != nil {
			return setError(err)
		}
		stats := state.App.Tracker.Import(records)
		return setStatus(fmt.Sprintf("Imported: %d new, %d merged, %d skipped",
			stats.Created, stats.Merged, stats.Skipped))
	}
	return newFormView(state, "Import", form, submit)
}

// ── Option lists and field coercion ─────────────────────────────────────────

func statusOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(domain.ProjectStatuses))
	for _, s := range domain.ProjectStatuses {
		opts = append(opts, huh.NewOption(string(s), string(s)))
	}
	return opts
}

func roleOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(domain.UserRoles))
	for _, r := range domain.UserRoles {
		opts = append(opts, huh.NewOption(string(r), string(r)))
	}
	return opts
}

func todoStatusOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(domain.TodoStatuses))
	for _, s := range domain.TodoStatuses {
		opts = append(opts, huh.NewOption(string(s), string(s)))
	}
	return opts
}

func validateOptionalDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("expected YYYY-MM-DD")
	}
	return nil
}

func validateOptionalNumber(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
		return fmt.Errorf("expected a number")
	}
	return nil
}

func validateOptionalPercent(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || n < 0 || n > 100 {
		return fmt.Errorf("expected a percentage between 0 and 100")
	}
	return nil
}

// parseOptionalDate coerces a validated date string; blank or unparseable
// input yields nil so the tracker defaults it.
func parseOptionalDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}

func parseOptionalNumber(s string) float64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return n
}

func parseOptionalPercent(s string) float64 {
	return parseOptionalNumber(s) / 100
}
