// Package tracker owns the live project collection: the ordered list of
// projects, the cross-project invariants (name uniqueness, minimum length),
// the single active selection, and the import merge. Per-entity behavior
// lives in domain; rendering happens behind the View port.
package tracker

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/andretka/deskplan/internal/domain"
	"github.com/andretka/deskplan/internal/transfer"
)

// MinNameLen is the minimum trimmed project name length.
const MinNameLen = 5

// Tracker coordinates the project collection. All methods must be called
// from a single goroutine; every operation runs to completion before the
// next one starts, so no locking is needed.
type Tracker struct {
	projects []*domain.Project
	activeID string

	view View
	now  func() time.Time
	pick func(n int) int
	log  zerolog.Logger
}

// Option configures a Tracker during construction.
type Option func(*Tracker)

// WithView sets the render port. Defaults to NopView.
func WithView(v View) Option {
	return func(t *Tracker) { t.view = v }
}

// WithClock injects the time source, so tests can fix "now".
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithColorPicker injects the icon palette chooser. pick(n) must return a
// value in [0, n). Tests inject a deterministic chooser.
func WithColorPicker(pick func(n int) int) Option {
	return func(t *Tracker) { t.pick = pick }
}

// WithLogger sets the event logger. Defaults to a no-op logger.
func WithLogger(log zerolog.Logger) Option {
	return func(t *Tracker) { t.log = log }
}

// New creates an empty tracker with no active selection.
func New(opts ...Option) *Tracker {
	t := &Tracker{
		view: NopView{},
		now:  func() time.Time { return time.Now().UTC() },
		pick: rand.IntN,
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetView rebinds the render port and replays Attach for every project
// already in the collection, so a late-bound view starts in sync.
func (t *Tracker) SetView(v View) {
	if v == nil {
		v = NopView{}
	}
	t.view = v
	for _, p := range t.projects {
		v.Attach(p)
	}
}

// CreateData is the input for creating a project from the form boundary.
type CreateData struct {
	Name        string
	Description string
	Status      domain.ProjectStatus
	UserRole    domain.UserRole
	FinishDate  *time.Time
	Cost        float64
	Progress    float64
}

// Create validates the name, constructs the project, attaches its view card
// and appends it to the collection.
func (t *Tracker) Create(data CreateData) (*domain.Project, error) {
	name := strings.TrimSpace(data.Name)
	if err := t.checkName(name, ""); err != nil {
		return nil, err
	}
	p := domain.NewProject(domain.ProjectData{
		Name:        name,
		Description: data.Description,
		Status:      data.Status,
		UserRole:    data.UserRole,
		FinishDate:  data.FinishDate,
		Cost:        data.Cost,
		Progress:    data.Progress,
	}, t.now(), t.pick)
	t.projects = append(t.projects, p)
	t.view.Attach(p)
	t.log.Info().Str("project_id", p.ID).Str("name", p.Name).Msg("project created")
	return p, nil
}

// Projects returns the ordered project list. Callers must not reorder it.
func (t *Tracker) Projects() []*domain.Project {
	return t.projects
}

// Len returns the number of projects in the collection.
func (t *Tracker) Len() int { return len(t.projects) }

// FindByID returns the project with the given ID, or nil.
func (t *Tracker) FindByID(id string) *domain.Project {
	for _, p := range t.projects {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// FindByName returns the project whose name matches case-insensitively
// after trimming, or nil.
func (t *Tracker) FindByName(name string) *domain.Project {
	name = strings.TrimSpace(name)
	for _, p := range t.projects {
		if strings.EqualFold(p.Name, name) {
			return p
		}
	}
	return nil
}

// Delete removes the project with the given ID, detaches its view state and
// clears the active selection if it pointed at the project. A miss is a
// silent no-op.
func (t *Tracker) Delete(id string) {
	for i, p := range t.projects {
		if p.ID != id {
			continue
		}
		t.projects = append(t.projects[:i], t.projects[i+1:]...)
		t.view.Detach(id)
		if t.activeID == id {
			t.activeID = ""
		}
		t.log.Info().Str("project_id", id).Str("name", p.Name).Msg("project deleted")
		return
	}
}

// Update applies a partial update. Returns (nil, nil) when the ID is not
// found. A name change is re-validated against the rest of the collection
// first; on violation nothing is mutated.
func (t *Tracker) Update(id string, patch domain.ProjectPatch) (*domain.Project, error) {
	p := t.FindByID(id)
	if p == nil {
		return nil, nil
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if err := t.checkName(name, p.ID); err != nil {
			return nil, err
		}
		patch.Name = &name
	}
	p.Apply(patch, t.now())
	t.view.Refresh(p)
	if t.activeID == p.ID {
		t.view.ShowDetails(p)
		t.view.ShowTodos(p)
	}
	return p, nil
}

// OpenDetails marks the project active and renders its detail panel and todo
// list. A miss leaves the current selection untouched.
func (t *Tracker) OpenDetails(id string) {
	p := t.FindByID(id)
	if p == nil {
		return
	}
	t.activeID = p.ID
	t.view.ShowDetails(p)
	t.view.ShowTodos(p)
}

// ActiveProject resolves the active selection, or nil when there is none.
func (t *Tracker) ActiveProject() *domain.Project {
	if t.activeID == "" {
		return nil
	}
	return t.FindByID(t.activeID)
}

// AddTodoToActive appends a todo to the active project and re-renders the
// todo list. No active project is a silent no-op; an empty trimmed title is
// a validation error.
func (t *Tracker) AddTodoToActive(title string, status domain.TodoStatus) (*domain.Todo, error) {
	p := t.ActiveProject()
	if p == nil {
		return nil, nil
	}
	if strings.TrimSpace(title) == "" {
		return nil, &domain.ValidationError{Field: "title", Reason: "todo title must not be empty"}
	}
	todo := p.AddTodo(title, status, t.now())
	t.view.ShowTodos(p)
	return todo, nil
}

// UpdateTodoInActive updates a todo on the active project and re-renders the
// todo list. Missing project or todo is a silent no-op.
func (t *Tracker) UpdateTodoInActive(todoID string, patch domain.TodoPatch) (*domain.Todo, error) {
	p := t.ActiveProject()
	if p == nil {
		return nil, nil
	}
	todo := p.UpdateTodo(todoID, patch, t.now())
	if todo == nil {
		return nil, nil
	}
	t.view.ShowTodos(p)
	return todo, nil
}

// DeleteTodoInActive removes a todo from the active project and re-renders
// the todo list. Missing project or todo is a silent no-op.
func (t *Tracker) DeleteTodoInActive(todoID string) {
	p := t.ActiveProject()
	if p == nil {
		return
	}
	if p.DeleteTodo(todoID) {
		t.view.ShowTodos(p)
	}
}

// Export serializes every project into one ordered record sequence.
func (t *Tracker) Export() []transfer.ProjectRecord {
	return transfer.SnapshotAll(t.projects)
}

// ValidateName checks a prospective project name against the collection
// invariants without mutating anything. The form boundary uses it for inline
// validation; selfID excludes a project's own entry during rename.
func (t *Tracker) ValidateName(name, selfID string) error {
	return t.checkName(strings.TrimSpace(name), selfID)
}

// checkName enforces the minimum length and case-insensitive uniqueness
// invariants. selfID excludes a project's own entry during rename.
func (t *Tracker) checkName(name, selfID string) error {
	if utf8.RuneCountInString(name) < MinNameLen {
		return &domain.ValidationError{
			Field:  "name",
			Reason: fmt.Sprintf("must be at least %d characters", MinNameLen),
		}
	}
	if existing := t.FindByName(name); existing != nil && existing.ID != selfID {
		return &domain.ValidationError{
			Field:  "name",
			Reason: fmt.Sprintf("a project named %q already exists", existing.Name),
		}
	}
	return nil
}
