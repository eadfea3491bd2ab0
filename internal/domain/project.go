package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Project is a tracked unit of work with an owned, ordered list of todos.
// Name validation (minimum length, uniqueness) is deliberately not enforced
// here; the collection that owns the project checks it before mutating.
type Project struct {
	ID          string
	Name        string
	Description string
	Status      ProjectStatus
	UserRole    UserRole
	FinishDate  time.Time
	Cost        float64
	Progress    float64
	IconBG      string
	Todos       []Todo
}

// ProjectData is the input to NewProject. ID, FinishDate, IconBG and Todos
// are only supplied when reconstructing a project from a transfer document.
type ProjectData struct {
	ID          string
	Name        string
	Description string
	Status      ProjectStatus
	UserRole    UserRole
	FinishDate  *time.Time
	Cost        float64
	Progress    float64
	IconBG      string
	Todos       []TodoSeed
}

// ProjectPatch is a partial update. Nil fields are left untouched.
// FinishDate is special-cased: when FinishDateSet is true the date is
// renormalized even if the value itself is nil or zero (it defaults to now).
type ProjectPatch struct {
	Name          *string
	Description   *string
	Status        *ProjectStatus
	UserRole      *UserRole
	FinishDate    *time.Time
	FinishDateSet bool
	Cost          *float64
	Progress      *float64
}

// NewProject constructs a normalized project. Malformed optional data never
// fails construction: unknown enum values coerce to their defaults, a missing
// or zero finish date becomes now, and a missing icon color is picked from
// IconPalette via the injected chooser.
func NewProject(data ProjectData, now time.Time, pickColor func(n int) int) *Project {
	id := data.ID
	if id == "" {
		id = uuid.New().String()
	}
	status := data.Status
	if !status.Valid() {
		status = ProjectPending
	}
	role := data.UserRole
	if !role.Valid() {
		role = RoleDeveloper
	}
	icon := data.IconBG
	if icon == "" {
		icon = IconPalette[pickColor(len(IconPalette))]
	}
	todos := make([]Todo, 0, len(data.Todos))
	for _, seed := range data.Todos {
		todos = append(todos, NormalizeTodo(seed, now))
	}
	return &Project{
		ID:          id,
		Name:        strings.TrimSpace(data.Name),
		Description: strings.TrimSpace(data.Description),
		Status:      status,
		UserRole:    role,
		FinishDate:  TimeFromPtrWithDefault(now, data.FinishDate),
		Cost:        data.Cost,
		Progress:    data.Progress,
		IconBG:      icon,
		Todos:       todos,
	}
}

// Apply merges the present fields of patch into the project. Unknown enum
// values in the patch are ignored rather than applied.
func (p *Project) Apply(patch ProjectPatch, now time.Time) {
	if patch.Name != nil {
		p.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		p.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.Status != nil && patch.Status.Valid() {
		p.Status = *patch.Status
	}
	if patch.UserRole != nil && patch.UserRole.Valid() {
		p.UserRole = *patch.UserRole
	}
	if patch.FinishDateSet {
		p.FinishDate = TimeFromPtrWithDefault(now, patch.FinishDate)
	}
	if patch.Cost != nil {
		p.Cost = *patch.Cost
	}
	if patch.Progress != nil {
		p.Progress = *patch.Progress
	}
}

// AddTodo appends a new todo with the given title and status. The caller is
// responsible for re-rendering the todo list afterwards.
func (p *Project) AddTodo(title string, status TodoStatus, now time.Time) *Todo {
	if !status.Valid() {
		status = TodoPending
	}
	todo := Todo{
		ID:        uuid.New().String(),
		Title:     strings.TrimSpace(title),
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	p.Todos = append(p.Todos, todo)
	return &p.Todos[len(p.Todos)-1]
}

// UpdateTodo applies the present fields of patch to the todo with the given
// ID and stamps its UpdatedAt. Returns nil when the ID is not found.
func (p *Project) UpdateTodo(id string, patch TodoPatch, now time.Time) *Todo {
	for i := range p.Todos {
		if p.Todos[i].ID != id {
			continue
		}
		todo := &p.Todos[i]
		if patch.Title != nil {
			todo.Title = strings.TrimSpace(*patch.Title)
		}
		if patch.Status != nil && patch.Status.Valid() {
			todo.Status = *patch.Status
		}
		todo.UpdatedAt = now
		return todo
	}
	return nil
}

// DeleteTodo removes the todo with the given ID. Reports whether a todo was
// removed; a miss is not an error.
func (p *Project) DeleteTodo(id string) bool {
	for i := range p.Todos {
		if p.Todos[i].ID == id {
			p.Todos = append(p.Todos[:i], p.Todos[i+1:]...)
			return true
		}
	}
	return false
}

// FindTodo returns the todo with the given ID, or nil.
func (p *Project) FindTodo(id string) *Todo {
	for i := range p.Todos {
		if p.Todos[i].ID == id {
			return &p.Todos[i]
		}
	}
	return nil
}

// Initials derives the two-character badge text from the project name:
// the first letters of the first two words, or the first two characters of a
// single-word name. An empty name yields the "--" placeholder.
func (p *Project) Initials() string {
	words := strings.Fields(p.Name)
	switch {
	case len(words) >= 2:
		return firstRune(words[0]) + firstRune(words[1])
	case len(words) == 1:
		r := []rune(words[0])
		if len(r) >= 2 {
			return string(r[:2])
		}
		return string(r)
	default:
		return "--"
	}
}

func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}
