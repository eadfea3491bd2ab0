package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

func pickFirst(n int) int { return 0 }

func TestNewProject_Normalizes(t *testing.T) {
	p := NewProject(ProjectData{
		Name:        "  Hospital Center  ",
		Description: " rebuild the east wing ",
		Status:      ProjectActive,
		UserRole:    RoleArchitect,
	}, testNow, pickFirst)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Hospital Center", p.Name)
	assert.Equal(t, "rebuild the east wing", p.Description)
	assert.Equal(t, ProjectActive, p.Status)
	assert.Equal(t, RoleArchitect, p.UserRole)
	assert.Equal(t, testNow, p.FinishDate, "missing finish date defaults to now")
	assert.Equal(t, IconPalette[0], p.IconBG)
	assert.Zero(t, p.Cost)
	assert.Zero(t, p.Progress)
	assert.Empty(t, p.Todos)
}

func TestNewProject_CoercesUnknownEnums(t *testing.T) {
	p := NewProject(ProjectData{
		Name:     "Metro Line",
		Status:   ProjectStatus("bogus"),
		UserRole: UserRole(""),
	}, testNow, pickFirst)

	assert.Equal(t, ProjectPending, p.Status)
	assert.Equal(t, RoleDeveloper, p.UserRole)
}

func TestNewProject_PreservesSuppliedIdentity(t *testing.T) {
	finish := testNow.AddDate(0, 6, 0)
	p := NewProject(ProjectData{
		ID:         "fixed-id",
		Name:       "Metro Line",
		Status:     ProjectPending,
		UserRole:   RoleEngineer,
		FinishDate: &finish,
		IconBG:     "#123456",
	}, testNow, pickFirst)

	assert.Equal(t, "fixed-id", p.ID)
	assert.Equal(t, finish, p.FinishDate)
	assert.Equal(t, "#123456", p.IconBG, "supplied icon color is preserved, not re-rolled")
}

func TestNewProject_NormalizesSuppliedTodos(t *testing.T) {
	created := testNow.AddDate(0, -1, 0)
	p := NewProject(ProjectData{
		Name:     "Metro Line",
		Status:   ProjectPending,
		UserRole: RoleEngineer,
		Todos: []TodoSeed{
			{ID: "keep-me", Title: " dig tunnel ", Status: "done", CreatedAt: &created, UpdatedAt: &created},
			{Title: "lay tracks"},
		},
	}, testNow, pickFirst)

	require.Len(t, p.Todos, 2)
	assert.Equal(t, "keep-me", p.Todos[0].ID)
	assert.Equal(t, "dig tunnel", p.Todos[0].Title)
	assert.Equal(t, TodoDone, p.Todos[0].Status)
	assert.Equal(t, created, p.Todos[0].CreatedAt)

	assert.NotEmpty(t, p.Todos[1].ID)
	assert.Equal(t, TodoPending, p.Todos[1].Status)
	assert.Equal(t, testNow, p.Todos[1].CreatedAt)
	assert.Equal(t, testNow, p.Todos[1].UpdatedAt)
}

func TestApply_OnlyPresentFields(t *testing.T) {
	p := NewProject(ProjectData{
		Name:        "Metro Line",
		Description: "underground",
		Status:      ProjectActive,
		UserRole:    RoleEngineer,
	}, testNow, pickFirst)

	cost := 1200.50
	p.Apply(ProjectPatch{Cost: &cost}, testNow)

	assert.Equal(t, "Metro Line", p.Name)
	assert.Equal(t, "underground", p.Description)
	assert.Equal(t, ProjectActive, p.Status)
	assert.Equal(t, 1200.50, p.Cost)
}

func TestApply_FinishDateRenormalizesWhenSet(t *testing.T) {
	p := NewProject(ProjectData{
		Name:     "Metro Line",
		Status:   ProjectActive,
		UserRole: RoleEngineer,
	}, testNow, pickFirst)

	later := testNow.AddDate(1, 0, 0)

	// Not marked as set: untouched even though the pointer field is nil.
	p.Apply(ProjectPatch{}, later)
	assert.Equal(t, testNow, p.FinishDate)

	// Marked as set with no usable value: defaults to now.
	p.Apply(ProjectPatch{FinishDateSet: true}, later)
	assert.Equal(t, later, p.FinishDate)

	// Marked as set with a value: applied.
	target := testNow.AddDate(2, 0, 0)
	p.Apply(ProjectPatch{FinishDate: &target, FinishDateSet: true}, later)
	assert.Equal(t, target, p.FinishDate)
}

func TestApply_IgnoresUnknownEnums(t *testing.T) {
	p := NewProject(ProjectData{
		Name:     "Metro Line",
		Status:   ProjectActive,
		UserRole: RoleEngineer,
	}, testNow, pickFirst)

	bogus := ProjectStatus("bogus")
	p.Apply(ProjectPatch{Status: &bogus}, testNow)
	assert.Equal(t, ProjectActive, p.Status)
}

func TestAddTodo(t *testing.T) {
	p := NewProject(ProjectData{
		Name:     "Metro Line",
		Status:   ProjectActive,
		UserRole: RoleEngineer,
	}, testNow, pickFirst)

	todo := p.AddTodo("  dig tunnel  ", TodoInProgress, testNow)

	require.Len(t, p.Todos, 1)
	assert.NotEmpty(t, todo.ID)
	assert.Equal(t, "dig tunnel", todo.Title)
	assert.Equal(t, TodoInProgress, todo.Status)
	assert.Equal(t, testNow, todo.CreatedAt)
	assert.Equal(t, testNow, todo.UpdatedAt)

	p.AddTodo("lay tracks", TodoPending, testNow)
	assert.Equal(t, "dig tunnel", p.Todos[0].Title, "insertion order preserved")
	assert.Equal(t, "lay tracks", p.Todos[1].Title)
}

func TestUpdateTodo(t *testing.T) {
	p := NewProject(ProjectData{
		Name:     "Metro Line",
		Status:   ProjectActive,
		UserRole: RoleEngineer,
	}, testNow, pickFirst)
	todo := p.AddTodo("dig tunnel", TodoPending, testNow)
	id := todo.ID

	later := testNow.Add(time.Hour)
	status := TodoDone
	updated := p.UpdateTodo(id, TodoPatch{Status: &status}, later)

	require.NotNil(t, updated)
	assert.Equal(t, "dig tunnel", updated.Title, "absent title untouched")
	assert.Equal(t, TodoDone, updated.Status)
	assert.Equal(t, testNow, updated.CreatedAt)
	assert.Equal(t, later, updated.UpdatedAt, "mutation stamps UpdatedAt")
}

func TestUpdateTodo_MissReturnsNil(t *testing.T) {
	p := NewProject(ProjectData{
		Name:     "Metro Line",
		Status:   ProjectActive,
		UserRole: RoleEngineer,
	}, testNow, pickFirst)

	assert.Nil(t, p.UpdateTodo("nope", TodoPatch{}, testNow))
}

func TestDeleteTodo(t *testing.T) {
	p := NewProject(ProjectData{
		Name:     "Metro Line",
		Status:   ProjectActive,
		UserRole: RoleEngineer,
	}, testNow, pickFirst)
	first := p.AddTodo("dig tunnel", TodoPending, testNow).ID
	p.AddTodo("lay tracks", TodoPending, testNow)

	assert.True(t, p.DeleteTodo(first))
	require.Len(t, p.Todos, 1)
	assert.Equal(t, "lay tracks", p.Todos[0].Title)

	assert.False(t, p.DeleteTodo("nope"), "miss is not an error")
	assert.Len(t, p.Todos, 1)
}

func TestInitials(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Hospital Center", "HC"},
		{"Bridge", "Br"},
		{"", "--"},
		{"north tower annex", "nt"},
		{"X", "X"},
	}
	for _, tc := range tests {
		p := &Project{Name: tc.name}
		assert.Equal(t, tc.want, p.Initials(), "name %q", tc.name)
	}
}
