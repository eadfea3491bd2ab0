package domain

type ProjectStatus string

const (
	ProjectPending  ProjectStatus = "pending"
	ProjectActive   ProjectStatus = "active"
	ProjectFinished ProjectStatus = "finished"
)

// ProjectStatuses lists every accepted project status, in display order.
var ProjectStatuses = []ProjectStatus{ProjectPending, ProjectActive, ProjectFinished}

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectPending, ProjectActive, ProjectFinished:
		return true
	}
	return false
}

type UserRole string

const (
	RoleArchitect UserRole = "architect"
	RoleEngineer  UserRole = "engineer"
	RoleDeveloper UserRole = "developer"
)

// UserRoles lists every accepted user role, in display order.
var UserRoles = []UserRole{RoleArchitect, RoleEngineer, RoleDeveloper}

func (r UserRole) Valid() bool {
	switch r {
	case RoleArchitect, RoleEngineer, RoleDeveloper:
		return true
	}
	return false
}

type TodoStatus string

const (
	TodoPending    TodoStatus = "pending"
	TodoInProgress TodoStatus = "in_progress"
	TodoDone       TodoStatus = "done"
	TodoBlocked    TodoStatus = "blocked"
)

// TodoStatuses lists every accepted todo status, in display order.
var TodoStatuses = []TodoStatus{TodoPending, TodoInProgress, TodoDone, TodoBlocked}

func (s TodoStatus) Valid() bool {
	switch s {
	case TodoPending, TodoInProgress, TodoDone, TodoBlocked:
		return true
	}
	return false
}

// IconPalette is the fixed set of badge background colors a project may be
// assigned at creation. The assignment is stable for the project's lifetime.
var IconPalette = []string{
	"#8ec07c",
	"#fabd2f",
	"#fb4934",
	"#83a598",
	"#d3869b",
	"#fe8019",
}
