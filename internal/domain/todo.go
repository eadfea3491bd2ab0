package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Todo is a single task item owned by exactly one project.
type Todo struct {
	ID        string
	Title     string
	Status    TodoStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TodoSeed is raw todo-like input, as it arrives from construction or a
// transfer document. Every field is optional; NormalizeTodo fills the gaps.
type TodoSeed struct {
	ID        string
	Title     string
	Status    string
	CreatedAt *time.Time
	UpdatedAt *time.Time
}

// TodoPatch updates a todo in place. Only title and status are mutable;
// nil fields are left untouched.
type TodoPatch struct {
	Title  *string
	Status *TodoStatus
}

// NormalizeTodo turns a raw seed into a valid todo. A supplied non-empty ID
// is preserved (transfer round-trips depend on this), otherwise one is
// generated. Missing timestamps default to now, unknown statuses to pending.
func NormalizeTodo(seed TodoSeed, now time.Time) Todo {
	id := seed.ID
	if id == "" {
		id = uuid.New().String()
	}
	status := TodoStatus(seed.Status)
	if !status.Valid() {
		status = TodoPending
	}
	return Todo{
		ID:        id,
		Title:     strings.TrimSpace(seed.Title),
		Status:    status,
		CreatedAt: TimeFromPtrWithDefault(now, seed.CreatedAt),
		UpdatedAt: TimeFromPtrWithDefault(now, seed.UpdatedAt),
	}
}
