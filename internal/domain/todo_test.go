package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTodo_Defaults(t *testing.T) {
	todo := NormalizeTodo(TodoSeed{Title: "  paint walls  "}, testNow)

	assert.NotEmpty(t, todo.ID)
	assert.Equal(t, "paint walls", todo.Title)
	assert.Equal(t, TodoPending, todo.Status)
	assert.Equal(t, testNow, todo.CreatedAt)
	assert.Equal(t, testNow, todo.UpdatedAt)
}

func TestNormalizeTodo_PreservesSuppliedFields(t *testing.T) {
	created := testNow.AddDate(0, -2, 0)
	updated := testNow.AddDate(0, -1, 0)
	todo := NormalizeTodo(TodoSeed{
		ID:        "stable-id",
		Title:     "paint walls",
		Status:    "blocked",
		CreatedAt: &created,
		UpdatedAt: &updated,
	}, testNow)

	assert.Equal(t, "stable-id", todo.ID)
	assert.Equal(t, TodoBlocked, todo.Status)
	assert.Equal(t, created, todo.CreatedAt)
	assert.Equal(t, updated, todo.UpdatedAt)
}

func TestNormalizeTodo_UnknownStatusBecomesPending(t *testing.T) {
	todo := NormalizeTodo(TodoSeed{Title: "paint walls", Status: "someday"}, testNow)
	assert.Equal(t, TodoPending, todo.Status)
}

func TestNormalizeTodo_GeneratedIDsAreUnique(t *testing.T) {
	a := NormalizeTodo(TodoSeed{Title: "one"}, testNow)
	b := NormalizeTodo(TodoSeed{Title: "two"}, testNow)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestTimeFromPtrWithDefault(t *testing.T) {
	var zero time.Time
	assert.Equal(t, testNow, TimeFromPtrWithDefault(testNow, nil))
	assert.Equal(t, testNow, TimeFromPtrWithDefault(testNow, &zero), "zero time falls through")

	other := testNow.Add(time.Hour)
	assert.Equal(t, other, TimeFromPtrWithDefault(testNow, &other))
}
