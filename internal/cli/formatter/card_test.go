package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andretka/deskplan/internal/domain"
	"github.com/andretka/deskplan/internal/testutil"
)

func TestFormatProjectCard(t *testing.T) {
	p := testutil.NewTestProject("Hospital Center")
	p.Description = "six floors and a helipad"
	p.Cost = 1200.5
	p.Progress = 0.4
	p.Todos = []domain.Todo{
		{ID: "1", Title: "pour foundation", Status: domain.TodoDone},
		{ID: "2", Title: "wire floors", Status: domain.TodoPending},
	}

	card := FormatProjectCard(p)
	assert.Contains(t, card, "Hospital Center")
	assert.Contains(t, card, "HC", "initials badge")
	assert.Contains(t, card, "six floors and a helipad")
	assert.Contains(t, card, "ACTIVE")
	assert.Contains(t, card, "ENGINEER")
	assert.Contains(t, card, "$1200.50")
	assert.Contains(t, card, "40%")
	assert.Contains(t, card, "1/2 todos done")
	assert.Contains(t, card, "Mar 15, 2026")
}

func TestFormatProjectCard_NoOptionalRows(t *testing.T) {
	p := testutil.NewTestProject("Hospital Center")

	card := FormatProjectCard(p)
	assert.NotContains(t, card, "todos done", "no todo counter without todos")
	assert.Contains(t, card, "$0.00")
}

func TestFormatProjectCard_TruncatesLongDescription(t *testing.T) {
	p := testutil.NewTestProject("Hospital Center")
	p.Description = "a description far too long to fit on a single card row without being cut short"

	card := FormatProjectCard(p)
	assert.Contains(t, card, "…")
	assert.NotContains(t, card, "cut short")
}

func TestFormatCost(t *testing.T) {
	assert.Equal(t, "$0.00", FormatCost(0))
	assert.Equal(t, "$1200.50", FormatCost(1200.5))
}
