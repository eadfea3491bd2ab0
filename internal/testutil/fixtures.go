// Package testutil provides deterministic fixtures for tests: a fixed clock,
// a sequential palette chooser and pre-built entities.
package testutil

import (
	"time"

	"github.com/andretka/deskplan/internal/domain"
)

// BaseTime is the fixed "now" used across tests.
var BaseTime = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

// FixedClock returns a clock stuck at t.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// SeqPicker returns a chooser that walks the palette in order, wrapping
// around. Deterministic stand-in for the random production chooser.
func SeqPicker() func(n int) int {
	next := 0
	return func(n int) int {
		v := next % n
		next++
		return v
	}
}

// FirstPicker always chooses index 0.
func FirstPicker(n int) int { return 0 }

// NewTestProject builds a normalized project with the given name and sane
// defaults, using BaseTime and the first palette color.
func NewTestProject(name string) *domain.Project {
	return domain.NewProject(domain.ProjectData{
		Name:     name,
		Status:   domain.ProjectActive,
		UserRole: domain.RoleEngineer,
	}, BaseTime, FirstPicker)
}
