package tracker

import (
	"strings"
	"unicode/utf8"

	"github.com/andretka/deskplan/internal/domain"
	"github.com/andretka/deskplan/internal/transfer"
)

// ImportStats summarizes one import batch.
type ImportStats struct {
	Created int
	Merged  int
	Skipped int
}

// Import applies a decoded transfer document entry by entry, in input order.
// Matched records (by ID, else by case-insensitive name) merge field by
// field, falling back to the existing value wherever the input carried no
// usable one; a present todos list fully replaces the existing todos.
// Unmatched records become new projects, unless their name fails validation,
// in which case they are skipped silently. The batch is not atomic: a
// skipped entry does not roll back entries already applied.
//
// Re-importing an unmodified export is a no-op for every observable field.
func (t *Tracker) Import(records []transfer.ProjectRecord) ImportStats {
	var stats ImportStats
	for _, rec := range records {
		if p := t.match(rec); p != nil {
			t.merge(p, rec)
			stats.Merged++
			continue
		}
		name := strings.TrimSpace(strVal(rec.Name))
		if utf8.RuneCountInString(name) < MinNameLen {
			stats.Skipped++
			continue
		}
		p := domain.NewProject(domain.ProjectData{
			ID:          strVal(rec.ID),
			Name:        name,
			Description: strVal(rec.Description),
			Status:      domain.ProjectStatus(strVal(rec.Status)),
			UserRole:    domain.UserRole(strVal(rec.UserRole)),
			FinishDate:  rec.FinishDate,
			Cost:        domain.Float64FromPtrWithDefault(0, rec.Cost),
			Progress:    domain.Float64FromPtrWithDefault(0, rec.Progress),
			IconBG:      strVal(rec.IconBG),
			Todos:       transfer.TodoSeeds(rec.Todos),
		}, t.now(), t.pick)
		t.projects = append(t.projects, p)
		t.view.Attach(p)
		stats.Created++
	}
	t.log.Info().
		Int("created", stats.Created).
		Int("merged", stats.Merged).
		Int("skipped", stats.Skipped).
		Msg("import finished")
	return stats
}

// match resolves an existing project for a record: ID match wins, then
// case-insensitive trimmed name.
func (t *Tracker) match(rec transfer.ProjectRecord) *domain.Project {
	if id := strVal(rec.ID); id != "" {
		if p := t.FindByID(id); p != nil {
			return p
		}
	}
	if rec.Name != nil {
		if p := t.FindByName(*rec.Name); p != nil {
			return p
		}
	}
	return nil
}

// merge overwrites only the fields the record carries a usable value for.
// An incoming name that would break the collection invariants (too short, or
// colliding with another live project) counts as unusable and keeps the
// existing name. Todos are the one exception to per-field fallback: a present
// list replaces the existing list wholesale.
func (t *Tracker) merge(p *domain.Project, rec transfer.ProjectRecord) {
	now := t.now()
	if rec.Name != nil {
		if name := strings.TrimSpace(*rec.Name); t.checkName(name, p.ID) == nil {
			p.Name = name
		}
	}
	if rec.Description != nil {
		p.Description = strings.TrimSpace(*rec.Description)
	}
	if rec.Status != nil {
		if s := domain.ProjectStatus(*rec.Status); s.Valid() {
			p.Status = s
		}
	}
	if rec.UserRole != nil {
		if r := domain.UserRole(*rec.UserRole); r.Valid() {
			p.UserRole = r
		}
	}
	p.FinishDate = domain.TimeFromPtrWithDefault(p.FinishDate, rec.FinishDate)
	p.Cost = domain.Float64FromPtrWithDefault(p.Cost, rec.Cost)
	p.Progress = domain.Float64FromPtrWithDefault(p.Progress, rec.Progress)
	if rec.IconBG != nil && *rec.IconBG != "" {
		p.IconBG = *rec.IconBG
	}
	if rec.Todos != nil {
		todos := make([]domain.Todo, 0, len(rec.Todos))
		for _, tr := range rec.Todos {
			todos = append(todos, domain.NormalizeTodo(tr.Seed(), now))
		}
		p.Todos = todos
	}
	t.view.Refresh(p)
	if t.activeID == p.ID {
		t.view.ShowDetails(p)
		t.view.ShowTodos(p)
	}
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
