package tracker

import "github.com/andretka/deskplan/internal/domain"

// View is the port through which the tracker keeps the rendered surface in
// sync with the project list. Implementations own presentation state only,
// keyed by project ID; entities stay with the tracker. This keeps the core
// headless: tests and the CLI run against NopView, the TUI against its card
// table.
type View interface {
	// Attach is called once when a project enters the collection.
	Attach(p *domain.Project)
	// Refresh re-renders the summary card after a project mutation.
	Refresh(p *domain.Project)
	// Detach discards all presentation state for the given project ID.
	Detach(id string)
	// ShowDetails re-renders the detail panel for the active project.
	ShowDetails(p *domain.Project)
	// ShowTodos re-renders the active project's todo list.
	ShowTodos(p *domain.Project)
}

// NopView discards every render request.
type NopView struct{}

func (NopView) Attach(*domain.Project)      {}
func (NopView) Refresh(*domain.Project)     {}
func (NopView) Detach(string)               {}
func (NopView) ShowDetails(*domain.Project) {}
func (NopView) ShowTodos(*domain.Project)   {}
