package cli

import (
	"github.com/andretka/deskplan/internal/cli/formatter"
	"github.com/andretka/deskplan/internal/domain"
	"github.com/andretka/deskplan/internal/tracker"
)

// CardTable is the presentation side-table behind the tracker's View port:
// rendered card strings keyed by project ID, in collection order, plus the
// detail panel of the project most recently shown. The tracker owns the
// entities; this table owns only their rendered representations.
type CardTable struct {
	order []string
	cards map[string]string

	active  *domain.Project
	details string
}

var _ tracker.View = (*CardTable)(nil)

// NewCardTable returns an empty table.
func NewCardTable() *CardTable {
	return &CardTable{cards: make(map[string]string)}
}

func (ct *CardTable) Attach(p *domain.Project) {
	if _, ok := ct.cards[p.ID]; !ok {
		ct.order = append(ct.order, p.ID)
	}
	ct.cards[p.ID] = formatter.FormatProjectCard(p)
}

func (ct *CardTable) Refresh(p *domain.Project) {
	if _, ok := ct.cards[p.ID]; !ok {
		ct.order = append(ct.order, p.ID)
	}
	ct.cards[p.ID] = formatter.FormatProjectCard(p)
}

func (ct *CardTable) Detach(id string) {
	delete(ct.cards, id)
	for i, other := range ct.order {
		if other == id {
			ct.order = append(ct.order[:i], ct.order[i+1:]...)
			break
		}
	}
	if ct.active != nil && ct.active.ID == id {
		ct.active = nil
		ct.details = ""
	}
}

func (ct *CardTable) ShowDetails(p *domain.Project) {
	ct.active = p
	ct.details = formatter.FormatProjectDetails(p)
}

func (ct *CardTable) ShowTodos(p *domain.Project) {
	ct.active = p
	// Todos appear inside the detail panel, so a todo mutation re-renders it.
	ct.details = formatter.FormatProjectDetails(p)
}

// IDs returns the project IDs in collection order.
func (ct *CardTable) IDs() []string { return ct.order }

// Card returns the cached rendered card for a project ID.
func (ct *CardTable) Card(id string) string { return ct.cards[id] }

// Len returns the number of cached cards.
func (ct *CardTable) Len() int { return len(ct.order) }

// Active returns the project whose details were last shown, or nil.
func (ct *CardTable) Active() *domain.Project { return ct.active }

// Details returns the cached rendered detail panel.
func (ct *CardTable) Details() string { return ct.details }
