package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/andretka/deskplan/internal/domain"
)

const cardWidth = 42

// FormatProjectCard renders the summary card for one project: badge, name,
// description, status, role, cost and progress. The card is what the board
// keeps cached per project ID.
func FormatProjectCard(p *domain.Project) string {
	var b strings.Builder

	b.WriteString(InitialsBadge(p.Initials(), p.IconBG) + " " + Bold(p.Name) + "\n")
	if p.Description != "" {
		b.WriteString(Dim(Truncate(p.Description, cardWidth-4)) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(StatusPill(p.Status) + "  " + RoleBadge(p.UserRole) + "\n")
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("DUE "), StyleFg.Render(HumanDate(p.FinishDate))))
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("COST"), StyleFg.Render(FormatCost(p.Cost))))
	b.WriteString(RenderProgress(p.Progress, 14))

	done := 0
	for _, t := range p.Todos {
		if t.Status == domain.TodoDone {
			done++
		}
	}
	if len(p.Todos) > 0 {
		b.WriteString("\n" + Dim(fmt.Sprintf("%d/%d todos done", done, len(p.Todos))))
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(0, 1).
		Width(cardWidth).
		Render(b.String())
	return card
}

// FormatCost renders a cost value as a dollar amount.
func FormatCost(cost float64) string {
	return fmt.Sprintf("$%.2f", cost)
}
