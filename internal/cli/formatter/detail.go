package formatter

import (
	"fmt"
	"strings"

	"github.com/andretka/deskplan/internal/domain"
)

// FormatProjectDetails renders the detail panel for the active project:
// the card fields plus the full description.
func FormatProjectDetails(p *domain.Project) string {
	var b strings.Builder

	b.WriteString(InitialsBadge(p.Initials(), p.IconBG) + " " + StyleBold.Render(p.Name) + "\n\n")

	if p.Description != "" {
		b.WriteString(StyleFg.Render(p.Description) + "\n\n")
	}

	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("STATUS  "), StatusPill(p.Status)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("ROLE    "), RoleBadge(p.UserRole)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("FINISH  "), StyleFg.Render(HumanDate(p.FinishDate))))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("COST    "), StyleFg.Render(FormatCost(p.Cost))))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("PROGRESS"), RenderProgress(p.Progress, 18)))

	return RenderBox(p.Name, b.String())
}

// FormatTodoList renders the ordered todo rows of a project. cursor is the
// highlighted row index, or -1 for none.
func FormatTodoList(todos []domain.Todo, cursor int) string {
	if len(todos) == 0 {
		return StyleDim.Render("No todos yet. Press 'a' to add one.")
	}

	var b strings.Builder
	for i, t := range todos {
		marker := "  "
		if i == cursor {
			marker = StyleHeader.Render("> ")
		}
		title := StyleFg.Render(t.Title)
		if i == cursor {
			title = StyleBold.Render(t.Title)
		}
		b.WriteString(fmt.Sprintf("%s%s %s %s\n", marker, TodoGlyph(t.Status), title, Dim(string(t.Status))))
	}
	return strings.TrimRight(b.String(), "\n")
}
