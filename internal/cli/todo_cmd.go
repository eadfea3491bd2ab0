package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/andretka/deskplan/internal/cli/formatter"
	"github.com/andretka/deskplan/internal/domain"
)

func newTodoCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Manage a project's todos",
	}
	cmd.AddCommand(
		newTodoAddCmd(app),
		newTodoListCmd(app),
		newTodoEditCmd(app),
		newTodoRmCmd(app),
	)
	return cmd
}

// resolveTodo picks a todo by its 1-based position in the project's list.
func resolveTodo(p *domain.Project, ref string) (*domain.Todo, error) {
	n, err := strconv.Atoi(ref)
	if err != nil || n < 1 || n > len(p.Todos) {
		return nil, fmt.Errorf("no todo #%s in %s (%d todos)", ref, p.Name, len(p.Todos))
	}
	return &p.Todos[n-1], nil
}

func newTodoAddCmd(app *App) *cobra.Command {
	var status string
	cmd := &cobra.Command{
		Use:   "add PROJECT TITLE",
		Short: "Add a todo to a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolveProject(app, args[0])
			if err != nil {
				return err
			}
			app.Tracker.OpenDetails(p.ID)
			todo, err := app.Tracker.AddTodoToActive(args[1], domain.TodoStatus(status))
			if err != nil {
				return err
			}
			if err := app.saveSession(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %q to %s\n", todo.Title, p.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", string(domain.TodoPending),
		"pending|in_progress|done|blocked")
	return cmd
}

func newTodoListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list PROJECT",
		Short: "List a project's todos",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolveProject(app, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderBox(p.Name, formatter.FormatTodoList(p.Todos, -1)))
			return nil
		},
	}
}

func newTodoEditCmd(app *App) *cobra.Command {
	var (
		title  string
		status string
	)
	cmd := &cobra.Command{
		Use:   "edit PROJECT N",
		Short: "Update a todo by its list position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolveProject(app, args[0])
			if err != nil {
				return err
			}
			todo, err := resolveTodo(p, args[1])
			if err != nil {
				return err
			}
			var patch domain.TodoPatch
			if cmd.Flags().Changed("title") {
				patch.Title = &title
			}
			if cmd.Flags().Changed("status") {
				s := domain.TodoStatus(status)
				patch.Status = &s
			}
			app.Tracker.OpenDetails(p.ID)
			updated, err := app.Tracker.UpdateTodoInActive(todo.ID, patch)
			if err != nil {
				return err
			}
			if err := app.saveSession(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %q (%s)\n", updated.Title, updated.Status)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&status, "status", "", "pending|in_progress|done|blocked")
	return cmd
}

func newTodoRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm PROJECT N",
		Short: "Delete a todo by its list position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolveProject(app, args[0])
			if err != nil {
				return err
			}
			todo, err := resolveTodo(p, args[1])
			if err != nil {
				return err
			}
			app.Tracker.OpenDetails(p.ID)
			app.Tracker.DeleteTodoInActive(todo.ID)
			if err := app.saveSession(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted todo from %s\n", p.Name)
			return nil
		},
	}
}
