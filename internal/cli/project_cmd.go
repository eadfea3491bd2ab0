package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andretka/deskplan/internal/cli/formatter"
	"github.com/andretka/deskplan/internal/domain"
	"github.com/andretka/deskplan/internal/tracker"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}
	cmd.AddCommand(
		newProjectCreateCmd(app),
		newProjectListCmd(app),
		newProjectShowCmd(app),
		newProjectEditCmd(app),
		newProjectRmCmd(app),
	)
	return cmd
}

// resolveProject finds a project by name first, then by ID.
func resolveProject(app *App, ref string) (*domain.Project, error) {
	if p := app.Tracker.FindByName(ref); p != nil {
		return p, nil
	}
	if p := app.Tracker.FindByID(ref); p != nil {
		return p, nil
	}
	return nil, fmt.Errorf("no project matching %q", ref)
}

func newProjectCreateCmd(app *App) *cobra.Command {
	var (
		description string
		status      string
		role        string
		finish      string
		cost        float64
		progress    float64
	)
	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Tracker.Create(tracker.CreateData{
				Name:        args[0],
				Description: description,
				Status:      domain.ProjectStatus(status),
				UserRole:    domain.UserRole(role),
				FinishDate:  parseOptionalDate(finish),
				Cost:        cost,
				Progress:    progress / 100,
			})
			if err != nil {
				return err
			}
			if err := app.saveSession(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s (%s)\n", p.Name, p.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&description, "desc", "", "project description")
	cmd.Flags().StringVar(&status, "status", string(domain.ProjectPending), "pending|active|finished")
	cmd.Flags().StringVar(&role, "role", string(domain.RoleDeveloper), "architect|engineer|developer")
	cmd.Flags().StringVar(&finish, "finish", "", "finish date (YYYY-MM-DD, default today)")
	cmd.Flags().Float64Var(&cost, "cost", 0, "project cost")
	cmd.Flags().Float64Var(&progress, "progress", 0, "progress percentage (0-100)")
	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projects := app.Tracker.Projects()
			if len(projects) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No projects.")
				return nil
			}
			for _, p := range projects {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProjectCard(p))
			}
			return nil
		},
	}
}

func newProjectShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show PROJECT",
		Short: "Show a project's details and todos",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolveProject(app, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProjectDetails(p))
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderBox("Todos", formatter.FormatTodoList(p.Todos, -1)))
			return nil
		},
	}
}

func newProjectEditCmd(app *App) *cobra.Command {
	var (
		name        string
		description string
		status      string
		role        string
		finish      string
		cost        float64
		progress    float64
	)
	cmd := &cobra.Command{
		Use:   "edit PROJECT",
		Short: "Update fields of a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolveProject(app, args[0])
			if err != nil {
				return err
			}
			var patch domain.ProjectPatch
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("desc") {
				patch.Description = &description
			}
			if cmd.Flags().Changed("status") {
				s := domain.ProjectStatus(status)
				patch.Status = &s
			}
			if cmd.Flags().Changed("role") {
				r := domain.UserRole(role)
				patch.UserRole = &r
			}
			if cmd.Flags().Changed("finish") {
				patch.FinishDate = parseOptionalDate(finish)
				patch.FinishDateSet = true
			}
			if cmd.Flags().Changed("cost") {
				patch.Cost = &cost
			}
			if cmd.Flags().Changed("progress") {
				fraction := progress / 100
				patch.Progress = &fraction
			}
			updated, err := app.Tracker.Update(p.ID, patch)
			if err != nil {
				return err
			}
			if err := app.saveSession(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", updated.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "new project name")
	cmd.Flags().StringVar(&description, "desc", "", "project description")
	cmd.Flags().StringVar(&status, "status", "", "pending|active|finished")
	cmd.Flags().StringVar(&role, "role", "", "architect|engineer|developer")
	cmd.Flags().StringVar(&finish, "finish", "", "finish date (YYYY-MM-DD, blank for today)")
	cmd.Flags().Float64Var(&cost, "cost", 0, "project cost")
	cmd.Flags().Float64Var(&progress, "progress", 0, "progress percentage (0-100)")
	return cmd
}

func newProjectRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm PROJECT",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolveProject(app, args[0])
			if err != nil {
				return err
			}
			app.Tracker.Delete(p.ID)
			if err := app.saveSession(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", p.Name)
			return nil
		},
	}
}
