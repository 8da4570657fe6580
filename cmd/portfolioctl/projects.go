package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/memad/portfolio/internal/domain/project"
)

func (c *cli) projectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"project"},
		Short:   "List and edit portfolio projects",
	}
	cmd.AddCommand(c.projectsListCmd(), c.projectsGetCmd(), c.projectsCreateCmd(), c.projectsDeleteCmd())
	return cmd
}

func (c *cli) projectsListCmd() *cobra.Command {
	var status string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects in display order",
		Example: `  portfolioctl projects list
  portfolioctl projects list --status completed --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := c.client.ListProjects(cmd.Context())
			if err != nil {
				return fmt.Errorf("list projects: %w", err)
			}
			if status != "" {
				filtered := projects[:0]
				for _, p := range projects {
					if string(p.Status) == status {
						filtered = append(filtered, p)
					}
				}
				projects = filtered
			}

			if c.jsonOutput() {
				return printJSON(c.out, projects)
			}
			if len(projects) == 0 {
				fmt.Fprintln(c.out, "No projects found.")
				return nil
			}
			rows := make([][]string, 0, len(projects))
			for _, p := range projects {
				rows = append(rows, []string{p.ID, truncate(p.Title, 40), string(p.Status), p.Category, p.StartDate})
			}
			if err := printTable(c.out, []string{"ID", "TITLE", "STATUS", "CATEGORY", "START"}, rows); err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Total: %d project(s)\n", len(projects))
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "filter by status (planning, in-progress, completed, on-hold)")
	return cmd
}

func (c *cli) projectsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			proj, err := c.client.GetProject(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("get project %q: %w", args[0], err)
			}
			if c.jsonOutput() {
				return printJSON(c.out, proj)
			}
			fmt.Fprintf(c.out, "ID:           %s\n", proj.ID)
			fmt.Fprintf(c.out, "Title:        %s\n", proj.Title)
			fmt.Fprintf(c.out, "Status:       %s\n", proj.Status)
			fmt.Fprintf(c.out, "Category:     %s\n", proj.Category)
			fmt.Fprintf(c.out, "Technologies: %s\n", strings.Join(proj.Technologies, ", "))
			fmt.Fprintf(c.out, "Dates:        %s .. %s\n", proj.StartDate, proj.EndDate)
			if len(proj.Team) > 0 {
				fmt.Fprintf(c.out, "Team:         %s\n", strings.Join(proj.Team, ", "))
			}
			fmt.Fprintf(c.out, "\n%s\n", proj.Description)
			return nil
		},
	}
}

func (c *cli) projectsCreateCmd() *cobra.Command {
	var proj project.Project
	var status string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project",
		Example: `  portfolioctl projects create --title "Sensor Hub" --description "Edge gateway" \
    --category IoT --status planning --start 2025-01-10 --tech Go --tech MQTT`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			proj.Status = project.Status(status)
			created, err := c.client.CreateProject(cmd.Context(), proj)
			if err != nil {
				return fmt.Errorf("create project: %w", err)
			}
			if c.jsonOutput() {
				return printJSON(c.out, created)
			}
			fmt.Fprintf(c.out, "Created project: %s\n", created.ID)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&proj.Title, "title", "", "project title")
	f.StringVar(&proj.Description, "description", "", "short description")
	f.StringVar(&proj.Category, "category", "", "category")
	f.StringVar(&status, "status", string(project.StatusPlanning), "status (planning, in-progress, completed, on-hold)")
	f.StringSliceVar(&proj.Technologies, "tech", nil, "technology tag (repeatable)")
	f.StringVar(&proj.StartDate, "start", "", "start date YYYY-MM-DD")
	f.StringVar(&proj.EndDate, "end", "", "end date YYYY-MM-DD")
	f.StringSliceVar(&proj.Team, "team", nil, "team member (repeatable)")
	f.StringVar(&proj.ImageURL, "image", "", "cover image URL")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func (c *cli) projectsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.client.DeleteProject(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("delete project %q: %w", args[0], err)
			}
			if c.jsonOutput() {
				return printJSON(c.out, map[string]string{"deleted": args[0], "status": "success"})
			}
			fmt.Fprintf(c.out, "Deleted project: %s\n", args[0])
			return nil
		},
	}
}
