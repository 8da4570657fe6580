package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/memad/portfolio/internal/domain/activity"
	"github.com/memad/portfolio/internal/domain/presentation"
	"github.com/memad/portfolio/internal/domain/project"
)

// ListProjectsInput filters list_projects.
type ListProjectsInput struct {
	Status string `json:"status,omitempty" jsonschema:"Only return projects with this status (planning, in-progress, completed, on-hold)"`
}

// IDInput addresses a single record.
type IDInput struct {
	ID string `json:"id" jsonschema:"Record identifier"`
}

// ProjectInput carries the editable project fields.
type ProjectInput struct {
	Title        string   `json:"title" jsonschema:"Project title"`
	Description  string   `json:"description" jsonschema:"Short description shown on the project card"`
	Category     string   `json:"category" jsonschema:"Free-form category, e.g. Web Development"`
	Status       string   `json:"status" jsonschema:"One of planning, in-progress, completed, on-hold"`
	Technologies []string `json:"technologies,omitempty" jsonschema:"Technology tags"`
	StartDate    string   `json:"start_date" jsonschema:"Start date as YYYY-MM-DD"`
	EndDate      string   `json:"end_date,omitempty" jsonschema:"End date as YYYY-MM-DD"`
	Team         []string `json:"team,omitempty" jsonschema:"Team member names"`
	ImageURL     string   `json:"image_url,omitempty" jsonschema:"Cover image URL"`
}

// UpdateProjectInput replaces a project wholesale.
type UpdateProjectInput struct {
	ID           string   `json:"id" jsonschema:"Identifier of the project to replace"`
	Title        string   `json:"title" jsonschema:"Project title"`
	Description  string   `json:"description" jsonschema:"Short description shown on the project card"`
	Category     string   `json:"category" jsonschema:"Free-form category"`
	Status       string   `json:"status" jsonschema:"One of planning, in-progress, completed, on-hold"`
	Technologies []string `json:"technologies,omitempty" jsonschema:"Technology tags"`
	StartDate    string   `json:"start_date" jsonschema:"Start date as YYYY-MM-DD"`
	EndDate      string   `json:"end_date,omitempty" jsonschema:"End date as YYYY-MM-DD"`
	Team         []string `json:"team,omitempty" jsonschema:"Team member names"`
	ImageURL     string   `json:"image_url,omitempty" jsonschema:"Cover image URL"`
}

// ListPresentationsInput filters list_presentations.
type ListPresentationsInput struct {
	Type string `json:"type,omitempty" jsonschema:"Only return presentations of this type (slides, pdf, link)"`
}

// RecentActivityInput filters get_recent_activity.
type RecentActivityInput struct {
	Limit int    `json:"limit,omitempty" jsonschema:"Maximum number of entries (default 50)"`
	Type  string `json:"type,omitempty" jsonschema:"Only return entries of this activity type"`
}

func registerTools(server *sdkmcp.Server, svcs Services) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_projects",
		Description: "List portfolio projects in display order",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in ListProjectsInput) (*sdkmcp.CallToolResult, any, error) {
		projects, err := svcs.Projects.List(ctx)
		if err != nil {
			return toolFailure(err)
		}
		if in.Status != "" {
			filtered := make([]project.Project, 0, len(projects))
			for _, p := range projects {
				if string(p.Status) == in.Status {
					filtered = append(filtered, p)
				}
			}
			projects = filtered
		}
		return toolJSON(map[string]any{"projects": projects})
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_project",
		Description: "Get a single project by ID",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in IDInput) (*sdkmcp.CallToolResult, any, error) {
		proj, err := svcs.Projects.Get(ctx, in.ID)
		if err != nil {
			return toolFailure(err)
		}
		return toolJSON(proj)
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_project",
		Description: "Create a project. Requires an admin session when the admin gate is enabled.",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in ProjectInput) (*sdkmcp.CallToolResult, any, error) {
		if !isAdmin(ctx) {
			return toolFailure(errAdminRequired)
		}
		proj, err := svcs.Projects.Create(ctx, project.CreateRequest{
			Title:        in.Title,
			Description:  in.Description,
			Category:     in.Category,
			Status:       project.Status(in.Status),
			Technologies: in.Technologies,
			StartDate:    in.StartDate,
			EndDate:      in.EndDate,
			Team:         in.Team,
			ImageURL:     in.ImageURL,
		})
		if err != nil {
			return toolFailure(err)
		}
		return toolJSON(proj)
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_project",
		Description: "Replace every field of an existing project. Omitted optional fields are cleared.",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in UpdateProjectInput) (*sdkmcp.CallToolResult, any, error) {
		if !isAdmin(ctx) {
			return toolFailure(errAdminRequired)
		}
		proj, err := svcs.Projects.Replace(ctx, in.ID, project.Project{
			ID:           in.ID,
			Title:        in.Title,
			Description:  in.Description,
			Category:     in.Category,
			Status:       project.Status(in.Status),
			Technologies: in.Technologies,
			StartDate:    in.StartDate,
			EndDate:      in.EndDate,
			Team:         in.Team,
			ImageURL:     in.ImageURL,
		})
		if err != nil {
			return toolFailure(err)
		}
		return toolJSON(proj)
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_project",
		Description: "Delete a project by ID",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in IDInput) (*sdkmcp.CallToolResult, any, error) {
		if !isAdmin(ctx) {
			return toolFailure(errAdminRequired)
		}
		if err := svcs.Projects.Delete(ctx, in.ID); err != nil {
			return toolFailure(err)
		}
		return toolJSON(map[string]any{"deleted": in.ID})
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_presentations",
		Description: "List presentations with their bilingual titles",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in ListPresentationsInput) (*sdkmcp.CallToolResult, any, error) {
		items, err := svcs.Presentations.List(ctx)
		if err != nil {
			return toolFailure(err)
		}
		if in.Type != "" {
			filtered := make([]presentation.Presentation, 0, len(items))
			for _, p := range items {
				if string(p.Type) == in.Type {
					filtered = append(filtered, p)
				}
			}
			items = filtered
		}
		return toolJSON(map[string]any{"presentations": items})
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_presentation",
		Description: "Get a single presentation, including its slides",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in IDInput) (*sdkmcp.CallToolResult, any, error) {
		pres, err := svcs.Presentations.Get(ctx, in.ID)
		if err != nil {
			return toolFailure(err)
		}
		return toolJSON(pres)
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_presentation",
		Description: "Delete a presentation by ID",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in IDInput) (*sdkmcp.CallToolResult, any, error) {
		if !isAdmin(ctx) {
			return toolFailure(errAdminRequired)
		}
		if err := svcs.Presentations.Delete(ctx, in.ID); err != nil {
			return toolFailure(err)
		}
		return toolJSON(map[string]any{"deleted": in.ID})
	})

	if svcs.Activity == nil {
		return
	}
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_recent_activity",
		Description: "Show recent content changes and admin logins, newest first",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in RecentActivityInput) (*sdkmcp.CallToolResult, any, error) {
		if !isAdmin(ctx) {
			return toolFailure(errAdminRequired)
		}
		opts := activity.ListActivityOptions{Limit: in.Limit}
		if in.Type != "" {
			t := activity.ActivityType(in.Type)
			opts.ActivityType = &t
		}
		entries, err := svcs.Activity.GetRecentActivity(ctx, opts)
		if err != nil {
			return toolFailure(err)
		}
		return toolJSON(map[string]any{"activity": entries})
	})
}

func toolJSON(v any) (*sdkmcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("encoding result: %w", err)
	}
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: string(data)}},
	}, nil, nil
}

// toolFailure reports err to the model as a tool-level error result.
func toolFailure(err error) (*sdkmcp.CallToolResult, any, error) {
	apiErr := MapError(err)
	data, _ := json.Marshal(apiErr)
	return &sdkmcp.CallToolResult{
		IsError: true,
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: string(data)}},
	}, nil, nil
}
