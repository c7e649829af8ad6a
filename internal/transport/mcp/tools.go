package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	mcpmcp "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	domainproject "github.com/alanyang/projecthub/internal/domain/project"
	projectsvc "github.com/alanyang/projecthub/internal/service/project"
)

// RegisterTools registers all MCP tools on the server.
// Add a new tool by adding a new AddTool call — server.go never changes.
func RegisterTools(s *mcpserver.MCPServer, projectSvc *projectsvc.Service) {
	s.AddTool(mcpmcp.NewTool("create_project",
		mcpmcp.WithDescription("Create a new project. Projects start in the PLANNED state. Names must be unique and 3-100 characters long."),
		mcpmcp.WithString("name", mcpmcp.Required(), mcpmcp.Description("Unique project name")),
		mcpmcp.WithString("description", mcpmcp.Description("Optional project description")),
	), createProjectHandler(projectSvc))

	s.AddTool(mcpmcp.NewTool("get_project",
		mcpmcp.WithDescription("Fetch a single project by its UUID."),
		mcpmcp.WithString("project_id", mcpmcp.Required(), mcpmcp.Description("Project UUID")),
	), getProjectHandler(projectSvc))

	s.AddTool(mcpmcp.NewTool("list_projects",
		mcpmcp.WithDescription("List projects ordered by creation time, optionally filtered by state. Returns pagination metadata."),
		mcpmcp.WithString("state", mcpmcp.Description("Optional state filter: PLANNED, IN_PROGRESS, COMPLETED, or CANCELLED")),
		mcpmcp.WithString("page", mcpmcp.Description("1-indexed page number, defaults to 1")),
	), listProjectsHandler(projectSvc))

	s.AddTool(mcpmcp.NewTool("transition_project",
		mcpmcp.WithDescription("Move a project along its lifecycle. Valid edges: PLANNED→IN_PROGRESS or CANCELLED, IN_PROGRESS→COMPLETED or CANCELLED. COMPLETED and CANCELLED are terminal."),
		mcpmcp.WithString("project_id", mcpmcp.Required(), mcpmcp.Description("Project UUID")),
		mcpmcp.WithString("state", mcpmcp.Required(), mcpmcp.Description("Target state")),
	), transitionProjectHandler(projectSvc))
}

// ── Tool handlers ─────────────────────────────────────────────────────────

func createProjectHandler(svc *projectsvc.Service) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		name := mcpmcp.ParseString(req, "name", "")
		description := mcpmcp.ParseString(req, "description", "")

		p, err := svc.Create(ctx, name, description)
		if err != nil {
			return mcpmcp.NewToolResultText(fmt.Sprintf("error: %s", err)), nil
		}
		return jsonResult(p)
	}
}

func getProjectHandler(svc *projectsvc.Service) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		id, err := uuid.Parse(mcpmcp.ParseString(req, "project_id", ""))
		if err != nil {
			return mcpmcp.NewToolResultText("error: invalid project_id"), nil
		}

		p, err := svc.GetByID(ctx, id)
		if err != nil {
			return mcpmcp.NewToolResultText(fmt.Sprintf("error: %s", err)), nil
		}
		return jsonResult(p)
	}
}

func listProjectsHandler(svc *projectsvc.Service) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		page, err := strconv.Atoi(mcpmcp.ParseString(req, "page", "1"))
		if err != nil || page < 1 {
			page = 1
		}

		var state *domainproject.State
		if raw := mcpmcp.ParseString(req, "state", ""); raw != "" {
			parsed, err := domainproject.ParseState(raw)
			if err != nil {
				return mcpmcp.NewToolResultText(fmt.Sprintf("error: %s", err)), nil
			}
			state = &parsed
		}

		result, err := svc.List(ctx, page, 0, state)
		if err != nil {
			return mcpmcp.NewToolResultText(fmt.Sprintf("error: %s", err)), nil
		}
		return jsonResult(result)
	}
}

func transitionProjectHandler(svc *projectsvc.Service) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		id, err := uuid.Parse(mcpmcp.ParseString(req, "project_id", ""))
		if err != nil {
			return mcpmcp.NewToolResultText("error: invalid project_id"), nil
		}

		target, err := domainproject.ParseState(mcpmcp.ParseString(req, "state", ""))
		if err != nil {
			return mcpmcp.NewToolResultText(fmt.Sprintf("error: %s", err)), nil
		}

		p, err := svc.TransitionState(ctx, id, target)
		if err != nil {
			return mcpmcp.NewToolResultText(fmt.Sprintf("error: %s", err)), nil
		}
		return jsonResult(p)
	}
}

func jsonResult(v interface{}) (*mcpmcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcpmcp.NewToolResultText(fmt.Sprintf("error: %s", err)), nil
	}
	return mcpmcp.NewToolResultText(string(data)), nil
}
