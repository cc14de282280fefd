// Package mcpadapter binds the executors to MCP tools. Handlers return a
// typed output struct and let the SDK build the tool result; a denied query
// is a normal result with allowed=false and the classifier's verbatim
// reason, not a protocol error.
package mcpadapter

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/localdev-tools/ddev-mcp/internal/ddev"
	"github.com/localdev-tools/ddev-mcp/internal/executor"
	"github.com/localdev-tools/ddev-mcp/internal/models"
)

// QueryInput is the MCP tool input schema for SQL execution.
type QueryInput struct {
	Project              string `json:"project" jsonschema:"project name as shown by the project manager"`
	Query                string `json:"query" jsonschema:"single SQL statement to run"`
	AllowWriteOperations bool   `json:"allow_write_operations,omitempty" jsonschema:"permit non-whitelisted write statements; catastrophic operations stay blocked"`
}

// ExecInput is the MCP tool input schema for shell commands in the web container.
type ExecInput struct {
	Project string `json:"project" jsonschema:"project name"`
	Command string `json:"command" jsonschema:"shell command to run inside the project's web container"`
}

// StatusInput selects the project for a status lookup.
type StatusInput struct {
	Project string `json:"project" jsonschema:"project name"`
}

// ListInput carries no parameters.
type ListInput struct{}

// ListOutput wraps the project list so the tool result is a JSON object.
type ListOutput struct {
	Projects []ddev.Project `json:"projects"`
}

// NewQueryHandler returns a tool handler that uses the given executor.
// Pass the returned function to mcp.AddTool.
func NewQueryHandler(exec *executor.QueryExecutor) func(context.Context, *mcp.CallToolRequest, QueryInput) (*mcp.CallToolResult, models.QueryResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input QueryInput) (*mcp.CallToolResult, models.QueryResult, error) {
		result, err := exec.Execute(ctx, models.QueryRequest{
			Project:              input.Project,
			Query:                input.Query,
			AllowWriteOperations: input.AllowWriteOperations,
		})
		if err != nil {
			return nil, models.QueryResult{}, err
		}
		return nil, result, nil
	}
}

// NewExecHandler returns a tool handler for shell commands.
func NewExecHandler(exec *executor.CommandExecutor) func(context.Context, *mcp.CallToolRequest, ExecInput) (*mcp.CallToolResult, models.CommandResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ExecInput) (*mcp.CallToolResult, models.CommandResult, error) {
		result, err := exec.Execute(ctx, input.Project, input.Command)
		if err != nil {
			return nil, models.CommandResult{}, err
		}
		return nil, result, nil
	}
}

// NewStatusHandler returns a tool handler for project status lookups.
func NewStatusHandler(manager *ddev.Client) func(context.Context, *mcp.CallToolRequest, StatusInput) (*mcp.CallToolResult, models.ProjectStatus, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input StatusInput) (*mcp.CallToolResult, models.ProjectStatus, error) {
		status, err := manager.Status(ctx, input.Project)
		if err != nil {
			return nil, models.ProjectStatus{}, err
		}
		return nil, *status, nil
	}
}

// NewListHandler returns a tool handler that lists all managed projects.
func NewListHandler(manager *ddev.Client) func(context.Context, *mcp.CallToolRequest, ListInput) (*mcp.CallToolResult, ListOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ListInput) (*mcp.CallToolResult, ListOutput, error) {
		projects, err := manager.List(ctx)
		if err != nil {
			return nil, ListOutput{}, err
		}
		return nil, ListOutput{Projects: projects}, nil
	}
}
