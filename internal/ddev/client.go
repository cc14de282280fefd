// Package ddev wraps the local development-environment manager CLI. The
// manager is treated as a black box: every operation is a CLI invocation and
// the JSON it prints is unmarshalled into the types below.
package ddev

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/localdev-tools/ddev-mcp/internal/models"
)

// jsonEnvelope is the `--json-output` wrapper the manager prints around its
// actual payload.
type jsonEnvelope struct {
	Level string          `json:"level"`
	Msg   string          `json:"msg"`
	Raw   json.RawMessage `json:"raw"`
}

// DBInfo describes the database container of a project.
type DBInfo struct {
	Type          string `json:"database_type"`
	Version       string `json:"database_version"`
	Name          string `json:"dbname"`
	Username      string `json:"username"`
	Password      string `json:"password"`
	PublishedPort int    `json:"published_port"`
}

// Project is the subset of the manager's describe/list payload this server
// consumes.
type Project struct {
	Name    string  `json:"name"`
	Status  string  `json:"status"`
	Type    string  `json:"type"`
	AppRoot string  `json:"approot"`
	URL     string  `json:"primary_url"`
	DB      *DBInfo `json:"dbinfo,omitempty"`
}

// Client exposes project operations over a Runner.
type Client struct {
	runner Runner
	logger *zerolog.Logger
}

func NewClient(runner Runner, logger *zerolog.Logger) *Client {
	return &Client{
		runner: runner,
		logger: logger,
	}
}

// List returns all projects the manager knows about.
func (c *Client) List(ctx context.Context) ([]Project, error) {
	out, err := c.runner.Run(ctx, "", "list", "--json-output")
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	var projects []Project
	if err := unmarshalRaw(out, &projects); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// Describe returns the full payload for one project.
func (c *Client) Describe(ctx context.Context, name string) (*Project, error) {
	out, err := c.runner.Run(ctx, "", "describe", name, "--json-output")
	if err != nil {
		return nil, fmt.Errorf("describe project %s: %w", name, err)
	}

	var project Project
	if err := unmarshalRaw(out, &project); err != nil {
		return nil, fmt.Errorf("describe project %s: %w", name, err)
	}
	return &project, nil
}

// Status returns the condensed status summary for one project.
func (c *Client) Status(ctx context.Context, name string) (*models.ProjectStatus, error) {
	project, err := c.Describe(ctx, name)
	if err != nil {
		return nil, err
	}

	status := &models.ProjectStatus{
		Name:   project.Name,
		Status: project.Status,
		Type:   project.Type,
		URL:    project.URL,
	}
	if project.DB != nil {
		status.DatabaseType = project.DB.Type
		status.DatabaseVer = project.DB.Version
	}
	return status, nil
}

// Exec runs a shell command inside the project's web container.
func (c *Client) Exec(ctx context.Context, project *Project, command string) (string, error) {
	out, err := c.runner.Run(ctx, project.AppRoot, "exec", "bash", "-c", command)
	if err != nil {
		return string(out), fmt.Errorf("exec in project %s: %w", project.Name, err)
	}
	return string(out), nil
}

// Query runs one SQL statement through the project's database client. The
// caller is responsible for having classified the statement first; this
// method only routes it to the right client binary.
func (c *Client) Query(ctx context.Context, project *Project, sql string) (string, error) {
	args, err := queryArgs(project, sql)
	if err != nil {
		return "", err
	}

	out, err := c.runner.Run(ctx, project.AppRoot, args...)
	if err != nil {
		return string(out), fmt.Errorf("query in project %s: %w", project.Name, err)
	}
	return string(out), nil
}

func queryArgs(project *Project, sql string) ([]string, error) {
	dbType := ""
	if project.DB != nil {
		dbType = strings.ToLower(project.DB.Type)
	}

	switch dbType {
	case "mysql", "mariadb", "":
		// MySQL-family is the manager's default database.
		return []string{"mysql", "-e", sql}, nil
	case "postgres", "postgresql":
		return []string{"psql", "-c", sql}, nil
	default:
		return nil, fmt.Errorf("project %s: unsupported database type %q", project.Name, dbType)
	}
}

func unmarshalRaw(out []byte, v any) error {
	var envelope jsonEnvelope
	if err := json.Unmarshal(out, &envelope); err != nil {
		return fmt.Errorf("parse CLI output: %w", err)
	}
	if len(envelope.Raw) == 0 {
		return fmt.Errorf("parse CLI output: missing raw payload")
	}
	if err := json.Unmarshal(envelope.Raw, v); err != nil {
		return fmt.Errorf("parse CLI payload: %w", err)
	}
	return nil
}
