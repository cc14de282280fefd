package models

import (
	"time"

	"github.com/localdev-tools/ddev-mcp/internal/sqlguard"
)

// QueryRequest is one SQL submission against a managed project.
type QueryRequest struct {
	Project              string `json:"project"`
	Query                string `json:"query"`
	AllowWriteOperations bool   `json:"allow_write_operations,omitempty"`
}

// ResultSet holds rows returned by a direct database connection.
type ResultSet struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// QueryResult is the outcome of one query execution attempt. When Allowed is
// false the query never reached a database and Reason carries the verbatim
// classifier reason.
type QueryResult struct {
	Project  string           `json:"project"`
	Allowed  bool             `json:"allowed"`
	Verdict  sqlguard.Verdict `json:"verdict"`
	Reason   string           `json:"reason,omitempty"`
	Output   string           `json:"output,omitempty"`
	Results  *ResultSet       `json:"results,omitempty"`
	Source   string           `json:"source,omitempty"`
	Duration time.Duration    `json:"duration_ns"`
}

// CommandResult is the outcome of one shell command run inside a project's
// web container.
type CommandResult struct {
	Project  string        `json:"project"`
	Command  string        `json:"command"`
	Output   string        `json:"output"`
	Duration time.Duration `json:"duration_ns"`
}

// ProjectStatus is the condensed status summary exposed to callers.
type ProjectStatus struct {
	Name         string `json:"name"`
	Status       string `json:"status"`
	Type         string `json:"type"`
	URL          string `json:"url,omitempty"`
	DatabaseType string `json:"database_type,omitempty"`
	DatabaseVer  string `json:"database_version,omitempty"`
}

// AuditEvent is published to the audit stream after every tool call.
type AuditEvent struct {
	Time     time.Time        `json:"time"`
	Project  string           `json:"project"`
	Tool     string           `json:"tool"`
	Input    string           `json:"input"`
	Verdict  sqlguard.Verdict `json:"verdict,omitempty"`
	Reason   string           `json:"reason,omitempty"`
	Duration time.Duration    `json:"duration_ns"`
}

// Execution sources recorded in QueryResult.Source.
const (
	SourceCLI      = "cli"
	SourcePostgres = "postgres"
)
