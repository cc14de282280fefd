package executor

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/localdev-tools/ddev-mcp/internal/db"
	"github.com/localdev-tools/ddev-mcp/internal/ddev"
	"github.com/localdev-tools/ddev-mcp/internal/models"
	"github.com/localdev-tools/ddev-mcp/internal/sqlguard"
)

//go:generate mockgen -source=query_executor.go -destination=mocks/executor_mocks.go -package=mocks

// Guard classifies a query before it may touch a database.
type Guard interface {
	Validate(query string, allowWrite bool) sqlguard.Classification
}

// Manager is the project-manager surface the executors need.
type Manager interface {
	Describe(ctx context.Context, name string) (*ddev.Project, error)
	Query(ctx context.Context, project *ddev.Project, sql string) (string, error)
	Exec(ctx context.Context, project *ddev.Project, command string) (string, error)
}

// DirectQuerier runs a validated query over a direct database connection.
type DirectQuerier interface {
	Query(ctx context.Context, config db.Config, sql string) (*models.ResultSet, error)
}

// Auditor records tool-call outcomes. Publishing is fire-and-forget.
type Auditor interface {
	Publish(ctx context.Context, event models.AuditEvent)
}

// QueryExecutor validates and executes SQL against a managed project. A
// query that does not classify as allowed never reaches a runner or a
// database connection.
type QueryExecutor struct {
	guard             Guard
	manager           Manager
	direct            DirectQuerier
	audit             Auditor
	allowWriteDefault bool
	logger            *zerolog.Logger
}

func NewQueryExecutor(
	guard Guard,
	manager Manager,
	direct DirectQuerier,
	audit Auditor,
	allowWriteDefault bool,
	logger *zerolog.Logger,
) *QueryExecutor {
	return &QueryExecutor{
		guard:             guard,
		manager:           manager,
		direct:            direct,
		audit:             audit,
		allowWriteDefault: allowWriteDefault,
		logger:            logger,
	}
}

func (e *QueryExecutor) Execute(ctx context.Context, req models.QueryRequest) (models.QueryResult, error) {
	start := time.Now()

	// The policy default can widen but never narrow a caller's request;
	// catastrophic rules are unaffected either way.
	allowWrite := req.AllowWriteOperations || e.allowWriteDefault

	cls := e.guard.Validate(req.Query, allowWrite)
	if !cls.Allowed {
		e.logger.Warn().
			Str("project", req.Project).
			Str("verdict", string(cls.Verdict)).
			Str("reason", cls.Reason).
			Msg("query rejected")

		result := models.QueryResult{
			Project:  req.Project,
			Allowed:  false,
			Verdict:  cls.Verdict,
			Reason:   cls.Reason,
			Duration: time.Since(start),
		}
		e.publish(ctx, req, result)
		return result, nil
	}

	project, err := e.manager.Describe(ctx, req.Project)
	if err != nil {
		return models.QueryResult{}, err
	}

	result := models.QueryResult{
		Project: req.Project,
		Allowed: true,
		Verdict: sqlguard.VerdictAllowed,
	}

	if config, ok := e.directConfig(project); ok {
		results, err := e.direct.Query(ctx, config, req.Query)
		if err != nil {
			return models.QueryResult{}, err
		}
		result.Results = results
		result.Source = models.SourcePostgres
	} else {
		output, err := e.manager.Query(ctx, project, req.Query)
		if err != nil {
			return models.QueryResult{}, err
		}
		result.Output = output
		result.Source = models.SourceCLI
	}

	result.Duration = time.Since(start)
	e.logger.Info().
		Str("project", req.Project).
		Str("source", result.Source).
		Dur("duration", result.Duration).
		Msg("query executed")

	e.publish(ctx, req, result)
	return result, nil
}

// directConfig reports whether the project's database can be reached over a
// published host port with the direct Postgres path.
func (e *QueryExecutor) directConfig(project *ddev.Project) (db.Config, bool) {
	if e.direct == nil || project.DB == nil || project.DB.PublishedPort == 0 {
		return db.Config{}, false
	}
	dbType := strings.ToLower(project.DB.Type)
	if dbType != "postgres" && dbType != "postgresql" {
		return db.Config{}, false
	}

	return db.Config{
		Host:     "127.0.0.1",
		Port:     strconv.Itoa(project.DB.PublishedPort),
		User:     project.DB.Username,
		Password: project.DB.Password,
		Database: project.DB.Name,
		SSLMode:  "disable",
	}, true
}

func (e *QueryExecutor) publish(ctx context.Context, req models.QueryRequest, result models.QueryResult) {
	if e.audit == nil {
		return
	}
	e.audit.Publish(ctx, models.AuditEvent{
		Time:     time.Now(),
		Project:  req.Project,
		Tool:     "sql_query",
		Input:    req.Query,
		Verdict:  result.Verdict,
		Reason:   result.Reason,
		Duration: result.Duration,
	})
}
