package api

import (
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog"

	"github.com/localdev-tools/ddev-mcp/internal/api/middleware"
	"github.com/localdev-tools/ddev-mcp/internal/ddev"
	"github.com/localdev-tools/ddev-mcp/internal/executor"
	"github.com/localdev-tools/ddev-mcp/internal/models"
	"github.com/localdev-tools/ddev-mcp/internal/sqlguard"
)

type Handler struct {
	query   *executor.QueryExecutor
	command *executor.CommandExecutor
	manager *ddev.Client
	guard   *sqlguard.Guard
	logger  *zerolog.Logger
}

func NewHandler(
	query *executor.QueryExecutor,
	command *executor.CommandExecutor,
	manager *ddev.Client,
	guard *sqlguard.Guard,
	logger *zerolog.Logger,
) *Handler {
	return &Handler{
		query:   query,
		command: command,
		manager: manager,
		guard:   guard,
		logger:  logger,
	}
}

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// ValidateRequest asks for a classification without executing anything.
type ValidateRequest struct {
	Query                string `json:"query"`
	AllowWriteOperations bool   `json:"allow_write_operations,omitempty"`
}

// ExecRequest is the body of a container command invocation.
type ExecRequest struct {
	Command string `json:"command"`
}

// POST /api/v1/query
// Body: models.QueryRequest
// Returns: models.QueryResult (allowed=false carries the denial reason)
func (h *Handler) Query(req *restful.Request, resp *restful.Response) {
	var queryRequest models.QueryRequest
	if err := req.ReadEntity(&queryRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	h.logger.Info().
		Str("project", queryRequest.Project).
		Bool("allow_write", queryRequest.AllowWriteOperations).
		Msg("Query received")

	ctx := req.Request.Context()
	result, err := h.query.Execute(ctx, queryRequest)
	if err != nil {
		h.logger.Error().Err(err).Str("project", queryRequest.Project).Msg("Query execution failed")
		middleware.HandleError(resp, err, http.StatusBadGateway)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, result)
}

// POST /api/v1/query/validate
// Body: ValidateRequest
// Returns: sqlguard.Classification without touching any database
func (h *Handler) Validate(req *restful.Request, resp *restful.Response) {
	var validateRequest ValidateRequest
	if err := req.ReadEntity(&validateRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	cls := h.guard.Validate(validateRequest.Query, validateRequest.AllowWriteOperations)
	resp.WriteHeaderAndEntity(http.StatusOK, cls)
}

// GET /api/v1/projects
func (h *Handler) ListProjects(req *restful.Request, resp *restful.Response) {
	projects, err := h.manager.List(req.Request.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list projects")
		middleware.HandleError(resp, err, http.StatusBadGateway)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, projects)
}

// GET /api/v1/projects/{name}
func (h *Handler) ProjectStatus(req *restful.Request, resp *restful.Response) {
	name := req.PathParameter("name")

	status, err := h.manager.Status(req.Request.Context(), name)
	if err != nil {
		h.logger.Error().Err(err).Str("project", name).Msg("Failed to fetch project status")
		middleware.NotFound(resp, err)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, status)
}

// POST /api/v1/projects/{name}/exec
func (h *Handler) Exec(req *restful.Request, resp *restful.Response) {
	name := req.PathParameter("name")

	var execRequest ExecRequest
	if err := req.ReadEntity(&execRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	result, err := h.command.Execute(req.Request.Context(), name, execRequest.Command)
	if err != nil {
		h.logger.Error().Err(err).Str("project", name).Msg("Command execution failed")
		middleware.HandleError(resp, err, http.StatusBadGateway)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, result)
}

// GET /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	})
}
