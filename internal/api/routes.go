package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"

	"github.com/localdev-tools/ddev-mcp/internal/api/middleware"
	"github.com/localdev-tools/ddev-mcp/internal/ddev"
	"github.com/localdev-tools/ddev-mcp/internal/models"
	"github.com/localdev-tools/ddev-mcp/internal/sqlguard"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	ws.
		Route(ws.GET("health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.POST("/query").
			To(handler.Query).
			Doc("Validate and execute one SQL statement against a project").
			Metadata(restfulspec.KeyOpenAPITags, []string{"query"}).
			Reads(models.QueryRequest{}).
			Writes(models.QueryResult{}).
			Returns(200, "OK", models.QueryResult{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(502, "Manager Unavailable", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/query/validate").
			To(handler.Validate).
			Doc("Classify one SQL statement without executing it").
			Metadata(restfulspec.KeyOpenAPITags, []string{"query"}).
			Reads(ValidateRequest{}).
			Writes(sqlguard.Classification{}).
			Returns(200, "OK", sqlguard.Classification{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("/projects").
			To(handler.ListProjects).
			Doc("List managed projects").
			Metadata(restfulspec.KeyOpenAPITags, []string{"projects"}).
			Writes([]ddev.Project{}).
			Returns(200, "OK", []ddev.Project{}).
			Returns(502, "Manager Unavailable", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("/projects/{name}").
			To(handler.ProjectStatus).
			Doc("Fetch one project's status").
			Metadata(restfulspec.KeyOpenAPITags, []string{"projects"}).
			Param(ws.PathParameter("name", "Project name").DataType("string")).
			Writes(models.ProjectStatus{}).
			Returns(200, "OK", models.ProjectStatus{}).
			Returns(404, "Project Not Found", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/projects/{name}/exec").
			To(handler.Exec).
			Doc("Run a shell command inside the project's web container").
			Metadata(restfulspec.KeyOpenAPITags, []string{"projects"}).
			Param(ws.PathParameter("name", "Project name").DataType("string")).
			Reads(ExecRequest{}).
			Writes(models.CommandResult{}).
			Returns(200, "OK", models.CommandResult{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(502, "Manager Unavailable", middleware.ErrorResponse{}))

	container.Add(ws)
}
