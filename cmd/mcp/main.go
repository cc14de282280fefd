package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/localdev-tools/ddev-mcp/internal/mcpadapter"
	"github.com/localdev-tools/ddev-mcp/internal/setup"
)

func main() {
	// Setup logging. Stdout carries the MCP protocol, so logs go to stderr.
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	logger := log.Logger

	// Load env
	_ = godotenv.Load()

	// Graceful shutdown on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load Config
	cfg := setup.LoadConfig()
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	// Wire dependencies
	deps, err := setup.Wire(ctx, cfg, &logger)
	if err != nil {
		logger.Error().Err(err).Msg("Unable to load dependencies")
		os.Exit(1)
	}

	// Create MCP Server
	server := createMCPServer(deps)

	// Run over stdio
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		// EOF / "server is closing" is expected when stdin closes
		if errors.Is(err, io.EOF) || strings.Contains(err.Error(), "server is closing") {
			logger.Debug().Err(err).Msg("MCP server stopped")
			return
		}
		logger.Error().Err(err).Msg("Failed to run mcp server")
		os.Exit(1)
	}
}

func createMCPServer(deps *setup.Dependencies) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "ddev-mcp",
			Version: "1.0.0",
		}, nil,
	)

	// Add Tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "ddev_sql_query",
		Description: "Run a single SQL statement against a project's database. Read-only by default; set allow_write_operations for data-modifying statements. Catastrophic operations are always blocked.",
	}, mcpadapter.NewQueryHandler(deps.Query))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "ddev_exec_command",
		Description: "Run a shell command inside a project's web container and return its output.",
	}, mcpadapter.NewExecHandler(deps.Command))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "ddev_project_status",
		Description: "Fetch the status summary of one project (state, type, URL, database).",
	}, mcpadapter.NewStatusHandler(deps.Manager))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "ddev_list_projects",
		Description: "List all projects known to the local development-environment manager.",
	}, mcpadapter.NewListHandler(deps.Manager))

	return server
}
