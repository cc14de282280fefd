package executor

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/localdev-tools/ddev-mcp/internal/models"
)

// CommandExecutor runs shell commands inside a project's web container.
type CommandExecutor struct {
	manager Manager
	audit   Auditor
	logger  *zerolog.Logger
}

func NewCommandExecutor(manager Manager, audit Auditor, logger *zerolog.Logger) *CommandExecutor {
	return &CommandExecutor{
		manager: manager,
		audit:   audit,
		logger:  logger,
	}
}

func (e *CommandExecutor) Execute(ctx context.Context, projectName, command string) (models.CommandResult, error) {
	start := time.Now()

	project, err := e.manager.Describe(ctx, projectName)
	if err != nil {
		return models.CommandResult{}, err
	}

	output, err := e.manager.Exec(ctx, project, command)
	if err != nil {
		return models.CommandResult{}, err
	}

	result := models.CommandResult{
		Project:  projectName,
		Command:  command,
		Output:   output,
		Duration: time.Since(start),
	}

	e.logger.Info().
		Str("project", projectName).
		Str("command", command).
		Dur("duration", result.Duration).
		Msg("command executed")

	if e.audit != nil {
		e.audit.Publish(ctx, models.AuditEvent{
			Time:     time.Now(),
			Project:  projectName,
			Tool:     "exec_command",
			Input:    command,
			Duration: result.Duration,
		})
	}

	return result, nil
}
