package setup

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/localdev-tools/ddev-mcp/internal/audit"
	"github.com/localdev-tools/ddev-mcp/internal/config"
	"github.com/localdev-tools/ddev-mcp/internal/db"
	"github.com/localdev-tools/ddev-mcp/internal/ddev"
	"github.com/localdev-tools/ddev-mcp/internal/executor"
	redisconn "github.com/localdev-tools/ddev-mcp/internal/redis"
	"github.com/localdev-tools/ddev-mcp/internal/sqlguard"
)

type Config struct {
	ManagerBin    string
	RedisAddr     string
	RedisPassword string
	LogLevel      string
	APIPort       string
}

type Dependencies struct {
	Guard   *sqlguard.Guard
	Manager *ddev.Client
	Query   *executor.QueryExecutor
	Command *executor.CommandExecutor
	Audit   *audit.Publisher
	Policy  *config.Policy
	Logger  *zerolog.Logger
}

func LoadConfig() *Config {
	return &Config{
		ManagerBin:    getEnv("DDEV_BIN", "ddev"),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		APIPort:       getEnv("DDEV_MCP_API_PORT", "18090"),
	}
}

func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	policy, err := config.LoadPolicy()
	if err != nil {
		return nil, fmt.Errorf("failed to load policy config: %w", err)
	}

	guard, err := sqlguard.NewGuard(policy.Security.ExtraDenyPatterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to build query guard: %w", err)
	}

	runner := ddev.NewCLIRunner(cfg.ManagerBin, time.Duration(policy.Command.TimeoutSeconds)*time.Second, logger)
	manager := ddev.NewClient(runner, logger)

	// Audit sink is optional: without REDIS_ADDR the publisher stays nil
	// and Publish is a no-op.
	var publisher *audit.Publisher
	if cfg.RedisAddr != "" {
		client, err := redisconn.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword, 3)
		if err != nil {
			logger.Warn().Err(err).Msg("Audit sink unavailable, continuing without it")
		} else {
			publisher = audit.NewPublisher(client, policy.Audit.Stream, logger)
		}
	}

	var direct executor.DirectQuerier
	if policy.Security.DirectPostgres {
		direct = db.NewExecutor(logger)
	}

	queryExec := executor.NewQueryExecutor(guard, manager, direct, publisher, policy.Security.AllowWriteDefault, logger)
	commandExec := executor.NewCommandExecutor(manager, publisher, logger)

	return &Dependencies{
		Guard:   guard,
		Manager: manager,
		Query:   queryExec,
		Command: commandExec,
		Audit:   publisher,
		Policy:  policy,
		Logger:  logger,
	}, nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}
