// Package db runs already-validated queries over a direct Postgres
// connection when a project publishes its database port to the host. This
// path returns structured rows instead of the CLI client's rendered text.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/localdev-tools/ddev-mcp/internal/models"
)

type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
	SSLMode  string
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s", c.User, c.Password, c.Host, c.Port, c.Database, c.SSLMode)
}

type DB struct {
	Pool *pgxpool.Pool
}

func New(ctx context.Context, config Config) (*DB, error) {
	pgPool, err := pgxpool.New(ctx, config.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &DB{
		Pool: pgPool,
	}, nil
}

func (db *DB) Ping(ctx context.Context) error {
	return db.Pool.Ping(ctx)
}

func (db *DB) Close() {
	db.Pool.Close()
}

// Query runs one statement and collects the full result set. The statement
// must already have passed classification.
func (db *DB) Query(ctx context.Context, sql string) (*models.ResultSet, error) {
	rows, err := db.Pool.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	columns := make([]string, len(fields))
	for i, field := range fields {
		columns[i] = field.Name
	}

	result := &models.ResultSet{Columns: columns}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		result.Rows = append(result.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return result, nil
}

// Executor connects per call: projects start and stop frequently during
// development, so holding pools across calls would mostly hold dead
// connections.
type Executor struct {
	logger *zerolog.Logger
}

func NewExecutor(logger *zerolog.Logger) *Executor {
	return &Executor{logger: logger}
}

func (e *Executor) Query(ctx context.Context, config Config, sql string) (*models.ResultSet, error) {
	database, err := New(ctx, config)
	if err != nil {
		return nil, err
	}
	defer database.Close()

	if err := database.Ping(ctx); err != nil {
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	e.logger.Debug().Str("host", config.Host).Str("port", config.Port).Msg("Running query over direct connection")
	return database.Query(ctx, sql)
}
