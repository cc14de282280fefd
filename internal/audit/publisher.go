// Package audit publishes tool-call outcomes to a Redis stream so denials
// and executions can be reviewed outside the server. Publishing is best
// effort: a failed or absent audit sink never blocks a tool call.
package audit

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/localdev-tools/ddev-mcp/internal/models"
)

type Publisher struct {
	client *redis.Client
	stream string
	logger *zerolog.Logger
}

func NewPublisher(client *redis.Client, stream string, logger *zerolog.Logger) *Publisher {
	return &Publisher{
		client: client,
		stream: stream,
		logger: logger,
	}
}

// Publish appends one event to the stream. A nil Publisher is a valid no-op
// sink, so callers wired without Redis need no special casing.
func (p *Publisher) Publish(ctx context.Context, event models.AuditEvent) {
	if p == nil || p.client == nil {
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.Error().Err(err).Msg("Failed to encode audit event")
		return
	}

	err = p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]any{"payload": payload},
	}).Err()
	if err != nil {
		p.logger.Warn().Err(err).Str("stream", p.stream).Msg("Failed to publish audit event")
	}
}
